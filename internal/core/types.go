package core

import "github.com/go-gl/mathgl/mgl64"

// Sim defines the minimal contract a per-frame world must implement.
type Sim interface {
	Name() string
	Reset(seed int64)
	// Step advances the world by one frame as seen from eye.
	Step(eye mgl64.Vec3)
}
