// Package camera implements the first-person viewpoint: mouse look, ground
// following movement and perspective projection of world points to pixels.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// NearPlane is the closest view depth Project accepts.
	NearPlane = 0.1
	farPlane  = 1000
	// pitchLimit keeps the view away from straight up or down.
	pitchLimit = math.Pi / 3
)

// FirstPerson is a yaw/pitch camera that walks on the terrain.
type FirstPerson struct {
	Position mgl64.Vec3
	Yaw      float64 // radians, 0 looks down +X
	Pitch    float64 // radians, positive looks up

	Fovy        float64 // degrees
	EyeHeight   float64
	MoveSpeed   float64 // units per frame
	SprintMult  float64
	Sensitivity float64 // radians per pixel of mouse travel
}

// New places a camera at (x, z) looking towards +X.
func New(x, z float64) *FirstPerson {
	return &FirstPerson{
		Position:    mgl64.Vec3{x, 0, z},
		Fovy:        65,
		EyeHeight:   2,
		MoveSpeed:   0.8,
		SprintMult:  3,
		Sensitivity: 0.003,
	}
}

// Forward returns the unit view direction.
func (c *FirstPerson) Forward() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	return mgl64.Vec3{cp * math.Cos(c.Yaw), math.Sin(c.Pitch), cp * math.Sin(c.Yaw)}
}

// Look turns the camera by a mouse delta in pixels.
func (c *FirstPerson) Look(dx, dy float64) {
	c.Yaw = math.Mod(c.Yaw+dx*c.Sensitivity, 2*math.Pi)
	c.Pitch -= dy * c.Sensitivity
	c.Pitch = math.Max(-pitchLimit, math.Min(pitchLimit, c.Pitch))
}

// Move walks on the XZ plane. forward and strafe are in [-1, 1]; positive
// strafe goes right.
func (c *FirstPerson) Move(forward, strafe float64, sprint bool) {
	if forward == 0 && strafe == 0 {
		return
	}
	sy, cy := math.Sincos(c.Yaw)
	dir := mgl64.Vec3{cy, 0, sy}.Mul(forward).Add(mgl64.Vec3{-sy, 0, cy}.Mul(strafe))
	speed := c.MoveSpeed
	if sprint {
		speed *= c.SprintMult
	}
	c.Position = c.Position.Add(dir.Normalize().Mul(speed))
}

// Follow puts the eye EyeHeight above the ground under the camera.
func (c *FirstPerson) Follow(ground func(x, z float64) float64) {
	c.Position[1] = ground(c.Position.X(), c.Position.Z()) + c.EyeHeight
}

// View builds the projection for a w×h pixel target.
func (c *FirstPerson) View(w, h int) View {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	f := c.Forward()
	proj := mgl32.Perspective(mgl32.DegToRad(float32(c.Fovy)), aspect, NearPlane, farPlane)
	look := mgl32.LookAtV(mgl32.Vec3{}, mgl32.Vec3{float32(f.X()), float32(f.Y()), float32(f.Z())}, mgl32.Vec3{0, 1, 0})
	return View{Eye: c.Position, Forward: f, VP: proj.Mul4(look), W: float32(w), H: float32(h)}
}

// View maps world points to screen pixels. Points are made eye-relative in
// float64 before the float32 matrix is applied, so distant coordinates keep
// their precision.
type View struct {
	Eye     mgl64.Vec3
	Forward mgl64.Vec3
	VP      mgl32.Mat4
	W, H    float32
}

// Depth is the distance of p in front of the eye along the view direction.
// It matches the depth Project reports and is negative behind the camera.
func (v View) Depth(p mgl64.Vec3) float64 {
	return p.Sub(v.Eye).Dot(v.Forward)
}

// Project returns the pixel position and view depth of p. ok is false when p
// lies behind the near plane.
func (v View) Project(p mgl64.Vec3) (x, y, depth float32, ok bool) {
	rel := p.Sub(v.Eye)
	clip := v.VP.Mul4x1(mgl32.Vec4{float32(rel.X()), float32(rel.Y()), float32(rel.Z()), 1})
	w := clip.W()
	if w < NearPlane {
		return 0, 0, 0, false
	}
	x = (clip.X()/w + 1) * 0.5 * v.W
	y = (1 - clip.Y()/w) * 0.5 * v.H
	return x, y, w, true
}
