package app

import (
	"github.com/go-gl/mathgl/mgl64"

	"newera/internal/core"
)

// EyePath gives the observer position for a frame.
type EyePath func(frame int) mgl64.Vec3

// Headless drives a sim without a window.
type Headless struct {
	Sim  core.Sim
	Path EyePath
	// Pacer holds the frame cadence. When nil frames run back to back.
	Pacer *core.FixedStep
	// BeforeStep runs ahead of each step, where a frame's click would land.
	BeforeStep func(frame int, eye mgl64.Vec3)
	// OnFrame runs after each step, if set.
	OnFrame func(frame int, eye mgl64.Vec3)
}

// Run steps the sim for the given number of frames.
func (h *Headless) Run(frames int) {
	for i := 0; i < frames; i++ {
		if h.Pacer != nil {
			h.Pacer.Wait()
		}
		eye := h.Path(i)
		if h.BeforeStep != nil {
			h.BeforeStep(i, eye)
		}
		h.Sim.Step(eye)
		if h.OnFrame != nil {
			h.OnFrame(i, eye)
		}
	}
}

// LinePath walks from a to b over frames, then stays at b.
func LinePath(a, b mgl64.Vec3, frames int) EyePath {
	return func(frame int) mgl64.Vec3 {
		if frames <= 0 || frame >= frames {
			return b
		}
		t := float64(frame) / float64(frames)
		return a.Add(b.Sub(a).Mul(t))
	}
}
