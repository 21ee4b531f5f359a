// Command herdstat steps a seeded herd without a window and logs how it
// spreads out and how many creatures survive a walk through the world.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"newera/internal/app"
	"newera/internal/core"
	"newera/internal/sims/creatures"
	"newera/internal/terrain"
)

func main() {
	frames := flag.Int("frames", 3600, "frames to simulate")
	seed := flag.Int64("seed", 42, "herd seed")
	tps := flag.Int("tps", 0, "pace frames at this rate (0 runs unpaced)")
	every := flag.Int("every", 600, "log every N frames")
	attack := flag.Bool("attack", false, "click every frame while walking")
	tuningPath := flag.String("config", "", "optional YAML tuning file")
	flag.Parse()

	logger := log.New(os.Stdout, "[herdstat] ", log.LstdFlags|log.Lmicroseconds)

	tuning, err := app.LoadTuning(*tuningPath)
	if err != nil {
		logger.Fatalf("load tuning: %v", err)
	}
	herd := creatures.NewWithConfig(tuning.HerdConfig(*seed))
	herd.Reset(0)

	spawn := make([]mgl64.Vec3, herd.Len())
	for i, e := range herd.Entities() {
		spawn[i] = e.Position
	}

	start := mgl64.Vec3{100, 0, 100}
	end := mgl64.Vec3{terrain.WorldSize - 100, 0, terrain.WorldSize - 100}
	path := app.LinePath(start, end, *frames)
	ground := func(frame int) mgl64.Vec3 {
		eye := path(frame)
		eye[1] = terrain.GroundHeight(eye.X(), eye.Z()) + tuning.Camera.EyeHeight
		return eye
	}

	hits := 0
	runner := &app.Headless{
		Sim:  herd,
		Path: ground,
		BeforeStep: func(frame int, eye mgl64.Vec3) {
			if *attack && herd.Attack(eye) >= 0 {
				hits++
			}
		},
		OnFrame: func(frame int, eye mgl64.Vec3) {
			if *every > 0 && (frame+1)%*every == 0 {
				logger.Printf("frame=%d eye=(%.0f,%.0f) live=%d/%d hits=%d spread=%.1f",
					frame+1, eye.X(), eye.Z(), herd.Live(), herd.Len(), hits, meanDisplacement(herd, spawn))
			}
		},
	}
	if *tps > 0 {
		runner.Pacer = core.NewFixedStep(*tps)
		logger.Printf("pacing %s at %v per frame", herd.Name(), runner.Pacer.Step())
	}
	runner.Run(*frames)

	logger.Printf("done: live=%d/%d hits=%d spread=%.1f", herd.Live(), herd.Len(), hits, meanDisplacement(herd, spawn))
}

func meanDisplacement(herd *creatures.Herd, spawn []mgl64.Vec3) float64 {
	if herd.Len() == 0 {
		return 0
	}
	total := 0.0
	for i, e := range herd.Entities() {
		d := e.Position.Sub(spawn[i])
		d[1] = 0
		total += d.Len()
	}
	return total / float64(herd.Len())
}
