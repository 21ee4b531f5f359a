//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"newera/internal/app"
	"newera/internal/sims/creatures"
	"newera/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	tuning, err := app.LoadTuning(cfg.TuningPath)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}

	herd := creatures.NewWithConfig(tuning.HerdConfig(cfg.Seed))
	herd.Reset(0)
	cam := tuning.NewCamera(terrain.GroundHeight)

	game := app.New(herd, cam, cfg.Width, cfg.Height, cfg.Seed)

	ebiten.SetWindowTitle("New Era: World Biomes")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
