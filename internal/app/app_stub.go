//go:build !ebiten

package app

import (
	"errors"

	"newera/internal/camera"
	"newera/internal/sims/creatures"
)

// ErrNoWindow is what the walking view reports in builds without a window.
var ErrNoWindow = errors.New("newera: the window needs the ebiten build tag; use Headless to step the herd")

// Game stands in for the first-person view when the ebiten tag is absent.
type Game struct{}

// New panics with ErrNoWindow. There is nothing to walk the terrain in.
func New(*creatures.Herd, *camera.FirstPerson, int, int, int64) *Game {
	panic(ErrNoWindow)
}

// Reset does nothing without a window.
func (g *Game) Reset(int64) {}

// Update reports ErrNoWindow.
func (g *Game) Update() error { return ErrNoWindow }

func (g *Game) Draw(any) {}

// Layout keeps the outside size.
func (g *Game) Layout(w, h int) (int, int) { return w, h }
