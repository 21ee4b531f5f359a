//go:build ebiten

package ui

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"newera/internal/scene"
	"newera/internal/sims/creatures"
)

// HUD draws the coordinate readout and frame stats in the top-left corner.
type HUD struct {
	herd    *creatures.Herd
	lastHit int
}

// NewHUD constructs a HUD for the provided herd.
func NewHUD(herd *creatures.Herd) *HUD {
	return &HUD{herd: herd, lastHit: -1}
}

// RecordAttack remembers the result of the latest click. Misses keep the
// previous hit on screen.
func (h *HUD) RecordAttack(hit int) {
	if h == nil || hit < 0 {
		return
	}
	h.lastHit = hit
}

// Draw paints the status text.
func (h *HUD) Draw(screen *ebiten.Image, eye mgl64.Vec3, mesh *scene.Mesh) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	y := hudTop
	for _, line := range StatusLines(eye, h.herd, mesh, h.lastHit) {
		text.Draw(screen, line, face, hudLeft, y, color.Black)
		y += hudLineHeight
	}
	bottom := screen.Bounds().Dy() - hudLeft
	text.Draw(screen, HelpLine, face, hudLeft, bottom, color.RGBA{R: 30, G: 30, B: 40, A: 255})
}

const (
	hudLeft       = 20
	hudTop        = 20 + 13
	hudLineHeight = 16
)
