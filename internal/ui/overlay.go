//go:build ebiten

package ui

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"newera/internal/render"
	"newera/internal/sims/creatures"
)

// Overlay draws the optional biome minimap and parameter panel.
type Overlay struct {
	herd      *creatures.Herd
	showMap   bool
	showPanel bool

	biomes   *render.BiomeMap
	mapImg   *ebiten.Image
	pixel    *ebiten.Image
	panelImg *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(herd *creatures.Herd) *Overlay {
	o := &Overlay{herd: herd, biomes: render.NewBiomeMap(minimapSize)}
	o.mapImg = render.MinimapImage(o.biomes)
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMap = !o.showMap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showPanel = !o.showPanel
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, eye mgl64.Vec3) {
	if o.showMap {
		o.drawMap(screen, eye)
	}
	if o.showPanel {
		o.drawPanel(screen)
	}
}

func (o *Overlay) drawMap(screen *ebiten.Image, eye mgl64.Vec3) {
	left := float64(screen.Bounds().Dx() - minimapSize - overlayMargin)
	top := float64(overlayMargin)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleAlpha(0.85)
	screen.DrawImage(o.mapImg, op)

	for i := range o.herd.Entities() {
		e := &o.herd.Entities()[i]
		if !e.Alive {
			continue
		}
		x, y := o.biomes.Locate(e.Position.X(), e.Position.Z())
		o.dot(screen, left+float64(x), top+float64(y), 2, e.Color)
	}
	x, y := o.biomes.Locate(eye.X(), eye.Z())
	o.dot(screen, left+float64(x), top+float64(y), 4, color.RGBA{R: 255, A: 255})
}

func (o *Overlay) dot(screen *ebiten.Image, x, y, size float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size/2, y-size/2)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawPanel(screen *ebiten.Image) {
	lines := PanelLines(o.herd)
	height := overlayMargin*2 + len(lines)*panelLineHeight
	if o.panelImg == nil || o.panelImg.Bounds().Dy() != height {
		o.panelImg = ebiten.NewImage(panelWidth, height)
	}
	o.panelImg.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(o.panelImg, line, face, overlayMargin, overlayMargin+(i+1)*panelLineHeight-4, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-panelWidth-overlayMargin), float64(minimapSize+2*overlayMargin))
	screen.DrawImage(o.panelImg, op)
}

const (
	minimapSize     = 160
	overlayMargin   = 12
	panelWidth      = 220
	panelLineHeight = 16
)
