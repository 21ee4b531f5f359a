//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps each DrawTriangles call within uint16 indices.
const maxBatchVertices = 3 * 21845

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Painter draws projected triangles with flat vertex colours.
type Painter struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewPainter constructs an empty painter.
func NewPainter() *Painter { return &Painter{} }

// Draw paints tris onto dst in order, batching DrawTriangles calls.
func (p *Painter) Draw(dst *ebiten.Image, tris []ScreenTriangle) {
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
	for i := range tris {
		if len(p.vertices)+3 > maxBatchVertices {
			p.flush(dst)
		}
		t := &tris[i]
		r := float32(t.Color.R) / 255
		g := float32(t.Color.G) / 255
		b := float32(t.Color.B) / 255
		a := float32(t.Color.A) / 255
		base := uint16(len(p.vertices))
		for k := 0; k < 3; k++ {
			p.vertices = append(p.vertices, ebiten.Vertex{
				DstX: t.X[k], DstY: t.Y[k],
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		p.indices = append(p.indices, base, base+1, base+2)
	}
	p.flush(dst)
}

func (p *Painter) flush(dst *ebiten.Image) {
	if len(p.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: false}
	dst.DrawTriangles(p.vertices, p.indices, whiteSubImage, op)
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}

// MinimapImage uploads a biome map into an ebiten image.
func MinimapImage(m *BiomeMap) *ebiten.Image {
	img := ebiten.NewImage(m.Size(), m.Size())
	img.WritePixels(m.Pixels())
	return img
}
