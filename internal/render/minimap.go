package render

import (
	"image/color"

	"newera/internal/core"
	"newera/internal/terrain"
)

// BiomeMap is a coarse top-down picture of the world, one byte per sample.
type BiomeMap struct {
	grid    *core.ByteGrid
	palette []color.RGBA
	pixels  []byte
}

// NewBiomeMap samples the world on a size×size grid.
func NewBiomeMap(size int) *BiomeMap {
	g := core.NewByteGrid(size, size)
	step := float64(terrain.WorldSize) / float64(g.W)
	g.Fill(func(x, y int) uint8 {
		wx := (float64(x) + 0.5) * step
		wz := (float64(y) + 0.5) * step
		return uint8(terrain.Classify(wx, wz))
	})
	palette := make([]color.RGBA, terrain.BiomeCount)
	for i := range palette {
		palette[i] = terrain.Color(terrain.Biome(i))
	}
	m := &BiomeMap{grid: g, palette: palette, pixels: make([]byte, 4*g.W*g.H)}
	fillPaletteRGBA(m.pixels, g.Cells(), m.palette)
	return m
}

// Size returns the map edge length in samples.
func (m *BiomeMap) Size() int { return m.grid.W }

// Pixels returns the RGBA pixel buffer, row-major with z growing downwards.
func (m *BiomeMap) Pixels() []byte { return m.pixels }

// Locate converts a world position to map pixel coordinates.
func (m *BiomeMap) Locate(x, z float64) (int, int) {
	scale := float64(m.grid.W) / terrain.WorldSize
	return int(x * scale), int(z * scale)
}
