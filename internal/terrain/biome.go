// Package terrain holds the procedural height field. Everything here is a
// pure function of world position; nothing is cached between frames.
package terrain

import (
	"image/color"
	"math"
)

const (
	// WorldSize is the edge length of the square world, in units.
	WorldSize = 20000
	// CellSize is the edge length of one rendered terrain cell.
	CellSize = 20
	// ViewDistance is the half-extent of the square of cells drawn around the camera.
	ViewDistance = 150
)

// Biome enumerates the world regions.
type Biome uint8

const (
	Forest Biome = iota
	Desert
	Tundra
	Mountains
	Plains
)

// BiomeCount is the number of known biomes.
const BiomeCount = int(Plains) + 1

type biomeProfile struct {
	name      string
	frequency float64
	amplitude float64
	color     color.RGBA
}

var profiles = [BiomeCount]biomeProfile{
	Forest:    {name: "Forest", frequency: 0.002, amplitude: 12, color: color.RGBA{R: 60, G: 100, B: 60, A: 255}},
	Desert:    {name: "Desert", frequency: 0.0008, amplitude: 4, color: color.RGBA{R: 194, G: 178, B: 128, A: 255}},
	Tundra:    {name: "Tundra", frequency: 0.0012, amplitude: 3, color: color.RGBA{R: 190, G: 190, B: 210, A: 255}},
	Mountains: {name: "Mountains", frequency: 0.003, amplitude: 40, color: color.RGBA{R: 130, G: 130, B: 130, A: 255}},
	Plains:    {name: "Plains", frequency: 0.0015, amplitude: 5, color: color.RGBA{R: 110, G: 140, B: 60, A: 255}},
}

// DefaultColor is used for biomes outside the known set.
var DefaultColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}

func (b Biome) known() bool { return int(b) < BiomeCount }

// String returns the display name of the biome.
func (b Biome) String() string {
	if !b.known() {
		return "Unknown"
	}
	return profiles[b].name
}

// Amplitude is the largest absolute height the biome can produce.
func (b Biome) Amplitude() float64 {
	if !b.known() {
		return 0
	}
	return profiles[b].amplitude
}

// Classify returns the biome at world position (x, z). The bands are split
// on x first and the last band is split on z; all comparisons are strict.
func Classify(x, z float64) Biome {
	switch {
	case x < 5000:
		return Forest
	case x < 10000:
		return Desert
	case x < 15000:
		return Mountains
	case z < 10000:
		return Tundra
	default:
		return Plains
	}
}

// Height samples the biome's height field at (x, z). Unknown biomes are flat.
func Height(x, z float64, b Biome) float64 {
	if !b.known() {
		return 0
	}
	p := profiles[b]
	return math.Sin(x*p.frequency) * math.Cos(z*p.frequency) * p.amplitude
}

// GroundHeight samples the height of whichever biome owns (x, z).
func GroundHeight(x, z float64) float64 {
	return Height(x, z, Classify(x, z))
}

// Color returns the flat fill colour of the biome.
func Color(b Biome) color.RGBA {
	if !b.known() {
		return DefaultColor
	}
	return profiles[b].color
}

// InBounds reports whether (x, z) lies inside [0, WorldSize] on both axes.
func InBounds(x, z float64) bool {
	return x >= 0 && z >= 0 && x <= WorldSize && z <= WorldSize
}
