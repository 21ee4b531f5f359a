package terrain

import (
	"image/color"
	"math"
)

// Prop is a static scenery box standing on a terrain cell.
type Prop struct {
	Name string
	// Center of the box in world space.
	X, Y, Z float64
	// Width, Height and Depth of the box.
	W, H, D float64
	Color   color.RGBA
}

type propProfile struct {
	name    string
	modulus int
	w, h    float64
	color   color.RGBA
}

var props = [BiomeCount]propProfile{
	Forest:    {name: "tree", modulus: 300, w: 2, h: 16, color: color.RGBA{R: 0, G: 117, B: 44, A: 255}},
	Desert:    {name: "cactus", modulus: 600, w: 1, h: 6, color: color.RGBA{R: 211, G: 176, B: 131, A: 255}},
	Tundra:    {name: "shrub", modulus: 700, w: 1, h: 4, color: color.RGBA{R: 200, G: 200, B: 200, A: 255}},
	Mountains: {name: "rock", modulus: 500, w: 1.5, h: 24, color: color.RGBA{R: 130, G: 130, B: 130, A: 255}},
	Plains:    {name: "bush", modulus: 400, w: 1, h: 8, color: color.RGBA{R: 0, G: 228, B: 48, A: 255}},
}

// propOffset shifts a prop off the cell origin.
const propOffset = 5

// Decoration returns the prop standing on c, if any. Placement depends on the
// cell origin alone: (floor(x)+floor(z)) must be a multiple of the biome modulus.
func Decoration(c Cell) (Prop, bool) {
	if !c.Biome.known() {
		return Prop{}, false
	}
	p := props[c.Biome]
	if (int(math.Floor(c.X))+int(math.Floor(c.Z)))%p.modulus != 0 {
		return Prop{}, false
	}
	return Prop{
		Name:  p.name,
		X:     c.X + propOffset,
		Y:     c.Corners[0] + p.h/2,
		Z:     c.Z + propOffset,
		W:     p.w,
		H:     p.h,
		D:     p.w,
		Color: p.color,
	}, true
}
