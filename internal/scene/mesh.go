// Package scene turns the terrain field and the herd into flat-coloured
// world-space triangles for one frame.
package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"newera/internal/sims/creatures"
	"newera/internal/terrain"
)

// Layer orders the triangles of one group: the ground comes before the boxes
// standing on it.
type Layer uint8

const (
	LayerGround Layer = iota
	LayerSolid
)

// Triangle is a flat-shaded world-space triangle. Group indexes Mesh.Anchors.
type Triangle struct {
	V     [3]mgl64.Vec3
	Color color.RGBA
	Group int
	Layer Layer
}

// Mesh collects the triangles of one frame.
type Mesh struct {
	Triangles []Triangle
	// Anchors holds one reference point per draw group. A terrain cell, its
	// decoration and the creatures standing on it share a group.
	Anchors   []mgl64.Vec3
	Cells     int
	Props     int
	Creatures int

	cellGroups map[[2]int]int
}

// Reset empties the mesh while keeping its backing storage.
func (m *Mesh) Reset() {
	m.Triangles = m.Triangles[:0]
	m.Anchors = m.Anchors[:0]
	clear(m.cellGroups)
	m.Cells, m.Props, m.Creatures = 0, 0, 0
}

func cellKey(x, z float64) [2]int {
	return [2]int{int(math.Floor(x / terrain.CellSize)), int(math.Floor(z / terrain.CellSize))}
}

func (m *Mesh) newGroup(anchor mgl64.Vec3) int {
	m.Anchors = append(m.Anchors, anchor)
	return len(m.Anchors) - 1
}

// groupAt returns the group of the cell under p, or a new group anchored
// at p when that cell is not in the mesh.
func (m *Mesh) groupAt(p mgl64.Vec3) int {
	if g, ok := m.cellGroups[cellKey(p.X(), p.Z())]; ok {
		return g
	}
	return m.newGroup(p)
}

// AddCell appends the two triangles of a terrain cell and returns its group.
func (m *Mesh) AddCell(c terrain.Cell) int {
	x0, z0 := c.X, c.Z
	x1, z1 := c.X+terrain.CellSize, c.Z+terrain.CellSize
	v1 := mgl64.Vec3{x0, c.Corners[0], z0}
	v2 := mgl64.Vec3{x1, c.Corners[1], z0}
	v3 := mgl64.Vec3{x0, c.Corners[2], z1}
	v4 := mgl64.Vec3{x1, c.Corners[3], z1}
	col := terrain.Color(c.Biome)
	mid := (c.Corners[0] + c.Corners[1] + c.Corners[2] + c.Corners[3]) / 4
	g := m.newGroup(mgl64.Vec3{x0 + terrain.CellSize/2, mid, z0 + terrain.CellSize/2})
	if m.cellGroups == nil {
		m.cellGroups = make(map[[2]int]int)
	}
	m.cellGroups[cellKey(x0, z0)] = g
	m.Triangles = append(m.Triangles,
		Triangle{V: [3]mgl64.Vec3{v1, v3, v4}, Color: col, Group: g},
		Triangle{V: [3]mgl64.Vec3{v1, v4, v2}, Color: col, Group: g},
	)
	m.Cells++
	return g
}

// Per-face light factors, so boxes read as solids without real shading.
var faceLight = [6]float64{
	1.0,  // top
	0.55, // bottom
	0.85, // +x
	0.7,  // -x
	0.9,  // +z
	0.65, // -z
}

// AddBox appends an axis-aligned box centred on center with size (w, h, d),
// drawn as a group of its own.
func (m *Mesh) AddBox(center mgl64.Vec3, w, h, d float64, col color.RGBA) {
	m.addBox(m.newGroup(center), center, w, h, d, col)
}

func (m *Mesh) addBox(g int, center mgl64.Vec3, w, h, d float64, col color.RGBA) {
	hx, hy, hz := w/2, h/2, d/2
	c := func(sx, sy, sz float64) mgl64.Vec3 {
		return center.Add(mgl64.Vec3{sx * hx, sy * hy, sz * hz})
	}
	faces := [6][4]mgl64.Vec3{
		{c(-1, 1, -1), c(1, 1, -1), c(1, 1, 1), c(-1, 1, 1)},
		{c(-1, -1, -1), c(-1, -1, 1), c(1, -1, 1), c(1, -1, -1)},
		{c(1, -1, -1), c(1, -1, 1), c(1, 1, 1), c(1, 1, -1)},
		{c(-1, -1, -1), c(-1, 1, -1), c(-1, 1, 1), c(-1, -1, 1)},
		{c(-1, -1, 1), c(-1, 1, 1), c(1, 1, 1), c(1, -1, 1)},
		{c(-1, -1, -1), c(1, -1, -1), c(1, 1, -1), c(-1, 1, -1)},
	}
	for i, f := range faces {
		fc := shade(col, faceLight[i])
		m.Triangles = append(m.Triangles,
			Triangle{V: [3]mgl64.Vec3{f[0], f[1], f[2]}, Color: fc, Group: g, Layer: LayerSolid},
			Triangle{V: [3]mgl64.Vec3{f[0], f[2], f[3]}, Color: fc, Group: g, Layer: LayerSolid},
		)
	}
}

func shade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R)*k + 0.5),
		G: uint8(float64(c.G)*k + 0.5),
		B: uint8(float64(c.B)*k + 0.5),
		A: c.A,
	}
}

// AddProp appends a decoration box in the group of the cell it stands on.
func (m *Mesh) AddProp(p terrain.Prop) {
	center := mgl64.Vec3{p.X, p.Y, p.Z}
	m.addBox(m.groupAt(center), center, p.W, p.H, p.D, p.Color)
	m.Props++
}

// AddCreature appends the box of a live entity in the group of the cell it
// stands on. Dead entities are skipped.
func (m *Mesh) AddCreature(e *creatures.Entity) {
	if !e.Alive {
		return
	}
	w, h, d := e.Size()
	m.addBox(m.groupAt(e.Position), e.Position, w, h, d, e.Color)
	m.Creatures++
}

// Build fills the mesh with the visible terrain around eye, its decorations
// and every live entity.
func (m *Mesh) Build(eye mgl64.Vec3, entities []creatures.Entity) {
	m.Reset()
	terrain.VisibleCells(eye.X(), eye.Z(), func(c terrain.Cell) {
		m.AddCell(c)
		if p, ok := terrain.Decoration(c); ok {
			m.AddProp(p)
		}
	})
	for i := range entities {
		m.AddCreature(&entities[i])
	}
}
