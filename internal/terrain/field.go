package terrain

import "math"

// Cell is one square patch of the height field, ready to be drawn.
type Cell struct {
	X, Z  float64
	Biome Biome
	// Corners are sampled at (X,Z), (X+CellSize,Z), (X,Z+CellSize) and
	// (X+CellSize,Z+CellSize), in that order.
	Corners [4]float64
}

// NewCell samples the cell whose origin is (x, z). The biome is taken from the
// origin and used for all four corners.
func NewCell(x, z float64) Cell {
	b := Classify(x, z)
	return Cell{
		X:     x,
		Z:     z,
		Biome: b,
		Corners: [4]float64{
			Height(x, z, b),
			Height(x+CellSize, z, b),
			Height(x, z+CellSize, b),
			Height(x+CellSize, z+CellSize, b),
		},
	}
}

// VisibleCells calls fn for every cell within ViewDistance of (cx, cz). The
// grid is anchored at world multiples of CellSize. Cells whose origin falls
// outside the world are skipped, never clamped.
func VisibleCells(cx, cz float64, fn func(Cell)) {
	x0 := math.Floor((cx-ViewDistance)/CellSize) * CellSize
	z0 := math.Floor((cz-ViewDistance)/CellSize) * CellSize
	for x := x0; x < cx+ViewDistance; x += CellSize {
		for z := z0; z < cz+ViewDistance; z += CellSize {
			if !InBounds(x, z) {
				continue
			}
			fn(NewCell(x, z))
		}
	}
}
