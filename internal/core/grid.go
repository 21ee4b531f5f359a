package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Fill sets every cell to the value returned by fn.
func (g *ByteGrid) Fill(fn func(x, y int) uint8) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.data[y*g.W+x] = fn(x, y)
		}
	}
}
