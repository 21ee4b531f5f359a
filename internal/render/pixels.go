package render

import "image/color"

// fillPaletteRGBA writes one RGBA pixel per cell. Cells past the end of the
// palette take its last colour, and an empty palette clears buf.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		var col color.RGBA
		if n := len(palette); n > 0 {
			col = palette[min(int(c), n-1)]
		}
		px := buf[4*i : 4*i+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}
