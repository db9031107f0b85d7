package render

import (
	"image/color"

	"github.com/sheikhrachel/lifegrid/model"
)

// fillBinaryRGBA converts a board into row-major RGBA pixels in buf, one pixel per cell.
func fillBinaryRGBA(buf []byte, b model.Board, on, off color.RGBA) {
	size := b.Size()
	for y, row := range b {
		for x, c := range row {
			base := (y*size + x) * 4
			col := off
			if c != 0 {
				col = on
			}
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
