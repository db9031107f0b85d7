package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifegrid/model"
)

// Rasterize draws the board as a two-color image with every cell scale x scale pixels.
// Palette index 0 is the dead color and index 1 the alive color.
func Rasterize(b model.Board, p Palette, scale int) *image.Paletted {
	scale = max(scale, 1)
	size := b.Size() * scale
	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{p.Dead, p.Alive})

	for y, row := range b {
		for x, c := range row {
			if c == 0 {
				continue
			}
			for py := y * scale; py < (y+1)*scale; py++ {
				off := img.PixOffset(x*scale, py)
				for i := range scale {
					img.Pix[off+i] = 1
				}
			}
		}
	}
	return img
}

// SavePNG writes a single board snapshot to path
func SavePNG(path string, b model.Board, p Palette, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[SavePNG] failed to create file: %+v", path)
	}

	if err = png.Encode(f, Rasterize(b, p, scale)); err != nil {
		f.Close()
		return errors.Wrapf(err, "[SavePNG] failed to encode board to: %+v", path)
	}
	return errors.Wrapf(f.Close(), "[SavePNG] failed to close file: %+v", path)
}
