package render

import (
	"context"
	"image"
	"image/gif"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifegrid/model"
)

// ErrNoFrames is returned when asked to encode an empty generation history
var ErrNoFrames = errors.New("no frames to encode")

// AnimationOptions controls how a generation history is turned into an animation
type AnimationOptions struct {
	Palette Palette
	// Scale is the side length of a cell in pixels
	Scale int
	// Delay between frames in 100ths of a second
	Delay int
	// LoopCount follows image/gif: 0 loops forever, -1 plays once
	LoopCount int
}

// DefaultAnimationOptions returns options using the binary colormap
func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Palette: DefaultPalette(),
		Scale:   8,
		Delay:   10,
	}
}

// EncodeGIF writes frames as an animated GIF. Frames are rasterized
// concurrently and encoded in their original order.
func EncodeGIF(ctx context.Context, w io.Writer, frames []model.Board, opts AnimationOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	var (
		images = make([]*image.Paletted, len(frames))
		eg     errgroup.Group
	)
	eg.SetLimit(runtime.NumCPU())

	for i, frame := range frames {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			images[i] = Rasterize(frame, opts.Palette, opts.Scale)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[EncodeGIF] failed to rasterize frames")
	}

	anim := gif.GIF{LoopCount: opts.LoopCount}
	for _, img := range images {
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, opts.Delay)
	}

	return errors.Wrap(gif.EncodeAll(w, &anim), "[EncodeGIF] failed to encode animation")
}

// SaveAnimation writes frames as an animated GIF to path
func SaveAnimation(ctx context.Context, path string, frames []model.Board, opts AnimationOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[SaveAnimation] failed to create file: %+v", path)
	}

	if err = EncodeGIF(ctx, f, frames, opts); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "[SaveAnimation] failed to write: %+v", path)
	}
	return errors.Wrapf(f.Close(), "[SaveAnimation] failed to close file: %+v", path)
}
