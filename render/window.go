//go:build ebiten

package render

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/lifegrid/model"
)

// window plays a generation history in a desktop window, looping at the end
type window struct {
	frames []model.Board
	opts   AnimationOptions
	pixels []byte
	frame  int
	ticks  int
}

func (w *window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Delay is in 100ths of a second and ebiten ticks at 60 TPS
	w.ticks++
	if w.ticks*100 >= max(w.opts.Delay, 1)*ebiten.TPS() {
		w.ticks = 0
		w.frame = (w.frame + 1) % len(w.frames)
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	fillBinaryRGBA(w.pixels, w.frames[w.frame], w.opts.Palette.Alive, w.opts.Palette.Dead)
	screen.WritePixels(w.pixels)
}

func (w *window) Layout(_, _ int) (int, int) {
	size := w.frames[0].Size()
	return size, size
}

// ShowWindow opens a window and loops frames until it is closed or Q is pressed
func ShowWindow(title string, frames []model.Board, opts AnimationOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	size := frames[0].Size()
	w := &window{
		frames: frames,
		opts:   opts,
		pixels: make([]byte, size*size*4),
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(size*max(opts.Scale, 1), size*max(opts.Scale, 1))

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
