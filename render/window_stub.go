//go:build !ebiten

package render

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifegrid/model"
)

// ErrWindowUnavailable is returned by ShowWindow in builds without the ebiten tag
var ErrWindowUnavailable = errors.New("window rendering requires building with -tags ebiten")

// ShowWindow reports that this build has no desktop window support
func ShowWindow(_ string, frames []model.Board, _ AnimationOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	return ErrWindowUnavailable
}
