package frames

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoFrames is wrapped by DecodeError when a source decodes cleanly but
// contains nothing to tile.
var ErrNoFrames = errors.New("no frames decoded")

// DecodeError reports a source that could not be opened or decoded, or that
// produced no frames.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DimensionMismatchError reports a frame whose size differs from the first
// frame of its sequence.
type DimensionMismatchError struct {
	Index int
	Want  image.Point
	Got   image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("frame %d is %dx%d, expected %dx%d like frame 0",
		e.Index, e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}
