package frames

import (
	"context"
	"errors"
	"os"
)

// Decode reads every frame of the source at path.
//
// GIFs and animated WebPs are composited frame by frame onto their canvas;
// still images yield a single frame; everything else is streamed through
// ffmpeg. ctx bounds the ffmpeg child process only.
func Decode(ctx context.Context, path string) (*Sequence, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	seq := &Sequence{Path: path, Kind: KindOf(path)}
	var err error
	switch seq.Kind {
	case KindGIF:
		err = decodeGIF(path, seq)
	case KindWebP:
		err = decodeWebP(path, seq)
	case KindStill:
		err = decodeStill(path, seq)
	default:
		err = decodeVideo(ctx, path, seq)
	}

	if err != nil {
		var dim *DimensionMismatchError
		if errors.As(err, &dim) {
			return nil, err
		}
		return nil, &DecodeError{Path: path, Err: err}
	}
	if seq.Len() == 0 {
		return nil, &DecodeError{Path: path, Err: ErrNoFrames}
	}
	return seq, nil
}
