// Package frames decodes animated images and videos into an ordered
// sequence of equally sized, opaque frames.
package frames

import (
	"image"

	"github.com/disintegration/imaging"
)

// Sequence is the decoded content of one source file, in display order.
type Sequence struct {
	// Path is the source file the frames were decoded from.
	Path string
	// Kind is the container kind actually used to decode the source.
	Kind Kind
	// Frames holds opaque frames sharing the size of the first one.
	Frames []*image.NRGBA
}

// Len returns the number of decoded frames.
func (s *Sequence) Len() int { return len(s.Frames) }

// Size returns the frame width and height, or zeros for an empty sequence.
func (s *Sequence) Size() (int, int) {
	if len(s.Frames) == 0 {
		return 0, 0
	}
	b := s.Frames[0].Bounds()
	return b.Dx(), b.Dy()
}

// Add appends a frame. The first frame fixes the size of the sequence;
// a frame of any other size is rejected with a DimensionMismatchError.
func (s *Sequence) Add(f *image.NRGBA) error {
	if len(s.Frames) > 0 {
		want := s.Frames[0].Bounds().Size()
		if got := f.Bounds().Size(); got != want {
			return &DimensionMismatchError{Index: len(s.Frames), Want: want, Got: got}
		}
	}
	s.Frames = append(s.Frames, f)
	return nil
}

// Opaque copies img into a new NRGBA image anchored at (0,0) with every
// alpha value set to 0xFF. Color channels are kept as they are, so
// transparent pixels show whatever color they carry.
func Opaque(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}
