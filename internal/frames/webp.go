package frames

import (
	"fmt"
	"os"

	"github.com/gen2brain/webp"
)

// decodeWebP decodes every frame of a WebP, still or animated. Animated
// frames come back composited onto the full canvas with blending and
// disposal already applied.
func decodeWebP(path string, seq *Sequence) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := webp.DecodeAll(f)
	if err != nil {
		return fmt.Errorf("webp: %w", err)
	}
	for _, img := range w.Image {
		if err := seq.Add(Opaque(img)); err != nil {
			return err
		}
	}
	return nil
}
