package encoder

import (
	"image"
)

// Encoder encodes a sprite sheet to a specific format.
type Encoder interface {
	// Format returns the output format name (e.g. "jpeg", "webp", "png").
	Format() string

	// Encode converts the image to bytes at the given quality (1-100),
	// asking the codec for its strongest compression.
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp, avifenc) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}

// DefaultQuality is used when an encoder is handed an out-of-range quality.
const DefaultQuality = 85
