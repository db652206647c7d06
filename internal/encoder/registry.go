package encoder

import (
	"fmt"
	"image"
	"strings"
)

// Registry holds every encoder that can run on this machine.
type Registry struct {
	encoders map[string]Encoder
}

// formatOrder is the order formats are listed in.
var formatOrder = []string{"jpeg", "webp", "avif", "png"}

// formatAliases maps alternative spellings to format names.
var formatAliases = map[string]string{
	"jpg": "jpeg",
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		&JPEGEncoder{},
		&WebPEncoder{},
		&AVIFEncoder{},
		&PNGEncoder{},
	}
	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}
	return r
}

// NormalizeFormat lowercases a format name and resolves aliases.
func NormalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	if alias, ok := formatAliases[f]; ok {
		return alias
	}
	return f
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[NormalizeFormat(format)]
}

// Lookup is Get with an error naming the missing format.
func (r *Registry) Lookup(format string) (Encoder, error) {
	if enc := r.Get(format); enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("output format %q unavailable (%s)", format, r)
}

// Available returns all available format names.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range formatOrder {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// EncodeSheet quantizes canvas per s and encodes it with the matching
// encoder. It returns the encoded bytes and the encoder used.
func (r *Registry) EncodeSheet(canvas image.Image, s Settings) ([]byte, Encoder, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	enc, err := r.Lookup(s.Format)
	if err != nil {
		return nil, nil, err
	}
	data, err := enc.Encode(Quantize(canvas, s.Colors), s.Quality)
	if err != nil {
		return nil, enc, fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	return data, enc, nil
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
