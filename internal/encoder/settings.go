package encoder

import "fmt"

// Accepted ranges for Settings.
const (
	MinQuality = 1
	MaxQuality = 100
	MinColors  = 2
	MaxColors  = 256
)

// Settings configures how a composed sheet is written.
type Settings struct {
	Quality int    // lossy quality, 1-100
	Colors  int    // palette size, 2-256; 256 keeps full color
	Format  string // encoder format name
}

// InvalidSettingError reports a setting outside its accepted range.
type InvalidSettingError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *InvalidSettingError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Validate checks quality and colors against their ranges.
func (s Settings) Validate() error {
	if s.Quality < MinQuality || s.Quality > MaxQuality {
		return &InvalidSettingError{Field: "quality", Value: s.Quality, Min: MinQuality, Max: MaxQuality}
	}
	if s.Colors < MinColors || s.Colors > MaxColors {
		return &InvalidSettingError{Field: "colors", Value: s.Colors, Min: MinColors, Max: MaxColors}
	}
	return nil
}
