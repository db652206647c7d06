package layout

import "fmt"

// InvalidInputError reports a layout value that is missing, non-numeric or
// non-positive. Nothing has been planned when it is returned, so the caller
// may simply ask again.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// TooSmallError reports a manual grid that cannot hold every frame.
type TooSmallError struct {
	Grid   Grid
	Frames int
}

// Deficit is the number of frames that would not fit.
func (e *TooSmallError) Deficit() int { return e.Frames - e.Grid.Capacity() }

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("layout %s holds %d cells, too small for %d frames (%d short)",
		e.Grid, e.Grid.Capacity(), e.Frames, e.Deficit())
}
