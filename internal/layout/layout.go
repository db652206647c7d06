package layout

import (
	"fmt"
	"strings"
)

// Grid is a rows × columns arrangement of sheet cells.
type Grid struct {
	Rows int
	Cols int
}

// Capacity returns the number of cells in the grid.
func (g Grid) Capacity() int { return g.Rows * g.Cols }

// String formats the grid as "RxC", the form used in output file names.
func (g Grid) String() string { return fmt.Sprintf("%dx%d", g.Rows, g.Cols) }

// Blank returns how many cells stay empty when frameCount frames are placed.
func (g Grid) Blank(frameCount int) int {
	if n := g.Capacity() - frameCount; n > 0 {
		return n
	}
	return 0
}

// Mode selects how a grid is chosen.
type Mode string

const (
	ModeAuto   Mode = "auto"   // Factor the frame count (default).
	ModeManual Mode = "manual" // Use caller-supplied rows and columns.
)

// ParseMode parses a layout mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAuto, "":
		return ModeAuto, nil
	case ModeManual:
		return ModeManual, nil
	}
	return "", &InvalidInputError{Field: "layout", Value: s, Reason: "must be auto or manual"}
}

// Plan returns the grid for frameCount frames. In manual mode rows and cols
// are parsed from their textual form; in auto mode they are ignored.
func Plan(frameCount int, mode Mode, rows, cols string) (Grid, error) {
	switch mode {
	case ModeAuto, "":
		return Auto(frameCount)
	case ModeManual:
		r, c, err := ParseManual(rows, cols)
		if err != nil {
			return Grid{}, err
		}
		return Manual(frameCount, r, c)
	}
	return Grid{}, &InvalidInputError{Field: "layout", Value: string(mode), Reason: "must be auto or manual"}
}
