package layout

import (
	"math"
	"strconv"
	"strings"
)

// ParseManual parses user-entered row and column counts.
func ParseManual(rows, cols string) (int, int, error) {
	r, err := parsePositive("rows", rows)
	if err != nil {
		return 0, 0, err
	}
	c, err := parsePositive("cols", cols)
	if err != nil {
		return 0, 0, err
	}
	if err := checkCells(r, c); err != nil {
		return 0, 0, err
	}
	return r, c, nil
}

// Manual validates a caller-supplied grid against frameCount.
func Manual(frameCount, rows, cols int) (Grid, error) {
	if rows <= 0 {
		return Grid{}, &InvalidInputError{Field: "rows", Value: itoa(rows), Reason: "must be positive"}
	}
	if cols <= 0 {
		return Grid{}, &InvalidInputError{Field: "cols", Value: itoa(cols), Reason: "must be positive"}
	}
	if err := checkCells(rows, cols); err != nil {
		return Grid{}, err
	}
	g := Grid{Rows: rows, Cols: cols}
	if g.Capacity() < frameCount {
		return Grid{}, &TooSmallError{Grid: g, Frames: frameCount}
	}
	return g, nil
}

// checkCells rejects grids whose cell count overflows int.
func checkCells(rows, cols int) error {
	if rows > math.MaxInt/cols {
		return &InvalidInputError{
			Field:  "rows",
			Value:  itoa(rows),
			Reason: "grid of " + itoa(rows) + "x" + itoa(cols) + " cells is too large",
		}
	}
	return nil
}

func parsePositive(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &InvalidInputError{Field: field, Value: s, Reason: "required in manual layout"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidInputError{Field: field, Value: s, Reason: "not a number"}
	}
	if n <= 0 {
		return 0, &InvalidInputError{Field: field, Value: s, Reason: "must be positive"}
	}
	return n, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
