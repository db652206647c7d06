package layout

import "math"

// TargetAspect is the cols/rows ratio auto layouts aim for.
const TargetAspect = 1.5

// Auto picks a grid for frameCount frames.
//
// Prime counts are factored as frameCount-1 so that, say, 7 frames land in
// a 2-row sheet instead of a single 1x7 strip. The chosen grid is then grown
// by one column or one row (whichever wastes fewer cells, columns on a tie)
// so the original count always fits.
func Auto(frameCount int) (Grid, error) {
	if frameCount < 1 {
		return Grid{}, &InvalidInputError{
			Field:  "frames",
			Value:  itoa(frameCount),
			Reason: "need at least one frame",
		}
	}

	g := bestPair(AdjustedCount(frameCount))
	if g.Capacity() >= frameCount {
		return g, nil
	}

	wider := Grid{Rows: g.Rows, Cols: g.Cols + 1}
	taller := Grid{Rows: g.Rows + 1, Cols: g.Cols}
	if taller.Blank(frameCount) < wider.Blank(frameCount) {
		return taller, nil
	}
	return wider, nil
}

// AdjustedCount returns n-1 for primes n >= 2 and n otherwise.
func AdjustedCount(n int) int {
	if n < 2 {
		return n
	}
	if IsPrime(n) {
		return n - 1
	}
	return n
}

// IsPrime reports whether n is prime, by trial division up to sqrt(n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Factors returns every divisor pair of n as grids, rows ascending, with
// rows <= cols.
func Factors(n int) []Grid {
	var out []Grid
	for d := 1; d*d <= n; d++ {
		if n%d == 0 {
			out = append(out, Grid{Rows: d, Cols: n / d})
		}
	}
	return out
}

// bestPair returns the divisor pair of n whose cols/rows ratio is closest to
// TargetAspect. The first pair wins ties.
func bestPair(n int) Grid {
	best := Grid{Rows: 1, Cols: n}
	bestDiff := math.Inf(1)
	for _, g := range Factors(n) {
		diff := math.Abs(float64(g.Cols)/float64(g.Rows) - TargetAspect)
		if diff < bestDiff {
			best, bestDiff = g, diff
		}
	}
	return best
}
