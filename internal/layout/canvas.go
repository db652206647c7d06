package layout

import "fmt"

// Canvas limits. MaxCanvasSide is the largest dimension a JPEG can store;
// MaxCanvasPixels keeps an NRGBA sheet at or under 1 GiB.
const (
	MaxCanvasSide   = 65535
	MaxCanvasPixels = 1 << 28
)

// CanvasTooLargeError reports a grid whose sheet would exceed the canvas
// limits for frames of the given size.
type CanvasTooLargeError struct {
	Grid        Grid
	FrameWidth  int
	FrameHeight int
}

func (e *CanvasTooLargeError) Error() string {
	return fmt.Sprintf("layout %s of %dx%d frames exceeds the canvas limit (%d px per side, %d px total)",
		e.Grid, e.FrameWidth, e.FrameHeight, MaxCanvasSide, MaxCanvasPixels)
}

// CheckCanvas reports whether a sheet of g cells of fw×fh fits the canvas
// limits. It never multiplies past MaxCanvasSide, so huge grids cannot
// overflow.
func CheckCanvas(g Grid, fw, fh int) error {
	if fw < 1 || fh < 1 || g.Rows < 1 || g.Cols < 1 {
		return nil
	}
	tooLarge := &CanvasTooLargeError{Grid: g, FrameWidth: fw, FrameHeight: fh}
	if g.Cols > MaxCanvasSide/fw || g.Rows > MaxCanvasSide/fh {
		return tooLarge
	}
	if int64(g.Cols*fw)*int64(g.Rows*fh) > MaxCanvasPixels {
		return tooLarge
	}
	return nil
}
