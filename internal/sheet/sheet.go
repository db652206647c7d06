// Package sheet tiles a frame sequence into a single grid image.
package sheet

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/AnyUserName/sheetgen-cli/internal/layout"
	"github.com/disintegration/imaging"
)

// Options controls composition.
type Options struct {
	// Background fills cells no frame lands in. Nil means opaque black.
	Background color.Color
}

// Compose allocates a canvas for grid and copies frames into it in order,
// left to right then top to bottom. Frames beyond the grid's capacity are
// dropped; the number actually placed is returned.
//
// All frames must share the size of frames[0], and grid must pass
// layout.CheckCanvas for that size.
func Compose(frames []*image.NRGBA, grid layout.Grid, opts Options) (*image.NRGBA, int) {
	if len(frames) == 0 || grid.Rows < 1 || grid.Cols < 1 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0)), 0
	}

	fw, fh := frames[0].Bounds().Dx(), frames[0].Bounds().Dy()
	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}
	canvas := imaging.New(grid.Cols*fw, grid.Rows*fh, bg)

	placed := 0
	for idx, f := range frames {
		if idx >= grid.Capacity() {
			break
		}
		draw.Draw(canvas, CellRect(grid, fw, fh, idx), f, f.Bounds().Min, draw.Src)
		placed++
	}
	return canvas, placed
}

// CellRect returns the canvas rectangle of cell idx for frames of fw×fh.
func CellRect(grid layout.Grid, fw, fh, idx int) image.Rectangle {
	row, col := idx/grid.Cols, idx%grid.Cols
	return image.Rect(col*fw, row*fh, (col+1)*fw, (row+1)*fh)
}
