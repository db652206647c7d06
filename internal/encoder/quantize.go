package encoder

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Quantize reduces img to a median-cut palette of at most colors entries.
// Pixels are mapped to their nearest palette color without dithering.
// With colors >= MaxColors the image is returned untouched.
func Quantize(img image.Image, colors int) image.Image {
	if colors >= MaxColors {
		return img
	}
	if colors < MinColors {
		colors = MinColors
	}

	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, colors), img)
	if len(pal) == 0 {
		return img
	}

	dst := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(dst, img.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
