package frames

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"
)

// decodeGIF decodes every frame of a GIF. Frames in a GIF are patches over
// the logical screen, so each one is drawn onto a running canvas and the
// frame's disposal method is applied before the next.
func decodeGIF(path string, seq *Sequence) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return fmt.Errorf("gif: %w", err)
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		for _, p := range g.Image {
			screen = screen.Union(p.Bounds())
		}
	}
	canvas := image.NewNRGBA(screen)

	var saved *image.NRGBA
	for i, p := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			saved = cloneNRGBA(canvas)
		}

		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)
		if err := seq.Add(Opaque(canvas)); err != nil {
			return err
		}

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			copy(canvas.Pix, saved.Pix)
		}
	}
	return nil
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
