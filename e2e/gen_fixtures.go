//go:build ignore

// gen_fixtures creates small animated sources for the E2E smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(dir, 0o755)

	// 12 frames: composite count, exact 3x4 sheet.
	writeGIF(filepath.Join(dir, "spinner.gif"), spinner(48, 48, 12))

	// 7 frames: prime count, auto layout leaves one blank cell.
	writeGIF(filepath.Join(dir, "bounce.gif"), bounce(40, 30, 7))

	// Single still frame.
	writePNG(filepath.Join(dir, "still.png"), bar(64, 32, 0.5))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 3 fixtures in %s\n", dir)
}

// spinner draws a bar sweeping across the frame, one step per frame.
func spinner(w, h, n int) *gif.GIF {
	g := &gif.GIF{}
	for i := 0; i < n; i++ {
		g.Image = append(g.Image, toPaletted(bar(w, h, float64(i)/float64(n))))
		g.Delay = append(g.Delay, 8)
	}
	return g
}

// bounce draws a square that moves down then up.
func bounce(w, h, n int) *gif.GIF {
	g := &gif.GIF{}
	for i := 0; i < n; i++ {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		y := i * (h - 8) / (n - 1)
		for py := y; py < y+8; py++ {
			for px := w/2 - 4; px < w/2+4; px++ {
				img.SetNRGBA(px, py, color.NRGBA{R: 240, G: 180, B: 20, A: 255})
			}
		}
		g.Image = append(g.Image, toPaletted(img))
		g.Delay = append(g.Delay, 10)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	return g
}

func bar(w, h int, pos float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	x0 := int(pos * float64(w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 64, A: 255}
			if x >= x0 && x < x0+w/8 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func toPaletted(img image.Image) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), palette.Plan9)
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			p.Set(x, y, img.At(x, y))
		}
	}
	return p
}

func writeGIF(path string, g *gif.GIF) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, g); err != nil {
		fmt.Fprintf(os.Stderr, "encode %s: %v\n", path, err)
		os.Exit(1)
	}
}

func writePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "encode %s: %v\n", path, err)
		os.Exit(1)
	}
}
