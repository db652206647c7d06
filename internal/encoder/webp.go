package encoder

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strconv"
	"sync"
)

// WebPEncoder encodes sheets to lossy WebP by shelling out to cwebp.
// Install: brew install webp / apt install webp
type WebPEncoder struct {
	once      sync.Once
	available bool
	cwebpPath string
}

func (e *WebPEncoder) Format() string    { return "webp" }
func (e *WebPEncoder) Extension() string { return "webp" }

func (e *WebPEncoder) Available() bool {
	e.once.Do(func() {
		e.cwebpPath, e.available = lookTool("cwebp")
	})
	return e.available
}

func (e *WebPEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("cwebp not found in PATH; install with: brew install webp")
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return runExternal(img, "webp", func(src, dst string) *exec.Cmd {
		return exec.Command(e.cwebpPath,
			"-q", strconv.Itoa(quality),
			"-m", "6", // slowest method, smallest output
			"-quiet",
			src,
			"-o", dst,
		)
	})
}

// AVIFEncoder encodes sheets to AVIF by shelling out to avifenc.
// Install: brew install libavif / apt install libavif-bin
type AVIFEncoder struct {
	once        sync.Once
	available   bool
	avifencPath string
}

func (e *AVIFEncoder) Format() string    { return "avif" }
func (e *AVIFEncoder) Extension() string { return "avif" }

func (e *AVIFEncoder) Available() bool {
	e.once.Do(func() {
		e.avifencPath, e.available = lookTool("avifenc")
	})
	return e.available
}

func (e *AVIFEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("avifenc not found in PATH; install with: brew install libavif")
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	// avifenc quantizers run 0 (best) to 63 (worst).
	q := strconv.Itoa(63 - quality*63/100)
	return runExternal(img, "avif", func(src, dst string) *exec.Cmd {
		return exec.Command(e.avifencPath,
			"--min", q,
			"--max", q,
			"--speed", "0",
			src,
			dst,
		)
	})
}

func lookTool(name string) (string, bool) {
	path, err := exec.LookPath(name)
	return path, err == nil
}

// runExternal hands img to an external encoder through a PNG temp file and
// returns the bytes it wrote. Both temp files are removed on return.
func runExternal(img image.Image, ext string, command func(src, dst string) *exec.Cmd) ([]byte, error) {
	srcFile, err := os.CreateTemp("", "sheetgen_src_*.png")
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	srcPath := srcFile.Name()
	defer os.Remove(srcPath)

	if err := png.Encode(srcFile, img); err != nil {
		srcFile.Close()
		return nil, fmt.Errorf("encode temp png: %w", err)
	}
	if err := srcFile.Close(); err != nil {
		return nil, fmt.Errorf("write temp png: %w", err)
	}

	dstFile, err := os.CreateTemp("", "sheetgen_dst_*."+ext)
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	dstPath := dstFile.Name()
	dstFile.Close()
	defer os.Remove(dstPath)

	cmd := command(srcPath, dstPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", cmd.Path, err, string(out))
	}
	return os.ReadFile(dstPath)
}
