package manifest

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/AnyUserName/sheetgen-cli/internal/hasher"

	_ "golang.org/x/image/webp"
)

// Validate checks an index against itself and against the sheet file it
// names, resolved relative to baseDir. It returns one message per problem.
func Validate(x *Index, baseDir string) []string {
	var errs []string

	if x.Version != SupportedIndexVersion {
		errs = append(errs, fmt.Sprintf("unsupported index version: %d", x.Version))
	}

	s := x.Sheet
	if s.Rows <= 0 || s.Cols <= 0 {
		errs = append(errs, fmt.Sprintf("invalid grid %dx%d", s.Rows, s.Cols))
	}
	if x.Source.FrameWidth <= 0 || x.Source.FrameHeight <= 0 {
		errs = append(errs, fmt.Sprintf("invalid frame size %dx%d",
			x.Source.FrameWidth, x.Source.FrameHeight))
	}
	if s.Rows*s.Cols < x.Source.FrameCount {
		errs = append(errs, fmt.Sprintf("grid %dx%d cannot hold %d frames",
			s.Rows, s.Cols, x.Source.FrameCount))
	}
	if s.Width != s.Cols*x.Source.FrameWidth || s.Height != s.Rows*x.Source.FrameHeight {
		errs = append(errs, fmt.Sprintf("sheet %dx%d does not match %dx%d cells of %dx%d",
			s.Width, s.Height, s.Rows, s.Cols, x.Source.FrameWidth, x.Source.FrameHeight))
	}

	// Cells.
	if len(x.Cells) != x.Source.FrameCount {
		errs = append(errs, fmt.Sprintf("%d cells for %d frames", len(x.Cells), x.Source.FrameCount))
	}
	bounds := image.Rect(0, 0, s.Width, s.Height)
	seen := map[image.Point]int{}
	for i, c := range x.Cells {
		if c.Index != i {
			errs = append(errs, fmt.Sprintf("cell[%d]: index %d out of order", i, c.Index))
		}
		r := image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)
		if !r.In(bounds) || r.Empty() {
			errs = append(errs, fmt.Sprintf("cell[%d]: %v outside sheet %v", i, r, bounds))
		}
		if prev, dup := seen[r.Min]; dup {
			errs = append(errs, fmt.Sprintf("cell[%d]: overlaps cell[%d]", i, prev))
		}
		seen[r.Min] = i
	}

	// Sheet file.
	if s.Path == "" {
		errs = append(errs, "sheet path missing")
		return errs
	}
	full := filepath.Join(baseDir, s.Path)
	info, err := os.Stat(full)
	if err != nil {
		errs = append(errs, fmt.Sprintf("sheet file not found: %s", s.Path))
		return errs
	}
	if s.Size > 0 && info.Size() != s.Size {
		errs = append(errs, fmt.Sprintf("sheet size mismatch: index=%d, disk=%d", s.Size, info.Size()))
	}
	if s.Hash != "" {
		if h, err := hasher.FileHash(full, len(s.Hash)); err != nil {
			errs = append(errs, fmt.Sprintf("hash sheet: %v", err))
		} else if h != s.Hash {
			errs = append(errs, fmt.Sprintf("sheet hash mismatch: index=%s, disk=%s", s.Hash, h))
		}
	}
	if s.Format == "avif" {
		return errs // no decoder for the header check
	}
	if cfg, err := decodeConfig(full); err != nil {
		errs = append(errs, fmt.Sprintf("read sheet header: %v", err))
	} else if cfg.Width != s.Width || cfg.Height != s.Height {
		errs = append(errs, fmt.Sprintf("sheet is %dx%d on disk, index says %dx%d",
			cfg.Width, cfg.Height, s.Width, s.Height))
	}

	return errs
}

func decodeConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	return cfg, err
}
