package pipeline

import (
	"context"
	"image"
	"path/filepath"

	"github.com/AnyUserName/sheetgen-cli/internal/encoder"
	"github.com/AnyUserName/sheetgen-cli/internal/frames"
	"github.com/AnyUserName/sheetgen-cli/internal/hasher"
	"github.com/AnyUserName/sheetgen-cli/internal/layout"
	"github.com/AnyUserName/sheetgen-cli/internal/manifest"
	"github.com/AnyUserName/sheetgen-cli/internal/sheet"
)

// Result describes a finished build.
type Result struct {
	Source      string
	Kind        frames.Kind
	FrameCount  int
	FrameWidth  int
	FrameHeight int
	Grid        layout.Grid
	Blank       int // cells left empty
	Output      string
	Format      string
	Bytes       int64
	Hash        string // xxhash64, 16 hex chars
	IndexPath   string // empty unless an index was written
}

// run carries one build's state from stage to stage. Each stage consumes
// what the previous one produced and releases what it no longer needs.
type run struct {
	cfg      Config
	registry *encoder.Registry
	logf     func(format string, args ...any)

	seq    *frames.Sequence
	kind   frames.Kind
	count  int
	fw, fh int
	grid   layout.Grid
	canvas *image.NRGBA
	cells  []image.Rectangle

	output string
	format string
	size   int64
	hash   string
	index  string
}

func (r *run) decode(ctx context.Context) error {
	seq, err := frames.Decode(ctx, r.cfg.Input)
	if err != nil {
		return err
	}
	r.seq = seq
	r.kind = seq.Kind
	r.count = seq.Len()
	r.fw, r.fh = seq.Size()
	r.logf("decoded %d %s frames of %dx%d from %s", r.count, seq.Kind, r.fw, r.fh, seq.Path)
	return nil
}

func (r *run) plan() error {
	grid, err := layout.Plan(r.count, r.cfg.Mode, r.cfg.Rows, r.cfg.Cols)
	if err != nil {
		return err
	}
	if err := layout.CheckCanvas(grid, r.fw, r.fh); err != nil {
		return err
	}
	r.grid = grid
	if r.cfg.Mode == layout.ModeAuto && layout.AdjustedCount(r.count) != r.count {
		r.logf("%d frames is prime; factored %d", r.count, layout.AdjustedCount(r.count))
	}
	r.logf("layout %s (%s, %d blank)", grid, r.cfg.Mode, grid.Blank(r.count))
	return nil
}

func (r *run) compose() {
	canvas, placed := sheet.Compose(r.seq.Frames, r.grid, sheet.Options{Background: r.cfg.Background})
	if placed < r.count {
		r.logf("warn: grid %s dropped %d frames", r.grid, r.count-placed)
	}
	for i := 0; i < placed; i++ {
		r.cells = append(r.cells, sheet.CellRect(r.grid, r.fw, r.fh, i))
	}
	r.canvas = canvas
	r.seq = nil // frames are no longer needed
}

func (r *run) encode() error {
	settings := r.cfg.Settings()
	enc, err := r.registry.Lookup(settings.Format)
	if err != nil {
		return err
	}
	r.output = encoder.OutputPath(r.cfg.Input, r.grid, enc.Extension(), r.cfg.OutputDir)

	data, _, err := r.registry.EncodeSheet(r.canvas, settings)
	if err != nil {
		return &encoder.EncodeError{Path: r.output, Err: err}
	}
	if err := encoder.WriteFile(r.output, data); err != nil {
		return err
	}
	r.format = enc.Format()
	r.size = int64(len(data))
	r.hash = hasher.ContentHash(data, 16)
	r.logf("wrote %s (%d bytes, %s q=%d colors=%d)",
		r.output, r.size, r.format, settings.Quality, settings.Colors)
	return nil
}

func (r *run) writeIndex() error {
	b := r.canvas.Bounds()
	x := manifest.New()
	x.Source = manifest.Source{
		Path:        r.cfg.Input,
		Kind:        string(r.kind),
		FrameCount:  r.count,
		FrameWidth:  r.fw,
		FrameHeight: r.fh,
	}
	x.Sheet = manifest.Sheet{
		Path:   filepath.Base(r.output),
		Format: r.format,
		Rows:   r.grid.Rows,
		Cols:   r.grid.Cols,
		Width:  b.Dx(),
		Height: b.Dy(),
		Size:   r.size,
		Hash:   r.hash,
	}
	x.Settings = manifest.Settings{
		Profile: r.cfg.Profile.Name,
		Quality: r.cfg.Profile.Quality,
		Colors:  r.cfg.Profile.Colors,
		Layout:  string(r.cfg.Mode),
	}
	for i, cell := range r.cells {
		x.AddCell(i, cell)
	}

	r.index = manifest.PathFor(r.output)
	if err := manifest.WriteJSON(x, r.index); err != nil {
		return err
	}
	r.logf("wrote index %s (%d cells)", r.index, len(x.Cells))
	return nil
}

func (r *run) result() *Result {
	return &Result{
		Source:      r.cfg.Input,
		Kind:        r.kind,
		FrameCount:  r.count,
		FrameWidth:  r.fw,
		FrameHeight: r.fh,
		Grid:        r.grid,
		Blank:       r.grid.Blank(r.count),
		Output:      r.output,
		Format:      r.format,
		Bytes:       r.size,
		Hash:        r.hash,
		IndexPath:   r.index,
	}
}
