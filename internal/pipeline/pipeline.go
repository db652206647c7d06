package pipeline

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/AnyUserName/sheetgen-cli/internal/encoder"
	"github.com/AnyUserName/sheetgen-cli/internal/frames"
	"github.com/AnyUserName/sheetgen-cli/internal/layout"
	"github.com/AnyUserName/sheetgen-cli/internal/profile"
)

// Config holds all parameters for one sheet build.
type Config struct {
	Input      string
	OutputDir  string // empty writes beside Input
	Mode       layout.Mode
	Rows       string // manual layout only
	Cols       string // manual layout only
	Profile    profile.Profile
	Background color.Color // blank cell fill, nil = black
	WriteIndex bool        // also write <sheet>.json
	Verbose    bool
}

// Settings returns the encoder settings carried by the profile.
func (c Config) Settings() encoder.Settings {
	return encoder.Settings{
		Quality: c.Profile.Quality,
		Colors:  c.Profile.Colors,
		Format:  c.Profile.Format,
	}
}

// Pipeline turns one source file into one sprite sheet. Stages run
// strictly in order: decode, plan, compose, encode.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Mode == "" {
		cfg.Mode = layout.ModeAuto
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

// Run executes the full build and reports what was written.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	p.logf("%s", p.registry)

	// Reject bad settings before the expensive decode.
	if err := p.cfg.Settings().Validate(); err != nil {
		return nil, err
	}
	if p.cfg.Mode == layout.ModeManual {
		if _, _, err := layout.ParseManual(p.cfg.Rows, p.cfg.Cols); err != nil {
			return nil, err
		}
	}
	if _, err := p.registry.Lookup(p.cfg.Profile.Format); err != nil {
		return nil, err
	}

	r := &run{cfg: p.cfg, registry: p.registry, logf: p.logf}
	if err := r.decode(ctx); err != nil {
		return nil, err
	}
	if err := r.plan(); err != nil {
		return nil, err
	}
	r.compose()
	if err := r.encode(); err != nil {
		return nil, err
	}
	if p.cfg.WriteIndex {
		if err := r.writeIndex(); err != nil {
			return nil, fmt.Errorf("write index: %w", err)
		}
	}
	return r.result(), nil
}

// Suggestion is the automatic layout for a source, without building it.
type Suggestion struct {
	Source      string
	Kind        frames.Kind
	FrameCount  int
	FrameWidth  int
	FrameHeight int
	Adjusted    int // count actually factored
	Grid        layout.Grid
}

// Suggest decodes the source and plans an automatic layout for it.
func (p *Pipeline) Suggest(ctx context.Context) (*Suggestion, error) {
	seq, err := frames.Decode(ctx, p.cfg.Input)
	if err != nil {
		return nil, err
	}
	grid, err := layout.Auto(seq.Len())
	if err != nil {
		return nil, err
	}
	w, h := seq.Size()
	return &Suggestion{
		Source:      seq.Path,
		Kind:        seq.Kind,
		FrameCount:  seq.Len(),
		FrameWidth:  w,
		FrameHeight: h,
		Adjusted:    layout.AdjustedCount(seq.Len()),
		Grid:        grid,
	}, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[sheetgen] "+format+"\n", args...)
	}
}
