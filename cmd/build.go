package cmd

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/AnyUserName/sheetgen-cli/internal/layout"
	"github.com/AnyUserName/sheetgen-cli/internal/pipeline"
	"github.com/AnyUserName/sheetgen-cli/internal/profile"
	"github.com/spf13/cobra"
)

var (
	buildOutDir     string
	buildProfile    string
	buildLayout     string
	buildRows       string
	buildCols       string
	buildQuality    int
	buildColors     int
	buildFormat     string
	buildBackground string
	buildIndex      bool
)

var buildCmd = &cobra.Command{
	Use:   "build <input>",
	Short: "Build a sprite sheet from an animated image or video",
	Long: `Decodes every frame of <input> (GIF, PNG/JPEG/WebP/BMP/TIFF, or any
video ffmpeg can read), lays them out on a grid and writes the sheet.

Auto layout factors the frame count and picks the grid closest to 3:2.
Prime counts are factored as count-1 and the grid grows by one row or
column so every frame still fits. Manual layout takes --rows and --cols.

Colors below 256 quantize the sheet to that many palette entries before
encoding.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "", "output directory (default: next to input)")
	buildCmd.Flags().StringVarP(&buildProfile, "profile", "p", profile.DefaultName, "output profile (default, compact, pixel, web)")
	buildCmd.Flags().StringVar(&buildLayout, "layout", "auto", "layout mode: auto or manual")
	buildCmd.Flags().StringVar(&buildRows, "rows", "", "rows for manual layout")
	buildCmd.Flags().StringVar(&buildCols, "cols", "", "columns for manual layout")
	buildCmd.Flags().IntVarP(&buildQuality, "quality", "q", 0, "quality 1-100 (0 = profile default)")
	buildCmd.Flags().IntVarP(&buildColors, "colors", "c", 0, "palette size 2-256 (0 = profile default)")
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "", "output format: jpeg, webp, avif, png (empty = profile default)")
	buildCmd.Flags().StringVar(&buildBackground, "background", "", "blank cell color as hex RRGGBB (default black)")
	buildCmd.Flags().BoolVar(&buildIndex, "index", false, "also write <sheet>.json with cell rectangles")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	mode, err := layout.ParseMode(buildLayout)
	if err != nil {
		return err
	}
	// --rows/--cols alone imply a manual layout.
	if !cmd.Flags().Changed("layout") && (buildRows != "" || buildCols != "") {
		mode = layout.ModeManual
	}

	if !profile.Known(buildProfile) {
		logVerbose("unknown profile %q, using %s settings", buildProfile, profile.DefaultName)
	}
	prof := profile.Get(buildProfile).Override(buildQuality, buildColors, buildFormat)

	var bg color.Color
	if buildBackground != "" {
		if bg, err = parseHexColor(buildBackground); err != nil {
			return err
		}
	}

	outDir := ""
	if buildOutDir != "" {
		if outDir, err = filepath.Abs(buildOutDir); err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	logVerbose("input:   %s", absInput)
	logVerbose("layout:  %s", mode)
	logVerbose("profile: %s (quality=%d, colors=%d, format=%s)", prof.Name, prof.Quality, prof.Colors, prof.Format)

	p := pipeline.New(pipeline.Config{
		Input:      absInput,
		OutputDir:  outDir,
		Mode:       mode,
		Rows:       buildRows,
		Cols:       buildCols,
		Profile:    prof,
		Background: bg,
		WriteIndex: buildIndex,
		Verbose:    verbose,
	})

	res, err := p.Run(cmd.Context())
	if err != nil {
		var small *layout.TooSmallError
		if errors.As(err, &small) {
			if g, gerr := layout.Auto(small.Frames); gerr == nil {
				return fmt.Errorf("%w; try --rows %d --cols %d or --layout auto", err, g.Rows, g.Cols)
			}
		}
		var big *layout.CanvasTooLargeError
		if errors.As(err, &big) {
			return fmt.Errorf("%w; use fewer rows or columns", err)
		}
		return err
	}

	printBuildReport(res, prof, time.Since(start))
	return nil
}

func printBuildReport(res *pipeline.Result, prof profile.Profile, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║             sheetgen build complete              ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	fmt.Printf("  Source:      %s (%s)\n", filepath.Base(res.Source), res.Kind)
	fmt.Printf("  Frames:      %d × %dx%d\n", res.FrameCount, res.FrameWidth, res.FrameHeight)
	fmt.Printf("  Layout:      %s (%d rows × %d cols)\n", res.Grid, res.Grid.Rows, res.Grid.Cols)
	if res.Blank > 0 {
		fmt.Printf("  Blank cells: %d\n", res.Blank)
	}
	fmt.Printf("  Sheet:       %dx%d px\n", res.Grid.Cols*res.FrameWidth, res.Grid.Rows*res.FrameHeight)
	fmt.Printf("  Encoding:    %s, quality %d, %d colors\n", res.Format, prof.Quality, prof.Colors)
	fmt.Printf("  Output size: %s\n", formatBytes(res.Bytes))
	fmt.Printf("  Hash:        %s\n", res.Hash)
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
	fmt.Printf("  Saved:       %s\n", res.Output)
	if res.IndexPath != "" {
		fmt.Printf("  Index:       %s\n", res.IndexPath)
	}
	fmt.Println()
}

// parseHexColor parses "RRGGBB" or "#RRGGBB" into an opaque color.
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("background %q: want RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
