package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AnyUserName/sheetgen-cli/internal/layout"
	"github.com/AnyUserName/sheetgen-cli/internal/pipeline"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <input>",
	Short: "Show the frame count and suggested layout without writing anything",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	s, err := pipeline.New(pipeline.Config{Input: absInput, Verbose: verbose}).Suggest(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Source:           %s (%s)\n", filepath.Base(s.Source), s.Kind)
	fmt.Printf("  Total frames:     %d\n", s.FrameCount)
	fmt.Printf("  Frame size:       %dx%d\n", s.FrameWidth, s.FrameHeight)
	if s.Adjusted != s.FrameCount {
		fmt.Printf("  Factored as:      %d (prime count)\n", s.Adjusted)
	}
	fmt.Printf("  Suggested layout: %s\n", s.Grid)
	if blank := s.Grid.Blank(s.FrameCount); blank > 0 {
		fmt.Printf("  Blank cells:      %d\n", blank)
	}
	fmt.Printf("  Sheet size:       %dx%d px\n", s.Grid.Cols*s.FrameWidth, s.Grid.Rows*s.FrameHeight)
	fmt.Println()

	fmt.Println("  Other exact layouts:")
	for _, g := range layout.Factors(s.FrameCount) {
		fmt.Printf("    %-8s  %d × %d px\n", g, g.Cols*s.FrameWidth, g.Rows*s.FrameHeight)
	}
	fmt.Println()
	return nil
}
