package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetgen",
	Short: "Turn animated images and videos into sprite sheets",
	Long: `sheetgen decodes a GIF, still image or video into frames, picks a
row/column grid that holds them all, tiles the frames into one image and
writes it as <name>_sprite_<rows>x<cols>.<ext> next to the source.

Grids are chosen automatically (aiming for a 3:2 sheet) or given by hand.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(*cobra.Command, []string) {
		// ffmpeg-go prints every compiled command through the standard logger.
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"sheetgen %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[sheetgen] "+format+"\n", args...)
	}
}
