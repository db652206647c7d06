package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AnyUserName/sheetgen-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <index_json>",
	Short: "Validate a sheet index and check the sheet it describes",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	indexPath := args[0]

	x, err := manifest.ReadJSON(indexPath)
	if err != nil {
		return err
	}

	errs := manifest.Validate(x, filepath.Dir(indexPath))
	if len(errs) == 0 {
		fmt.Println("  ✓ Index is valid")
		fmt.Printf("  ✓ %d frames on a %dx%d grid: sheet present and unchanged\n",
			len(x.Cells), x.Sheet.Rows, x.Sheet.Cols)
		return nil
	}

	fmt.Printf("  ✗ Index has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}
