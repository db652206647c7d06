package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/sheetgen-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sheetgen: %v\n", err)
		os.Exit(1)
	}
}
