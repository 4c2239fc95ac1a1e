package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/renumber/cmd/renumber"
	"github.com/arthur-debert/renumber/cmd/renumber/internal/cli"
	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/ui/styles"
)

func main() {
	rootCmd := renumber.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Rename failures were already rendered in the selected format
		if !cli.IsReported(err) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %s", errors.UserMessage(err))))
		}
		os.Exit(1)
	}
}
