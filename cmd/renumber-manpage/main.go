package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/renumber/cmd/renumber"
	"github.com/arthur-debert/renumber/internal/version"
)

func main() {
	rootCmd := renumber.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RENUMBER",
		Section: "1",
		Source:  "renumber " + version.Version,
		Manual:  "renumber manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
