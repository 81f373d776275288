package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/layout/cmd/layout"
	"github.com/arthur-debert/layout/internal/version"
)

func main() {
	rootCmd := layout.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LAYOUT",
		Section: "1",
		Source:  "layout " + version.Version,
		Manual:  "layout manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
