package main

import (
	"os"

	"github.com/arthur-debert/layout/cmd/layout"
	"github.com/arthur-debert/layout/pkg/ui"
)

func main() {
	rootCmd := layout.NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if !layout.Reported(err) {
		name, _ := rootCmd.PersistentFlags().GetString("format")
		format, perr := ui.ParseFormat(name)
		if perr != nil {
			format = ui.FormatAuto
		}
		if r, rerr := ui.NewRenderer(format, os.Stderr); rerr == nil {
			_ = r.RenderError(err)
		}
	}
	os.Exit(layout.ExitCode(err))
}
