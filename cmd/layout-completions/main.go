// layout-completions writes shell completion scripts for layout, either one
// shell to stdout or every shell into a directory for packaging.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/layout/cmd/layout"
	"github.com/spf13/cobra"
)

type generator struct {
	file string
	gen  func(root *cobra.Command, w io.Writer) error
}

// generators maps each shell to its packaged file name and cobra generator
var generators = map[string]generator{
	"bash": {"layout.bash", func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	}},
	"zsh": {"_layout", func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	}},
	"fish": {"layout.fish", func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	}},
	"powershell": {"layout.ps1", func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	}},
}

func shells() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func usage(prog string) string {
	return fmt.Sprintf("Usage: %s <%s>\n       %s all <output-dir>\n", prog, strings.Join(shells(), "|"), prog)
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 2 && args[0] == "all" {
		return writeAll(args[1])
	}
	if len(args) != 1 {
		return fmt.Errorf("expected a shell name or \"all <output-dir>\"")
	}
	g, ok := generators[args[0]]
	if !ok {
		return fmt.Errorf("unknown shell: %s (supported: %s)", args[0], strings.Join(shells(), "|"))
	}
	if err := g.gen(layout.NewRootCmd(), stdout); err != nil {
		return fmt.Errorf("generating %s completion: %w", args[0], err)
	}
	return nil
}

// writeAll writes one script per shell into dir, creating it if needed
func writeAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, shell := range shells() {
		g := generators[shell]
		f, err := os.Create(filepath.Join(dir, g.file))
		if err != nil {
			return err
		}
		err = g.gen(layout.NewRootCmd(), f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("generating %s completion: %w", shell, err)
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprint(os.Stderr, usage(filepath.Base(os.Args[0])))
		os.Exit(1)
	}
}
