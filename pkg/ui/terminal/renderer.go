// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/types"
	"github.com/arthur-debert/layout/pkg/ui/display"
	"github.com/arthur-debert/layout/pkg/ui/styles"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Renderer provides rich terminal output using lipgloss styles and pterm trees
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a display result with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ApplyResult:
		return r.renderApply(v)
	case *display.CheckResult:
		return r.renderCheck(v)
	case *display.TreeView:
		return r.renderTree(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderApply(v *display.ApplyResult) error {
	header := styles.Render("Success", "✓ ")
	if v.DryRun {
		header = styles.Render("Warning", "dry run ")
	}
	if _, err := fmt.Fprintln(r.output, header+styles.Render("Header", v.Summary())); err != nil {
		return err
	}
	for _, p := range v.Paths {
		if _, err := fmt.Fprintln(r.output, styles.Render("Created", "+ "+p)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderCheck(v *display.CheckResult) error {
	mark := styles.Render("Success", "✓")
	verdict := "is a regular folder"
	if !v.Regular {
		mark = styles.Render("Error", "✗")
		verdict = "is not a regular folder"
	}
	_, err := fmt.Fprintf(r.output, "%s %s %s\n", mark, styles.Render("Path", v.Path), verdict)
	return err
}

func (r *Renderer) renderTree(v *display.TreeView) error {
	if v.Source != "" {
		if _, err := fmt.Fprintln(r.output, styles.Render("Muted", v.Source)); err != nil {
			return err
		}
	}
	out, err := pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(leveledList(v.Tree))).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(r.output, out)
	return err
}

// leveledList flattens a tree in pre-order for pterm
func leveledList(tree *types.Entry) pterm.LeveledList {
	var list pterm.LeveledList
	tree.Walk(func(e *types.Entry, depth int) {
		name := styles.Render("File", e.Name)
		if e.IsDir() {
			name = styles.Render("Directory", e.Name+"/")
		}
		list = append(list, pterm.LeveledListItem{Level: depth, Text: name})
	})
	return list
}

// RenderError renders an error with its code and the path involved
func (r *Renderer) RenderError(err error) error {
	msg := styles.Render("Error", "Error: ") + err.Error()
	if p := errors.GetPath(err); p != "" {
		msg += "\n  " + styles.Render("Muted", "path: ") + styles.Render("Path", p)
	}
	_, werr := fmt.Fprintln(r.output, msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Info", msg))
	return err
}
