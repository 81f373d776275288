// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/layout/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a display result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ApplyResult:
		if _, err := fmt.Fprintln(r.output, v.Summary()); err != nil {
			return err
		}
		for _, p := range v.Paths {
			if _, err := fmt.Fprintf(r.output, "  + %s\n", p); err != nil {
				return err
			}
		}
		return nil
	case *display.CheckResult:
		verdict := "is a regular folder"
		if !v.Regular {
			verdict = "is NOT a regular folder"
		}
		_, err := fmt.Fprintf(r.output, "%s %s\n", v.Path, verdict)
		return err
	case *display.TreeView:
		_, err := fmt.Fprint(r.output, v.Tree.String())
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
