package topics

import (
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/mattn/go-isatty"
)

// GlamourRenderer renders markdown topics with glamour and leaves the rest alone.
// The term renderer is built on first use and reused.
type GlamourRenderer struct {
	Style string // a glamour standard style ("dark", "light", "notty"), "auto", or a style file
	Width int    // 0 keeps glamour's default wrapping

	once     sync.Once
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer renders without colour when stdout is not a terminal,
// NO_COLOR is set or TERM is dumb, and follows the terminal background otherwise.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: styleFor(os.Stdout)}
}

func styleFor(out *os.File) string {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return styles.NoTTYStyle
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return styles.NoTTYStyle
	}
	return styles.AutoStyle
}

func isMarkdown(ext string) bool {
	return ext == ".md" || ext == ".markdown"
}

func (r *GlamourRenderer) Render(content string, ext string) string {
	if !isMarkdown(ext) {
		return content
	}
	r.once.Do(r.build)
	if r.renderer == nil {
		return content
	}
	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func (r *GlamourRenderer) build() {
	var options []glamour.TermRendererOption
	switch r.Style {
	case "", styles.AutoStyle:
		options = append(options, glamour.WithAutoStyle())
	default:
		if _, ok := styles.DefaultStyles[r.Style]; ok {
			options = append(options, glamour.WithStandardStyle(r.Style))
		} else {
			options = append(options, glamour.WithStylePath(r.Style))
		}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return
	}
	r.renderer = renderer
}
