package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from where output goes
	FormatAuto Format = iota
	// FormatTerminal renders styled results and pterm trees
	FormatTerminal
	// FormatText renders one plain line per result, suited to logs and grep
	FormatText
	// FormatJSON renders results and errors (with their codes) as JSON
	FormatJSON
)

// formatInfo names a format for --format and for shell completion
type formatInfo struct {
	format  Format
	name    string
	aliases []string
	hint    string
}

var formats = []formatInfo{
	{FormatAuto, "auto", []string{""}, "term on a color terminal, text otherwise"},
	{FormatTerminal, "term", []string{"terminal"}, "styled output with tree diagrams"},
	{FormatText, "text", []string{"plain"}, "plain lines, one created path per line"},
	{FormatJSON, "json", nil, "results and error codes as JSON"},
}

// String returns the name accepted by --format
func (f Format) String() string {
	for _, info := range formats {
		if info.format == f {
			return info.name
		}
	}
	return "unknown"
}

// ParseFormat parses a --format value, case-insensitively
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	names := make([]string, 0, len(formats))
	for _, info := range formats {
		if s == info.name {
			return info.format, nil
		}
		for _, alias := range info.aliases {
			if s == alias {
				return info.format, nil
			}
		}
		names = append(names, info.name)
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s (want %s)", s, strings.Join(names, ", ")).
		WithDetail("valid", names)
}

// CompletionHints returns "name\thint" pairs for cobra flag completion
func CompletionHints() []string {
	hints := make([]string, len(formats))
	for i, info := range formats {
		hints[i] = info.name + "\t" + info.hint
	}
	return hints
}

// DetectFormat resolves FormatAuto for output. Anything that is not a color
// terminal gets FormatText: buffers, pipes, redirects, NO_COLOR and TERM=dumb.
func DetectFormat(output io.Writer) Format {
	file, ok := output.(*os.File)
	if !ok {
		return FormatText
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(file).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
