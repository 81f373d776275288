package treefile

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/layout/pkg/errors"
)

// Format is a tree file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
)

// ParseFormat parses a format name, accepting "yml" for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown tree format %q (want yaml, toml or xml)", s)
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.Newf(errors.ErrInvalidInput, "cannot tell tree format of %s", path).WithPath(path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot tell tree format of %s", path).WithPath(path)
	}
	return f, nil
}
