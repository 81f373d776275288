package treefile

import (
	"bytes"
	"os"

	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// node is the YAML and TOML shape of an entry
type node struct {
	Name     string `yaml:"name" toml:"name"`
	File     bool   `yaml:"file,omitempty" toml:"file,omitempty"`
	Children []node `yaml:"children,omitempty" toml:"children,omitempty"`
}

// Load reads a tree file, choosing the format from its extension
func Load(path string) (*types.Entry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot read tree file %s", path).WithPath(path)
	}
	tree, err := Parse(data, format)
	if err != nil {
		if le, ok := err.(*errors.LayoutError); ok && errors.GetPath(err) == "" {
			return nil, le.WithPath(path)
		}
		return nil, err
	}
	return tree, nil
}

// Parse decodes a tree and validates it. Unknown keys are rejected.
func Parse(data []byte, format Format) (*types.Entry, error) {
	var (
		tree *types.Entry
		err  error
	)
	switch format {
	case FormatYAML:
		tree, err = parseYAML(data)
	case FormatTOML:
		tree, err = parseTOML(data)
	case FormatXML:
		tree, err = parseXML(data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown tree format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := tree.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrTreeInvalid, "invalid tree").
			WithDetail("entry", errors.GetPath(err))
	}
	return tree, nil
}

// Marshal encodes a tree
func Marshal(tree *types.Entry, format Format) ([]byte, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(fromEntry(tree))
	case FormatTOML:
		return toml.Marshal(fromEntry(tree))
	case FormatXML:
		return marshalXML(tree)
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown tree format %q", format)
}

func parseYAML(data []byte) (*types.Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var n node
	if err := dec.Decode(&n); err != nil {
		return nil, errors.Wrap(err, errors.ErrTreeParse, "malformed YAML tree")
	}
	return n.toEntry(), nil
}

func parseTOML(data []byte) (*types.Entry, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var n node
	if err := dec.Decode(&n); err != nil {
		return nil, errors.Wrap(err, errors.ErrTreeParse, "malformed TOML tree")
	}
	return n.toEntry(), nil
}

func (n node) toEntry() *types.Entry {
	if n.File {
		e := types.File(n.Name)
		// Keep children so validation reports the file instead of dropping them
		for _, c := range n.Children {
			e.Children = append(e.Children, c.toEntry())
		}
		return e
	}
	children := make([]*types.Entry, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, c.toEntry())
	}
	return types.Dir(n.Name, children...)
}

func fromEntry(e *types.Entry) node {
	n := node{Name: e.Name, File: !e.IsDir()}
	for _, c := range e.Children {
		n.Children = append(n.Children, fromEntry(c))
	}
	return n
}
