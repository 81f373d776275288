package types

import (
	"strings"

	"github.com/arthur-debert/layout/pkg/errors"
)

// Kind tells whether an Entry is a directory or a file
type Kind int

const (
	// KindDirectory is a directory that may hold children
	KindDirectory Kind = iota
	// KindFile is an empty regular file
	KindFile
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name, so JSON output reads "directory"
// rather than 0
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one node of the desired-state tree. The tree is read-only once it
// is handed to the reconciler.
type Entry struct {
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Children []*Entry `json:"children,omitempty"`
}

// Dir creates a directory entry with the given children, kept in order
func Dir(name string, children ...*Entry) *Entry {
	return &Entry{Name: name, Kind: KindDirectory, Children: children}
}

// File creates a file entry
func File(name string) *Entry {
	return &Entry{Name: name, Kind: KindFile}
}

// IsDir reports whether the entry is a directory
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Count returns the number of entries in the subtree, including e itself
func (e *Entry) Count() int {
	n := 0
	e.Walk(func(*Entry, int) { n++ })
	return n
}

// Walk visits the subtree depth-first, pre-order, children in stored order
func (e *Entry) Walk(fn func(entry *Entry, depth int)) {
	e.walk(fn, 0)
}

func (e *Entry) walk(fn func(*Entry, int), depth int) {
	fn(e, depth)
	for _, child := range e.Children {
		child.walk(fn, depth+1)
	}
}

// Validate checks the whole subtree for representation errors: empty or
// multi-segment names, unknown kinds and files that carry children.
func (e *Entry) Validate() error {
	if e == nil {
		return errors.New(errors.ErrInvalidInput, "tree is nil")
	}
	return e.validate("")
}

func (e *Entry) validate(parent string) error {
	where := parent + "/" + e.Name
	if err := ValidateName(e.Name); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid entry under %q", parent+"/").
			WithPath(where)
	}

	switch e.Kind {
	case KindFile:
		if len(e.Children) > 0 {
			return errors.Newf(errors.ErrInvalidInput, "file %q has %d children", e.Name, len(e.Children)).
				WithPath(where)
		}
	case KindDirectory:
		for _, child := range e.Children {
			if child == nil {
				return errors.Newf(errors.ErrInvalidInput, "directory %q has a nil child", e.Name).
					WithPath(where)
			}
			if err := child.validate(where); err != nil {
				return err
			}
		}
	default:
		return errors.Newf(errors.ErrInvalidInput, "entry %q has unknown kind %d", e.Name, int(e.Kind)).
			WithPath(where)
	}
	return nil
}

// ValidateName checks that name is a single usable path segment
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrInvalidInput, "entry name is empty")
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidInput, "entry name %q is reserved", name)
	case strings.Contains(name, "/"):
		return errors.Newf(errors.ErrInvalidInput, "entry name %q contains a path separator", name)
	}
	return nil
}

// String renders the subtree for diagnostics, one entry per line
func (e *Entry) String() string {
	var sb strings.Builder
	e.Walk(func(entry *Entry, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		if entry.IsDir() {
			sb.WriteString("[DIR] ")
		} else {
			sb.WriteString("[FILE] ")
		}
		sb.WriteString(entry.Name)
		sb.WriteString("\n")
	})
	return sb.String()
}
