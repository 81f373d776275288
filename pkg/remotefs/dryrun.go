package remotefs

import (
	"sort"
	"strings"

	"github.com/arthur-debert/layout/pkg/paths"
	"github.com/arthur-debert/layout/pkg/types"
)

// PlannedEntry is a write a DryRunFS recorded instead of performing
type PlannedEntry struct {
	Path string
	Kind types.Kind
}

// DryRunFS reads through to an inner RemoteFS and records writes in an
// overlay, so a reconciliation can be previewed without touching the remote.
type DryRunFS struct {
	inner   types.RemoteFS
	kinds   map[string]types.Kind
	planned []PlannedEntry
}

var _ types.RemoteFS = (*DryRunFS)(nil)

// NewDryRunFS wraps inner
func NewDryRunFS(inner types.RemoteFS) *DryRunFS {
	return &DryRunFS{inner: inner, kinds: make(map[string]types.Kind)}
}

// Planned returns the recorded writes in the order they were issued
func (d *DryRunFS) Planned() []PlannedEntry {
	out := make([]PlannedEntry, len(d.planned))
	copy(out, d.planned)
	return out
}

func (d *DryRunFS) Exists(path string) (bool, error) {
	if _, ok := d.kinds[path]; ok {
		return true, nil
	}
	return d.inner.Exists(path)
}

func (d *DryRunFS) IsSymlink(path string) (bool, error) {
	if _, ok := d.kinds[path]; ok {
		return false, nil
	}
	return d.inner.IsSymlink(path)
}

func (d *DryRunFS) MakeDirectory(path string) error {
	return d.record("mkdir", path, types.KindDirectory)
}

func (d *DryRunFS) CreateEmptyFile(path string) error {
	return d.record("open", path, types.KindFile)
}

func (d *DryRunFS) ListDirectory(path string) ([]string, error) {
	if kind, ok := d.kinds[path]; ok {
		if kind != types.KindDirectory {
			return nil, notDirectory("readdir", path)
		}
		return d.plannedChildren(path), nil
	}
	names, err := d.inner.ListDirectory(path)
	if err != nil {
		return nil, err
	}
	return append(names, d.plannedChildren(path)...), nil
}

func (d *DryRunFS) record(op, path string, kind types.Kind) error {
	exists, err := d.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		return alreadyExists(op, path)
	}

	if parent, ok := hasParent(path); ok {
		if parentKind, planned := d.kinds[parent]; planned {
			if parentKind != types.KindDirectory {
				return notDirectory(op, parent)
			}
		} else {
			present, err := d.inner.Exists(parent)
			if err != nil {
				return err
			}
			if !present {
				return parentMissing(op, path)
			}
		}
	}

	d.kinds[path] = kind
	d.planned = append(d.planned, PlannedEntry{Path: path, Kind: kind})
	return nil
}

func (d *DryRunFS) plannedChildren(dir string) []string {
	prefix := strings.TrimSuffix(dir, paths.Separator) + paths.Separator
	var names []string
	for p := range d.kinds {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if rest != "" && !strings.Contains(rest, paths.Separator) {
			names = append(names, rest)
		}
	}
	sort.Strings(names)
	return names
}
