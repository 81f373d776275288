package testutil

import (
	"os"
	"sort"
	"testing"

	"github.com/arthur-debert/layout/pkg/types"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// NewMemFS returns an empty in-memory filesystem
func NewMemFS() billy.Filesystem {
	return memfs.New()
}

// MkdirAll creates dir and all of its parents
func MkdirAll(t *testing.T, fs billy.Filesystem, dir string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(dir, 0755))
}

// Touch creates an empty file, creating its parents
func Touch(t *testing.T, fs billy.Filesystem, path string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fs, path, nil, 0644))
}

// Symlink creates link pointing at target
func Symlink(t *testing.T, fs billy.Filesystem, target, link string) {
	t.Helper()
	require.NoError(t, fs.Symlink(target, link))
}

// Materialize lays tree out below root on fs, root included
func Materialize(t *testing.T, fs billy.Filesystem, root string, tree *types.Entry) {
	t.Helper()
	MkdirAll(t, fs, root)
	materialize(t, fs, root, tree)
}

func materialize(t *testing.T, fs billy.Filesystem, parent string, entry *types.Entry) {
	path := fs.Join(parent, entry.Name)
	if !entry.IsDir() {
		Touch(t, fs, path)
		return
	}
	MkdirAll(t, fs, path)
	for _, child := range entry.Children {
		materialize(t, fs, path, child)
	}
}

// Snapshot lists every path below root, sorted, with directories suffixed "/"
func Snapshot(t *testing.T, fs billy.Filesystem, root string) []string {
	t.Helper()
	var out []string
	var walk func(dir string)
	walk = func(dir string) {
		infos, err := fs.ReadDir(dir)
		require.NoError(t, err)
		for _, info := range infos {
			p := fs.Join(dir, info.Name())
			if info.IsDir() {
				out = append(out, p+"/")
				walk(p)
				continue
			}
			out = append(out, p)
		}
	}
	if _, err := fs.Stat(root); os.IsNotExist(err) {
		return nil
	}
	walk(root)
	sort.Strings(out)
	return out
}
