package remotefs

import (
	"errors"
	"io/fs"

	"github.com/arthur-debert/layout/pkg/paths"
	"github.com/arthur-debert/layout/pkg/types"
)

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func isPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

func notDirectory(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: types.ErrNotDirectory}
}

func alreadyExists(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: fs.ErrExist}
}

func parentMissing(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
}

// hasParent reports whether path has a parent worth checking; "/" and the
// implicit working directory always exist.
func hasParent(path string) (string, bool) {
	parent := paths.Parent(path)
	if parent == "" || parent == paths.Separator {
		return parent, false
	}
	return parent, true
}
