package types

import (
	"errors"
)

// ErrNotDirectory is returned by ListDirectory when the path exists but is
// not a directory.
var ErrNotDirectory = errors.New("not a directory")

// RemoteFS is the set of remote operations the reconciler needs. Paths are
// "/"-joined strings; implementations must not translate them through a local
// path library.
type RemoteFS interface {
	// Exists reports whether anything is present at path. A confirmed
	// "not found" is (false, nil); every other failure is an error.
	Exists(path string) (bool, error)

	// IsSymlink reports whether path itself is a symbolic link, without
	// following it. A missing path is (false, nil).
	IsSymlink(path string) (bool, error)

	// MakeDirectory creates exactly one directory. It fails when the parent
	// is missing or the target already exists.
	MakeDirectory(path string) error

	// CreateEmptyFile creates a zero-length file, failing under the same
	// conditions as MakeDirectory.
	CreateEmptyFile(path string) error

	// ListDirectory returns the entry names of a directory. Failures wrap
	// fs.ErrNotExist, fs.ErrPermission or ErrNotDirectory when the path is not
	// a listable directory.
	ListDirectory(path string) ([]string, error)
}

// Event describes one step taken against the remote filesystem
type Event struct {
	// Op is a short operation name: "mkdir", "create", "verify", "list",
	// "symlink", "exists" or "reconcile"
	Op   string
	Path string
	Msg  string
	Err  error
}

// Observer receives diagnostic notifications while a tree is reconciled or
// a path is checked.
type Observer interface {
	OnInfo(Event)
	OnError(Event)
}

// NopObserver discards every event
type NopObserver struct{}

func (NopObserver) OnInfo(Event)  {}
func (NopObserver) OnError(Event) {}
