package guard

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/paths"
	"github.com/arthur-debert/layout/pkg/types"
)

// Checker runs guarded existence checks against one RemoteFS
type Checker struct {
	fs       types.RemoteFS
	hostRoot string
	observer types.Observer
}

// Option configures a Checker
type Option func(*Checker)

// WithObserver sets the observer notified of every check
func WithObserver(o types.Observer) Option {
	return func(c *Checker) {
		if o != nil {
			c.observer = o
		}
	}
}

// New creates a Checker. Relative paths given to IsRegularFolder are resolved
// below hostRoot; an empty hostRoot leaves them as they are.
func New(remote types.RemoteFS, hostRoot string, opts ...Option) *Checker {
	c := &Checker{fs: remote, hostRoot: hostRoot, observer: types.NopObserver{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HostRoot returns the directory checks start from
func (c *Checker) HostRoot() string {
	return c.hostRoot
}

// IsRegularFolder reports whether every component of path, taken from the
// host root, is a listable directory that is not a symbolic link. It stops at
// the first component that is not. A leading "/" only separates components:
// "/a/b" and "a/b" are the same check. A path without components checks the
// host root itself, or "/" when there is none.
//
// "." and ".." are rejected before any remote call, so a check never leaves
// the host root. Only transport failures and invalid paths are returned as
// errors.
func (c *Checker) IsRegularFolder(path string) (bool, error) {
	if path == "" {
		return false, errors.New(errors.ErrInvalidInput, "path to check is empty")
	}
	components := paths.Split(path)
	for _, component := range components {
		if err := types.ValidateName(component); err != nil {
			return false, errors.Wrapf(err, errors.ErrInvalidInput, "cannot check %s", path).WithPath(path)
		}
	}

	if len(components) == 0 {
		target := c.hostRoot
		if target == "" {
			target = paths.Separator
		}
		return c.regular(target)
	}

	running := c.hostRoot
	for _, component := range components {
		running = paths.Join(running, component)
		ok, err := c.step(running)
		if err != nil || !ok {
			return false, err
		}
	}

	c.observer.OnInfo(types.Event{Op: "check", Path: running, Msg: "regular folder"})
	return true, nil
}

// regular checks a single directory and reports the verdict
func (c *Checker) regular(dir string) (bool, error) {
	ok, err := c.step(dir)
	if err != nil || !ok {
		return false, err
	}
	c.observer.OnInfo(types.Event{Op: "check", Path: dir, Msg: "regular folder"})
	return true, nil
}

// step lists dir and then makes sure it is not a link
func (c *Checker) step(dir string) (bool, error) {
	if _, err := c.fs.ListDirectory(dir); err != nil {
		if isStructural(err) {
			c.observer.OnInfo(types.Event{Op: "list", Path: dir, Msg: "not a listable directory", Err: err})
			return false, nil
		}
		return false, c.transport("list", dir, err)
	}

	isLink, err := c.IsSymlink(dir)
	if err != nil {
		return false, err
	}
	return !isLink, nil
}

// Exists tests one path, reporting the result to the observer
func (c *Checker) Exists(path string) (bool, error) {
	ok, err := c.fs.Exists(path)
	if err != nil {
		return false, c.transport("exists", path, err)
	}
	if ok {
		c.observer.OnInfo(types.Event{Op: "exists", Path: path, Msg: "present"})
	} else {
		c.observer.OnInfo(types.Event{Op: "exists", Path: path, Msg: "absent"})
	}
	return ok, nil
}

// IsSymlink tests whether path is a symbolic link, without following it
func (c *Checker) IsSymlink(path string) (bool, error) {
	isLink, err := c.fs.IsSymlink(path)
	if err != nil {
		return false, c.transport("symlink", path, err)
	}
	if isLink {
		c.observer.OnInfo(types.Event{Op: "symlink", Path: path, Msg: "symbolic link"})
	}
	return isLink, nil
}

func (c *Checker) transport(op, path string, err error) error {
	c.observer.OnError(types.Event{Op: op, Path: path, Msg: "remote operation failed", Err: err})
	return errors.Wrapf(err, errors.ErrTransport, "%s %s", op, path).WithPath(path)
}

// isStructural reports whether a listing failure means "not a listable
// directory" rather than a broken connection
func isStructural(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) ||
		stderrors.Is(err, fs.ErrPermission) ||
		stderrors.Is(err, types.ErrNotDirectory)
}
