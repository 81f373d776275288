package reconcile

import (
	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/paths"
	"github.com/arthur-debert/layout/pkg/types"
)

// create makes root, then the whole tree below it
func (r *Reconciler) create(root string, tree *types.Entry, res *Result) error {
	if err := r.mkdir(root, res); err != nil {
		return err
	}
	return r.materialize(root, tree, res)
}

// materialize creates entry below parent and, for a directory, its children
// in order. The first failure stops the walk.
func (r *Reconciler) materialize(parent string, entry *types.Entry, res *Result) error {
	path := paths.Join(parent, entry.Name)

	if !entry.IsDir() {
		return r.touch(path, res)
	}
	if err := r.mkdir(path, res); err != nil {
		return err
	}
	for _, child := range entry.Children {
		if err := r.materialize(path, child, res); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) mkdir(path string, res *Result) error {
	if err := r.fs.MakeDirectory(path); err != nil {
		r.observer.OnError(types.Event{Op: "mkdir", Path: path, Msg: "cannot create directory", Err: err})
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", path).WithPath(path)
	}
	r.created(types.Event{Op: "mkdir", Path: path, Msg: "created directory"}, res)
	return nil
}

func (r *Reconciler) touch(path string, res *Result) error {
	if err := r.fs.CreateEmptyFile(path); err != nil {
		r.observer.OnError(types.Event{Op: "create", Path: path, Msg: "cannot create file", Err: err})
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create file %s", path).WithPath(path)
	}
	r.created(types.Event{Op: "create", Path: path, Msg: "created file"}, res)
	return nil
}

func (r *Reconciler) created(ev types.Event, res *Result) {
	res.Created++
	res.CreatedPaths = append(res.CreatedPaths, ev.Path)
	r.observer.OnInfo(ev)
}
