package reconcile

import (
	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/paths"
	"github.com/arthur-debert/layout/pkg/types"
)

// frame is a pending check: entry, expected directly below parent
type frame struct {
	parent string
	entry  *types.Entry
}

// verify walks the tree below an existing root with an explicit stack, so
// deep trees do not grow the call stack. Children are pushed in reverse and
// therefore checked in declaration order.
func (r *Reconciler) verify(root string, tree *types.Entry, res *Result) error {
	stack := []frame{{parent: root, entry: tree}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		current := paths.Join(top.parent, top.entry.Name)
		present, err := r.checker.Exists(current)
		if err != nil {
			return err
		}

		if !present {
			if !r.policy.CreateMissing {
				r.observer.OnError(types.Event{Op: "verify", Path: current, Msg: "missing"})
				return errors.Newf(errors.ErrEntryMissing, "%s is missing", current).WithPath(current)
			}
			if err := r.materialize(top.parent, top.entry, res); err != nil {
				return err
			}
			continue
		}

		if r.policy.RejectSymlinks {
			isLink, err := r.checker.IsSymlink(current)
			if err != nil {
				return err
			}
			if isLink {
				r.observer.OnError(types.Event{Op: "verify", Path: current, Msg: "symbolic link"})
				return errors.Newf(errors.ErrSymlinkFound, "%s is a symbolic link", current).WithPath(current)
			}
		}

		r.observer.OnInfo(types.Event{Op: "verify", Path: current, Msg: "present"})

		for i := len(top.entry.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{parent: current, entry: top.entry.Children[i]})
		}
	}
	return nil
}
