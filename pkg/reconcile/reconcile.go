package reconcile

import (
	"github.com/arthur-debert/layout/pkg/guard"
	"github.com/arthur-debert/layout/pkg/logging"
	"github.com/arthur-debert/layout/pkg/paths"
	"github.com/arthur-debert/layout/pkg/types"
)

// Mode is the path Reconcile took, decided by whether the root existed
type Mode int

const (
	// ModeCreate materialised the tree under a root that did not exist
	ModeCreate Mode = iota
	// ModeVerify checked the tree under a root that already existed
	ModeVerify
)

func (m Mode) String() string {
	if m == ModeCreate {
		return "create"
	}
	return "verify"
}

// Policy adjusts what happens under an existing root
type Policy struct {
	// CreateMissing creates absent entries, and everything below an absent
	// directory, instead of failing on the first one
	CreateMissing bool

	// RejectSymlinks fails when a verified entry is a symbolic link
	RejectSymlinks bool
}

// Result describes a successful reconciliation
type Result struct {
	Root    string
	Mode    Mode
	Created int

	// CreatedPaths lists what was created, in creation order
	CreatedPaths []string
}

// Reconciler applies desired trees to one RemoteFS
type Reconciler struct {
	fs       types.RemoteFS
	checker  *guard.Checker
	observer types.Observer
	policy   Policy
}

// Option configures a Reconciler
type Option func(*Reconciler)

// WithObserver sets the observer notified of every step
func WithObserver(o types.Observer) Option {
	return func(r *Reconciler) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithPolicy sets the verification policy
func WithPolicy(p Policy) Option {
	return func(r *Reconciler) {
		r.policy = p
	}
}

// New creates a Reconciler. The RemoteFS stays owned by the caller.
func New(remote types.RemoteFS, opts ...Option) *Reconciler {
	r := &Reconciler{fs: remote, observer: types.NopObserver{}}
	for _, opt := range opts {
		opt(r)
	}
	r.checker = guard.New(remote, "", guard.WithObserver(r.observer))
	return r
}

// Policy returns the policy in effect
func (r *Reconciler) Policy() Policy {
	return r.policy
}

// Reconcile brings the tree below root in line with tree. The tree's own
// name is the first component below root: reconciling "fauna" at "/data"
// manages "/data/fauna" and everything under it.
//
// On failure no Result is returned, even when entries were already created.
func (r *Reconciler) Reconcile(root string, tree *types.Entry) (*Result, error) {
	if err := paths.ValidateRemotePath(root); err != nil {
		return nil, err
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("reconcile")
	done := logging.LogOperationStart(logger, "reconcile")
	defer done()

	present, err := r.checker.Exists(root)
	if err != nil {
		return nil, err
	}

	res := &Result{Root: root}
	if present {
		res.Mode = ModeVerify
		err = r.verify(root, tree, res)
	} else {
		res.Mode = ModeCreate
		err = r.create(root, tree, res)
	}
	if err != nil {
		r.observer.OnError(types.Event{Op: "reconcile", Path: root, Msg: "reconciliation failed", Err: err})
		return nil, err
	}

	logger.Info().
		Str("root", root).
		Str("mode", res.Mode.String()).
		Int("created", res.Created).
		Msg("Reconciled")
	r.observer.OnInfo(types.Event{Op: "reconcile", Path: root, Msg: res.Mode.String()})
	return res, nil
}
