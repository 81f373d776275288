// Package guard answers "is this a real directory?" questions about remote
// paths. It walks a path one component at a time from a host root and
// refuses to follow symbolic links, so a check can never be redirected to
// somewhere else on the host.
//
// The Checker also provides the observed Exists and IsSymlink primitives the
// reconcile package builds on.
package guard
