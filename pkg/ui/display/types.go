// Package display holds the result types commands hand to a renderer.
// Every renderer understands every type here.
package display

import (
	"strconv"
	"time"

	"github.com/arthur-debert/layout/pkg/types"
)

// ApplyResult is the outcome of "layout apply"
type ApplyResult struct {
	Root    string `json:"root"`
	Tree    string `json:"tree"`
	Mode    string `json:"mode"` // "create" or "verify"
	Created int    `json:"created"`

	// Paths lists created entries in creation order
	Paths []string `json:"paths,omitempty"`

	DryRun    bool      `json:"dryRun"`
	Timestamp time.Time `json:"timestamp"`
}

// CheckResult is the outcome of "layout check"
type CheckResult struct {
	Path     string `json:"path"`
	HostRoot string `json:"hostRoot,omitempty"`
	Regular  bool   `json:"regular"`
}

// TreeView is a desired tree shown by "layout show"
type TreeView struct {
	Source string       `json:"source"`
	Tree   *types.Entry `json:"tree"`
}

// Summary returns a one-line description of an apply result
func (r *ApplyResult) Summary() string {
	verb := "created"
	if r.DryRun {
		verb = "would create"
	}
	switch {
	case r.Mode == "create":
		return pluralize(r.Created, verb) + " under new root " + r.Root
	case r.Created > 0:
		return pluralize(r.Created, verb) + " missing under " + r.Root
	default:
		return r.Root + " matches " + r.Tree
	}
}

func pluralize(n int, verb string) string {
	if n == 1 {
		return verb + " 1 entry"
	}
	return verb + " " + strconv.Itoa(n) + " entries"
}
