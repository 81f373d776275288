// Package reconcile brings a remote directory tree in line with a desired
// one.
//
// The mode is chosen by whether the root already exists. An absent root is
// created together with the whole tree below it, depth first in declaration
// order, and the number of entries created is returned. A present root is
// only verified: every desired entry must exist, and the first one that does
// not is reported. Policy relaxes verification into creating what is missing
// or tightens it to reject symbolic links.
//
// Remote operations are issued one at a time. Nothing is rolled back when a
// creation fails, so an aborted run can leave a partial tree behind.
package reconcile
