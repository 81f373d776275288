// Package testutil provides utilities for testing layout components.
//
// Key components:
//   - MockRemoteFS: testify mock of types.RemoteFS for exact call-sequence
//     assertions (short-circuiting, no remote calls on bad arguments)
//   - RecordingObserver: types.Observer that keeps every event
//   - MemFS helpers: go-billy in-memory filesystems seeded with directories,
//     files and symlinks, used behind remotefs.NewBilly
//
// Usage guidelines:
//   - Prefer memfs-backed tests; reach for MockRemoteFS only when the order or
//     absence of remote calls is what is being tested
//   - All test data should be defined inline, not in external files
package testutil
