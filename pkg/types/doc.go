// Package types defines the core types and interfaces used throughout layout.
// This includes the desired-state tree (Entry), the RemoteFS port every
// backend implements, and the Observer notified while a tree is reconciled.
package types
