// Package remotefs provides types.RemoteFS implementations for layout.
//
// This package contains the SFTP adapter used against real hosts, an afero
// adapter for local directories, a go-billy adapter backing in-memory
// previews and tests, and a dry-run overlay that records writes instead of
// performing them. Open picks one from configuration.
//
// All adapters follow the same failure contract: "not found" surfaces as an
// error wrapping fs.ErrNotExist (or as false from Exists and IsSymlink), a
// non-directory handed to ListDirectory as one wrapping types.ErrNotDirectory,
// and anything else is passed through untouched for the caller to treat as a
// transport failure.
package remotefs
