// Package paths provides centralized path handling for layout.
//
// It covers two unrelated kinds of path:
//
//   - Remote paths: "/"-joined strings handed to a RemoteFS. They are built by
//     plain string concatenation (Join) and taken apart by Split; the local
//     path library is never involved, so a Windows client still talks "/" to
//     an SFTP server.
//   - Local XDG locations for layout's own files: the user configuration file
//     and the log file.
//
// # Environment Variables
//
//   - LAYOUT_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/layout)
//   - LAYOUT_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/layout)
//
// # Usage
//
//	import "github.com/arthur-debert/layout/pkg/paths"
//
//	paths.Join("/data", "fauna")     // "/data/fauna"
//	paths.Split("/data//fauna/")     // ["data", "fauna"]
//	paths.ConfigFilePath()           // ~/.config/layout/layout.toml
package paths
