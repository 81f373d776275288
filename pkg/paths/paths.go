package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvLayoutConfigDir overrides the XDG config directory for layout
	EnvLayoutConfigDir = "LAYOUT_CONFIG_DIR"

	// EnvLayoutStateDir overrides the XDG state directory for layout
	EnvLayoutStateDir = "LAYOUT_STATE_DIR"
)

// Default directories and files
const (
	// LayoutDirName is the directory name for layout-specific files
	LayoutDirName = "layout"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "layout.toml"

	// LogFileName is the name of the log file
	LogFileName = "layout.log"

	// Separator is the remote path separator
	Separator = "/"
)

// Join appends name to parent with exactly one separator between them. An
// empty parent yields name unchanged.
func Join(parent, name string) string {
	if parent == "" {
		return name
	}
	if strings.HasSuffix(parent, Separator) {
		return parent + name
	}
	return parent + Separator + name
}

// Split breaks a remote path into its components, dropping empty ones, so
// "/a//b/" and "a/b" both yield ["a", "b"].
func Split(path string) []string {
	parts := strings.Split(path, Separator)
	components := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			components = append(components, part)
		}
	}
	return components
}

// Parent returns the remote path without its last component. The parent of
// a single relative component is "", the parent of "/x" is "/".
func Parent(path string) string {
	trimmed := strings.TrimRight(path, Separator)
	idx := strings.LastIndex(trimmed, Separator)
	switch {
	case idx < 0:
		return ""
	case idx == 0:
		return Separator
	default:
		return trimmed[:idx]
	}
}

// ConfigDir returns the directory holding layout's user configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvLayoutConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, LayoutDirName)
}

// ConfigFilePath returns the path of the user configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory holding layout's log file
func StateDir() string {
	if dir := os.Getenv(EnvLayoutStateDir); dir != "" {
		return ExpandHome(dir)
	}
	// xdg caches the environment at init, XDG_STATE_HOME may have changed since
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, LayoutDirName)
	}
	return filepath.Join(xdg.StateHome, LayoutDirName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
