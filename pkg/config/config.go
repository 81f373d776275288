package config

import (
	"time"
)

// Backend names accepted in remote.backend
const (
	BackendSFTP   = "sftp"
	BackendLocal  = "local"
	BackendMemory = "memory"
)

// Config is the complete layout configuration
type Config struct {
	Remote Remote `koanf:"remote"`
	Layout Layout `koanf:"layout"`
}

// Remote describes where the layout lives and how to reach it
type Remote struct {
	Backend               string        `koanf:"backend"`
	Host                  string        `koanf:"host"`
	Port                  int           `koanf:"port"`
	User                  string        `koanf:"user"`
	Password              string        `koanf:"password"`
	KeyFile               string        `koanf:"key_file"`
	KeyPassphrase         string        `koanf:"key_passphrase"`
	KnownHosts            string        `koanf:"known_hosts"`
	InsecureIgnoreHostKey bool          `koanf:"insecure_ignore_host_key"`
	Timeout               time.Duration `koanf:"timeout"`

	// HostRoot is the directory guarded existence checks start from
	HostRoot string `koanf:"host_root"`
}

// Layout describes the desired tree and the reconciliation policy
type Layout struct {
	Root           string `koanf:"root"`
	TreeFile       string `koanf:"tree_file"`
	CreateMissing  bool   `koanf:"create_missing"`
	RejectSymlinks bool   `koanf:"reject_symlinks"`
}
