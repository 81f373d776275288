package config

import (
	"github.com/arthur-debert/layout/pkg/errors"
)

// Validate checks the remote settings are usable for the selected backend
func (c *Config) Validate() error {
	r := c.Remote
	switch r.Backend {
	case BackendLocal, BackendMemory:
		return nil
	case BackendSFTP:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown backend %q (want sftp, local or memory)", r.Backend).
			WithDetail("key", "remote.backend")
	}

	if r.Host == "" {
		return errors.New(errors.ErrConfigValid, "remote.host is required for the sftp backend").
			WithDetail("key", "remote.host")
	}
	if r.User == "" {
		return errors.New(errors.ErrConfigValid, "remote.user is required for the sftp backend").
			WithDetail("key", "remote.user")
	}
	if r.Port < 1 || r.Port > 65535 {
		return errors.Newf(errors.ErrConfigValid, "remote.port %d is out of range", r.Port).
			WithDetail("key", "remote.port")
	}
	if r.Password == "" && r.KeyFile == "" {
		return errors.New(errors.ErrConfigValid, "one of remote.password or remote.key_file is required").
			WithDetail("key", "remote.password")
	}
	if r.Timeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "remote.timeout %s is negative", r.Timeout).
			WithDetail("key", "remote.timeout")
	}
	return nil
}

// RequireRoot checks a layout root is configured
func (c *Config) RequireRoot() error {
	if c.Layout.Root == "" {
		return errors.New(errors.ErrConfigValid, "layout.root is required (set it in the config or pass --root)").
			WithDetail("key", "layout.root")
	}
	return nil
}
