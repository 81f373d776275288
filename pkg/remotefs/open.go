package remotefs

import (
	"io"

	"github.com/arthur-debert/layout/pkg/config"
	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/logging"
	"github.com/arthur-debert/layout/pkg/session"
	"github.com/arthur-debert/layout/pkg/types"
)

// Open builds the RemoteFS selected by remote.backend. The returned closer
// releases any connection behind it and must be called once the caller is
// done.
func Open(cfg config.Remote) (types.RemoteFS, io.Closer, error) {
	logger := logging.GetLogger("remotefs")

	switch cfg.Backend {
	case config.BackendSFTP:
		s, err := session.Dial(session.FromConfig(cfg))
		if err != nil {
			return nil, nil, err
		}
		logger.Debug().Str("host", cfg.Host).Msg("Using sftp backend")
		return NewSFTPFS(s.SFTP()), s, nil

	case config.BackendLocal:
		logger.Debug().Msg("Using local backend")
		return NewLocal(), nopCloser{}, nil

	case config.BackendMemory:
		logger.Debug().Msg("Using in-memory backend")
		return NewMemory(), nopCloser{}, nil
	}

	return nil, nil, errors.Newf(errors.ErrConfigValid, "unknown backend %q", cfg.Backend).
		WithDetail("key", "remote.backend")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
