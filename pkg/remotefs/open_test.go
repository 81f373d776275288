package remotefs

import (
	"testing"

	"github.com/arthur-debert/layout/pkg/config"
	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		remote, closer, err := Open(config.Remote{Backend: config.BackendLocal})
		require.NoError(t, err)
		assert.IsType(t, &AferoFS{}, remote)
		assert.NoError(t, closer.Close())
	})

	t.Run("memory", func(t *testing.T) {
		remote, closer, err := Open(config.Remote{Backend: config.BackendMemory})
		require.NoError(t, err)
		assert.IsType(t, &BillyFS{}, remote)
		assert.NoError(t, closer.Close())
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := Open(config.Remote{Backend: "ftp"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("sftp without credentials", func(t *testing.T) {
		_, _, err := Open(config.Remote{Backend: config.BackendSFTP, Host: "127.0.0.1", Port: 1, InsecureIgnoreHostKey: true})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAuth))
	})
}
