package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		parent, name, want string
	}{
		{"/data", "fauna", "/data/fauna"},
		{"/data/", "fauna", "/data/fauna"},
		{"/", "data", "/data"},
		{"", "a", "a"},
		{"a", "b", "a/b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Join(tt.parent, tt.name), "Join(%q, %q)", tt.parent, tt.name)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"a/b/c", []string{"a", "b", "c"}},
		{"/a//b/", []string{"a", "b"}},
		{"/", []string{}},
		{"", []string{}},
		{"datas/fauna2", []string{"datas", "fauna2"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Split(tt.path), "Split(%q)", tt.path)
	}
}

func TestParent(t *testing.T) {
	assert.Equal(t, "/data", Parent("/data/fauna"))
	assert.Equal(t, "/data", Parent("/data/fauna/"))
	assert.Equal(t, "/", Parent("/data"))
	assert.Equal(t, "", Parent("data"))
	assert.Equal(t, "a", Parent("a/b"))
}

func TestConfigDir(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		t.Setenv(EnvLayoutConfigDir, "/custom/config")
		assert.Equal(t, "/custom/config", ConfigDir())
		assert.Equal(t, "/custom/config/layout.toml", ConfigFilePath())
	})

	t.Run("xdg_default", func(t *testing.T) {
		t.Setenv(EnvLayoutConfigDir, "")
		assert.True(t, strings.HasSuffix(ConfigDir(), string(filepath.Separator)+LayoutDirName))
	})
}

func TestLogFilePath(t *testing.T) {
	t.Run("xdg_state_home", func(t *testing.T) {
		t.Setenv(EnvLayoutStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, "/custom/state/layout/layout.log", LogFilePath())
	})

	t.Run("override_wins", func(t *testing.T) {
		t.Setenv(EnvLayoutStateDir, "/var/lib/layout")
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, "/var/lib/layout/layout.log", LogFilePath())
	})
}

func TestValidateRemotePath(t *testing.T) {
	assert.NoError(t, ValidateRemotePath("/data/fauna"))

	for _, bad := range []string{"", "a\x00b", "/" + strings.Repeat("x", maxPathLength)} {
		err := ValidateRemotePath(bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "path %q", bad)
	}
}
