package config

import (
	"strings"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[remote]")
	assert.Contains(t, content, "[layout]")
	assert.Contains(t, content, "# port = 22")
	assert.Contains(t, content, "# create_missing = false")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}

	// Everything commented out leaves only empty tables
	parsed, err := toml.Parser().Unmarshal([]byte(content))
	require.NoError(t, err)
	assert.Empty(t, parsed["remote"])
	assert.Empty(t, parsed["layout"])
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# heading\n\n[remote]\nhost = \"x\"\n  port = 1\n"
	want := "# heading\n\n[remote]\n# host = \"x\"  # LAYOUT_REMOTE__HOST\n#   port = 1  # LAYOUT_REMOTE__PORT\n"
	assert.Equal(t, want, commentOutConfigValues(in))
}

func TestEnvVarName(t *testing.T) {
	assert.Equal(t, "LAYOUT_REMOTE__HOST_ROOT", EnvVarName("remote", "host_root"))
	assert.Equal(t, "LAYOUT_LAYOUT__CREATE_MISSING", EnvVarName("layout", "create_missing"))
	assert.Equal(t, "LAYOUT_TOP", EnvVarName("", "top"))
}

func TestGeneratedEnvHintsAreRead(t *testing.T) {
	isolate(t)
	content := GenerateConfigContent()
	assert.Contains(t, content, "# host_root = \"\"  # LAYOUT_REMOTE__HOST_ROOT")
	assert.Contains(t, content, "# reject_symlinks = false  # LAYOUT_LAYOUT__REJECT_SYMLINKS")

	t.Setenv(EnvVarName("remote", "host_root"), "/srv/data")
	t.Setenv(EnvVarName("layout", "reject_symlinks"), "true")
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", cfg.Remote.HostRoot)
	assert.True(t, cfg.Layout.RejectSymlinks)
}
