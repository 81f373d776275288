package styles_test

import (
	"testing"

	"github.com/arthur-debert/layout/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Info", "Muted", "Path", "Created", "Directory", "File"} {
		assert.Contains(t, styles.Names(), name)
	}
	assert.True(t, styles.Get("Header").GetBold())
	assert.Equal(t, 2, styles.Get("Created").GetPaddingLeft())
}

func TestGetUnknown(t *testing.T) {
	assert.Equal(t, "plain", styles.Render("NoSuchStyle", "plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, styles.LoadDefaults()) })

	require.NoError(t, styles.LoadStylesFromData([]byte(`
styles:
  Only: {italic: true}
`)))
	assert.Equal(t, []string{"Only"}, styles.Names())
	assert.True(t, styles.Get("Only").GetItalic())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}
