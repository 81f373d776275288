package treefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const faunaYAML = `
name: fauna
children:
  - name: domestic
    children:
      - name: pet
        children:
          - name: cat
            children:
              - name: persian
              - name: tabby
                children:
                  - name: white
                    children:
                      - name: white.py
                        file: true
          - name: dog
      - name: notpet
  - name: wild
`

const faunaTOML = `
name = "fauna"

[[children]]
name = "domestic"

  [[children.children]]
  name = "pet"

    [[children.children.children]]
    name = "cat"

      [[children.children.children.children]]
      name = "persian"

      [[children.children.children.children]]
      name = "tabby"

        [[children.children.children.children.children]]
        name = "white"

          [[children.children.children.children.children.children]]
          name = "white.py"
          file = true

    [[children.children.children]]
    name = "dog"

  [[children.children]]
  name = "notpet"

[[children]]
name = "wild"
`

const faunaXML = `<?xml version="1.0"?>
<dir name="fauna">
  <dir name="domestic">
    <dir name="pet">
      <dir name="cat">
        <dir name="persian"/>
        <dir name="tabby">
          <dir name="white">
            <file name="white.py"/>
          </dir>
        </dir>
      </dir>
      <dir name="dog"/>
    </dir>
    <dir name="notpet"/>
  </dir>
  <dir name="wild"/>
</dir>
`

func TestParse_AllFormatsAgree(t *testing.T) {
	want := Example().String()
	for format, data := range map[Format]string{
		FormatYAML: faunaYAML,
		FormatTOML: faunaTOML,
		FormatXML:  faunaXML,
	} {
		t.Run(string(format), func(t *testing.T) {
			tree, err := Parse([]byte(data), format)
			require.NoError(t, err)
			assert.Equal(t, want, tree.String())
			assert.Equal(t, 11, tree.Count())
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML, FormatXML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(Example(), format)
			require.NoError(t, err)

			tree, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, Example().String(), tree.String())
		})
	}
}

func TestMarshal_XMLShape(t *testing.T) {
	data, err := Marshal(types.Dir("t", types.File("a")), FormatXML)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<dir name="t">`)
	assert.Contains(t, string(data), `<file name="a"/>`)
}

func TestMarshal_InvalidTree(t *testing.T) {
	_, err := Marshal(nil, FormatYAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		code   errors.ErrorCode
	}{
		{name: "yaml syntax", format: FormatYAML, data: "name: [", code: errors.ErrTreeParse},
		{name: "yaml empty", format: FormatYAML, data: "", code: errors.ErrTreeParse},
		{name: "yaml unknown key", format: FormatYAML, data: "name: a\nkind: dir\n", code: errors.ErrTreeParse},
		{name: "toml syntax", format: FormatTOML, data: "name = ", code: errors.ErrTreeParse},
		{name: "toml unknown key", format: FormatTOML, data: "name = \"a\"\nsize = 3\n", code: errors.ErrTreeParse},
		{name: "xml syntax", format: FormatXML, data: "<dir name=\"a\">", code: errors.ErrTreeParse},
		{name: "xml empty", format: FormatXML, data: "", code: errors.ErrTreeParse},
		{name: "xml unknown element", format: FormatXML, data: `<dir name="a"><link name="b"/></dir>`, code: errors.ErrTreeParse},
		{name: "file with children", format: FormatYAML, data: "name: a\nfile: true\nchildren:\n  - name: b\n", code: errors.ErrTreeInvalid},
		{name: "xml file with children", format: FormatXML, data: `<file name="a"><file name="b"/></file>`, code: errors.ErrTreeInvalid},
		{name: "missing name", format: FormatXML, data: `<dir name="a"><dir/></dir>`, code: errors.ErrTreeInvalid},
		{name: "separator in name", format: FormatTOML, data: "name = \"a/b\"\n", code: errors.ErrTreeInvalid},
		{name: "unknown format", format: Format("json"), data: "{}", code: errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "want %s, got %v", tt.code, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("by extension", func(t *testing.T) {
		for name, data := range map[string]string{
			"tree.yaml": faunaYAML,
			"tree.yml":  faunaYAML,
			"tree.toml": faunaTOML,
			"tree.xml":  faunaXML,
		} {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(data), 0644))

			tree, err := Load(path)
			require.NoError(t, err, name)
			assert.Equal(t, "fauna", tree.Name, name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(dir, "missing.yaml")
		_, err := Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Equal(t, path, errors.GetPath(err))
	})

	t.Run("no extension", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "tree"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("malformed file carries its path", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("name = "), 0644))
		_, err := Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTreeParse))
		assert.Equal(t, path, errors.GetPath(err))
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"yaml": FormatYAML, "YML": FormatYAML, ".yaml": FormatYAML,
		"toml": FormatTOML, "xml": FormatXML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExample(t *testing.T) {
	tree := Example()
	require.NoError(t, tree.Validate())
	assert.Equal(t, 11, tree.Count())
	assert.Equal(t, "fauna", tree.Name)
}
