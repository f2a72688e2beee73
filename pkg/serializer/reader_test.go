package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"recipe.json", FormatJSON},
		{"recipe.JSON", FormatJSON},
		{"recipe.yaml", FormatYAML},
		{"recipe.yml", FormatYAML},
		{"out.table", FormatTable},
		{"out.txt", FormatTable},
		{"recipe.conf", FormatJSON},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatFromPath(tc.path), "path %q", tc.path)
	}
}

func TestReader_DeserializeJSON(t *testing.T) {
	reader, err := NewReader(FormatJSON, strings.NewReader(`{"name":"bloom","value":50}`))
	require.NoError(t, err)

	var cfg testConfig
	require.NoError(t, reader.Deserialize(&cfg))
	assert.Equal(t, "bloom", cfg.Name)
	assert.Equal(t, 50, cfg.Value)
}

func TestReader_DeserializeYAML(t *testing.T) {
	reader, err := NewReader(FormatYAML, strings.NewReader("name: bloom\nvalue: 50\n"))
	require.NoError(t, err)

	var cfg testConfig
	require.NoError(t, reader.Deserialize(&cfg))
	assert.Equal(t, "bloom", cfg.Name)
}

func TestReader_TableRejected(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader("x"))
	assert.Error(t, err)

	_, err = NewFileReader(FormatTable, "whatever.txt")
	assert.Error(t, err)
}

func TestReader_UnknownFormat(t *testing.T) {
	_, err := NewReader("nope", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"main pour","value":175}`), 0600))

	cfg, err := FromFile[testConfig](path)
	require.NoError(t, err)
	assert.Equal(t, "main pour", cfg.Name)
	assert.Equal(t, 175, cfg.Value)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile[testConfig](filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReader_CloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\nvalue: 1\n"), 0600))

	reader, err := NewFileReaderAuto(path)
	require.NoError(t, err)

	var cfg testConfig
	require.NoError(t, reader.Deserialize(&cfg))
	require.NoError(t, reader.Close())
	require.NoError(t, reader.Close())
}
