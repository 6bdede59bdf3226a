package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathml.fonts")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	assert.Contains(t, f.Fontname, "Go")
	assert.NotNil(t, f.SFNT)
	assert.Empty(t, f.Filepath)
}

func TestLoadFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathml.fonts")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "go.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	f, err := LoadOpenTypeFont(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Filepath)
	//
	_, err = LoadOpenTypeFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseOpenTypeFont([]byte("this is not a font"))
	assert.Error(t, err)
}
