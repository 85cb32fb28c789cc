package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/svanberg/goto/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	assert.NilError(t, err)

	assert.Equal(t, cfg.SearchEngine, "https://duckduckgo.com/?q=")
	assert.Equal(t, cfg.MinScore, 0.05)
	assert.Equal(t, cfg.Limit, 8192)
	assert.Equal(t, cfg.Migration, true)
	assert.Assert(t, cfg.DataDir != "")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/tmp/goto-test"
search_engine = "https://www.startpage.com/do/search?query="
min_score = 0.2
migration = false
`
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	assert.NilError(t, err)

	assert.Equal(t, cfg.DataDir, "/tmp/goto-test")
	assert.Equal(t, cfg.SearchEngine, "https://www.startpage.com/do/search?query=")
	assert.Equal(t, cfg.MinScore, 0.2)
	assert.Equal(t, cfg.Migration, false)
	// Unset fields keep their defaults.
	assert.Equal(t, cfg.Limit, 8192)
}

func TestLoad_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NilError(t, os.WriteFile(path, []byte("data_dir = [broken"), 0644))

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "parse config")
}
