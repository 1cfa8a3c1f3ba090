package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`
generations:
  most_recent: 7
ui:
  neutral_nature_sort: statwise
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Generations.MostRecent)
	assert.Equal(t, 3, cfg.Generations.MinSupported)
	assert.Equal(t, "statwise", cfg.UI.NeutralNatureSort)
	assert.Equal(t, 2, cfg.UI.Suggestions)
	assert.Empty(t, cfg.Data.Dir)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"bad yaml", "generations: [", "parsing config file"},
		{"generations out of order", "generations: {most_recent: 2, min_supported: 5}", "out of order"},
		{"two data sources", "data: {dir: ./data, sqlite: ./p.db}", "at most one"},
		{"unknown sort", "ui: {neutral_nature_sort: random}", "neutral_nature_sort"},
		{"negative suggestions", "ui: {suggestions: -1}", "suggestions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Data.SQLite = "/tmp/pokedex.db"
	cfg.UI.Suggestions = 4
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
