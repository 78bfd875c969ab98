package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeFile(t, `
[dict]
snapshot_path = "scores.msgpack"
wordlist_path = "list.txt"
min_word_length = 5

[search]
max_edit_budget = 3
default_edit_budget = 2

[cli]
color = false

[log]
level = "debug"
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "scores.msgpack", cfg.Dict.SnapshotPath)
		assert.Equal(t, "list.txt", cfg.Dict.WordListPath)
		assert.Equal(t, 5, cfg.Dict.MinWordLength)
		assert.Equal(t, 3, cfg.Search.MaxEditBudget)
		assert.Equal(t, 2, cfg.Search.DefaultEditBudget)
		assert.False(t, cfg.CLI.Color)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		path := writeFile(t, "[dict]\nmin_word_length = 3\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		def := DefaultConfig()
		assert.Equal(t, 3, cfg.Dict.MinWordLength)
		assert.Equal(t, def.Dict.SnapshotPath, cfg.Dict.SnapshotPath)
		assert.Equal(t, def.Search, cfg.Search)
	})

	t.Run("partial recovery on type errors", func(t *testing.T) {
		path := writeFile(t, `
[dict]
snapshot_path = "kept.json"
min_word_length = "four"
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "kept.json", cfg.Dict.SnapshotPath)
		assert.Equal(t, 4, cfg.Dict.MinWordLength)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		path := writeFile(t, "this is = = not toml [")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("budgets are clamped", func(t *testing.T) {
		path := writeFile(t, "[search]\nmax_edit_budget = 99\ndefault_edit_budget = 50\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Search.MaxEditBudget)
		assert.Equal(t, 4, cfg.Search.DefaultEditBudget)
	})
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigWithPriority(t *testing.T) {
	path := writeFile(t, "[log]\nlevel = \"info\"\n")
	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "info", cfg.Log.Level)
}
