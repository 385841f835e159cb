package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[server]\nmax_limit = 8\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Server.MaxLimit = 8
	assert.Equal(t, want, cfg)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// max_word_len has the wrong type, which fails the typed decode
	path := writeConfig(t, `
[dict]
adjectives = "/srv/adj.tsv.gz"
encoding = "windows-1251"

[server]
max_limit = 16
max_word_len = "long"

[http]
allowed_origins = ["https://example.org"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/adj.tsv.gz", cfg.Dict.Adjectives)
	assert.Equal(t, "windows-1251", cfg.Dict.Encoding)
	assert.Equal(t, DefaultConfig().Dict.Adverbs, cfg.Dict.Adverbs)
	assert.Equal(t, 16, cfg.Server.MaxLimit)
	assert.Equal(t, 48, cfg.Server.MaxWordLen)
	assert.Equal(t, []string{"https://example.org"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoadConfigGarbage(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "this is [not toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.FileExists(t, path)

	cfg.CLI.DefaultLimit = 3
	require.NoError(t, SaveConfig(cfg, path))

	reloaded, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.CLI.DefaultLimit)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeConfig(t, "[cli]\ndefault_limit = 4\n")

	cfg, used := LoadConfigWithPriority(path)
	assert.Equal(t, path, used)
	assert.Equal(t, 4, cfg.CLI.DefaultLimit)
}

func TestGetActiveConfigPath(t *testing.T) {
	assert.Equal(t, "builtin defaults", GetActiveConfigPath(""))

	path := writeConfig(t, "")
	assert.Equal(t, path, GetActiveConfigPath(path))
	assert.True(t, filepath.IsAbs(GetActiveConfigPath(FileName)))
}
