package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidWord(t *testing.T) {
	testCases := []struct {
		input  string
		maxLen int
		want   bool
	}{
		{"красный", 0, true},
		{"светло-синий", 0, true},
		{"Быстро", 0, true},
		{"", 0, false},
		{"123", 0, false},
		{"крас1ный", 0, false},
		{"красный!", 0, false},
		{"ааа", 0, false},
		{"аа", 0, true},
		{"красный", 6, false},
		{"красный", 7, true},
		{"\xff\xfe", 0, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsValidWord(tc.input, tc.maxLen), "%q", tc.input)
	}
}

func TestTOMLRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	content := "[http]\naddr = \":9000\"\nallowed_origins = [\"a\", \"b\"]\n[server]\nmax_limit = 5\nverbose = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	data, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)

	httpSection, ok := ExtractSection(data, "http")
	require.True(t, ok)
	addr, ok := ExtractString(httpSection, "addr")
	assert.True(t, ok)
	assert.Equal(t, ":9000", addr)
	origins, ok := ExtractStringSlice(httpSection, "allowed_origins")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, origins)

	server, ok := ExtractSection(data, "server")
	require.True(t, ok)
	limit, ok := ExtractInt64(server, "max_limit")
	assert.True(t, ok)
	assert.Equal(t, 5, limit)
	verbose, ok := ExtractBool(server, "verbose")
	assert.True(t, ok)
	assert.True(t, verbose)

	_, ok = ExtractString(server, "max_limit")
	assert.False(t, ok)
	_, ok = ExtractSection(data, "cli")
	assert.False(t, ok)
}

func TestSaveTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.toml")

	type section struct {
		Name string `toml:"name"`
	}
	require.NoError(t, SaveTOMLFile(map[string]section{"dict": {Name: "adj"}}, path))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir))

	var got map[string]section
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, "adj", got["dict"].Name)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be cleaned up")
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	res := CheckDirStatus(dir)
	assert.NoError(t, res.Error)
	assert.True(t, res.Exists)
	assert.True(t, res.Writable)
}

func TestResolveDictPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adj.tsv")
	require.NoError(t, os.WriteFile(path, []byte("x\ty\n"), 0o644))

	pr := &PathResolver{executableDir: dir, homeDir: dir, configDir: filepath.Join(dir, "cfg")}
	assert.Equal(t, path, pr.ResolveDictPath(path))
	assert.Equal(t, path, pr.ResolveDictPath("adj.tsv"))
	assert.Equal(t, "missing.tsv", pr.ResolveDictPath("missing.tsv"))
	assert.Equal(t, "", pr.ResolveDictPath(""))
}
