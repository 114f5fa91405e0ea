package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPath(t *testing.T) {
	got := DefaultOutputPath(filepath.Join("some", "dir", "package.zip"))
	assert.Equal(t, filepath.Join("some", "dir", "discord_stats.html"), got)
}

func TestPrepareDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, PrepareDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileFingerprint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	a, err := FileFingerprint(path)
	require.NoError(t, err)

	b, err := FileFingerprint(path)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	c, err := FileFingerprint(path)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = FileFingerprint(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
