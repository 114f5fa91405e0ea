package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5030", c.HTTPAddr)
	assert.Empty(t, c.Output)
	assert.False(t, c.Serve)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dstats.yaml")
	require.NoError(t, os.WriteFile(file, []byte("output: out.html\nhttp_addr: 127.0.0.1:9999\nserve: true\n"), 0o644))

	c, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "out.html", c.Output)
	assert.Equal(t, "127.0.0.1:9999", c.HTTPAddr)
	assert.True(t, c.Serve)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DSTATS_OUTPUT", "env.html")
	t.Setenv("DSTATS_HTTP_ADDR", "127.0.0.1:7777")
	t.Setenv("DSTATS_SERVE", "true")
	t.Setenv("DSTATS_WATCH", "true")
	t.Setenv("DSTATS_DEBUG", "true")

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env.html", c.Output)
	assert.Equal(t, "127.0.0.1:7777", c.HTTPAddr)
	assert.True(t, c.Serve)
	assert.True(t, c.Watch)
	assert.True(t, c.Debug)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	c := &Config{Output: "  out.html  ", HTTPAddr: "   "}
	c.Normalize()
	assert.Equal(t, "out.html", c.Output)
	assert.Equal(t, "127.0.0.1:5030", c.HTTPAddr)
}
