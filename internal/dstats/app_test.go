package dstats

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calpyte/dstats/internal/dstats/conf"
	httpsvc "github.com/calpyte/dstats/internal/dstats/http"
	"github.com/calpyte/dstats/internal/errors"
)

func writeArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestRunWritesReport(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "package.zip")
	writeArchive(t, archivePath, map[string]string{
		"Account/user.json":   `{"id":"1","global_name":"Alex"}`,
		"Messages/index.json": `{"100":"Direct Message with Bea#0001"}`,
		"Messages/c100/channel.json":  `{"type":"DM"}`,
		"Messages/c100/messages.json": `[{"Timestamp":"2024-01-01 10:00:00","Contents":"hello world"}]`,
	})

	cfg := &conf.Config{}
	cfg.Normalize()
	app := New(cfg, archivePath)
	require.NoError(t, app.Run())

	data, err := os.ReadFile(filepath.Join(dir, "discord_stats.html"))
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "Alex&rsquo;s Discord Wrapped")
	assert.Contains(t, html, "Bea")
}

func TestRunCustomOutput(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "package.zip")
	writeArchive(t, archivePath, map[string]string{
		"Messages/c1/channel.json": `{"type":"DM"}`,
	})

	out := filepath.Join(dir, "custom.html")
	cfg := &conf.Config{Output: out}
	cfg.Normalize()
	require.NoError(t, New(cfg, archivePath).Run())

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestRunCreatesOutputDir(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "package.zip")
	writeArchive(t, archivePath, map[string]string{
		"Messages/c1/channel.json": `{"type":"DM"}`,
	})

	out := filepath.Join(dir, "reports", "nested", "stats.html")
	cfg := &conf.Config{Output: out}
	cfg.Normalize()
	require.NoError(t, New(cfg, archivePath).Run())

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestRunMissingArchive(t *testing.T) {
	cfg := &conf.Config{}
	cfg.Normalize()
	err := New(cfg, filepath.Join(t.TempDir(), "nope.zip")).Run()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrArchiveNotFound))
}

func TestRecomputeConcurrent(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "package.zip")
	writeArchive(t, archivePath, map[string]string{
		"Messages/c1/channel.json":  `{"type":"DM"}`,
		"Messages/c1/messages.json": `[{"Timestamp":"2024-01-01 10:00:00","Contents":"hi"}]`,
	})

	cfg := &conf.Config{}
	cfg.Normalize()
	app := New(cfg, archivePath)
	app.svc = httpsvc.NewService("127.0.0.1:0")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.recompute()
		}()
	}
	wg.Wait()

	_, err := os.Stat(filepath.Join(dir, "discord_stats.html"))
	assert.NoError(t, err)
}
