package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash"
)

// DefaultOutputPath places the report next to the archive.
func DefaultOutputPath(archivePath string) string {
	return filepath.Join(filepath.Dir(archivePath), "discord_stats.html")
}

// FileFingerprint hashes a file's contents so watchers can tell an actual
// content change from a spurious filesystem event.
func FileFingerprint(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// PrepareDir ensures a directory exists before writing into it.
func PrepareDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
