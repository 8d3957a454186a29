package git

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// findRepositoryRoot walks up from path until it finds a directory git can open.
// A file path starts the walk from its parent directory.
func findRepositoryRoot(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for {
		if _, err := git.PlainOpen(abs); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNotRepository
		}
		abs = parent
	}
}
