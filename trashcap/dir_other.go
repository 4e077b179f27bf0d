//go:build !linux && !darwin && !windows

package trashcap

import (
	"os"
	"path/filepath"
)

func defaultTrashDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "fsrevert-trash")
	}

	return filepath.Join(home, ".fsrevert-trash")
}

func moveFile(src, dst string) error {
	return os.Rename(src, dst)
}
