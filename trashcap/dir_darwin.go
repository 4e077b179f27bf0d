//go:build darwin

package trashcap

import (
	"os"
	"path/filepath"
)

// defaultTrashDir mirrors the per-user ~/.Trash location macOS itself
// uses, instead of shelling out to "osascript -e tell app Finder to
// delete", whose destination path is not observable.
func defaultTrashDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "fsrevert-trash")
	}

	return filepath.Join(home, ".Trash")
}

func moveFile(src, dst string) error {
	return os.Rename(src, dst)
}
