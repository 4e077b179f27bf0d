//go:build linux

package trashcap

import (
	"os"
	"path/filepath"
)

// defaultTrashDir follows the freedesktop.org Trash specification's
// "files" directory, the same location the other examples in this
// pack's retrieval set fall back to once gio/gvfs-trash are
// unavailable.
func defaultTrashDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "fsrevert-trash")
	}

	return filepath.Join(home, ".local", "share", "Trash", "files")
}

func moveFile(src, dst string) error {
	return os.Rename(src, dst)
}
