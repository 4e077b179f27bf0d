//go:build windows

package trashcap

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// defaultTrashDir uses a sidecar directory under LOCALAPPDATA rather
// than the shell32 recycle bin, whose internally-renamed destination
// name the Windows API does not hand back to callers.
func defaultTrashDir() string {
	base := os.Getenv("LOCALAPPDATA")
	if base == "" {
		base = os.TempDir()
	}

	return filepath.Join(base, "fsrevert", "trash")
}

// moveFile moves src to dst via MoveFileEx with MOVEFILE_COPY_ALLOWED
// rather than os.Rename, so the move also succeeds when the trash
// directory is on a different volume than the source. An existing dst
// is not replaced.
func moveFile(src, dst string) error {
	srcPtr, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return err
	}

	dstPtr, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return err
	}

	return windows.MoveFileEx(srcPtr, dstPtr, windows.MOVEFILE_COPY_ALLOWED)
}
