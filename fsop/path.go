package fsop

import (
	"path/filepath"
	"strings"
)

// SplitDirName locates the last '/' in fullPath and splits it into a
// parent and a leaf. If the character preceding the separator is ':'
// (a Windows drive root, e.g. "C:/"), the separator is kept as part of
// the parent; otherwise the parent excludes the trailing separator.
//
// This mirrors FileOperation.SplitDirName from the original
// implementation verbatim, including the drive-root special case.
func SplitDirName(fullPath string) (parent, leaf string) {
	ind := strings.LastIndex(fullPath, "/")
	if ind == -1 {
		return "", fullPath
	}

	if ind == 0 {
		return "", fullPath[1:]
	}

	if fullPath[ind-1] == ':' {
		return fullPath[:ind+1], fullPath[ind+1:]
	}

	return fullPath[:ind], fullPath[ind+1:]
}

// Absolute joins prefix (an absolute directory) with relative (a
// possibly multi-segment sub-path) into a normalized absolute path,
// using '/' as the internal separator regardless of host platform. The
// platform boundary translates the result only where a syscall
// actually requires it (afero.Fs implementations handle this).
func Absolute(prefix, relative string) string {
	if relative == "" {
		return filepath.ToSlash(filepath.Clean(prefix))
	}

	return filepath.ToSlash(filepath.Join(prefix, relative))
}

// ParentOf returns the containing directory of an absolute path.
func ParentOf(absolutePath string) string {
	parent, _ := SplitDirName(filepath.ToSlash(absolutePath))
	if parent == "" {
		return filepath.ToSlash(filepath.Dir(absolutePath))
	}

	return parent
}
