package fsop

import (
	"errors"
	"os"
)

// exists reports whether absPath exists on the engine's filesystem,
// treating every error other than "not exist" as "unknown, assume it
// might" by propagating it to the caller.
func (e *Engine) exists(absPath string) (bool, error) {
	_, err := e.fsys.Stat(absPath)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// isDir reports whether absPath exists and is a directory.
func (e *Engine) isDir(absPath string) (bool, error) {
	info, err := e.fsys.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return info.IsDir(), nil
}

// ensureParent creates the parent directory chain of absPath if it is
// missing, returning the created parent path (for an inverse "rmpath"
// entry) and whether anything was actually created.
func (e *Engine) ensureParent(absPath string) (created string, didCreate bool, err error) {
	parent := ParentOf(absPath)

	ok, err := e.exists(parent)
	if err != nil {
		return "", false, err
	}
	if ok {
		return "", false, nil
	}

	if err := e.fsys.MkdirAll(parent, dirPerm); err != nil {
		return "", false, err
	}

	return parent, true, nil
}

const dirPerm = 0o777
const filePerm = 0o666

// errDstFileAlreadyExist signals a cpdir walk that a destination path
// collided with an existing file where a directory was expected; it
// never escapes the fsop package.
var errDstFileAlreadyExist = errors.New("fsop: destination exists as a file")
