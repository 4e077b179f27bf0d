package fsop

import (
	"strings"

	"github.com/spf13/afero"
)

// RemoveFile removes a single file (spec op "rmfile"). If the target
// does not exist, the goal state already holds and nothing happens. A
// successful removal carries no inverse: file contents cannot be
// recreated, so this is a documented non-recoverable operation.
// Callers wanting undo should use MoveToTrash instead.
func (e *Engine) RemoveFile(pre, rel string) (ErrorCode, ActionLog) {
	abs := Absolute(pre, rel)

	ok, err := e.exists(abs)
	if err != nil {
		e.log.Error("rmfile: stat failed", "path", abs, "error", err)

		return UnknownError, nil
	}
	if !ok {
		e.log.Debug("rmfile: already absent", "path", abs)

		return OK, nil
	}

	if err := e.fsys.Remove(abs); err != nil {
		e.log.Error("rmfile: remove failed", "path", abs, "error", err)

		return CannotRemoveFile, nil
	}

	e.log.Debug("rmfile: removed", "path", abs)

	return OK, nil
}

// RemovePath removes an empty directory chain (spec op "rmpath"). If
// the target does not exist, the goal state already holds. On success
// it climbs upward from the removed leaf, removing any now-empty
// parent directories up to (but not including) pre, stopping at the
// first directory that is not empty — this is what makes RemovePath a
// true inverse of MakePath, which can create an entire multi-level
// chain in one call. See DESIGN.md for why this departs from a
// leaf-only reading of the spec prose.
func (e *Engine) RemovePath(pre, rel string) (ErrorCode, ActionLog) {
	abs := Absolute(pre, rel)

	ok, err := e.exists(abs)
	if err != nil {
		e.log.Error("rmpath: stat failed", "path", abs, "error", err)

		return UnknownError, nil
	}
	if !ok {
		e.log.Debug("rmpath: already absent", "path", abs)

		return OK, nil
	}

	if err := e.fsys.Remove(abs); err != nil {
		e.log.Error("rmpath: remove failed", "path", abs, "error", err)

		return CannotRemoveDir, nil
	}

	segments := strings.Split(strings.Trim(rel, "/"), "/")

	current := abs
	for range segments[1:] {
		current = ParentOf(current)

		// Not every afero.Fs refuses to Remove a non-empty directory
		// (MemMapFs does not), so emptiness is checked explicitly.
		entries, err := afero.ReadDir(e.fsys, current)
		if err != nil || len(entries) != 0 {
			break
		}

		if err := e.fsys.Remove(current); err != nil {
			break // not empty (has other siblings), or otherwise unremovable; stop climbing.
		}
	}

	e.log.Debug("rmpath: removed", "path", abs)

	return OK, ActionLog{NewAction(OpMakePath, pre, rel)}
}

// RemoveDir recursively removes a directory tree (spec op "rmdir"). If
// the target does not exist, the goal state already holds. A
// successful removal carries no inverse — contents are gone and
// byte-exact restoration is not attempted. Callers wanting undo should
// use MoveToTrash instead.
func (e *Engine) RemoveDir(pre, rel string) (ErrorCode, ActionLog) {
	abs := Absolute(pre, rel)

	ok, err := e.exists(abs)
	if err != nil {
		e.log.Error("rmdir: stat failed", "path", abs, "error", err)

		return UnknownError, nil
	}
	if !ok {
		e.log.Debug("rmdir: already absent", "path", abs)

		return OK, nil
	}

	if err := e.fsys.RemoveAll(abs); err != nil {
		e.log.Error("rmdir: remove failed", "path", abs, "error", err)

		return CannotRemoveDir, nil
	}

	e.log.Debug("rmdir: removed", "path", abs)

	return OK, nil
}
