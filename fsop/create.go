package fsop

import "os"

// Touch creates an empty regular file (spec op "touch"). pre must
// already exist as a directory. If the target already exists, the
// goal state holds and nothing happens. Missing parent directories are
// created and recorded as a single inverse "rmpath" step.
//
// This always creates a file, never a directory — see SPEC_FULL.md's
// resolution of the §4.9/§9 ambiguity.
func (e *Engine) Touch(pre, rel string) (ErrorCode, ActionLog) {
	preIsDir, err := e.isDir(pre)
	if err != nil {
		e.log.Error("touch: stat pre failed", "pre", pre, "error", err)

		return UnknownError, nil
	}
	if !preIsDir {
		return DstDirInexist, nil
	}

	abs := Absolute(pre, rel)

	ok, err := e.exists(abs)
	if err != nil {
		e.log.Error("touch: stat target failed", "path", abs, "error", err)

		return UnknownError, nil
	}
	if ok {
		e.log.Debug("touch: already exists", "path", abs)

		return OK, nil
	}

	var log ActionLog

	createdParent, didCreate, err := e.ensureParent(abs)
	if err != nil {
		e.log.Error("touch: could not create parent", "path", abs, "error", err)

		return DstPreDirCannotMake, log
	}
	if didCreate {
		log = append(log, NewAction(OpRemovePath, "", createdParent))
	}

	f, err := e.fsys.OpenFile(abs, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		e.log.Error("touch: create failed", "path", abs, "error", err)

		return UnknownError, log
	}
	if err := f.Close(); err != nil {
		e.log.Error("touch: close failed", "path", abs, "error", err)

		return UnknownError, log
	}

	log = append(log, NewAction(OpRemoveFile, pre, rel))

	e.log.Debug("touch: created", "path", abs)

	return OK, log
}

// MakePath creates a directory chain (spec op "mkpath"). pre must
// already exist as a directory. If pre/rel already exists, the goal
// state holds and nothing happens.
func (e *Engine) MakePath(pre, rel string) (ErrorCode, ActionLog) {
	preIsDir, err := e.isDir(pre)
	if err != nil {
		e.log.Error("mkpath: stat pre failed", "pre", pre, "error", err)

		return UnknownError, nil
	}
	if !preIsDir {
		return DstDirInexist, nil
	}

	abs := Absolute(pre, rel)

	ok, err := e.exists(abs)
	if err != nil {
		e.log.Error("mkpath: stat target failed", "path", abs, "error", err)

		return UnknownError, nil
	}
	if ok {
		e.log.Debug("mkpath: already exists", "path", abs)

		return OK, nil
	}

	if err := e.fsys.MkdirAll(abs, dirPerm); err != nil {
		e.log.Error("mkpath: create failed", "path", abs, "error", err)

		return UnknownError, nil
	}

	e.log.Debug("mkpath: created", "path", abs)

	return OK, ActionLog{NewAction(OpRemovePath, pre, rel)}
}
