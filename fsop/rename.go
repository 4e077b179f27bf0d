package fsop

// Rename moves/renames src (pre/rel) to dst (to/toRel) (spec op
// "rename"). The destination must not already exist: this primitive
// never overwrites. Missing destination parent directories are
// created and recorded as an inverse "rmpath" step ahead of the
// inverse "rename" step that moves the file back.
func (e *Engine) Rename(pre, rel, to, toRel string) (ErrorCode, ActionLog) {
	src := Absolute(pre, rel)

	srcOk, err := e.exists(src)
	if err != nil {
		e.log.Error("rename: stat src failed", "path", src, "error", err)

		return UnknownError, nil
	}
	if !srcOk {
		return SrcInexist, nil
	}

	dst := Absolute(to, toRel)

	dstOk, err := e.exists(dst)
	if err != nil {
		e.log.Error("rename: stat dst failed", "path", dst, "error", err)

		return UnknownError, nil
	}
	if dstOk {
		return DstFileOrPathAlreadyExist, nil
	}

	var log ActionLog

	createdParent, didCreate, err := e.ensureParent(dst)
	if err != nil {
		e.log.Error("rename: could not create dst parent", "path", dst, "error", err)

		return DstPreDirCannotMake, log
	}
	if didCreate {
		log = append(log, NewAction(OpRemovePath, "", createdParent))
	}

	if err := e.fsys.Rename(src, dst); err != nil {
		e.log.Error("rename: rename failed", "src", src, "dst", dst, "error", err)

		return UnknownError, log
	}

	log = append(log, NewAction(OpRename, to, toRel, pre, rel))

	e.log.Debug("rename: moved", "src", src, "dst", dst)

	return OK, log
}
