package fsop

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hollowpath/fsrevert/internal/tempname"
)

// copyBytes performs a byte-exact copy of srcAbs to dstAbs, writing
// through a temporary working file first and renaming it into place,
// so a failure partway through never leaves a half-written file at
// dstAbs itself.
func (e *Engine) copyBytes(srcAbs, dstAbs string) error {
	in, err := e.fsys.Open(srcAbs)
	if err != nil {
		return fmt.Errorf("open src: %w", err)
	}
	defer in.Close()

	working := dstAbs + "." + tempname.Suffix(dstAbs, 0) + ".fsrevert-tmp"

	out, err := e.fsys.OpenFile(working, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("open working file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = e.fsys.Remove(working)

		return fmt.Errorf("copy bytes: %w", err)
	}

	if err := out.Close(); err != nil {
		_ = e.fsys.Remove(working)

		return fmt.Errorf("close working file: %w", err)
	}

	if err := e.fsys.Rename(working, dstAbs); err != nil {
		_ = e.fsys.Remove(working)

		return fmt.Errorf("rename working file into place: %w", err)
	}

	return nil
}

// CopyFile copies a single file from pre/rel into the directory to,
// preserving rel as the destination's relative name (spec op
// "cpfile"). to must exist as a directory and to/rel must not already
// exist.
func (e *Engine) CopyFile(pre, rel, to string) (ErrorCode, ActionLog) {
	src := Absolute(pre, rel)

	srcOk, err := e.exists(src)
	if err != nil {
		e.log.Error("cpfile: stat src failed", "path", src, "error", err)

		return UnknownError, nil
	}
	if !srcOk {
		return SrcInexist, nil
	}

	toIsDir, err := e.isDir(to)
	if err != nil {
		e.log.Error("cpfile: stat to failed", "to", to, "error", err)

		return UnknownError, nil
	}
	if !toIsDir {
		return DstDirInexist, nil
	}

	dst := Absolute(to, rel)

	dstOk, err := e.exists(dst)
	if err != nil {
		e.log.Error("cpfile: stat dst failed", "path", dst, "error", err)

		return UnknownError, nil
	}
	if dstOk {
		return DstFileAlreadyExist, nil
	}

	var log ActionLog

	createdParent, didCreate, err := e.ensureParent(dst)
	if err != nil {
		e.log.Error("cpfile: could not create dst parent", "path", dst, "error", err)

		return DstPreDirCannotMake, log
	}
	if didCreate {
		log = append(log, NewAction(OpRemovePath, "", createdParent))
	}

	if err := e.copyBytes(src, dst); err != nil {
		e.log.Error("cpfile: copy failed", "src", src, "dst", dst, "error", err)

		return UnknownError, log
	}

	log = append(log, NewAction(OpRemoveFile, to, rel))

	e.log.Debug("cpfile: copied", "src", src, "dst", dst)

	return OK, log
}

// CopyDir recursively copies the directory tree at pre/rel into
// to/rel (spec op "cpdir"). to must exist as a directory and to/rel
// must not already exist. The traversal is pre-order and includes
// both files and subdirectories.
func (e *Engine) CopyDir(pre, rel, to string) (ErrorCode, ActionLog) {
	src := Absolute(pre, rel)

	srcOk, err := e.exists(src)
	if err != nil {
		e.log.Error("cpdir: stat src failed", "path", src, "error", err)

		return UnknownError, nil
	}
	if !srcOk {
		return SrcInexist, nil
	}

	toIsDir, err := e.isDir(to)
	if err != nil {
		e.log.Error("cpdir: stat to failed", "to", to, "error", err)

		return UnknownError, nil
	}
	if !toIsDir {
		return DstDirInexist, nil
	}

	dstRoot := Absolute(to, rel)

	dstRootOk, err := e.exists(dstRoot)
	if err != nil {
		e.log.Error("cpdir: stat dst root failed", "path", dstRoot, "error", err)

		return UnknownError, nil
	}
	if dstRootOk {
		return DstFolderAlreadyExist, nil
	}

	var log ActionLog

	if err := e.fsys.MkdirAll(dstRoot, dirPerm); err != nil {
		e.log.Error("cpdir: could not create dst root", "path", dstRoot, "error", err)

		return UnknownError, log
	}
	log = append(log, NewAction(OpRemovePath, to, rel))

	code, walkLog := e.copyDirContents(src, dstRoot, to, rel)
	log = append(log, walkLog...)

	if code != OK {
		return code, log
	}

	e.log.Debug("cpdir: copied", "src", src, "dst", dstRoot)

	return OK, log
}

// copyDirContents walks src in pre-order, excluding "." and "..", and
// replicates every entry under dstRoot. toBase/relBase are the
// caller's original (to, rel) pair, used only to express inverse
// entries with the same path-pair convention the other primitives use.
func (e *Engine) copyDirContents(src, dstRoot, toBase, relBase string) (ErrorCode, ActionLog) {
	var log ActionLog

	relLen := len(src) + 1

	walkErr := afero.Walk(e.fsys, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == src {
			return nil // root already created by the caller.
		}

		sub := filepath.ToSlash(path[relLen:])
		dstPath := Absolute(dstRoot, sub)
		invRel := Absolute(relBase, sub)

		if info.IsDir() {
			dstOk, err := e.exists(dstPath)
			if err != nil {
				return err
			}
			if dstOk {
				dstIsDir, err := e.isDir(dstPath)
				if err != nil {
					return err
				}
				if !dstIsDir {
					return errDstFileAlreadyExist
				}

				return nil
			}

			if err := e.fsys.Mkdir(dstPath, dirPerm); err != nil {
				return err
			}
			log = append(log, NewAction(OpRemovePath, toBase, invRel))

			return nil
		}

		if err := e.copyBytes(path, dstPath); err != nil {
			return err
		}
		log = append(log, NewAction(OpRemoveFile, toBase, invRel))

		return nil
	})

	if walkErr != nil {
		if walkErr == errDstFileAlreadyExist { //nolint:errorlint
			return DstFileAlreadyExist, log
		}

		e.log.Error("cpdir: walk failed", "src", src, "error", walkErr)

		return UnknownError, log
	}

	return OK, log
}
