package fsop

import (
	"context"
	"strings"
)

const linkSuffix = ".lnk"

// Link creates a platform shortcut at to/rel+".lnk" pointing at
// pre/rel (spec op "link"). to defaults to the engine's starred path
// when callers pass an empty string. If a link already exists at the
// destination it is trashed first, and that trash move's own inverse
// is prepended to the returned log.
func (e *Engine) Link(ctx context.Context, pre, rel, to string) (ErrorCode, ActionLog) {
	if to == "" {
		to = e.starredPath
	}

	src := Absolute(pre, rel)

	srcOk, err := e.exists(src)
	if err != nil {
		e.log.Error("link: stat src failed", "path", src, "error", err)

		return UnknownError, nil
	}
	if !srcOk {
		return SrcInexist, nil
	}

	toIsDir, err := e.isDir(to)
	if err != nil {
		e.log.Error("link: stat to failed", "to", to, "error", err)

		return UnknownError, nil
	}
	if !toIsDir {
		return DstDirInexist, nil
	}

	linkPath := Absolute(to, rel) + linkSuffix

	var log ActionLog

	linkOk, err := e.exists(linkPath)
	if err != nil {
		e.log.Error("link: stat link path failed", "path", linkPath, "error", err)

		return UnknownError, nil
	}
	if linkOk {
		trashedPath, err := e.trash.MoveToTrash(ctx, linkPath)
		if err != nil {
			e.log.Error("link: could not trash existing link", "path", linkPath, "error", err)

			return CannotRemoveFile, log
		}
		log = append(log, NewAction(OpRename, "", trashedPath, "", linkPath))
	}

	createdParent, didCreate, err := e.ensureParent(linkPath)
	if err != nil {
		e.log.Error("link: could not create parent", "path", linkPath, "error", err)

		return DstPreDirCannotMake, log
	}
	if didCreate {
		log = append(log, NewAction(OpRemovePath, "", createdParent))
	}

	if err := e.shortcut.MakeLink(ctx, src, linkPath); err != nil {
		e.log.Error("link: capability failed", "src", src, "link", linkPath, "error", err)

		return CannotMakeLink, log
	}

	log = append(log, NewAction(OpUnlink, pre, rel+linkSuffix, to))

	e.log.Debug("link: created", "src", src, "link", linkPath)

	return OK, log
}

// Unlink removes a shortcut file at to/rel (spec op "unlink"). to
// defaults to the engine's starred path when callers pass an empty
// string. If the target does not exist, the goal state already holds.
func (e *Engine) Unlink(pre, rel, to string) (ErrorCode, ActionLog) {
	if to == "" {
		to = e.starredPath
	}

	abs := Absolute(to, rel)

	ok, err := e.exists(abs)
	if err != nil {
		e.log.Error("unlink: stat failed", "path", abs, "error", err)

		return UnknownError, nil
	}
	if !ok {
		e.log.Debug("unlink: already absent", "path", abs)

		return OK, nil
	}

	if err := e.fsys.Remove(abs); err != nil {
		e.log.Error("unlink: remove failed", "path", abs, "error", err)

		return CannotRemoveLink, nil
	}

	relWithoutSuffix := strings.TrimSuffix(rel, linkSuffix)

	e.log.Debug("unlink: removed", "path", abs)

	return OK, ActionLog{NewAction(OpLink, pre, relWithoutSuffix, to)}
}
