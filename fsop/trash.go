package fsop

import "context"

// MoveToTrash moves pre/rel into the platform trash via the engine's
// TrashCapability (spec op "moveToTrash"). If the target does not
// exist, the goal state already holds. On success the inverse is a
// "rename" back from the trash-allocated path to the original
// location; since that trash-side name is only known after the OS
// allocates it, Engine.Execute back-patches this entry when replaying
// a batch — see Execute's doc comment.
func (e *Engine) MoveToTrash(ctx context.Context, pre, rel string) (ErrorCode, ActionLog) {
	abs := Absolute(pre, rel)

	ok, err := e.exists(abs)
	if err != nil {
		e.log.Error("moveToTrash: stat failed", "path", abs, "error", err)

		return UnknownError, nil
	}
	if !ok {
		e.log.Debug("moveToTrash: already absent", "path", abs)

		return OK, nil
	}

	trashedPath, err := e.trash.MoveToTrash(ctx, abs)
	if err != nil {
		e.log.Error("moveToTrash: capability failed", "path", abs, "error", err, "error-type", "runtime")

		return UnknownError, nil
	}

	e.log.Debug("moveToTrash: moved", "path", abs, "trashed", trashedPath)

	return OK, ActionLog{NewAction(OpRename, "", trashedPath, "", abs)}
}
