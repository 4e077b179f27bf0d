package fsop

import "context"

type primitiveFunc func(ctx context.Context, e *Engine, args []string) (ErrorCode, ActionLog)

// dispatch maps operation names to primitives, exactly mirroring the
// original's LambdaTable. Primitives that don't take a context (every
// one except MoveToTrash and Link) simply ignore it.
var dispatch = map[string]primitiveFunc{
	OpRemoveFile: func(_ context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.RemoveFile(a[0], a[1])
	},
	OpRemovePath: func(_ context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.RemovePath(a[0], a[1])
	},
	OpRemoveDir: func(_ context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.RemoveDir(a[0], a[1])
	},
	OpMoveToTrash: func(ctx context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.MoveToTrash(ctx, a[0], a[1])
	},
	OpTouch: func(_ context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.Touch(a[0], a[1])
	},
	OpMakePath: func(_ context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.MakePath(a[0], a[1])
	},
	OpRename: func(_ context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.Rename(a[0], a[1], a[2], a[3])
	},
	OpCopyFile: func(_ context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.CopyFile(a[0], a[1], a[2])
	},
	OpCopyDir: func(_ context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.CopyDir(a[0], a[1], a[2])
	},
	OpLink: func(ctx context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.Link(ctx, a[0], a[1], a[2])
	},
	OpUnlink: func(_ context.Context, e *Engine, a []string) (ErrorCode, ActionLog) {
		return e.Unlink(a[0], a[1], a[2])
	},
}

// Execute replays aBatch action by action, dispatching each through
// the name→primitive table, and returns whether every action
// succeeded along with the composed inverse log (already reversed, so
// replaying it in order undoes the batch's most recent effect first).
//
// On a non-OK code, Execute counts the failure and keeps going rather
// than aborting: a strict abort-on-first-failure policy would leave
// whatever ran before the failure stranded with no way to undo it.
// This continuation is unconditional — it is not controlled by
// Config.SkipFailedBatch, which governs a caller's own
// keep-going-across-batches decision above this loop, not the loop
// itself; see Config's doc comment.
//
// srcCommand, if non-nil, is the original forward log this batch is a
// reverse-replay of. When Execute encounters a "moveToTrash" action at
// index i and srcCommand is supplied, it back-patches
// srcCommand[len(srcCommand)-i-1] with the freshly observed trash
// path, because the OS only allocates that name at move time — a
// caller holding onto srcCommand for a later retry needs it rewritten
// in place. srcCommand must have the same length as aBatch; this is
// the same "index from the end" addressing the original Python
// executor uses (srcCommand[-ind-1]), carried over unchanged.
func (e *Engine) Execute(ctx context.Context, aBatch ActionLog, srcCommand ActionLog) (bool, ActionLog) {
	var recovered ActionLog

	failures := 0

	for i, action := range aBatch {
		if action.Empty() {
			continue
		}

		fn, ok := dispatch[action.Op]
		if !ok {
			e.log.Error("execute: unknown operation", "op", action.Op)

			failures++

			continue
		}

		code, recover := fn(ctx, e, action.Args)
		if code != OK {
			failures++

			e.log.Warn("execute: action failed", "op", action.Op, "args", action.Args, "code", code.String())
		}

		if action.Op == OpMoveToTrash && srcCommand != nil {
			idx := len(srcCommand) - i - 1

			switch len(recover) {
			case 0:
				srcCommand[idx] = Action{}
			case 1:
				srcCommand[idx] = recover[0]
			default:
				panic("fsop: moveToTrash recover log must contain at most one entry")
			}
		}

		recovered = append(recovered, recover...)
	}

	if failures != 0 {
		e.log.Warn("execute: batch completed with failures", "failed", failures, "total", len(aBatch))
	}

	return failures == 0, recovered.Reversed()
}
