/*
Package fsop implements a reversible filesystem mutation engine.

Every exported primitive — RemoveFile, RemovePath, RemoveDir,
MoveToTrash, Rename, CopyFile, CopyDir, Touch, MakePath, Link and
Unlink — performs a single, self-contained filesystem action and
returns an [ErrorCode] together with an [ActionLog]: an ordered list of
inverse actions that, when replayed in reverse order (for example
[ActionLog.Reversed] handed to [Engine.Execute]), restore the
filesystem to its state before the call.

# Goal states and conflicts

Primitives distinguish "the goal state already holds" (OK, empty log,
nothing touched) from hard conflicts (a non-OK code, no mutation). A
primitive that fails partway through a multi-step mutation returns
whatever inverse steps it already committed to, so the caller can roll
those back via Execute.

# Batch execution

[Engine.Execute] consumes an [ActionLog] produced by a caller (not
necessarily one returned by a primitive — action tuples are
data, dispatched by name through an internal table), accumulates the
inverse of every action it runs, and returns the composed inverse log
in reverse order, ready to be replayed to undo the whole batch. It
never aborts on a single failure; it counts failures and keeps going,
because a strict abort-on-first-failure policy would leave whatever ran
before the failure stranded with no way to undo it.

MoveToTrash is special: the OS allocates the trash-side name only after
the move happens, so Execute back-patches the corresponding entry of a
caller-supplied srcCommand log in place. See [Engine.Execute] for the
exact contract.

# Capabilities

Trash and shortcut-link creation are delegated to small interfaces,
[TrashCapability] and [ShortcutCapability], injected into an [Engine] at
construction time. Default OS-backed implementations live in
github.com/hollowpath/fsrevert/trashcap and
github.com/hollowpath/fsrevert/linkcap; tests and other
callers can supply their own.
*/
package fsop
