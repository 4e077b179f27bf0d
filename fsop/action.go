package fsop

// Operation name constants. These are the wire names used in the
// dispatch table consulted by Execute; they match the op-name strings
// in the spec's action-tuple format exactly.
const (
	OpRemoveFile  = "rmfile"
	OpRemovePath  = "rmpath"
	OpRemoveDir   = "rmdir"
	OpMoveToTrash = "moveToTrash"
	OpTouch       = "touch"
	OpMakePath    = "mkpath"
	OpRename      = "rename"
	OpCopyFile    = "cpfile"
	OpCopyDir     = "cpdir"
	OpLink        = "link"
	OpUnlink      = "unlink"
)

// Action is a single action tuple: an operation name plus its
// positional string arguments. Argument arity matches the primitive
// named by Op.
type Action struct {
	Op   string
	Args []string
}

// NewAction builds an Action from an op name and its arguments.
func NewAction(op string, args ...string) Action {
	return Action{Op: op, Args: args}
}

// Empty reports whether the action carries no operation, the Go
// analogue of the Python executor's falsy empty-tuple skip check.
func (a Action) Empty() bool {
	return a.Op == ""
}

// ActionLog is an ordered sequence of actions. Forward primitives
// append their inverse steps in the order the forward side effects
// happened, so undoing them means replaying the log in reverse;
// Execute reverses the accumulated log so replay undoes the most
// recent effect first.
type ActionLog []Action

// Reversed returns a copy of the log in reverse order.
func (l ActionLog) Reversed() ActionLog {
	out := make(ActionLog, len(l))
	for i, a := range l {
		out[len(l)-1-i] = a
	}

	return out
}
