// Package linkcap is a default, real OS-backed implementation of
// fsop.ShortcutCapability.
package linkcap

import "context"

// Capability implements fsop.ShortcutCapability. It delegates to a
// platform-specific makeLink, matching the original implementation's
// QFile.link() call.
type Capability struct{}

// New builds a Capability.
func New() *Capability {
	return &Capability{}
}

// MakeLink creates a shortcut at linkAbs pointing at srcAbs.
func (c *Capability) MakeLink(ctx context.Context, srcAbs, linkAbs string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return makeLink(srcAbs, linkAbs)
}
