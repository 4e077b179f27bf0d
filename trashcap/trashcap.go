// Package trashcap is a default, real OS-backed implementation of
// fsop.TrashCapability.
//
// Native trash integrations (gio trash on Linux, "tell app Finder to
// delete" on macOS, the shell32 recycle bin on Windows) do not reliably
// report back the path they allocate for a moved file, which is
// exactly the piece of information fsop's back-patching contract
// needs. Rather than guess at an undocumented native naming scheme,
// this package manages its own sidecar trash directory per platform
// (the same ultimate fallback the other examples in this retrieval
// pack reach for when gio/gvfs-trash aren't available) so the
// destination path is always known deterministically.
package trashcap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Capability implements fsop.TrashCapability.
type Capability struct {
	// Dir overrides the trash directory. Defaults to the
	// platform-appropriate directory returned by defaultTrashDir().
	Dir string
}

// Option configures a Capability.
type Option func(*Capability)

// WithDir overrides the trash directory.
func WithDir(dir string) Option {
	return func(c *Capability) { c.Dir = dir }
}

// New builds a Capability, resolving the platform trash directory
// unless overridden via WithDir.
func New(opts ...Option) *Capability {
	c := &Capability{Dir: defaultTrashDir()}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// MoveToTrash moves absPath into the trash directory, appending a
// numeric suffix on name collisions, and returns the path it landed
// at.
func (c *Capability) MoveToTrash(ctx context.Context, absPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(c.Dir, 0o700); err != nil {
		return "", fmt.Errorf("trashcap: could not create trash dir: %w", err)
	}

	base := filepath.Base(absPath)
	dest := filepath.Join(c.Dir, base)

	for n := 1; ; n++ {
		if _, err := os.Lstat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(c.Dir, base+"."+strconv.Itoa(n))
	}

	if err := moveFile(absPath, dest); err != nil {
		return "", fmt.Errorf("trashcap: move failed: %w", err)
	}

	return dest, nil
}
