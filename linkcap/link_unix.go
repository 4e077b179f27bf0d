//go:build !windows

package linkcap

import "os"

// makeLink creates a symlink, the closest Unix equivalent to a
// Windows shell shortcut; the ".lnk" suffix on linkAbs is purely a
// naming convention the engine imposes, not a platform requirement
// here.
func makeLink(srcAbs, linkAbs string) error {
	return os.Symlink(srcAbs, linkAbs)
}
