//go:build windows

package linkcap

import (
	"fmt"
	"os/exec"
	"strings"
)

// makeLink creates a genuine Windows .lnk shortcut via the
// WScript.Shell COM object, driven from PowerShell — there is no
// syscall-level API for this, so shelling out is the practical
// approach every native Windows shortcut-creation tool takes.
func makeLink(srcAbs, linkAbs string) error {
	script := fmt.Sprintf(
		`$s=(New-Object -COM WScript.Shell).CreateShortcut('%s'); $s.TargetPath='%s'; $s.Save()`,
		strings.ReplaceAll(linkAbs, "'", "''"),
		strings.ReplaceAll(srcAbs, "'", "''"),
	)

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)

	return cmd.Run()
}
