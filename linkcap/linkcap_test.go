package linkcap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Unit_MakeLink_CreatesSymlink_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))
	link := filepath.Join(dir, "a.txt.lnk")

	c := New()

	err := c.MakeLink(context.Background(), src, link)

	require.NoError(t, err)

	target, err := os.Readlink(link)
	require.NoError(t, err)
	require.Equal(t, src, target)

	content, err := os.ReadFile(link)
	require.NoError(t, err)
	require.Equal(t, "payload", string(content))
}

func Test_Unit_MakeLink_CanceledContext_ReturnsError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	c := New()

	err := c.MakeLink(ctx, filepath.Join(dir, "a.txt"), filepath.Join(dir, "a.txt.lnk"))

	require.Error(t, err)
}

func Test_Unit_MakeLink_NonexistentSrc_StillCreatesDanglingSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	link := filepath.Join(dir, "dangling.lnk")

	c := New()

	err := c.MakeLink(context.Background(), filepath.Join(dir, "missing.txt"), link)

	require.NoError(t, err, "os.Symlink does not require the target to exist")

	target, err := os.Readlink(link)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "missing.txt"), target)
}
