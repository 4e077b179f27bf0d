package fsop

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func Test_Unit_Touch_CreatesEmptyFile_Success(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	mkdirs(fs, "/root")
	e := newTestEngine(fs)

	code, log := e.Touch("/root", "new.txt")

	require.Equal(t, OK, code)
	require.Equal(t, ActionLog{NewAction(OpRemoveFile, "/root", "new.txt")}, log)

	content, err := afero.ReadFile(fs, "/root/new.txt")
	require.NoError(t, err)
	require.Empty(t, content)
}

func Test_Unit_Touch_AlreadyExists_Idempotent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(fs, "/root/already.txt", "keep me")
	e := newTestEngine(fs)

	code, log := e.Touch("/root", "already.txt")

	require.Equal(t, OK, code)
	require.Empty(t, log)

	content, err := afero.ReadFile(fs, "/root/already.txt")
	require.NoError(t, err)
	require.Equal(t, "keep me", string(content))
}

func Test_Unit_Touch_MissingPreDir_ReturnsDstDirInexist(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	e := newTestEngine(fs)

	code, log := e.Touch("/nonexistent", "file.txt")

	require.Equal(t, DstDirInexist, code)
	require.Empty(t, log)
}

func Test_Unit_Touch_CreatesMissingParent_InverseIsRmpathThenRmfile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	mkdirs(fs, "/root")
	e := newTestEngine(fs)

	code, log := e.Touch("/root", "a/b/new.txt")

	require.Equal(t, OK, code)
	require.Len(t, log, 2)
	require.Equal(t, NewAction(OpRemovePath, "", "/root/a/b"), log[0])
	require.Equal(t, NewAction(OpRemoveFile, "/root", "a/b/new.txt"), log[1])

	ok, err := afero.Exists(fs, "/root/a/b/new.txt")
	require.NoError(t, err)
	require.True(t, ok)
}

func Test_Unit_MakePath_CreatesChain_Success(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	mkdirs(fs, "/root")
	e := newTestEngine(fs)

	code, log := e.MakePath("/root", "a/b/c")

	require.Equal(t, OK, code)
	require.Equal(t, ActionLog{NewAction(OpRemovePath, "/root", "a/b/c")}, log)

	ok, err := afero.DirExists(fs, "/root/a/b/c")
	require.NoError(t, err)
	require.True(t, ok)
}

func Test_Unit_MakePath_AlreadyExists_Idempotent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	mkdirs(fs, "/root/a/b")
	e := newTestEngine(fs)

	code, log := e.MakePath("/root", "a/b")

	require.Equal(t, OK, code)
	require.Empty(t, log)
}

func Test_Unit_MakePath_MissingPreDir_ReturnsDstDirInexist(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	e := newTestEngine(fs)

	code, log := e.MakePath("/nonexistent", "a/b")

	require.Equal(t, DstDirInexist, code)
	require.Empty(t, log)
}

func Test_Unit_MakePath_RoundTripsWithRemovePath(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	mkdirs(fs, "/root")
	e := newTestEngine(fs)

	mkCode, mkLog := e.MakePath("/root", "x/y")
	require.Equal(t, OK, mkCode)
	require.Len(t, mkLog, 1)

	rmCode, rmLog := e.RemovePath(mkLog[0].Args[0], mkLog[0].Args[1])
	require.Equal(t, OK, rmCode)
	require.Equal(t, ActionLog{NewAction(OpMakePath, "/root", "x/y")}, rmLog)

	ok, err := afero.Exists(fs, "/root/x")
	require.NoError(t, err)
	require.False(t, ok)
}
