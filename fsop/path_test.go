package fsop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Unit_SplitDirName_RegularPath_Success(t *testing.T) {
	t.Parallel()

	parent, leaf := SplitDirName("/home/user/docs")
	require.Equal(t, "/home/user", parent)
	require.Equal(t, "docs", leaf)
}

func Test_Unit_SplitDirName_DriveRoot_Success(t *testing.T) {
	t.Parallel()

	parent, leaf := SplitDirName("C:/Users")
	require.Equal(t, "C:/", parent)
	require.Equal(t, "Users", leaf)
}

func Test_Unit_SplitDirName_NoSeparator_Success(t *testing.T) {
	t.Parallel()

	parent, leaf := SplitDirName("docs")
	require.Equal(t, "", parent)
	require.Equal(t, "docs", leaf)
}

func Test_Unit_SplitDirName_LeadingSeparator_Success(t *testing.T) {
	t.Parallel()

	// "/" at index 0 is not a drive root; the leaf must not retain it.
	parent, leaf := SplitDirName("/foo")
	require.Equal(t, "", parent)
	require.Equal(t, "foo", leaf)
}

func Test_Unit_Absolute_JoinsRelative_Success(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/root/sub/file.txt", Absolute("/root", "sub/file.txt"))
}

func Test_Unit_Absolute_EmptyRelative_Success(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/root", Absolute("/root", ""))
}

func Test_Unit_ParentOf_Success(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/root/sub", ParentOf("/root/sub/file.txt"))
}
