package fsop

// ErrorCode is the outcome of a primitive call. It is returned in place
// of a Go error across the primitive boundary so that callers can
// branch on specific, stable conditions (already-exists, missing
// parent, ...) without string matching.
type ErrorCode int

const (
	// OK means the call either performed its mutation successfully or
	// found the goal state already held (in which case the returned
	// ActionLog is empty).
	OK ErrorCode = iota

	SrcPreDirInexist
	SrcFileInexist
	SrcDirInexist
	SrcInexist

	DstDirInexist
	DstPreDirCannotMake
	DstFolderAlreadyExist
	DstFileAlreadyExist
	DstFileOrPathAlreadyExist
	DstLinkInexist

	CannotRemoveFile
	CannotRemoveDir
	CannotMakeLink
	CannotRemoveLink

	UnknownError
)

var errorCodeNames = map[ErrorCode]string{
	OK:                        "OK",
	SrcPreDirInexist:          "SRC_PRE_DIR_INEXIST",
	SrcFileInexist:            "SRC_FILE_INEXIST",
	SrcDirInexist:             "SRC_DIR_INEXIST",
	SrcInexist:                "SRC_INEXIST",
	DstDirInexist:             "DST_DIR_INEXIST",
	DstPreDirCannotMake:       "DST_PRE_DIR_CANNOT_MAKE",
	DstFolderAlreadyExist:     "DST_FOLDER_ALREADY_EXIST",
	DstFileAlreadyExist:       "DST_FILE_ALREADY_EXIST",
	DstFileOrPathAlreadyExist: "DST_FILE_OR_PATH_ALREADY_EXIST",
	DstLinkInexist:            "DST_LINK_INEXIST",
	CannotRemoveFile:          "CANNOT_REMOVE_FILE",
	CannotRemoveDir:           "CANNOT_REMOVE_DIR",
	CannotMakeLink:            "CANNOT_MAKE_LINK",
	CannotRemoveLink:          "CANNOT_REMOVE_LINK",
	UnknownError:              "UNKNOWN_ERROR",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}

	return "UNKNOWN_ERROR"
}
