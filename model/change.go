package model

import (
	"fmt"
)

type ChangeType string

const (
	Added    ChangeType = "added"
	Modified ChangeType = "modified"
	Deleted  ChangeType = "deleted"
)

type Change struct {
	TrackedFile
	ChangeType ChangeType

	// ContentUnchanged marks a modification whose recorded content hash
	// still matches the file on disk. The file was touched, not rewritten.
	ContentUnchanged bool
}

func (c Change) String() string {
	if c.TrackedFile == nil {
		return fmt.Sprintf("{%s: ?}", c.ChangeType)
	}
	return fmt.Sprintf("{%s: %s}", c.ChangeType, c.Path())
}
