package files

import (
	"fmt"
	"time"
)

// TreeHashedFile is a tracked file snapshot: path, content tree hash, size
// and modification time captured at load.
type TreeHashedFile struct {
	path     string
	treeHash string
	size     int64
	modTime  time.Time
}

func (f TreeHashedFile) Path() string {
	return f.path
}

func (f TreeHashedFile) Hash() string {
	return f.treeHash
}

func (f TreeHashedFile) ModTime() time.Time {
	return f.modTime
}

func (f TreeHashedFile) Size() int64 {
	return f.size
}

func (f TreeHashedFile) Equal(other TreeHashedFile) bool {
	return f.path == other.path && f.treeHash == other.treeHash
}

func (f TreeHashedFile) String() string {
	return fmt.Sprintf("{path: %s, treeHash: %s}", f.path, f.treeHash)
}
