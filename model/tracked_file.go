//go:generate mockgen -destination=mock_model/tracked_file.go . TrackedFile
package model

import "time"

type TrackedFile interface {
	Path() string
	Hash() string
	ModTime() time.Time
}

// Sized is implemented by tracked files that know their size in bytes.
type Sized interface {
	Size() int64
}

type TrackedFiles map[string]TrackedFile

func (t TrackedFiles) HasPath(path string) bool {
	_, ok := t[path]
	return ok
}

func (t TrackedFiles) HasFile(path, hash string) bool {
	file, ok := t[path]
	if !ok {
		return false
	}

	return file.Hash() == hash
}

func (t TrackedFiles) Replace(file TrackedFile) {
	t[file.Path()] = file
}

func AsTrackedFiles(files []TrackedFile) TrackedFiles {
	result := TrackedFiles{}
	for _, file := range files {
		result.Replace(file)
	}

	return result
}
