package files

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/service/glacier"
	"github.com/mrdunski/publication-zone/model"
)

type stdOS struct{}

func (f stdOS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

func (f stdOS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (f stdOS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

var stdOSInstance = stdOS{}

type FileAccess interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Open(name string) (io.ReadCloser, error)
	Stat(name string) (os.FileInfo, error)
}

// Volume loads tracked files from a directory tree. Only files with one of
// the accepted extensions are tracked; subtrees matching an exclude are
// skipped entirely.
type Volume struct {
	os         FileAccess
	basePath   string
	extensions []string
	excludes   []string
}

func NewVolume(basePath string, extensions []string, excludes ...string) Volume {
	normalized := make([]string, 0, len(extensions))
	for _, extension := range extensions {
		if !strings.HasPrefix(extension, ".") {
			extension = "." + extension
		}
		normalized = append(normalized, extension)
	}

	return Volume{os: stdOSInstance, basePath: basePath, extensions: normalized, excludes: excludes}
}

func (v Volume) isExcluded(path string) bool {
	for _, exclude := range v.excludes {
		if strings.Contains(path, exclude) {
			return true
		}
	}

	return false
}

func (v Volume) isTracked(path string) bool {
	for _, extension := range v.extensions {
		if strings.HasSuffix(path, extension) {
			return true
		}
	}

	return false
}

func (v Volume) LoadFile(subPath string) (_ TreeHashedFile, err error) {
	file, err := os.Open(path.Join(v.basePath, subPath))
	if err != nil {
		return TreeHashedFile{}, fmt.Errorf("failed to open {%s}: %w", subPath, err)
	}
	defer func(file *os.File) {
		closeErr := file.Close()
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}(file)

	stat, err := file.Stat()
	if err != nil {
		return TreeHashedFile{}, fmt.Errorf("failed to stat {%s}: %w", subPath, err)
	}

	hash := glacier.ComputeHashes(file)
	if len(hash.TreeHash) == 0 {
		hash = glacier.ComputeHashes(strings.NewReader(""))
	}

	return TreeHashedFile{
		path:     subPath,
		treeHash: fmt.Sprintf("%x", hash.TreeHash),
		size:     stat.Size(),
		modTime:  stat.ModTime(),
	}, nil
}

func (v Volume) loadEntry(entrySubPath string, entry os.DirEntry) ([]model.TrackedFile, error) {
	if v.isExcluded(entrySubPath) {
		return nil, nil
	}

	if entry.IsDir() {
		return v.loadSubPath(entrySubPath)
	}

	if !v.isTracked(entrySubPath) {
		return nil, nil
	}

	fileHandle, err := v.LoadFile(entrySubPath)
	if err != nil {
		return nil, err
	}
	return []model.TrackedFile{fileHandle}, nil
}

func (v Volume) loadSubPath(subPath string) ([]model.TrackedFile, error) {
	absolutePath := path.Join(v.basePath, subPath)
	entries, err := v.os.ReadDir(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dir {%s}: %w", absolutePath, err)
	}

	var result []model.TrackedFile

	for _, entry := range entries {
		entrySubPath := path.Join(subPath, entry.Name())
		entryFiles, err := v.loadEntry(entrySubPath, entry)
		if err != nil {
			return nil, err
		}
		if len(entryFiles) > 0 {
			result = append(result, entryFiles...)
		}
	}

	return result, nil
}

func (v Volume) LoadTree() ([]model.TrackedFile, error) {
	return v.loadSubPath("")
}
