package manifest

import (
	"strings"
	"time"
)

// Entry is a single manifest line: the URL of a tracked file. An entry loaded
// back from a manifest file carries the manifest's own modification time as
// its watermark; its content hash comes from the hash index, or is empty when
// no hash was recorded.
type Entry struct {
	path     string
	url      string
	hash     string
	recorded time.Time
}

func NewEntry(path, baseURL, hash string, recorded time.Time) Entry {
	return Entry{
		path:     path,
		url:      entryURL(baseURL, path),
		hash:     hash,
		recorded: recorded,
	}
}

func (e Entry) Path() string {
	return e.path
}

func (e Entry) URL() string {
	return e.url
}

func (e Entry) Hash() string {
	return e.hash
}

func (e Entry) ModTime() time.Time {
	return e.recorded
}

func entryURL(baseURL, path string) string {
	if baseURL == "" {
		return path
	}

	return strings.TrimSuffix(baseURL, "/") + "/" + path
}

func entryPath(baseURL, url string) string {
	if baseURL == "" {
		return url
	}

	prefix := strings.TrimSuffix(baseURL, "/") + "/"
	return strings.TrimPrefix(url, prefix)
}
