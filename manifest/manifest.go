package manifest

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mrdunski/publication-zone/model"
)

// HashIndexSuffix names the hash index written next to the manifest file.
// The index records the content hash of every entry, keeping the manifest
// itself a plain URL list.
const HashIndexSuffix = ".sum"

// Manifest is the full set of published entries plus the marker time of the
// file it was loaded from. The marker is the watermark for change detection:
// a tracked file with a strictly later modification time is a change.
type Manifest struct {
	baseURL   string
	entries   map[string]Entry
	marker    time.Time
	totalSize int64
}

// Build recomputes the complete manifest for a file tree. No incremental
// update: the entry set is always derived from scratch.
func Build(files []model.TrackedFile, baseURL string) Manifest {
	m := Manifest{baseURL: baseURL, entries: map[string]Entry{}}
	for _, file := range files {
		m.entries[file.Path()] = NewEntry(file.Path(), baseURL, file.Hash(), file.ModTime())
		if sized, ok := file.(model.Sized); ok {
			m.totalSize += sized.Size()
		}
	}

	return m
}

// Load reads a previously written manifest and its hash index. A missing
// manifest is an empty manifest with a zero marker, which makes every tracked
// file a change. A missing hash index leaves the entry hashes empty.
func Load(filePath, baseURL string) (Manifest, error) {
	m := Manifest{baseURL: baseURL, entries: map[string]Entry{}}

	stat, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return Manifest{}, fmt.Errorf("failed to stat manifest {%s}: %w", filePath, err)
	}
	m.marker = stat.ModTime()

	if err := readLines(filePath, func(line string) {
		path := entryPath(baseURL, line)
		m.entries[path] = Entry{path: path, url: line, recorded: m.marker}
	}); err != nil {
		return Manifest{}, err
	}

	if err := m.loadHashIndex(filePath + HashIndexSuffix); err != nil {
		return Manifest{}, err
	}

	return m, nil
}

func readLines(filePath string, handle func(line string)) error {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open {%s}: %w", filePath, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		handle(line)
	}
	if scanner.Err() != nil {
		return fmt.Errorf("failed to read {%s}: %w", filePath, scanner.Err())
	}

	return nil
}

// loadHashIndex attaches recorded content hashes to already loaded entries.
// Index lines for paths no longer in the manifest are dropped.
func (m Manifest) loadHashIndex(indexPath string) error {
	return readLines(indexPath, func(line string) {
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			return
		}
		hash, path := parts[0], parts[1]
		if entry, ok := m.entries[path]; ok {
			entry.hash = hash
			m.entries[path] = entry
		}
	})
}

func (m Manifest) Len() int {
	return len(m.entries)
}

func (m Manifest) HasPath(path string) bool {
	_, ok := m.entries[path]
	return ok
}

// MarkerTime is the modification time of the manifest file this set was
// loaded from. Zero for a manifest that was never written.
func (m Manifest) MarkerTime() time.Time {
	return m.marker
}

// TotalSize is the byte sum of the tree this manifest was built from. Zero
// for a manifest loaded back from disk.
func (m Manifest) TotalSize() int64 {
	return m.totalSize
}

// Entries returns the entry list sorted by path.
func (m Manifest) Entries() []Entry {
	result := make([]Entry, 0, len(m.entries))
	for _, entry := range m.entries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].path < result[j].path
	})

	return result
}

// Render produces the manifest file content: one URL per line, sorted,
// trailing newline. Byte-identical for identical filesystem state.
func (m Manifest) Render() []byte {
	entries := m.Entries()
	lines := make([]string, 0, len(entries)+1)
	for _, entry := range entries {
		lines = append(lines, entry.url)
	}
	lines = append(lines, "")

	return []byte(strings.Join(lines, "\n"))
}

// RenderHashIndex produces the hash index content: "<hash> <path>" per line,
// sorted by path.
func (m Manifest) RenderHashIndex() []byte {
	entries := m.Entries()
	lines := make([]string, 0, len(entries)+1)
	for _, entry := range entries {
		lines = append(lines, entry.hash+" "+entry.path)
	}
	lines = append(lines, "")

	return []byte(strings.Join(lines, "\n"))
}

// WriteFile overwrites the manifest file and its hash index in place. The
// manifest file's new modification time becomes the next marker.
func (m Manifest) WriteFile(filePath string) error {
	if err := os.WriteFile(filePath, m.Render(), 0644); err != nil {
		return fmt.Errorf("failed to write manifest {%s}: %w", filePath, err)
	}
	if err := os.WriteFile(filePath+HashIndexSuffix, m.RenderHashIndex(), 0644); err != nil {
		return fmt.Errorf("failed to write hash index {%s}: %w", filePath+HashIndexSuffix, err)
	}

	return nil
}

// CalculateChanges diffs a freshly loaded tree against this manifest. Files
// absent from the manifest are additions, files modified strictly after the
// marker are modifications, entries with no file on disk are deletions.
func (m Manifest) CalculateChanges(files []model.TrackedFile) model.Changes {
	changes := model.Changes{}
	existing := model.AsTrackedFiles(files)
	known := m.knownFiles()

	for _, file := range files {
		if change, isChanged := m.calculateChange(known, file); isChanged {
			changes.Append(change)
		}
	}

	for _, entry := range m.Entries() {
		if !existing.HasPath(entry.path) {
			changes.Append(model.Change{
				ChangeType:  model.Deleted,
				TrackedFile: entry,
			})
		}
	}

	return changes
}

func (m Manifest) CalculateChange(file model.TrackedFile) (model.Change, bool) {
	return m.calculateChange(m.knownFiles(), file)
}

// calculateChange decides added or modified by mtime alone. The recorded
// hash only annotates a modification as touch-only; without a recorded hash
// a modification counts as a content change.
func (m Manifest) calculateChange(known model.TrackedFiles, file model.TrackedFile) (model.Change, bool) {
	if !m.HasPath(file.Path()) {
		return model.Change{TrackedFile: file, ChangeType: model.Added}, true
	}

	if file.ModTime().After(m.marker) {
		return model.Change{
			TrackedFile:      file,
			ChangeType:       model.Modified,
			ContentUnchanged: file.Hash() != "" && known.HasFile(file.Path(), file.Hash()),
		}, true
	}

	return model.Change{}, false
}

func (m Manifest) knownFiles() model.TrackedFiles {
	known := model.TrackedFiles{}
	for _, entry := range m.entries {
		known.Replace(entry)
	}

	return known
}
