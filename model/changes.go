package model

import (
	"fmt"
)

type Changes struct {
	Added    []Change
	Modified []Change
	Deleted  []Change
}

func (c *Changes) Append(change Change) {
	switch change.ChangeType {
	case Added:
		c.Added = append(c.Added, change)
	case Modified:
		c.Modified = append(c.Modified, change)
	case Deleted:
		c.Deleted = append(c.Deleted, change)
	}
}

func (c Changes) Len() int {
	return len(c.Added) + len(c.Modified) + len(c.Deleted)
}

func (c Changes) Empty() bool {
	return c.Len() == 0
}

// Paths lists every changed path exactly once, additions first.
func (c Changes) Paths() []string {
	seen := make(map[string]bool, c.Len())
	result := make([]string, 0, c.Len())
	for _, group := range [][]Change{c.Added, c.Modified, c.Deleted} {
		for _, change := range group {
			if change.TrackedFile == nil || seen[change.Path()] {
				continue
			}
			seen[change.Path()] = true
			result = append(result, change.Path())
		}
	}

	return result
}

// TouchOnly counts modifications whose content hash did not change.
func (c Changes) TouchOnly() int {
	count := 0
	for _, change := range c.Modified {
		if change.ContentUnchanged {
			count++
		}
	}

	return count
}

func (c Changes) String() string {
	return fmt.Sprintf("{added: %v, modified: %v, deleted: %v}", c.Added, c.Modified, c.Deleted)
}
