package ls

import (
	"fmt"

	"github.com/mrdunski/publication-zone/model"
	"github.com/mrdunski/publication-zone/sitevol"
)

type Cmd struct {
	sitevol.Site
}

func (c Cmd) Run() error {
	changes, _, err := c.GetChanges()
	if err != nil {
		return fmt.Errorf("failed to calculate changes: %w", err)
	}
	println("Detected changes:")
	for _, change := range changes.Added {
		fmt.Printf("+ %s\n", describe(change))
	}
	for _, change := range changes.Modified {
		fmt.Printf("~ %s\n", describe(change))
	}
	for _, change := range changes.Deleted {
		fmt.Printf("- %s\n", describe(change))
	}

	return nil
}

func describe(change model.Change) string {
	out := change.String()
	if change.TrackedFile != nil && change.Hash() != "" {
		out += " " + change.Hash()
	}
	if change.ContentUnchanged {
		out += " (content unchanged)"
	}

	return out
}
