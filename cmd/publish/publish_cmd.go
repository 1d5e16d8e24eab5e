package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/mrdunski/publication-zone/gitrepo"
	"github.com/mrdunski/publication-zone/sitevol"
)

type Cmd struct {
	sitevol.Site
	gitrepo.Config
}

// Run executes a single regeneration and publish cycle. Unlike the watch
// loop, a failed push is reported to the caller here.
func (c Cmd) Run() error {
	changes, _, err := c.GetChanges()
	if err != nil {
		return fmt.Errorf("failed to calculate changes: %w", err)
	}

	publisher, err := gitrepo.Open(c.Config, c.Path)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	m, err := c.RegenerateManifest()
	if err != nil {
		return fmt.Errorf("failed to regenerate manifest: %w", err)
	}

	paths := append([]string{c.ManifestFile}, changes.Paths()...)
	created, err := publisher.Publish(context.Background(), paths, gitrepo.CommitMessage(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	if created {
		fmt.Printf("Published %d entries\n", m.Len())
	} else {
		fmt.Println("Nothing to publish")
	}

	return nil
}
