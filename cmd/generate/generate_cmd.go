package generate

import (
	"fmt"

	"github.com/mrdunski/publication-zone/sitevol"
)

type Cmd struct {
	sitevol.Site
}

func (c Cmd) Run() error {
	m, err := c.RegenerateManifest()
	if err != nil {
		return fmt.Errorf("failed to regenerate manifest: %w", err)
	}

	fmt.Printf("Wrote %d entries (%d bytes) to %s\n", m.Len(), m.TotalSize(), c.ManifestPath())
	return nil
}
