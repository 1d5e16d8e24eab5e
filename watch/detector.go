package watch

import (
	"github.com/mrdunski/publication-zone/manifest"
	"github.com/mrdunski/publication-zone/model"
)

type State string

const (
	StateClean State = "clean"
	StateDirty State = "dirty"
)

//go:generate mockgen -destination=mock_watch/site.go . Site

// Site is the tracked directory as the loop sees it.
type Site interface {
	GetChanges() (model.Changes, manifest.Manifest, error)
	RegenerateManifest() (manifest.Manifest, error)
}

// Detector reports whether a regeneration cycle is needed. The tree is dirty
// exactly when some tracked file changed after the manifest marker.
type Detector struct {
	site Site
}

func NewDetector(site Site) Detector {
	return Detector{site: site}
}

func (d Detector) Check() (State, model.Changes, error) {
	changes, _, err := d.site.GetChanges()
	if err != nil {
		return StateClean, model.Changes{}, err
	}

	if changes.Empty() {
		return StateClean, changes, nil
	}

	return StateDirty, changes, nil
}
