package sitevol

import (
	"fmt"
	"os"
	"path"

	"github.com/mrdunski/publication-zone/files"
	"github.com/mrdunski/publication-zone/manifest"
	"github.com/mrdunski/publication-zone/model"
)

// Site is the tracked directory configuration, embeddable in kong commands.
type Site struct {
	Path         string   `arg:"" env:"SITE_PATH" help:"Root directory to track." type:"path" group:"Site"`
	ManifestFile string   `env:"MANIFEST_FILE" help:"Manifest file name, relative to the root." optional:"" default:"manifest.txt" group:"Site"`
	BaseURL      string   `env:"BASE_URL" help:"URL prefix for manifest entries." optional:"" group:"Site"`
	Extensions   []string `env:"TRACKED_EXTENSIONS" help:"File extensions to track." optional:"" default:".py,.json" group:"Site"`
	Excludes     []string `name:"exclude" env:"SITE_EXCLUDES" help:"Exclude files and directories by name." optional:"" sep:"none" group:"Site"`
}

// Validate rejects unusable configuration before any command runs. A missing
// root or an empty extension set is fatal, not retryable.
func (s Site) Validate() error {
	if len(s.Extensions) == 0 {
		return fmt.Errorf("at least one tracked extension is required")
	}

	stat, err := os.Stat(s.Path)
	if err != nil {
		return fmt.Errorf("site root {%s} is not accessible: %w", s.Path, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("site root {%s} is not a directory", s.Path)
	}

	return nil
}

func (s Site) ManifestPath() string {
	return path.Join(s.Path, s.ManifestFile)
}

func (s Site) allExcludes() []string {
	excludes := []string{s.ManifestFile, s.ManifestFile + manifest.HashIndexSuffix, ".git"}
	if len(s.Excludes) > 0 {
		excludes = append(excludes, s.Excludes...)
	}

	return excludes
}

func (s Site) LoadTree() ([]model.TrackedFile, error) {
	tree, err := files.NewVolume(s.Path, s.Extensions, s.allExcludes()...).LoadTree()
	if err != nil {
		return nil, fmt.Errorf("failed to load tree {%s}: %w", s.Path, err)
	}

	return tree, nil
}

func (s Site) LoadManifest() (manifest.Manifest, error) {
	m, err := manifest.Load(s.ManifestPath(), s.BaseURL)
	if err != nil {
		return manifest.Manifest{}, fmt.Errorf("failed to load manifest {%s}: %w", s.ManifestPath(), err)
	}

	return m, nil
}

// GetChanges diffs the current tree against the committed manifest.
func (s Site) GetChanges() (model.Changes, manifest.Manifest, error) {
	tree, err := s.LoadTree()
	if err != nil {
		return model.Changes{}, manifest.Manifest{}, err
	}

	m, err := s.LoadManifest()
	if err != nil {
		return model.Changes{}, manifest.Manifest{}, err
	}

	return m.CalculateChanges(tree), m, nil
}

// RegenerateManifest recomputes the manifest from scratch and overwrites the
// manifest file. The file's new modification time becomes the change marker.
func (s Site) RegenerateManifest() (manifest.Manifest, error) {
	tree, err := s.LoadTree()
	if err != nil {
		return manifest.Manifest{}, err
	}

	m := manifest.Build(tree, s.BaseURL)
	if err := m.WriteFile(s.ManifestPath()); err != nil {
		return manifest.Manifest{}, err
	}

	return m, nil
}
