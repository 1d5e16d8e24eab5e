package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gogitConfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrDetachedHead is returned when no branch is configured and HEAD doesn't
// point at one.
var ErrDetachedHead = errors.New("HEAD is not a branch, configure the branch to push")

// Publisher stages, commits and pushes manifest updates. Publishing is
// best-effort: a failed push leaves the commit in place for the next cycle.
type Publisher struct {
	repo     *gogit.Repository
	worktree *gogit.Worktree
	cfg      Config

	// pathPrefix maps site-relative paths onto worktree-relative ones when
	// the site root sits below the repository root.
	pathPrefix string
}

// Open attaches a publisher to the repository containing the given path.
// An absent repository is a configuration error, not a retryable one.
func Open(cfg Config, dir string) (*Publisher, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository {%s}: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree {%s}: %w", dir, err)
	}

	prefix, err := worktreePrefix(worktree, dir)
	if err != nil {
		return nil, err
	}

	return &Publisher{repo: repo, worktree: worktree, cfg: cfg, pathPrefix: prefix}, nil
}

func worktreePrefix(worktree *gogit.Worktree, dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve {%s}: %w", dir, err)
	}

	rel, err := filepath.Rel(worktree.Filesystem.Root(), absDir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("directory {%s} is outside worktree {%s}", dir, worktree.Filesystem.Root())
	}
	if rel == "." {
		return "", nil
	}

	return filepath.ToSlash(rel), nil
}

func (p *Publisher) worktreePath(subPath string) string {
	if p.pathPrefix == "" {
		return subPath
	}

	return path.Join(p.pathPrefix, subPath)
}

// CommitMessage generates the timestamped message for a manifest commit.
func CommitMessage(t time.Time) string {
	return fmt.Sprintf("manifest update %s", t.UTC().Format(time.RFC3339))
}

// Stage stages exactly the given paths, or the whole working tree when
// StageAll is configured.
func (p *Publisher) Stage(paths []string) error {
	if p.cfg.StageAll {
		if err := p.worktree.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
			return fmt.Errorf("failed to stage working tree: %w", err)
		}
		return nil
	}

	for _, subPath := range paths {
		if _, err := p.worktree.Add(p.worktreePath(subPath)); err != nil {
			return fmt.Errorf("failed to stage {%s}: %w", subPath, err)
		}
	}

	return nil
}

// CommitIfChanged creates at most one commit. When the staged set doesn't
// differ from HEAD it is an idempotent no-op.
func (p *Publisher) CommitIfChanged(message string) (bool, error) {
	staged, err := p.hasStagedChanges()
	if err != nil {
		return false, err
	}
	if !staged {
		return false, nil
	}

	_, err = p.worktree.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  p.cfg.AuthorName,
			Email: p.cfg.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}

	return true, nil
}

// Push pushes the configured branch with a bounded timeout. A remote that is
// already up to date is a success; everything else is retryable by the next
// cycle.
func (p *Publisher) Push(ctx context.Context) error {
	branch, err := p.branch()
	if err != nil {
		return err
	}

	pushCtx, cancel := context.WithTimeout(ctx, p.cfg.PushTimeout)
	defer cancel()

	refSpec := gogitConfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	err = p.repo.PushContext(pushCtx, &gogit.PushOptions{
		RemoteName: p.cfg.Remote,
		RefSpecs:   []gogitConfig.RefSpec{refSpec},
		Auth:       p.cfg.auth(),
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push {%s/%s}: %w", p.cfg.Remote, branch, err)
	}

	return nil
}

// Publish runs one stage, commit-if-changed, push cycle. The push is always
// attempted, so a commit left behind by a previously failed push gets
// retried even when this cycle stages nothing new.
func (p *Publisher) Publish(ctx context.Context, paths []string, message string) (bool, error) {
	if err := p.Stage(paths); err != nil {
		return false, err
	}

	created, err := p.CommitIfChanged(message)
	if err != nil {
		return false, err
	}

	return created, p.Push(ctx)
}

func (p *Publisher) branch() (string, error) {
	if p.cfg.Branch != "" {
		return p.cfg.Branch, nil
	}

	head, err := p.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", ErrDetachedHead
	}

	return head.Name().Short(), nil
}

func (p *Publisher) hasStagedChanges() (bool, error) {
	status, err := p.worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}

	for _, fileStatus := range status {
		if fileStatus.Staging != gogit.Unmodified && fileStatus.Staging != gogit.Untracked {
			return true, nil
		}
	}

	return false, nil
}
