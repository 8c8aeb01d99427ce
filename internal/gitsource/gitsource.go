// Package gitsource fetches playbooks from git repositories so appliance
// configuration can be pulled straight from version control.
package gitsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Source identifies a playbook inside a git repository.
type Source struct {
	// URL is the clone URL of the repository.
	URL string
	// Ref is the branch or tag to check out. Empty means the remote's
	// default branch.
	Ref string
	// Path is the playbook file path relative to the repository root.
	Path string
	// Depth limits clone history when > 0.
	Depth int
}

// Fetch clones the repository into a temporary directory and returns the
// absolute path of the playbook file. The cleanup function removes the
// clone and must be called once the playbook has been consumed.
func (s Source) Fetch(ctx context.Context) (string, func(), error) {
	if s.URL == "" {
		return "", nil, fmt.Errorf("git source requires a repository URL")
	}
	if s.Path == "" {
		return "", nil, fmt.Errorf("git source requires a playbook path")
	}

	dir, err := os.MkdirTemp("", "ovapply-git-*")
	if err != nil {
		return "", nil, fmt.Errorf("create clone directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	opts := &git.CloneOptions{URL: s.URL}
	if s.Depth > 0 {
		opts.Depth = s.Depth
	}
	if s.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(s.Ref)
		opts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, dir, false, opts); err != nil {
		// A ref that is not a branch may still be a tag. A failed clone
		// can leave a partial repository behind, so start clean.
		if s.Ref != "" {
			os.RemoveAll(dir)
			if mkErr := os.MkdirAll(dir, 0o755); mkErr == nil {
				opts.ReferenceName = plumbing.NewTagReferenceName(s.Ref)
				_, err = git.PlainCloneContext(ctx, dir, false, opts)
			}
		}
		if err != nil {
			cleanup()
			return "", nil, fmt.Errorf("clone %s: %w", s.URL, err)
		}
	}

	playbookPath := filepath.Join(dir, filepath.Clean(s.Path))
	if _, err := os.Stat(playbookPath); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("playbook %s not found in repository: %w", s.Path, err)
	}

	return playbookPath, cleanup, nil
}
