package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

const origin = "origin"

// RepositoryMetadata describes the repository enclosing a scanned path.
type RepositoryMetadata struct {
	RootFolder string // absolute worktree root
	Subfolder  string // scanned path relative to RootFolder, slash separated, empty at the root
	BranchName string // empty on a detached HEAD
	CommitHash string // empty before the first commit
	RemoteURL  string // origin URL, or the first remote when there is no origin
}

// CollectRepositoryMetadata locates the repository that contains path and reads its
// HEAD and remote. Missing HEAD or remotes leave the matching fields empty.
func (c *Client) CollectRepositoryMetadata(path string) (*RepositoryMetadata, error) {
	root, err := findRepositoryRoot(path)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %q: %w", root, err)
	}

	md := &RepositoryMetadata{RootFolder: filepath.Clean(root)}
	if abs, err := filepath.Abs(path); err == nil {
		if rel, err := filepath.Rel(root, abs); err == nil && rel != "." {
			md.Subfolder = filepath.ToSlash(rel)
		}
	}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			md.BranchName = head.Name().Short()
		}
		md.CommitHash = head.Hash().String()
	} else {
		c.logger.Debug("repository has no HEAD", "root", root, "error", err)
	}

	md.RemoteURL = remoteURL(repo)
	c.logger.Debug("collected repository metadata", "root", md.RootFolder, "branch", md.BranchName, "commit", md.CommitHash, "remote", md.RemoteURL)
	return md, nil
}

func remoteURL(repo *git.Repository) string {
	if remote, err := repo.Remote(origin); err == nil {
		if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
			return cfg.URLs[0]
		}
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return ""
	}
	for _, remote := range remotes {
		if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
			return cfg.URLs[0]
		}
	}
	return ""
}
