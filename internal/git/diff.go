package git

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sourcegraph/go-diff/diff"
)

// LineSet holds 1-based line numbers of a file.
type LineSet map[int]struct{}

// Has reports whether line is in the set.
func (s LineSet) Has(line int) bool {
	_, ok := s[line]
	return ok
}

// AddedLines returns, per repository-relative slash path, the 1-based line numbers that
// were added between baseRev and headRev. An empty headRev means HEAD. Revisions accept
// anything go-git can resolve (hashes, branches, tags, HEAD~1). Deleted files and files
// outside the optional filter list are skipped.
func (c *Client) AddedLines(repoPath, baseRev, headRev string, filters []string) (map[string]LineSet, error) {
	if strings.TrimSpace(baseRev) == "" {
		return nil, ErrEmptyRevision
	}
	if headRev == "" {
		headRev = string(plumbing.HEAD)
	}

	root, err := findRepositoryRoot(repoPath)
	if err != nil {
		return nil, err
	}
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %q: %w", root, err)
	}

	baseTree, err := resolveTree(repo, baseRev)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base revision %q: %w", baseRev, err)
	}
	headTree, err := resolveTree(repo, headRev)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve head revision %q: %w", headRev, err)
	}

	patch, err := baseTree.Patch(headTree)
	if err != nil {
		return nil, fmt.Errorf("failed to compute diff: %w", err)
	}

	parsed, err := diff.ParseMultiFileDiff([]byte(patch.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}

	allowed := buildFilterSet(filters)
	result := make(map[string]LineSet)
	for _, fd := range parsed {
		if fd == nil || fd.NewName == "/dev/null" || len(fd.Hunks) == 0 {
			continue
		}
		path := strings.TrimPrefix(fd.NewName, "b/")
		if allowed != nil && !allowed[path] {
			continue
		}
		if added := addedInHunks(fd.Hunks); len(added) > 0 {
			result[path] = added
		}
	}

	c.logger.Debug("computed added lines", "base", baseRev, "head", headRev, "files", len(result))
	return result, nil
}

func resolveTree(repo *git.Repository, rev string) (*object.Tree, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, err
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, err
	}
	return commit.Tree()
}

// addedInHunks walks hunk bodies counting new-file lines. Removed lines do not advance
// the counter and "\ No newline" markers are ignored.
func addedInHunks(hunks []*diff.Hunk) LineSet {
	added := make(LineSet)
	for _, h := range hunks {
		if h == nil {
			continue
		}
		lineNo := int(h.NewStartLine)
		if lineNo <= 0 {
			lineNo = 1
		}
		for _, bodyLine := range bytes.Split(h.Body, []byte("\n")) {
			if len(bodyLine) == 0 {
				continue
			}
			switch bodyLine[0] {
			case '+':
				added[lineNo] = struct{}{}
				lineNo++
			case '-', '\\':
			default:
				lineNo++
			}
		}
	}
	return added
}

func buildFilterSet(filters []string) map[string]bool {
	if len(filters) == 0 {
		return nil
	}
	set := make(map[string]bool, len(filters))
	for _, f := range filters {
		if f != "" {
			set[f] = true
		}
	}
	return set
}
