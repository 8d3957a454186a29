package report

import (
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/solint/internal/sarif"
	"github.com/scan-io-git/solint/internal/scanner"
	"github.com/scan-io-git/solint/pkg/shared/files"
)

const automationID = "solint/analyse"

func writeSARIF(w io.Writer, result *scanner.Result, opts Options, logger hclog.Logger) error {
	rep, err := sarif.NewReport(opts.ToolVersion, logger)
	if err != nil {
		return err
	}
	rep.SetProvenance(opts.Provenance)
	rep.SetAutomationDetails(automationID, uuid.New().String())

	links := sarif.NewLocationURLBuilder(opts.Repository, opts.Provenance.RevisionID, "")
	if result != nil {
		for _, file := range result.Files {
			if len(file.Findings) == 0 {
				continue
			}
			rep.AddFindings(artifactURI(opts.RepoRoot, file.Path, logger), file.Findings, links)
		}
	}
	rep.SortResultsByLevel()
	return rep.Write(w)
}

// artifactURI makes path relative to root with forward slashes. Paths outside root and
// stdin keep their original form.
func artifactURI(root, path string, logger hclog.Logger) string {
	if path == scanner.StdinPath {
		return path
	}
	if root != "" {
		rel, err := files.RelativeToRoot(root, path)
		if err == nil {
			return rel
		}
		logger.Debug("keeping path outside the repository root", "path", path, "error", err)
	}
	return filepath.ToSlash(path)
}
