package sarif

import (
	"path"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/solint/pkg/shared/vcsurl"
)

// LocationURLBuilder returns a permalink for a SARIF location, or "" when none can be built.
type LocationURLBuilder func(*sarif.Location) string

// NewLocationURLBuilder links locations into repo at ref. Artifact URIs are taken as
// relative to subfolder inside the repository. Without a repository or ref a noop
// builder is returned so callers can keep writing results without links.
func NewLocationURLBuilder(repo *vcsurl.Repository, ref, subfolder string) LocationURLBuilder {
	noop := func(*sarif.Location) string { return "" }
	if repo == nil || ref == "" {
		return noop
	}
	subfolder = strings.Trim(subfolder, "/")

	return func(location *sarif.Location) string {
		artifact := artifactURI(location)
		if artifact == "" {
			return ""
		}
		if subfolder != "" {
			artifact = path.Join(subfolder, artifact)
		}
		start, end := regionLines(location)
		link, err := repo.Permalink(ref, artifact, start, end)
		if err != nil {
			return ""
		}
		return link
	}
}

func artifactURI(location *sarif.Location) string {
	if location == nil || location.PhysicalLocation == nil || location.PhysicalLocation.ArtifactLocation == nil {
		return ""
	}
	uri := location.PhysicalLocation.ArtifactLocation.URI
	if uri == nil || *uri == "" || strings.HasPrefix(*uri, "<") || path.IsAbs(*uri) {
		return ""
	}
	return *uri
}

func regionLines(location *sarif.Location) (int, int) {
	region := location.PhysicalLocation.Region
	if region == nil || region.StartLine == nil {
		return 0, 0
	}
	start, end := *region.StartLine, *region.StartLine
	if region.EndLine != nil {
		end = *region.EndLine
	}
	return start, end
}
