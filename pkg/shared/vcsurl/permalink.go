package vcsurl

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingRef  = errors.New("ref (branch, tag, or commit SHA) is required")
	ErrMissingFile = errors.New("file path is required")
)

// Permalink links to file at ref, anchored to the 1-based line range. A startLine of
// zero omits the anchor; an endLine below startLine is treated as a single line.
//
//	GitHub, generic:   https://{host}/{ns}/{proj}/blob/{ref}/{file}#L{start}-L{end}
//	GitLab:            https://{host}/{ns}/{proj}/-/blob/{ref}/{file}#L{start}-{end}
//	Bitbucket Cloud:   https://bitbucket.org/{ns}/{proj}/src/{ref}/{file}#lines-{start}:{end}
//	Bitbucket Server:  https://{host}/projects/{ns}/repos/{proj}/browse/{file}?at={ref}#{start}-{end}
func (r *Repository) Permalink(ref, file string, startLine, endLine int) (string, error) {
	if ref == "" {
		return "", ErrMissingRef
	}
	file = strings.TrimLeft(strings.ReplaceAll(file, "\\", "/"), "/")
	if file == "" {
		return "", ErrMissingFile
	}

	base := r.HTTPURL()
	switch {
	case r.isBitbucketServer():
		return fmt.Sprintf("%s/browse/%s?at=%s%s", base, file, ref, lineAnchor(r, startLine, endLine)), nil
	case r.VCSType == Bitbucket:
		return fmt.Sprintf("%s/src/%s/%s%s", base, ref, file, lineAnchor(r, startLine, endLine)), nil
	case r.VCSType == Gitlab:
		return fmt.Sprintf("%s/-/blob/%s/%s%s", base, ref, file, lineAnchor(r, startLine, endLine)), nil
	default:
		return fmt.Sprintf("%s/blob/%s/%s%s", base, ref, file, lineAnchor(r, startLine, endLine)), nil
	}
}

func lineAnchor(r *Repository, startLine, endLine int) string {
	if startLine <= 0 {
		return ""
	}
	if endLine < startLine {
		endLine = startLine
	}
	single := endLine == startLine

	switch {
	case r.isBitbucketServer():
		if single {
			return fmt.Sprintf("#%d", startLine)
		}
		return fmt.Sprintf("#%d-%d", startLine, endLine)
	case r.VCSType == Bitbucket:
		if single {
			return fmt.Sprintf("#lines-%d", startLine)
		}
		return fmt.Sprintf("#lines-%d:%d", startLine, endLine)
	case r.VCSType == Gitlab:
		if single {
			return fmt.Sprintf("#L%d", startLine)
		}
		return fmt.Sprintf("#L%d-%d", startLine, endLine)
	default:
		if single {
			return fmt.Sprintf("#L%d", startLine)
		}
		return fmt.Sprintf("#L%d-L%d", startLine, endLine)
	}
}
