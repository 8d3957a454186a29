// Package ci reads repository provenance from the environment of well-known CI providers.
package ci

import (
	"fmt"
	"os"
	"strings"
)

// Kind identifies a CI provider.
type Kind int

const (
	Unknown Kind = iota
	GitHub
	GitLab
	Bitbucket
)

// LookupFunc fetches an environment variable. nil means os.Getenv.
type LookupFunc func(string) string

// Environment is the provenance a CI job exposes about the checked out code.
type Environment struct {
	Kind          Kind
	CommitHash    string // commit that triggered the job
	Branch        string // short branch or tag name, empty for detached merge refs
	RepositoryURL string // web URL of the repository
}

func (k Kind) String() string {
	switch k {
	case GitHub:
		return "github"
	case GitLab:
		return "gitlab"
	case Bitbucket:
		return "bitbucket"
	default:
		return "unknown"
	}
}

// ParseKind converts a provider name into a Kind.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "github":
		return GitHub, nil
	case "gitlab":
		return GitLab, nil
	case "bitbucket":
		return Bitbucket, nil
	default:
		return Unknown, fmt.Errorf("unsupported ci kind %q", raw)
	}
}

// Detect infers the CI provider from well-known variables.
func Detect(lookup LookupFunc) Kind {
	lookup = orGetenv(lookup)
	switch {
	case lookup("GITHUB_REPOSITORY") != "" || lookup("GITHUB_SHA") != "":
		return GitHub
	case strings.EqualFold(lookup("GITLAB_CI"), "true") || lookup("CI_PROJECT_PATH") != "":
		return GitLab
	case lookup("BITBUCKET_WORKSPACE") != "" || lookup("BITBUCKET_REPO_SLUG") != "":
		return Bitbucket
	}
	return Unknown
}

// Read extracts the provenance variables for kind.
func Read(kind Kind, lookup LookupFunc) (Environment, error) {
	lookup = orGetenv(lookup)
	switch kind {
	case GitHub:
		return readGitHub(lookup), nil
	case GitLab:
		return readGitLab(lookup), nil
	case Bitbucket:
		return readBitbucket(lookup), nil
	default:
		return Environment{}, fmt.Errorf("unsupported ci kind: %s", kind)
	}
}

func orGetenv(lookup LookupFunc) LookupFunc {
	if lookup == nil {
		return os.Getenv
	}
	return lookup
}

// See https://docs.github.com/en/actions/reference/workflows-and-actions/variables.
func readGitHub(lookup LookupFunc) Environment {
	env := Environment{
		Kind:       GitHub,
		CommitHash: lookup("GITHUB_SHA"),
	}
	if strings.HasPrefix(lookup("GITHUB_REF"), "refs/pull/") {
		env.Branch = lookup("GITHUB_HEAD_REF")
	} else {
		env.Branch = lookup("GITHUB_REF_NAME")
	}
	server, repo := lookup("GITHUB_SERVER_URL"), lookup("GITHUB_REPOSITORY")
	if server != "" && repo != "" {
		env.RepositoryURL = strings.TrimSuffix(server, "/") + "/" + repo
	}
	return env
}

// See https://docs.gitlab.com/ci/variables/predefined_variables/.
func readGitLab(lookup LookupFunc) Environment {
	env := Environment{
		Kind:          GitLab,
		CommitHash:    lookup("CI_COMMIT_SHA"),
		RepositoryURL: lookup("CI_PROJECT_URL"),
	}
	switch {
	case lookup("CI_COMMIT_TAG") != "":
		env.Branch = lookup("CI_COMMIT_TAG")
	case lookup("CI_MERGE_REQUEST_SOURCE_BRANCH_NAME") != "":
		env.Branch = lookup("CI_MERGE_REQUEST_SOURCE_BRANCH_NAME")
	default:
		env.Branch = lookup("CI_COMMIT_REF_NAME")
	}
	return env
}

// See https://support.atlassian.com/bitbucket-cloud/docs/variables-and-secrets/.
func readBitbucket(lookup LookupFunc) Environment {
	env := Environment{
		Kind:          Bitbucket,
		CommitHash:    lookup("BITBUCKET_COMMIT"),
		RepositoryURL: lookup("BITBUCKET_GIT_HTTP_ORIGIN"),
	}
	if tag := lookup("BITBUCKET_TAG"); tag != "" {
		env.Branch = tag
	} else {
		env.Branch = lookup("BITBUCKET_BRANCH")
	}
	return env
}
