// Package vcsurl normalises git remotes into repository coordinates and builds
// web permalinks to files inside them.
package vcsurl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	gitsight "github.com/gitsight/go-vcsurl"
)

type VCSType int

const (
	UnknownVCS VCSType = iota
	GenericVCS         // self-hosted or unrecognised server, GitHub-style links
	Github
	Gitlab
	Bitbucket
)

func (t VCSType) String() string {
	switch t {
	case GenericVCS:
		return "generic"
	case Github:
		return "github"
	case Gitlab:
		return "gitlab"
	case Bitbucket:
		return "bitbucket"
	default:
		return "unknown"
	}
}

// Public hosts that go-vcsurl understands natively.
const (
	githubHost    = "github.com"
	gitlabHost    = "gitlab.com"
	bitbucketHost = "bitbucket.org"
)

var ErrEmptyRemote = errors.New("remote URL is empty")

// Repository identifies a repository on a VCS server.
type Repository struct {
	VCSType   VCSType
	Host      string
	Namespace string // owner, group path, workspace or Bitbucket Server project key
	Project   string
}

// Parse accepts https, ssh and scp-like ("git@host:ns/project.git") remotes.
func Parse(remote string) (*Repository, error) {
	raw := strings.TrimSpace(remote)
	if raw == "" {
		return nil, ErrEmptyRemote
	}

	repo, err := parseGeneric(raw)
	if err != nil {
		return nil, err
	}

	switch repo.Host {
	case githubHost, gitlabHost, bitbucketHost:
		if info, err := gitsight.Parse(raw); err == nil && info.Username != "" && info.Name != "" {
			repo.Namespace = info.Username
			repo.Project = strings.TrimSuffix(info.Name, ".git")
		}
	}
	return repo, nil
}

// HTTPURL is the browsable repository URL.
func (r *Repository) HTTPURL() string {
	if r.isBitbucketServer() {
		return fmt.Sprintf("https://%s/projects/%s/repos/%s", r.Host, r.Namespace, r.Project)
	}
	return fmt.Sprintf("https://%s/%s/%s", r.Host, r.Namespace, r.Project)
}

func (r *Repository) isBitbucketServer() bool {
	return r.VCSType == Bitbucket && r.Host != bitbucketHost
}

func parseGeneric(raw string) (*Repository, error) {
	candidate := raw
	if !strings.Contains(candidate, "://") {
		// scp-like syntax: [user@]host:path
		at := strings.Index(candidate, "@")
		colon := strings.Index(candidate, ":")
		if colon <= at+1 {
			return nil, fmt.Errorf("unsupported remote %q", raw)
		}
		candidate = "ssh://" + candidate[:colon] + "/" + candidate[colon+1:]
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse remote %q: %w", raw, err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil, fmt.Errorf("remote %q has no host", raw)
	}

	segments := pathSegments(strings.TrimSuffix(u.Path, ".git"))
	switch {
	case len(segments) == 4 && segments[0] == "projects" && segments[2] == "repos":
		segments = []string{segments[1], segments[3]}
	case len(segments) > 0 && segments[0] == "scm":
		segments = segments[1:]
	}
	if len(segments) < 2 {
		return nil, fmt.Errorf("remote %q does not name a namespace and project", raw)
	}

	return &Repository{
		VCSType:   typeForHost(host),
		Host:      host,
		Namespace: strings.Join(segments[:len(segments)-1], "/"),
		Project:   segments[len(segments)-1],
	}, nil
}

func pathSegments(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func typeForHost(host string) VCSType {
	switch {
	case strings.Contains(host, "github"):
		return Github
	case strings.Contains(host, "gitlab"):
		return Gitlab
	case strings.Contains(host, "bitbucket"):
		return Bitbucket
	default:
		return GenericVCS
	}
}
