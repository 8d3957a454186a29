package ci

import (
	"github.com/hashicorp/go-hclog"
)

// Resolve detects the running CI provider and returns its provenance. The boolean is
// false outside CI or when the provider exposes neither a commit nor a repository URL.
func Resolve(log hclog.Logger, lookup LookupFunc) (Environment, bool) {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	kind := Detect(lookup)
	if kind == Unknown {
		log.Debug("no CI environment detected")
		return Environment{}, false
	}

	env, err := Read(kind, lookup)
	if err != nil {
		log.Debug("unable to read CI environment", "kind", kind.String(), "error", err)
		return Environment{}, false
	}
	if env.CommitHash == "" && env.RepositoryURL == "" {
		log.Debug("CI environment carries no provenance", "kind", kind.String())
		return Environment{}, false
	}

	log.Debug("resolved provenance from CI environment", "kind", kind.String(), "repository", env.RepositoryURL, "commit", env.CommitHash)
	return env, true
}
