package sarif

import (
	"testing"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/solint/pkg/shared/vcsurl"
)

func newTestLocation(uri string, start, end int) *sarif.Location {
	return sarif.NewLocationWithPhysicalLocation(
		sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewSimpleArtifactLocation(uri)).
			WithRegion(sarif.NewRegion().WithStartLine(start).WithEndLine(end)),
	)
}

func TestNewLocationURLBuilder_IncludesRepositorySubfolder(t *testing.T) {
	repo := &vcsurl.Repository{VCSType: vcsurl.Github, Host: "github.com", Namespace: "acme", Project: "monorepo"}
	builder := NewLocationURLBuilder(repo, "deadbeefcafebabe", "/packages/vault/")

	url := builder(newTestLocation("contracts/Vault.sol", 42, 42))
	want := "https://github.com/acme/monorepo/blob/deadbeefcafebabe/packages/vault/contracts/Vault.sol#L42"
	if url != want {
		t.Fatalf("unexpected url\nwant: %s\n got: %s", want, url)
	}
}

func TestNewLocationURLBuilder_BitbucketServer(t *testing.T) {
	repo := &vcsurl.Repository{VCSType: vcsurl.Bitbucket, Host: "bitbucket.example.com", Namespace: "PROJ", Project: "mono"}
	builder := NewLocationURLBuilder(repo, "0123456789abcdef", "")

	url := builder(newTestLocation("src/Token.sol", 7, 7))
	want := "https://bitbucket.example.com/projects/PROJ/repos/mono/browse/src/Token.sol?at=0123456789abcdef#7"
	if url != want {
		t.Fatalf("unexpected url\nwant: %s\n got: %s", want, url)
	}
}

func TestNewLocationURLBuilder_Noop(t *testing.T) {
	repo := &vcsurl.Repository{VCSType: vcsurl.Github, Host: "github.com", Namespace: "acme", Project: "vault"}

	testCases := []struct {
		name     string
		builder  LocationURLBuilder
		location *sarif.Location
	}{
		{"no repository", NewLocationURLBuilder(nil, "main", ""), newTestLocation("Vault.sol", 1, 1)},
		{"no ref", NewLocationURLBuilder(repo, "", ""), newTestLocation("Vault.sol", 1, 1)},
		{"stdin artifact", NewLocationURLBuilder(repo, "main", ""), newTestLocation("<stdin>", 1, 1)},
		{"absolute artifact", NewLocationURLBuilder(repo, "main", ""), newTestLocation("/tmp/Vault.sol", 1, 1)},
		{"nil location", NewLocationURLBuilder(repo, "main", ""), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if url := tc.builder(tc.location); url != "" {
				t.Fatalf("expected no url, got %q", url)
			}
		})
	}
}
