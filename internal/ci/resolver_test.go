package ci

import (
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name   string
		env    map[string]string
		want   Environment
		wantOK bool
	}{
		{
			name:   "outside CI",
			env:    map[string]string{},
			wantOK: false,
		},
		{
			name:   "provider without provenance",
			env:    map[string]string{"GITLAB_CI": "true"},
			wantOK: false,
		},
		{
			name: "github",
			env: map[string]string{
				"GITHUB_REPOSITORY": "octocat/vault",
				"GITHUB_SERVER_URL": "https://github.com",
				"GITHUB_SHA":        "abcdef",
				"GITHUB_REF_NAME":   "main",
			},
			want:   Environment{Kind: GitHub, CommitHash: "abcdef", Branch: "main", RepositoryURL: "https://github.com/octocat/vault"},
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Resolve(hclog.NewNullLogger(), mapLookup(tc.env))
			if ok != tc.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("Resolve() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestResolveNilLogger(t *testing.T) {
	if _, ok := Resolve(nil, mapLookup(nil)); ok {
		t.Fatalf("Resolve() reported provenance for an empty environment")
	}
}
