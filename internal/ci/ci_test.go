package ci

import (
	"testing"
)

func mapLookup(values map[string]string) LookupFunc {
	return func(key string) string {
		return values[key]
	}
}

func TestKindString(t *testing.T) {
	testCases := []struct {
		kind Kind
		want string
	}{
		{GitHub, "github"},
		{GitLab, "gitlab"},
		{Bitbucket, "bitbucket"},
		{Unknown, "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Fatalf("Kind.String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "github", want: GitHub},
		{input: " GitLab ", want: GitLab},
		{input: "BITBUCKET", want: Bitbucket},
		{input: "jenkins", want: Unknown, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseKind(tc.input)
			if tc.wantErr != (err != nil) {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("ParseKind(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		want Kind
	}{
		{"github", map[string]string{"GITHUB_SHA": "abc"}, GitHub},
		{"gitlab", map[string]string{"GITLAB_CI": "true"}, GitLab},
		{"bitbucket", map[string]string{"BITBUCKET_REPO_SLUG": "repo"}, Bitbucket},
		{"none", map[string]string{"CI": "true"}, Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(mapLookup(tc.env)); got != tc.want {
				t.Fatalf("Detect() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRead(t *testing.T) {
	testCases := []struct {
		name string
		kind Kind
		env  map[string]string
		want Environment
	}{
		{
			name: "github push",
			kind: GitHub,
			env: map[string]string{
				"GITHUB_REPOSITORY": "octocat/vault",
				"GITHUB_SERVER_URL": "https://github.example.com/",
				"GITHUB_SHA":        "abcdef123456",
				"GITHUB_REF":        "refs/heads/main",
				"GITHUB_REF_NAME":   "main",
			},
			want: Environment{Kind: GitHub, CommitHash: "abcdef123456", Branch: "main", RepositoryURL: "https://github.example.com/octocat/vault"},
		},
		{
			name: "github pull request",
			kind: GitHub,
			env: map[string]string{
				"GITHUB_REPOSITORY": "octocat/vault",
				"GITHUB_SERVER_URL": "https://github.com",
				"GITHUB_SHA":        "abc",
				"GITHUB_REF":        "refs/pull/42/merge",
				"GITHUB_REF_NAME":   "42/merge",
				"GITHUB_HEAD_REF":   "feature/withdraw",
			},
			want: Environment{Kind: GitHub, CommitHash: "abc", Branch: "feature/withdraw", RepositoryURL: "https://github.com/octocat/vault"},
		},
		{
			name: "gitlab merge request",
			kind: GitLab,
			env: map[string]string{
				"CI_COMMIT_SHA":                       "deadbeef",
				"CI_PROJECT_URL":                      "https://gitlab.example.com/group/demo",
				"CI_COMMIT_REF_NAME":                  "refs/merge-requests/7/head",
				"CI_MERGE_REQUEST_SOURCE_BRANCH_NAME": "fix-reentrancy",
			},
			want: Environment{Kind: GitLab, CommitHash: "deadbeef", Branch: "fix-reentrancy", RepositoryURL: "https://gitlab.example.com/group/demo"},
		},
		{
			name: "gitlab tag",
			kind: GitLab,
			env: map[string]string{
				"CI_COMMIT_SHA":      "deadbeef",
				"CI_COMMIT_TAG":      "v1.2.0",
				"CI_COMMIT_REF_NAME": "v1.2.0",
			},
			want: Environment{Kind: GitLab, CommitHash: "deadbeef", Branch: "v1.2.0"},
		},
		{
			name: "bitbucket branch",
			kind: Bitbucket,
			env: map[string]string{
				"BITBUCKET_COMMIT":          "1234567",
				"BITBUCKET_GIT_HTTP_ORIGIN": "https://bitbucket.org/workspace/repo",
				"BITBUCKET_BRANCH":          "develop",
			},
			want: Environment{Kind: Bitbucket, CommitHash: "1234567", Branch: "develop", RepositoryURL: "https://bitbucket.org/workspace/repo"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Read(tc.kind, mapLookup(tc.env))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("Read() = %+v, want %+v", got, tc.want)
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := Read(Unknown, mapLookup(nil)); err == nil {
			t.Fatalf("expected error for Unknown kind")
		}
	})
}
