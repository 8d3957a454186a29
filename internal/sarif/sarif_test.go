package sarif

import (
	"bytes"
	"encoding/json"
	"testing"

	gosarif "github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/solint/internal/analyzer"
	"github.com/scan-io-git/solint/pkg/shared/vcsurl"
)

func testFindings() []analyzer.Finding {
	return []analyzer.Finding{
		{
			Message:  "Avoid using tx.origin for authorization",
			Code:     analyzer.CodeTxOrigin,
			Severity: analyzer.SeverityWarning,
			Range:    analyzer.Range{Start: analyzer.Position{Line: 2, Character: 16}, End: analyzer.Position{Line: 2, Character: 25}},
		},
		{
			Message:  "Missing semicolon at the end of the declaration.",
			Code:     analyzer.CodeMissingSemicolon,
			Severity: analyzer.SeverityError,
			Range:    analyzer.Range{Start: analyzer.Position{Line: 4, Character: 17}, End: analyzer.Position{Line: 4, Character: 18}},
		},
	}
}

func TestNewReportDescribesEveryCode(t *testing.T) {
	report, err := NewReport("1.0.0", nil)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}

	driver := report.Runs[0].Tool.Driver
	if driver.Name != ToolName {
		t.Fatalf("driver name = %q, want %q", driver.Name, ToolName)
	}
	if driver.Version == nil || *driver.Version != "1.0.0" {
		t.Fatalf("driver version = %v, want 1.0.0", driver.Version)
	}
	if len(driver.Rules) != len(analyzer.Codes()) {
		t.Fatalf("got %d rules, want %d", len(driver.Rules), len(analyzer.Codes()))
	}

	rule, err := report.Runs[0].GetRuleById(string(analyzer.CodeMissingSemicolon))
	if err != nil {
		t.Fatalf("GetRuleById() error = %v", err)
	}
	if rule.DefaultConfiguration == nil || rule.DefaultConfiguration.Level != "error" {
		t.Fatalf("unexpected default configuration %+v", rule.DefaultConfiguration)
	}
}

func TestAddFindingsUsesOneBasedRegions(t *testing.T) {
	report, err := NewReport("", nil)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	repo := &vcsurl.Repository{VCSType: vcsurl.Github, Host: "github.com", Namespace: "acme", Project: "vault"}
	report.AddFindings("contracts/Wallet.sol", testFindings(), NewLocationURLBuilder(repo, "abc123", ""))

	results := report.Runs[0].Results
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	first := results[0]
	if *first.RuleID != string(analyzer.CodeTxOrigin) || *first.Level != "warning" {
		t.Fatalf("unexpected result %s/%s", *first.RuleID, *first.Level)
	}
	region := first.Locations[0].PhysicalLocation.Region
	if *region.StartLine != 3 || *region.StartColumn != 17 || *region.EndLine != 3 || *region.EndColumn != 26 {
		t.Fatalf("unexpected region %d:%d-%d:%d", *region.StartLine, *region.StartColumn, *region.EndLine, *region.EndColumn)
	}
	if got := first.Locations[0].Properties["WebURL"]; got != "https://github.com/acme/vault/blob/abc123/contracts/Wallet.sol#L3" {
		t.Fatalf("unexpected WebURL %v", got)
	}
}

func TestCollectSeverityInfo(t *testing.T) {
	report, err := NewReport("", nil)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	report.AddFindings("a.sol", testFindings(), nil)
	report.AddFindings("b.sol", testFindings()[:1], nil)

	info := report.CollectSeverityInfo()
	want := map[string]int{"error": 1, "warning": 2, "note": 0, "total": 3}
	for k, v := range want {
		if info[k] != v {
			t.Fatalf("CollectSeverityInfo()[%q] = %d, want %d", k, info[k], v)
		}
	}
}

func TestSortResultsByLevel(t *testing.T) {
	report, err := NewReport("", nil)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	report.AddFindings("a.sol", testFindings(), nil)
	report.SortResultsByLevel()

	results := report.Runs[0].Results
	if *results[0].Level != "error" || *results[1].Level != "warning" {
		t.Fatalf("results not sorted by level: %s, %s", *results[0].Level, *results[1].Level)
	}
}

func TestWriteIncludesProvenance(t *testing.T) {
	report, err := NewReport("", nil)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	report.SetProvenance(Provenance{RepositoryURI: "https://github.com/acme/vault", RevisionID: "abc123", Branch: "main"})
	report.SetProvenance(Provenance{})
	report.SetAutomationDetails("solint/analyse", "7d7f5e4c-3b1a-4c5e-9a61-2b0f2f2b8d10")
	report.AddFindings("a.sol", testFindings()[:1], nil)

	var buf bytes.Buffer
	if err := report.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	parsed, err := gosarif.FromBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	run := parsed.Runs[0]
	if len(run.VersionControlProvenance) != 1 {
		t.Fatalf("got %d provenance entries, want 1", len(run.VersionControlProvenance))
	}
	vcs := run.VersionControlProvenance[0]
	if *vcs.RepositoryURI != "https://github.com/acme/vault" || *vcs.RevisionID != "abc123" || *vcs.Branch != "main" {
		t.Fatalf("unexpected provenance %+v", vcs)
	}
	if run.AutomationDetails == nil || *run.AutomationDetails.GUID != "7d7f5e4c-3b1a-4c5e-9a61-2b0f2f2b8d10" {
		t.Fatalf("unexpected automation details %+v", run.AutomationDetails)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if raw["version"] != "2.1.0" {
		t.Fatalf("version = %v, want 2.1.0", raw["version"])
	}
}
