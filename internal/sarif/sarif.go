package sarif

import (
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/solint/internal/analyzer"
)

const (
	ToolName       = "solint"
	InformationURI = "https://github.com/scan-io-git/solint"
)

// Report is a single-run SARIF log for one analysis.
type Report struct {
	*sarif.Report
	logger hclog.Logger
	run    *sarif.Run
}

// Provenance describes the version-control state the analysed files came from.
type Provenance struct {
	RepositoryURI string
	RevisionID    string
	Branch        string
}

// NewReport creates a report whose driver carries a rule descriptor for every finding code.
func NewReport(toolVersion string, logger hclog.Logger) (*Report, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(ToolName, InformationURI)
	if toolVersion != "" {
		run.Tool.Driver.WithVersion(toolVersion)
	}
	for _, info := range analyzer.Codes() {
		run.AddRule(string(info.Code)).
			WithName(info.ConfigKey).
			WithDescription(info.Description).
			WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel(info.Severity.SARIFLevel())).
			WithProperties(sarif.Properties{"config_key": info.ConfigKey})
	}
	report.AddRun(run)

	return &Report{Report: report, logger: logger, run: run}, nil
}

// AddFindings appends one result per finding. Regions are 1-based; columns are the byte
// offset plus one. When locationURL yields a link it is stored as the location's WebURL.
func (r *Report) AddFindings(uri string, findings []analyzer.Finding, locationURL LocationURLBuilder) {
	for _, f := range findings {
		region := sarif.NewRegion().
			WithStartLine(f.Range.Start.Line + 1).
			WithStartColumn(f.Range.Start.Character + 1).
			WithEndLine(f.Range.End.Line + 1).
			WithEndColumn(f.Range.End.Character + 1)
		location := sarif.NewLocationWithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewSimpleArtifactLocation(uri)).
				WithRegion(region),
		)
		if locationURL != nil {
			if webURL := locationURL(location); webURL != "" {
				location.Properties = sarif.Properties{"WebURL": webURL}
			}
		}

		result := r.run.CreateResultForRule(string(f.Code)).
			WithLevel(f.Severity.SARIFLevel()).
			WithMessage(sarif.NewTextMessage(f.Message))
		result.AddLocation(location)
		result.Properties = sarif.Properties{"Level": f.Severity.SARIFLevel()}
	}
}

// SetProvenance records where the analysed sources came from. Empty URIs are skipped.
func (r *Report) SetProvenance(p Provenance) {
	if p.RepositoryURI == "" {
		return
	}
	details := sarif.NewVersionControlDetails().WithRepositoryURI(p.RepositoryURI)
	if p.RevisionID != "" {
		details.WithRevisionID(p.RevisionID)
	}
	if p.Branch != "" {
		details.WithBranch(p.Branch)
	}
	r.run.AddVersionControlProvenance(details)
}

// SetAutomationDetails identifies this run, for example with a random GUID.
func (r *Report) SetAutomationDetails(id, guid string) {
	r.run.WithAutomationDetails(sarif.NewRunAutomationDetails().WithID(id).WithGUID(guid))
}

// CollectSeverityInfo counts results per SARIF level, plus a total.
func (r *Report) CollectSeverityInfo() map[string]int {
	info := map[string]int{
		"error":   0,
		"warning": 0,
		"note":    0,
		"total":   0,
	}
	for _, run := range r.Runs {
		for _, result := range run.Results {
			level := "note"
			if result.Level != nil {
				level = *result.Level
			}
			info[level]++
			info["total"]++
		}
	}
	return info
}

// SortResultsByLevel orders results error, warning, note, keeping the existing order
// within a level.
func (r *Report) SortResultsByLevel() {
	levelOrder := map[string]int{
		"error":   0,
		"warning": 1,
		"note":    2,
		"none":    3,
	}
	rank := func(res *sarif.Result) int {
		if res.Level == nil {
			return len(levelOrder)
		}
		if v, ok := levelOrder[*res.Level]; ok {
			return v
		}
		return len(levelOrder)
	}
	for _, run := range r.Runs {
		sort.SliceStable(run.Results, func(i, j int) bool {
			return rank(run.Results[i]) < rank(run.Results[j])
		})
	}
}

// Write serialises the report as indented JSON.
func (r *Report) Write(w io.Writer) error {
	info := r.CollectSeverityInfo()
	r.logger.Debug("writing sarif report", "results", info["total"], "error", info["error"], "warning", info["warning"], "note", info["note"])
	if err := r.Report.PrettyWrite(w); err != nil {
		return fmt.Errorf("failed to write sarif report: %w", err)
	}
	return nil
}
