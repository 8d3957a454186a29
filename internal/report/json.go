package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scan-io-git/solint/internal/analyzer"
	"github.com/scan-io-git/solint/internal/scanner"
)

type jsonFile struct {
	Path     string             `json:"path"`
	Findings []analyzer.Finding `json:"findings"`
	Error    string             `json:"error,omitempty"`
}

type jsonReport struct {
	Files   []jsonFile `json:"files"`
	Summary Summary    `json:"summary"`
}

func writeJSON(w io.Writer, result *scanner.Result) error {
	out := jsonReport{Files: []jsonFile{}, Summary: CollectSeverityInfo(result)}
	if result != nil {
		for _, file := range result.Files {
			entry := jsonFile{Path: file.Path, Findings: file.Findings}
			if entry.Findings == nil {
				entry.Findings = []analyzer.Finding{}
			}
			if file.Err != nil {
				entry.Error = file.Err.Error()
			}
			out.Files = append(out.Files, entry)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write json report: %w", err)
	}
	return nil
}
