package report

import (
	"fmt"
	"strings"

	"github.com/scan-io-git/solint/internal/analyzer"
	"github.com/scan-io-git/solint/internal/scanner"
)

// FailOnNone disables the gate.
const FailOnNone = "none"

// Summary counts findings per severity.
type Summary struct {
	Error       int `json:"error"`
	Warning     int `json:"warning"`
	Information int `json:"information"`
	Total       int `json:"total"`
}

// CollectSeverityInfo counts the findings of result per severity.
func CollectSeverityInfo(result *scanner.Result) Summary {
	var s Summary
	if result == nil {
		return s
	}
	for _, file := range result.Files {
		for _, f := range file.Findings {
			switch f.Severity {
			case analyzer.SeverityError:
				s.Error++
			case analyzer.SeverityWarning:
				s.Warning++
			default:
				s.Information++
			}
			s.Total++
		}
	}
	return s
}

// Gate reports whether summary holds a finding at or above failOn. "none" never trips.
func Gate(summary Summary, failOn string) (bool, error) {
	if strings.EqualFold(strings.TrimSpace(failOn), FailOnNone) {
		return false, nil
	}
	threshold, err := analyzer.ParseSeverity(failOn)
	if err != nil {
		return false, fmt.Errorf("invalid fail-on level: %w", err)
	}

	switch threshold {
	case analyzer.SeverityError:
		return summary.Error > 0, nil
	case analyzer.SeverityWarning:
		return summary.Error+summary.Warning > 0, nil
	default:
		return summary.Total > 0, nil
	}
}
