package analyzer

import (
	"fmt"
	"strings"
)

// Severity is the fixed severity attached to every finding of a code.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInformation
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "information"
	default:
		return "unknown"
	}
}

// SARIFLevel maps the severity onto a SARIF result level.
func (s Severity) SARIFLevel() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a severity name into a Severity value.
func ParseSeverity(raw string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "information", "info", "note":
		return SeverityInformation, nil
	default:
		return SeverityError, fmt.Errorf("unsupported severity %q", raw)
	}
}

// Position is a zero-indexed line and byte offset within that line.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a half-open span on a single line.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Finding is one reported issue.
type Finding struct {
	Message  string   `json:"message"`
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
	Range    Range    `json:"range"`
}
