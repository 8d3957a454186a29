package analyzer

import (
	"regexp"
	"strings"
)

type findingKey struct {
	line, start, end int
	code             Code
}

// session owns all state of a single Analyze call.
type session struct {
	text     string
	lines    []string
	limit    int
	findings []Finding
	reported map[findingKey]struct{}

	declared   map[string]struct{}
	missing    []string // type-less identifiers in the order they were flagged
	missingSet map[string]struct{}
	usage      map[string]*regexp.Regexp

	naming *compiledNaming
}

func newSession(text string, limit int) *session {
	if limit < 0 {
		limit = 0
	}
	return &session{
		text:       text,
		lines:      splitLines(text),
		limit:      limit,
		findings:   make([]Finding, 0),
		reported:   make(map[findingKey]struct{}),
		declared:   make(map[string]struct{}),
		missingSet: make(map[string]struct{}),
		usage:      make(map[string]*regexp.Regexp),
	}
}

// splitLines splits on "\n" and drops a trailing "\r" from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// push appends a finding unless the cap is reached or the key was already reported.
// The range is clamped to the line so every stored finding is valid.
func (s *session) push(line, start, end int, message string, code Code) {
	if len(s.findings) >= s.limit {
		return
	}
	if line < 0 || line >= len(s.lines) {
		return
	}
	width := len(s.lines[line])
	if end > width {
		end = width
	}
	if end < 0 {
		end = 0
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		start = end
	}

	key := findingKey{line: line, start: start, end: end, code: code}
	if _, ok := s.reported[key]; ok {
		return
	}
	s.reported[key] = struct{}{}
	s.findings = append(s.findings, Finding{
		Message:  message,
		Code:     code,
		Severity: code.Severity(),
		Range: Range{
			Start: Position{Line: line, Character: start},
			End:   Position{Line: line, Character: end},
		},
	})
}

// guard runs one rule and contains any panic so the rest of the scan proceeds.
func (s *session) guard(rule func()) {
	defer func() {
		_ = recover()
	}()
	rule()
}

func (s *session) declare(name string) {
	s.declared[name] = struct{}{}
}

func (s *session) isDeclared(name string) bool {
	_, ok := s.declared[name]
	return ok
}

func (s *session) markMissing(name string) {
	if _, ok := s.missingSet[name]; ok {
		return
	}
	s.missingSet[name] = struct{}{}
	s.missing = append(s.missing, name)
}

// usagePattern returns the cached whole-word matcher for a type-less identifier.
func (s *session) usagePattern(name string) *regexp.Regexp {
	if rx, ok := s.usage[name]; ok {
		return rx
	}
	rx := compilePattern(`\b` + regexp.QuoteMeta(name) + `\b`)
	s.usage[name] = rx
	return rx
}
