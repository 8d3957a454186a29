package analyzer

import (
	"regexp"
	"strings"
)

var (
	bareCallRe = regexp.MustCompile(`^\s*\w+\s*[^(\s{;}]$`)

	wrongKeywords = []struct {
		re      *regexp.Regexp
		message string
	}{
		{regexp.MustCompile(`(?i)\b(var\s+)`), "Use specific data type instead of 'var'"},
		{regexp.MustCompile(`(?i)\b(suicide\s*\()`), "'suicide' is deprecated, use 'selfdestruct'"},
	}

	functionHeaderRe = regexp.MustCompile(`(?i)\bfunction\s+\w+\s*\([^)]*\)\s*(public|private|internal|external)?\s*(pure|view)?\s*`)
	payableRe        = regexp.MustCompile(`(?i)\bpayable\b`)
	valueTransferRe  = regexp.MustCompile(`(?i)\.transfer\(|\.send\(|\.call\{.*value`)
)

const msgMissingPayable = "Function that handles ETH should have 'payable' modifier."

// checkMissingParentheses flags a lone word followed by one stray character, which
// usually is a call whose parentheses were never typed.
func checkMissingParentheses(s *session, i int, line string) {
	if !bareCallRe.MatchString(line) {
		return
	}
	trimmed := strings.TrimSpace(line)
	for _, suffix := range []string{";", ",", "{", "}"} {
		if strings.HasSuffix(trimmed, suffix) {
			return
		}
	}
	if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
		return
	}
	// assignments and mapping literals
	if strings.ContainsAny(line, "=:") {
		return
	}
	idx := len(line) - 1
	s.push(i, idx, idx+1, "Missing parentheses for function call.", CodeMissingParentheses)
}

func checkWrongKeywords(s *session, i int, line string) {
	for _, kw := range wrongKeywords {
		m := kw.re.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		s.push(i, m[0], m[0]+(m[3]-m[2]), kw.message, CodeWrongKeyword)
	}
}

// checkMissingPayable flags function headers without payable when the document as a
// whole moves ether. transfers is computed once per document.
func checkMissingPayable(s *session, i int, line string, transfers bool) {
	if !transfers || payableRe.MatchString(line) {
		return
	}
	if loc := functionHeaderRe.FindStringIndex(line); loc != nil {
		s.push(i, loc[0], loc[1], msgMissingPayable, CodeMissingPayable)
	}
}
