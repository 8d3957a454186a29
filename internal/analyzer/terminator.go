package analyzer

import (
	"regexp"
	"strings"
)

const (
	msgMissingSemicolonDecl = "Missing semicolon at end of declaration."
	msgMissingSemicolonStmt = "Missing semicolon at end of statement."
)

var (
	// statementRes are single-line statements that need a terminator. The first match wins.
	statementRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*\w+\s*=\s*[^=]`),
		regexp.MustCompile(`(?i)^\s*(require|assert|revert)\s*\(`),
		regexp.MustCompile(`(?i)^\s*(emit|return|break|continue)\b`),
	}

	// starterRes open a statement that may span several lines.
	starterRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*\w+\s*=\s*[^=]`),
		regexp.MustCompile(`(?i)^\s*(require|assert|revert|emit|return)\b`),
		regexp.MustCompile(`(?i)^\s*\([^)]*\)\s*=`),
		regexp.MustCompile(`(?i)^\s*\w+\.\w+\s*\(`),
		regexp.MustCompile(`(?i)^\s*\w+\s*\(`),
	}

	// constructOpeners mark the next line as a new statement, making the current line a tail.
	constructOpeners = []string{"require", "emit", "return", "}", "function", "contract", "modifier", "event", "struct", "enum"}

	singleIdentifierRe = regexp.MustCompile(`^\s*[A-Za-z_][A-Za-z0-9_]*\s*$`)
	declKeywordLineRe  = regexp.MustCompile(`(?i)^\s*(function|modifier|event|struct|enum|contract|interface|library)\b`)
	directiveLineRe    = regexp.MustCompile(`(?i)^\s*(import|pragma|using|constructor)\b`)
)

// checkMissingSemicolon runs the declaration, statement, multi-line tail and dangling
// identifier heuristics for one line.
func checkMissingSemicolon(s *session, i int, line string) {
	trimmed := strings.TrimSpace(line)
	code := strings.TrimSpace(stripInlineComments(line))

	if missingDeclarationTerminator(code) {
		idx := lastCodeCharIndex(line)
		s.push(i, idx, idx+1, msgMissingSemicolonDecl, CodeMissingSemicolon)
	}

	if isCommentOrBlank(trimmed) || endsWithTerminator(code) {
		return
	}

	for _, rx := range statementRes {
		if rx.MatchString(stripInlineComments(line)) {
			idx := lastCodeCharIndex(line)
			s.push(i, idx, idx+1, msgMissingSemicolonStmt, CodeMissingSemicolon)
			break
		}
	}

	if strings.HasSuffix(code, ")") && isStatementTail(lineCursor{lines: s.lines, at: i}) {
		idx := lastCodeCharIndex(line)
		s.push(i, idx, idx+1, msgMissingSemicolonStmt, CodeMissingSemicolon)
	}

	if singleIdentifierRe.MatchString(code) && !declKeywordLineRe.MatchString(trimmed) && !directiveLineRe.MatchString(trimmed) {
		idx := lastCodeCharIndex(line)
		s.push(i, idx, idx+1, msgMissingSemicolonStmt, CodeMissingSemicolon)
	}
}

// missingDeclarationTerminator reports whether a comment-free, trimmed line is a typed
// declaration that names something but lacks its terminator.
func missingDeclarationTerminator(code string) bool {
	if !typePrefixRe.MatchString(code) {
		return false
	}
	if strings.Contains(code, " function ") || strings.HasPrefix(code, "function ") || endsWithTerminator(code) {
		return false
	}
	// parameter lists are not declarations, mappings are
	if strings.Contains(code, "(") && !mappingOpenRe.MatchString(code) {
		return false
	}

	tokens := strings.Fields(collapseMappings(code))
	for t := 1; t < len(tokens); t++ {
		tok := tokens[t]
		if isModifier(tok) || typePrefixRe.MatchString(tok) || arraySuffixRe.MatchString(tok) {
			continue
		}
		if identifierRe.MatchString(tok) {
			return true
		}
	}
	return false
}

// isStatementTail decides whether the line at the cursor closes a multi-line statement
// that was opened by a starter within the lookback window.
func isStatementTail(cur lineCursor) bool {
	if next, ok := cur.nextNonBlank(); ok && !startsConstruct(next) {
		return false
	}

	found := false
	cur.lookback(lookbackLimit, func(prev string) bool {
		if endsWithTerminator(prev) {
			return false
		}
		for _, rx := range starterRes {
			if rx.MatchString(prev) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

func startsConstruct(line string) bool {
	for _, opener := range constructOpeners {
		if strings.HasPrefix(line, opener) {
			return true
		}
	}
	return false
}
