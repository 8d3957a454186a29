package analyzer

import (
	"regexp"
	"strings"
)

// lookbackLimit bounds how many previous lines a multi-line statement check inspects.
const lookbackLimit = 5

var (
	typePrefixRe     = regexp.MustCompile(`(?i)^(?:uint\d*|int\d*|uint|int|address|bool|string|bytes\d*|bytes|mapping\s*\()`)
	typeTokenRe      = regexp.MustCompile(`(?i)^(?:uint\d*|int\d*|uint|int|address|bool|string|bytes\d*|bytes|mapping)$`)
	mappingGroupRe   = regexp.MustCompile(`(?i)\b(mapping\s*\([^)]*\))`)
	mappingOpenRe    = regexp.MustCompile(`(?i)\bmapping\s*\(`)
	arraySuffixRe    = regexp.MustCompile(`\[.*\]$`)
	identifierRe     = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
	identifierOnlyRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	leadingIdentRe   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
)

var modifierKeywords = map[string]struct{}{
	"public":    {},
	"private":   {},
	"internal":  {},
	"external":  {},
	"view":      {},
	"pure":      {},
	"payable":   {},
	"constant":  {},
	"immutable": {},
	"memory":    {},
	"storage":   {},
	"calldata":  {},
}

func isModifier(tok string) bool {
	_, ok := modifierKeywords[strings.ToLower(tok)]
	return ok
}

// stripInlineComments returns the part of line before a "//" or "/*" marker.
func stripInlineComments(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "/*"); i >= 0 {
		line = line[:i]
	}
	return line
}

// lastCodeCharIndex is the index of the last non-blank character before any inline comment.
func lastCodeCharIndex(line string) int {
	code := stripInlineComments(line)
	for k := len(code) - 1; k >= 0; k-- {
		if code[k] != ' ' && code[k] != '\t' {
			return k
		}
	}
	if len(code) == 0 {
		return 0
	}
	return len(code) - 1
}

// compilePattern returns nil when the pattern does not compile.
func compilePattern(pattern string) *regexp.Regexp {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return rx
}

func isCommentOrBlank(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.HasPrefix(t, "//") || strings.HasPrefix(t, "/*")
}

// endsWithTerminator reports whether s ends in ';', '{' or '}'.
func endsWithTerminator(s string) bool {
	return strings.HasSuffix(s, ";") || strings.HasSuffix(s, "{") || strings.HasSuffix(s, "}")
}

// collapseMappings replaces every "mapping(...)" group with the single token "mapping".
func collapseMappings(s string) string {
	return mappingGroupRe.ReplaceAllString(s, "mapping")
}

// lineCursor walks the line array around one position with bounded distance.
type lineCursor struct {
	lines []string
	at    int
}

// nextNonBlank returns the next line after the cursor whose code part is not blank.
func (c lineCursor) nextNonBlank() (string, bool) {
	for k := c.at + 1; k < len(c.lines); k++ {
		next := strings.TrimSpace(stripInlineComments(c.lines[k]))
		if next != "" {
			return next, true
		}
	}
	return "", false
}

// lookback visits up to limit previous code lines, nearest first, skipping blank and
// comment lines. visit returns false to stop the walk.
func (c lineCursor) lookback(limit int, visit func(code string) bool) {
	floor := c.at - limit
	if floor < 0 {
		floor = 0
	}
	for j := c.at - 1; j >= floor; j-- {
		code := strings.TrimSpace(stripInlineComments(c.lines[j]))
		if isCommentOrBlank(code) {
			continue
		}
		if !visit(code) {
			return
		}
	}
}
