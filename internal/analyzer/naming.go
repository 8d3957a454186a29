package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	functionNameRe   = regexp.MustCompile(`\bfunction\b([^(]*)\(`)
	contractNameRe   = regexp.MustCompile(`\b(contract|interface|library)\b([^{]*)\{`)
	declStartRe      = regexp.MustCompile(`(?i)^(?:uint\d*|int\d*|uint|int|address|bool|string|bytes\d*|bytes|mapping\s*\(|struct\s+\w+|enum\s+\w+)`)
	functionLineRe   = regexp.MustCompile(`(?i)^\s*function\b`)
	nonVariableRe    = regexp.MustCompile(`(?i)^\s*(contract|interface|library|event|modifier|enum|struct)\b`)
	declTrailerRe    = regexp.MustCompile(`[;={].*$`)
	nextIdentifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*;?$`)
	constantRe       = regexp.MustCompile(`(?i)\b(constant|immutable)\b`)
)

// compiledNaming holds the naming patterns of one call. A nil field disables the
// pattern check of that category.
type compiledNaming struct {
	function *regexp.Regexp
	variable *regexp.Regexp
	constant *regexp.Regexp
	contract *regexp.Regexp
}

func compileNaming(cfg *NamingConfig) *compiledNaming {
	if cfg == nil {
		return nil
	}
	compile := func(pattern string) *regexp.Regexp {
		if pattern == "" {
			return nil
		}
		return compilePattern(pattern)
	}
	return &compiledNaming{
		function: compile(cfg.FunctionPattern),
		variable: compile(cfg.VariablePattern),
		constant: compile(cfg.ConstantPattern),
		contract: compile(cfg.ContractPattern),
	}
}

// identifierSegment describes the text between a declaration keyword and its delimiter.
type identifierSegment struct {
	text  string
	start int
}

// checkSegmentIdentifier applies the shared identifier shape checks to seg. Any text
// left between the name and the delimiter makes the identifier invalid, inheritance
// lists included.
func checkSegmentIdentifier(s *session, i int, seg identifierSegment, pattern *regexp.Regexp, kind string, code Code) {
	lead := len(seg.text) - len(strings.TrimLeft(seg.text, " \t"))
	first := seg.start + lead
	if lead >= len(seg.text) || !isIdentStart(seg.text[lead]) {
		s.push(i, first, first+1, fmt.Sprintf("Invalid %s identifier.", kind), code)
		return
	}

	name := leadingIdentRe.FindString(seg.text[lead:])
	rest := seg.text[lead+len(name):]
	if strings.TrimSpace(rest) != "" {
		s.push(i, first, first+len(name), fmt.Sprintf("Invalid %s identifier.", kind), code)
		return
	}
	if pattern != nil && !pattern.MatchString(name) {
		s.push(i, first, first+len(name), fmt.Sprintf("Invalid %s identifier '%s'.", kind, name), code)
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func checkFunctionNaming(s *session, i int, line string) {
	code := stripInlineComments(line)
	m := functionNameRe.FindStringSubmatchIndex(code)
	if m == nil {
		return
	}
	seg := identifierSegment{text: code[m[2]:m[3]], start: m[2]}
	checkSegmentIdentifier(s, i, seg, s.naming.function, "function", CodeFunctionNaming)
}

func checkContractNaming(s *session, i int, line string) {
	code := stripInlineComments(line)
	m := contractNameRe.FindStringSubmatchIndex(code)
	if m == nil {
		return
	}
	seg := identifierSegment{text: code[m[4]:m[5]], start: m[4]}
	checkSegmentIdentifier(s, i, seg, s.naming.contract, "contract/interface/library", CodeContractNaming)
}

// checkVariableNaming validates the first declarator of a typed declaration. A second
// bare word right after the name means the name contains a space.
func checkVariableNaming(s *session, i int, line string) {
	code := stripInlineComments(line)
	decl := strings.TrimSpace(code)
	if !declStartRe.MatchString(decl) || functionLineRe.MatchString(decl) || nonVariableRe.MatchString(decl) {
		return
	}

	tokens := strings.Fields(collapseMappings(decl))
	name, at := "", -1
	for t := 1; t < len(tokens); t++ {
		tok := tokens[t]
		if isModifier(tok) || arraySuffixRe.MatchString(tok) {
			continue
		}
		if base := strings.TrimSpace(declTrailerRe.ReplaceAllString(tok, "")); base != "" {
			name, at = base, t
			break
		}
	}
	if name == "" {
		return
	}
	start := strings.Index(code, tokens[at])
	if start < 0 {
		return
	}

	if at+1 < len(tokens) {
		next := tokens[at+1]
		if !arraySuffixRe.MatchString(next) && !isModifier(next) && nextIdentifierRe.MatchString(next) {
			s.push(i, start, start+len(name), "Invalid variable identifier.", CodeVariableNaming)
			return
		}
	}

	pattern := s.naming.variable
	if constantRe.MatchString(decl) {
		pattern = s.naming.constant
	}
	if pattern != nil && !pattern.MatchString(name) {
		s.push(i, start, start+len(name), fmt.Sprintf("Invalid variable identifier '%s'.", name), CodeVariableNaming)
	}
}
