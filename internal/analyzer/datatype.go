package analyzer

import (
	"regexp"
	"strings"
)

const msgMissingDataType = "Missing data type declaration for variable."

var (
	functionWordRe     = regexp.MustCompile(`(?i)\bfunction\b`)
	typeKeywordRe      = regexp.MustCompile(`(?i)\b(?:uint\d*|int\d*|uint|int|address|bool|string|bytes\d*|bytes|mapping)\b`)
	tokenTrailerRe     = regexp.MustCompile(`[,;{}()]$`)
	declaratorSplitRe  = regexp.MustCompile(`[,;]+`)
	untypedAssignRe    = regexp.MustCompile(`(^\s*|[;{]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*=`)
	untypedArrayRe     = regexp.MustCompile(`(^\s*|[;{]\s*)(\[\s*\])\s*([A-Za-z_][A-Za-z0-9_]*)\s*(;|=)`)
	tupleAssignRe      = regexp.MustCompile(`\(([^)]*)\)\s*=`)
	bareDeclRe         = regexp.MustCompile(`^\s*(public|private|internal|external)?\s*([A-Za-z_][A-Za-z0-9_]*)\s*;\s*$`)
	anyTypeRe          = regexp.MustCompile(`(?i)(uint\d*|int\d*|uint|int|address|bool|string|bytes\d*|bytes|mapping\s*\(|struct\s+\w+|enum\s+\w+)`)
	anyTypeOrLocRe     = regexp.MustCompile(`(?i)(uint\d*|int\d*|uint|int|address|bool|string|bytes\d*|bytes|mapping\s*\(|struct\s+\w+|enum\s+\w+|calldata|memory|storage)`)
	leadingTypeRe      = regexp.MustCompile(`(?i)^(?:(?:uint\d*|int\d*|uint|int|address|bool|string|bytes\d*|bytes|struct\s+\w+|enum\s+\w+|calldata|memory|storage)\b|mapping\s*\()`)
	signatureRe        = regexp.MustCompile(`\bfunction\b[^{]*\(([^)]*)\)`)
	untypedArrayParam  = regexp.MustCompile(`(?i)^\s*\[\s*\]\s*(?:memory|calldata|storage)?\s*[A-Za-z_][A-Za-z0-9_]*`)
	emptyArrayParamRe  = regexp.MustCompile(`(?i)\[\s*\]\s*(?:memory|calldata|storage)?\s*[A-Za-z_][A-Za-z0-9_]*`)
	trailingUntypedRe  = regexp.MustCompile(`,\s*([A-Za-z_][A-Za-z0-9_]*)\s*$`)
	typedArrayPrefixRe = regexp.MustCompile(`[A-Za-z0-9_\]]`)
)

// checkMissingDataType runs every untyped-declaration heuristic over one line and
// records the identifiers it flags so later usages can be reported too.
func checkMissingDataType(s *session, i int, line string) {
	code := stripInlineComments(line)

	collectDeclared(s, code)
	checkUntypedAssignments(s, i, code)
	checkUntypedArrays(s, i, code)
	checkTupleAssignment(s, i, code)
	checkBareDeclaration(s, i, code)
	checkSignatureParams(s, i, code)
	checkEmptyArrayParams(s, i, code)
}

// collectDeclared remembers identifiers declared with a type so plain assignments to
// them are not mistaken for untyped declarations.
func collectDeclared(s *session, code string) {
	if functionWordRe.MatchString(code) || !typeKeywordRe.MatchString(code) {
		return
	}

	seenType := false
	for _, tok := range strings.Fields(collapseMappings(code)) {
		tok = tokenTrailerRe.ReplaceAllString(tok, "")
		if !seenType {
			seenType = typeTokenRe.MatchString(tok)
			continue
		}
		if isModifier(tok) {
			continue
		}
		for _, part := range declaratorSplitRe.Split(tok, -1) {
			if identifierOnlyRe.MatchString(part) {
				s.declare(part)
			}
		}
	}
}

func checkUntypedAssignments(s *session, i int, code string) {
	for _, m := range untypedAssignRe.FindAllStringSubmatchIndex(code, -1) {
		name := code[m[4]:m[5]]
		if s.isDeclared(name) {
			continue
		}
		start := m[0] + (m[3] - m[2])
		s.push(i, start, start+len(name), msgMissingDataType, CodeMissingDataType)
		s.markMissing(name)
	}
}

// checkUntypedArrays flags "[] name;" declarations at the bracket. The name itself is
// not tracked, to avoid a duplicate report on it.
func checkUntypedArrays(s *session, i int, code string) {
	for _, m := range untypedArrayRe.FindAllStringSubmatchIndex(code, -1) {
		start := m[0] + (m[3] - m[2])
		s.push(i, start, start+(m[5]-m[4]), msgMissingDataType, CodeMissingDataType)
	}
}

func checkTupleAssignment(s *session, i int, code string) {
	m := tupleAssignRe.FindStringSubmatch(code)
	if m == nil {
		return
	}
	content := m[1]
	cursor := strings.Index(code, content)
	for _, part := range strings.Split(content, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" && !leadingTypeRe.MatchString(trimmed) {
			if loc := identifierRe.FindStringIndex(part); loc != nil {
				start := cursor + loc[0]
				s.push(i, start, start+(loc[1]-loc[0]), msgMissingDataType, CodeMissingDataType)
				s.markMissing(part[loc[0]:loc[1]])
			}
		}
		cursor += len(part) + 1
	}
}

// checkBareDeclaration flags "name;" or "public name;" when no type appears on the line.
func checkBareDeclaration(s *session, i int, code string) {
	m := bareDeclRe.FindStringSubmatch(code)
	if m == nil || anyTypeRe.MatchString(code) {
		return
	}
	name := m[2]
	if idx := strings.Index(code, name); idx >= 0 {
		s.push(i, idx, idx+len(name), msgMissingDataType, CodeMissingDataType)
		s.markMissing(name)
	}
}

func checkSignatureParams(s *session, i int, code string) {
	m := signatureRe.FindStringSubmatch(code)
	if m == nil {
		return
	}
	params := m[1]
	base := strings.Index(code, params)

	cursor := base
	for _, raw := range strings.Split(params, ",") {
		param := strings.TrimSpace(raw)
		switch {
		case param == "":
		case untypedArrayParam.MatchString(param):
			leading := len(raw) - len(strings.TrimLeft(raw, " \t"))
			if rel := strings.Index(raw[leading:], "["); rel >= 0 {
				start := cursor + leading + rel
				s.push(i, start, start+2, msgMissingDataType, CodeMissingDataType)
			}
		case !leadingTypeRe.MatchString(param):
			if loc := identifierRe.FindStringIndex(raw); loc != nil {
				start := cursor + loc[0]
				s.push(i, start, start+(loc[1]-loc[0]), msgMissingDataType, CodeMissingDataType)
				s.markMissing(raw[loc[0]:loc[1]])
			}
		}
		cursor += len(raw) + 1
	}

	// a parameter that is a single bare identifier
	offset := 0
	for _, seg := range strings.Split(params, ",") {
		ident := strings.TrimSpace(seg)
		if identifierOnlyRe.MatchString(ident) && !anyTypeOrLocRe.MatchString(ident) {
			start := base + offset + strings.Index(seg, ident)
			s.push(i, start, start+len(ident), msgMissingDataType, CodeMissingDataType)
		}
		offset += len(seg) + 1
	}

	// the last parameter before ')'
	if tail := trailingUntypedRe.FindStringSubmatchIndex(params); tail != nil {
		segment := params[tail[0]:]
		ident := params[tail[2]:tail[3]]
		if !anyTypeOrLocRe.MatchString(segment) {
			start := base + tail[0] + strings.Index(segment, ident)
			s.push(i, start, start+len(ident), msgMissingDataType, CodeMissingDataType)
		}
	}
}

// checkEmptyArrayParams scans the first parenthesized group for "[] name" entries whose
// element type is missing. "string[] name" is left alone.
func checkEmptyArrayParams(s *session, i int, code string) {
	open := strings.Index(code, "(")
	if open < 0 {
		return
	}
	closing := strings.Index(code[open+1:], ")")
	if closing <= 0 {
		return
	}
	inside := code[open+1 : open+1+closing]
	base := open + 1

	for _, loc := range emptyArrayParamRe.FindAllStringIndex(inside, -1) {
		k := loc[0] - 1
		for k >= 0 && (inside[k] == ' ' || inside[k] == '\t') {
			k--
		}
		if k >= 0 && typedArrayPrefixRe.MatchString(inside[k:k+1]) {
			continue
		}
		start := base + loc[0]
		s.push(i, start, start+2, msgMissingDataType, CodeMissingDataType)
	}
}

// propagateMissingTypes reports the first usage on this line of every identifier
// previously flagged as missing its type, in the order they were flagged.
func propagateMissingTypes(s *session, i int, line string) {
	if len(s.missing) == 0 {
		return
	}
	code := stripInlineComments(line)
	for _, name := range s.missing {
		rx := s.usagePattern(name)
		if rx == nil {
			continue
		}
		if loc := rx.FindStringIndex(code); loc != nil {
			s.push(i, loc[0], loc[0]+len(name), msgMissingDataType, CodeMissingDataType)
		}
	}
}
