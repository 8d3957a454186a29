// Package analyzer implements the heuristic Solidity checks. It works on raw source
// text and never fails: malformed input yields fewer findings, not errors.
package analyzer

// lineRule is one per-line check together with the switch that enables it.
type lineRule struct {
	enabled bool
	check   func(s *session, i int, line string)
}

// Analyze runs every enabled rule over text and returns at most maxFindings findings,
// in discovery order. A nil naming disables the naming rules, a nil parser disables
// the assisted pass.
func Analyze(text string, rules Rules, maxFindings int, naming *NamingConfig, parser TreeParser) []Finding {
	s := newSession(text, maxFindings)
	s.naming = compileNaming(naming)

	if rules.MissingReturn && parser != nil {
		runAssisted(s, parser)
	}
	if rules.MissingBraces {
		s.guard(func() { checkBraces(s) })
	}

	transfers := valueTransferRe.MatchString(text)
	named := s.naming != nil
	pipeline := []lineRule{
		{rules.TxOrigin, checkTxOrigin},
		{rules.Selfdestruct, checkSelfdestruct},
		{rules.Delegatecall, checkDelegatecall},
		{rules.LowLevelCallValue, checkLowLevelCallValue},
		{rules.MissingSemicolon, checkMissingSemicolon},
		{rules.MissingParentheses, checkMissingParentheses},
		{rules.WrongKeywords, checkWrongKeywords},
		{rules.MissingDataType, checkMissingDataType},
		{true, propagateMissingTypes},
		{rules.MissingPayable, func(s *session, i int, line string) {
			checkMissingPayable(s, i, line, transfers)
		}},
		{rules.FunctionNaming && named, checkFunctionNaming},
		{rules.VariableNaming && named, checkVariableNaming},
		{rules.ContractNaming && named, checkContractNaming},
	}

	for i, line := range s.lines {
		for _, rule := range pipeline {
			if !rule.enabled {
				continue
			}
			s.guard(func() { rule.check(s, i, line) })
		}
	}
	return s.findings
}
