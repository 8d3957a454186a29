package analyzer

import "regexp"

var (
	txOriginRe      = regexp.MustCompile(`(?i)tx\.origin`)
	selfdestructRe  = regexp.MustCompile(`(?i)(selfdestruct|suicide)\s*\(`)
	delegatecallRe  = regexp.MustCompile(`(?i)\.delegatecall\s*\(`)
	callValueRe     = regexp.MustCompile(`(?i)\.call\s*\{\s*value\s*:\s*`)
	legacyCallValRe = regexp.MustCompile(`(?i)\.call\.value\s*\(`)
)

const (
	msgTxOrigin     = "Avoid using tx.origin for authorization. Use msg.sender instead."
	msgSelfdestruct = "selfdestruct can permanently remove contract code. Ensure this is intended and access controlled."
	msgDelegatecall = "delegatecall can lead to unexpected context changes. Validate target and data."
	msgCallValue    = "Low-level call with value can introduce reentrancy. Use Checks-Effects-Interactions and consider .transfer/.send limitations."
)

func checkTxOrigin(s *session, i int, line string) {
	if loc := txOriginRe.FindStringIndex(line); loc != nil {
		s.push(i, loc[0], loc[1], msgTxOrigin, CodeTxOrigin)
	}
}

func checkSelfdestruct(s *session, i int, line string) {
	if m := selfdestructRe.FindStringSubmatchIndex(line); m != nil {
		s.push(i, m[0], m[0]+(m[3]-m[2]), msgSelfdestruct, CodeSelfdestruct)
	}
}

// checkDelegatecall highlights the method name, skipping the leading dot.
func checkDelegatecall(s *session, i int, line string) {
	if loc := delegatecallRe.FindStringIndex(line); loc != nil {
		start := loc[0] + 1
		s.push(i, start, start+len("delegatecall"), msgDelegatecall, CodeDelegatecall)
	}
}

func checkLowLevelCallValue(s *session, i int, line string) {
	width := len("call{value:")
	loc := callValueRe.FindStringIndex(line)
	if loc == nil {
		loc = legacyCallValRe.FindStringIndex(line)
		width = len("call.value")
	}
	if loc == nil {
		return
	}
	start := loc[0] + 1
	s.push(i, start, start+width, msgCallValue, CodeLowLevelCallValue)
}
