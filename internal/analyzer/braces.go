package analyzer

type bracePos struct {
	line, col int
}

// checkBraces validates brace balance over the whole document. Only the first extra
// closing brace is reported, and at most one unclosed brace: the innermost one.
// Braces inside string literals and comments are counted like any other.
func checkBraces(s *session) {
	var stack []bracePos
	extraReported := false

	for i, line := range s.lines {
		for j := 0; j < len(line); j++ {
			switch line[j] {
			case '{':
				stack = append(stack, bracePos{line: i, col: j})
			case '}':
				if len(stack) == 0 {
					if !extraReported {
						s.push(i, j, j+1, "Extra closing brace.", CodeMissingBraces)
						extraReported = true
					}
					continue
				}
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		s.push(top.line, top.col, top.col+1, "Missing closing brace.", CodeMissingBraces)
	}
}
