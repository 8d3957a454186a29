package analyzer

// span is the comparable part of a finding.
type span struct {
	Line, Start, End int
}

func only(codes ...Code) Rules {
	var r Rules
	for _, c := range codes {
		r.Set(c, true)
	}
	return r
}

func spansOf(findings []Finding, code Code) []span {
	out := []span{}
	for _, f := range findings {
		if f.Code == code {
			out = append(out, span{Line: f.Range.Start.Line, Start: f.Range.Start.Character, End: f.Range.End.Character})
		}
	}
	return out
}

func messagesOf(findings []Finding, code Code) []string {
	out := []string{}
	for _, f := range findings {
		if f.Code == code {
			out = append(out, f.Message)
		}
	}
	return out
}

// runRule analyzes text with a single rule enabled and default naming.
func runRule(code Code, text string) []Finding {
	naming := DefaultNaming()
	return Analyze(text, only(code), 1000, &naming, nil)
}
