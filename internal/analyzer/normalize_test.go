package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripInlineComments(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"a /* b // c */", "a "},
		{"a // b /* c", "a "},
		{"uint x; // note", "uint x; "},
		{"/* whole line */", ""},
		{"no comment", "no comment"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, stripInlineComments(tt.line))
		})
	}
}

func TestLastCodeCharIndex(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"trailing tabs before comment", "x = 1\t\t// c", 4},
		{"block comment before line comment", "x = 1 /* a // b */", 4},
		{"whitespace only", "   ", 2},
		{"empty", "", 0},
		{"comment only", "// c", 0},
		{"plain", "uint public number", 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lastCodeCharIndex(tt.line))
		})
	}
}

func TestCompilePattern(t *testing.T) {
	assert.Nil(t, compilePattern("("))
	rx := compilePattern(`^[a-z]+$`)
	if assert.NotNil(t, rx) {
		assert.True(t, rx.MatchString("abc"))
	}
}

func TestLineCursorNextNonBlank(t *testing.T) {
	lines := []string{"uint x", "// note", "", "  /* block */", "  y = 1;", "last"}

	next, ok := lineCursor{lines: lines, at: 0}.nextNonBlank()
	assert.True(t, ok)
	assert.Equal(t, "y = 1;", next)

	_, ok = lineCursor{lines: lines, at: len(lines) - 1}.nextNonBlank()
	assert.False(t, ok)
}

func TestLineCursorLookback(t *testing.T) {
	lines := []string{"a", "b", "// skipped", "", "c", "d", "e", "here"}

	var seen []string
	lineCursor{lines: lines, at: 7}.lookback(lookbackLimit, func(code string) bool {
		seen = append(seen, code)
		return true
	})
	assert.Equal(t, []string{"e", "d", "c"}, seen)

	seen = nil
	lineCursor{lines: lines, at: 7}.lookback(lookbackLimit, func(code string) bool {
		seen = append(seen, code)
		return code != "d"
	})
	assert.Equal(t, []string{"e", "d"}, seen)
}

func TestLineHelpers(t *testing.T) {
	assert.True(t, isCommentOrBlank("   "))
	assert.True(t, isCommentOrBlank("  // c"))
	assert.True(t, isCommentOrBlank("/* c */"))
	assert.False(t, isCommentOrBlank("x = 1;"))

	assert.True(t, endsWithTerminator("x;"))
	assert.True(t, endsWithTerminator("contract A {"))
	assert.True(t, endsWithTerminator("}"))
	assert.False(t, endsWithTerminator("x = 1"))

	assert.Equal(t, "mapping balances;", collapseMappings("mapping(address => uint) balances;"))
}
