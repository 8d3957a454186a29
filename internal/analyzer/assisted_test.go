package analyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNode struct {
	kind     string
	start    uint32
	end      uint32
	row, col int
	children []Node
}

func (n *fakeNode) Type() string                  { return n.kind }
func (n *fakeNode) StartByte() uint32             { return n.start }
func (n *fakeNode) EndByte() uint32               { return n.end }
func (n *fakeNode) StartPoint() (row, column int) { return n.row, n.col }
func (n *fakeNode) NamedChildren() []Node         { return n.children }

type fakeParser struct {
	root  Node
	err   error
	panic bool
}

func (p fakeParser) Parse([]byte) (Node, error) {
	if p.panic {
		panic("grammar exploded")
	}
	return p.root, p.err
}

const assistedSource = `contract A {
  function a() public returns (uint) {
  }
  function b() public returns (uint) {
    return 1;
  }
}`

// functionNode builds a node spanning the function starting at the given line.
func functionNode(t *testing.T, row int, children ...Node) *fakeNode {
	t.Helper()
	lines := strings.Split(assistedSource, "\n")
	start := 0
	for _, l := range lines[:row] {
		start += len(l) + 1
	}
	col := strings.Index(lines[row], "function")
	end := start + len(lines[row])
	return &fakeNode{
		kind:     "function_definition",
		start:    uint32(start + col),
		end:      uint32(end),
		row:      row,
		col:      col,
		children: children,
	}
}

func TestRunAssisted(t *testing.T) {
	root := &fakeNode{
		kind: "source_file",
		end:  uint32(len(assistedSource)),
		children: []Node{
			&fakeNode{kind: "contract_declaration", end: uint32(len(assistedSource)), children: []Node{
				functionNode(t, 1),
				functionNode(t, 3, &fakeNode{kind: "function_body", children: []Node{
					&fakeNode{kind: "return_statement"},
				}}),
			}},
		},
	}

	tests := []struct {
		name   string
		rules  Rules
		parser TreeParser
		want   []span
	}{
		{
			name:   "function without return",
			rules:  only(CodeMissingReturn),
			parser: fakeParser{root: root},
			want:   []span{{1, 2, 3}},
		},
		{
			name:   "rule disabled",
			rules:  Rules{},
			parser: fakeParser{root: root},
			want:   []span{},
		},
		{
			name:   "no parser",
			rules:  only(CodeMissingReturn),
			parser: nil,
			want:   []span{},
		},
		{
			name:   "parse error",
			rules:  only(CodeMissingReturn),
			parser: fakeParser{err: errors.New("unsupported")},
			want:   []span{},
		},
		{
			name:   "parser panic",
			rules:  only(CodeMissingReturn),
			parser: fakeParser{panic: true},
			want:   []span{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Analyze(assistedSource, tt.rules, 100, nil, tt.parser)
			assert.Equal(t, tt.want, spansOf(findings, CodeMissingReturn))
		})
	}
}

func TestAssistedFailureKeepsHeuristics(t *testing.T) {
	rules := only(CodeMissingReturn, CodeTxOrigin)
	findings := Analyze("require(tx.origin == owner);", rules, 100, nil, fakeParser{panic: true})
	assert.Equal(t, []span{{0, 8, 17}}, spansOf(findings, CodeTxOrigin))
}

func TestAssistedRunsBeforeHeuristics(t *testing.T) {
	root := &fakeNode{kind: "source_file", end: uint32(len(assistedSource)), children: []Node{functionNode(t, 1)}}
	findings := Analyze(assistedSource+"\n{", only(CodeMissingReturn, CodeMissingBraces), 1, nil, fakeParser{root: root})
	if assert.Len(t, findings, 1) {
		assert.Equal(t, CodeMissingReturn, findings[0].Code)
	}
}
