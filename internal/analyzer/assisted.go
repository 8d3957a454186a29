package analyzer

import "regexp"

// Node is the view of a concrete syntax tree node the assisted pass needs.
type Node interface {
	Type() string
	StartByte() uint32
	EndByte() uint32
	StartPoint() (row, column int)
	NamedChildren() []Node
}

// TreeParser parses a whole document into a concrete syntax tree.
type TreeParser interface {
	Parse(source []byte) (Node, error)
}

var returnsClauseRe = regexp.MustCompile(`(?i)returns\s*\(`)

const msgMissingReturn = "Missing return statement in function with return type."

// runAssisted walks the tree produced by parser and reports functions that declare a
// return type but contain no return statement. Parser failures leave the session untouched.
func runAssisted(s *session, parser TreeParser) {
	if parser == nil {
		return
	}
	source := []byte(s.text)

	var root Node
	s.guard(func() {
		var err error
		if root, err = parser.Parse(source); err != nil {
			root = nil
		}
	})
	if root == nil {
		return
	}

	s.guard(func() {
		walkFunctions(root, func(fn Node) {
			start, end := fn.StartByte(), fn.EndByte()
			if end > uint32(len(source)) || start > end {
				return
			}
			if !returnsClauseRe.Match(source[start:end]) || containsReturn(fn) {
				return
			}
			row, col := fn.StartPoint()
			s.push(row, col, col+1, msgMissingReturn, CodeMissingReturn)
		})
	})
}

func isFunctionNode(n Node) bool {
	switch n.Type() {
	case "function_definition", "function_declaration":
		return true
	}
	return false
}

func walkFunctions(n Node, visit func(Node)) {
	if n == nil {
		return
	}
	if isFunctionNode(n) {
		visit(n)
	}
	for _, child := range n.NamedChildren() {
		walkFunctions(child, visit)
	}
}

func containsReturn(n Node) bool {
	if n == nil {
		return false
	}
	if n.Type() == "return_statement" {
		return true
	}
	for _, child := range n.NamedChildren() {
		if containsReturn(child) {
			return true
		}
	}
	return false
}
