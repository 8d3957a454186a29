// Package assist adapts tree-sitter grammars to the analyzer's TreeParser capability.
package assist

import (
	"context"
	"fmt"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/scan-io-git/solint/internal/analyzer"
)

// DefaultLanguage is the grammar name the CLI asks for when assisted parsing is on.
const DefaultLanguage = "solidity"

var (
	registryMu sync.RWMutex
	registry   = map[string]*Parser{}
)

// Register makes a grammar available under name. Registering a name twice replaces it.
func Register(name string, lang *sitter.Language) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = NewParser(lang)
}

// Lookup returns the parser registered under name.
func Lookup(name string) (*Parser, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// Languages lists the registered grammar names in sorted order.
func Languages() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parser parses documents with one grammar. It is safe for concurrent use: every
// goroutine borrows its own tree-sitter parser from a pool.
type Parser struct {
	lang *sitter.Language
	pool sync.Pool
}

// NewParser builds a Parser for lang.
func NewParser(lang *sitter.Language) *Parser {
	p := &Parser{lang: lang}
	p.pool.New = func() interface{} {
		parser := sitter.NewParser()
		parser.SetLanguage(lang)
		return parser
	}
	return p
}

// Parse implements analyzer.TreeParser.
func (p *Parser) Parse(source []byte) (analyzer.Node, error) {
	if p == nil || p.lang == nil {
		return nil, fmt.Errorf("no grammar configured")
	}
	parser := p.pool.Get().(*sitter.Parser)
	defer func() {
		parser.Reset()
		p.pool.Put(parser)
	}()

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parser returned an empty tree")
	}
	return node{n: root}, nil
}

// node exposes a tree-sitter node through analyzer.Node.
type node struct {
	n *sitter.Node
}

func (w node) Type() string      { return w.n.Type() }
func (w node) StartByte() uint32 { return w.n.StartByte() }
func (w node) EndByte() uint32   { return w.n.EndByte() }

func (w node) StartPoint() (row, column int) {
	p := w.n.StartPoint()
	return int(p.Row), int(p.Column)
}

func (w node) NamedChildren() []analyzer.Node {
	count := int(w.n.NamedChildCount())
	children := make([]analyzer.Node, 0, count)
	for i := 0; i < count; i++ {
		if child := w.n.NamedChild(i); child != nil {
			children = append(children, node{n: child})
		}
	}
	return children
}
