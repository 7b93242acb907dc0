// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package parser builds concrete parse trees from lexed workflow sources and
// reduces them to ASTs.
package parser

import (
	"fmt"
	"strings"

	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/internal/grammar"
	"github.com/wdltools/wdl/lexer"
	"github.com/wdltools/wdl/metrics"
	"github.com/wdltools/wdl/tokens"
)

// Parser parses a terminal sequence into a parse tree. A Parser is
// configured with the With* methods and used once.
type Parser struct {
	tokens    []*ast.Terminal
	grammar   *grammar.Grammar
	formatter ErrorFormatter
	metrics   metrics.Metrics
	start     string
}

// NewParser returns a Parser for the workflow grammar.
func NewParser() *Parser {
	return &Parser{
		grammar:   grammar.WDL(),
		formatter: DefaultFormatter{},
		metrics:   metrics.NoOp(),
	}
}

// WithTokens sets the terminals to parse.
func (p *Parser) WithTokens(ts []*ast.Terminal) *Parser {
	p.tokens = ts
	return p
}

// WithGrammar sets the grammar tables used by the parser.
func (p *Parser) WithGrammar(g *grammar.Grammar) *Parser {
	p.grammar = g
	return p
}

// WithFormatter sets the formatter that renders syntax error messages.
func (p *Parser) WithFormatter(f ErrorFormatter) *Parser {
	p.formatter = f
	return p
}

// WithMetrics sets the metrics provider used to time parsing.
func (p *Parser) WithMetrics(m metrics.Metrics) *Parser {
	p.metrics = m
	return p
}

// WithStart sets the nonterminal parsing starts from, e.g., "e" for a
// standalone expression. The default is the whole document.
func (p *Parser) WithStart(nonterminal string) *Parser {
	p.start = nonterminal
	return p
}

// Parse parses the terminals. The returned error is of type ast.Errors.
func (p *Parser) Parse() (*Tree, error) {
	start := p.grammar.Start()
	if p.start != "" {
		nt, ok := p.grammar.NonterminalByName(p.start)
		if !ok {
			return nil, fmt.Errorf("unknown nonterminal %q", p.start)
		}
		start = nt
	}

	p.metrics.Timer(metrics.WDLParse).Start()
	defer p.metrics.Timer(metrics.WDLParse).Stop()

	st := &state{
		g:         p.grammar,
		s:         &stream{ts: p.tokens},
		formatter: p.formatter,
	}

	tree, err := st.parse(start)
	if err != nil {
		return nil, ast.Errors{err}
	}

	if t := st.s.current(); t != nil {
		msg := p.formatter.ExcessTokens(start.String(), t)
		return nil, ast.Errors{ast.NewError(ast.ExcessTokensErr, t.Location(), "%s", msg)}
	}

	return tree, nil
}

// state holds the progress of a single parse.
type state struct {
	g         *grammar.Grammar
	s         *stream
	formatter ErrorFormatter

	// nt and rule describe what is being parsed for diagnostics.
	nt   grammar.Nonterminal
	rule string
}

func (st *state) parse(nt grammar.Nonterminal) (*Tree, *ast.Error) {
	switch st.g.Kind(nt) {
	case grammar.List:
		return st.parseList(nt)
	case grammar.Optional:
		return st.parseOptional(nt)
	case grammar.Expression:
		return st.parseExpr(nt, 0)
	}
	return st.parseFixed(nt)
}

func (st *state) parseFixed(nt grammar.Nonterminal) (*Tree, *ast.Error) {
	st.nt = nt
	cur := st.s.current()

	id := grammar.NoRule
	if cur != nil {
		id = st.g.Lookup(nt, cur.Kind)
	}

	if id == grammar.NoRule {
		if st.g.Nullable(nt) {
			for _, r := range st.g.Rules(nt) {
				if r.Nullable && len(r.RHS) > 0 {
					return st.expand(nt, r)
				}
			}
			return newTree(nt), nil
		}
		if cur == nil {
			return nil, st.unexpectedEOF(nt)
		}
		return nil, st.unexpectedSymbol(nt, cur, st.g.First(nt).Kinds(), st.alternatives(nt))
	}

	return st.expand(nt, st.g.Rule(id))
}

// parseOptional returns an empty node unless the lookahead can start nt.
func (st *state) parseOptional(nt grammar.Nonterminal) (*Tree, *ast.Error) {
	st.nt = nt
	cur := st.s.current()
	if cur == nil || !st.g.CanStartWith(nt, cur.Kind) {
		return newTree(nt), nil
	}
	r := st.g.Rule(st.g.Lookup(nt, cur.Kind))
	if r == nil || len(r.RHS) == 0 {
		return newTree(nt), nil
	}
	return st.expand(nt, r)
}

// parseList collects elements while the lookahead can start one and returns
// them as a right nested chain of list nodes ending in an empty node.
func (st *state) parseList(nt grammar.Nonterminal) (*Tree, *ast.Error) {
	elem, sep, hasSep := st.g.Element(nt)

	var items []*Tree
	var seps []*ast.Terminal

	for {
		st.nt = nt
		cur := st.s.current()
		if cur == nil || !st.g.CanStartWith(nt, cur.Kind) {
			break
		}
		item, err := st.parse(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		st.nt = nt
		if !hasSep {
			seps = append(seps, nil)
			continue
		}
		cur = st.s.current()
		if cur == nil || cur.Kind != sep {
			seps = append(seps, nil)
			break
		}
		t, err := st.expect(sep)
		if err != nil {
			return nil, err
		}
		seps = append(seps, t)
	}

	tail := st.newList(nt, sep, hasSep)
	for i := len(items) - 1; i >= 0; i-- {
		node := st.newList(nt, sep, hasSep)
		node.addTree(items[i])
		if seps[i] != nil {
			node.addTerminal(seps[i])
		}
		node.addTree(tail)
		tail = node
	}

	return tail, nil
}

func (*state) newList(nt grammar.Nonterminal, sep tokens.Kind, hasSep bool) *Tree {
	t := newTree(nt)
	t.isList = true
	t.separator = sep
	t.hasSeparator = hasSep
	return t
}

// expand applies rule r, consuming its right hand side in order.
func (st *state) expand(nt grammar.Nonterminal, r *grammar.Rule) (*Tree, *ast.Error) {
	tree := newTree(nt)
	tree.Rule = r.ID
	tree.Transform = r.Transform
	st.rule = r.Text

	for _, sym := range r.RHS {
		st.nt, st.rule = nt, r.Text
		if sym.IsTerminal {
			t, err := st.expect(sym.Terminal)
			if err != nil {
				return nil, err
			}
			tree.addTerminal(t)
			continue
		}
		sub, err := st.parse(sym.Nonterminal)
		if err != nil {
			return nil, err
		}
		tree.addTree(sub)
	}

	return tree, nil
}

// expect consumes a terminal of kind k.
func (st *state) expect(k tokens.Kind) (*ast.Terminal, *ast.Error) {
	cur := st.s.current()
	if cur == nil {
		last := st.s.last()
		msg := st.formatter.NoMoreTokens(st.nt.String(), k, last)
		return nil, ast.NewError(ast.NoMoreTokensErr, location(last), "%s", msg)
	}
	if cur.Kind != k {
		return nil, st.unexpectedSymbol(st.nt, cur, []tokens.Kind{k}, st.rule)
	}
	if next := st.s.advance(); next != nil && !st.g.ValidTerminal(next.Kind) {
		msg := st.formatter.InvalidTerminal(st.nt.String(), next)
		return nil, ast.NewError(ast.InvalidTerminalErr, next.Location(), "%s", msg)
	}
	return cur, nil
}

// alternatives describes the rules of nt when the lookahead selects none of
// them, one rule per line.
func (st *state) alternatives(nt grammar.Nonterminal) string {
	return strings.Join(st.g.RuleTexts(nt), "\n")
}

func (st *state) unexpectedEOF(nt grammar.Nonterminal) *ast.Error {
	msg := st.formatter.UnexpectedEOF(nt.String(), st.g.First(nt).Kinds(), st.g.RuleTexts(nt))
	return ast.NewError(ast.UnexpectedEOFErr, location(st.s.last()), "%s", msg)
}

func (st *state) unexpectedSymbol(nt grammar.Nonterminal, actual *ast.Terminal, expected []tokens.Kind, rule string) *ast.Error {
	msg := st.formatter.UnexpectedSymbol(nt.String(), actual, expected, rule)
	return ast.NewError(ast.UnexpectedSymbolErr, actual.Location(), "%s", msg)
}

func location(t *ast.Terminal) *ast.Location {
	if t == nil {
		return nil
	}
	return t.Location()
}

// ParserOptions defines the options for parsing a source.
type ParserOptions struct {
	Metrics   metrics.Metrics
	Formatter ErrorFormatter
}

// ParseDocument lexes, parses and reduces a workflow document.
func ParseDocument(resource, source string) (ast.Value, error) {
	return ParseDocumentWithOpts(resource, source, ParserOptions{})
}

// ParseDocumentWithOpts is like ParseDocument but accepts options.
func ParseDocumentWithOpts(resource, source string, opts ParserOptions) (ast.Value, error) {
	return parseWithOpts(resource, source, "", opts)
}

// ParseExpr lexes, parses and reduces a standalone expression.
func ParseExpr(resource, source string) (ast.Value, error) {
	return ParseExprWithOpts(resource, source, ParserOptions{})
}

// ParseExprWithOpts is like ParseExpr but accepts options.
func ParseExprWithOpts(resource, source string, opts ParserOptions) (ast.Value, error) {
	return parseWithOpts(resource, source, grammar.E.String(), opts)
}

func parseWithOpts(resource, source, start string, opts ParserOptions) (ast.Value, error) {
	m := opts.Metrics
	if m == nil {
		m = metrics.NoOp()
	}

	m.Timer(metrics.WDLLex).Start()
	ts, err := lexer.Lex(source, resource)
	m.Timer(metrics.WDLLex).Stop()
	if err != nil {
		return nil, err
	}
	m.Counter(metrics.WDLTokens).Add(uint64(len(ts)))

	p := NewParser().WithTokens(ts).WithMetrics(m).WithStart(start)
	if opts.Formatter != nil {
		p = p.WithFormatter(opts.Formatter)
	}

	tree, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return Reduce(tree, m), nil
}

// Reduce converts tree to its AST, timing the reduction with m.
func Reduce(tree *Tree, m metrics.Metrics) ast.Value {
	m.Timer(metrics.WDLReduce).Start()
	defer m.Timer(metrics.WDLReduce).Stop()
	return tree.AST()
}
