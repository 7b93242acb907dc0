// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package grammar contains the LL(1) tables of the workflow language: FIRST
// and FOLLOW sets, rule texts and AST transforms, the parse table and the
// binding powers used by the expression sub-parser.
package grammar

import (
	"fmt"
	"strings"
	"sync"

	"github.com/wdltools/wdl/tokens"
)

// RuleID identifies a grammar rule.
type RuleID int

// NoRule is returned by lookups that select no rule.
const NoRule RuleID = -1

// WholeNode is the parameter index that refers to the entire left operand
// of an expression node rather than one of its children.
const WholeNode = '$'

// NonterminalKind describes how the parser expands a nonterminal.
type NonterminalKind int

const (
	// Fixed nonterminals are expanded through the parse table.
	Fixed NonterminalKind = iota

	// List nonterminals repeat an element nonterminal, optionally joined by
	// a separator terminal.
	List

	// Optional nonterminals expand to one rule or to nothing.
	Optional

	// Expression nonterminals are parsed by binding power.
	Expression
)

func (k NonterminalKind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case List:
		return "list"
	case Optional:
		return "optional"
	case Expression:
		return "expression"
	}
	return "unknown"
}

type nonterminal struct {
	name         string
	kind         NonterminalKind
	first        tokens.Set
	follow       tokens.Set
	nullable     bool
	endFollows   bool
	rules        []RuleID
	element      Nonterminal
	separator    tokens.Kind
	hasSeparator bool
}

func (n Nonterminal) String() string {
	if n < 0 || n >= numNonterminals {
		return "unknown"
	}
	return nonterminals[n].name
}

// Symbol is a terminal or nonterminal on the right hand side of a rule.
type Symbol struct {
	Terminal    tokens.Kind
	Nonterminal Nonterminal
	IsTerminal  bool
}

// T returns a terminal symbol.
func T(k tokens.Kind) Symbol {
	return Symbol{Terminal: k, IsTerminal: true}
}

// N returns a nonterminal symbol.
func N(n Nonterminal) Symbol {
	return Symbol{Nonterminal: n}
}

func (s Symbol) String() string {
	if s.IsTerminal {
		return ":" + s.Terminal.String()
	}
	return "$" + s.Nonterminal.String()
}

// Transform describes how a parse tree node reduces to an AST value.
type Transform interface {
	fmt.Stringer
	transform()
}

// Substitution reduces a node to the AST value of one of its children.
type Substitution struct {
	Index int
}

// NodeCreator reduces a node to a named AST node whose attributes are the
// AST values of the listed children.
type NodeCreator struct {
	Name   string
	Params []Param
}

// Param maps an attribute name to a child index.
type Param struct {
	Name  string
	Index int
}

func (Substitution) transform() {}
func (NodeCreator) transform()  {}

func (s Substitution) String() string {
	return fmt.Sprintf("$%d", s.Index)
}

func (n NodeCreator) String() string {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = fmt.Sprintf("%s=$%d", p.Name, p.Index)
	}
	return n.Name + "(" + strings.Join(params, ", ") + ")"
}

// ExprKind classifies the rules of expression nonterminals.
type ExprKind int

const (
	// Atom rules form a complete operand on their own.
	Atom ExprKind = iota

	// Prefix rules apply a unary operator to an operand.
	Prefix

	// Infix rules join a left operand and a right operand.
	Infix

	// Mixfix rules begin with an operand and extend it with a bracketed
	// suffix, e.g., a call argument list.
	Mixfix
)

// ExprRule holds the null and left denotation parts of an expression rule.
type ExprRule struct {
	Kind     ExprKind
	Operator tokens.Kind
	Nud      []Symbol
	Led      []Symbol
}

// Rule is a single production of the grammar.
type Rule struct {
	ID          RuleID
	Nonterminal Nonterminal
	Text        string
	First       tokens.Set
	Nullable    bool
	RHS         []Symbol
	Transform   Transform
	Expr        *ExprRule
}

func (r *Rule) String() string {
	return r.Text
}

// Grammar is the immutable, shareable form of the tables. Use WDL to obtain
// the grammar of the workflow language.
type Grammar struct {
	table [numNonterminals][tokens.NumKinds]RuleID
	nud   [numNonterminals][tokens.NumKinds]RuleID
	led   [numNonterminals][tokens.NumKinds]RuleID
}

var (
	wdlOnce sync.Once
	wdl     *Grammar
)

// WDL returns the grammar of the workflow language. The tables are built on
// first use.
func WDL() *Grammar {
	wdlOnce.Do(func() {
		wdl = build()
	})
	return wdl
}

func build() *Grammar {
	g := &Grammar{}

	for i := range rules {
		if rules[i].ID != RuleID(i) {
			panic(fmt.Sprintf("grammar: rule %d out of order", rules[i].ID))
		}
	}

	for nt := range g.table {
		for t := range g.table[nt] {
			g.table[nt][t] = NoRule
			g.nud[nt][t] = NoRule
			g.led[nt][t] = NoRule
		}
	}

	for nt, row := range parseTable {
		for t, id := range row {
			g.table[nt][t] = id
		}
	}

	for i := range rules {
		r := &rules[i]
		if r.Expr == nil {
			continue
		}
		// The first matching rule wins, as with the parse table.
		if r.Expr.Kind != Infix {
			for _, t := range r.First.Kinds() {
				if g.nud[r.Nonterminal][t] == NoRule {
					g.nud[r.Nonterminal][t] = r.ID
				}
			}
		}
		if r.Expr.Kind == Infix || r.Expr.Kind == Mixfix {
			if g.led[r.Nonterminal][r.Expr.Operator] == NoRule {
				g.led[r.Nonterminal][r.Expr.Operator] = r.ID
			}
		}
	}

	return g
}

// Start returns the nonterminal a document is parsed from.
func (g *Grammar) Start() Nonterminal {
	return Document
}

// ValidTerminal returns true if k is a terminal kind known to the grammar.
func (g *Grammar) ValidTerminal(k tokens.Kind) bool {
	return tokens.Valid(k)
}

// Terminal returns the terminal kind with numeric id.
func (g *Grammar) Terminal(id int) (tokens.Kind, bool) {
	k := tokens.Kind(id)
	return k, tokens.Valid(k)
}

// TerminalByName returns the terminal kind spelled name, e.g., "lbrace".
func (g *Grammar) TerminalByName(name string) (tokens.Kind, bool) {
	return tokens.Lookup(name)
}

// Nonterminal returns the nonterminal with numeric id.
func (g *Grammar) Nonterminal(id int) (Nonterminal, bool) {
	return Nonterminal(id), id >= 0 && id < numNonterminals
}

// NonterminalByName returns the nonterminal spelled name, e.g., "wf_body_element".
func (g *Grammar) NonterminalByName(name string) (Nonterminal, bool) {
	for i := range nonterminals {
		if nonterminals[i].name == name {
			return Nonterminal(i), true
		}
	}
	return 0, false
}

// NumRules returns the number of rules in the grammar.
func (g *Grammar) NumRules() int {
	return len(rules)
}

// Rule returns the rule with id or nil if no such rule exists.
func (g *Grammar) Rule(id RuleID) *Rule {
	if id < 0 || int(id) >= len(rules) {
		return nil
	}
	return &rules[id]
}

// Rules returns the alternatives of nt in declaration order.
func (g *Grammar) Rules(nt Nonterminal) []*Rule {
	ids := nonterminals[nt].rules
	rs := make([]*Rule, len(ids))
	for i, id := range ids {
		rs[i] = &rules[id]
	}
	return rs
}

// RuleTexts returns the human readable alternatives of nt.
func (g *Grammar) RuleTexts(nt Nonterminal) []string {
	ids := nonterminals[nt].rules
	texts := make([]string, len(ids))
	for i, id := range ids {
		texts[i] = rules[id].Text
	}
	return texts
}

// Kind returns how nt is expanded.
func (g *Grammar) Kind(nt Nonterminal) NonterminalKind {
	return nonterminals[nt].kind
}

// Element returns the element and separator of a list nonterminal. The
// separator is only meaningful when ok is true.
func (g *Grammar) Element(nt Nonterminal) (elem Nonterminal, sep tokens.Kind, ok bool) {
	n := nonterminals[nt]
	if n.kind != List {
		panic(fmt.Sprintf("grammar: %v is not a list", nt))
	}
	return n.element, n.separator, n.hasSeparator
}

// First returns the terminals that can start nt.
func (g *Grammar) First(nt Nonterminal) tokens.Set {
	return nonterminals[nt].first
}

// Follow returns the terminals that can immediately follow nt.
func (g *Grammar) Follow(nt Nonterminal) tokens.Set {
	return nonterminals[nt].follow
}

// Nullable returns true if nt can derive the empty string.
func (g *Grammar) Nullable(nt Nonterminal) bool {
	return nonterminals[nt].nullable
}

// CanStartWith returns true if t is in the FIRST set of nt.
func (g *Grammar) CanStartWith(nt Nonterminal, t tokens.Kind) bool {
	return nonterminals[nt].first.Has(t)
}

// CanBeFollowedBy returns true if t is in the FOLLOW set of nt.
func (g *Grammar) CanBeFollowedBy(nt Nonterminal, t tokens.Kind) bool {
	return nonterminals[nt].follow.Has(t)
}

// CanEndInput returns true if nt can be the last symbol of a document.
func (g *Grammar) CanEndInput(nt Nonterminal) bool {
	return nonterminals[nt].endFollows
}

// Lookup returns the rule the parse table selects for nt when t is the
// lookahead, or NoRule.
func (g *Grammar) Lookup(nt Nonterminal, t tokens.Kind) RuleID {
	if !tokens.Valid(t) {
		return NoRule
	}
	return g.table[nt][t]
}

// Nud returns the expression rule that starts an operand of nt with t.
func (g *Grammar) Nud(nt Nonterminal, t tokens.Kind) *Rule {
	if !tokens.Valid(t) {
		return nil
	}
	return g.Rule(g.nud[nt][t])
}

// Led returns the expression rule that extends an operand of nt with t.
func (g *Grammar) Led(nt Nonterminal, t tokens.Kind) *Rule {
	if !tokens.Valid(t) {
		return nil
	}
	return g.Rule(g.led[nt][t])
}

// Operators returns the terminals that can extend an operand of nt.
func (g *Grammar) Operators(nt Nonterminal) tokens.Set {
	var s tokens.Set
	for k, id := range g.led[nt] {
		if id != NoRule {
			s = s.Union(tokens.NewSet(tokens.Kind(k)))
		}
	}
	return s
}

// InfixBindingPower returns the binding power of t as an infix or postfix
// operator of nt, or 0.
func (g *Grammar) InfixBindingPower(nt Nonterminal, t tokens.Kind) int {
	return infixBindingPower[nt][t]
}

// PrefixBindingPower returns the binding power of t as a prefix operator of
// nt, or 0.
func (g *Grammar) PrefixBindingPower(nt Nonterminal, t tokens.Kind) int {
	return prefixBindingPower[nt][t]
}
