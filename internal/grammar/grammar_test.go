// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wdltools/wdl/tokens"
)

func TestRulesConsistent(t *testing.T) {
	g := WDL()

	if g.NumRules() != 106 {
		t.Fatalf("expected 106 rules but got %d", g.NumRules())
	}

	for nt := Nonterminal(0); nt < numNonterminals; nt++ {
		for _, r := range g.Rules(nt) {
			if r.Nonterminal != nt {
				t.Errorf("rule %d listed under %v belongs to %v", r.ID, nt, r.Nonterminal)
			}
			if g.Kind(nt) == Expression && r.Expr == nil {
				t.Errorf("rule %d of expression %v has no expression parts", r.ID, nt)
			}
		}
	}
}

func TestParseTableConsistent(t *testing.T) {
	g := WDL()

	for nt := Nonterminal(0); nt < numNonterminals; nt++ {
		for k := tokens.Kind(0); k < tokens.NumKinds; k++ {
			id := g.Lookup(nt, k)
			if id == NoRule {
				continue
			}
			r := g.Rule(id)
			if r.Nonterminal != nt {
				t.Errorf("table entry (%v, %v) selects rule %d of %v", nt, k, id, r.Nonterminal)
			}
			if !r.First.Has(k) && !r.Nullable {
				t.Errorf("table entry (%v, %v) selects rule %d that cannot start with it", nt, k, id)
			}
			if !g.CanStartWith(nt, k) && !g.CanBeFollowedBy(nt, k) {
				t.Errorf("table entry (%v, %v) is in neither FIRST nor FOLLOW", nt, k)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	g := WDL()

	tests := []struct {
		note string
		nt   Nonterminal
		k    tokens.Kind
		exp  RuleID
	}{
		{note: "task", nt: Task, k: tokens.Task, exp: 12},
		{note: "section runtime", nt: Sections, k: tokens.Runtime, exp: 15},
		{note: "body call", nt: WfBodyElement, k: tokens.Call, exp: 45},
		{note: "empty optional", nt: Gen10, k: tokens.Rbrace, exp: 37},
		{note: "no entry", nt: Task, k: tokens.Workflow, exp: NoRule},
		{note: "invalid terminal", nt: Task, k: tokens.NumKinds, exp: NoRule},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			if got := g.Lookup(tc.nt, tc.k); got != tc.exp {
				t.Fatalf("expected rule %d but got %d", tc.exp, got)
			}
		})
	}
}

func TestNudLed(t *testing.T) {
	g := WDL()

	tests := []struct {
		note string
		got  *Rule
		exp  RuleID
	}{
		{note: "identifier prefers call form", got: g.Nud(E, tokens.Identifier), exp: 92},
		{note: "not", got: g.Nud(E, tokens.Not), exp: 88},
		{note: "dash prefix", got: g.Nud(E, tokens.Dash), exp: 90},
		{note: "array literal", got: g.Nud(E, tokens.Lsquare), exp: 97},
		{note: "parens", got: g.Nud(E, tokens.Lparen), exp: 100},
		{note: "type", got: g.Nud(TypeE, tokens.Type), exp: 73},
		{note: "dash infix", got: g.Led(E, tokens.Dash), exp: 84},
		{note: "call", got: g.Led(E, tokens.Lparen), exp: 92},
		{note: "lookup", got: g.Led(E, tokens.Lsquare), exp: 93},
		{note: "member", got: g.Led(E, tokens.Dot), exp: 94},
		{note: "parameterized type", got: g.Led(TypeE, tokens.Lsquare), exp: 73},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			if tc.got == nil {
				t.Fatalf("expected rule %d but got none", tc.exp)
			}
			if tc.got.ID != tc.exp {
				t.Fatalf("expected rule %d but got %d (%v)", tc.exp, tc.got.ID, tc.got)
			}
		})
	}

	if r := g.Nud(E, tokens.Asterisk); r != nil {
		t.Fatalf("expected no rule to start with asterisk but got %v", r)
	}
	if r := g.Led(E, tokens.Comma); r != nil {
		t.Fatalf("expected no rule to extend with comma but got %v", r)
	}
}

func TestOperators(t *testing.T) {
	ops := WDL().Operators(E)
	for _, k := range []tokens.Kind{tokens.Plus, tokens.DoublePipe, tokens.Lparen, tokens.Lsquare, tokens.Dot} {
		if !ops.Has(k) {
			t.Errorf("expected %v to extend an operand", k)
		}
	}
	for _, k := range []tokens.Kind{tokens.Not, tokens.Integer, tokens.Rparen} {
		if ops.Has(k) {
			t.Errorf("expected %v not to extend an operand", k)
		}
	}
}

func TestBindingPowers(t *testing.T) {
	g := WDL()

	order := []tokens.Kind{
		tokens.DoublePipe,
		tokens.DoubleAmpersand,
		tokens.DoubleEqual,
		tokens.Lt,
		tokens.Plus,
		tokens.Asterisk,
		tokens.Lparen,
		tokens.Lsquare,
		tokens.Dot,
	}
	for i := 1; i < len(order); i++ {
		if g.InfixBindingPower(E, order[i-1]) >= g.InfixBindingPower(E, order[i]) {
			t.Errorf("expected %v to bind looser than %v", order[i-1], order[i])
		}
	}

	if p := g.PrefixBindingPower(E, tokens.Not); p <= g.InfixBindingPower(E, tokens.Asterisk) || p >= g.InfixBindingPower(E, tokens.Lparen) {
		t.Errorf("expected prefix operators between multiplication and calls, got %d", p)
	}
	if g.InfixBindingPower(E, tokens.Comma) != 0 {
		t.Errorf("expected comma not to be an operator")
	}
	if g.InfixBindingPower(TypeE, tokens.Lsquare) != 1000 {
		t.Errorf("expected type parameter binding power 1000")
	}
	if g.PrefixBindingPower(TypeE, tokens.Dash) != 0 {
		t.Errorf("expected no prefix operators for types")
	}
}

func TestElement(t *testing.T) {
	g := WDL()

	elem, sep, ok := g.Element(Gen19)
	if elem != E || sep != tokens.Comma || !ok {
		t.Fatalf("expected comma separated expressions but got %v %v %v", elem, sep, ok)
	}

	elem, _, ok = g.Element(Gen11)
	if elem != WfBodyElement || ok {
		t.Fatalf("expected unseparated body elements but got %v %v", elem, ok)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-list nonterminal")
		}
	}()
	g.Element(Task)
}

func TestNames(t *testing.T) {
	g := WDL()

	nt, ok := g.NonterminalByName("wf_body_element")
	if !ok || nt != WfBodyElement || nt.String() != "wf_body_element" {
		t.Fatalf("unexpected nonterminal %v %v", nt, ok)
	}
	if _, ok := g.NonterminalByName("nope"); ok {
		t.Fatal("expected unknown nonterminal")
	}

	k, ok := g.TerminalByName("lbrace")
	if !ok || k != tokens.Lbrace {
		t.Fatalf("unexpected terminal %v %v", k, ok)
	}
	if _, ok := g.Terminal(int(tokens.NumKinds)); ok {
		t.Fatal("expected terminal id out of range")
	}
	if g.ValidTerminal(-1) {
		t.Fatal("expected negative terminal to be invalid")
	}

	exp := []string{
		"$wf_output = :fqn $_gen17 -> WorkflowOutput( fqn=$0, wildcard=$1 )",
	}
	if diff := cmp.Diff(exp, g.RuleTexts(WfOutput)); diff != "" {
		t.Fatalf("unexpected rule texts (-want, +got):\n%s", diff)
	}
}

func TestStartNullable(t *testing.T) {
	g := WDL()
	if g.Start() != Document || !g.Nullable(Document) || !g.CanEndInput(Document) {
		t.Fatal("expected nullable document start symbol")
	}
	if g.Nullable(Task) {
		t.Fatal("expected task not to be nullable")
	}
	if !g.Follow(Gen10).Has(tokens.Rbrace) {
		t.Fatal("expected rbrace to follow a declaration setter")
	}
	if !g.First(E).Has(tokens.Not) {
		t.Fatal("expected not to start an expression")
	}
}

func TestTransformString(t *testing.T) {
	g := WDL()
	if got := g.Rule(100).Transform.String(); got != "$1" {
		t.Fatalf("unexpected substitution %q", got)
	}
	if got := g.Rule(2).Transform.String(); got != "Namespace(imports=$0, body=$1)" {
		t.Fatalf("unexpected node creator %q", got)
	}
	if got := N(Task).String() + " " + T(tokens.Lbrace).String(); got != "$task :lbrace" {
		t.Fatalf("unexpected symbols %q", got)
	}
}
