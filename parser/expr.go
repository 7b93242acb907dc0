// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/internal/grammar"
)

// parseExpr parses an operand of nt and extends it with every operator that
// binds tighter than rbp.
func (st *state) parseExpr(nt grammar.Nonterminal, rbp int) (*Tree, *ast.Error) {
	left, err := st.nud(nt)
	if err != nil {
		return nil, err
	}
	left.isExpr = true
	left.isNud = true

	for {
		cur := st.s.current()
		if cur == nil || rbp >= st.g.InfixBindingPower(nt, cur.Kind) {
			break
		}
		left, err = st.led(nt, left)
		if err != nil {
			return nil, err
		}
	}

	left.isExpr = true
	return left, nil
}

// nud parses the null denotation: a literal, a bracketed form, a prefix
// operator application or the head of a mixfix form.
func (st *state) nud(nt grammar.Nonterminal) (*Tree, *ast.Error) {
	st.nt = nt
	cur := st.s.current()
	if cur == nil {
		return nil, st.unexpectedEOF(nt)
	}

	r := st.g.Nud(nt, cur.Kind)
	if r == nil {
		return nil, st.unexpectedSymbol(nt, cur, st.g.First(nt).Kinds(), st.alternatives(nt))
	}

	tree := newTree(nt)
	tree.Rule = r.ID
	st.rule = r.Text

	switch r.Expr.Kind {
	case grammar.Prefix:
		tree.Transform = r.Transform
		tree.nudMorphemeCount = 2
		t, err := st.expect(r.Expr.Operator)
		if err != nil {
			return nil, err
		}
		tree.addTerminal(t)
		operand, err := st.parseExpr(nt, st.g.PrefixBindingPower(nt, r.Expr.Operator))
		if err != nil {
			return nil, err
		}
		tree.addTree(operand)
		tree.isPrefix = true
		return tree, nil
	case grammar.Mixfix:
		// The head stands for itself until a left denotation extends it.
		tree.Transform = grammar.Substitution{Index: 0}
	default:
		tree.Transform = r.Transform
	}

	tree.nudMorphemeCount = len(r.Expr.Nud)
	if err := st.symbols(nt, r, tree, r.Expr.Nud, 0); err != nil {
		return nil, err
	}
	return tree, nil
}

// led parses the left denotation that extends left with the current
// operator.
func (st *state) led(nt grammar.Nonterminal, left *Tree) (*Tree, *ast.Error) {
	st.nt = nt
	cur := st.s.current()

	r := st.g.Led(nt, cur.Kind)
	if r == nil {
		return nil, st.unexpectedSymbol(nt, cur, st.g.Operators(nt).Kinds(), st.alternatives(nt))
	}

	tree := newTree(nt)
	tree.Rule = r.ID
	tree.Transform = r.Transform
	st.rule = r.Text

	bp := 0
	if r.Expr.Kind == grammar.Infix {
		tree.isExprNud = true
		tree.isInfix = true
		bp = st.g.InfixBindingPower(nt, r.Expr.Operator)
	}

	tree.addTree(left)
	if err := st.symbols(nt, r, tree, r.Expr.Led, bp); err != nil {
		return nil, err
	}
	return tree, nil
}

// symbols consumes syms of rule r into tree. Operands of nt are parsed at
// rbp.
func (st *state) symbols(nt grammar.Nonterminal, r *grammar.Rule, tree *Tree, syms []grammar.Symbol, rbp int) *ast.Error {
	for _, sym := range syms {
		st.nt, st.rule = nt, r.Text
		if sym.IsTerminal {
			t, err := st.expect(sym.Terminal)
			if err != nil {
				return err
			}
			tree.addTerminal(t)
			continue
		}

		var sub *Tree
		var err *ast.Error
		if sym.Nonterminal == nt {
			sub, err = st.parseExpr(nt, rbp)
		} else {
			sub, err = st.parse(sym.Nonterminal)
		}
		if err != nil {
			return err
		}
		tree.addTree(sub)
	}
	return nil
}
