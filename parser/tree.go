// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"strings"

	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/internal/grammar"
	"github.com/wdltools/wdl/tokens"
)

// Child is either a terminal or a subtree of a parse tree node. Exactly one of
// the fields is set.
type Child struct {
	Terminal *ast.Terminal
	Tree     *Tree
}

func (c Child) String() string {
	if c.Terminal != nil {
		return c.Terminal.String()
	}
	return c.Tree.String()
}

// Tree is a concrete parse tree node. Trees are built by the parser and
// reduced with AST; they are not meant to be constructed by hand.
type Tree struct {
	Nonterminal grammar.Nonterminal
	Children    []Child
	Transform   grammar.Transform
	Rule        grammar.RuleID

	isList    bool
	isExpr    bool
	isNud     bool
	isPrefix  bool
	isInfix   bool
	isExprNud bool

	// nudMorphemeCount is the number of children produced by the null
	// denotation before any left denotation extended the node.
	nudMorphemeCount int

	separator    tokens.Kind
	hasSeparator bool
}

func newTree(nt grammar.Nonterminal) *Tree {
	return &Tree{Nonterminal: nt, Rule: grammar.NoRule}
}

func (t *Tree) addTerminal(term *ast.Terminal) {
	t.Children = append(t.Children, Child{Terminal: term})
}

func (t *Tree) addTree(sub *Tree) {
	t.Children = append(t.Children, Child{Tree: sub})
}

// IsList returns true if the node was produced by a repetition.
func (t *Tree) IsList() bool {
	return t.isList
}

// IsExpr returns true if the node was produced by the expression parser.
func (t *Tree) IsExpr() bool {
	return t.isExpr
}

// isCompoundNud returns true if the first child is an operand whose null
// denotation was extended by a left denotation that is not an infix
// operator, e.g., the callee of a function call.
func (t *Tree) isCompoundNud() bool {
	if len(t.Children) == 0 || t.Children[0].Tree == nil {
		return false
	}
	first := t.Children[0].Tree
	return first.isNud && !first.isPrefix && !t.isExprNud && !t.isInfix
}

// String returns the single line form of the tree, e.g.,
// (e: <:1:1 integer "1">, <:1:2 plus "+">, (e: <:1:3 integer "2">)).
func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb, 0, 0)
	return sb.String()
}

// Pretty returns the tree indented by two spaces per level.
func (t *Tree) Pretty() string {
	var sb strings.Builder
	t.write(&sb, 2, 0)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder, indent, level int) {
	pad := strings.Repeat(" ", indent*level)
	sb.WriteString(pad)
	fmt.Fprintf(sb, "(%v:", t.Nonterminal)
	if len(t.Children) == 0 {
		sb.WriteString(" )")
		return
	}
	if indent == 0 {
		for i, c := range t.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte(' ')
			if c.Terminal != nil {
				sb.WriteString(c.Terminal.String())
			} else {
				c.Tree.write(sb, 0, 0)
			}
		}
		sb.WriteByte(')')
		return
	}
	sb.WriteByte('\n')
	for i, c := range t.Children {
		if i > 0 {
			sb.WriteString(",\n")
		}
		if c.Terminal != nil {
			sb.WriteString(strings.Repeat(" ", indent*(level+1)))
			sb.WriteString(c.Terminal.String())
		} else {
			c.Tree.write(sb, indent, level+1)
		}
	}
	sb.WriteString("\n" + pad + ")")
}
