// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/internal/grammar"
)

// AST reduces the tree by applying the transform of each node. Missing
// children reduce to ast.Null.
func (t *Tree) AST() ast.Value {
	switch {
	case t.isList:
		return t.reduceList()
	case t.isExpr:
		return t.reduceExpr()
	}
	return t.reduce()
}

// reduceList flattens a chain of list nodes, dropping separators.
func (t *Tree) reduceList() ast.Value {
	list := ast.List{}
	for node := t; node != nil; {
		n := len(node.Children)
		if n == 0 {
			break
		}
		for _, c := range node.Children[:n-1] {
			if c.Terminal != nil && node.hasSeparator && c.Terminal.Kind == node.separator {
				continue
			}
			list = append(list, c.AST())
		}
		last := node.Children[n-1]
		if last.Tree != nil && last.Tree.isList {
			node = last.Tree
			continue
		}
		list = append(list, last.AST())
		node = nil
	}
	return list
}

func (t *Tree) reduceExpr() ast.Value {
	switch tr := t.Transform.(type) {
	case grammar.Substitution:
		return t.child(tr.Index)
	case grammar.NodeCreator:
		compound := t.isCompoundNud()
		attrs := make([]ast.Attribute, len(tr.Params))
		for i, p := range tr.Params {
			var v ast.Value
			switch {
			case p.Index == grammar.WholeNode:
				v = t.child(0)
			case compound:
				nud := t.Children[0].Tree
				if p.Index < nud.nudMorphemeCount {
					v = nud.child(p.Index)
				} else {
					v = t.child(p.Index - nud.nudMorphemeCount + 1)
				}
			default:
				v = t.child(p.Index)
			}
			attrs[i] = ast.Attribute{Key: p.Name, Value: v}
		}
		return ast.NewNode(tr.Name, attrs...)
	}
	return t.child(0)
}

func (t *Tree) reduce() ast.Value {
	if len(t.Children) == 0 {
		return ast.Null{}
	}
	switch tr := t.Transform.(type) {
	case grammar.Substitution:
		return t.child(tr.Index)
	case grammar.NodeCreator:
		attrs := make([]ast.Attribute, len(tr.Params))
		for i, p := range tr.Params {
			attrs[i] = ast.Attribute{Key: p.Name, Value: t.child(p.Index)}
		}
		return ast.NewNode(tr.Name, attrs...)
	}
	return t.child(0)
}

func (t *Tree) child(i int) ast.Value {
	if i < 0 || i >= len(t.Children) {
		return ast.Null{}
	}
	return t.Children[i].AST()
}

// AST reduces the child.
func (c Child) AST() ast.Value {
	switch {
	case c.Terminal != nil:
		return c.Terminal
	case c.Tree != nil:
		return c.Tree.AST()
	}
	return ast.Null{}
}
