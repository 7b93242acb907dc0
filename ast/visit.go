// Copyright 2016 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// Visitor defines the interface for iterating AST elements.
// The Visit function can return a Visitor w which will be
// used to visit the children of the AST element v. If the
// Visit function returns nil, the children will not be visited.
type Visitor interface {
	Visit(v Value) (w Visitor)
}

// Walk iterates the AST by calling the Visit function on the Visitor
// v for x before recursing.
func Walk(v Visitor, x Value) {
	if x == nil {
		return
	}
	w := v.Visit(x)
	if w == nil {
		return
	}
	switch x := x.(type) {
	case *Node:
		for _, a := range x.Attributes {
			Walk(w, a.Value)
		}
	case List:
		for _, e := range x {
			Walk(w, e)
		}
	}
}

// WalkNodes calls the function f on all nodes under x. If the function f
// returns true, AST nodes under the last node will not be visited.
func WalkNodes(x Value, f func(*Node) bool) {
	vis := NewGenericVisitor(func(x Value) bool {
		if n, ok := x.(*Node); ok {
			return f(n)
		}
		return false
	})
	Walk(vis, x)
}

// WalkTerminals calls the function f on all terminals under x.
func WalkTerminals(x Value, f func(*Terminal)) {
	vis := NewGenericVisitor(func(x Value) bool {
		if t, ok := x.(*Terminal); ok {
			f(t)
		}
		return false
	})
	Walk(vis, x)
}

// GenericVisitor implements the Visitor interface to provide
// a utility to walk over AST nodes using a closure. If the closure
// returns true, the visitor will not walk over AST nodes under x.
type GenericVisitor struct {
	f func(x Value) bool
}

// NewGenericVisitor returns a new GenericVisitor that will invoke the function
// f on AST nodes.
func NewGenericVisitor(f func(x Value) bool) *GenericVisitor {
	return &GenericVisitor{f}
}

// Visit calls the function f on the GenericVisitor.
func (vis *GenericVisitor) Visit(x Value) Visitor {
	if vis.f(x) {
		return nil
	}
	return vis
}
