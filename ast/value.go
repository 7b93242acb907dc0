// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package ast declares the abstract syntax tree produced by the parser.
//
// An AST value is one of:
//
// - *Node: a named node with ordered attributes
// - List: an ordered sequence of values
// - *Terminal: a token taken directly from the source
// - Null: the value of an absent optional construct
package ast

import (
	"strings"
)

// Value declares the common interface for all AST values.
type Value interface {
	// Equal returns true if this value equals the other value.
	Equal(other Value) bool

	// String returns the compact, single line form of the value.
	String() string

	value()
}

// Attribute is a named child of a Node.
type Attribute struct {
	Key   string
	Value Value
}

// Node is a named AST node. Attribute order is significant: it follows the
// rule that created the node and is preserved by every serialization.
type Node struct {
	Name       string
	Attributes []Attribute
}

// NewNode returns a new Node object.
func NewNode(name string, attrs ...Attribute) *Node {
	return &Node{Name: name, Attributes: attrs}
}

// Attr returns the value of attribute key or nil if the node has no such
// attribute.
func (n *Node) Attr(key string) Value {
	for _, a := range n.Attributes {
		if a.Key == key {
			return a.Value
		}
	}
	return nil
}

// Keys returns the attribute names in order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.Attributes))
	for i, a := range n.Attributes {
		keys[i] = a.Key
	}
	return keys
}

// Equal returns true if other is a node with the same name and equal
// attributes in the same order.
func (n *Node) Equal(other Value) bool {
	o, ok := other.(*Node)
	if !ok || n.Name != o.Name || len(n.Attributes) != len(o.Attributes) {
		return false
	}
	for i := range n.Attributes {
		if n.Attributes[i].Key != o.Attributes[i].Key {
			return false
		}
		if !equal(n.Attributes[i].Value, o.Attributes[i].Value) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(n.Name)
	sb.WriteString(":")
	for i, a := range n.Attributes {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString("=")
		sb.WriteString(str(a.Value))
	}
	sb.WriteString(")")
	return sb.String()
}

func (*Node) value() {}

// List is an ordered sequence of AST values.
type List []Value

// Equal returns true if other is a list of equal values.
func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !equal(l[i], o[i]) {
			return false
		}
	}
	return true
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = str(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (List) value() {}

// Null is the value of an optional construct that is absent from the source.
type Null struct{}

// Equal returns true if other is Null.
func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

func (Null) String() string {
	return "null"
}

func (Null) value() {}

func equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func str(v Value) string {
	if v == nil {
		return Null{}.String()
	}
	return v.String()
}
