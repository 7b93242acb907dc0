// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"fmt"
	"strconv"

	"github.com/wdltools/wdl/tokens"
)

// Terminal is a lexed token. Terminals are leaves of both the parse tree and
// the AST and are never modified after lexing.
type Terminal struct {
	Kind     tokens.Kind
	Text     string // The matched source text, unescaped for strings.
	Resource string // The name of the source (which may be empty).
	Line     int
	Col      int
}

// NewTerminal returns a new Terminal object.
func NewTerminal(kind tokens.Kind, text, resource string, line, col int) *Terminal {
	return &Terminal{Kind: kind, Text: text, Resource: resource, Line: line, Col: col}
}

// Location returns the position of the terminal.
func (t *Terminal) Location() *Location {
	return NewLocation([]byte(t.Text), t.Resource, t.Line, t.Col)
}

func (t *Terminal) String() string {
	return fmt.Sprintf("<%s:%d:%d %v %s>", t.Resource, t.Line, t.Col, t.Kind, strconv.Quote(t.Text))
}

// Equal returns true if other is a terminal of the same kind, text and
// position.
func (t *Terminal) Equal(other Value) bool {
	o, ok := other.(*Terminal)
	if !ok {
		return false
	}
	return *t == *o
}

func (*Terminal) value() {}
