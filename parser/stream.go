// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package parser

import "github.com/wdltools/wdl/ast"

// stream is a cursor over the lexed terminals.
type stream struct {
	ts  []*ast.Terminal
	pos int
}

// current returns the lookahead terminal or nil at the end of input.
func (s *stream) current() *ast.Terminal {
	if s.pos < len(s.ts) {
		return s.ts[s.pos]
	}
	return nil
}

// advance moves past the current terminal and returns the new lookahead.
func (s *stream) advance() *ast.Terminal {
	s.pos++
	return s.current()
}

// last returns the final terminal of the input, if any.
func (s *stream) last() *ast.Terminal {
	if len(s.ts) > 0 {
		return s.ts[len(s.ts)-1]
	}
	return nil
}
