// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package grammar

import "github.com/wdltools/wdl/tokens"

// No operator is right associative, so right operands are always parsed at
// the operator's own binding power.
var infixBindingPower = map[Nonterminal]map[tokens.Kind]int{
	TypeE: {
		tokens.Lsquare: 1000,
	},
	E: {
		tokens.DoublePipe:      2000,
		tokens.DoubleAmpersand: 3000,
		tokens.DoubleEqual:     4000,
		tokens.NotEqual:        4000,
		tokens.Lt:              5000,
		tokens.Lteq:            5000,
		tokens.Gt:              5000,
		tokens.Gteq:            5000,
		tokens.Plus:            6000,
		tokens.Dash:            6000,
		tokens.Asterisk:        7000,
		tokens.Slash:           7000,
		tokens.Percent:         7000,
		tokens.Lparen:          9000,
		tokens.Lsquare:         10000,
		tokens.Dot:             11000,
	},
}

var prefixBindingPower = map[Nonterminal]map[tokens.Kind]int{
	E: {
		tokens.Not:  8000,
		tokens.Plus: 8000,
		tokens.Dash: 8000,
	},
}
