// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package tokens defines the terminal kinds of the workflow language.
package tokens

import "strings"

// Kind identifies the class of a lexed terminal.
type Kind int

func (k Kind) String() string {
	if !Valid(k) {
		return "unknown"
	}
	return names[k]
}

// All terminal kinds must be defined here. The order matches the numeric
// terminal ids used by the grammar tables.
const (
	Workflow Kind = iota
	Task
	Call
	Command
	Input
	Output
	Import
	As
	If
	While
	Scatter
	In
	Runtime
	Meta
	ParameterMeta
	Object

	String
	Integer
	Float
	Boolean
	Type
	Identifier
	Fqn

	CommandStart
	CommandEnd
	CmdPart
	CmdParamStart
	CmdParamEnd
	CmdAttrHint

	Lbrace
	Rbrace
	Lparen
	Rparen
	Lsquare
	Rsquare
	Comma
	Colon
	Dot
	Equal
	Qmark
	Plus
	Dash
	Asterisk
	Slash
	Percent
	Not
	DoubleEqual
	NotEqual
	Lt
	Lteq
	Gt
	Gteq
	DoublePipe
	DoubleAmpersand

	// NumKinds is the number of valid terminal kinds.
	NumKinds = iota
)

var names = [...]string{
	Workflow:        "workflow",
	Task:            "task",
	Call:            "call",
	Command:         "command",
	Input:           "input",
	Output:          "output",
	Import:          "import",
	As:              "as",
	If:              "if",
	While:           "while",
	Scatter:         "scatter",
	In:              "in",
	Runtime:         "runtime",
	Meta:            "meta",
	ParameterMeta:   "parameter_meta",
	Object:          "object",
	String:          "string",
	Integer:         "integer",
	Float:           "float",
	Boolean:         "boolean",
	Type:            "type",
	Identifier:      "identifier",
	Fqn:             "fqn",
	CommandStart:    "command_start",
	CommandEnd:      "command_end",
	CmdPart:         "cmd_part",
	CmdParamStart:   "cmd_param_start",
	CmdParamEnd:     "cmd_param_end",
	CmdAttrHint:     "cmd_attr_hint",
	Lbrace:          "lbrace",
	Rbrace:          "rbrace",
	Lparen:          "lparen",
	Rparen:          "rparen",
	Lsquare:         "lsquare",
	Rsquare:         "rsquare",
	Comma:           "comma",
	Colon:           "colon",
	Dot:             "dot",
	Equal:           "equal",
	Qmark:           "qmark",
	Plus:            "plus",
	Dash:            "dash",
	Asterisk:        "asterisk",
	Slash:           "slash",
	Percent:         "percent",
	Not:             "not",
	DoubleEqual:     "double_equal",
	NotEqual:        "not_equal",
	Lt:              "lt",
	Lteq:            "lteq",
	Gt:              "gt",
	Gteq:            "gteq",
	DoublePipe:      "double_pipe",
	DoubleAmpersand: "double_ampersand",
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, NumKinds)
	for k, n := range names {
		m[n] = Kind(k)
	}
	return m
}()

// Valid returns true if k is within the range of known terminal kinds.
func Valid(k Kind) bool {
	return k >= 0 && k < NumKinds
}

// Lookup returns the kind with the given name.
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// Keywords returns the spelling of every reserved word, in kind order.
func Keywords() []string {
	kws := make([]string, 0, Object+1)
	for k := Workflow; k <= Object; k++ {
		kws = append(kws, names[k])
	}
	return kws
}

// IsKeyword returns if a kind is a reserved word.
func IsKeyword(k Kind) bool {
	return k >= Workflow && k <= Object
}

// Set is an immutable set of terminal kinds.
type Set uint64

// NewSet returns a set containing kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

// Has returns true if k is a member of s.
func (s Set) Has(k Kind) bool {
	return Valid(k) && s&(1<<uint(k)) != 0
}

// Union returns the kinds in s or other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Len returns the number of kinds in s.
func (s Set) Len() int {
	n := 0
	for x := s; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// Kinds returns the members of s in ascending order.
func (s Set) Kinds() []Kind {
	ks := make([]Kind, 0, s.Len())
	for k := Kind(0); k < NumKinds; k++ {
		if s.Has(k) {
			ks = append(ks, k)
		}
	}
	return ks
}

func (s Set) String() string {
	parts := make([]string, 0, s.Len())
	for _, k := range s.Kinds() {
		parts = append(parts, k.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
