// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/tokens"
)

type tok struct {
	Kind tokens.Kind
	Text string
}

func simplify(ts []*ast.Terminal) []tok {
	out := make([]tok, len(ts))
	for i, t := range ts {
		out[i] = tok{t.Kind, t.Text}
	}
	return out
}

func TestLex(t *testing.T) {
	tests := []struct {
		note  string
		input string
		exp   []tok
	}{
		{
			note:  "empty",
			input: "",
			exp:   []tok{},
		},
		{
			note:  "whitespace and comments",
			input: "  # comment\n/* block\ncomment */\t",
			exp:   []tok{},
		},
		{
			note:  "keywords need a boundary",
			input: "task tasks task_x input output as if while runtime meta parameter_meta import workflows workflow",
			exp: []tok{
				{tokens.Task, "task"},
				{tokens.Identifier, "tasks"},
				{tokens.Identifier, "task_x"},
				{tokens.Input, "input"},
				{tokens.Output, "output"},
				{tokens.As, "as"},
				{tokens.If, "if"},
				{tokens.While, "while"},
				{tokens.Runtime, "runtime"},
				{tokens.Meta, "meta"},
				{tokens.ParameterMeta, "parameter_meta"},
				{tokens.Import, "import"},
				{tokens.Identifier, "workflows"},
				{tokens.Workflow, "workflow"},
			},
		},
		{
			note:  "output inside a workflow switches mode",
			input: "workflow w output { as }",
			exp: []tok{
				{tokens.Workflow, "workflow"},
				{tokens.Identifier, "w"},
				{tokens.Output, "output"},
				{tokens.Lbrace, "{"},
				{tokens.Fqn, "as"},
				{tokens.Rbrace, "}"},
			},
		},
		{
			note:  "types and booleans",
			input: "Int Integer Array[File] true trueish false",
			exp: []tok{
				{tokens.Type, "Int"},
				{tokens.Identifier, "Integer"},
				{tokens.Type, "Array"},
				{tokens.Lsquare, "["},
				{tokens.Type, "File"},
				{tokens.Rsquare, "]"},
				{tokens.Boolean, "true"},
				{tokens.Identifier, "trueish"},
				{tokens.Boolean, "false"},
			},
		},
		{
			note:  "numbers",
			input: "1.5 2 -3 -0.25",
			exp: []tok{
				{tokens.Float, "1.5"},
				{tokens.Integer, "2"},
				{tokens.Dash, "-"},
				{tokens.Integer, "3"},
				{tokens.Dash, "-"},
				{tokens.Float, "0.25"},
			},
		},
		{
			note:  "operators",
			input: "a==b!=c<=d<e>=f>g||h&&!i+j-k*l/m%n?",
			exp: []tok{
				{tokens.Identifier, "a"}, {tokens.DoubleEqual, "=="},
				{tokens.Identifier, "b"}, {tokens.NotEqual, "!="},
				{tokens.Identifier, "c"}, {tokens.Lteq, "<="},
				{tokens.Identifier, "d"}, {tokens.Lt, "<"},
				{tokens.Identifier, "e"}, {tokens.Gteq, ">="},
				{tokens.Identifier, "f"}, {tokens.Gt, ">"},
				{tokens.Identifier, "g"}, {tokens.DoublePipe, "||"},
				{tokens.Identifier, "h"}, {tokens.DoubleAmpersand, "&&"},
				{tokens.Not, "!"}, {tokens.Identifier, "i"},
				{tokens.Plus, "+"}, {tokens.Identifier, "j"},
				{tokens.Dash, "-"}, {tokens.Identifier, "k"},
				{tokens.Asterisk, "*"}, {tokens.Identifier, "l"},
				{tokens.Slash, "/"}, {tokens.Identifier, "m"},
				{tokens.Percent, "%"}, {tokens.Identifier, "n"},
				{tokens.Qmark, "?"},
			},
		},
		{
			note:  "object literal",
			input: "object {a: 1}",
			exp: []tok{
				{tokens.Object, "object"},
				{tokens.Lbrace, "{"},
				{tokens.Identifier, "a"},
				{tokens.Colon, ":"},
				{tokens.Integer, "1"},
				{tokens.Rbrace, "}"},
			},
		},
		{
			note:  "strings",
			input: `"a\tb\x41\101é" 'it\'s' "" "q\"q"`,
			exp: []tok{
				{tokens.String, "a\tbAAé"},
				{tokens.String, "it's"},
				{tokens.String, ""},
				{tokens.String, `q"q`},
			},
		},
		{
			note:  "call",
			input: "call ns.foo as bar",
			exp: []tok{
				{tokens.Call, "call"},
				{tokens.Fqn, "ns.foo"},
				{tokens.As, "as"},
				{tokens.Identifier, "bar"},
			},
		},
		{
			note:  "scatter",
			input: "scatter (i in xs.y) {",
			exp: []tok{
				{tokens.Scatter, "scatter"},
				{tokens.Lparen, "("},
				{tokens.Identifier, "i"},
				{tokens.In, "in"},
				{tokens.Identifier, "xs"},
				{tokens.Dot, "."},
				{tokens.Identifier, "y"},
				{tokens.Rparen, ")"},
				{tokens.Lbrace, "{"},
			},
		},
		{
			note:  "workflow outputs",
			input: "workflow w { output { a.b, c.* } }",
			exp: []tok{
				{tokens.Workflow, "workflow"},
				{tokens.Identifier, "w"},
				{tokens.Lbrace, "{"},
				{tokens.Output, "output"},
				{tokens.Lbrace, "{"},
				{tokens.Fqn, "a.b"},
				{tokens.Comma, ","},
				{tokens.Fqn, "c"},
				{tokens.Dot, "."},
				{tokens.Asterisk, "*"},
				{tokens.Rbrace, "}"},
				{tokens.Rbrace, "}"},
			},
		},
		{
			note:  "task outputs",
			input: "task t { output { Int x = 1 } }",
			exp: []tok{
				{tokens.Task, "task"},
				{tokens.Identifier, "t"},
				{tokens.Lbrace, "{"},
				{tokens.Output, "output"},
				{tokens.Lbrace, "{"},
				{tokens.Type, "Int"},
				{tokens.Identifier, "x"},
				{tokens.Equal, "="},
				{tokens.Integer, "1"},
				{tokens.Rbrace, "}"},
				{tokens.Rbrace, "}"},
			},
		},
		{
			note:  "command block",
			input: "command { echo ${x} done }",
			exp: []tok{
				{tokens.Command, "command"},
				{tokens.CommandStart, "{"},
				{tokens.CmdPart, " echo "},
				{tokens.CmdParamStart, "${"},
				{tokens.Identifier, "x"},
				{tokens.CmdParamEnd, "}"},
				{tokens.CmdPart, " done "},
				{tokens.CommandEnd, "}"},
			},
		},
		{
			note:  "command heredoc with attributes",
			input: `command <<< echo ${sep=", " xs} $HOME >>>`,
			exp: []tok{
				{tokens.Command, "command"},
				{tokens.CommandStart, "<<<"},
				{tokens.CmdPart, " echo "},
				{tokens.CmdParamStart, "${"},
				{tokens.CmdAttrHint, ""},
				{tokens.Identifier, "sep"},
				{tokens.Equal, "="},
				{tokens.String, ", "},
				{tokens.Identifier, "xs"},
				{tokens.CmdParamEnd, "}"},
				{tokens.CmdPart, " $HOME "},
				{tokens.CommandEnd, ">>>"},
			},
		},
		{
			note:  "command parameter comparison",
			input: "command {${a == b}}",
			exp: []tok{
				{tokens.Command, "command"},
				{tokens.CommandStart, "{"},
				{tokens.CmdParamStart, "${"},
				{tokens.Identifier, "a"},
				{tokens.DoubleEqual, "=="},
				{tokens.Identifier, "b"},
				{tokens.CmdParamEnd, "}"},
				{tokens.CommandEnd, "}"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			ts, err := Lex(tc.input, "test.wdl")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.exp, simplify(ts)); diff != "" {
				t.Fatalf("Unexpected terminals (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLexModeStack(t *testing.T) {
	tests := []struct {
		note  string
		input string
		depth int
	}{
		{"command", "command { a ${b} c } x", 1},
		{"heredoc", "command <<< a ${b} } c >>> x", 1},
		{"workflow output", "workflow w { output { a.b } }", 1},
		{"scatter", "scatter (a in b)", 1},
		{"call", "call a.b", 1},
		{"unterminated command", "command { a ${b} c", 2},
		{"unterminated parameter", "command { a ${b", 3},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			ctx, err := New().run(tc.input, "")
			if err != nil {
				t.Fatal(err)
			}
			if len(ctx.stack) != tc.depth || ctx.stack[0] != modeDefault {
				t.Fatalf("Expected stack depth %d, got %v", tc.depth, ctx.stack)
			}
		})
	}
}

func TestLexPositions(t *testing.T) {

	ts, err := Lex("# x\n/* y\n z */ a\n  call  foo.bar", "pos.wdl")
	if err != nil {
		t.Fatal(err)
	}

	exp := []*ast.Terminal{
		ast.NewTerminal(tokens.Identifier, "a", "pos.wdl", 3, 7),
		ast.NewTerminal(tokens.Call, "call", "pos.wdl", 4, 3),
		ast.NewTerminal(tokens.Fqn, "foo.bar", "pos.wdl", 4, 9),
	}

	if diff := cmp.Diff(exp, ts); diff != "" {
		t.Fatalf("Unexpected terminals (-want, +got):\n%s", diff)
	}
}

func TestLexCapturePositions(t *testing.T) {

	ts, err := Lex("command\n  {x}", "")
	if err != nil {
		t.Fatal(err)
	}

	if ts[1].Kind != tokens.CommandStart || ts[1].Line != 2 || ts[1].Col != 3 {
		t.Fatalf("Expected command start at 2:3, got %v", ts[1])
	}

	ts, err = Lex("command{${ a = 1 }}", "")
	if err != nil {
		t.Fatal(err)
	}

	// The synthetic hint sits at the start of its match.
	if ts[3].Kind != tokens.CmdAttrHint || ts[3].Col != 12 || ts[4].Col != 12 || ts[5].Col != 14 {
		t.Fatalf("Unexpected positions: %v", String(ts))
	}
}

func TestLexError(t *testing.T) {

	_, err := Lex("Int x = 1\nInt y = @ + 2", "bad.wdl")
	if err == nil {
		t.Fatal("Expected error")
	}

	if !ast.IsError(ast.LexErr, err) {
		t.Fatalf("Expected lex error, got %v", err)
	}

	e := err.(ast.Errors)[0]
	if e.Location.File != "bad.wdl" || e.Location.Row != 2 || e.Location.Col != 9 {
		t.Fatalf("Unexpected location: %v", e.Location)
	}

	exp := []string{"Int y = @ + 2", "        ^"}
	if diff := cmp.Diff(exp, e.Details.Lines()); diff != "" {
		t.Fatalf("Unexpected details (-want, +got):\n%s", diff)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		note  string
		input string
		exp   string
	}{
		{"plain", `"abc"`, "abc"},
		{"simple escapes", `"\n\r\b\t\f\a\v\"\'\?\\"`, "\n\r\b\t\f\a\v\"'?\\"},
		{"octal", `"\101\7"`, "A\a"},
		{"hex", `"\x41\x263a"`, "A☺"},
		{"unicode short", `"\u00e9"`, "é"},
		{"unicode long", `"\U0001F600"`, "\U0001F600"},
		{"unicode short followed by hex text", `"\u00e9ab"`, "éab"},
		{"single quotes", `'a\'b'`, "a'b"},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			if got := unquote(tc.input); got != tc.exp {
				t.Fatalf("Expected %q, got %q", tc.exp, got)
			}
		})
	}
}
