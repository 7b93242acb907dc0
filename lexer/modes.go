// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package lexer

import (
	"regexp"
	"strings"

	"github.com/wdltools/wdl/tokens"
)

// Mode names.
const (
	modeDefault    = "default"
	modeWfOutput   = "wf_output"
	modeTaskFqn    = "task_fqn"
	modeScatter    = "scatter"
	modeCommand    = "command"
	modeCommandAlt = "command_alt"
	modeCmdParam   = "cmd_param"
)

// hook selects the function that receives an emitted capture.
type hook int

const (
	hookEmit hook = iota
	hookWorkflow
	hookTask
	hookOutput
	hookUnescape
)

type actionKind int

const (
	actionEmit actionKind = iota
	actionPush
	actionPop
)

// synthetic is the group index of an emitted empty string.
const synthetic = -1

type action struct {
	kind     actionKind
	terminal tokens.Kind
	group    int
	hook     hook
	mode     string
}

func emit(k tokens.Kind, group int) action {
	return action{kind: actionEmit, terminal: k, group: group}
}

func emitWith(k tokens.Kind, group int, h hook) action {
	return action{kind: actionEmit, terminal: k, group: group, hook: h}
}

func push(mode string) action {
	return action{kind: actionPush, mode: mode}
}

func pop() action {
	return action{kind: actionPop}
}

// matcher finds a match anchored at the start of src and returns the
// submatch index pairs, or nil.
type matcher interface {
	match(src string) []int
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) match(src string) []int {
	return m.re.FindStringSubmatchIndex(src)
}

// untilMatcher matches all text up to, not including, the first delimiter.
// The match runs to the end of the input when no delimiter follows. Empty
// matches are not matches.
type untilMatcher struct {
	delims []string
}

func (m untilMatcher) match(src string) []int {
	end := len(src)
	for _, d := range m.delims {
		if i := strings.Index(src, d); i >= 0 && i < end {
			end = i
		}
	}
	if end == 0 {
		return nil
	}
	return []int{0, end}
}

type pattern struct {
	matcher matcher
	actions []action
	// consume is the group whose end bounds the consumed text. Zero consumes
	// the whole match.
	consume int
}

func re(expr string, actions ...action) pattern {
	return pattern{matcher: regexMatcher{regexp.MustCompile(expr)}, actions: actions}
}

func until(delims []string, actions ...action) pattern {
	return pattern{matcher: untilMatcher{delims}, actions: actions}
}

const (
	typeNames  = `(?:Array|Map|Object|Boolean|Int|Float|Uri|File|String)\b`
	escapes    = `\\["'nrbtfav\\?]|\\[0-7]{1,3}|\\x[0-9a-fA-F]+|\\[uU][0-9a-fA-F]{4}(?:[0-9a-fA-F]{4})?`
	dquoteExpr = `^"(?:[^\\"\n]|` + escapes + `)*"`
	squoteExpr = `^'(?:[^\\'\n]|` + escapes + `)*'`
	fqnExpr    = `^[a-zA-Z][a-zA-Z0-9_]*(?:\.[a-zA-Z][a-zA-Z0-9_]*)*`
	identExpr  = `^[a-zA-Z][a-zA-Z0-9_]*`
)

func keyword(word string, k tokens.Kind, actions ...action) pattern {
	return re(`^`+word+`\b`, append([]action{emit(k, 0)}, actions...)...)
}

// hooked routes the first emitted capture of p through h.
func hooked(p pattern, h hook) pattern {
	p.actions[0].hook = h
	return p
}

// operators is shared by the default and parameter modes. Longer spellings
// precede their prefixes.
func operators() []pattern {
	return []pattern{
		re(`^:`, emit(tokens.Colon, 0)),
		re(`^,`, emit(tokens.Comma, 0)),
		re(`^==`, emit(tokens.DoubleEqual, 0)),
		re(`^\|\|`, emit(tokens.DoublePipe, 0)),
		re(`^&&`, emit(tokens.DoubleAmpersand, 0)),
		re(`^!=`, emit(tokens.NotEqual, 0)),
		re(`^=`, emit(tokens.Equal, 0)),
		re(`^\.`, emit(tokens.Dot, 0)),
		re(`^\{`, emit(tokens.Lbrace, 0)),
		re(`^\}`, emit(tokens.Rbrace, 0)),
		re(`^\(`, emit(tokens.Lparen, 0)),
		re(`^\)`, emit(tokens.Rparen, 0)),
		re(`^\[`, emit(tokens.Lsquare, 0)),
		re(`^\]`, emit(tokens.Rsquare, 0)),
		re(`^\+`, emit(tokens.Plus, 0)),
		re(`^\*`, emit(tokens.Asterisk, 0)),
		re(`^-`, emit(tokens.Dash, 0)),
		re(`^/`, emit(tokens.Slash, 0)),
		re(`^%`, emit(tokens.Percent, 0)),
		re(`^<=`, emit(tokens.Lteq, 0)),
		re(`^<`, emit(tokens.Lt, 0)),
		re(`^>=`, emit(tokens.Gteq, 0)),
		re(`^>`, emit(tokens.Gt, 0)),
		re(`^!`, emit(tokens.Not, 0)),
		re(`^\?`, emit(tokens.Qmark, 0)),
		re(`^-?[0-9]+\.[0-9]+`, emit(tokens.Float, 0)),
		re(`^[0-9]+`, emit(tokens.Integer, 0)),
	}
}

func concat(ps ...[]pattern) []pattern {
	var out []pattern
	for _, p := range ps {
		out = append(out, p...)
	}
	return out
}

// newModes returns the ordered patterns of every lexical mode. Within a
// mode the first matching pattern wins.
func newModes() map[string][]pattern {

	whitespace := re(`^\s+`)

	defaultMode := concat([]pattern{
		whitespace,
		re(`^(?s)/\*.*?\*/`),
		re(`^#.*`),
		hooked(keyword("task", tokens.Task), hookTask),
		re(`^(call)\s+`, emit(tokens.Call, 1), push(modeTaskFqn)),
		hooked(keyword("workflow", tokens.Workflow), hookWorkflow),
		keyword("import", tokens.Import),
		keyword("input", tokens.Input),
		hooked(keyword("output", tokens.Output), hookOutput),
		keyword("as", tokens.As),
		keyword("if", tokens.If),
		keyword("while", tokens.While),
		keyword("runtime", tokens.Runtime),
		keyword("scatter", tokens.Scatter, push(modeScatter)),
		re(`^(command)\s*(<<<)`, emit(tokens.Command, 1), emit(tokens.CommandStart, 2), push(modeCommandAlt)),
		re(`^(command)\s*(\{)`, emit(tokens.Command, 1), emit(tokens.CommandStart, 2), push(modeCommand)),
		keyword("parameter_meta", tokens.ParameterMeta),
		keyword("meta", tokens.Meta),
		re(`^(?:true|false)\b`, emit(tokens.Boolean, 0)),
		re(`^(object)\s*(\{)`, emit(tokens.Object, 1), emit(tokens.Lbrace, 2)),
		re(`^`+typeNames, emit(tokens.Type, 0)),
		re(identExpr, emit(tokens.Identifier, 0)),
		re(dquoteExpr, emitWith(tokens.String, 0, hookUnescape)),
		re(squoteExpr, emitWith(tokens.String, 0, hookUnescape)),
	}, operators())

	// An attribute hint is a name followed by a single '='. The character
	// after the '=' is matched but not consumed.
	attrHint := re(`^([a-zA-Z][a-zA-Z0-9_]*)\s*(=)(?:[^=]|$)`,
		emit(tokens.CmdAttrHint, synthetic),
		emit(tokens.Identifier, 1),
		emit(tokens.Equal, 2))
	attrHint.consume = 2

	cmdParamMode := concat([]pattern{
		whitespace,
		re(`^\}`, emit(tokens.CmdParamEnd, 0), pop()),
		attrHint,
		re(`^(?:true|false)\b`, emit(tokens.Boolean, 0)),
		re(`^`+typeNames, emit(tokens.Type, 0)),
		re(identExpr, emit(tokens.Identifier, 0)),
		re(dquoteExpr, emitWith(tokens.String, 0, hookUnescape)),
		re(squoteExpr, emitWith(tokens.String, 0, hookUnescape)),
	}, operators())

	return map[string][]pattern{
		modeDefault: defaultMode,
		modeWfOutput: {
			whitespace,
			re(`^\{`, emit(tokens.Lbrace, 0)),
			re(`^\}`, emit(tokens.Rbrace, 0), pop()),
			re(`^,`, emit(tokens.Comma, 0)),
			re(`^\.`, emit(tokens.Dot, 0)),
			re(`^\*`, emit(tokens.Asterisk, 0)),
			re(fqnExpr, emit(tokens.Fqn, 0)),
		},
		modeTaskFqn: {
			whitespace,
			re(fqnExpr, emit(tokens.Fqn, 0), pop()),
		},
		modeScatter: {
			whitespace,
			re(`^\)`, emit(tokens.Rparen, 0), pop()),
			re(`^\(`, emit(tokens.Lparen, 0)),
			re(`^\.`, emit(tokens.Dot, 0)),
			re(`^\[`, emit(tokens.Lsquare, 0)),
			re(`^\]`, emit(tokens.Rsquare, 0)),
			keyword("in", tokens.In),
			re(identExpr, emit(tokens.Identifier, 0)),
		},
		modeCommand: {
			re(`^\}`, emit(tokens.CommandEnd, 0), pop()),
			re(`^\$\{`, emit(tokens.CmdParamStart, 0), push(modeCmdParam)),
			until([]string{"${", "}"}, emit(tokens.CmdPart, 0)),
		},
		modeCommandAlt: {
			re(`^>>>`, emit(tokens.CommandEnd, 0), pop()),
			re(`^\$\{`, emit(tokens.CmdParamStart, 0), push(modeCmdParam)),
			until([]string{"${", ">>>"}, emit(tokens.CmdPart, 0)),
		},
		modeCmdParam: cmdParamMode,
	}
}
