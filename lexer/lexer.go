// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package lexer converts workflow source text into terminals.
//
// The lexer keeps a stack of named modes. Each mode owns an ordered list of
// patterns and the first pattern that matches at the current position wins.
// A match may emit terminals, push a mode or pop the current one. Command
// blocks are lexed in their own modes so that their bodies become opaque
// text interrupted by ${...} parameters.
package lexer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/tokens"
)

// Lexer holds the immutable mode table. A Lexer is safe for concurrent use.
type Lexer struct {
	modes map[string][]pattern
}

var (
	defaultOnce  sync.Once
	defaultLexer *Lexer
)

// New returns the lexer of the workflow language. The mode table is
// compiled on first use and shared.
func New() *Lexer {
	defaultOnce.Do(func() {
		defaultLexer = &Lexer{modes: newModes()}
	})
	return defaultLexer
}

// Lex converts source into an ordered sequence of terminals. The resource
// labels every terminal and error.
func Lex(source, resource string) ([]*ast.Terminal, error) {
	return New().Lex(source, resource)
}

// Lex converts source into an ordered sequence of terminals. Lexing stops at
// the first position no pattern of the current mode matches.
func (l *Lexer) Lex(source, resource string) ([]*ast.Terminal, error) {
	ctx, err := l.run(source, resource)
	if err != nil {
		return nil, err
	}
	return ctx.terminals, nil
}

// section records whether the lexer is inside a workflow or a task.
type section int

const (
	sectionNone section = iota
	sectionWorkflow
	sectionTask
)

type context struct {
	source    string
	resource  string
	pos       int
	line      int
	col       int
	stack     []string
	section   section
	terminals []*ast.Terminal
}

func (l *Lexer) run(source, resource string) (*context, error) {

	ctx := &context{
		source:   source,
		resource: resource,
		line:     1,
		col:      1,
		stack:    []string{modeDefault},
	}

	for ctx.pos < len(ctx.source) {
		if err := l.next(ctx); err != nil {
			return nil, ast.Errors{err}
		}
	}

	return ctx, nil
}

func (l *Lexer) next(ctx *context) *ast.Error {

	rest := ctx.source[ctx.pos:]

	for _, p := range l.modes[ctx.top()] {
		m := p.matcher.match(rest)
		if m == nil {
			continue
		}

		consumed := m[1]
		if p.consume > 0 {
			consumed = m[2*p.consume+1]
		}
		if consumed == 0 {
			continue
		}

		for _, a := range p.actions {
			if err := ctx.apply(a, rest, m); err != nil {
				return err
			}
		}

		ctx.advance(rest[:consumed])
		return nil
	}

	return ctx.unrecognized()
}

func (ctx *context) apply(a action, rest string, m []int) *ast.Error {
	switch a.kind {
	case actionPush:
		ctx.push(a.mode)
	case actionPop:
		if len(ctx.stack) <= 1 {
			return ctx.errorf("cannot leave lexical mode %q", ctx.top())
		}
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
	case actionEmit:
		var text string
		start := m[0]
		if a.group != synthetic && m[2*a.group] >= 0 {
			start = m[2*a.group]
			text = rest[start:m[2*a.group+1]]
		}
		line, col := position(rest[:start], ctx.line, ctx.col)
		ctx.handle(a, text, line, col)
	}
	return nil
}

func (ctx *context) handle(a action, text string, line, col int) {
	switch a.hook {
	case hookTask:
		ctx.section = sectionTask
	case hookWorkflow:
		ctx.section = sectionWorkflow
	case hookOutput:
		if ctx.section == sectionWorkflow {
			ctx.push(modeWfOutput)
		}
	case hookUnescape:
		text = unquote(text)
	}
	ctx.terminals = append(ctx.terminals, ast.NewTerminal(a.terminal, text, ctx.resource, line, col))
}

func (ctx *context) top() string {
	return ctx.stack[len(ctx.stack)-1]
}

func (ctx *context) push(mode string) {
	ctx.stack = append(ctx.stack, mode)
}

func (ctx *context) advance(text string) {
	ctx.line, ctx.col = position(text, ctx.line, ctx.col)
	ctx.pos += len(text)
}

// position returns the line and column reached after text when starting at
// line and col. Columns count characters.
func position(text string, line, col int) (int, int) {
	for _, r := range text {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func (ctx *context) unrecognized() *ast.Error {
	rest := ctx.source[ctx.pos:]
	snippet := rest
	if i := strings.IndexAny(snippet, " \t\r\n"); i >= 0 {
		snippet = snippet[:i]
	}
	if len(snippet) > 20 {
		snippet = snippet[:20] + "..."
	}
	return ctx.errorf("unrecognized token %q in %v mode", snippet, ctx.top())
}

func (ctx *context) errorf(f string, a ...interface{}) *ast.Error {
	err := ast.NewError(ast.LexErr, ast.NewLocation([]byte(ctx.currentLine()), ctx.resource, ctx.line, ctx.col), f, a...)
	err.Details = &ast.SourceDetail{Line: ctx.currentLine(), Column: ctx.col}
	return err
}

func (ctx *context) currentLine() string {
	start := strings.LastIndexByte(ctx.source[:ctx.pos], '\n') + 1
	end := strings.IndexByte(ctx.source[ctx.pos:], '\n')
	if end < 0 {
		return ctx.source[start:]
	}
	return ctx.source[start : ctx.pos+end]
}

// Kinds returns the kinds of terminals in order.
func Kinds(ts []*ast.Terminal) []tokens.Kind {
	ks := make([]tokens.Kind, len(ts))
	for i, t := range ts {
		ks[i] = t.Kind
	}
	return ks
}

// String returns one line per terminal with its position, kind and text, for
// debugging.
func String(ts []*ast.Terminal) string {
	var sb strings.Builder
	for _, t := range ts {
		fmt.Fprintf(&sb, "%d:%d %v %q\n", t.Line, t.Col, t.Kind, t.Text)
	}
	return sb.String()
}
