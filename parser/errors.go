// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"strings"

	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/internal/levenshtein"
	"github.com/wdltools/wdl/tokens"
)

// ErrorFormatter renders the message of each syntax error the parser can
// report. The parser attaches the error code and location itself.
type ErrorFormatter interface {
	// UnexpectedEOF is called when the input ends where nt requires more
	// tokens.
	UnexpectedEOF(nt string, expected []tokens.Kind, rules []string) string

	// ExcessTokens is called when nt was parsed completely but t remains.
	ExcessTokens(nt string, t *ast.Terminal) string

	// UnexpectedSymbol is called when actual cannot continue rule.
	UnexpectedSymbol(nt string, actual *ast.Terminal, expected []tokens.Kind, rule string) string

	// NoMoreTokens is called when the input ends while expected was
	// required. last is the final terminal of the input, or nil.
	NoMoreTokens(nt string, expected tokens.Kind, last *ast.Terminal) string

	// InvalidTerminal is called when t has a kind outside of the grammar.
	InvalidTerminal(nt string, t *ast.Terminal) string
}

// DefaultFormatter is the ErrorFormatter used unless another is set.
type DefaultFormatter struct{}

// UnexpectedEOF implements ErrorFormatter.
func (DefaultFormatter) UnexpectedEOF(nt string, expected []tokens.Kind, _ []string) string {
	return fmt.Sprintf("unexpected end of input while parsing %s, expected %s", nt, oneOf(expected))
}

// ExcessTokens implements ErrorFormatter.
func (DefaultFormatter) ExcessTokens(nt string, t *ast.Terminal) string {
	return fmt.Sprintf("finished parsing %s without consuming all tokens, found %v %q", nt, t.Kind, t.Text) + didYouMean(t)
}

// UnexpectedSymbol implements ErrorFormatter.
func (DefaultFormatter) UnexpectedSymbol(nt string, actual *ast.Terminal, expected []tokens.Kind, _ string) string {
	return fmt.Sprintf("unexpected %v %q while parsing %s, expected %s", actual.Kind, actual.Text, nt, oneOf(expected)) + didYouMean(actual)
}

// NoMoreTokens implements ErrorFormatter.
func (DefaultFormatter) NoMoreTokens(nt string, expected tokens.Kind, _ *ast.Terminal) string {
	return fmt.Sprintf("no more tokens while parsing %s, expected %v", nt, expected)
}

// InvalidTerminal implements ErrorFormatter.
func (DefaultFormatter) InvalidTerminal(nt string, t *ast.Terminal) string {
	return fmt.Sprintf("invalid terminal kind %d while parsing %s", int(t.Kind), nt)
}

func oneOf(kinds []tokens.Kind) string {
	switch len(kinds) {
	case 0:
		return "nothing"
	case 1:
		return kinds[0].String()
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "one of: " + strings.Join(names, ", ")
}

// didYouMean suggests a keyword for identifiers that look like misspelled
// keywords.
func didYouMean(t *ast.Terminal) string {
	if t.Kind != tokens.Identifier {
		return ""
	}
	if s := levenshtein.Suggest(t.Text, tokens.Keywords()); s != "" {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}
	return ""
}
