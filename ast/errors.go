// Copyright 2016 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"fmt"
	"strings"
)

// Errors represents a series of errors encountered during lexing or parsing.
type Errors []*Error

func (e Errors) Error() string {

	if len(e) == 0 {
		return "no error(s)"
	}

	if len(e) == 1 {
		return fmt.Sprintf("1 error occurred: %v", e[0].Error())
	}

	s := make([]string, len(e))
	for i, err := range e {
		s[i] = err.Error()
	}

	return fmt.Sprintf("%d errors occurred:\n%s", len(e), strings.Join(s, "\n"))
}

// ErrCode defines the types of errors returned during lexing and parsing.
type ErrCode int

const (
	// LexErr indicates no lexical pattern matched the source.
	LexErr ErrCode = iota

	// UnexpectedEOFErr indicates the input ended where a construct was
	// required.
	UnexpectedEOFErr

	// ExcessTokensErr indicates a complete document was followed by more
	// tokens.
	ExcessTokensErr

	// UnexpectedSymbolErr indicates a token that no applicable rule accepts.
	UnexpectedSymbolErr

	// NoMoreTokensErr indicates the input ended while a specific terminal was
	// expected.
	NoMoreTokensErr

	// InvalidTerminalErr indicates a token whose kind is outside of the
	// grammar's terminal range.
	InvalidTerminalErr
)

var errCodeNames = [...]string{
	LexErr:              "lex_error",
	UnexpectedEOFErr:    "unexpected_eof",
	ExcessTokensErr:     "excess_tokens",
	UnexpectedSymbolErr: "unexpected_symbol",
	NoMoreTokensErr:     "no_more_tokens",
	InvalidTerminalErr:  "invalid_terminal",
}

func (c ErrCode) String() string {
	if c < 0 || int(c) >= len(errCodeNames) {
		return "unknown_error"
	}
	return errCodeNames[c]
}

// MarshalJSON encodes the code by name.
func (c ErrCode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// IsError returns true if err is an AST error with code.
func IsError(code ErrCode, err error) bool {
	switch err := err.(type) {
	case *Error:
		return err.Code == code
	case Errors:
		for _, e := range err {
			if e.Code == code {
				return true
			}
		}
	}
	return false
}

// ErrorDetails defines the interface for detailed error messages.
type ErrorDetails interface {
	Lines() []string
}

// Error represents a single error caught during lexing or parsing.
type Error struct {
	Code     ErrCode      `json:"code"`
	Message  string       `json:"message"`
	Location *Location    `json:"location,omitempty"`
	Details  ErrorDetails `json:"details,omitempty"`
}

func (e *Error) Error() string {

	var prefix string

	if e.Location != nil {
		prefix = e.Location.String()
	}

	msg := fmt.Sprintf("%v: %v", e.Code, e.Message)

	if len(prefix) > 0 {
		msg = prefix + ": " + msg
	}

	if e.Details != nil {
		for _, line := range e.Details.Lines() {
			msg += "\n\t" + line
		}
	}

	return msg
}

// NewError returns a new Error object.
func NewError(code ErrCode, loc *Location, f string, a ...interface{}) *Error {
	return &Error{
		Code:     code,
		Location: loc,
		Message:  fmt.Sprintf(f, a...),
	}
}

// SourceDetail reproduces the offending source line with a caret under the
// column of the error.
type SourceDetail struct {
	Line   string `json:"line"`
	Column int    `json:"column"`
}

// Lines returns the string representation of the detail.
func (d *SourceDetail) Lines() []string {
	// Tabs are kept so the caret lines up in a terminal.
	pad := make([]byte, 0, d.Column)
	for i := 0; i < d.Column-1 && i < len(d.Line); i++ {
		if d.Line[i] == '\t' {
			pad = append(pad, '\t')
		} else {
			pad = append(pad, ' ')
		}
	}
	for i := len(pad); i < d.Column-1; i++ {
		pad = append(pad, ' ')
	}
	return []string{d.Line, string(pad) + "^"}
}
