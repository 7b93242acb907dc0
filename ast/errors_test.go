// Copyright 2016 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestErrorsString(t *testing.T) {

	err := Errors{
		NewError(LexErr, nil, "blah"),
		NewError(UnexpectedSymbolErr, NewLocation(nil, "", 100, 2), "bleh"),
		NewError(NoMoreTokensErr, NewLocation(nil, "foo.wdl", 100, 2), "blarg"),
	}

	expected := `3 errors occurred:
lex_error: blah
100:2: unexpected_symbol: bleh
foo.wdl:100:2: no_more_tokens: blarg`
	result := err.Error()

	if result != expected {
		t.Errorf("Expected %v but got: %v", expected, result)
	}

	err = Errors{NewError(ExcessTokensErr, nil, "blah")}
	expected = `1 error occurred: excess_tokens: blah`
	result = err.Error()

	if result != expected {
		t.Errorf("Expected %v but got: %v", expected, result)
	}

	expected = `no error(s)`
	result = Errors{}.Error()
	if result != expected {
		t.Errorf("Expected %v but got: %v", expected, result)
	}

}

func TestErrorDetails(t *testing.T) {

	err := NewError(LexErr, NewLocation(nil, "x.wdl", 2, 5), "unrecognized token")
	err.Details = &SourceDetail{Line: "\tfoo @ bar", Column: 6}

	expected := "x.wdl:2:5: lex_error: unrecognized token\n\t\tfoo @ bar\n\t\t    ^"
	if err.Error() != expected {
		t.Fatalf("Expected:\n%q\n\nGot:\n%q", expected, err.Error())
	}

	bs, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatal(jsonErr)
	}

	exp := `{"code":"lex_error","message":"unrecognized token","location":{"file":"x.wdl","row":2,"col":5},"details":{"line":"\tfoo @ bar","column":6}}`
	if string(bs) != exp {
		t.Fatalf("Expected %v but got %v", exp, string(bs))
	}
}

func TestIsError(t *testing.T) {
	tests := []struct {
		note string
		code ErrCode
		err  error
		exp  bool
	}{
		{"single", UnexpectedEOFErr, NewError(UnexpectedEOFErr, nil, "x"), true},
		{"single mismatch", UnexpectedEOFErr, NewError(LexErr, nil, "x"), false},
		{"errors", InvalidTerminalErr, Errors{NewError(LexErr, nil, "x"), NewError(InvalidTerminalErr, nil, "y")}, true},
		{"other", LexErr, errors.New("x"), false},
		{"nil", LexErr, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			if IsError(tc.code, tc.err) != tc.exp {
				t.Fatalf("Expected %v for %v", tc.exp, tc.err)
			}
		})
	}
}

func TestErrCodeString(t *testing.T) {
	if ErrCode(42).String() != "unknown_error" {
		t.Fatal("expected unknown code")
	}
	if InvalidTerminalErr.String() != "invalid_terminal" {
		t.Fatal("unexpected code name")
	}
}
