// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wdltools/wdl/loader"
	"github.com/wdltools/wdl/util/test"
)

func lexParamsWithFormat(t *testing.T, format string) *lexParams {
	t.Helper()
	params := &lexParams{format: newLexFormat()}
	if err := params.format.Set(format); err != nil {
		t.Fatal(err)
	}
	return params
}

func TestLexJSON(t *testing.T) {
	test.WithTempFS(map[string]string{"/a.wdl": "task t {\n}"}, func(rootDir string) {
		path := filepath.Join(rootDir, "a.wdl")

		var stdout, stderr bytes.Buffer
		if code := lex([]string{path}, lexParamsWithFormat(t, "json"), nil, &stdout, &stderr); code != 0 {
			t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
		}

		type terminal struct {
			Terminal     string `json:"terminal"`
			Resource     string `json:"resource"`
			SourceString string `json:"source_string"`
			Line         int    `json:"line"`
			Col          int    `json:"col"`
		}
		var got []terminal
		if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
			t.Fatal(err)
		}

		name := loader.CleanPath(path)
		exp := []terminal{
			{Terminal: "task", Resource: name, SourceString: "task", Line: 1, Col: 1},
			{Terminal: "identifier", Resource: name, SourceString: "t", Line: 1, Col: 6},
			{Terminal: "lbrace", Resource: name, SourceString: "{", Line: 1, Col: 8},
			{Terminal: "rbrace", Resource: name, SourceString: "}", Line: 2, Col: 1},
		}
		if diff := cmp.Diff(exp, got); diff != "" {
			t.Fatalf("unexpected terminals (-want, +got):\n%s", diff)
		}
	})
}

func TestLexEmptyJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := lex([]string{"-"}, lexParamsWithFormat(t, "json"), strings.NewReader("# nothing\n"), &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
	}
	if exp := "[]\n"; stdout.String() != exp {
		t.Fatalf("expected %q but got %q", exp, stdout.String())
	}
}

func TestLexPretty(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := lex([]string{"-"}, lexParamsWithFormat(t, "pretty"), strings.NewReader(`String s = "hi"`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
	}
	for _, exp := range []string{"Kind", "type", "identifier", "equal", "string", `"hi"`} {
		if !strings.Contains(stdout.String(), exp) {
			t.Errorf("expected %q in:\n%s", exp, stdout.String())
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		note   string
		format string
		args   []string
		stdin  string
		exp    string
	}{
		{
			note:   "lex error",
			format: "pretty",
			args:   []string{"-"},
			stdin:  "task @",
			exp:    "1 error occurred: stdin:1:6: lex_error: unrecognized token \"@\" in default mode\n\ttask @\n\t     ^\n",
		},
		{
			note:   "lex error json",
			format: "json",
			args:   []string{"-"},
			stdin:  "task @",
			exp:    `"code": "lex_error"`,
		},
		{
			note:   "missing file",
			format: "pretty",
			args:   []string{"does-not-exist.wdl"},
			exp:    "failed to load: open does-not-exist.wdl",
		},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := lex(tc.args, lexParamsWithFormat(t, tc.format), strings.NewReader(tc.stdin), &stdout, &stderr)
			if code != 1 {
				t.Fatalf("expected exit code 1 but got %d", code)
			}
			if !strings.Contains(stderr.String(), tc.exp) {
				t.Fatalf("expected %q in:\n%s", tc.exp, stderr.String())
			}
		})
	}
}
