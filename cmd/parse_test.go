// Copyright 2018 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wdltools/wdl/loader"
	"github.com/wdltools/wdl/util/test"
)

func parseParamsWithFormat(t *testing.T, format string) *parseParams {
	t.Helper()
	params := newParseParams()
	if err := params.format.Set(format); err != nil {
		t.Fatal(err)
	}
	return &params
}

func TestParseExprFormats(t *testing.T) {
	tests := []struct {
		note   string
		format string
		input  string
		exp    string
	}{
		{
			note:   "compact",
			format: "compact",
			input:  "1 + 2",
			exp:    "(Add: lhs=<:1:1 integer \"1\">, rhs=<:1:5 integer \"2\">)\n",
		},
		{
			note:   "pretty",
			format: "pretty",
			input:  "1+2",
			exp: `(Add:
  lhs=<:1:1 integer "1">,
  rhs=<:1:3 integer "2">
)
`,
		},
		{
			note:   "json",
			format: "json",
			input:  "x",
			exp: `{
  "terminal": "identifier",
  "resource": "",
  "source_string": "x",
  "line": 1,
  "col": 1
}
`,
		},
		{
			note:   "yaml",
			format: "yaml",
			input:  "!b",
			exp: `attributes:
  expression:
    col: 2
    line: 1
    resource: ""
    source_string: b
    terminal: identifier
type: LogicalNot
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			params := parseParamsWithFormat(t, tc.format)
			params.expr = true

			var stdout, stderr bytes.Buffer
			if code := parse(context.Background(), []string{tc.input}, params, nil, &stdout, &stderr); code != 0 {
				t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
			}
			if stdout.String() != tc.exp {
				t.Fatalf("expected:\n%s\ngot:\n%s", tc.exp, stdout.String())
			}
		})
	}
}

func TestParseExprTree(t *testing.T) {
	params := parseParamsWithFormat(t, "tree")
	params.expr = true

	var stdout, stderr bytes.Buffer
	if code := parse(context.Background(), []string{"a", "*", "b"}, params, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
	}
	for _, exp := range []string{"(e:", `<:1:3 asterisk "*">`, `<:1:5 identifier "b">`} {
		if !strings.Contains(stdout.String(), exp) {
			t.Fatalf("expected %q in:\n%s", exp, stdout.String())
		}
	}
}

func TestParseFiles(t *testing.T) {
	files := map[string]string{
		"/a.wdl":         "task t {}",
		"/sub/b.wdl":     "workflow w {}",
		"/.hidden/c.wdl": "task {",
	}

	test.WithTempFS(files, func(rootDir string) {
		params := parseParamsWithFormat(t, "compact")
		params.ignore = []string{".*"}

		var stdout, stderr bytes.Buffer
		if code := parse(context.Background(), []string{rootDir}, params, nil, &stdout, &stderr); code != 0 {
			t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
		}

		a := loader.CleanPath(filepath.Join(rootDir, "a.wdl"))
		b := loader.CleanPath(filepath.Join(rootDir, "sub", "b.wdl"))
		exp := fmt.Sprintf(`# %[1]s
(Namespace: imports=[], body=[(Task: name=<%[1]s:1:6 identifier "t">, declarations=[], sections=[])])

# %[2]s
(Namespace: imports=[], body=[(Workflow: name=<%[2]s:1:10 identifier "w">, body=[])])
`, a, b)
		if stdout.String() != exp {
			t.Fatalf("expected:\n%s\ngot:\n%s", exp, stdout.String())
		}
	})
}

func TestParseFilesJSON(t *testing.T) {
	files := map[string]string{
		"/a.wdl": "task t {}",
		"/b.wdl": "task u {}",
	}

	test.WithTempFS(files, func(rootDir string) {
		params := parseParamsWithFormat(t, "json")

		var stdout, stderr bytes.Buffer
		if code := parse(context.Background(), []string{rootDir}, params, nil, &stdout, &stderr); code != 0 {
			t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
		}

		var out map[string]struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
			t.Fatal(err)
		}
		if len(out) != 2 {
			t.Fatalf("expected two documents but got %v", stdout.String())
		}
		for name, doc := range out {
			if doc.Type != "Namespace" {
				t.Fatalf("expected namespace for %v but got %v", name, doc.Type)
			}
		}
	})
}

func TestParseStdin(t *testing.T) {
	params := parseParamsWithFormat(t, "compact")

	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("task t {}")
	if code := parse(context.Background(), []string{"-"}, params, stdin, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
	}

	exp := "(Namespace: imports=[], body=[(Task: name=<stdin:1:6 identifier \"t\">, declarations=[], sections=[])])\n"
	if stdout.String() != exp {
		t.Fatalf("expected:\n%s\ngot:\n%s", exp, stdout.String())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		note   string
		format string
		expr   bool
		input  string
		exp    string
	}{
		{
			note:   "pretty",
			format: "pretty",
			input:  "task t {",
			exp:    "1 error occurred: stdin:1:8: no_more_tokens: no more tokens while parsing task, expected rbrace\n",
		},
		{
			note:   "json",
			format: "json",
			input:  "task t {",
			exp: `{
  "errors": [
    {
      "message": "no more tokens while parsing task, expected rbrace",
      "code": "no_more_tokens",
      "location": {
        "file": "stdin",
        "row": 1,
        "col": 8
      }
    }
  ]
}
`,
		},
		{
			note:   "expression eof",
			format: "compact",
			expr:   true,
			input:  "1 +",
			exp:    "1 error occurred: 1:3: unexpected_eof: unexpected end of input",
		},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			params := parseParamsWithFormat(t, tc.format)
			params.expr = tc.expr

			args := []string{"-"}
			if tc.expr {
				args = []string{tc.input}
			}

			var stdout, stderr bytes.Buffer
			code := parse(context.Background(), args, params, strings.NewReader(tc.input), &stdout, &stderr)
			if code != 1 {
				t.Fatalf("expected exit code 1 but got %d", code)
			}
			if stdout.Len() != 0 {
				t.Fatalf("expected no output but got %s", stdout.String())
			}
			if !strings.HasPrefix(stderr.String(), tc.exp) {
				t.Fatalf("expected:\n%s\ngot:\n%s", tc.exp, stderr.String())
			}
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	params := parseParamsWithFormat(t, "pretty")

	var stdout, stderr bytes.Buffer
	code := parse(context.Background(), []string{"does-not-exist.wdl"}, params, nil, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1 but got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to load") || !strings.Contains(stderr.String(), "does-not-exist.wdl") {
		t.Fatalf("unexpected error output %q", stderr.String())
	}
}

func TestParseMetrics(t *testing.T) {
	params := parseParamsWithFormat(t, "compact")
	params.metrics = true

	var stdout, stderr bytes.Buffer
	code := parse(context.Background(), []string{"-"}, params, strings.NewReader("task t {}"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
	}
	for _, exp := range []string{"Metric", "timer_wdl_parse_ns", "counter_wdl_tokens", "histogram_wdl_file_size_count"} {
		if !strings.Contains(stderr.String(), exp) {
			t.Errorf("expected %q in:\n%s", exp, stderr.String())
		}
	}
}

func TestParseMetricsJSON(t *testing.T) {
	params := parseParamsWithFormat(t, "json")
	params.metrics = true
	params.expr = true

	var stdout, stderr bytes.Buffer
	if code := parse(context.Background(), []string{"1"}, params, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
	}

	var out struct {
		Metrics map[string]any `json:"metrics"`
	}
	if err := json.Unmarshal(stderr.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Metrics["counter_wdl_tokens"] != float64(1) {
		t.Fatalf("expected one token but got %v", out.Metrics)
	}
}

func TestParseWatchConflicts(t *testing.T) {
	tests := []struct {
		note string
		expr bool
		args []string
		exp  string
	}{
		{note: "expr", expr: true, args: []string{"1"}, exp: "--watch cannot be combined with --expr"},
		{note: "stdin", args: []string{"-"}, exp: "--watch cannot be combined with standard input"},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			params := parseParamsWithFormat(t, "pretty")
			params.watch = true
			params.expr = tc.expr

			var stdout, stderr bytes.Buffer
			if code := parse(context.Background(), tc.args, params, nil, &stdout, &stderr); code != 1 {
				t.Fatalf("expected exit code 1 but got %d", code)
			}
			if !strings.Contains(stderr.String(), tc.exp) {
				t.Fatalf("expected %q in %q", tc.exp, stderr.String())
			}
		})
	}
}

func TestParseWatchStopsOnCancel(t *testing.T) {
	test.WithTempFS(map[string]string{"/a.wdl": "task t {}"}, func(rootDir string) {
		params := parseParamsWithFormat(t, "compact")
		params.watch = true

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var stdout, stderr bytes.Buffer
		if code := parse(ctx, []string{rootDir}, params, nil, &stdout, &stderr); code != 0 {
			t.Fatalf("expected exit code 0 but got %d: %s", code, stderr.String())
		}
		if !strings.Contains(stdout.String(), `identifier "t"`) {
			t.Fatalf("expected initial parse output but got %q", stdout.String())
		}
	})
}

func TestParseNoArgs(t *testing.T) {
	params := newParseParams()
	if code := parse(context.Background(), nil, &params, nil, nil, nil); code != 0 {
		t.Fatalf("expected exit code 0 but got %d", code)
	}
}
