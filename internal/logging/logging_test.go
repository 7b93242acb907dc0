// Copyright 2021 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/wdltools/wdl/logging"
)

func TestGetLevel(t *testing.T) {
	tests := []struct {
		note  string
		input string
		exp   logging.Level
		err   bool
	}{
		{note: "empty", input: "", exp: logging.Info},
		{note: "debug", input: "debug", exp: logging.Debug},
		{note: "upper", input: "WARN", exp: logging.Warn},
		{note: "error", input: "error", exp: logging.Error},
		{note: "invalid", input: "loud", err: true},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			lvl, err := GetLevel(tc.input)
			if tc.err {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lvl != tc.exp {
				t.Fatalf("expected %v but got %v", tc.exp, lvl)
			}
		})
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter("text", "").(*prettyFormatter); !ok {
		t.Fatal("expected pretty formatter for text")
	}
	if f, ok := GetFormatter("json-pretty", "").(*logrus.JSONFormatter); !ok || !f.PrettyPrint {
		t.Fatal("expected pretty json formatter")
	}
	if f, ok := GetFormatter("json", "").(*logrus.JSONFormatter); !ok || f.PrettyPrint {
		t.Fatal("expected json formatter")
	}
}

func TestPrettyFormatterNoFields(t *testing.T) {
	e := logrus.NewEntry(logrus.StandardLogger())
	e.Message = "test"
	e.Level = logrus.InfoLevel

	out, err := (&prettyFormatter{}).Format(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp := "[INFO] test\n\n"; string(out) != exp {
		t.Fatalf("expected %q but got %q", exp, string(out))
	}
}

func TestPrettyFormatterFields(t *testing.T) {
	e := logrus.WithFields(logrus.Fields{
		"tokens": 5,
		"file":   "a.wdl",
		"nil":    nil,
		"source": "task t {\n}",
		"json":   `{"a":1}`,
	})
	e.Message = "parsed"
	e.Level = logrus.DebugLevel

	out, err := (&prettyFormatter{}).Format(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp := strings.Join([]string{
		"[DEBUG] parsed",
		`  file = "a.wdl"`,
		"  json = |",
		"      {",
		`        "a": 1`,
		"      }",
		"  nil = null",
		"  source = |",
		"      task t {",
		"      }",
		"  tokens = 5",
		"",
		"",
	}, "\n")
	if string(out) != exp {
		t.Fatalf("expected:\n%s\ngot:\n%s", exp, string(out))
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Info("dropped")
	l.Warn("kept %d", 1)

	if exp := "[WARNING] kept 1\n\n"; buf.String() != exp {
		t.Fatalf("expected %q but got %q", exp, buf.String())
	}

	if _, err := NewLogger(&buf, "loud", "text"); err == nil {
		t.Fatal("expected error")
	}
}
