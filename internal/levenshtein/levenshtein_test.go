// Copyright 2025 The OPA Authors
// SPDX-License-Identifier: Apache-2.0

package levenshtein

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClosestStrings(t *testing.T) {
	keywords := []string{"workflow", "task", "call", "command", "scatter", "runtime"}

	tests := []struct {
		note string
		in   string
		exp  []string
	}{
		{note: "one edit", in: "tsk", exp: []string{"task"}},
		{note: "case insensitive", in: "WorkFlow", exp: []string{"workflow"}},
		{note: "transposition", in: "scatetr", exp: []string{"scatter"}},
		{note: "too far", in: "banana", exp: []string{}},
		{note: "tie", in: "cal", exp: []string{"call"}},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			got := ClosestStrings(3, tc.in, slices.Values(keywords))
			if diff := cmp.Diff(tc.exp, got); diff != "" {
				t.Fatalf("unexpected suggestions (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	keywords := []string{"input", "output", "runtime"}

	if got := Suggest("ouput", keywords); got != "output" {
		t.Fatalf("expected output but got %q", got)
	}
	if got := Suggest("output", keywords); got != "" {
		t.Fatalf("expected no suggestion for exact match but got %q", got)
	}
	if got := Suggest("zzzzzzzz", keywords); got != "" {
		t.Fatalf("expected no suggestion but got %q", got)
	}
}

func TestSuggestEditLimit(t *testing.T) {
	tests := []struct {
		note       string
		in         string
		candidates []string
		exp        string
	}{
		{note: "single letter", in: "a", candidates: []string{"as", "if", "in"}, exp: ""},
		{note: "extra letter", in: "iff", candidates: []string{"if"}, exp: "if"},
		{note: "two letters two edits", in: "ax", candidates: []string{"in"}, exp: ""},
		{note: "three letters one edit", in: "cal", candidates: []string{"call", "task"}, exp: "call"},
		{note: "three letters two edits", in: "cll", candidates: []string{"scatter", "calls"}, exp: ""},
		{note: "long word two edits", in: "wrkflw", candidates: []string{"workflow"}, exp: "workflow"},
		{note: "long word three edits", in: "wrkfl", candidates: []string{"workflow"}, exp: ""},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			if got := Suggest(tc.in, tc.candidates); got != tc.exp {
				t.Fatalf("expected %q but got %q", tc.exp, got)
			}
		})
	}
}
