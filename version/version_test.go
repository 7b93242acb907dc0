// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package version

import (
	"runtime/debug"
	"testing"
)

func TestFromBuildSettings(t *testing.T) {
	tests := []struct {
		note     string
		settings []debug.BuildSetting
		vcs      string
		ts       string
	}{
		{note: "none"},
		{
			note: "clean",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				{Key: "vcs.modified", Value: "false"},
			},
			vcs: "abc123",
			ts:  "2026-01-02T03:04:05Z",
		},
		{
			note: "dirty",
			settings: []debug.BuildSetting{
				{Key: "vcs.modified", Value: "true"},
				{Key: "vcs.revision", Value: "abc123"},
			},
			vcs: "abc123-dirty",
		},
		{
			note:     "dirty without revision",
			settings: []debug.BuildSetting{{Key: "vcs.modified", Value: "true"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			vcs, ts := fromBuildSettings(tc.settings)
			if vcs != tc.vcs || ts != tc.ts {
				t.Fatalf("expected (%q, %q) but got (%q, %q)", tc.vcs, tc.ts, vcs, ts)
			}
		})
	}
}
