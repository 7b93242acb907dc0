// Copyright 2022 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package env

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

type mockArgs struct {
	IntFlag  int
	StrFlag  string
	BoolFlag bool
}

func (a *mockArgs) run(writer io.Writer) func(*cobra.Command, []string) {
	return func(*cobra.Command, []string) {
		fmt.Fprintf(writer, "%v; %v; %v", a.IntFlag, a.StrFlag, a.BoolFlag)
	}
}

func mockCmds(writer io.Writer) (*cobra.Command, *cobra.Command) {
	var rootArgs, childArgs mockArgs
	preRun := func(cmd *cobra.Command, _ []string) error {
		return CmdFlags.CheckEnvironmentVariables(cmd)
	}

	root := &cobra.Command{Use: "wdl", PreRunE: preRun, Run: rootArgs.run(writer)}
	root.Flags().IntVarP(&rootArgs.IntFlag, "int", "i", 0, "set int")

	child := &cobra.Command{Use: "child", PreRunE: preRun, Run: childArgs.run(writer)}
	child.Flags().IntVarP(&childArgs.IntFlag, "second-int", "i", 100, "set int")
	child.Flags().StringVarP(&childArgs.StrFlag, "second-string", "s", "child-string", "set string")
	child.Flags().BoolVarP(&childArgs.BoolFlag, "second-bool", "b", true, "set bool")
	root.AddCommand(child)

	return root, child
}

func TestCheckEnvironmentVariables(t *testing.T) {
	tests := []struct {
		note  string
		env   map[string]string
		child bool
		args  []string
		exp   string
		err   string
	}{
		{
			note: "root defaults",
			exp:  "0; ; false",
		},
		{
			note: "root env",
			env:  map[string]string{"WDL_INT": "3"},
			exp:  "3; ; false",
		},
		{
			note:  "child defaults",
			child: true,
			exp:   "100; child-string; true",
		},
		{
			note:  "child env with dashes",
			child: true,
			env: map[string]string{
				"WDL_CHILD_SECOND_INT":    "7",
				"WDL_CHILD_SECOND_STRING": "from-env",
				"WDL_CHILD_SECOND_BOOL":   "false",
			},
			exp: "7; from-env; false",
		},
		{
			note:  "root prefix ignored by child",
			child: true,
			env:   map[string]string{"WDL_SECOND_INT": "7"},
			exp:   "100; child-string; true",
		},
		{
			note:  "command line wins",
			child: true,
			env:   map[string]string{"WDL_CHILD_SECOND_INT": "7"},
			args:  []string{"--second-int", "9"},
			exp:   "9; child-string; true",
		},
		{
			note:  "invalid value",
			child: true,
			env:   map[string]string{"WDL_CHILD_SECOND_INT": "seven"},
			err:   errorMessagePrefix,
		},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			var buf bytes.Buffer
			root, child := mockCmds(&buf)
			cmd := root
			if tc.child {
				cmd = child
			}
			if err := cmd.ParseFlags(tc.args); err != nil {
				t.Fatal(err)
			}

			err := cmd.PreRunE(cmd, nil)
			if tc.err != "" {
				if err == nil || !strings.Contains(err.Error(), tc.err) {
					t.Fatalf("expected error containing %q but got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			cmd.Run(cmd, nil)
			if buf.String() != tc.exp {
				t.Fatalf("expected %q but got %q", tc.exp, buf.String())
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	root, child := mockCmds(io.Discard)
	if got := Prefix(root); got != "WDL" {
		t.Fatalf("expected WDL but got %v", got)
	}
	if got := Prefix(child); got != "WDL_CHILD" {
		t.Fatalf("expected WDL_CHILD but got %v", got)
	}
}
