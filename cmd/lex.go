// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/cmd/formats"
	"github.com/wdltools/wdl/cmd/internal/env"
	pr "github.com/wdltools/wdl/internal/presentation"
	"github.com/wdltools/wdl/lexer"
	"github.com/wdltools/wdl/loader"
	"github.com/wdltools/wdl/util"
)

type lexParams struct {
	format      *util.EnumFlag
	prettyLimit int
}

func newLexFormat() *util.EnumFlag {
	return formats.Flag(formats.Pretty, formats.JSON)
}

var configuredLexParams = lexParams{
	format: newLexFormat(),
}

var lexCommand = &cobra.Command{
	Use:   "lex <path>",
	Short: "Lex a workflow source file",
	Long: `Lex a workflow source file and print its terminals.

The pretty format prints a table of positions, kinds and text. The path -
reads standard input.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("specify exactly one source file")
		}
		return env.CmdFlags.CheckEnvironmentVariables(cmd)
	},
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(lex(args, &configuredLexParams, os.Stdin, os.Stdout, os.Stderr))
	},
}

func lex(args []string, params *lexParams, stdin io.Reader, stdout, stderr io.Writer) int {
	format := params.format.String()

	name, bs, err := readSource(args[0], stdin)
	if err != nil {
		reportErrors(stderr, err, format)
		return 1
	}

	ts, err := lexer.Lex(string(bs), name)
	if err != nil {
		reportErrors(stderr, err, format)
		return 1
	}

	switch format {
	case formats.JSON:
		if ts == nil {
			ts = []*ast.Terminal{}
		}
		err = pr.JSON(stdout, ts)
	default:
		err = pr.Tokens(stdout, ts, params.prettyLimit)
	}
	if err != nil {
		reportErrors(stderr, err, format)
		return 1
	}
	return 0
}

func readSource(path string, stdin io.Reader) (string, []byte, error) {
	if path == "-" {
		bs, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, pkgerrors.Wrap(err, "failed to read standard input")
		}
		return stdinName, bs, nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return "", nil, pkgerrors.Wrap(err, "failed to load")
	}
	return loader.CleanPath(path), bs, nil
}

func init() {
	addOutputFormat(lexCommand.Flags(), configuredLexParams.format)
	addPrettyLimit(lexCommand.Flags(), &configuredLexParams.prettyLimit, 40)
	RootCommand.AddCommand(lexCommand)
}
