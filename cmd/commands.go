// Copyright 2016 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package cmd contains the commands of the wdl tool.
package cmd

import (
	"io"
	"os"
	"path"

	"github.com/spf13/cobra"

	internal_logging "github.com/wdltools/wdl/internal/logging"
	"github.com/wdltools/wdl/logging"
	"github.com/wdltools/wdl/util"
)

// RootCommand is the base CLI command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:   path.Base(os.Args[0]),
	Short: "Workflow Description Language tools",
	Long:  "Lex and parse workflow (WDL) documents and inspect their syntax trees.",
}

type rootParams struct {
	logLevel  *util.EnumFlag
	logFormat *util.EnumFlag
}

var configuredRootParams = rootParams{
	logLevel:  util.NewEnumFlag("info", []string{"debug", "info", "warn", "error"}),
	logFormat: util.NewEnumFlag("text", []string{"text", "json", "json-pretty"}),
}

// newLogger returns a logger writing to w configured from the global flags.
func newLogger(w io.Writer, params rootParams) logging.Logger {
	l, err := internal_logging.NewLogger(w, params.logLevel.String(), params.logFormat.String())
	if err != nil {
		return logging.NewNoOpLogger()
	}
	return l
}

func init() {
	RootCommand.PersistentFlags().VarP(configuredRootParams.logLevel, "log-level", "l", "set log level")
	RootCommand.PersistentFlags().Var(configuredRootParams.logFormat, "log-format", "set log format")
}
