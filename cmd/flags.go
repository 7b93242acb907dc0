// Copyright 2017 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/pflag"

	"github.com/wdltools/wdl/util"
)

func addOutputFormat(fs *pflag.FlagSet, outputFormat *util.EnumFlag) {
	fs.VarP(outputFormat, "format", "f", "set output format")
}

func addMetricsFlag(fs *pflag.FlagSet, metrics *bool, value bool) {
	fs.BoolVarP(metrics, "metrics", "", value, "report lexing and parsing performance metrics")
}

func addWatchFlag(fs *pflag.FlagSet, watch *bool, value bool) {
	fs.BoolVarP(watch, "watch", "w", value, "watch the given paths and reparse on changes")
}

func addExprFlag(fs *pflag.FlagSet, expr *bool, value bool) {
	fs.BoolVarP(expr, "expr", "e", value, "treat the argument as an expression instead of a path")
}

func setIgnore(fs *pflag.FlagSet, ignoreNames *[]string) {
	fs.StringSliceVarP(ignoreNames, "ignore", "", []string{}, "set file and directory names to ignore during loading (e.g., '.*' excludes hidden files)")
}

func addPrettyLimit(fs *pflag.FlagSet, limit *int, value int) {
	fs.IntVarP(limit, "pretty-limit", "", value, "set limit after which pretty output gets truncated (0 disables truncation)")
}
