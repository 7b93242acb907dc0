// Copyright 2025 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package formats names the output formats of the commands.
package formats

import (
	"github.com/wdltools/wdl/util"
)

type option = string

const (
	Pretty  option = "pretty"
	Compact option = "compact"
	JSON    option = "json"
	YAML    option = "yaml"
	Tree    option = "tree"
)

// Flag returns an enum flag for the given formats, where the first provided
// format will be used as the default format.
func Flag(formats ...option) *util.EnumFlag {
	return util.NewEnumFlag(formats[0], formats)
}

// MachineReadable returns true if errors for format should be reported as
// JSON.
func MachineReadable(format string) bool {
	return format == JSON || format == YAML
}
