// Copyright 2022 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package env maps WDL_* environment variables onto command flags.
package env

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type cmdFlags interface {
	CheckEnvironmentVariables(command *cobra.Command) error
}

type cmdFlagsImpl struct{}

// CmdFlags applies environment variables to the flags of a command. Flags set
// on the command line take precedence.
var CmdFlags cmdFlags = cmdFlagsImpl{}

const (
	globalPrefix       = "wdl"
	errorMessagePrefix = "error mapping environment variables to command flags"
)

// Prefix returns the environment variable prefix of command: WDL for the
// root command and WDL_<COMMAND> for subcommands.
func Prefix(command *cobra.Command) string {
	if command.Name() == globalPrefix || !command.HasParent() {
		return strings.ToUpper(globalPrefix)
	}
	return strings.ToUpper(globalPrefix + "_" + command.Name())
}

func (cmdFlagsImpl) CheckEnvironmentVariables(command *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.SetEnvPrefix(Prefix(command))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	command.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := command.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
			errs = append(errs, err.Error())
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", errorMessagePrefix, strings.Join(errs, "; "))
}
