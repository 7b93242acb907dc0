// Copyright 2016 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package version contains version information that is set at build time.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is the canonical version of the wdl tools.
var Version = "0.3.0-dev"

// GoVersion is the version of Go this was built with
var GoVersion = runtime.Version()

// Platform is the runtime OS and architecture of this binary
var Platform = runtime.GOOS + "/" + runtime.GOARCH

// Additional version information that is displayed by the "version" command.
var (
	Vcs       = ""
	Timestamp = ""
	Hostname  = ""
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	vcs, ts := fromBuildSettings(bi.Settings)

	if Timestamp == "" {
		Timestamp = ts
	}
	if Vcs == "" {
		Vcs = vcs
	}
}

// fromBuildSettings extracts the revision and commit time stamped by the go
// tool. A modified work tree is marked with a -dirty suffix.
func fromBuildSettings(settings []debug.BuildSetting) (vcs, timestamp string) {
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.time":
			timestamp = s.Value
		case "vcs.revision":
			vcs = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && vcs != "" {
		vcs += "-dirty"
	}
	return vcs, timestamp
}
