// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via -ldflags at build time.
var (
	Commit    = ""
	BuildTime = ""
	Version   = "0.1.0-dev"
)

// Stamp is the resolved build identity.
type Stamp struct {
	Version   string
	Commit    string
	Modified  bool
	BuildTime string
}

// Current resolves the stamp from the linker variables, falling back to
// the embedded VCS settings.
func Current() Stamp {
	return resolve(Commit, BuildTime, debug.ReadBuildInfo)
}

func resolve(commit, buildTime string, read func() (*debug.BuildInfo, bool)) Stamp {
	stamp := Stamp{Version: Version, Commit: commit, BuildTime: buildTime}
	if commit != "" {
		return stamp
	}
	info, ok := read()
	if !ok {
		stamp.Commit = "unknown"
		return stamp
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			stamp.Commit = setting.Value
			if len(stamp.Commit) > 12 {
				stamp.Commit = stamp.Commit[:12]
			}
		case "vcs.time":
			if stamp.BuildTime == "" {
				stamp.BuildTime = setting.Value
			}
		case "vcs.modified":
			stamp.Modified = setting.Value == "true"
		}
	}
	if stamp.Commit == "" {
		stamp.Commit = "unknown"
	}
	return stamp
}

// String formats the stamp for --version output.
func (s Stamp) String() string {
	dirty := ""
	if s.Modified {
		dirty = "-dirty"
	}
	buildTime := s.BuildTime
	if buildTime == "" {
		buildTime = "unknown"
	}
	return fmt.Sprintf("%s (%s%s, %s, %s)", s.Version, s.Commit, dirty, buildTime, runtime.Version())
}
