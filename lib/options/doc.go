// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package options holds the run configuration for bureau-cat: the set of
// boolean switches resolved once at startup and never changed while
// inputs are being copied.
//
// The switches are declared as tagged struct fields and bound to a
// [pflag.FlagSet] by reflection ([BindFlags]), so the flag surface and
// the configuration type cannot drift apart. After parsing, callers
// must call [Options.Resolve] to apply the implications between
// switches (-b implies -n, -e and -t imply -v) before handing the value
// to the dispatcher.
//
// [Options.Cooked] is the single place that decides between the cooked
// transform and the raw byte copy. The decision depends only on the
// resolved options, so it is made once per run.
package options
