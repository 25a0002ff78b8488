// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional tuning file for bureau-cat.
//
// The file is named by the --config flag (via [LoadFile]) or the
// BUREAU_CAT_CONFIG environment variable (via [Load]). There is no
// discovery: with neither set, [Default] applies. YAML is the primary
// format; files ending in .json or .jsonc are read as JSON with
// comments and trailing commas allowed.
//
// Key exports:
//
//   - [Config] -- Buffer sizing constants and Logging level
//   - [Default] -- the built-in values
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Tuning] -- conversion to [bufsize.Tuning]
package config
