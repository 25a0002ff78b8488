// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for --version.
//
// [Commit] and [BuildTime] are injected with -ldflags -X. When they are
// not, the VCS stamp the Go toolchain embeds in the binary is used
// instead, so plain "go build" output still identifies its revision.
package version
