// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process holds the entrypoint helpers that write to stderr
// directly: reporting an unrecoverable error when the structured logger
// may not exist yet, and turning it into an exit status.
package process
