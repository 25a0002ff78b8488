// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for bureau-cat packages.
//
// The writers model the destinations a copy engine has to survive:
// [ChunkWriter] accepts at most a fixed number of bytes per call (short
// writes), [StallWriter] accepts nothing and reports no error (the
// zero-write case), and [FailWriter] fails after a byte budget.
// [FlakyReader] delivers data and then a read error, the shape of an
// input that breaks mid-stream.
//
// [WriteFile] and [ReadFile] create and inspect files under
// t.TempDir(). [Pattern] produces deterministic, non-repeating content
// large enough to cross buffer boundaries.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no internal dependencies.
package testutil
