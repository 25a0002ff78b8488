// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package iobuf provides the reusable byte region that raw copies stage
// data through.
//
// [Buffer] allocates its memory with an anonymous private mmap, so the
// region is page aligned (the alignment the kernel prefers for large
// read/write calls) and lives outside the Go heap: the garbage
// collector never scans or moves it regardless of its size. The
// region's lifetime is explicit. The owner calls [Buffer.Close] to
// unmap it; after Close any access panics.
//
// A Buffer is sized once and never resized. It is not safe for
// concurrent use; a run has exactly one active copy at a time.
//
// Depends on golang.org/x/sys/unix.
package iobuf
