// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bufsize chooses the I/O chunk size used by every raw copy in
// a run.
//
// The choice depends on what the output descriptor is:
//
//   - A regular file gets a large buffer when the machine has memory to
//     spare (more physical pages than [Tuning.MemoryThresholdPages]) and
//     the small default otherwise. The small default is the largest
//     single I/O the kernel handles efficiently.
//   - Anything else (pipe, terminal, socket, device) gets the preferred
//     block size reported by fstat, raised to at least one page and
//     clamped to [Tuning.MaxSize]. st_blksize is a hint supplied by the
//     filesystem and is not trusted: zero and absurdly large values are
//     both seen in practice (procfs, FUSE, network filesystems).
//
// [Choose] is the pure decision function. [Policy] wraps it with the
// system queries and caches the result so the facts are consulted at
// most once per process.
package bufsize
