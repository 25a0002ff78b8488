// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package kcopy moves bytes between two descriptors inside the kernel
// when it can, and hands the rest of the input to [rawcopy.Engine] when
// it cannot.
//
// The in-kernel primitive is copy_file_range(2) on Linux. Elsewhere the
// primitive reports ENOSYS, which routes every input through the raw
// engine. The primitive is called repeatedly with null offsets, so it
// advances the source descriptor's file offset as it goes; when it
// fails part way, the raw engine reads from exactly where it stopped.
// No byte is copied twice or skipped.
//
// Errors divide into two classes ([NotApplicable]):
//
//   - "Not possible here": cross-device copies, kernels or filesystems
//     without support, descriptor kinds the call rejects (pipes,
//     terminals, append-mode files, directories), size limits, and busy
//     executables. These fall back to the raw engine silently.
//   - Everything else (EIO, ENOMEM, ENOSPC, EFBIG, ...) means something
//     is broken. Copy returns a [*FatalError] and the run stops.
package kcopy
