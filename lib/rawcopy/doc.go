// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rawcopy copies bytes verbatim from an input to the shared
// output through one reusable buffer.
//
// [Engine] allocates its [iobuf.Buffer] lazily, on the first
// [Engine.Copy], using the size its size function reports; every later
// copy in the run reuses the same buffer. Close releases it.
//
// Error classes matter more than error values here. A failed read is a
// property of one input: Copy returns it as a [*ReadError] and the
// caller moves on to the next input. A failed write damages the output
// every input shares, so it is returned as a [*WriteError] and the run
// must stop. Everything else Copy can return (sizing or allocation
// failures) is also fatal.
//
// Reads and writes are asymmetric about zero. A read of zero bytes is
// end of input. A write that accepts zero bytes without reporting an
// error is never progress; [WriteFull] turns it into [ErrZeroWrite]
// instead of spinning.
//
// [FD] exposes a raw descriptor as an io.Reader/io.Writer that reports
// exactly what read(2) and write(2) did, short writes included, so the
// retry logic lives in one place ([WriteFull]).
package rawcopy
