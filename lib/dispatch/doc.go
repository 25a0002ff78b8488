// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dispatch runs one concatenation: it walks the operand list in
// order, opens each input, and routes it either through the cooked
// transform or through the kernel-assisted copy with its read/write
// fallback. The mode is fixed for the whole run from the resolved
// options.
//
// Failures are split in two classes. An input that cannot be opened or
// read is reported with its label, counted in [Result.Failures], and
// the run moves on to the next operand. Anything that compromises the
// shared output (a failed or zero-length write, a real kernel-copy
// error, buffer sizing or allocation, closing the output) stops the run
// and is returned from [Dispatcher.Run].
package dispatch
