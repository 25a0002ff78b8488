// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package source turns command-line operands into readable inputs.
//
// An operand of "-" names standard input. Every other operand is a
// path, opened read-only. A path that names a Unix-domain socket cannot
// be opened with open(2) (Linux reports ENXIO, BSDs EOPNOTSUPP); for
// those the opener connects to the socket instead, shuts down the
// write side so the peer sees end of input, and reads whatever the peer
// sends.
//
// Standard input is shared by every "-" operand of a run and is never
// closed by the run. [Stdin] remembers the first error a read returned,
// the way a stdio stream keeps its end-of-file and error indicators.
// [Stdin.Rewind] clears a remembered end of input so a second "-" can
// read more (from a terminal, say), but a real I/O error stays: a
// source that failed once fails again.
package source
