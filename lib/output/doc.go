// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package output owns the single output stream of a run.
//
// [Stream] wraps one descriptor (normally standard output) and offers
// two write paths. The buffered path ([Stream.Write], [Stream.WriteByte]
// and friends) serves the cooked transform; in unbuffered mode it
// flushes after every call, so each rendered character reaches the
// descriptor immediately. The raw path ([Stream.Raw]) hands the
// descriptor itself to the copy engines, which do their own buffering.
// A run uses one path or the other, never both.
//
// Every write failure surfaces as a [*rawcopy.WriteError]. [Stream.Close]
// flushes and closes the descriptor; its error is fatal to the run,
// since a failed close can be the first report of a write that never
// reached storage.
package output
