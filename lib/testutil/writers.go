// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"errors"
	"io"
)

// ChunkWriter accepts at most Chunk bytes per Write and reports the
// short count with a nil error, the way write(2) does under
// backpressure. Calls counts Write invocations.
type ChunkWriter struct {
	Chunk  int
	Calls  int
	Buffer bytes.Buffer
}

func (w *ChunkWriter) Write(p []byte) (int, error) {
	w.Calls++
	if len(p) > w.Chunk {
		p = p[:w.Chunk]
	}
	return w.Buffer.Write(p)
}

// StallWriter accepts no bytes and reports no error.
type StallWriter struct {
	Calls int
}

func (w *StallWriter) Write(p []byte) (int, error) {
	w.Calls++
	return 0, nil
}

// ErrInjected is the error returned by [FailWriter] and [FlakyReader].
var ErrInjected = errors.New("injected failure")

// FailWriter accepts Budget bytes and then fails every write with
// [ErrInjected]. A write that straddles the budget is accepted up to
// the budget and fails in the same call.
type FailWriter struct {
	Budget int
	Buffer bytes.Buffer
}

func (w *FailWriter) Write(p []byte) (int, error) {
	remaining := w.Budget - w.Buffer.Len()
	if remaining >= len(p) {
		return w.Buffer.Write(p)
	}
	if remaining < 0 {
		remaining = 0
	}
	w.Buffer.Write(p[:remaining])
	return remaining, ErrInjected
}

// FlakyReader returns Data and then [ErrInjected] on every later call.
type FlakyReader struct {
	Data   []byte
	offset int
}

func (r *FlakyReader) Read(p []byte) (int, error) {
	if r.offset < len(r.Data) {
		count := copy(p, r.Data[r.offset:])
		r.offset += count
		return count, nil
	}
	return 0, ErrInjected
}

// OneByteReader returns at most one byte per Read, exposing code that
// assumes a read fills its buffer.
type OneByteReader struct {
	Reader io.Reader
}

func (r OneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return r.Reader.Read(p[:1])
}
