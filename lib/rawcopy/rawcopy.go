// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rawcopy

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/cat/lib/iobuf"
)

// WriteFull writes all of p to w, looping over short writes and
// advancing by exactly the count each write confirms. It returns the
// number of bytes written. Every error it returns is a [*WriteError].
func WriteFull(w io.Writer, p []byte) (int, error) {
	written := 0
	for written < len(p) {
		count, err := w.Write(p[written:])
		if count < 0 || count > len(p)-written {
			return written, &WriteError{Err: fmt.Errorf("invalid write count %d for %d bytes", count, len(p)-written)}
		}
		written += count
		if err != nil {
			return written, &WriteError{Err: err}
		}
		if count == 0 {
			return written, &WriteError{Err: ErrZeroWrite}
		}
	}
	return written, nil
}

// Engine copies inputs to one destination through a lazily allocated,
// reused buffer.
type Engine struct {
	destination io.Writer
	size        func() (int, error)
	allocate    func(size int) (*iobuf.Buffer, error)

	buffer *iobuf.Buffer
}

// New returns an engine writing to destination. size is called once,
// on the first Copy, to pick the buffer size.
func New(destination io.Writer, size func() (int, error)) *Engine {
	return &Engine{
		destination: destination,
		size:        size,
		allocate:    iobuf.New,
	}
}

// Copy drains source into the destination and returns the number of
// bytes written. A nil error means source reached end of input.
func (e *Engine) Copy(source io.Reader) (int64, error) {
	buffer, err := e.acquire()
	if err != nil {
		return 0, err
	}

	var total int64
	for {
		count, readErr := source.Read(buffer)
		if count > 0 {
			written, writeErr := WriteFull(e.destination, buffer[:count])
			total += int64(written)
			if writeErr != nil {
				return total, writeErr
			}
		}
		if readErr == io.EOF || (count == 0 && readErr == nil) {
			return total, nil
		}
		if readErr != nil {
			return total, &ReadError{Err: readErr}
		}
	}
}

// BufferSize returns the size of the allocated buffer, or 0 if no copy
// has run yet.
func (e *Engine) BufferSize() int {
	if e.buffer == nil {
		return 0
	}
	return e.buffer.Len()
}

// Close releases the buffer. The engine allocates a new one if Copy is
// called again.
func (e *Engine) Close() error {
	if e.buffer == nil {
		return nil
	}
	err := e.buffer.Close()
	e.buffer = nil
	return err
}

func (e *Engine) acquire() ([]byte, error) {
	if e.buffer != nil {
		return e.buffer.Bytes(), nil
	}

	size, err := e.size()
	if err != nil {
		return nil, fmt.Errorf("sizing I/O buffer: %w", err)
	}
	buffer, err := e.allocate(size)
	if err != nil {
		return nil, fmt.Errorf("allocating %d-byte I/O buffer: %w", size, err)
	}
	e.buffer = buffer
	return buffer.Bytes(), nil
}
