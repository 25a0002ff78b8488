// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/cat/lib/rawcopy"
)

// Stream is the shared output. It is not safe for concurrent use.
type Stream struct {
	fd         rawcopy.FD
	name       string
	unbuffered bool
	writer     *bufio.Writer
	closed     bool
}

// New returns a stream over fd. name labels the stream in errors.
func New(fd int, name string, unbuffered bool) *Stream {
	return &Stream{
		fd:         rawcopy.FD(fd),
		name:       name,
		unbuffered: unbuffered,
		writer:     bufio.NewWriter(fullWriter{rawcopy.FD(fd)}),
	}
}

// Fd returns the output descriptor.
func (s *Stream) Fd() int { return s.fd.Fd() }

// Name returns the stream's label.
func (s *Stream) Name() string { return s.name }

// Raw returns the unbuffered descriptor writer for the copy engines.
// Raw writes may be short; callers loop with [rawcopy.WriteFull].
func (s *Stream) Raw() io.Writer { return s.fd }

func (s *Stream) Write(p []byte) (int, error) {
	count, err := s.writer.Write(p)
	if err != nil {
		return count, err
	}
	return count, s.autoFlush()
}

// WriteByte writes one byte.
func (s *Stream) WriteByte(c byte) error {
	if err := s.writer.WriteByte(c); err != nil {
		return err
	}
	return s.autoFlush()
}

// WriteString writes str.
func (s *Stream) WriteString(str string) (int, error) {
	count, err := s.writer.WriteString(str)
	if err != nil {
		return count, err
	}
	return count, s.autoFlush()
}

// WriteRune writes the UTF-8 encoding of r.
func (s *Stream) WriteRune(r rune) (int, error) {
	count, err := s.writer.WriteRune(r)
	if err != nil {
		return count, err
	}
	return count, s.autoFlush()
}

// Flush writes any buffered data to the descriptor.
func (s *Stream) Flush() error {
	return s.writer.Flush()
}

func (s *Stream) autoFlush() error {
	if !s.unbuffered {
		return nil
	}
	return s.writer.Flush()
}

// Lock blocks until it holds an exclusive advisory write lock on the
// whole output file. The lock is released when the descriptor closes.
func (s *Stream) Lock() error {
	lock := unix.Flock_t{
		Type:   unix.F_WRLCK,
		Whence: io.SeekStart,
	}
	for {
		err := unix.FcntlFlock(uintptr(s.fd), unix.F_SETLKW, &lock)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("locking %s: %w", s.name, err)
		}
		return nil
	}
}

// Close flushes buffered output and closes the descriptor. Close is
// idempotent; only the first call reports errors.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.writer.Flush()
	closeErr := unix.Close(s.fd.Fd())
	if flushErr != nil {
		return fmt.Errorf("%s: %w", s.name, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%s: %w", s.name, &rawcopy.WriteError{Err: closeErr})
	}
	return nil
}

// fullWriter adapts a short-writing descriptor to the io.Writer
// contract bufio.Writer relies on.
type fullWriter struct {
	fd rawcopy.FD
}

func (w fullWriter) Write(p []byte) (int, error) {
	return rawcopy.WriteFull(w.fd, p)
}
