// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/cat/lib/rawcopy"
)

// StdinOperand is the operand that names standard input.
const StdinOperand = "-"

// Input is an open, readable source.
type Input interface {
	io.Reader

	// Fd returns the underlying descriptor, for in-kernel copies.
	Fd() int

	// Name labels the input in diagnostics.
	Name() string

	// Close releases the input. Closing standard input is a no-op.
	Close() error
}

// Stdin is the process's standard input with sticky error state.
type Stdin struct {
	fd  rawcopy.FD
	err error
}

// NewStdin returns standard input over descriptor fd (normally 0).
func NewStdin(fd int) *Stdin {
	return &Stdin{fd: rawcopy.FD(fd)}
}

func (s *Stdin) Read(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	count, err := s.fd.Read(p)
	if err != nil {
		s.err = err
	}
	return count, err
}

// Rewind clears a remembered end of input. A remembered read error is
// kept.
func (s *Stdin) Rewind() {
	if s.err == io.EOF {
		s.err = nil
	}
}

// Fd returns the standard input descriptor.
func (s *Stdin) Fd() int { return s.fd.Fd() }

// Name returns "stdin".
func (s *Stdin) Name() string { return "stdin" }

// Close does nothing: standard input outlives any single operand.
func (s *Stdin) Close() error { return nil }

// File is an input opened from a path.
type File struct {
	file *os.File
	fd   rawcopy.FD
	name string
}

func (f *File) Read(p []byte) (int, error) { return f.fd.Read(p) }

// Fd returns the file's descriptor.
func (f *File) Fd() int { return f.fd.Fd() }

// Name returns the operand the file was opened from.
func (f *File) Name() string { return f.name }

// Close closes the file.
func (f *File) Close() error { return f.file.Close() }

// Opener resolves operands to inputs.
type Opener struct {
	stdin *Stdin
}

// NewOpener returns an opener whose "-" operand is stdin.
func NewOpener(stdin *Stdin) *Opener {
	return &Opener{stdin: stdin}
}

// Open resolves one operand. For "-" it returns the shared [Stdin],
// rewound so a repeated "-" reads again.
func (o *Opener) Open(operand string) (Input, error) {
	if operand == StdinOperand {
		o.stdin.Rewind()
		return o.stdin, nil
	}

	file, err := os.Open(operand)
	if err != nil && (errors.Is(err, unix.ENXIO) || errors.Is(err, unix.EOPNOTSUPP)) {
		file, err = dialSocket(operand, err)
	}
	if err != nil {
		return nil, err
	}

	// Fd puts the descriptor in blocking mode, which the raw read(2)
	// and copy_file_range(2) calls expect.
	return &File{
		file: file,
		fd:   rawcopy.FD(file.Fd()),
		name: operand,
	}, nil
}

// dialSocket connects to the Unix-domain socket at path and returns a
// read-only file for the connection. openErr is returned unchanged if
// path is not a socket.
func dialSocket(path string, openErr error) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil || info.Mode().Type() != os.ModeSocket {
		return nil, openErr
	}

	conn, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, &os.PathError{Op: "connect", Path: path, Err: err}
	}
	defer conn.Close()

	if err := conn.CloseWrite(); err != nil {
		return nil, fmt.Errorf("shutting down write side of %s: %w", path, err)
	}

	file, err := conn.File()
	if err != nil {
		return nil, fmt.Errorf("duplicating socket %s: %w", path, err)
	}
	return file, nil
}
