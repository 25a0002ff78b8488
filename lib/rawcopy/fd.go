// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rawcopy

import (
	"io"

	"golang.org/x/sys/unix"
)

// FD is a raw file descriptor. Its methods retry EINTR and otherwise
// report the system call's result unchanged: Write may return fewer
// bytes than requested with a nil error.
type FD int

// Read reads into p. A zero-byte read is reported as io.EOF.
func (fd FD) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		count, err := unix.Read(int(fd), p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, io.EOF
		}
		return count, nil
	}
}

// Write issues a single write(2) of p.
func (fd FD) Write(p []byte) (int, error) {
	for {
		count, err := unix.Write(int(fd), p)
		if err == unix.EINTR && count <= 0 {
			continue
		}
		if count < 0 {
			count = 0
		}
		return count, err
	}
}

// Fd returns the descriptor number.
func (fd FD) Fd() int { return int(fd) }
