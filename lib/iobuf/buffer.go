// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package iobuf

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Buffer is a fixed-size, page-aligned byte region backed by an
// anonymous mapping. A Buffer must not be copied after creation.
type Buffer struct {
	data   []byte
	closed bool
}

// New maps a zero-filled region of size bytes. The kernel rounds the
// mapping up to a whole number of pages; [Buffer.Bytes] still returns
// exactly size bytes.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("iobuf: buffer size must be positive, got %d", size)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("iobuf: mapping %d-byte buffer: %w", size, err)
	}

	return &Buffer{data: data}, nil
}

// Bytes returns the whole region. The slice aliases the mapping and
// must not be used after Close. Panics if the buffer has been closed.
func (b *Buffer) Bytes() []byte {
	if b.closed {
		panic("iobuf: use of closed buffer")
	}
	return b.data
}

// Len returns the buffer size in bytes, or 0 after Close.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Close unmaps the region. Close is idempotent.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	data := b.data
	b.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("iobuf: munmap: %w", err)
	}
	return nil
}
