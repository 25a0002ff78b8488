// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package kcopy

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/cat/lib/rawcopy"
)

// RangeCopier performs one call of the in-kernel copy primitive from
// src to dst, returning the number of bytes moved. Zero bytes with a
// nil error means src is exhausted.
type RangeCopier func(dst, src int) (int, error)

// Source is an input the engine can hand to the kernel by descriptor
// and to the raw engine as a reader.
type Source interface {
	io.Reader
	Fd() int
}

// FatalError is a kernel copy failure that is not a reason to fall
// back. Moved is the number of bytes copied before the failure.
type FatalError struct {
	Moved int64
	Err   error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("in-kernel copy failed after %d bytes: %v", e.Moved, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// notApplicable lists the errnos that mean the primitive cannot serve
// this pair of descriptors, as opposed to an actual I/O failure.
var notApplicable = []unix.Errno{
	unix.EXDEV,
	unix.ENOSYS,
	unix.EOPNOTSUPP,
	unix.ENOTSUP,
	unix.EOVERFLOW,
	unix.ETXTBSY,
	unix.EINVAL,
	unix.EBADF,
	unix.EISDIR,
}

// NotApplicable reports whether err from the primitive should trigger a
// fallback to the raw engine.
func NotApplicable(err error) bool {
	for _, errno := range notApplicable {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

// Engine is the two-tier copier: kernel first, raw engine on fallback.
type Engine struct {
	copyRange RangeCopier
	raw       *rawcopy.Engine
	logger    *slog.Logger
}

// New returns an engine using copyRange as the primitive (normally
// [System]) and raw as the fallback.
func New(copyRange RangeCopier, raw *rawcopy.Engine, logger *slog.Logger) *Engine {
	if copyRange == nil {
		copyRange = System
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		copyRange: copyRange,
		raw:       raw,
		logger:    logger,
	}
}

// Copy moves everything remaining in source to the descriptor dst and
// returns the total bytes moved by both tiers. Errors from the raw
// tier keep their classes ([rawcopy.ReadError] is per-input).
func (e *Engine) Copy(dst int, source Source) (int64, error) {
	var moved int64
	for {
		count, err := e.copyRange(dst, source.Fd())
		if count > 0 {
			moved += int64(count)
		}
		if err == nil {
			if count == 0 {
				return moved, nil
			}
			continue
		}

		if !NotApplicable(err) {
			return moved, &FatalError{Moved: moved, Err: err}
		}

		e.logger.Debug("in-kernel copy not applicable, falling back to read/write",
			"moved", moved,
			"error", err,
		)
		copied, rawErr := e.raw.Copy(source)
		return moved + copied, rawErr
	}
}
