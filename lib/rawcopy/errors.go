// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rawcopy

import "errors"

// ErrZeroWrite is wrapped in a [*WriteError] when a write accepts no
// bytes and reports no error.
var ErrZeroWrite = errors.New("zero bytes written")

// ReadError is a failure reading one input. It does not affect the
// output and is recoverable at the run level.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return e.Err.Error() }

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError is a failure writing the shared output. It is always
// fatal to the run.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "write: " + e.Err.Error() }

func (e *WriteError) Unwrap() error { return e.Err }

// IsReadError reports whether err is, or wraps, a [*ReadError].
func IsReadError(err error) bool {
	var readError *ReadError
	return errors.As(err, &readError)
}
