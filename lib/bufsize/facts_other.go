// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package bufsize

import "errors"

// PhysicalPages is not implemented off Linux; the heuristic falls back
// to the small size.
func (SystemFacts) PhysicalPages() (int64, error) {
	return 0, errors.ErrUnsupported
}
