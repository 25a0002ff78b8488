// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bufsize

import "golang.org/x/sys/unix"

// SystemFacts answers [Facts] from the running kernel.
type SystemFacts struct{}

// PageSize returns the system page size.
func (SystemFacts) PageSize() int {
	return unix.Getpagesize()
}
