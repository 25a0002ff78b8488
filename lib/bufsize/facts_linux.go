// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package bufsize

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PhysicalPages reads total RAM from sysinfo(2) and converts it to
// pages of the system page size.
func (SystemFacts) PhysicalPages() (int64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, fmt.Errorf("sysinfo: %w", err)
	}
	pageSize := uint64(unix.Getpagesize())
	if pageSize == 0 {
		return 0, fmt.Errorf("page size unavailable")
	}
	totalBytes := uint64(info.Totalram) * uint64(info.Unit)
	return int64(totalBytes / pageSize), nil
}
