// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package kcopy

import "golang.org/x/sys/unix"

// System reports ENOSYS: there is no in-kernel copy primitive wired up
// on this platform, so every input takes the raw path.
func System(dst, src int) (int, error) {
	return 0, unix.ENOSYS
}
