// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
)

// Fataler is the subset of testing.TB the file helpers need.
type Fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// WriteFile creates directory/name with content and returns its path.
func WriteFile(t Fataler, directory, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path.
func ReadFile(t Fataler, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return content
}

// Pattern returns size bytes of deterministic content whose period
// (251, a prime) does not divide any power-of-two buffer size, so an
// off-by-one at a buffer boundary shows up as a content mismatch.
func Pattern(size int) []byte {
	data := make([]byte, size)
	for index := range data {
		data[index] = byte(index % 251)
	}
	return data
}
