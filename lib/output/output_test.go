// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/cat/lib/rawcopy"
	"github.com/bureau-foundation/cat/lib/testutil"
)

// openOutput creates a file and returns a duplicate descriptor that the
// stream under test may close on its own.
func openOutput(t *testing.T) (int, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating output: %v", err)
	}
	defer file.Close()

	fd, err := unix.Dup(int(file.Fd()))
	if err != nil {
		t.Fatalf("dup: %v", err)
	}
	return fd, path
}

func TestStream_BufferedHoldsUntilFlush(t *testing.T) {
	fd, path := openOutput(t)
	stream := New(fd, "stdout", false)

	stream.WriteString("hello ")
	stream.WriteByte('w')
	stream.WriteRune('ö')
	stream.Write([]byte("rld\n"))

	if content := testutil.ReadFile(t, path); len(content) != 0 {
		t.Errorf("buffered stream wrote early: %q", content)
	}

	if err := stream.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if content := string(testutil.ReadFile(t, path)); content != "hello wörld\n" {
		t.Errorf("content = %q", content)
	}
}

func TestStream_UnbufferedWritesThrough(t *testing.T) {
	fd, path := openOutput(t)
	stream := New(fd, "stdout", true)
	defer stream.Close()

	stream.WriteByte('a')
	if content := string(testutil.ReadFile(t, path)); content != "a" {
		t.Errorf("after WriteByte: %q", content)
	}
	stream.WriteString("^I")
	if content := string(testutil.ReadFile(t, path)); content != "a^I" {
		t.Errorf("after WriteString: %q", content)
	}
	stream.WriteRune('é')
	if content := string(testutil.ReadFile(t, path)); content != "a^Ié" {
		t.Errorf("after WriteRune: %q", content)
	}
}

func TestStream_RawBypassesBuffer(t *testing.T) {
	fd, path := openOutput(t)
	stream := New(fd, "stdout", false)
	defer stream.Close()

	if _, err := rawcopy.WriteFull(stream.Raw(), []byte("direct")); err != nil {
		t.Fatalf("raw write: %v", err)
	}
	if content := string(testutil.ReadFile(t, path)); content != "direct" {
		t.Errorf("content = %q", content)
	}
	if stream.Fd() != fd {
		t.Errorf("Fd() = %d, want %d", stream.Fd(), fd)
	}
}

func TestStream_CloseIdempotent(t *testing.T) {
	fd, _ := openOutput(t)
	stream := New(fd, "stdout", false)

	if err := stream.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestStream_CloseReportsBadDescriptor(t *testing.T) {
	stream := New(-1, "stdout", false)
	err := stream.Close()
	if err == nil {
		t.Fatal("expected error closing descriptor -1")
	}
	var writeError *rawcopy.WriteError
	if !errors.As(err, &writeError) {
		t.Errorf("close error is not a *WriteError: %v", err)
	}
}

func TestStream_BrokenPipeIsWriteError(t *testing.T) {
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer writer.Close()
	reader.Close()

	fd, err := unix.Dup(int(writer.Fd()))
	if err != nil {
		t.Fatalf("dup: %v", err)
	}
	stream := New(fd, "stdout", true)
	defer stream.Close()

	err = stream.WriteByte('x')
	var writeError *rawcopy.WriteError
	if !errors.As(err, &writeError) {
		t.Fatalf("expected *WriteError, got %v", err)
	}
	if !errors.Is(err, unix.EPIPE) {
		t.Errorf("expected EPIPE, got %v", err)
	}
}

func TestStream_Lock(t *testing.T) {
	fd, _ := openOutput(t)
	stream := New(fd, "stdout", false)
	defer stream.Close()

	if err := stream.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	// Re-locking from the same process is permitted for POSIX locks.
	if err := stream.Lock(); err != nil {
		t.Fatalf("second Lock: %v", err)
	}
}
