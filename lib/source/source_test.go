// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/cat/lib/testutil"
)

func TestOpen_File(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "input", []byte("content\n"))

	input, err := NewOpener(NewStdin(0)).Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer input.Close()

	if input.Name() != path {
		t.Errorf("Name() = %q, want %q", input.Name(), path)
	}
	if input.Fd() < 0 {
		t.Errorf("Fd() = %d", input.Fd())
	}
	data, err := io.ReadAll(input)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "content\n" {
		t.Errorf("read %q", data)
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := NewOpener(NewStdin(0)).Open(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestOpen_DashIsSharedStdin(t *testing.T) {
	stdin := NewStdin(0)
	opener := NewOpener(stdin)

	first, err := opener.Open("-")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	second, err := opener.Open("-")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if first != Input(stdin) || second != Input(stdin) {
		t.Error("\"-\" did not resolve to the shared stdin")
	}
	if first.Name() != "stdin" {
		t.Errorf("Name() = %q", first.Name())
	}
	if err := first.Close(); err != nil {
		t.Errorf("closing stdin: %v", err)
	}
}

func TestStdin_RewindClearsEOF(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "stdin", []byte("one"))
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	stdin := NewStdin(int(file.Fd()))
	data, err := io.ReadAll(stdin)
	if err != nil || string(data) != "one" {
		t.Fatalf("first pass = %q, %v", data, err)
	}

	// More data arrives after end of input was seen.
	appender, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open for append: %v", err)
	}
	appender.WriteString("two")
	appender.Close()

	buffer := make([]byte, 16)
	if _, err := stdin.Read(buffer); err != io.EOF {
		t.Fatalf("end of input not remembered before Rewind: %v", err)
	}

	stdin.Rewind()
	data, err = io.ReadAll(stdin)
	if err != nil || string(data) != "two" {
		t.Fatalf("second pass = %q, %v", data, err)
	}
}

func TestStdin_RewindKeepsRealError(t *testing.T) {
	directory, err := os.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open directory: %v", err)
	}
	defer directory.Close()

	stdin := NewStdin(int(directory.Fd()))
	buffer := make([]byte, 16)

	_, firstErr := stdin.Read(buffer)
	if !errors.Is(firstErr, unix.EISDIR) {
		t.Fatalf("expected EISDIR, got %v", firstErr)
	}

	stdin.Rewind()
	if _, err := stdin.Read(buffer); !errors.Is(err, unix.EISDIR) {
		t.Fatalf("real error cleared by Rewind: %v", err)
	}
}

func TestOpen_UnixSocket(t *testing.T) {
	directory, err := os.MkdirTemp("/tmp", "bureau-cat-*")
	if err != nil {
		t.Fatalf("creating socket directory: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(directory) })

	path := filepath.Join(directory, "s")
	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	peerSawEOF := make(chan bool, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			peerSawEOF <- false
			return
		}
		defer conn.Close()
		conn.Write([]byte("from socket\n"))
		_, readErr := conn.Read(make([]byte, 1))
		peerSawEOF <- readErr == io.EOF
	}()

	input, err := NewOpener(NewStdin(0)).Open(path)
	if err != nil {
		t.Fatalf("Open socket: %v", err)
	}
	defer input.Close()

	buffer := make([]byte, 64)
	count, err := io.ReadAtLeast(input, buffer, len("from socket\n"))
	if err != nil {
		t.Fatalf("reading socket: %v", err)
	}
	if string(buffer[:count]) != "from socket\n" {
		t.Errorf("read %q", buffer[:count])
	}
	if !<-peerSawEOF {
		t.Error("peer did not see the write side shut down")
	}
}
