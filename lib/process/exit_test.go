// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"errors"
	"testing"
)

func TestReport(t *testing.T) {
	var buffer bytes.Buffer
	Report(&buffer, "bureau-cat", errors.New("write: broken pipe"))

	if got, want := buffer.String(), "bureau-cat: write: broken pipe\n"; got != want {
		t.Errorf("Report wrote %q, want %q", got, want)
	}
}
