// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// FailureStatus is the exit status for fatal errors and for runs in
// which any input failed.
const FailureStatus = 1

// Fatal writes "program: err" to stderr and exits with
// [FailureStatus]. Use it in main() for errors from run() where the
// structured logger may not be initialized.
func Fatal(program string, err error) {
	Report(os.Stderr, program, err)
	os.Exit(FailureStatus)
}

// Report writes the one-line diagnostic [Fatal] uses.
func Report(w io.Writer, program string, err error) {
	fmt.Fprintf(w, "%s: %v\n", program, err)
}
