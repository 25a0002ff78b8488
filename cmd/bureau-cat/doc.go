// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bureau-cat concatenates files to standard output.
//
//	bureau-cat [-belnstuv] [--config path] [file ...]
//
// With no file, or where a file is "-", standard input is read. A file
// that is a Unix-domain socket is connected to and read until the peer
// closes. Without display options the bytes are copied verbatim, in the
// kernel where possible; with any of -b, -e, -n, -s, -t or -v every
// input passes through the cooked transform.
//
// Exit codes:
//
//	0  every input was copied and standard output closed cleanly
//	1  an input could not be opened or read, or output failed
//
// Buffer sizing and the log level can be tuned with a YAML or JSONC
// file named by --config or BUREAU_CAT_CONFIG. BUREAU_CAT_DEBUG=1
// enables debug logging.
package main
