// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"errors"
	"log/slog"

	"github.com/bureau-foundation/cat/lib/cook"
	"github.com/bureau-foundation/cat/lib/kcopy"
	"github.com/bureau-foundation/cat/lib/options"
	"github.com/bureau-foundation/cat/lib/output"
	"github.com/bureau-foundation/cat/lib/rawcopy"
	"github.com/bureau-foundation/cat/lib/source"
)

// Opener resolves an operand to an open input.
type Opener interface {
	Open(operand string) (source.Input, error)
}

// Sizer reports the raw copy buffer size. [bufsize.Policy] is the
// production implementation.
type Sizer interface {
	Size() (int, error)
}

// Config holds everything a run needs. Options are resolved by
// [New]; the caller does not need to call [options.Options.Resolve].
type Config struct {
	Options options.Options
	Output  *output.Stream
	Opener  Opener

	// Decoder is the character encoding for cooked mode. Nil means
	// [cook.UTF8].
	Decoder cook.Decoder

	// Sizer chooses the raw buffer size on first use.
	Sizer Sizer

	// CopyRange is the in-kernel copy primitive. Nil means
	// [kcopy.System].
	CopyRange kcopy.RangeCopier

	// Logger receives per-input diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Result is the outcome of a run that was not aborted.
type Result struct {
	// Inputs is the number of operands processed.
	Inputs int

	// Failures is the number of operands that could not be opened or
	// read to the end.
	Failures int
}

// ExitCode returns the process exit status for the result.
func (r Result) ExitCode() int {
	if r.Failures > 0 {
		return 1
	}
	return 0
}

// Dispatcher drives a run. It is single-use: [Dispatcher.Run] closes
// the output.
type Dispatcher struct {
	options options.Options
	output  *output.Stream
	opener  Opener
	logger  *slog.Logger

	cook  *cook.Engine
	raw   *rawcopy.Engine
	kcopy *kcopy.Engine
}

// New validates config and returns a dispatcher for it.
func New(config Config) (*Dispatcher, error) {
	if config.Output == nil {
		return nil, errors.New("dispatch: output is required")
	}
	if config.Opener == nil {
		return nil, errors.New("dispatch: opener is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dispatcher := &Dispatcher{
		options: config.Options.Resolve(),
		output:  config.Output,
		opener:  config.Opener,
		logger:  logger,
	}
	if dispatcher.options.Cooked() {
		dispatcher.cook = cook.New(cook.ConfigFromOptions(dispatcher.options), config.Decoder)
		return dispatcher, nil
	}

	if config.Sizer == nil {
		return nil, errors.New("dispatch: raw mode requires a buffer sizer")
	}
	dispatcher.raw = rawcopy.New(config.Output.Raw(), config.Sizer.Size)
	dispatcher.kcopy = kcopy.New(config.CopyRange, dispatcher.raw, logger)
	return dispatcher, nil
}

// Run processes operands in order, then closes the output. An empty
// list means standard input. The returned error is non-nil only for
// failures that abort the run; per-input failures are logged and
// counted in the result.
func (d *Dispatcher) Run(operands []string) (Result, error) {
	if len(operands) == 0 {
		operands = []string{source.StdinOperand}
	}
	if d.raw != nil {
		defer d.raw.Close()
	}

	if d.options.Lock {
		if err := d.output.Lock(); err != nil {
			return Result{}, err
		}
	}

	var result Result
	for _, operand := range operands {
		result.Inputs++
		if err := d.process(operand); err != nil {
			var readError *rawcopy.ReadError
			if !errors.As(err, &readError) {
				return result, err
			}
			result.Failures++
		}
	}

	if err := d.output.Close(); err != nil {
		return result, err
	}
	return result, nil
}

// process copies one operand. Open and read failures are logged here
// and returned as a [*rawcopy.ReadError]; every other error is fatal.
func (d *Dispatcher) process(operand string) error {
	input, err := d.opener.Open(operand)
	if err != nil {
		d.logger.Warn("cannot open input", "input", operand, "error", err)
		return &rawcopy.ReadError{Err: err}
	}
	defer input.Close()

	if d.cook != nil {
		err = d.cook.Cook(d.output, input)
	} else {
		_, err = d.kcopy.Copy(d.output.Fd(), input)
	}

	if rawcopy.IsReadError(err) {
		d.logger.Warn("read failed", "input", input.Name(), "error", err)
	}
	return err
}
