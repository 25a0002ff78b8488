// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cook

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/bureau-foundation/cat/lib/options"
	"github.com/bureau-foundation/cat/lib/rawcopy"
)

// lineNumberWidth is the width of the right-justified line counter.
const lineNumberWidth = 6

// Config selects the transforms. Build it with [ConfigFromOptions] so
// the implications between options are applied.
type Config struct {
	NumberLines     bool
	NumberNonBlank  bool
	ShowEnds        bool
	SqueezeBlank    bool
	ShowTabs        bool
	ShowNonPrinting bool
}

// ConfigFromOptions resolves o and extracts the cooked-mode switches.
func ConfigFromOptions(o options.Options) Config {
	o = o.Resolve()
	return Config{
		NumberLines:     o.NumberLines,
		NumberNonBlank:  o.NumberNonBlank,
		ShowEnds:        o.ShowEnds,
		SqueezeBlank:    o.SqueezeBlank,
		ShowTabs:        o.ShowTabs,
		ShowNonPrinting: o.ShowNonPrinting,
	}
}

// Writer is the output side of the transform.
type Writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
	WriteRune(r rune) (int, error)
}

// State is the transform state for one input.
type State struct {
	// Line is the number of the last numbered line.
	Line int

	// LineStart is true when the next byte begins a line: at the start
	// of input and after every '\n'.
	LineStart bool

	// Squeezing is true while a run of blank lines is being
	// suppressed; the first blank line of the run has been emitted.
	Squeezing bool
}

// NewState returns the state for the start of an input.
func NewState() State {
	return State{LineStart: true}
}

// Engine applies one Config with one Decoder. An Engine is reused
// across inputs but must not be used concurrently.
type Engine struct {
	config  Config
	decoder Decoder
	reader  *bufio.Reader
	scratch []byte
	single  [1]byte
}

// New returns an engine. A nil decoder means [UTF8].
func New(config Config, decoder Decoder) *Engine {
	if decoder == nil {
		decoder = UTF8
	}
	return &Engine{
		config:  config,
		decoder: decoder,
		reader:  bufio.NewReader(nil),
		scratch: make([]byte, 0, 24),
	}
}

// Cook transforms all of input onto output. It returns nil at end of
// input, a [*rawcopy.ReadError] if input fails, and a
// [*rawcopy.WriteError] if output fails. Invalid byte sequences are not
// errors; they are rendered and skipped.
func (e *Engine) Cook(output Writer, input io.Reader) error {
	e.reader.Reset(input)
	defer e.reader.Reset(nil)

	out := &stickyWriter{Writer: output}
	state := NewState()

	for out.err == nil {
		current, err := e.reader.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &rawcopy.ReadError{Err: err}
		}

		if state.LineStart {
			if e.config.SqueezeBlank {
				if current == '\n' {
					if state.Squeezing {
						continue
					}
					state.Squeezing = true
				} else {
					state.Squeezing = false
				}
			}
			if e.config.NumberLines {
				if !e.config.NumberNonBlank || current != '\n' {
					state.Line++
					e.writeLineNumber(out, state.Line)
				} else if e.config.ShowEnds {
					e.writeBlankNumber(out)
				}
			}
		}
		state.LineStart = current == '\n'

		switch {
		case current == '\n':
			if e.config.ShowEnds {
				out.WriteByte('$')
			}
		case current == '\t':
			if e.config.ShowTabs {
				out.WriteString("^I")
				continue
			}
		case e.config.ShowNonPrinting:
			if err := e.renderCharacter(out, current); err != nil {
				return err
			}
			continue
		}
		out.WriteByte(current)
	}
	return asWriteError(out.err)
}

// asWriteError classifies an output failure as fatal without wrapping
// an error that is already a [*rawcopy.WriteError].
func asWriteError(err error) error {
	var writeError *rawcopy.WriteError
	if errors.As(err, &writeError) {
		return err
	}
	return &rawcopy.WriteError{Err: err}
}

// renderCharacter decodes the character whose lead byte was just read
// and writes its visible form.
func (e *Engine) renderCharacter(out *stickyWriter, lead byte) error {
	var character rune
	var size int
	if length := e.decoder.SequenceLength(lead); length == 1 {
		e.single[0] = lead
		character, size = e.decoder.Decode(e.single[:])
	} else {
		if err := e.reader.UnreadByte(); err != nil {
			return &rawcopy.ReadError{Err: err}
		}
		sequence, err := e.reader.Peek(length)
		if len(sequence) < length && err != nil && err != io.EOF {
			return &rawcopy.ReadError{Err: err}
		}
		character, size = e.decoder.Decode(sequence)
		if _, err := e.reader.Discard(max(size, 1)); err != nil {
			return &rawcopy.ReadError{Err: err}
		}
	}

	// size 0: the lead byte is an invalid unit on its own. Only it has
	// been consumed; decoding resumes at the byte after it.
	invalid := size == 0
	if invalid {
		character = rune(lead)
	}

	if invalid || (character >= 0x80 && !e.decoder.Printable(character)) {
		out.WriteString("M-")
		character &= 0x7F
	}
	if character < ' ' || character == 0x7F {
		out.WriteByte('^')
		if character == 0x7F {
			out.WriteByte('?')
		} else {
			out.WriteByte(byte(character) | 0x40)
		}
		return nil
	}
	out.WriteRune(character)
	return nil
}

func (e *Engine) writeLineNumber(out *stickyWriter, line int) {
	digits := strconv.AppendInt(e.scratch[:0], int64(line), 10)
	for range lineNumberWidth - len(digits) {
		out.WriteByte(' ')
	}
	out.Write(digits)
	out.WriteByte('\t')
}

func (e *Engine) writeBlankNumber(out *stickyWriter) {
	for range lineNumberWidth {
		out.WriteByte(' ')
	}
	out.WriteByte('\t')
}

// stickyWriter records the first output error and drops every write
// after it, so the transform loop checks for failure once per byte.
type stickyWriter struct {
	Writer
	err error
}

func (w *stickyWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	count, err := w.Writer.Write(p)
	w.err = err
	return count, err
}

func (w *stickyWriter) WriteByte(c byte) error {
	if w.err != nil {
		return w.err
	}
	w.err = w.Writer.WriteByte(c)
	return w.err
}

func (w *stickyWriter) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	count, err := w.Writer.WriteString(s)
	w.err = err
	return count, err
}

func (w *stickyWriter) WriteRune(r rune) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	count, err := w.Writer.WriteRune(r)
	w.err = err
	return count, err
}
