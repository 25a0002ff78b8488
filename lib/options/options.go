// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package options

// Options is the immutable run configuration. The zero value selects a
// plain raw copy with a buffered output stream.
type Options struct {
	// NumberNonBlank numbers only lines that are not empty. Implies
	// NumberLines.
	NumberNonBlank bool `flag:"number-nonblank,b" desc:"number non-blank output lines"`

	// ShowEnds prints a '$' before each line terminator. Implies
	// ShowNonPrinting.
	ShowEnds bool `flag:"show-ends,e" desc:"display $ at the end of each line (implies -v)"`

	// Lock takes an exclusive advisory write lock on standard output
	// before any input is copied, so that concurrent writers to the
	// same file do not interleave.
	Lock bool `flag:"lock,l" desc:"take an exclusive lock on standard output"`

	// NumberLines prefixes each output line with its line number.
	NumberLines bool `flag:"number,n" desc:"number all output lines"`

	// SqueezeBlank collapses runs of adjacent empty lines into one.
	SqueezeBlank bool `flag:"squeeze-blank,s" desc:"suppress repeated empty output lines"`

	// ShowTabs renders tab characters as ^I. Implies ShowNonPrinting.
	ShowTabs bool `flag:"show-tabs,t" desc:"display tabs as ^I (implies -v)"`

	// Unbuffered writes every rendered character through to the output
	// descriptor immediately.
	Unbuffered bool `flag:"unbuffered,u" desc:"disable output buffering"`

	// ShowNonPrinting renders control characters as ^X and characters
	// outside the printable range with an M- prefix.
	ShowNonPrinting bool `flag:"show-nonprinting,v" desc:"display non-printing characters visibly"`
}

// Resolve returns a copy of o with the implications between switches
// applied. Resolve is idempotent.
func (o Options) Resolve() Options {
	if o.NumberNonBlank {
		o.NumberLines = true
	}
	if o.ShowEnds || o.ShowTabs {
		o.ShowNonPrinting = true
	}
	return o
}

// Cooked reports whether the run needs character-level inspection of
// its inputs. Lock and Unbuffered affect only the output stream and
// never force cooked mode.
func (o Options) Cooked() bool {
	return o.NumberNonBlank || o.ShowEnds || o.NumberLines ||
		o.SqueezeBlank || o.ShowTabs || o.ShowNonPrinting
}
