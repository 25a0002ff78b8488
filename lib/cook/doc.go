// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cook implements the character-level transform applied when a
// run asks for line numbers, end markers, tab markers, visible control
// characters, or blank-line squeezing.
//
// [Engine.Cook] reads one input byte by byte. At the start of every
// line it applies, in order, the blank-line squeeze check, then line
// numbering; then it renders the byte:
//
//   - '\n' is preceded by '$' when end markers are on.
//   - '\t' becomes "^I" when tab markers are on, and passes through
//     otherwise.
//   - Any other byte, when non-printing display is on, is decoded
//     together with its continuation bytes into one character. A byte
//     that does not start a valid sequence becomes "M-" plus its low
//     seven bits; decoding resumes at the very next byte. A character
//     outside ASCII that the encoding does not consider printable gets
//     the same "M-" treatment. Control characters then render as "^"
//     plus the character OR 0x40, and DEL as "^?".
//
// Decoding goes through an explicit [Decoder] value. The engine peeks
// exactly the number of bytes the lead byte announces and consumes only
// what the decoder accepted, so recovering from an invalid sequence is
// a matter of consuming one byte; there is no hidden shift state to
// reset. Peeking no further than needed also keeps interactive input
// responsive: a character is rendered as soon as its own bytes arrive.
//
// Line numbers, the squeeze flag, and the line-start flag live in a
// [State] created fresh for every call, so an input named twice (for
// example standard input) starts over from line 1.
package cook
