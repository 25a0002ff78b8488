// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cook

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decoder turns bytes of one fixed encoding into characters. A Decoder
// carries no state between calls.
type Decoder interface {
	// SequenceLength returns how many bytes the sequence starting with
	// lead occupies if it is valid. Bytes that cannot start a sequence
	// report 1.
	SequenceLength(lead byte) int

	// Decode decodes the character at the start of p. It returns the
	// character and the number of bytes it occupies, or size 0 if p
	// does not start with a valid sequence.
	Decode(p []byte) (r rune, size int)

	// Printable reports whether r is printable in this encoding.
	Printable(r rune) bool
}

// UTF8 decodes UTF-8 as defined by RFC 3629: overlong forms,
// surrogates, and code points above U+10FFFF are invalid.
var UTF8 Decoder = utf8Decoder{}

// Byte treats every byte as one character, as the C and POSIX locales
// do. Only ASCII graphic characters and space are printable.
var Byte Decoder = byteDecoder{}

type utf8Decoder struct{}

func (utf8Decoder) SequenceLength(lead byte) int {
	switch {
	case lead < utf8.RuneSelf:
		return 1
	case lead >= 0xC2 && lead <= 0xDF:
		return 2
	case lead >= 0xE0 && lead <= 0xEF:
		return 3
	case lead >= 0xF0 && lead <= 0xF4:
		return 4
	default:
		return 1
	}
}

func (utf8Decoder) Decode(p []byte) (rune, int) {
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0
	}
	return r, size
}

func (utf8Decoder) Printable(r rune) bool {
	return unicode.IsGraphic(r)
}

type byteDecoder struct{}

func (byteDecoder) SequenceLength(byte) int { return 1 }

func (byteDecoder) Decode(p []byte) (rune, int) {
	if len(p) == 0 {
		return 0, 0
	}
	return rune(p[0]), 1
}

func (byteDecoder) Printable(r rune) bool {
	return r >= ' ' && r < 0x7F
}

// DecoderForLocale picks the decoder for the character encoding named
// by the environment, consulting LC_ALL, LC_CTYPE, and LANG in that
// order. A UTF-8 codeset selects [UTF8]; anything else, including an
// unset environment and the C and POSIX locales, selects [Byte].
func DecoderForLocale(getenv func(string) string) Decoder {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := getenv(name)
		if value == "" {
			continue
		}
		if isUTF8Locale(value) {
			return UTF8
		}
		return Byte
	}
	return Byte
}

// isUTF8Locale reports whether a locale name such as "en_US.UTF-8" or
// "de_DE.utf8@euro" carries a UTF-8 codeset.
func isUTF8Locale(locale string) bool {
	_, codeset, found := strings.Cut(locale, ".")
	if !found {
		return false
	}
	codeset, _, _ = strings.Cut(codeset, "@")
	return strings.EqualFold(codeset, "UTF-8") || strings.EqualFold(codeset, "UTF8")
}
