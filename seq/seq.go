/*
Package seq provides concrete sequence types for bidirectional grammars.

Description

The grammar primitives of package fresnel require a capability triad from
their container type: prepend one element (Cons), split off the head
element (Uncons), and produce an identity sequence (Empty). This package
implements the triad for the containers clients most commonly parse and
print: Unicode text (Text, element type rune), raw byte buffers (Bytes,
element type byte) and generic token lists (Tokens, any element type).

All sequence types are read-only values: Cons and Uncons hand out fresh
sequences and never modify the one they were called on. This is what makes
it safe for combinators to hold on to a sequence across a failed match.

For token-level grammars sitting behind a real lexer, Drain pulls all
tokens out of a gorgo Tokenizer into a Tokens[Lexeme] sequence.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package seq

import "unicode/utf8"

// Text is a string of Unicode text, used as a sequence of runes.
//
// Uncons decodes the leading rune with the semantics of
// utf8.DecodeRuneInString: a byte which is no valid UTF-8 encoding is
// handed out as utf8.RuneError with a step of one byte.
type Text string

// Empty returns the empty text.
func (t Text) Empty() Text {
	return ""
}

// Cons prepends a single rune.
func (t Text) Cons(r rune) Text {
	return Text(r) + t
}

// Uncons splits off the first rune, or reports false on empty text.
func (t Text) Uncons() (rune, Text, bool) {
	if len(t) == 0 {
		return 0, t, false
	}
	r, size := utf8.DecodeRuneInString(string(t))
	return r, t[size:], true
}

// Bytes is a byte buffer, used as a sequence of single bytes.
type Bytes []byte

// Empty returns the empty buffer.
func (b Bytes) Empty() Bytes {
	return nil
}

// Cons prepends a single byte. The rest is copied, so the new sequence
// shares no array with sequences handed out earlier.
func (b Bytes) Cons(c byte) Bytes {
	buf := make(Bytes, 0, len(b)+1)
	buf = append(buf, c)
	return append(buf, b...)
}

// Uncons splits off the first byte, or reports false on an empty buffer.
func (b Bytes) Uncons() (byte, Bytes, bool) {
	if len(b) == 0 {
		return 0, b, false
	}
	return b[0], b[1:], true
}

// Tokens is a list of tokens of any type, for grammars operating on the
// output of a lexer rather than on raw text.
type Tokens[T any] []T

// Empty returns the empty token list.
func (toks Tokens[T]) Empty() Tokens[T] {
	return nil
}

// Cons prepends a single token. The rest is copied, so the new sequence
// shares no array with sequences handed out earlier.
func (toks Tokens[T]) Cons(t T) Tokens[T] {
	list := make(Tokens[T], 0, len(toks)+1)
	list = append(list, t)
	return append(list, toks...)
}

// Uncons splits off the first token, or reports false on an empty list.
func (toks Tokens[T]) Uncons() (T, Tokens[T], bool) {
	if len(toks) == 0 {
		var none T
		return none, toks, false
	}
	return toks[0], toks[1:], true
}
