/*
Package scan drives repeated grammar matches over an input sequence.

Typical Usage

Scanner provides an interface similar to bufio.Scanner for stepping through
the values a grammar matches one after another in an input sequence.
Successive calls to a scanner's Next() method each perform one complete
match of the grammar against the remaining input; clients read the matched
value with Value().

   g := fresnel.Many1(fresnel.Satisfy[seq.Text](unicode.IsLetter))
   sc := scan.NewScanner(g)
   sc.Init("lorem ipsum")  // words and blanks, say
   for sc.Next() {
     // do something with sc.Value()
   }

The scanner stops at the first failing match; Rest() then holds the
unconsumed input. This is the Many combinator turned inside out, for
callers who want to act on each value as it arrives instead of collecting a
slice. The same contract as for Many applies: every successful match must
consume input, or Next will return true forever.

Evaluation stays fully synchronous; a scanner adds iteration state around a
grammar but no buffering and no goroutines. Scanners are stateful and not
safe for concurrent use; the grammar inside remains freely shareable.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scan

import (
	"errors"

	"github.com/npillmayer/fresnel"
	"github.com/npillmayer/fresnel/internal/tracing"
)

// ErrNotInitialized is returned by Err if a scanner's Next-function is
// called without first setting an input with Init(...).
var ErrNotInitialized = errors.New("fresnel scanner not initialized; must call Init(...) first")

// A Scanner steps through an input sequence, matching a grammar once per
// call to Next.
type Scanner[S, A any] struct {
	grammar fresnel.Grammar[S, A] // the work horse
	rest    S                     // unconsumed input
	value   A                     // most recent matched value
	count   int                   // number of successful matches so far
	inited  bool                  // Init has been called
	done    bool                  // a match has failed; no further progress
	err     error
}

// NewScanner creates a scanner for a grammar. Call Init before Next.
func NewScanner[S, A any](g fresnel.Grammar[S, A]) *Scanner[S, A] {
	return &Scanner[S, A]{grammar: g}
}

// Init sets the input sequence to scan and resets the scanner state.
// A scanner may be re-initialized with fresh input after use.
func (sc *Scanner[S, A]) Init(input S) {
	sc.rest = input
	sc.count = 0
	sc.inited = true
	sc.done = false
	sc.err = nil
}

// Next matches the grammar once against the remaining input. It returns
// true on success, with the value available from Value(); it returns false
// at the first failing match and on every call thereafter.
func (sc *Scanner[S, A]) Next() bool {
	if !sc.inited {
		sc.err = ErrNotInitialized
		return false
	}
	if sc.done {
		return false
	}
	a, rest, ok := sc.grammar.Match(sc.rest)
	if !ok {
		sc.done = true
		tracing.P("scan", sc.count).Debugf("no further match")
		return false
	}
	sc.value = a
	sc.rest = rest
	sc.count++
	tracing.P("scan", sc.count).Debugf("matched %v", a)
	return true
}

// Value returns the value matched by the most recent successful call to
// Next.
func (sc *Scanner[S, A]) Value() A {
	return sc.value
}

// Rest returns the unconsumed remainder of the input.
func (sc *Scanner[S, A]) Rest() S {
	return sc.rest
}

// Err returns the first usage error that occurred during scanning.
// A failing grammar match is not an error; it simply ends the scan.
func (sc *Scanner[S, A]) Err() error {
	return sc.err
}
