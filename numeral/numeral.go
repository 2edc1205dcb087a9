/*
Package numeral derives integer grammars from the fresnel primitives.

Description

A numeral is an optional sign symbol followed by one or more digits,
adapted to a Go integer type through strconv. The grammar demonstrates the
layered defense a bidirectional grammar gives for free: the character-level
predicates admit candidate runes (all of Unicode category Nd for digits),
and the numeric conversion rejects whatever does not fit the target type —
non-ASCII digits, a sign before an unsigned target, overflow of the target
width.

Printing always produces the canonical decimal form: no plus sign, no
leading zeros. Inputs the grammar accepts in a non-canonical spelling
(“+1”, “007”) therefore re-print canonically.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package numeral

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/unicode/rangetable"

	"github.com/npillmayer/fresnel"
	"github.com/npillmayer/fresnel/internal/tracing"
)

// Signed is the constraint for integer grammars over signed target types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for integer grammars over unsigned target types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SignTable is the range table of sign runes a numeral may start with.
var SignTable = rangetable.New('+', '-')

// Digit matches a single digit rune, i.e. a rune of Unicode category Nd.
func Digit[S fresnel.Sequence[S, rune]]() fresnel.Grammar[S, rune] {
	return fresnel.Satisfy[S](func(r rune) bool {
		return unicode.Is(unicode.Nd, r)
	})
}

// Sign matches a single sign rune, '+' or '-'.
func Sign[S fresnel.Sequence[S, rune]]() fresnel.Grammar[S, rune] {
	return fresnel.Satisfy[S](func(r rune) bool {
		return unicode.Is(SignTable, r)
	})
}

// digits is the raw shape every numeral shares: an optional sign and at
// least one digit.
type digits = fresnel.Pair[fresnel.Option[rune], fresnel.NonEmpty[rune]]

func raw[S fresnel.Sequence[S, rune]]() fresnel.Grammar[S, digits] {
	return fresnel.Seq(fresnel.Optional(Sign[S]()), fresnel.Many1(Digit[S]()))
}

// Int returns a grammar for signed decimal integers of target type N.
// Matching rejects numerals strconv cannot convert as well as values
// outside the range of N; rejection happens after the sign and digit runes
// have been consumed, so the failure-time sequence is the post-numeral
// remainder.
func Int[S fresnel.Sequence[S, rune], N Signed]() fresnel.Grammar[S, N] {
	return fresnel.Map(raw[S](), decodeInt[N], encodeInt[N])
}

// Uint returns a grammar for unsigned decimal integers of target type N.
// Any sign, including '+', rejects.
func Uint[S fresnel.Sequence[S, rune], N Unsigned]() fresnel.Grammar[S, N] {
	return fresnel.Map(raw[S](), decodeUint[N], encodeUint[N])
}

func decodeInt[N Signed](d digits) (N, bool) {
	numeral := joinDigits(d)
	i, err := strconv.ParseInt(numeral, 10, 64)
	if err != nil {
		tracing.P("numeral", numeral).Debugf("rejected: %v", err)
		return 0, false
	}
	n := N(i)
	if int64(n) != i { // out of range for the target width
		tracing.P("numeral", numeral).Debugf("rejected: overflows target type")
		return 0, false
	}
	return n, true
}

func encodeInt[N Signed](n N) digits {
	return splitDigits(strconv.FormatInt(int64(n), 10))
}

func decodeUint[N Unsigned](d digits) (N, bool) {
	numeral := joinDigits(d)
	u, err := strconv.ParseUint(numeral, 10, 64)
	if err != nil {
		tracing.P("numeral", numeral).Debugf("rejected: %v", err)
		return 0, false
	}
	n := N(u)
	if uint64(n) != u {
		tracing.P("numeral", numeral).Debugf("rejected: overflows target type")
		return 0, false
	}
	return n, true
}

func encodeUint[N Unsigned](n N) digits {
	return splitDigits(strconv.FormatUint(uint64(n), 10))
}

// joinDigits flattens sign and digit runes into one string for strconv.
func joinDigits(d digits) string {
	b := borrowScratch()
	defer releaseScratch(b)
	if sign, ok := d.First.Get(); ok {
		b.WriteRune(sign)
	}
	b.WriteRune(d.Second.Head)
	for _, r := range d.Second.Tail {
		b.WriteRune(r)
	}
	return b.String()
}

// splitDigits splits a canonical strconv numeral back into sign and digit
// runes. strconv never formats a '+'.
func splitDigits(numeral string) digits {
	sign := fresnel.None[rune]()
	if numeral[0] == '-' {
		sign = fresnel.Some('-')
		numeral = numeral[1:]
	}
	runes := []rune(numeral)
	return fresnel.PairOf(sign, fresnel.NonEmpty[rune]{Head: runes[0], Tail: runes[1:]})
}

// Joining digit runes is a hot path when a numeral grammar sits inside a
// repetition; the short-lived string builders are pooled.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &strings.Builder{}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

func borrowScratch() *strings.Builder {
	o, _ := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	return o.(*strings.Builder)
}

// Resets the builder and puts it back into the pool.
func releaseScratch(b *strings.Builder) {
	b.Reset()
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, b)
}
