/*
Package fresnel implements bidirectional grammars: declarative descriptions
of sequence formats which act as a parser and as a printer at the same time.

Description

A grammar, in the sense of this package, is a pair of pure functions over a
sequence type S and a value type A:

   construct: (A, S) → S
   match:     S → (A, S) | failure

“construct” prepends the representation of a value to the rest of an output
sequence; “match” splits the representation of a value off the front of an
input sequence. Grammars are composed from a handful of primitives
(Element, Satisfy, Symbol, Literal, EOF) with an algebra of combinators
(Map, Seq, Choice, Many, Chain, Optional, Default, Between, …). The point of
composing a single description instead of maintaining a parser and a printer
side by side is a guaranteed consistency relationship between the two
directions, often called the prism laws:

(1) If match(s) succeeds with value a and remainder s', then
construct(a, s') reproduces s.

(2) match(construct(a, s')) succeeds with exactly a and s'.

Both laws hold for every primitive of this package and are preserved by
every combinator, quantified over the subset of values and sequences a
grammar accepts. A small number of combinators are deliberately lossy
(Default collapses all non-matching inputs to one value) or asymmetric
(Replicate truncates on construct); their documentation says so explicitly.

Matching is single-pass and deterministic in the style of PEG parsers:
choice is ordered and commits to the first alternative that succeeds, and
there is no backtracking past an already committed sequencing step. A failed
match reports no position and no message; it merely hands back a
failure-time sequence.

Contents

The base package defines the Grammar type, the sequence capability the
primitives require from a container (interface Sequence), the primitive
constructors and the combinators, and the two evaluator entry points Parse
and Print. Concrete sequence implementations (text, byte buffers, token
lists) live in sub-package seq. Sub-package numeral derives integer
grammars from the primitives. Sub-package rules holds named-rule sets for
recursive grammar definitions, and sub-package scan wraps a grammar into a
bufio.Scanner-like driver for streaming repeated matches.

Grammars are immutable values. They are built once, typically at program
initialization, and may be shared freely between goroutines without
synchronization; evaluation has no internal state.

Caveats

A grammar evaluates nothing lazily and performs no lookahead beyond the
single committed step, so it is not a general context-free-grammar engine.
Unbounded repetition (Many, Many1) requires every successful inner match to
consume input; see the respective combinator documentation.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fresnel
