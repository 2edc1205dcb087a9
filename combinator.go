package fresnel

import (
	"sync"

	"github.com/npillmayer/fresnel/internal/tracing"
)

// The combinators in this file build composite grammars from existing ones.
// None of them require the sequence capability; only the primitives do.
// Every combinator preserves the prism laws of its operands, with the
// deliberately lossy exceptions called out in the documentation of Default
// and Replicate.

// Map lifts a grammar over A to a grammar over B, given a total encoding
// B → A and a partial decoding A → B.
//
// When decode rejects a value the underlying grammar matched, the overall
// match fails with the post-match remainder, not with the original input:
// the prefix the underlying grammar consumed stays consumed. Composite
// grammars built on top of Map observe this failure-time sequence, so it is
// part of the contract.
func Map[S, A, B any](g Grammar[S, A], decode func(A) (B, bool), encode func(B) A) Grammar[S, B] {
	return New(
		func(b B, rest S) S {
			return g.construct(encode(b), rest)
		},
		func(s S) (B, S, bool) {
			var none B
			a, rest, ok := g.match(s)
			if !ok {
				return none, rest, false
			}
			b, ok := decode(a)
			if !ok {
				return none, rest, false // post-match remainder, see above
			}
			return b, rest, true
		})
}

// --- Sequencing ------------------------------------------------------------

// Seq pairs two grammars left to right. Matching is ordered and committed:
// if g2 fails after g1 succeeded, the overall match fails without restoring
// what g1 consumed.
func Seq[S, A, B any](g1 Grammar[S, A], g2 Grammar[S, B]) Grammar[S, Pair[A, B]] {
	return New(
		func(p Pair[A, B], rest S) S {
			return g1.construct(p.First, g2.construct(p.Second, rest))
		},
		func(s S) (Pair[A, B], S, bool) {
			var none Pair[A, B]
			a, rest, ok := g1.match(s)
			if !ok {
				return none, rest, false
			}
			b, rest, ok := g2.match(rest)
			if !ok {
				return none, rest, false
			}
			return PairOf(a, b), rest, true
		})
}

// SkipThen sequences a Unit grammar before g, keeping only g's result.
func SkipThen[S, B any](u Grammar[S, Unit], g Grammar[S, B]) Grammar[S, B] {
	return Map(Seq(u, g),
		func(p Pair[Unit, B]) (B, bool) { return p.Second, true },
		func(b B) Pair[Unit, B] { return PairOf(Unit{}, b) })
}

// ThenSkip sequences a Unit grammar after g, keeping only g's result.
func ThenSkip[S, A any](g Grammar[S, A], u Grammar[S, Unit]) Grammar[S, A] {
	return Map(Seq(g, u),
		func(p Pair[A, Unit]) (A, bool) { return p.First, true },
		func(a A) Pair[A, Unit] { return PairOf(a, Unit{}) })
}

// Between brackets a grammar with two Unit delimiter grammars, discarding
// the delimiters' results.
func Between[S, A any](open, close Grammar[S, Unit], inner Grammar[S, A]) Grammar[S, A] {
	return SkipThen(open, ThenSkip(inner, close))
}

// --- Choice ----------------------------------------------------------------

// Choice tries two alternatives in order: g1 on the input, and only if g1
// fails, g2 on the same original input. The first success wins; there is no
// ambiguity detection. Construct dispatches on which alternative the Either
// holds.
func Choice[S, A, B any](g1 Grammar[S, A], g2 Grammar[S, B]) Grammar[S, Either[A, B]] {
	return New(
		func(e Either[A, B], rest S) S {
			if b, ok := e.Right(); ok {
				return g2.construct(b, rest)
			}
			a, _ := e.Left()
			return g1.construct(a, rest)
		},
		func(s S) (Either[A, B], S, bool) {
			if a, rest, ok := g1.match(s); ok {
				return Left[A, B](a), rest, true
			}
			if b, rest, ok := g2.match(s); ok {
				return Right[A](b), rest, true
			}
			var none Either[A, B]
			return none, s, false
		})
}

// --- Repetition ------------------------------------------------------------

// Many matches a grammar zero or more times, greedily, collecting the
// results in order. Its match never fails: when the inner grammar stops
// matching, the failing attempt's failure-time sequence becomes the overall
// remainder. Construct prepends each element in order, so printed order
// equals slice order.
//
// Every successful inner match must consume input. A grammar which can
// succeed on an empty match (Optional, Default, EOF, Many itself) makes
// Many loop forever; this is a usage contract Many cannot enforce.
func Many[S, A any](g Grammar[S, A]) Grammar[S, []A] {
	return New(
		func(as []A, rest S) S {
			for i := len(as) - 1; i >= 0; i-- {
				rest = g.construct(as[i], rest)
			}
			return rest
		},
		func(s S) ([]A, S, bool) {
			var as []A
			for {
				a, rest, ok := g.match(s)
				if !ok {
					return as, rest, true
				}
				as = append(as, a)
				s = rest
			}
		})
}

// Many1 matches a grammar one or more times, greedily. It fails when the
// first match fails; afterwards it behaves like Many. The same
// must-consume contract as for Many applies.
func Many1[S, A any](g Grammar[S, A]) Grammar[S, NonEmpty[A]] {
	more := Many(g)
	return New(
		func(n NonEmpty[A], rest S) S {
			return g.construct(n.Head, more.construct(n.Tail, rest))
		},
		func(s S) (NonEmpty[A], S, bool) {
			var none NonEmpty[A]
			head, rest, ok := g.match(s)
			if !ok {
				return none, rest, false
			}
			tail, rest, _ := more.match(rest)
			return NonEmpty[A]{Head: head, Tail: tail}, rest, true
		})
}

// Replicate matches a grammar exactly n times; fewer successes fail the
// overall match. Construct is asymmetric on purpose: it writes at most n
// elements from the supplied slice, silently dropping extras, and writes
// fewer than n when the slice is shorter, without padding and without
// error. With n <= 0 it matches nothing and writes nothing.
func Replicate[S, A any](n int, g Grammar[S, A]) Grammar[S, []A] {
	return New(
		func(as []A, rest S) S {
			if len(as) > n {
				as = as[:n]
			}
			for i := len(as) - 1; i >= 0; i-- {
				rest = g.construct(as[i], rest)
			}
			return rest
		},
		func(s S) ([]A, S, bool) {
			var as []A
			for i := 0; i < n; i++ {
				a, rest, ok := g.match(s)
				if !ok {
					return nil, rest, false
				}
				as = append(as, a)
				s = rest
			}
			return as, s, true
		})
}

// --- Dependent continuation ------------------------------------------------

// Chain expresses “the value just read determines the grammar for what
// follows”, e.g. a length prefix followed by exactly that many payload
// elements. Matching runs g, feeds its result — the determinant — to next
// and continues with the grammar next returns. Constructing recovers the
// determinant from the final value via det, writes it through g, and writes
// the value through the continuation grammar.
//
// det must be consistent with next: for every value b the continuation
// grammar next(det(b)) can produce, det(b) has to be the determinant that
// selected it. Otherwise the round-trip laws break; this is the caller's
// obligation.
func Chain[S, A, B any](g Grammar[S, A], next func(A) Grammar[S, B], det func(B) A) Grammar[S, B] {
	return New(
		func(b B, rest S) S {
			a := det(b)
			return g.construct(a, next(a).construct(b, rest))
		},
		func(s S) (B, S, bool) {
			var none B
			a, rest, ok := g.match(s)
			if !ok {
				return none, rest, false
			}
			return next(a).match(rest)
		})
}

// --- Defaulting and optionality --------------------------------------------

// Default makes a grammar total on the matching side: when g fails, the
// match succeeds with d, consuming nothing. Construct writes nothing when
// the given value equals d, and delegates to g otherwise.
//
// This is intentionally lossy: distinct inputs that both fail g's match
// collapse to d, and print back as the empty representation.
func Default[S any, A comparable](d A, g Grammar[S, A]) Grammar[S, A] {
	return New(
		func(a A, rest S) S {
			if a == d {
				return rest
			}
			return g.construct(a, rest)
		},
		func(s S) (A, S, bool) {
			if a, rest, ok := g.match(s); ok {
				return a, rest, true
			}
			return d, s, true
		})
}

// Optional matches a grammar zero or one time. Its match never fails:
// when g fails, the result is absent and nothing is consumed. Construct of
// a present value delegates to g, of an absent value writes nothing.
func Optional[S, A any](g Grammar[S, A]) Grammar[S, Option[A]] {
	return New(
		func(o Option[A], rest S) S {
			if a, ok := o.Get(); ok {
				return g.construct(a, rest)
			}
			return rest
		},
		func(s S) (Option[A], S, bool) {
			if a, rest, ok := g.match(s); ok {
				return Some(a), rest, true
			}
			return None[A](), s, true
		})
}

// --- Recursion and observability -------------------------------------------

// Defer creates a grammar from a factory which is invoked lazily, on first
// use, and at most once. Recursive grammars cannot be built by plain value
// composition — the definition would expand forever — so the recursive
// reference is routed through Defer (or through a rule set, see sub-package
// rules):
//
//    var parens fresnel.Grammar[seq.Text, int]
//    parens = ...Between(open, close, fresnel.Defer(func() fresnel.Grammar[seq.Text, int] {
//        return parens
//    }))...
//
// The factory call is synchronized, so deferred grammars stay freely
// shareable between goroutines.
func Defer[S, A any](factory func() Grammar[S, A]) Grammar[S, A] {
	var once sync.Once
	var g Grammar[S, A]
	force := func() Grammar[S, A] {
		once.Do(func() { g = factory() })
		return g
	}
	return New(
		func(a A, rest S) S {
			return force().construct(a, rest)
		},
		func(s S) (A, S, bool) {
			return force().match(s)
		})
}

// Traced wraps a grammar so that every match and construct is reported to
// the tracer, tagged with a label. The wrapped grammar is otherwise
// unchanged.
func Traced[S, A any](label string, g Grammar[S, A]) Grammar[S, A] {
	return New(
		func(a A, rest S) S {
			tracing.P("grammar", label).Debugf("construct %v", a)
			return g.construct(a, rest)
		},
		func(s S) (A, S, bool) {
			a, rest, ok := g.match(s)
			if ok {
				tracing.P("grammar", label).Debugf("matched %v", a)
			} else {
				tracing.P("grammar", label).Debugf("match failed")
			}
			return a, rest, ok
		})
}
