package fresnel

// Empty is the part of the sequence capability needed for printing only:
// the production of an identity sequence. Empty must be callable on the
// zero value of S.
type Empty[S any] interface {
	Empty() S
}

// Sequence is the capability a container type has to offer to serve as
// input and output of grammars: prepend one element, split off the head
// element, and produce an identity sequence. Any container satisfying this
// triad — character strings, byte buffers, token lists — can be used
// without modification to this package; sub-package seq provides ready-made
// implementations.
//
// Sequences are treated as read-only values: Cons and Uncons return fresh
// sequences and leave their receiver untouched.
type Sequence[S, A any] interface {
	Empty[S]
	Cons(a A) S
	Uncons() (A, S, bool)
}

// Grammar describes the format of a value of type A within a sequence of
// type S, bidirectionally: it matches (parses) the value off the front of
// an input sequence and constructs (prints) the value onto the front of an
// output sequence. The two directions are consistent in the sense of the
// prism laws (see the package documentation).
//
// Grammars are immutable and may be shared freely.
type Grammar[S, A any] struct {
	construct func(A, S) S
	match     func(S) (A, S, bool)
}

// New creates a grammar from its two halves. Clients use New to define
// their own primitives; the laws relating construct and match are the
// client's obligation then.
//
// match reports success through its boolean. On failure it returns the
// failure-time sequence: usually the unmodified input, but see Map for a
// deliberate exception.
func New[S, A any](construct func(A, S) S, match func(S) (A, S, bool)) Grammar[S, A] {
	return Grammar[S, A]{construct: construct, match: match}
}

// Construct prepends the representation of a onto rest.
func (g Grammar[S, A]) Construct(a A, rest S) S {
	return g.construct(a, rest)
}

// Match splits a value off the front of s, returning the value and the
// unconsumed remainder. On failure ok is false and the returned sequence
// is the failure-time sequence.
func (g Grammar[S, A]) Match(s S) (a A, rest S, ok bool) {
	return g.match(s)
}

// --- Primitives ------------------------------------------------------------

// Element matches any single element of the sequence, failing only on empty
// input. Construct prepends the given element.
func Element[S Sequence[S, A], A any]() Grammar[S, A] {
	return New(
		func(a A, rest S) S {
			return rest.Cons(a)
		},
		func(s S) (A, S, bool) {
			if a, rest, ok := s.Uncons(); ok {
				return a, rest, true
			}
			var none A
			return none, s, false
		})
}

// Satisfy matches a single element for which pred holds; it fails, leaving
// the input untouched, on empty input or when the head element fails pred.
//
// Construct does not re-check the predicate: it trusts the caller to supply
// an element the predicate would accept. Constructing with an element
// outside the predicate's domain yields a sequence the same grammar will
// not match back.
func Satisfy[S Sequence[S, A], A any](pred func(A) bool) Grammar[S, A] {
	return New(
		func(a A, rest S) S {
			return rest.Cons(a)
		},
		func(s S) (A, S, bool) {
			if a, rest, ok := s.Uncons(); ok && pred(a) {
				return a, rest, true
			}
			var none A
			return none, s, false
		})
}

// Symbol matches exactly the element x, yielding it.
func Symbol[S Sequence[S, A], A comparable](x A) Grammar[S, A] {
	return Satisfy[S](func(a A) bool { return a == x })
}

// Literal matches exactly the element x, but transports no value: the
// grammar is over Unit and construct always writes x. Use it for fixed
// syntax like delimiters and keywords.
func Literal[S Sequence[S, A], A comparable](x A) Grammar[S, Unit] {
	return New(
		func(_ Unit, rest S) S {
			return rest.Cons(x)
		},
		func(s S) (Unit, S, bool) {
			if a, rest, ok := s.Uncons(); ok && a == x {
				return Unit{}, rest, true
			}
			return Unit{}, s, false
		})
}

// EOF matches the empty sequence and nothing else; construct writes
// nothing. Parse does not by itself require full consumption of the input,
// so callers wanting exactness sequence their grammar with EOF.
func EOF[S Sequence[S, A], A any]() Grammar[S, Unit] {
	return New(
		func(_ Unit, rest S) S {
			return rest
		},
		func(s S) (Unit, S, bool) {
			if _, _, ok := s.Uncons(); ok {
				return Unit{}, s, false
			}
			return Unit{}, s, true
		})
}

// --- Evaluator -------------------------------------------------------------

// Parse runs a grammar as a parser over an input sequence. It returns the
// matched value, discarding any unconsumed remainder; ok is false if the
// grammar did not match.
func Parse[S, A any](g Grammar[S, A], s S) (a A, ok bool) {
	a, _, ok = g.match(s)
	return a, ok
}

// Print runs a grammar as a printer, producing the representation of a on
// an initially empty sequence.
func Print[S Empty[S], A any](g Grammar[S, A], a A) S {
	var s S
	return g.construct(a, s.Empty())
}
