package fresnel

import "fmt"

// Composite grammars carry their sub-results in a handful of small value
// types: Unit for grammars which transport no information, Pair for
// sequencing, Either for ordered choice, Option for optionality and
// NonEmpty for at-least-one repetition.

// Unit is the result type of grammars which consume or produce input
// without transporting a value, e.g. Literal and EOF.
type Unit struct{}

// Pair holds the two results of a sequencing step, in input order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf creates a pair from its two halves.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v,%v)", p.First, p.Second)
}

// Either is a tagged union of two alternatives. It is the result type of
// Choice, remembering which alternative matched.
type Either[A, B any] struct {
	isRight bool
	left    A
	right   B
}

// Left creates an Either holding the first alternative.
func Left[A, B any](a A) Either[A, B] {
	return Either[A, B]{left: a}
}

// Right creates an Either holding the second alternative.
func Right[A, B any](b B) Either[A, B] {
	return Either[A, B]{isRight: true, right: b}
}

// IsLeft is true if the first alternative is held.
func (e Either[A, B]) IsLeft() bool {
	return !e.isRight
}

// Left returns the first alternative, if held.
func (e Either[A, B]) Left() (A, bool) {
	return e.left, !e.isRight
}

// Right returns the second alternative, if held.
func (e Either[A, B]) Right() (B, bool) {
	return e.right, e.isRight
}

func (e Either[A, B]) String() string {
	if e.isRight {
		return fmt.Sprintf("right(%v)", e.right)
	}
	return fmt.Sprintf("left(%v)", e.left)
}

// Option holds a value or nothing. It is the result type of Optional.
type Option[A any] struct {
	value   A
	present bool
}

// Some creates an option holding a value.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, present: true}
}

// None creates an empty option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Get returns the held value, if present.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.present
}

// IsNone is true if no value is held.
func (o Option[A]) IsNone() bool {
	return !o.present
}

func (o Option[A]) String() string {
	if !o.present {
		return "none"
	}
	return fmt.Sprintf("some(%v)", o.value)
}

// NonEmpty is an ordered collection of at least one element. It is the
// result type of Many1; non-emptiness is guaranteed by the shape of the
// type, not by a runtime check.
type NonEmpty[A any] struct {
	Head A
	Tail []A
}

// Len returns the element count, which is at least 1.
func (n NonEmpty[A]) Len() int {
	return 1 + len(n.Tail)
}

// Slice flattens head and tail into a single slice.
func (n NonEmpty[A]) Slice() []A {
	all := make([]A, 0, n.Len())
	all = append(all, n.Head)
	return append(all, n.Tail...)
}
