package fluent

import (
	"sort"
)

// ============================================================================
// Predicate
// ============================================================================

// Predicate is a functional test over a single element.
// It composes like a boolean monoid.
//
// Example:
//
//	even := Predicate[int](func(n int) bool { return n%2 == 0 })
//	positive := Predicate[int](func(n int) bool { return n > 0 })
//
//	seq.Filter(even.And(positive))
type Predicate[T any] func(T) bool

// Test runs the predicate.
func (p Predicate[T]) Test(v T) bool {
	return p(v)
}

// Empty returns a predicate that accepts everything (identity for And).
func (p Predicate[T]) Empty() Predicate[T] {
	return func(T) bool { return true }
}

// And accepts values both predicates accept. Evaluation short-circuits.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or accepts values either predicate accepts. Evaluation short-circuits.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Not inverts the predicate.
func (p Predicate[T]) Not() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// ============================================================================
// Transformer
// ============================================================================

// Transformer maps an element to another element of the same type.
//
// Example:
//
//	double := Transformer[int](func(n int) int { return n * 2 })
//	inc := Transformer[int](func(n int) int { return n + 1 })
//
//	seq.Map(double.Then(inc)) // n*2 + 1
type Transformer[T any] func(T) T

// Apply runs the transformer.
func (f Transformer[T]) Apply(v T) T {
	return f(v)
}

// Empty returns the identity transformer (Monoid identity).
func (f Transformer[T]) Empty() Transformer[T] {
	return func(v T) T { return v }
}

// Then runs f, then next on its result (Monoid operation).
func (f Transformer[T]) Then(next Transformer[T]) Transformer[T] {
	return func(v T) T {
		return next(f(v))
	}
}

// Tap runs fn for side effects after the transformation.
func (f Transformer[T]) Tap(fn func(T)) Transformer[T] {
	return func(v T) T {
		out := f(v)
		fn(out)
		return out
	}
}

// ============================================================================
// Comparator
// ============================================================================

// Comparator orders two elements: negative when a sorts before b, zero when
// they are equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// Compare runs the comparator.
func (c Comparator[T]) Compare(a, b T) int {
	return c(a, b)
}

// Reverse flips the ordering.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// ThenBy breaks ties with next.
func (c Comparator[T]) ThenBy(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// NaturalOrder is the comparator used when Sort is called without one.
// See compareValues for how mixed element types are ordered.
func NaturalOrder[T any]() Comparator[T] {
	return func(a, b T) int {
		return compareValues(a, b)
	}
}

// ============================================================================
// Sort Bindings
// ============================================================================

// SortInterface is a functional binding for sort.Interface.
type SortInterface struct {
	LenFunc  func() int
	LessFunc func(i, j int) bool
	SwapFunc func(i, j int)
}

// Len implements sort.Interface.
func (s SortInterface) Len() int {
	return s.LenFunc()
}

// Less implements sort.Interface.
func (s SortInterface) Less(i, j int) bool {
	return s.LessFunc(i, j)
}

// Swap implements sort.Interface.
func (s SortInterface) Swap(i, j int) {
	s.SwapFunc(i, j)
}

// Stable sorts with sort.Stable.
func (s SortInterface) Stable() {
	sort.Stable(s)
}
