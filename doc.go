/*
Package fluent provides chainable wrapper types around Go slices, ordered
string-keyed maps and strings.

# Overview

Go's collection helpers are free functions spread over slices, maps and
strings. Fluent puts them behind three small wrapper types with a
JavaScript-Array/String-like method set, so a pipeline reads left to right:

	total := fluent.NewSequence(1, 2, 3, 4).
	    Filter(func(n int) bool { return n%2 == 0 }).
	    Map(func(n int) int { return n * 10 }).
	    Reduce(func(acc, n int) int { return acc + n }, 0) // 60

# Available Types

  - Sequence[T]: ordered, zero-based, gap-free list
  - Map: string keys, insertion-ordered iteration
  - Text: immutable string
  - Option[T]: present-or-absent result of indexed reads

Constructors are the only way in: NewSequence, FromSlice,
SequenceFromIndexed, SequenceFromMap, NewMap, NewMapOf, ParseMap and
NewText. ToRaw, ToJSON, ToString and String are the ways out.

# Mutation

Most methods return a new wrapper and leave the receiver alone. The
exceptions change the receiver in place:

	Sequence: Fill, Splice, SpliceFrom, Push, Unshift, Pop, Shift, Set, Append, Delete
	Map:      Set, Append, Delete

Splice and Fill also return the receiver, so

	s := fluent.NewSequence(1, 2, 3, 4)
	r := s.Splice(1, 2, 5, 6) // s and r are both [1 5 6 4]

# Type-changing operations

Methods cannot introduce type parameters, so operations whose result type
differs from the element type are package functions:

	names := fluent.MapTo(users, func(u User) string { return u.Name })
	sum := fluent.Reduce(words, func(n int, w string) int { return n + len(w) }, 0)

# Not found vs. errors

Absence is never an error. Lookups answer with comma-ok, an Option, or -1:

	v, ok := s.Pop()
	i := s.IndexOf(3)
	child, ok := m.Child("db").Get()

Raised conditions wrap one of ErrInvalidArgument, ErrTypeMismatch or
ErrIndexOutOfRange; test them with errors.Is.

# Callbacks

Predicate, Transformer and Comparator name the callback shapes and add
composition:

	even := fluent.Predicate[int](func(n int) bool { return n%2 == 0 })
	s.Filter(even.Not())

	byLen := fluent.Comparator[string](func(a, b string) int { return len(a) - len(b) })
	words.Sort(byLen.ThenBy(strings.Compare))

# Logging

Rejected inputs are reported at debug level to the logger installed with
SetLogger. The default discards everything.
*/
package fluent
