package fluent

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Sequence wraps an ordered, zero-based, gap-free list of T.
//
// Fill, Splice, SpliceFrom, Push, Unshift, Pop, Shift, Set, Append and
// Delete change the receiver. Every other method leaves it untouched and
// returns a new Sequence (or a plain value).
//
// A new Sequence owns its elements: nested Maps, Sequences, map[string]any
// and []any values are copied into it, whether they arrive through a
// constructor, a mutator or a transformation. At, Find and the callbacks
// see the stored values themselves.
//
// A Sequence is not safe for concurrent mutation.
type Sequence[T any] struct {
	items []T
}

// NewSequence wraps the given elements.
func NewSequence[T any](items ...T) *Sequence[T] {
	return FromSlice(items)
}

// FromSlice wraps a copy of items. Later changes to items are not seen by
// the Sequence.
func FromSlice[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: own(items)}
}

// SequenceFromIndexed builds a Sequence from index-keyed data. The keys must
// be exactly 0..len(m)-1, otherwise ErrInvalidArgument is returned.
func SequenceFromIndexed[T any](m map[int]T) (*Sequence[T], error) {
	items := make([]T, len(m))
	for k, v := range m {
		if k < 0 || k >= len(m) {
			return nil, fail("SequenceFromIndexed", ErrInvalidArgument,
				"key %d breaks the 0..%d list range", k, len(m)-1)
		}
		items[k] = v
	}
	return &Sequence[T]{items: items}, nil
}

// SequenceFromMap builds a Sequence from the values of m, whose keys must
// read "0", "1", ... in iteration order. A nil m yields ErrInvalidArgument.
func SequenceFromMap(m *Map) (*Sequence[any], error) {
	if m == nil {
		return nil, fail("SequenceFromMap", ErrInvalidArgument, "nil map")
	}
	items := make([]any, 0, m.Len())
	i := 0
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != strconv.Itoa(i) {
			return nil, fail("SequenceFromMap", ErrInvalidArgument,
				"key %q at position %d is not a list index", pair.Key, i)
		}
		items = append(items, snapshot(pair.Value))
		i++
	}
	return &Sequence[any]{items: items}, nil
}

func own[T any](items []T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		out[i] = ownValue(v)
	}
	return out
}

// relative resolves a possibly negative index against length n.
func relative(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// clampIndex resolves a possibly negative index and clamps it into [0, n].
func clampIndex(i, n int) int {
	return min(max(relative(i, n), 0), n)
}

func (s *Sequence[T]) anyItems() []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s.items))
	for i, v := range s.items {
		out[i] = v
	}
	return out
}

func (s *Sequence[T]) cloneAny() any {
	if s == nil {
		return s
	}
	return s.Clone()
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// ============================================================================
// Transformations
// ============================================================================

// Map applies f to every element, in order.
func (s *Sequence[T]) Map(f func(T) T) *Sequence[T] {
	return MapTo(s, f)
}

// MapTo applies f to every element of s and collects the results. Use it
// when the element type changes.
func MapTo[T, U any](s *Sequence[T], f func(T) U) *Sequence[U] {
	out := make([]U, len(s.items))
	for i, v := range s.items {
		out[i] = ownValue(f(v))
	}
	return &Sequence[U]{items: out}
}

// Filter keeps the elements pred accepts. The result is re-indexed from 0.
func (s *Sequence[T]) Filter(pred func(T) bool) *Sequence[T] {
	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
		if pred(v) {
			out = append(out, ownValue(v))
		}
	}
	return &Sequence[T]{items: out}
}

// Reduce folds left to right starting from initial.
func (s *Sequence[T]) Reduce(f func(acc, v T) T, initial T) T {
	return Reduce(s, f, initial)
}

// ReduceRight folds right to left starting from initial.
func (s *Sequence[T]) ReduceRight(f func(acc, v T) T, initial T) T {
	return ReduceRight(s, f, initial)
}

// Reduce folds s left to right into an accumulator of any type.
func Reduce[T, A any](s *Sequence[T], f func(acc A, v T) A, initial A) A {
	acc := initial
	for _, v := range s.items {
		acc = f(acc, v)
	}
	return acc
}

// ReduceRight folds s from the last element to the first.
func ReduceRight[T, A any](s *Sequence[T], f func(acc A, v T) A, initial A) A {
	acc := initial
	for i := len(s.items) - 1; i >= 0; i-- {
		acc = f(acc, s.items[i])
	}
	return acc
}

// Flat flattens nested Sequences, slices and arrays at every depth,
// depth-first and left to right. []byte values are kept whole.
func (s *Sequence[T]) Flat() *Sequence[any] {
	out := make([]any, 0, len(s.items))
	for _, v := range s.items {
		out = flattenInto(out, v)
	}
	return &Sequence[any]{items: own(out)}
}

// FlatMap maps every element with f and flattens the results.
//
// The flattening is deep, not one level: a result of [[1], 2] contributes
// 1 and 2.
func (s *Sequence[T]) FlatMap(f func(T) any) *Sequence[any] {
	out := make([]any, 0, len(s.items))
	for _, v := range s.items {
		out = flattenInto(out, f(v))
	}
	return &Sequence[any]{items: own(out)}
}

// ForEach calls f on every element in order.
func (s *Sequence[T]) ForEach(f func(T)) {
	for _, v := range s.items {
		f(v)
	}
}

// Reverse returns the elements in reverse order.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	out := own(s.items)
	slices.Reverse(out)
	return &Sequence[T]{items: out}
}

// Sort returns a stably sorted copy. Without a comparator the elements are
// ordered by NaturalOrder. Only the first comparator is used.
func (s *Sequence[T]) Sort(cmp ...Comparator[T]) *Sequence[T] {
	c := NaturalOrder[T]()
	if len(cmp) > 0 && cmp[0] != nil {
		c = cmp[0]
	}
	out := own(s.items)
	slices.SortStableFunc(out, c)
	return &Sequence[T]{items: out}
}

// ToSorted is Sort.
func (s *Sequence[T]) ToSorted(cmp ...Comparator[T]) *Sequence[T] {
	return s.Sort(cmp...)
}

// Slice returns elements in [start, end). end defaults to Len. Negative
// positions count from the end; positions are clamped to the sequence.
func (s *Sequence[T]) Slice(start int, end ...int) *Sequence[T] {
	n := len(s.items)
	from, to := clampIndex(start, n), n
	if len(end) > 0 {
		to = clampIndex(end[0], n)
	}
	if to < from {
		to = from
	}
	return FromSlice(s.items[from:to])
}

// Concat returns s followed by the elements of others.
func (s *Sequence[T]) Concat(others ...*Sequence[T]) *Sequence[T] {
	out := own(s.items)
	for _, o := range others {
		out = append(out, own(o.items)...)
	}
	return &Sequence[T]{items: out}
}

// Clone returns an independent copy.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return FromSlice(s.items)
}

// With returns a copy with the element at index replaced by v. A negative
// index counts from the end.
func (s *Sequence[T]) With(index int, v T) (*Sequence[T], error) {
	i := relative(index, len(s.items))
	if i < 0 || i >= len(s.items) {
		return nil, fail("With", ErrIndexOutOfRange, "index %d, length %d", index, len(s.items))
	}
	out := own(s.items)
	out[i] = ownValue(v)
	return &Sequence[T]{items: out}, nil
}

// ToSpliced is Splice applied to a copy; the receiver is not changed.
func (s *Sequence[T]) ToSpliced(offset, length int, replacement ...T) *Sequence[T] {
	return s.Clone().Splice(offset, length, replacement...)
}

// ============================================================================
// Mutations
// ============================================================================

// Fill overwrites [start, end) with v in place and returns the receiver.
// bounds holds up to two positions, start (default 0) and end (default
// Len); negative positions count from the end. An empty or inverted range
// fills nothing. A position that falls outside the sequence yields
// ErrIndexOutOfRange and leaves it unchanged.
func (s *Sequence[T]) Fill(v T, bounds ...int) (*Sequence[T], error) {
	n := len(s.items)
	if len(bounds) > 2 {
		return nil, fail("Fill", ErrInvalidArgument, "want at most 2 bounds, got %d", len(bounds))
	}
	start, end := 0, n
	if len(bounds) > 0 {
		start = relative(bounds[0], n)
	}
	if len(bounds) > 1 {
		end = relative(bounds[1], n)
	}
	if start < 0 || start > n || end < 0 || end > n {
		return nil, fail("Fill", ErrIndexOutOfRange, "range [%d, %d), length %d", start, end, n)
	}
	for i := start; i < end; i++ {
		s.items[i] = ownValue(v)
	}
	return s, nil
}

// Splice removes length elements at offset, inserts replacement there, and
// returns the receiver.
//
// A negative offset counts from the end. A negative length stops that many
// elements before the end. Both are clamped to the sequence.
func (s *Sequence[T]) Splice(offset, length int, replacement ...T) *Sequence[T] {
	n := len(s.items)
	from := clampIndex(offset, n)
	var to int
	if length < 0 {
		to = max(n+length, from)
	} else {
		to = min(from+length, n)
	}
	s.items = slices.Replace(s.items, from, to, own(replacement)...)
	return s
}

// SpliceFrom removes every element from offset on, inserts replacement,
// and returns the receiver.
func (s *Sequence[T]) SpliceFrom(offset int, replacement ...T) *Sequence[T] {
	from := clampIndex(offset, len(s.items))
	return s.Splice(from, len(s.items)-from, replacement...)
}

// Pop removes and returns the last element. ok is false when empty.
func (s *Sequence[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// Shift removes and returns the first element. ok is false when empty.
func (s *Sequence[T]) Shift() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	v = s.items[0]
	s.items = slices.Delete(s.items, 0, 1)
	return v, true
}

// Push appends vs and returns the new length.
func (s *Sequence[T]) Push(vs ...T) int {
	s.items = append(s.items, own(vs)...)
	return len(s.items)
}

// Unshift prepends vs and returns the new length.
func (s *Sequence[T]) Unshift(vs ...T) int {
	s.items = slices.Insert(s.items, 0, own(vs)...)
	return len(s.items)
}

// ============================================================================
// Queries
// ============================================================================

// Every reports whether pred accepts all elements. It stops at the first
// rejection; an empty sequence yields true.
func (s *Sequence[T]) Every(pred func(T) bool) bool {
	for _, v := range s.items {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Some reports whether pred accepts any element. It stops at the first
// match; an empty sequence yields false.
func (s *Sequence[T]) Some(pred func(T) bool) bool {
	return s.FindIndex(pred) >= 0
}

// Find returns the first element pred accepts.
func (s *Sequence[T]) Find(pred func(T) bool) (v T, ok bool) {
	if i := s.FindIndex(pred); i >= 0 {
		return s.items[i], true
	}
	return v, false
}

// FindIndex returns the position of the first element pred accepts, or -1.
func (s *Sequence[T]) FindIndex(pred func(T) bool) int {
	for i, v := range s.items {
		if pred(v) {
			return i
		}
	}
	return -1
}

// FindLast returns the last element pred accepts.
func (s *Sequence[T]) FindLast(pred func(T) bool) (v T, ok bool) {
	if i := s.FindLastIndex(pred); i >= 0 {
		return s.items[i], true
	}
	return v, false
}

// FindLastIndex returns the position of the last element pred accepts, or
// -1.
func (s *Sequence[T]) FindLastIndex(pred func(T) bool) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if pred(s.items[i]) {
			return i
		}
	}
	return -1
}

// Includes reports whether v is an element.
func (s *Sequence[T]) Includes(v T) bool {
	return s.IndexOf(v) >= 0
}

// IndexOf returns the first position holding v, or -1. Elements match only
// when they have the same dynamic type and compare equal.
func (s *Sequence[T]) IndexOf(v T) int {
	return s.FindIndex(func(x T) bool { return strictEqual(x, v) })
}

// LastIndexOf returns the last position holding v, or -1.
func (s *Sequence[T]) LastIndexOf(v T) int {
	return s.FindLastIndex(func(x T) bool { return strictEqual(x, v) })
}

// Join renders the elements and glues them with glue.
func (s *Sequence[T]) Join(glue string) Text {
	parts := make([]string, len(s.items))
	for i, v := range s.items {
		parts[i] = stringify(v)
	}
	return NewText(strings.Join(parts, glue))
}

// Keys returns the positions 0..Len-1.
func (s *Sequence[T]) Keys() *Sequence[int] {
	out := make([]int, len(s.items))
	for i := range out {
		out[i] = i
	}
	return &Sequence[int]{items: out}
}

// Values returns a copy of the elements.
func (s *Sequence[T]) Values() *Sequence[T] {
	return s.Clone()
}

// ============================================================================
// Indexed access
// ============================================================================

// At returns the element at index. A negative index counts from the end.
func (s *Sequence[T]) At(index int) Option[T] {
	i := relative(index, len(s.items))
	if i < 0 || i >= len(s.items) {
		return None[T]()
	}
	return Some(s.items[i])
}

// Child returns the element at index wrapped as a Sequence, when it is a
// Sequence, slice or array.
func (s *Sequence[T]) Child(index int) Option[*Sequence[any]] {
	v, ok := s.At(index).Get()
	if !ok {
		return None[*Sequence[any]]()
	}
	items, ok := listItems(v)
	if !ok {
		return None[*Sequence[any]]()
	}
	return Some(&Sequence[any]{items: own(items)})
}

// Has reports whether index addresses an element. As with At, a negative
// index counts from the end.
func (s *Sequence[T]) Has(index int) bool {
	i := relative(index, len(s.items))
	return i >= 0 && i < len(s.items)
}

// Set writes v at index. index == Len appends; a negative index or one
// beyond Len yields ErrIndexOutOfRange.
func (s *Sequence[T]) Set(index int, v T) error {
	switch {
	case index >= 0 && index < len(s.items):
		s.items[index] = ownValue(v)
	case index == len(s.items):
		s.items = append(s.items, ownValue(v))
	default:
		return fail("Set", ErrIndexOutOfRange, "index %d, length %d", index, len(s.items))
	}
	return nil
}

// Append adds vs at the end and returns the receiver.
func (s *Sequence[T]) Append(vs ...T) *Sequence[T] {
	s.Push(vs...)
	return s
}

// Delete removes the element at index, closing the gap. A negative index
// counts from the end. It reports whether anything was removed.
func (s *Sequence[T]) Delete(index int) bool {
	if !s.Has(index) {
		return false
	}
	i := relative(index, len(s.items))
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// ============================================================================
// Exits
// ============================================================================

// ToRaw returns a copy of the underlying elements.
func (s *Sequence[T]) ToRaw() []T {
	return own(s.items)
}

// String joins the elements with commas.
func (s *Sequence[T]) String() string {
	return s.Join(",").ToRaw()
}

// ToJSON encodes the elements as a JSON array, indented when pretty.
func (s *Sequence[T]) ToJSON(pretty bool) (Text, error) {
	return encodeJSON(s, pretty)
}

// MarshalJSON implements json.Marshaler.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// UnmarshalJSON implements json.Unmarshaler. The input must be a JSON
// array.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fail("UnmarshalJSON", ErrInvalidArgument, "%v", err)
	}
	if items == nil {
		items = []T{}
	}
	s.items = items
	return nil
}
