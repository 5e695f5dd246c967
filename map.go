package fluent

import (
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map wraps string-keyed values that iterate in insertion order.
//
// Set, Append and Delete change the receiver. Every other method leaves it
// untouched and returns a new Map (or a plain value). Values are stored as
// snapshots, and results built from a Map hold their own copies; Get, Key
// and the callbacks see the stored values themselves.
//
// A Map is not safe for concurrent mutation.
type Map struct {
	data *orderedmap.OrderedMap[string, any]
}

// Entry is one key/value pair of a Map.
type Entry struct {
	Key   string
	Value any
}

func newMap() *Map {
	return &Map{data: orderedmap.New[string, any]()}
}

// NewMap wraps a snapshot of raw. A Go map has no order, so the entries are
// inserted by ascending key.
func NewMap(raw map[string]any) *Map {
	m := newMap()
	for _, k := range slices.Sorted(maps.Keys(raw)) {
		m.data.Set(k, snapshot(raw[k]))
	}
	return m
}

// NewMapOf wraps the entries in the given order. A repeated key keeps its
// first position and its last value.
func NewMapOf(entries ...Entry) *Map {
	m := newMap()
	for _, e := range entries {
		m.data.Set(e.Key, snapshot(e.Value))
	}
	return m
}

// ParseMap decodes a JSON object, keeping the document's key order at the
// top level.
func ParseMap(data []byte) (*Map, error) {
	m := newMap()
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return m, nil
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.data.Len()
}

// Clone returns an independent deep copy.
func (m *Map) Clone() *Map {
	out := newMap()
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		out.data.Set(pair.Key, snapshot(pair.Value))
	}
	return out
}

// Entries returns the key/value pairs in iteration order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, m.data.Len())
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Key: pair.Key, Value: snapshot(pair.Value)})
	}
	return out
}

// ============================================================================
// Transformations
// ============================================================================

// Map rebuilds the Map from the pairs f returns. When two pairs share a
// key the later value wins.
func (m *Map) Map(f func(k string, v any) (string, any)) *Map {
	out := newMap()
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		k, v := f(pair.Key, pair.Value)
		out.data.Set(k, snapshot(v))
	}
	return out
}

// Filter keeps the entries pred accepts, under their original keys.
func (m *Map) Filter(pred func(k string, v any) bool) *Map {
	out := newMap()
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		if pred(pair.Key, pair.Value) {
			out.data.Set(pair.Key, snapshot(pair.Value))
		}
	}
	return out
}

// Reduce folds the entries in iteration order.
func (m *Map) Reduce(f func(acc any, k string, v any) any, initial any) any {
	return ReduceMap(m, f, initial)
}

// ReduceMap folds the entries of m into an accumulator of any type.
func ReduceMap[A any](m *Map, f func(acc A, k string, v any) A, initial A) A {
	acc := initial
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		acc = f(acc, pair.Key, pair.Value)
	}
	return acc
}

// ForEach calls f on every entry in order.
func (m *Map) ForEach(f func(k string, v any)) {
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		f(pair.Key, pair.Value)
	}
}

// Every reports whether pred accepts all entries; true when empty.
func (m *Map) Every(pred func(k string, v any) bool) bool {
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		if !pred(pair.Key, pair.Value) {
			return false
		}
	}
	return true
}

// Some reports whether pred accepts any entry; false when empty.
func (m *Map) Some(pred func(k string, v any) bool) bool {
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		if pred(pair.Key, pair.Value) {
			return true
		}
	}
	return false
}

// ============================================================================
// Lookups
// ============================================================================

// Has reports whether k is present.
func (m *Map) Has(k string) bool {
	_, ok := m.data.Get(k)
	return ok
}

// Key returns the value under k, or def when k is absent.
func (m *Map) Key(k string, def any) any {
	if v, ok := m.data.Get(k); ok {
		return v
	}
	return def
}

// TypedKey is Key with a kind check: a present value whose reflect.Kind is
// not kind yields ErrTypeMismatch. A nil value has kind reflect.Invalid.
func (m *Map) TypedKey(k string, kind reflect.Kind, def any) (any, error) {
	v, ok := m.data.Get(k)
	if !ok {
		return def, nil
	}
	if got := reflect.ValueOf(v).Kind(); got != kind {
		return nil, fail("TypedKey", ErrTypeMismatch, "key %q: want %s, got %s", k, kind, got)
	}
	return v, nil
}

// KeyAs returns the value under k as a V, or def when k is absent. A
// present value that is not a V yields ErrTypeMismatch; a nil value yields
// the zero V.
func KeyAs[V any](m *Map, k string, def V) (V, error) {
	v, ok := m.data.Get(k)
	if !ok {
		return def, nil
	}
	var zero V
	if v == nil {
		return zero, nil
	}
	typed, ok := v.(V)
	if !ok {
		return zero, fail("KeyAs", ErrTypeMismatch, "key %q: want %T, got %T", k, zero, v)
	}
	return typed, nil
}

// KeyToString returns the value under k as Text. The Option is empty when
// k is absent; a value that is neither a string nor Text yields
// ErrTypeMismatch.
func (m *Map) KeyToString(k string) (Option[Text], error) {
	v, ok := m.data.Get(k)
	if !ok {
		return None[Text](), nil
	}
	switch x := v.(type) {
	case string:
		return Some(NewText(x)), nil
	case Text:
		return Some(x), nil
	}
	return None[Text](), fail("KeyToString", ErrTypeMismatch, "key %q: want string, got %T", k, v)
}

// Find returns the first key whose value is strictly equal to v.
func (m *Map) Find(v any) (string, bool) {
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		if strictEqual(pair.Value, v) {
			return pair.Key, true
		}
	}
	return "", false
}

// Keys returns the keys in iteration order.
func (m *Map) Keys() *Sequence[string] {
	out := make([]string, 0, m.data.Len())
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return &Sequence[string]{items: out}
}

// Values returns the values in iteration order.
func (m *Map) Values() *Sequence[any] {
	out := make([]any, 0, m.data.Len())
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, snapshot(pair.Value))
	}
	return &Sequence[any]{items: out}
}

// ============================================================================
// Indexed access
// ============================================================================

// Get returns the value under k.
func (m *Map) Get(k string) Option[any] {
	if v, ok := m.data.Get(k); ok {
		return Some(v)
	}
	return None[any]()
}

// Child returns the value under k wrapped as a Map. Nested Maps, Go maps
// with string keys, Sequences and slices qualify; lists are keyed "0",
// "1", ... The child is a copy: writing to it does not change m.
func (m *Map) Child(k string) Option[*Map] {
	v, ok := m.data.Get(k)
	if !ok {
		return None[*Map]()
	}
	switch x := v.(type) {
	case *Map:
		return Some(x.Clone())
	case map[string]any:
		return Some(NewMap(x))
	}
	if items, ok := listItems(v); ok {
		child := newMap()
		for i, item := range items {
			child.data.Set(strconv.Itoa(i), snapshot(item))
		}
		return Some(child)
	}
	return None[*Map]()
}

// Set stores a snapshot of v under k and returns the receiver. An empty key
// appends, as Append does.
func (m *Map) Set(k string, v any) *Map {
	if k == "" {
		m.Append(v)
		return m
	}
	m.data.Set(k, snapshot(v))
	return m
}

// Append stores v under the next integer key, one past the largest
// non-negative integer key present (or "0"), and returns that key.
func (m *Map) Append(v any) string {
	next := 0
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		if n, err := strconv.Atoi(pair.Key); err == nil && n >= next && strconv.Itoa(n) == pair.Key {
			next = n + 1
		}
	}
	k := strconv.Itoa(next)
	m.data.Set(k, snapshot(v))
	return k
}

// Delete removes k and reports whether it was present.
func (m *Map) Delete(k string) bool {
	_, ok := m.data.Delete(k)
	return ok
}

// ============================================================================
// Exits
// ============================================================================

// ToString renders the entries as "k1:v1,k2:v2,...".
func (m *Map) ToString() Text {
	parts := make([]string, 0, m.data.Len())
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		parts = append(parts, pair.Key+":"+stringify(pair.Value))
	}
	return NewText(strings.Join(parts, ","))
}

// String implements fmt.Stringer.
func (m *Map) String() string {
	return m.ToString().ToRaw()
}

// ToRaw returns the entries as a plain Go map. Nested Maps, Sequences and
// Text are converted to map[string]any, []any and string.
func (m *Map) ToRaw() map[string]any {
	out := make(map[string]any, m.data.Len())
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = unwrap(pair.Value)
	}
	return out
}

// ToArray is ToRaw.
func (m *Map) ToArray() map[string]any {
	return m.ToRaw()
}

func unwrap(v any) any {
	switch x := v.(type) {
	case *Map:
		return x.ToRaw()
	case Text:
		return x.value
	case anySequence:
		items := x.anyItems()
		for i, item := range items {
			items[i] = unwrap(item)
		}
		return items
	case map[string]any:
		if x == nil {
			return x
		}
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = unwrap(e)
		}
		return out
	case []any:
		if x == nil {
			return x
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = unwrap(e)
		}
		return out
	}
	return snapshot(v)
}

// Decode copies the entries into out, which must be a pointer to a struct
// or map. Struct fields are matched by their json tag.
func (m *Map) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return fail("Decode", ErrInvalidArgument, "%v", err)
	}
	if err := dec.Decode(m.ToRaw()); err != nil {
		return fail("Decode", ErrTypeMismatch, "%v", err)
	}
	return nil
}

// ToJSON encodes the entries as a JSON object in iteration order, indented
// when pretty.
func (m *Map) ToJSON(pretty bool) (Text, error) {
	return encodeJSON(m, pretty)
}

// MarshalJSON implements json.Marshaler.
func (m *Map) MarshalJSON() ([]byte, error) {
	return m.data.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler. The input must be a JSON
// object; it replaces the current entries.
func (m *Map) UnmarshalJSON(data []byte) error {
	om := orderedmap.New[string, any]()
	if err := om.UnmarshalJSON(data); err != nil {
		return fail("UnmarshalJSON", ErrInvalidArgument, "%v", err)
	}
	m.data = om
	return nil
}
