package fluent

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"github.com/mohae/deepcopy"
	"github.com/spf13/cast"
)

// anySequence is implemented by every Sequence instantiation.
type anySequence interface {
	anyItems() []any
	cloneAny() any
}

// strictEqual reports whether a and b hold the same dynamic type and value.
// Values of non-comparable types (slices, maps, funcs) are never equal,
// which mirrors identity comparison of containers.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// compareValues is the default element ordering.
//
// nil sorts first. Numbers compare numerically, strings and Text byte-wise,
// booleans false before true. Anything else, including mixed kinds, falls
// back to comparing the rendered strings.
func compareValues(a, b any) int {
	if t, ok := a.(Text); ok {
		a = t.value
	}
	if t, ok := b.(Text); ok {
		b = t.value
	}
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if isNumber(a) && isNumber(b) {
		return cmp.Compare(cast.ToFloat64(a), cast.ToFloat64(b))
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(stringify(a), stringify(b))
}

// stringify renders a value the way Join and ToString print it.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case Text:
		return x.value
	case string:
		return x
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// isList reports whether v is a slice or array other than []byte.
func isList(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// listItems returns the elements of a Sequence, slice or array as []any.
func listItems(v any) ([]any, bool) {
	if s, ok := v.(anySequence); ok {
		return s.anyItems(), true
	}
	if !isList(v) {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// flattenInto appends v to dst, descending into every nested list.
func flattenInto(dst []any, v any) []any {
	items, ok := listItems(v)
	if !ok {
		return append(dst, v)
	}
	for _, item := range items {
		dst = flattenInto(dst, item)
	}
	return dst
}

// snapshot returns a copy of v that shares no mutable containers with it.
//
// Wrappers are cloned, generic containers are copied element by element,
// and other values are deep-copied only when their type holds no
// unexported struct fields or interfaces; those are shared as-is because
// deepcopy cannot see into them.
func snapshot(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Text:
		return x
	case *Map:
		if x == nil {
			return x
		}
		return x.Clone()
	case anySequence:
		return x.cloneAny()
	case map[string]any:
		if x == nil {
			return x
		}
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = snapshot(e)
		}
		return out
	case []any:
		if x == nil {
			return x
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = snapshot(e)
		}
		return out
	}
	if plainType(reflect.TypeOf(v), nil) {
		return deepcopy.Copy(v)
	}
	return v
}

// ownValue is snapshot for values held by a Sequence. Only wrappers and
// generic containers are copied; anything else keeps Go's assignment
// semantics.
func ownValue[T any](v T) T {
	switch any(v).(type) {
	case *Map, anySequence, map[string]any, []any:
		if c, ok := snapshot(v).(T); ok {
			return c
		}
	}
	return v
}

// plainType reports whether every value of t can be deep-copied by
// reflection without losing state.
func plainType(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return true
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return false
	case reflect.Pointer, reflect.Slice, reflect.Array:
		if seen == nil {
			seen = map[reflect.Type]bool{}
		}
		seen[t] = true
		return plainType(t.Elem(), seen)
	case reflect.Map:
		if seen == nil {
			seen = map[reflect.Type]bool{}
		}
		seen[t] = true
		return plainType(t.Key(), seen) && plainType(t.Elem(), seen)
	case reflect.Struct:
		if seen == nil {
			seen = map[reflect.Type]bool{}
		}
		seen[t] = true
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || !plainType(f.Type, seen) {
				return false
			}
		}
		return true
	}
	return true
}
