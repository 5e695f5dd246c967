package fluent_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Pure-Company/fluent"
)

// ============================================================================
// Example 1: PIPELINES - Filter, Map, Reduce
// ============================================================================

// Example_pipeline chains transformations left to right
func Example_pipeline() {
	total := fluent.NewSequence(1, 2, 3, 4, 5, 6).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * 10 }).
		Reduce(func(acc, n int) int { return acc + n }, 0)

	fmt.Println(total)
	// Output: 120
}

// ============================================================================
// Example 2: TYPE CHANGES - package-level MapTo and Reduce
// ============================================================================

type order struct {
	ID    string
	Total float64
}

// Example_typeChanges shows operations whose result type differs
func Example_typeChanges() {
	orders := fluent.NewSequence(
		order{"a-1", 12.5},
		order{"a-2", 7.5},
		order{"a-3", 30},
	)

	ids := fluent.MapTo(orders, func(o order) string { return o.ID })
	revenue := fluent.Reduce(orders, func(sum float64, o order) float64 { return sum + o.Total }, 0)

	fmt.Println(ids.Join(" | "))
	fmt.Println(revenue)
	// Output:
	// a-1 | a-2 | a-3
	// 50
}

// ============================================================================
// Example 3: MUTATION - Splice changes the receiver
// ============================================================================

// Example_splice shows that Splice returns the mutated receiver
func Example_splice() {
	s := fluent.NewSequence(1, 2, 3, 4)
	r := s.Splice(1, 2, 5, 6)

	fmt.Println(s.ToRaw(), r.ToRaw(), s == r)

	copied := s.ToSpliced(0, 1)
	fmt.Println(s.ToRaw(), copied.ToRaw())
	// Output:
	// [1 5 6 4] [1 5 6 4] true
	// [1 5 6 4] [5 6 4]
}

// ============================================================================
// Example 4: NOT FOUND - sentinels instead of errors
// ============================================================================

// Example_notFound shows comma-ok, Option and -1 results
func Example_notFound() {
	s := fluent.NewSequence("a", "b")
	empty := fluent.NewSequence[string]()

	_, ok := empty.Pop()
	fmt.Println(ok)
	fmt.Println(s.IndexOf("z"))
	fmt.Println(s.At(5).OrElse("none"))

	m := fluent.NewMapOf(fluent.Entry{Key: "a", Value: 1}, fluent.Entry{Key: "b", Value: 2})
	k, ok := m.Find(1)
	fmt.Println(k, ok)
	_, ok = m.Find(9)
	fmt.Println(ok)
	// Output:
	// false
	// -1
	// none
	// a true
	// false
}

// ============================================================================
// Example 5: RAISED CONDITIONS - errors.Is
// ============================================================================

// Example_errors shows how raised conditions are matched
func Example_errors() {
	_, err := fluent.SequenceFromIndexed(map[int]string{0: "x", 2: "y"})
	fmt.Println(errors.Is(err, fluent.ErrInvalidArgument))

	m := fluent.NewMapOf(fluent.Entry{Key: "port", Value: 8080})
	_, err = m.KeyToString("port")
	fmt.Println(errors.Is(err, fluent.ErrTypeMismatch))

	_, err = fluent.NewSequence(1, 2).Fill(0, 1, 9)
	fmt.Println(errors.Is(err, fluent.ErrIndexOutOfRange))
	// Output:
	// true
	// true
	// true
}

// ============================================================================
// Example 6: MAPS - ordered keys, JSON, sorting
// ============================================================================

// Example_map walks through the Map wrapper
func Example_map() {
	m, err := fluent.ParseMap([]byte(`{"file10":3,"file2":1,"file1":2}`))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(m.ToString())
	fmt.Println(m.KSort(fluent.Ascending, fluent.SortNatural).Keys().Join(","))

	out, _ := m.Filter(func(k string, v any) bool { return v.(float64) > 1 }).ToJSON(false)
	fmt.Println(out)
	// Output:
	// file10:3,file2:1,file1:2
	// file1,file2,file10
	// {"file10":3,"file1":2}
}

// ============================================================================
// Example 7: NESTED ACCESS - Child returns an Option
// ============================================================================

// Example_nested reads nested configuration
func Example_nested() {
	cfg := fluent.NewMap(map[string]any{
		"db": map[string]any{"host": "localhost", "port": 5432},
	})

	if db, ok := cfg.Child("db").Get(); ok {
		host, _ := db.KeyToString("host")
		fmt.Println(host.OrElse(fluent.NewText("?")))
		fmt.Println(db.Key("port", 0))
	}
	fmt.Println(cfg.Child("cache").IsNone())
	// Output:
	// localhost
	// 5432
	// true
}

// ============================================================================
// Example 8: TEXT - chaining string operations
// ============================================================================

// Example_text chains Text operations
func Example_text() {
	t := fluent.NewText("  hello world  ").Trim()

	fmt.Println(t.Substring(0, 5).ToUpper())
	words, _ := t.RegexMatch(`\w+`)
	fmt.Println(words.Len(), words.Join("+"))
	swapped, _ := t.RegexReplace(`(\w+) (\w+)`, "$2 $1")
	fmt.Println(swapped)
	fmt.Println(t.Explode(" ").Map(func(w fluent.Text) fluent.Text {
		return w.Substring(0, 1).ToUpper().Concat(w.Substring(1).ToRaw())
	}).Join(" "))
	// Output:
	// HELLO
	// 2 hello+world
	// world hello
	// Hello World
}

// ============================================================================
// Example 9: COMPOSED CALLBACKS
// ============================================================================

// Example_callbacks composes predicates and comparators
func Example_callbacks() {
	short := fluent.Predicate[string](func(s string) bool { return len(s) <= 3 })
	vowel := fluent.Predicate[string](func(s string) bool { return strings.ContainsAny(s[:1], "aeiou") })
	byLen := fluent.Comparator[string](func(a, b string) int { return len(a) - len(b) })

	words := fluent.NewSequence("apple", "fig", "owl", "kiwi", "egg", "banana")

	fmt.Println(words.Filter(short.And(vowel.Not())).ToRaw())
	fmt.Println(words.Sort(byLen.ThenBy(strings.Compare)).ToRaw())
	// Output:
	// [fig]
	// [egg fig owl kiwi apple banana]
}
