package fluent

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction selects ascending or descending order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortFlag selects how keys are compared by KSort.
type SortFlag int

const (
	// SortRegular compares numerically when both keys are numbers, and
	// byte-wise otherwise.
	SortRegular SortFlag = iota
	// SortNumeric compares keys as numbers; non-numeric keys count as 0.
	SortNumeric
	// SortString compares keys byte-wise.
	SortString
	// SortNatural compares runs of digits by value, so "img2" < "img10".
	SortNatural
	// SortNaturalFold is SortNatural after Unicode case folding.
	SortNaturalFold
	// SortLocale compares keys with the root Unicode collation.
	SortLocale
)

func (f SortFlag) String() string {
	switch f {
	case SortRegular:
		return "regular"
	case SortNumeric:
		return "numeric"
	case SortString:
		return "string"
	case SortNatural:
		return "natural"
	case SortNaturalFold:
		return "natural-fold"
	case SortLocale:
		return "locale"
	}
	return "SortFlag(" + strconv.Itoa(int(f)) + ")"
}

// keyComparator returns the key ordering for flag. Unknown flags fall back
// to SortRegular.
func keyComparator(flag SortFlag) Comparator[string] {
	switch flag {
	case SortNumeric:
		return func(a, b string) int {
			return cmp.Compare(cast.ToFloat64(strings.TrimSpace(a)), cast.ToFloat64(strings.TrimSpace(b)))
		}
	case SortString:
		return strings.Compare
	case SortNatural:
		return naturalCompare
	case SortNaturalFold:
		fold := cases.Fold()
		return func(a, b string) int {
			return naturalCompare(fold.String(a), fold.String(b))
		}
	case SortLocale:
		c := collate.New(language.Und)
		return c.CompareString
	}
	return regularCompare
}

func regularCompare(a, b string) int {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		return cmp.Compare(fa, fb)
	}
	return strings.Compare(a, b)
}

// naturalCompare orders strings treating each run of ASCII digits as a
// number. Equal numbers with different zero padding fall back to the
// shorter run first.
func naturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			si := i
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			sj := j
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			da := strings.TrimLeft(a[si:i], "0")
			db := strings.TrimLeft(b[sj:j], "0")
			if r := cmp.Compare(len(da), len(db)); r != 0 {
				return r
			}
			if r := strings.Compare(da, db); r != 0 {
				return r
			}
			if r := cmp.Compare(i-si, j-sj); r != 0 {
				return r
			}
			continue
		}
		if ca != cb {
			return cmp.Compare(ca, cb)
		}
		i++
		j++
	}
	return cmp.Compare(len(a)-i, len(b)-j)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// KSort returns a copy with the entries ordered by key. The sort is stable.
func (m *Map) KSort(dir Direction, flag SortFlag) *Map {
	c := keyComparator(flag)
	if dir == Descending {
		c = c.Reverse()
	}
	entries := m.Entries()
	SortInterface{
		LenFunc:  func() int { return len(entries) },
		LessFunc: func(i, j int) bool { return c(entries[i].Key, entries[j].Key) < 0 },
		SwapFunc: func(i, j int) { entries[i], entries[j] = entries[j], entries[i] },
	}.Stable()
	out := newMap()
	for _, e := range entries {
		out.data.Set(e.Key, snapshot(e.Value))
	}
	return out
}
