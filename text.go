package fluent

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultCutset is the set Trim, LTrim and RTrim strip when no cutset is
// given: space, tab, newline, carriage return, NUL and vertical tab.
const DefaultCutset = " \t\n\r\x00\x0B"

// RegexTimeout bounds a single RegexMatch or RegexReplace call. A pattern
// that backtracks past it yields ErrInvalidArgument.
const RegexTimeout = time.Second

// Text wraps an immutable string. Every method returns a new value.
//
// Positions and lengths are in bytes unless a method says otherwise.
type Text struct {
	value string
}

// NewText wraps s.
func NewText(s string) Text {
	return Text{value: s}
}

// ToRaw returns the wrapped string.
func (t Text) ToRaw() string {
	return t.value
}

// String implements fmt.Stringer.
func (t Text) String() string {
	return t.value
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

// ============================================================================
// Splitting and trimming
// ============================================================================

// Explode splits on every occurrence of delim, keeping empty segments. An
// empty delim splits into UTF-8 sequences.
func (t Text) Explode(delim string) *Sequence[Text] {
	parts := strings.Split(t.value, delim)
	return MapTo(FromSlice(parts), NewText)
}

// Split is Explode.
func (t Text) Split(delim string) *Sequence[Text] {
	return t.Explode(delim)
}

func cutsetOf(cutset []string) string {
	if len(cutset) == 0 {
		return DefaultCutset
	}
	return strings.Join(cutset, "")
}

// Trim strips characters of the cutset from both ends; DefaultCutset
// when none is given.
func (t Text) Trim(cutset ...string) Text {
	return NewText(strings.Trim(t.value, cutsetOf(cutset)))
}

// LTrim strips characters of the cutset from the start.
func (t Text) LTrim(cutset ...string) Text {
	return NewText(strings.TrimLeft(t.value, cutsetOf(cutset)))
}

// RTrim strips characters of the cutset from the end.
func (t Text) RTrim(cutset ...string) Text {
	return NewText(strings.TrimRight(t.value, cutsetOf(cutset)))
}

// ============================================================================
// Case and replacement
// ============================================================================

// ToUpper maps every letter to upper case (Unicode, locale independent).
func (t Text) ToUpper() Text {
	return NewText(strings.ToUpper(t.value))
}

// ToLower maps every letter to lower case (Unicode, locale independent).
func (t Text) ToLower() Text {
	return NewText(strings.ToLower(t.value))
}

// Replace substitutes every literal occurrence of search.
func (t Text) Replace(search, replacement string) Text {
	return NewText(strings.ReplaceAll(t.value, search, replacement))
}

func compilePattern(op, pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fail(op, ErrInvalidArgument, "pattern %q: %v", pattern, err)
	}
	re.MatchTimeout = RegexTimeout
	return re, nil
}

// RegexReplace replaces every match of pattern. The pattern uses Perl
// syntax (lookaround and \1 back-references included); replacement refers
// to groups as $1 or ${name}.
func (t Text) RegexReplace(pattern, replacement string) (Text, error) {
	re, err := compilePattern("RegexReplace", pattern)
	if err != nil {
		return Text{}, err
	}
	out, err := re.Replace(t.value, replacement, -1, -1)
	if err != nil {
		return Text{}, fail("RegexReplace", ErrInvalidArgument, "pattern %q: %v", pattern, err)
	}
	return NewText(out), nil
}

// RegexMatch returns every non-overlapping match of pattern, left to right.
func (t Text) RegexMatch(pattern string) (*Sequence[Text], error) {
	re, err := compilePattern("RegexMatch", pattern)
	if err != nil {
		return nil, err
	}
	out := NewSequence[Text]()
	m, err := re.FindStringMatch(t.value)
	for m != nil && err == nil {
		out.Push(NewText(m.String()))
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fail("RegexMatch", ErrInvalidArgument, "pattern %q: %v", pattern, err)
	}
	return out, nil
}

// ============================================================================
// Substrings and queries
// ============================================================================

// Substring returns up to length bytes starting at start; the rest of the
// string when length is omitted. A negative start counts from the end and
// a negative length stops that many bytes before the end. A start past the
// end yields an empty Text.
func (t Text) Substring(start int, length ...int) Text {
	n := len(t.value)
	from := clampIndex(start, n)
	to := n
	if len(length) > 0 {
		if l := length[0]; l < 0 {
			to = n + l
		} else {
			to = min(from+l, n)
		}
	}
	if to <= from {
		return NewText("")
	}
	return NewText(t.value[from:to])
}

// Includes reports whether needle occurs in t.
func (t Text) Includes(needle string) bool {
	return strings.Contains(t.value, needle)
}

// StartsWith reports whether t begins with needle.
func (t Text) StartsWith(needle string) bool {
	return strings.HasPrefix(t.value, needle)
}

// EndsWith reports whether t ends with needle.
func (t Text) EndsWith(needle string) bool {
	return strings.HasSuffix(t.value, needle)
}

// IndexOf returns the byte offset of the first needle, or -1.
func (t Text) IndexOf(needle string) int {
	return strings.Index(t.value, needle)
}

// LastIndexOf returns the byte offset of the last needle, or -1.
func (t Text) LastIndexOf(needle string) int {
	return strings.LastIndex(t.value, needle)
}

// Len returns the length in bytes.
func (t Text) Len() int {
	return len(t.value)
}

// RuneLen returns the number of code points.
func (t Text) RuneLen() int {
	return utf8.RuneCountInString(t.value)
}

// GraphemeLen returns the number of user-perceived characters.
func (t Text) GraphemeLen() int {
	return uniseg.GraphemeClusterCount(t.value)
}

// Width returns the number of terminal cells t occupies.
func (t Text) Width() int {
	return runewidth.StringWidth(t.value)
}

// ============================================================================
// Building
// ============================================================================

// Repeat concatenates n copies; n <= 0 gives an empty Text.
func (t Text) Repeat(n int) Text {
	if n <= 0 {
		return NewText("")
	}
	return NewText(strings.Repeat(t.value, n))
}

// Concat appends others.
func (t Text) Concat(others ...string) Text {
	return NewText(t.value + strings.Join(others, ""))
}

// PadStart pads the start with repetitions of pad until t is width cells
// wide.
func (t Text) PadStart(width int, pad string) Text {
	return NewText(padding(t.value, width, pad) + t.value)
}

// PadEnd pads the end with repetitions of pad until t is width cells wide.
func (t Text) PadEnd(width int, pad string) Text {
	return NewText(t.value + padding(t.value, width, pad))
}

// padding builds the fill for s, truncating the last repetition of pad so
// the total never exceeds width.
func padding(s string, width int, pad string) string {
	missing := width - runewidth.StringWidth(s)
	if missing <= 0 || runewidth.StringWidth(pad) == 0 {
		return ""
	}
	var b strings.Builder
	for missing > 0 {
		for _, r := range pad {
			w := runewidth.RuneWidth(r)
			if w > missing {
				return b.String()
			}
			b.WriteRune(r)
			missing -= w
			if missing == 0 {
				break
			}
		}
	}
	return b.String()
}
