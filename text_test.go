package fluent

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(s *Sequence[Text]) []string {
	return MapTo(s, Text.ToRaw).ToRaw()
}

func TestText_Explode(t *testing.T) {
	tests := []struct {
		in, delim string
		want      []string
	}{
		{"a,b,c", ",", []string{"a", "b", "c"}},
		{",a,,b,", ",", []string{"", "a", "", "b", ""}},
		{"abc", "|", []string{"abc"}},
		{"", ",", []string{""}},
		{"a::b", "::", []string{"a", "b"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, texts(NewText(tt.in).Explode(tt.delim)), "%q on %q", tt.in, tt.delim)
	}
	assert.Equal(t, []string{"x", "y"}, texts(NewText("x y").Split(" ")))
}

func TestText_Trim(t *testing.T) {
	s := NewText(" \t hello \n\x00")

	assert.Equal(t, "hello", s.Trim().ToRaw())
	assert.Equal(t, "hello \n\x00", s.LTrim().ToRaw())
	assert.Equal(t, " \t hello", s.RTrim().ToRaw())
	assert.Equal(t, "hello", NewText("--hello-+").Trim("-", "+").ToRaw())
	assert.Equal(t, "hello-+", NewText("--hello-+").LTrim("-").ToRaw())
	assert.Equal(t, "--hello", NewText("--hello-+").RTrim("+-").ToRaw())
}

func TestText_Case(t *testing.T) {
	s := NewText("Hello, Wörld")

	assert.Equal(t, "HELLO, WÖRLD", s.ToUpper().ToRaw())
	assert.Equal(t, "hello, wörld", s.ToLower().ToRaw())
}

func TestText_Replace(t *testing.T) {
	s := NewText("a.b.c")
	assert.Equal(t, "a-b-c", s.Replace(".", "-").ToRaw())
	assert.Equal(t, "a.b.c", s.Replace("x", "-").ToRaw())
}

func TestText_RegexReplace(t *testing.T) {
	s := NewText("2024-01-15")

	out, err := s.RegexReplace(`(\d+)-(\d+)-(\d+)`, "$3/$2/$1")
	require.NoError(t, err)
	assert.Equal(t, "15/01/2024", out.ToRaw())

	out, err = NewText("aa bb cd").RegexReplace(`(\w)\1`, "<$1>")
	require.NoError(t, err)
	assert.Equal(t, "<a> <b> cd", out.ToRaw())

	out, err = NewText("price: 10 USD, 20 EUR").RegexReplace(`\d+(?= EUR)`, "X")
	require.NoError(t, err)
	assert.Equal(t, "price: 10 USD, X EUR", out.ToRaw())
}

func TestText_RegexMatch(t *testing.T) {
	matches, err := NewText("hello world").RegexMatch(`\w+`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, texts(matches))

	matches, err = NewText("none here").RegexMatch(`\d`)
	require.NoError(t, err)
	assert.Equal(t, 0, matches.Len())
}

func TestText_Regex_BadPattern(t *testing.T) {
	_, err := NewText("x").RegexMatch(`(`)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewText("x").RegexReplace(`[`, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestText_Regex_Backtracking(t *testing.T) {
	s := NewText(strings.Repeat("a", 40) + "!")

	start := time.Now()
	_, err := s.RegexMatch(`^(a+)+$`)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.RegexReplace(`^(a+)+$`, "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Less(t, time.Since(start), 10*RegexTimeout)
}

func TestText_Substring(t *testing.T) {
	s := NewText("hello world")

	tests := []struct {
		name   string
		start  int
		length []int
		want   string
	}{
		{"prefix", 0, []int{5}, "hello"},
		{"to end", 6, nil, "world"},
		{"negative start", -5, nil, "world"},
		{"negative start with length", -5, []int{2}, "wo"},
		{"negative length", 0, []int{-6}, "hello"},
		{"length past end", 6, []int{100}, "world"},
		{"start past end", 20, nil, ""},
		{"start before beginning", -20, []int{5}, "hello"},
		{"empty window", 3, []int{-10}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Substring(tt.start, tt.length...).ToRaw())
		})
	}
}

func TestText_Queries(t *testing.T) {
	s := NewText("Hello world, world")

	assert.True(t, s.Includes("world"))
	assert.False(t, s.Includes("World"))
	assert.True(t, s.StartsWith("Hello"))
	assert.False(t, s.StartsWith("hello"))
	assert.True(t, s.EndsWith("world"))
	assert.Equal(t, 6, s.IndexOf("world"))
	assert.Equal(t, 13, s.LastIndexOf("world"))
	assert.Equal(t, -1, s.IndexOf("moon"))
}

func TestText_Lengths(t *testing.T) {
	s := NewText("héllo")
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 5, s.RuneLen())
	assert.Equal(t, 5, s.GraphemeLen())
	assert.Equal(t, 5, s.Width())

	wide := NewText("日本")
	assert.Equal(t, 6, wide.Len())
	assert.Equal(t, 2, wide.RuneLen())
	assert.Equal(t, 4, wide.Width())

	flag := NewText("🇩🇪")
	assert.Equal(t, 2, flag.RuneLen())
	assert.Equal(t, 1, flag.GraphemeLen())
}

func TestText_Repeat(t *testing.T) {
	assert.Equal(t, "ababab", NewText("ab").Repeat(3).ToRaw())
	assert.Equal(t, "", NewText("ab").Repeat(0).ToRaw())
	assert.Equal(t, "", NewText("ab").Repeat(-1).ToRaw())
}

func TestText_Pad(t *testing.T) {
	assert.Equal(t, "007", NewText("7").PadStart(3, "0").ToRaw())
	assert.Equal(t, "abcab5", NewText("5").PadStart(6, "abc").ToRaw())
	assert.Equal(t, "5...", NewText("5").PadEnd(4, ".").ToRaw())
	assert.Equal(t, "long", NewText("long").PadEnd(2, ".").ToRaw())
	assert.Equal(t, "x", NewText("x").PadEnd(5, "").ToRaw())
	assert.Equal(t, " 日本", NewText("日本").PadStart(5, " ").ToRaw())
}

func TestText_ConcatAndRaw(t *testing.T) {
	s := NewText("a").Concat("b", "c")
	assert.Equal(t, "abc", s.ToRaw())
	assert.Equal(t, "abc", s.String())

	out, err := json.Marshal(map[string]Text{"k": NewText(`q"`)})
	require.NoError(t, err)
	assert.Equal(t, `{"k":"q\""}`, string(out))
}

func TestText_Immutable(t *testing.T) {
	s := NewText("  Abc  ")
	s.Trim()
	s.ToUpper()
	s.Replace("A", "z")
	s.Substring(1)
	assert.Equal(t, "  Abc  ", s.ToRaw())
}
