// Package casemap converts the case of text using the default Unicode case
// mappings overridden by a set of locale exceptions.
package casemap

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/charlievieth/decasify/internal/tables"
)

// Casers are stateful and not safe for concurrent use so a new one is created
// for each conversion.
func caser(c tables.Case) cases.Caser {
	switch c {
	case tables.Upper:
		return cases.Upper(language.Und)
	case tables.Title:
		return cases.Title(language.Und)
	default:
		return cases.Lower(language.Und)
	}
}

// Lower returns s with all characters mapped to their lower case.
func Lower(s string, ex *tables.Exceptions) string {
	return Map(tables.Lower, s, ex)
}

// Upper returns s with all characters mapped to their upper case.
func Upper(s string, ex *tables.Exceptions) string {
	return Map(tables.Upper, s, ex)
}

// Map returns s with all characters mapped to case c. Mappings in ex take
// priority over the default full Unicode mappings. The result may be longer
// or shorter than s (e.g. "ß" uppercases to "SS").
//
// Map with tables.Title title cases every word, use Capitalize to title case
// a single word.
func Map(c tables.Case, s string, ex *tables.Exceptions) string {
	if s == "" {
		return s
	}
	if c != tables.Title && !ex.HasASCII(c) && isASCII(s) {
		return mapASCII(c, s)
	}
	if ex.Empty(c) {
		return caser(c).String(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	t := caser(c)
	start := 0
	prev := "" // source text of the previous exception match
	for i := 0; i < len(s); {
		if to, n, ok := ex.Lookup(c, s[i:]); ok {
			if start < i {
				b.WriteString(mapPiece(c, t, prev, s[start:i], s[i:i+n]))
			}
			b.WriteString(to)
			prev = s[i : i+n]
			i += n
			start = i
			continue
		}
		if s[i] < utf8.RuneSelf {
			i++
		} else {
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
		}
	}
	if start == 0 {
		return t.String(s)
	}
	if start < len(s) {
		b.WriteString(mapPiece(c, t, prev, s[start:], ""))
	}
	return b.String()
}

// mapPiece maps s with the text of the neighboring exception matches as
// context so that context sensitive mappings such as the final sigma see
// the surrounding letters.
func mapPiece(c tables.Case, t cases.Caser, before, s, after string) string {
	if c != tables.Lower || (before == "" && after == "") {
		return t.String(s)
	}
	out := t.String(before + s + after)
	lb, la := len(t.String(before)), len(t.String(after))
	if lb+la > len(out) {
		return t.String(s)
	}
	return out[lb : len(out)-la]
}

// Capitalize title cases the first grapheme cluster of word and lower cases
// the remainder.
func Capitalize(word string, ex *tables.Exceptions) string {
	if word == "" {
		return word
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(word, -1)
	return TitleFirst(first, ex) + Lower(rest, ex)
}

// TitleFirst title cases the first grapheme cluster of s and leaves the
// remainder unchanged.
func TitleFirst(s string, ex *tables.Exceptions) string {
	if s == "" {
		return s
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	if to, n, ok := ex.Lookup(tables.Title, first); ok {
		return to + first[n:] + rest
	}
	if len(first) == 1 && first[0] < utf8.RuneSelf {
		return string(_upper[first[0]]) + rest
	}
	return cases.Title(language.Und, cases.NoLower).String(first) + rest
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func mapASCII(c tables.Case, s string) string {
	table := &_lower
	if c == tables.Upper {
		table = &_upper
	}
	i := 0
	for ; i < len(s); i++ {
		if table[s[i]] != s[i] {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s[:i])
	for ; i < len(s); i++ {
		b[i] = table[s[i]]
	}
	return string(b)
}
