package tables

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Case selects one of the three case mappings.
type Case uint8

const (
	Lower Case = iota
	Upper
	Title
)

func (c Case) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Title:
		return "title"
	}
	return "Case(" + strconv.Itoa(int(c)) + ")"
}

// A Mapping replaces the character sequence From with To. From may be longer
// than one rune when the mapping is conditional on the following characters:
// in Turkish "I" followed by U+0307 lowercases to "i".
type Mapping struct {
	From string
	To   string
}

// Exceptions is an immutable set of locale specific case mappings that take
// priority over the default Unicode case mappings.
type Exceptions struct {
	name  string
	index [3]map[rune][]Mapping
	ascii [3]bool
}

// Root has no exceptions: the default Unicode mappings always apply.
var Root = NewExceptions("root", nil, nil, nil)

// Turkic holds the Turkish and Azerbaijani dotted and dotless I mappings.
var Turkic = NewExceptions("turkic", _TurkicLower, _TurkicUpper, _TurkicTitle)

// NewExceptions returns a new exception set. Within each case mappings are
// matched longest first. NewExceptions panics if a mapping has an empty or
// invalid From sequence.
func NewExceptions(name string, lower, upper, title []Mapping) *Exceptions {
	e := &Exceptions{name: name}
	for c, ms := range [3][]Mapping{lower, upper, title} {
		if len(ms) == 0 {
			continue
		}
		m := make(map[rune][]Mapping, len(ms))
		for _, x := range ms {
			if x.From == "" || !utf8.ValidString(x.From) || !utf8.ValidString(x.To) {
				panic("tables: invalid mapping: " + strconv.Quote(x.From) + " => " + strconv.Quote(x.To))
			}
			r, _ := utf8.DecodeRuneInString(x.From)
			if r < utf8.RuneSelf {
				e.ascii[c] = true
			}
			list := append(m[r], x)
			// insertion sort: longest From first
			for i := len(list) - 1; i > 0 && len(list[i].From) > len(list[i-1].From); i-- {
				list[i], list[i-1] = list[i-1], list[i]
			}
			m[r] = list
		}
		e.index[c] = m
	}
	return e
}

func (e *Exceptions) Name() string { return e.name }

// Len returns the number of mappings for case c.
func (e *Exceptions) Len(c Case) int {
	n := 0
	for _, ms := range e.index[c] {
		n += len(ms)
	}
	return n
}

// Empty reports whether e has no mappings for case c.
func (e *Exceptions) Empty(c Case) bool { return e == nil || len(e.index[c]) == 0 }

// HasASCII reports whether any mapping for case c starts with an ASCII
// character. When false ASCII only text may use the default mappings.
func (e *Exceptions) HasASCII(c Case) bool { return e != nil && e.ascii[c] }

// Lookup returns the replacement for the longest mapping for case c that is a
// prefix of s and the number of bytes of s it consumes.
func (e *Exceptions) Lookup(c Case, s string) (to string, n int, ok bool) {
	if e == nil || len(s) == 0 || e.index[c] == nil {
		return "", 0, false
	}
	var r rune
	if s[0] < utf8.RuneSelf {
		r = rune(s[0])
	} else {
		r, _ = utf8.DecodeRuneInString(s)
	}
	for _, m := range e.index[c][r] {
		if strings.HasPrefix(s, m.From) {
			return m.To, len(m.From), true
		}
	}
	return "", 0, false
}

// Mappings returns a copy of the mappings for case c ordered by first rune and
// then longest match first.
func (e *Exceptions) Mappings(c Case) []Mapping {
	var keys []rune
	for r := range e.index[c] {
		keys = append(keys, r)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	var all []Mapping
	for _, r := range keys {
		all = append(all, e.index[c][r]...)
	}
	return all
}

// ToUpperLower combines unicode.ToUpper and unicode.ToLower in one function.
func ToUpperLower(r rune) (upper, lower rune, foundMapping bool) {
	if r <= unicode.MaxASCII {
		if 'A' <= r && r <= 'Z' {
			return r, r + ('a' - 'A'), true
		}
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A'), r, true
		}
		return r, r, false
	}

	// binary search over ranges
	caseRange := unicode.CaseRanges
	lo := 0
	hi := len(caseRange)
	for lo < hi {
		m := lo + (hi-lo)/2
		cr := caseRange[m]
		if rune(cr.Lo) <= r && r <= rune(cr.Hi) {
			// Upper-Lower sequences alternate upper (even offset) and
			// lower (odd offset) so the mapping is found by setting or
			// clearing the low bit of the offset.
			if delta := cr.Delta[unicode.UpperCase]; delta > unicode.MaxRune {
				upper = rune(cr.Lo) + ((r-rune(cr.Lo))&^1 | rune(unicode.UpperCase&1))
			} else {
				upper = r + delta
			}
			if delta := cr.Delta[unicode.LowerCase]; delta > unicode.MaxRune {
				lower = rune(cr.Lo) + ((r-rune(cr.Lo))&^1 | rune(unicode.LowerCase&1))
			} else {
				lower = r + delta
			}
			return upper, lower, true
		}
		if r < rune(cr.Lo) {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return r, r, false
}
