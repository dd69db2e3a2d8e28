package main

import (
	"cmp"
	"fmt"
	"log"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"

	"github.com/charlievieth/decasify/internal/ucd"
)

const (
	lowerCase = iota
	upperCase
	titleCase
	maxCase
)

type mapping struct {
	From    string
	To      string
	Comment string
}

// tables are the language specific case mappings of a set of languages.
type tables [maxCase][]mapping

func codePoints(s string) string {
	var b strings.Builder
	for i, r := range []rune(s) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "U+%04X", r)
	}
	return b.String()
}

func (t *tables) add(c int, from, to string, conds []string) {
	for _, m := range t[c] {
		if m.From == from {
			if m.To != to {
				log.Panicf("conflicting mappings for %s: %q and %q", codePoints(from), m.To, to)
			}
			return
		}
	}
	comment := codePoints(from)
	if len(conds) > 0 {
		comment += " " + strings.Join(conds, " ")
	}
	t[c] = append(t[c], mapping{From: from, To: to, Comment: comment})
}

// buildTables converts the SpecialCasing entries of langs into exception
// tables. Entries conditional on the preceding "I" become two rune mappings
// and entries conditional on not preceding a dot become plain mappings since
// exceptions are matched longest first.
func buildTables(entries []ucd.SpecialCasing, langs []string) *tables {
	var t tables
	for i := range entries {
		e := &entries[i]
		if !slices.ContainsFunc(langs, e.HasLanguage) {
			continue
		}
		code := string(e.Code)
		switch {
		case len(e.Conditions) == 0:
			for c, to := range [maxCase][]rune{lowerCase: e.Lower, upperCase: e.Upper, titleCase: e.Title} {
				if s := string(to); s != code {
					t.add(c, code, s, nil)
				}
			}
		case e.HasCondition("After_I") && len(e.Conditions) == 1:
			from := "I" + code
			if s := string(unicode.ToLower('I')) + string(e.Lower); s != from {
				t.add(lowerCase, from, s, e.Conditions)
			}
		case e.HasCondition("Not_Before_Dot") && len(e.Conditions) == 1:
			if s := string(e.Lower); s != code {
				t.add(lowerCase, code, s, e.Conditions)
			}
		default:
			log.Printf("skipping unsupported condition %q: %s", e.Conditions, e.Comment)
		}
	}
	for c := range t {
		slices.SortFunc(t[c], func(a, b mapping) int {
			if n := cmp.Compare(len([]rune(b.From)), len([]rune(a.From))); n != 0 {
				return n
			}
			return cmp.Compare(a.From, b.From)
		})
	}
	return &t
}

// quote returns s as a Go string literal. Marks and non-printing runes are
// escaped so combining characters are visible in the generated source.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < unicode.MaxASCII && unicode.IsPrint(r):
			b.WriteRune(r)
		case r > unicode.MaxASCII && unicode.IsLetter(r):
			b.WriteRune(r)
		case r > 0xFFFF:
			fmt.Fprintf(&b, "\\U%08x", r)
		default:
			fmt.Fprintf(&b, "\\u%04x", r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
