package ucd

import (
	"io"
	"strings"
)

// SpecialCasing is an entry of SpecialCasing.txt.
type SpecialCasing struct {
	Code       rune
	Lower      []rune
	Title      []rune
	Upper      []rune
	Languages  []string // "tr", "az", "lt"
	Conditions []string // "After_I", "Not_Before_Dot", "Final_Sigma"
	Comment    string
}

// HasLanguage reports whether the entry only applies to language lang.
func (s *SpecialCasing) HasLanguage(lang string) bool {
	for _, l := range s.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// HasCondition reports whether the entry is conditional on cond.
func (s *SpecialCasing) HasCondition(cond string) bool {
	for _, c := range s.Conditions {
		if c == cond {
			return true
		}
	}
	return false
}

func isLanguageID(s string) bool {
	return len(s) >= 2 && len(s) <= 3 && strings.ToLower(s) == s
}

// ParseSpecialCasing parses the SpecialCasing.txt file read from r.
func ParseSpecialCasing(r io.Reader) ([]SpecialCasing, error) {
	var entries []SpecialCasing
	err := Parse(r, func(p *Parser) {
		e := SpecialCasing{
			Code:    p.Rune(0),
			Lower:   p.Runes(1),
			Title:   p.Runes(2),
			Upper:   p.Runes(3),
			Comment: p.Comment(),
		}
		for _, c := range strings.Fields(p.String(4)) {
			if isLanguageID(c) {
				e.Languages = append(e.Languages, c)
			} else {
				e.Conditions = append(e.Conditions, c)
			}
		}
		entries = append(entries, e)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
