package decasify

import (
	"errors"
	"fmt"
	"strings"
)

// CaseMode selects the conversion.
type CaseMode uint8

const (
	Lower CaseMode = iota
	Upper
	Title
	// Sentence capitalizes only the first word.
	Sentence
)

// CaseModes lists all case modes.
var CaseModes = []CaseMode{Lower, Upper, Title, Sentence}

// ErrInvalidCase is returned by ParseCase for unknown case names.
var ErrInvalidCase = errors.New("decasify: invalid case")

var modeNames = [...]string{
	Lower:    "lower",
	Upper:    "upper",
	Title:    "title",
	Sentence: "sentence",
}

func (m CaseMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("CaseMode(%d)", uint8(m))
}

// ParseCase parses a case name such as "lower", "TitleCase" or "sentence".
// The empty string is Title.
func ParseCase(s string) (CaseMode, error) {
	key := strings.TrimRight(strings.ToLower(strings.TrimSpace(s)), "-_ ")
	if k := strings.TrimRight(strings.TrimSuffix(key, "case"), "-_ "); k != "" {
		key = k
	}
	if key == "" {
		return Title, nil
	}
	for i, name := range modeNames {
		if key == name {
			return CaseMode(i), nil
		}
	}
	return Title, fmt.Errorf("%w: %q", ErrInvalidCase, s)
}
