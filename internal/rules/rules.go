// Package rules defines the title case rule sets of the supported style
// guides and the per word capitalization decision.
package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/charlievieth/decasify/internal/tables"
)

// Hyphenation controls how the parts of a hyphenated word are capitalized.
type Hyphenation uint8

const (
	// HyphenEach classifies each part of a hyphenated word independently.
	HyphenEach Hyphenation = iota
	// HyphenFirst capitalizes only the first part of a hyphenated word.
	HyphenFirst
)

// Preservation controls which words keep their existing capitalization.
type Preservation uint8

const (
	// KeepNone always rewrites the case of a word.
	KeepNone Preservation = iota
	// KeepMixed keeps words with internal capitals that also contain lower
	// case letters ("McDonald", "iPhone") unless they are the first or last
	// word of the title.
	KeepMixed
	// KeepInterior keeps any word with a capital after its first character
	// ("iPhone", "NASA") unless the whole input is upper case.
	KeepInterior
)

// Config configures a RuleSet.
type Config struct {
	Name string
	// Exceptions are lower cased unless forced by their position.
	Exceptions []string
	// Words with at least MinLength characters are capitalized even when
	// they are exceptions. Zero disables the threshold.
	MinLength int
	// Triggers force capitalization of the following word. A colon is
	// always a trigger.
	Triggers string
	Hyphens  Hyphenation
	Preserve Preservation
	// PreserveDotted keeps words such as "example.com" unchanged.
	PreserveDotted bool
	// ForceLast capitalizes the last word of a title.
	ForceLast bool
	// ApostrophePrefixes are single letter prefixes after which the word
	// is capitalized again: "o'reilly" => "O'Reilly".
	ApostrophePrefixes string
}

// A RuleSet is an immutable set of title case rules.
type RuleSet struct {
	name           string
	exceptions     map[string]struct{}
	minLength      int
	triggers       string
	hyphens        Hyphenation
	preserve       Preservation
	preserveDotted bool
	forceLast      bool
	apostrophe     string
}

// New returns a RuleSet for conf.
func New(conf Config) *RuleSet {
	triggers := conf.Triggers
	if !strings.ContainsRune(triggers, ':') {
		triggers = ":" + triggers
	}
	return &RuleSet{
		name:           conf.Name,
		exceptions:     wordSet(conf.Exceptions),
		minLength:      conf.MinLength,
		triggers:       triggers,
		hyphens:        conf.Hyphens,
		preserve:       conf.Preserve,
		preserveDotted: conf.PreserveDotted,
		forceLast:      conf.ForceLast,
		apostrophe:     conf.ApostrophePrefixes,
	}
}

func (rs *RuleSet) Name() string              { return rs.name }
func (rs *RuleSet) MinLength() int            { return rs.minLength }
func (rs *RuleSet) Triggers() string          { return rs.triggers }
func (rs *RuleSet) Hyphens() Hyphenation      { return rs.hyphens }
func (rs *RuleSet) Preserve() Preservation    { return rs.preserve }
func (rs *RuleSet) ForceLast() bool           { return rs.forceLast }
func (rs *RuleSet) IsTrigger(r rune) bool     { return strings.ContainsRune(rs.triggers, r) }
func (rs *RuleSet) IsException(w string) bool { _, ok := rs.exceptions[w]; return ok }

// HasTrigger reports whether s contains a trigger.
func (rs *RuleSet) HasTrigger(s string) bool {
	return strings.ContainsAny(s, rs.triggers)
}

// Exceptions returns the sorted exception words.
func (rs *RuleSet) Exceptions() []string {
	words := maps.Keys(rs.exceptions)
	slices.Sort(words)
	return words
}

// ApostrophePrefix returns the length in bytes of the single letter prefix
// and apostrophe that start word ("o'" in "o'reilly"), or zero.
func (rs *RuleSet) ApostrophePrefix(word string) int {
	if rs.apostrophe == "" || len(word) < 3 {
		return 0
	}
	r, n := utf8.DecodeRuneInString(word)
	if !strings.ContainsRune(rs.apostrophe, unicode.ToLower(r)) {
		return 0
	}
	a, m := utf8.DecodeRuneInString(word[n:])
	if !strings.ContainsRune("'’ʼ", a) || n+m >= len(word) {
		return 0
	}
	if _, ok := apostropheWords[apostropheNormalizer.Replace(strings.ToLower(word))]; ok {
		return 0
	}
	return n + m
}

// Words that start with a prefix and apostrophe but are capitalized as a
// single word.
var apostropheWords = map[string]struct{}{
	"o'clock": {},
}

var apostropheNormalizer = strings.NewReplacer("’", "'", "ʼ", "'")

// Position flags of a word within a title.
type Position struct {
	First        bool // first word of the title
	Last         bool // last word of the title
	AfterTrigger bool // follows trigger punctuation
}

// Decision is the outcome of classifying a word.
type Decision uint8

const (
	Capitalize Decision = iota
	Lowercase
	Preserve
)

func (d Decision) String() string {
	switch d {
	case Capitalize:
		return "Capitalize"
	case Lowercase:
		return "Lowercase"
	case Preserve:
		return "Preserve"
	}
	return "Decision(?)"
}

// Word is a word to classify.
type Word struct {
	Text  string // word as it appears in the input
	Lower string // locale lower case form of Text
	// UpperInput is set when the whole input is upper case.
	UpperInput bool
}

// Classify decides the capitalization of w at position pos. The checks are
// applied in order:
//
//  1. preservation of existing capitals (per the Preservation policy) and
//     dotted words
//  2. first word, last word (when the guide forces it) and words following
//     trigger punctuation are capitalized
//  3. words of at least MinLength characters are capitalized
//  4. exception words are lower cased
//  5. everything else is capitalized
func (rs *RuleSet) Classify(w Word, pos Position) Decision {
	if rs.preserves(w, pos) {
		return Preserve
	}
	if pos.First || pos.AfterTrigger || (pos.Last && rs.forceLast) {
		return Capitalize
	}
	if rs.minLength > 0 && uniseg.GraphemeClusterCount(w.Text) >= rs.minLength {
		return Capitalize
	}
	if rs.IsException(w.Lower) {
		return Lowercase
	}
	return Capitalize
}

func (rs *RuleSet) preserves(w Word, pos Position) bool {
	if rs.preserveDotted && isDotted(w.Text) {
		return true
	}
	switch rs.preserve {
	case KeepMixed:
		upper, lower := caseCounts(w.Text)
		// Acronyms ("NASA", "U.S") keep their capitals anywhere in a
		// mixed case title.
		if !w.UpperInput && upper >= 2 && lower == 0 && !rs.IsException(w.Lower) {
			return true
		}
		if pos.First || pos.Last {
			return false
		}
		return upper > 0 && lower > 0 && hasInteriorUpper(w.Text)
	case KeepInterior:
		return !w.UpperInput && hasInteriorUpper(w.Text)
	}
	return false
}

// isDotted reports whether a period joins two letters of s ("example.com")
func isDotted(s string) bool {
	i := strings.IndexByte(s, '.')
	return i > 0 && i < len(s)-1
}

func isUpper(r rune) bool {
	u, l, ok := tables.ToUpperLower(r)
	return ok && r == u && r != l || unicode.IsUpper(r)
}

func isLower(r rune) bool {
	u, l, ok := tables.ToUpperLower(r)
	return ok && r == l && r != u || unicode.IsLower(r)
}

func caseCounts(s string) (upper, lower int) {
	for _, r := range s {
		if isUpper(r) {
			upper++
		} else if isLower(r) {
			lower++
		}
	}
	return upper, lower
}

// hasInteriorUpper reports whether s has an upper case letter after its first
// letter.
func hasInteriorUpper(s string) bool {
	seenLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if seenLetter && isUpper(r) {
			return true
		}
		seenLetter = true
	}
	return false
}

// IsUpperInput reports whether s contains a cased letter and no lower case
// letters.
func IsUpperInput(s string) bool {
	upper, lower := caseCounts(s)
	return upper > 0 && lower == 0
}
