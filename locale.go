package decasify

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/charlievieth/decasify/internal/tables"
)

// Locale selects the language specific case mapping exceptions and the
// default style guide. The zero value is the Root locale.
type Locale uint8

const (
	// Root uses the default Unicode case mappings.
	Root Locale = iota
	English
	Spanish
	Turkish
	French
)

// Locales lists the supported locales.
var Locales = []Locale{Root, English, Spanish, Turkish, French}

var localeInfo = [...]struct {
	name  string
	tag   language.Tag
	ex    *tables.Exceptions
	guide StyleGuide
}{
	Root:    {"root", language.Und, tables.Root, DaringFireball},
	English: {"en", language.English, tables.Root, DaringFireball},
	Spanish: {"es", language.Spanish, tables.Root, RealAcademiaEspanola},
	Turkish: {"tr", language.Turkish, tables.Turkic, TurkishLanguageInstitute},
	French:  {"fr", language.French, tables.Root, FrenchTypography},
}

// ErrInvalidLocale is returned by ParseLocale for unsupported locales.
var ErrInvalidLocale = errors.New("decasify: invalid locale")

func (l Locale) valid() bool { return int(l) < len(localeInfo) }

func (l Locale) String() string {
	if l.valid() {
		return localeInfo[l].name
	}
	return fmt.Sprintf("Locale(%d)", uint8(l))
}

// Tag returns the BCP 47 language tag of l.
func (l Locale) Tag() language.Tag {
	if l.valid() {
		return localeInfo[l].tag
	}
	return language.Und
}

// DefaultStyleGuide returns the style guide used by LanguageDefault.
func (l Locale) DefaultStyleGuide() StyleGuide {
	if l.valid() {
		return localeInfo[l].guide
	}
	return DaringFireball
}

func (l Locale) exceptions() *tables.Exceptions {
	if l.valid() {
		return localeInfo[l].ex
	}
	return tables.Root
}

// Language names accepted in addition to BCP 47 tags.
var localeAliases = map[string]Locale{
	"":         Root,
	"root":     Root,
	"und":      Root,
	"english":  English,
	"en_en":    English,
	"spanish":  Spanish,
	"espanol":  Spanish,
	"español":  Spanish,
	"es_es":    Spanish,
	"turkish":  Turkish,
	"turkce":   Turkish,
	"türkçe":   Turkish,
	"tr_tr":    Turkish,
	"french":   French,
	"francais": French,
	"français": French,
	"fr_fr":    French,
}

// ParseLocale parses a BCP 47 language tag ("tr", "tr-TR", "es_419") or a
// language name ("turkish", "español") and returns the matching Locale.
func ParseLocale(s string) (Locale, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if l, ok := localeAliases[key]; ok {
		return l, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(key, "_", "-"))
	if err != nil {
		return Root, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, s, err)
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return Root, fmt.Errorf("%w: %q: no language", ErrInvalidLocale, s)
	}
	for _, l := range Locales[1:] {
		if b, _ := localeInfo[l].tag.Base(); b == base {
			return l, nil
		}
	}
	return Root, fmt.Errorf("%w: %q: unsupported language: %s", ErrInvalidLocale, s, base)
}

// ResolveLocale returns the Locale for tag. Unknown or malformed tags resolve
// to Root.
func ResolveLocale(tag string) Locale {
	l, err := ParseLocale(tag)
	if err != nil {
		return Root
	}
	return l
}
