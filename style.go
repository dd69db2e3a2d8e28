package decasify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charlievieth/decasify/internal/rules"
)

// StyleGuide selects the title case rules. The zero value is
// LanguageDefault.
type StyleGuide uint8

const (
	// LanguageDefault uses the default style guide of the locale.
	LanguageDefault StyleGuide = iota
	AssociatedPress
	APA
	Bluebook
	ChicagoManualOfStyle
	// DaringFireball follows John Gruber's title case rules.
	DaringFireball
	Wikipedia
	// TurkishLanguageInstitute is the Türk Dil Kurumu (TDK) style.
	TurkishLanguageInstitute
	RealAcademiaEspanola
	FundeuRealAcademiaEspanola
	// FrenchTypography lower cases French function words and capitalizes
	// each part of a hyphenated word.
	FrenchTypography
)

// StyleGuides lists all style guides.
var StyleGuides = []StyleGuide{
	LanguageDefault,
	AssociatedPress,
	APA,
	Bluebook,
	ChicagoManualOfStyle,
	DaringFireball,
	Wikipedia,
	TurkishLanguageInstitute,
	RealAcademiaEspanola,
	FundeuRealAcademiaEspanola,
	FrenchTypography,
}

// ErrInvalidStyleGuide is returned by ParseStyleGuide for unknown names.
var ErrInvalidStyleGuide = errors.New("decasify: invalid style guide")

var styleNames = [...]string{
	LanguageDefault:            "default",
	AssociatedPress:            "ap",
	APA:                        "apa",
	Bluebook:                   "bluebook",
	ChicagoManualOfStyle:       "cmos",
	DaringFireball:             "gruber",
	Wikipedia:                  "wikipedia",
	TurkishLanguageInstitute:   "tdk",
	RealAcademiaEspanola:       "rae",
	FundeuRealAcademiaEspanola: "fundeu",
	FrenchTypography:           "french",
}

func (s StyleGuide) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("StyleGuide(%d)", uint8(s))
}

// Resolve returns the style guide used for locale l: LanguageDefault is
// replaced by the locale's default guide.
func (s StyleGuide) Resolve(l Locale) StyleGuide {
	if s == LanguageDefault {
		return l.DefaultStyleGuide()
	}
	return s
}

// rules returns the rule set of s for locale l. Unknown style guides use the
// DaringFireball rules.
func (s StyleGuide) rules(l Locale) *rules.RuleSet {
	switch s.Resolve(l) {
	case AssociatedPress:
		return rules.AssociatedPress
	case APA:
		return rules.APA
	case Bluebook:
		return rules.Bluebook
	case ChicagoManualOfStyle:
		return rules.ChicagoManualOfStyle
	case DaringFireball:
		return rules.DaringFireball
	case Wikipedia:
		return rules.Wikipedia
	case TurkishLanguageInstitute:
		return rules.TurkishLanguageInstitute
	case RealAcademiaEspanola:
		return rules.RealAcademiaEspanola
	case FundeuRealAcademiaEspanola:
		return rules.FundeuRealAcademiaEspanola
	case FrenchTypography:
		return rules.French
	}
	return rules.DaringFireball
}

// ExceptionWords returns the words s lower cases in titles for locale l.
func (s StyleGuide) ExceptionWords(l Locale) []string {
	return s.rules(l).Exceptions()
}

var styleAliases = map[string]StyleGuide{
	"":                           LanguageDefault,
	"default":                    LanguageDefault,
	"languagedefault":            LanguageDefault,
	"language":                   LanguageDefault,
	"none":                       LanguageDefault,
	"ap":                         AssociatedPress,
	"associatedpress":            AssociatedPress,
	"apa":                        APA,
	"bluebook":                   Bluebook,
	"cmos":                       ChicagoManualOfStyle,
	"chicago":                    ChicagoManualOfStyle,
	"chicagomanualofstyle":       ChicagoManualOfStyle,
	"gruber":                     DaringFireball,
	"daringfireball":             DaringFireball,
	"fireball":                   DaringFireball,
	"wikipedia":                  Wikipedia,
	"wiki":                       Wikipedia,
	"tdk":                        TurkishLanguageInstitute,
	"turkishlanguageinstitute":   TurkishLanguageInstitute,
	"rae":                        RealAcademiaEspanola,
	"realacademiaespanola":       RealAcademiaEspanola,
	"fundeu":                     FundeuRealAcademiaEspanola,
	"fundeurae":                  FundeuRealAcademiaEspanola,
	"fundeurealacademiaespanola": FundeuRealAcademiaEspanola,
	"french":                     FrenchTypography,
	"francais":                   FrenchTypography,
	"frenchtypography":           FrenchTypography,
}

// normalizeName lower cases s and removes separators and accents used in
// style guide names ("Daring-Fireball", "FundéuRAE").
var normalizeName = strings.NewReplacer("-", "", "_", "", " ", "", ".", "", "é", "e", "ñ", "n", "ç", "c")

// ParseStyleGuide parses a style guide name.
func ParseStyleGuide(s string) (StyleGuide, error) {
	key := normalizeName.Replace(strings.ToLower(strings.TrimSpace(s)))
	if g, ok := styleAliases[key]; ok {
		return g, nil
	}
	return LanguageDefault, fmt.Errorf("%w: %q", ErrInvalidStyleGuide, s)
}
