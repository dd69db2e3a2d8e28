package decasify

import (
	"github.com/charlievieth/decasify/internal/casemap"
)

// Version of the decasify library.
const Version = "0.1.0"

// An Option configures title and sentence case conversions.
type Option func(*options)

type options struct {
	overrides []string
}

// WithOverrides forces the exact spelling of words such as "iOS" or "NASA".
// A word in the input is replaced with an override when their locale lower
// case forms are equal.
func WithOverrides(words ...string) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, words...)
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, fn := range opts {
		if fn != nil {
			fn(o)
		}
	}
	return o
}

// Lowercase returns text with all letters mapped to lower case using the case
// mappings of locale l.
func Lowercase(text string, l Locale) string {
	return casemap.Lower(text, l.exceptions())
}

// Uppercase returns text with all letters mapped to upper case using the case
// mappings of locale l.
func Uppercase(text string, l Locale) string {
	return casemap.Upper(text, l.exceptions())
}

// Titlecase returns text converted to title case following style guide s.
// LanguageDefault selects the default style guide of l. Whitespace and
// punctuation are copied unchanged.
func Titlecase(text string, l Locale, s StyleGuide, opts ...Option) string {
	e := newEngine(l, s, newOptions(opts))
	return e.title(text)
}

// Sentencecase returns text with the first word capitalized and all other
// words lower cased.
func Sentencecase(text string, l Locale, opts ...Option) string {
	e := newEngine(l, LanguageDefault, newOptions(opts))
	return e.sentence(text)
}

// Case converts text to case mode m. The style guide is only used by Title.
func Case(text string, m CaseMode, l Locale, s StyleGuide, opts ...Option) string {
	switch m {
	case Lower:
		return Lowercase(text, l)
	case Upper:
		return Uppercase(text, l)
	case Sentence:
		return Sentencecase(text, l, opts...)
	default:
		return Titlecase(text, l, s, opts...)
	}
}
