package benchtest

import (
	"flag"
	"strings"
	"testing"

	"golang.org/x/text/cases"

	"github.com/charlievieth/decasify"
)

var benchStdLib = flag.Bool("stdlib", false, "Use strings.ToLower/ToUpper and x/text/cases in benchmarks (for comparison)")

const benchmarkString = "Q&A with Steve Jobs: 'That's what happens in technology'"

var benchInputs = []struct {
	name string
	s    string
}{
	{"ASCII", strings.Repeat(benchmarkString+" ", 8)},
	{"Turkish", strings.Repeat("ILIK SU VE İTEN RÜZGARLAR ", 16)},
	{"Greek", strings.Repeat("αβγδε ΑΒΓΔΕ ", 32)},
	{"Short", "the lord of the rings"},
}

func benchLower(b *testing.B, s string, l decasify.Locale) {
	b.SetBytes(int64(len(s)))
	if *benchStdLib {
		for i := 0; i < b.N; i++ {
			strings.ToLower(s)
		}
	} else {
		for i := 0; i < b.N; i++ {
			decasify.Lowercase(s, l)
		}
	}
}

func benchUpper(b *testing.B, s string, l decasify.Locale) {
	b.SetBytes(int64(len(s)))
	if *benchStdLib {
		for i := 0; i < b.N; i++ {
			strings.ToUpper(s)
		}
	} else {
		for i := 0; i < b.N; i++ {
			decasify.Uppercase(s, l)
		}
	}
}

func benchTitle(b *testing.B, s string, l decasify.Locale, g decasify.StyleGuide) {
	b.SetBytes(int64(len(s)))
	if *benchStdLib {
		for i := 0; i < b.N; i++ {
			cases.Title(l.Tag()).String(s)
		}
	} else {
		for i := 0; i < b.N; i++ {
			decasify.Titlecase(s, l, g)
		}
	}
}

func BenchmarkLowercase(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			benchLower(b, in.s, decasify.English)
		})
	}
	b.Run("TurkishLocale", func(b *testing.B) {
		benchLower(b, benchInputs[1].s, decasify.Turkish)
	})
}

func BenchmarkUppercase(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			benchUpper(b, in.s, decasify.English)
		})
	}
	b.Run("TurkishLocale", func(b *testing.B) {
		benchUpper(b, benchInputs[1].s, decasify.Turkish)
	})
}

func BenchmarkTitlecase(b *testing.B) {
	for _, in := range benchInputs {
		for _, g := range []decasify.StyleGuide{decasify.DaringFireball, decasify.ChicagoManualOfStyle} {
			b.Run(in.name+"/"+g.String(), func(b *testing.B) {
				benchTitle(b, in.s, decasify.English, g)
			})
		}
	}
	b.Run("TurkishLocale", func(b *testing.B) {
		benchTitle(b, benchInputs[1].s, decasify.Turkish, decasify.LanguageDefault)
	})
}

func BenchmarkSentencecase(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.s)))
			for i := 0; i < b.N; i++ {
				decasify.Sentencecase(in.s, decasify.English)
			}
		})
	}
}
