// Package test provides test vectors and randomized property tests shared by
// the decasify library and its bindings.
package test

import (
	"runtime"
	"testing"
	"unicode"
)

// UnicodeVersion fails the test if the Unicode version of the running Go
// toolchain does not match version.
func UnicodeVersion(t *testing.T, version string) {
	if version != unicode.Version {
		t.Fatalf("unicode.Version (%s) != UnicodeVersion (%s):\n"+
			"The version of Unicode included in the version of Go (%s) running this test\n"+
			"does not match the Unicode version the decasify tables were generated with.\n"+
			"\n"+
			"To regenerate the Unicode tables run: `go generate` and check in the changes to\n"+
			"\"internal/tables/tables.go\".",
			unicode.Version, version, runtime.Version())
	}
}

// CaseTest is a lower, upper or sentence case test vector.
type CaseTest struct {
	Locale string
	In     string
	Out    string
}

// TitleTest is a title case test vector. Style is a style guide name, the
// empty string selects the default style guide of the locale.
type TitleTest struct {
	Locale string
	Style  string
	In     string
	Out    string
}

var LowerTests = []CaseTest{
	{"en", "", ""},
	{"en", "foo BAR BaZ BIKE", "foo bar baz bike"},
	{"en", "WHY THE LONG FACE?", "why the long face?"},
	{"tr", "foo BAR BaZ ILIK İLE", "foo bar baz ılık ile"},
	{"tr", "\u0130", "i"},
	{"tr", "I\u0307", "i"},
	{"root", "\u0130", "i\u0307"},
	{"en", "ΑΒΓ", "αβγ"},
	{"en", "ΟΔΟΣ", "οδος"},
	{"tr", "ΑΣI", "ασı"},
	{"tr", "IΣ", "ıς"},
	{"es", "ÁRBOL Ñandú", "árbol ñandú"},
	{"xx-unknown", "\u0130I", "i\u0307i"},
}

var UpperTests = []CaseTest{
	{"en", "", ""},
	{"en", "foo BAR BaZ bike", "FOO BAR BAZ BIKE"},
	{"tr", "foo BAR BaZ ILIK İLE", "FOO BAR BAZ ILIK İLE"},
	{"tr", "istanbul ılık", "İSTANBUL ILIK"},
	{"en", "istanbul", "ISTANBUL"},
	{"de", "straße", "STRASSE"},
	{"es", "árbol ñandú", "ÁRBOL ÑANDÚ"},
}

var SentenceTests = []CaseTest{
	{"en", "insert BIKE here", "Insert bike here"},
	{"en", "WHY THE LONG FACE?", "Why the long face?"},
	{"tr", "ilk DAVRANSIN", "İlk davransın"},
	{"es", "EL ÁRBOL de la vida", "El árbol de la vida"},
	{"en", "  leading space", "  Leading space"},
	{"en", "hello world\nfoo bar", "Hello world\nFoo bar"},
	{"tr", "ilk SATIR\r\nikinci SATIR", "İlk satır\r\nİkinci satır"},
	{"en", "", ""},
}

var TitleTests = []TitleTest{
	// Locale fallback and defaults
	{"en", "gruber", "FIST", "Fist"},
	{"en", "", "FIST", "Fist"},
	{"tr", "", "FIST", "Fıst"},
	{"tr", "default", "FIST", "Fıst"},
	{"en", "", "", ""},

	{"en", "ap", "a b c", "A B C"},
	{"en", "cmos", "a b c", "A B C"},
	{"en", "gruber", "a b c", "A B C"},
	{"en", "gruber", "  foo  bar  ", "  Foo  Bar  "},
	{"en", "", "  foo  bar  ", "  Foo  Bar  "},

	{"en", "cmos", "Once UPON A time", "Once upon a Time"},
	{"en", "gruber", "Once UPON A time", "Once UPON a Time"},
	{"en", "gruber", "foo: a baz", "Foo: A Baz"},
	{"en", "cmos", "foo: a baz", "Foo: A Baz"},
	{"en", "gruber", "title with a twist: a colon", "Title With a Twist: A Colon"},
	{"en", "gruber",
		"Q&A with Steve Jobs: 'That's what happens in technology'",
		"Q&A With Steve Jobs: 'That's What Happens in Technology'"},
	{"en", "gruber", "  free  trolling\n  space  ", "  Free  Trolling\n  Space  "},
	{"en", "gruber", "the end of the line\nand the start of another", "The End of the Line\nAnd the Start of Another"},
	{"en", "gruber", "visit example.com for the iPhone", "Visit example.com for the iPhone"},
	{"en", "gruber", "apple vs. microsoft", "Apple vs. Microsoft"},
	{"en", "gruber", "it ended. and then", "It Ended. And Then"},
	{"en", "gruber", "this; or that", "This; Or That"},

	// Length thresholds
	{"en", "ap", "a tale of two cities with a twist", "A Tale of Two Cities With a Twist"},
	{"en", "apa", "the cat in the hat with a bat", "The Cat in the Hat With a Bat"},
	{"en", "bluebook", "the cat in the hat with a bat", "The Cat in the Hat with a Bat"},
	{"en", "wikipedia", "the lord of the rings from above", "The Lord of the Rings from Above"},
	{"en", "cmos", "the lord of the rings from above", "The Lord of the Rings from Above"},

	// Hyphens
	{"en", "ap", "a step-by-step guide", "A Step-by-Step Guide"},
	{"en", "bluebook", "a step-by-step guide", "A Step-by-step Guide"},
	{"en", "gruber", "self-driving cars", "Self-Driving Cars"},

	// Apostrophes and internal capitals
	{"en", "cmos", "the story of o'reilly", "The Story of O'Reilly"},
	{"en", "cmos", "a visit to McDonald land", "A Visit to McDonald Land"},
	{"en", "ap", "don't stop me now", "Don't Stop Me Now"},
	{"en", "ap", "it is five o'clock now", "It Is Five O'clock Now"},
	{"en", "cmos", "meet me at o’clock tower", "Meet Me at O’clock Tower"},

	// Acronyms
	{"en", "ap", "the NASA budget for the FBI report", "The NASA Budget for the FBI Report"},
	{"en", "cmos", "the NASA budget for the FBI report", "The NASA Budget for the FBI Report"},
	{"en", "cmos", "NASA at fifty", "NASA at Fifty"},
	{"en", "ap", "made in the U.S. and canada", "Made in the U.S. and Canada"},
	{"en", "gruber", "made in the U.S. and canada", "Made in the U.S. and Canada"},
	{"en", "cmos", "THE NASA BUDGET", "The Nasa Budget"},
	{"tr", "", "NASA ve FBI raporu", "NASA ve FBI Raporu"},

	// Turkish
	{"tr", "", "aç mısın", "Aç mısın"},
	{"tr", "", "dualarımızda minnettarlık", "Dualarımızda Minnettarlık"},
	{"tr", "", "İLKİ ILIK ÖĞLEN", "İlki Ilık Öğlen"},
	{"tr", "", "Sen VE ben ile o", "Sen ve Ben ile O"},
	{"tr", "", "  serbest  serseri\n  boşluk  ", "  Serbest  Serseri\n  Boşluk  "},
	{"tr", "tdk", "ILIK SU VE İTEN RÜZGARLAR", "Ilık Su ve İten Rüzgarlar"},
	{"root", "tdk", "ILIK SU VE İTEN RÜZGARLAR", "Ilik Su ve İten Rüzgarlar"},
	{"tr", "gruber", "ilk ve son: bir istanbul hikayesi", "İlk Ve Son: Bir İstanbul Hikayesi"},

	// Spanish
	{"es", "", "el señor de los anillos", "El Señor de los Anillos"},
	{"es", "rae", "la casa de mi padre", "La Casa de Mi Padre"},
	{"es", "fundeu", "la casa de mi padre", "La Casa de mi Padre"},
	{"es", "", "cien años de soledad", "Cien Años de Soledad"},

	// French
	{"fr", "", "le seigneur des anneaux", "Le Seigneur des Anneaux"},
	{"fr", "", "un homme et une femme", "Un Homme et une Femme"},
	{"fr", "", "le pont-de-la-vie", "Le Pont-de-la-Vie"},
	{"fr", "", "ce que je sais de", "Ce que je Sais De"},
	{"fr", "french", "À LA RECHERCHE DU TEMPS PERDU", "À la Recherche du Temps Perdu"},
	{"en", "french", "la vie en rose", "La Vie en Rose"},
}

// Lowercase runs LowerTests against fn.
func Lowercase(t *testing.T, fn func(text, locale string) string) {
	runCaseTests(t, "Lowercase", LowerTests, fn)
}

// Uppercase runs UpperTests against fn.
func Uppercase(t *testing.T, fn func(text, locale string) string) {
	runCaseTests(t, "Uppercase", UpperTests, fn)
}

// Sentencecase runs SentenceTests against fn.
func Sentencecase(t *testing.T, fn func(text, locale string) string) {
	runCaseTests(t, "Sentencecase", SentenceTests, fn)
}

func runCaseTests(t *testing.T, name string, tests []CaseTest, fn func(text, locale string) string) {
	t.Helper()
	for _, test := range tests {
		got := fn(test.In, test.Locale)
		if got != test.Out {
			t.Errorf("%s(%q, %s) = %q; want: %q", name, test.In, test.Locale, got, test.Out)
		}
	}
}

// Titlecase runs TitleTests against fn.
func Titlecase(t *testing.T, fn func(text, locale, style string) string) {
	t.Helper()
	for _, test := range TitleTests {
		got := fn(test.In, test.Locale, test.Style)
		if got != test.Out {
			t.Errorf("Titlecase(%q, %s, %q) = %q; want: %q",
				test.In, test.Locale, test.Style, got, test.Out)
		}
	}
}
