package decasify

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charlievieth/decasify/internal/tables"
	"github.com/charlievieth/decasify/internal/test"
)

func TestUnicodeVersion(t *testing.T) {
	test.UnicodeVersion(t, tables.UnicodeVersion)
}

func mustStyle(t *testing.T, name string) StyleGuide {
	t.Helper()
	s, err := ParseStyleGuide(name)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLowercase(t *testing.T) {
	test.Lowercase(t, func(text, locale string) string {
		return Lowercase(text, ResolveLocale(locale))
	})
}

func TestUppercase(t *testing.T) {
	test.Uppercase(t, func(text, locale string) string {
		return Uppercase(text, ResolveLocale(locale))
	})
}

func TestSentencecase(t *testing.T) {
	test.Sentencecase(t, func(text, locale string) string {
		return Sentencecase(text, ResolveLocale(locale))
	})
}

func TestTitlecase(t *testing.T) {
	test.Titlecase(t, func(text, locale, style string) string {
		return Titlecase(text, ResolveLocale(locale), mustStyle(t, style))
	})
}

func TestCase(t *testing.T) {
	const in = "ilk VE son: bir a"
	tests := []struct {
		mode CaseMode
		l    Locale
		s    StyleGuide
		out  string
	}{
		{Lower, Turkish, LanguageDefault, "ilk ve son: bir a"},
		{Upper, Turkish, LanguageDefault, "İLK VE SON: BİR A"},
		{Title, Turkish, LanguageDefault, "İlk ve Son: Bir A"},
		{Title, Turkish, DaringFireball, "İlk VE Son: Bir A"},
		{Title, English, DaringFireball, "Ilk VE Son: Bir A"},
		{Sentence, Turkish, DaringFireball, "İlk ve son: bir a"},
		{CaseMode(42), English, LanguageDefault, "Ilk VE Son: Bir A"},
	}
	for _, x := range tests {
		got := Case(in, x.mode, x.l, x.s)
		if got != x.out {
			t.Errorf("Case(%q, %s, %s, %s) = %q; want: %q", in, x.mode, x.l, x.s, got, x.out)
		}
	}
}

// Turkish and root locales must disagree on dotted and dotless I.
func TestLocaleDivergence(t *testing.T) {
	if got := Lowercase("İ", Turkish); got != "i" {
		t.Errorf("Lowercase(%q, Turkish) = %q; want: %q", "İ", got, "i")
	}
	if got := Lowercase("İ", Root); got == "i" {
		t.Errorf("Lowercase(%q, Root) = %q; want: not %q", "İ", got, "i")
	}
	const in = "ILIK SU VE İTEN RÜZGARLAR"
	tr := Titlecase(in, Turkish, LanguageDefault)
	root := Titlecase(in, Root, LanguageDefault)
	if tr == root {
		t.Errorf("Titlecase(%q): Turkish and Root both return %q", in, tr)
	}
	if !strings.Contains(tr, "Ilık") || !strings.Contains(tr, "İten") {
		t.Errorf("Titlecase(%q, Turkish) = %q: missing dotted or dotless I", in, tr)
	}
}

// Each English style guide disagrees with DaringFireball on some input.
func TestStyleGuideDivergence(t *testing.T) {
	inputs := []string{
		"Once UPON A time",
		"the cat in the hat with a bat",
		"a step-by-step guide",
		"the story of o'reilly from above",
		"this; or that",
	}
	for _, s := range []StyleGuide{AssociatedPress, APA, Bluebook, ChicagoManualOfStyle, Wikipedia} {
		differ := false
		for _, in := range inputs {
			if Titlecase(in, English, s) != Titlecase(in, English, DaringFireball) {
				differ = true
				break
			}
		}
		if !differ {
			t.Errorf("%s: no input differs from %s", s, DaringFireball)
		}
	}
}

func TestOverrides(t *testing.T) {
	tests := []struct {
		in, out   string
		l         Locale
		s         StyleGuide
		overrides []string
	}{
		{"the nasa ios app", "The NASA iOS App", English, ChicagoManualOfStyle, []string{"NASA", "iOS"}},
		{"the NASA IOS app", "The NASA iOS App", English, DaringFireball, []string{"iOS"}},
		{"ios for the win", "iOS for the Win", English, AssociatedPress, []string{"iOS"}},
		{"la obra de sus majestades", "La Obra de SUS Majestades", Spanish, RealAcademiaEspanola, []string{"SUS"}},
		{"ILIK", "\u0131LIK", Turkish, LanguageDefault, []string{"\u0131LIK"}},
	}
	for _, x := range tests {
		got := Titlecase(x.in, x.l, x.s, WithOverrides(x.overrides...))
		if got != x.out {
			t.Errorf("Titlecase(%q, %s, %s, %q) = %q; want: %q", x.in, x.l, x.s, x.overrides, got, x.out)
		}
	}
	got := Sentencecase("about the ios APP", English, WithOverrides("iOS"))
	if want := "About the iOS app"; got != want {
		t.Errorf("Sentencecase() = %q; want: %q", got, want)
	}
}

func TestInitialism(t *testing.T) {
	for in, want := range map[string]bool{
		"u.s":   true,
		"e.g":   true,
		"é.u":   true,
		"a":     false,
		"vs":    false,
		"ph.d":  false,
		"u..s":  false,
		"1.2":   false,
		"u.s.a": true,
	} {
		if got := isInitialism(in); got != want {
			t.Errorf("isInitialism(%q) = %t; want: %t", in, got, want)
		}
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in  string
		out Locale
		err bool
	}{
		{"", Root, false},
		{"root", Root, false},
		{"en", English, false},
		{"EN-us", English, false},
		{"en_GB", English, false},
		{"English", English, false},
		{"es", Spanish, false},
		{"es-419", Spanish, false},
		{"español", Spanish, false},
		{"tr", Turkish, false},
		{"tr-TR", Turkish, false},
		{"tr_tr", Turkish, false},
		{"Türkçe", Turkish, false},
		{"fr", French, false},
		{"fr-CA", French, false},
		{"Français", French, false},
		{"de", Root, true},
		{"not a tag!", Root, true},
	}
	for _, x := range tests {
		got, err := ParseLocale(x.in)
		if got != x.out || (err != nil) != x.err {
			t.Errorf("ParseLocale(%q) = %s, %v; want: %s, %t", x.in, got, err, x.out, x.err)
		}
		if err != nil && !errors.Is(err, ErrInvalidLocale) {
			t.Errorf("ParseLocale(%q) error %v does not wrap ErrInvalidLocale", x.in, err)
		}
		if got := ResolveLocale(x.in); got != x.out {
			t.Errorf("ResolveLocale(%q) = %s; want: %s", x.in, got, x.out)
		}
	}
}

func TestLocale(t *testing.T) {
	for _, l := range Locales {
		if got := ResolveLocale(l.String()); got != l {
			t.Errorf("ResolveLocale(%q) = %s; want: %s", l.String(), got, l)
		}
		if g := l.DefaultStyleGuide(); g == LanguageDefault {
			t.Errorf("%s: default style guide is LanguageDefault", l)
		}
	}
	if got := Turkish.Tag().String(); got != "tr" {
		t.Errorf("Turkish.Tag() = %q; want: %q", got, "tr")
	}
	bad := Locale(99)
	if bad.String() != "Locale(99)" || bad.exceptions() != tables.Root || bad.DefaultStyleGuide() != DaringFireball {
		t.Errorf("invalid Locale(99) fallback")
	}
}

func TestParseStyleGuide(t *testing.T) {
	for _, s := range StyleGuides {
		got, err := ParseStyleGuide(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStyleGuide(%q) = %s, %v; want: %s", s.String(), got, err, s)
		}
	}
	for in, want := range map[string]StyleGuide{
		"":                LanguageDefault,
		"none":            LanguageDefault,
		"Daring-Fireball": DaringFireball,
		"Chicago":         ChicagoManualOfStyle,
		"FundéuRAE":       FundeuRealAcademiaEspanola,
		"AP":              AssociatedPress,
		"Français":        FrenchTypography,
	} {
		got, err := ParseStyleGuide(in)
		if err != nil || got != want {
			t.Errorf("ParseStyleGuide(%q) = %s, %v; want: %s", in, got, err, want)
		}
	}
	if _, err := ParseStyleGuide("mla"); !errors.Is(err, ErrInvalidStyleGuide) {
		t.Errorf("ParseStyleGuide(%q) = %v; want: %v", "mla", err, ErrInvalidStyleGuide)
	}
}

func TestStyleGuideResolve(t *testing.T) {
	tests := []struct {
		l    Locale
		want StyleGuide
	}{
		{Root, DaringFireball},
		{English, DaringFireball},
		{Spanish, RealAcademiaEspanola},
		{Turkish, TurkishLanguageInstitute},
		{French, FrenchTypography},
	}
	for _, x := range tests {
		if got := LanguageDefault.Resolve(x.l); got != x.want {
			t.Errorf("LanguageDefault.Resolve(%s) = %s; want: %s", x.l, got, x.want)
		}
		if got := APA.Resolve(x.l); got != APA {
			t.Errorf("APA.Resolve(%s) = %s; want: %s", x.l, got, APA)
		}
	}
	if got := StyleGuide(99).rules(English); got == nil || got.Name() != "gruber" {
		t.Errorf("StyleGuide(99).rules() = %v; want: gruber", got)
	}
	if words := TurkishLanguageInstitute.ExceptionWords(Turkish); len(words) == 0 {
		t.Error("TurkishLanguageInstitute.ExceptionWords() returned no words")
	}
}

func TestParseCase(t *testing.T) {
	for in, want := range map[string]CaseMode{
		"":              Title,
		"lower":         Lower,
		"LowerCase":     Lower,
		"upper":         Upper,
		"title":         Title,
		"title-case":    Title,
		"sentence":      Sentence,
		"Sentence_Case": Sentence,
	} {
		got, err := ParseCase(in)
		if err != nil || got != want {
			t.Errorf("ParseCase(%q) = %s, %v; want: %s", in, got, err, want)
		}
	}
	for _, in := range []string{"camel", "case", "-case", "titlecases"} {
		if _, err := ParseCase(in); !errors.Is(err, ErrInvalidCase) {
			t.Errorf("ParseCase(%q) = %v; want: %v", in, err, ErrInvalidCase)
		}
	}
	if got := CaseMode(9).String(); got != "CaseMode(9)" {
		t.Errorf("CaseMode(9).String() = %q", got)
	}
}

func TestConcurrent(t *testing.T) {
	const in = "Q&A with Steve Jobs: 'That's what happens in technology'"
	want := Titlecase(in, English, DaringFireball)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Titlecase(in, English, DaringFireball); got != want {
					t.Errorf("Titlecase() = %q; want: %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkTitlecase(b *testing.B) {
	in := strings.Repeat("Q&A with Steve Jobs: 'That's what happens in technology' ", 4)
	for _, l := range []Locale{English, Turkish} {
		b.Run(l.String(), func(b *testing.B) {
			b.SetBytes(int64(len(in)))
			for i := 0; i < b.N; i++ {
				Titlecase(in, l, LanguageDefault)
			}
		})
	}
}
