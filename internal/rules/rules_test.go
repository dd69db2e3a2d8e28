package rules

import (
	"strings"
	"testing"

	"golang.org/x/exp/slices"
)

func word(s string) Word {
	return Word{Text: s, Lower: strings.ToLower(s)}
}

func TestClassify(t *testing.T) {
	var (
		mid   = Position{}
		first = Position{First: true}
		last  = Position{Last: true}
		after = Position{AfterTrigger: true}
	)
	tests := []struct {
		rs   *RuleSet
		w    Word
		pos  Position
		want Decision
	}{
		{DaringFireball, word("a"), mid, Lowercase},
		{DaringFireball, word("a"), first, Capitalize},
		{DaringFireball, word("a"), last, Capitalize},
		{DaringFireball, word("a"), after, Capitalize},
		{DaringFireball, word("with"), mid, Capitalize},
		{DaringFireball, word("vs."), mid, Lowercase},
		{DaringFireball, word("UPON"), mid, Preserve},
		{DaringFireball, Word{Text: "UPON", Lower: "upon", UpperInput: true}, mid, Capitalize},
		{DaringFireball, word("iPhone"), first, Preserve},
		{DaringFireball, word("example.com"), mid, Preserve},
		{DaringFireball, word("Q&A"), first, Preserve},

		{ChicagoManualOfStyle, word("UPON"), mid, Lowercase},
		{ChicagoManualOfStyle, word("McDonald"), mid, Preserve},
		{ChicagoManualOfStyle, word("McDonald"), first, Capitalize},
		{ChicagoManualOfStyle, word("between"), mid, Lowercase},
		{ChicagoManualOfStyle, word("between"), last, Capitalize},
		{ChicagoManualOfStyle, word("NASA"), mid, Preserve},
		{ChicagoManualOfStyle, word("NASA"), first, Preserve},
		{ChicagoManualOfStyle, word("NASA"), last, Preserve},
		{ChicagoManualOfStyle, word("U.S"), mid, Preserve},
		{ChicagoManualOfStyle, word("A"), mid, Lowercase},
		{ChicagoManualOfStyle, word("AND"), mid, Lowercase},
		{ChicagoManualOfStyle, Word{Text: "NASA", Lower: "nasa", UpperInput: true}, mid, Capitalize},
		{TurkishLanguageInstitute, word("FBI"), last, Preserve},
		{TurkishLanguageInstitute, word("VE"), mid, Lowercase},

		// length threshold wins over the exception list
		{AssociatedPress, word("with"), mid, Capitalize},
		{AssociatedPress, word("from"), mid, Capitalize},
		{AssociatedPress, word("for"), mid, Lowercase},
		{APA, word("with"), mid, Capitalize},
		{APA, word("per"), mid, Lowercase},
		{Bluebook, word("with"), mid, Lowercase},
		{Bluebook, word("among"), mid, Capitalize},
		{Wikipedia, word("into"), mid, Lowercase},
		{Wikipedia, word("about"), mid, Capitalize},

		{TurkishLanguageInstitute, word("ve"), mid, Lowercase},
		{TurkishLanguageInstitute, word("mısın"), last, Lowercase},
		{TurkishLanguageInstitute, word("o"), last, Capitalize},
		{TurkishLanguageInstitute, word("ile"), first, Capitalize},
		{RealAcademiaEspanola, word("del"), mid, Lowercase},
		{RealAcademiaEspanola, word("del"), last, Lowercase},
		{RealAcademiaEspanola, word("nuestro"), mid, Capitalize},
		{FundeuRealAcademiaEspanola, word("nuestro"), mid, Lowercase},
		{French, word("des"), mid, Lowercase},
		{French, word("où"), mid, Lowercase},
		{French, word("de"), last, Capitalize},
		{French, word("le"), first, Capitalize},
		{French, word("anneaux"), mid, Capitalize},
		{French, word("ONU"), mid, Preserve},
	}
	for _, test := range tests {
		got := test.rs.Classify(test.w, test.pos)
		if got != test.want {
			t.Errorf("%s: Classify(%q, %+v) = %s; want: %s",
				test.rs.Name(), test.w.Text, test.pos, got, test.want)
		}
	}
}

func TestColonAlwaysTriggers(t *testing.T) {
	for _, rs := range All {
		if !rs.IsTrigger(':') {
			t.Errorf("%s: colon is not a trigger", rs.Name())
		}
	}
	rs := New(Config{Name: "test", Triggers: "!"})
	if !rs.HasTrigger("a: b") || !rs.HasTrigger("!") || rs.HasTrigger(".") {
		t.Errorf("%s: invalid triggers: %q", rs.Name(), rs.Triggers())
	}
}

func TestQuestionParticles(t *testing.T) {
	words := questionParticles()
	if len(words) != 156 {
		t.Errorf("questionParticles() = %d words; want: %d", len(words), 156)
	}
	for _, w := range []string{"mı", "mi", "mu", "mü", "mısın", "midir", "mudurlar", "müsünüz", "miyiz", "mılar", "miler"} {
		if !TurkishLanguageInstitute.IsException(w) {
			t.Errorf("tdk: %q is not an exception", w)
		}
	}
	for _, w := range []string{"minnettarlık", "mısır", "m", "ma"} {
		if TurkishLanguageInstitute.IsException(w) {
			t.Errorf("tdk: %q is an exception", w)
		}
	}
}

func TestApostrophePrefix(t *testing.T) {
	tests := map[string]int{
		"o'reilly": 2,
		"o’brien":  4,
		"that's":   0,
		"o'":       0,
		"d'arcy":   0,
		"o":        0,
		"o'clock":  0,
		"O’Clock":  0,
		"oʼclock":  0,
	}
	for in, want := range tests {
		if got := AssociatedPress.ApostrophePrefix(in); got != want {
			t.Errorf("ApostrophePrefix(%q) = %d; want: %d", in, got, want)
		}
	}
	if n := DaringFireball.ApostrophePrefix("o'reilly"); n != 0 {
		t.Errorf("gruber: ApostrophePrefix(%q) = %d; want: 0", "o'reilly", n)
	}
}

func TestExceptions(t *testing.T) {
	for _, rs := range All {
		words := rs.Exceptions()
		if len(words) == 0 {
			t.Errorf("%s: no exceptions", rs.Name())
		}
		if !slices.IsSorted(words) {
			t.Errorf("%s: exceptions are not sorted", rs.Name())
		}
		for _, w := range words {
			if !rs.IsException(w) {
				t.Errorf("%s: IsException(%q) = false", rs.Name(), w)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	for _, rs := range All {
		got, ok := Lookup(rs.Name())
		if !ok || got != rs {
			t.Errorf("Lookup(%q) = %v, %t", rs.Name(), got, ok)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) = true")
	}
}

func TestIsUpperInput(t *testing.T) {
	tests := map[string]bool{
		"FIST":             true,
		"ILIK SU VE İTEN":  true,
		"Once UPON A time": false,
		"123":              false,
		"":                 false,
		"ÖĞLEN!":           true,
	}
	for in, want := range tests {
		if got := IsUpperInput(in); got != want {
			t.Errorf("IsUpperInput(%q) = %t; want: %t", in, got, want)
		}
	}
}

func TestNewPanicsOnEmptyWord(t *testing.T) {
	defer func() {
		if e := recover(); e == nil {
			t.Error("New did not panic")
		}
	}()
	New(Config{Name: "bad", Exceptions: []string{""}})
}
