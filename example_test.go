package decasify_test

import (
	"fmt"

	"github.com/charlievieth/decasify"
)

func ExampleTitlecase() {
	fmt.Println(decasify.Titlecase("Q&A with Steve Jobs: 'That's what happens in technology'",
		decasify.English, decasify.DaringFireball))
	fmt.Println(decasify.Titlecase("ilk ve son", decasify.Turkish, decasify.LanguageDefault))
	fmt.Println(decasify.Titlecase("el señor de los anillos", decasify.Spanish, decasify.LanguageDefault))
	// Output:
	// Q&A With Steve Jobs: 'That's What Happens in Technology'
	// İlk ve Son
	// El Señor de los Anillos
}

func ExampleLowercase() {
	fmt.Println(decasify.Lowercase("ILIK", decasify.Turkish))
	fmt.Println(decasify.Lowercase("ILIK", decasify.English))
	fmt.Println(decasify.Lowercase("DİYARBAKIR", decasify.Turkish))
	// Output:
	// ılık
	// ilik
	// diyarbakır
}

func ExampleUppercase() {
	fmt.Println(decasify.Uppercase("istanbul", decasify.Turkish))
	fmt.Println(decasify.Uppercase("istanbul", decasify.English))
	fmt.Println(decasify.Uppercase("straße", decasify.Root))
	// Output:
	// İSTANBUL
	// ISTANBUL
	// STRASSE
}

func ExampleSentencecase() {
	fmt.Println(decasify.Sentencecase("ILIK SU", decasify.Turkish))
	fmt.Println(decasify.Sentencecase("the Quick BROWN fox", decasify.English))
	// Output:
	// Ilık su
	// The quick brown fox
}

func ExampleCase() {
	const s = "the quick brown fox"
	for _, m := range decasify.CaseModes {
		fmt.Printf("%s: %s\n", m, decasify.Case(s, m, decasify.English, decasify.APA))
	}
	// Output:
	// lower: the quick brown fox
	// upper: THE QUICK BROWN FOX
	// title: The Quick Brown Fox
	// sentence: The quick brown fox
}

func ExampleWithOverrides() {
	fmt.Println(decasify.Titlecase("the nasa ios app", decasify.English,
		decasify.ChicagoManualOfStyle, decasify.WithOverrides("NASA", "iOS")))
	// Output:
	// The NASA iOS App
}

func ExampleParseLocale() {
	l, err := decasify.ParseLocale("tr-TR")
	fmt.Println(l, err)
	_, err = decasify.ParseLocale("de")
	fmt.Println(err != nil)
	// Output:
	// tr <nil>
	// true
}

func ExampleParseStyleGuide() {
	s, err := decasify.ParseStyleGuide("Chicago")
	fmt.Println(s, err)
	fmt.Println(decasify.LanguageDefault.Resolve(decasify.Turkish))
	// Output:
	// cmos <nil>
	// tdk
}
