package rules

// Sentence terminators that restart capitalization.
const sentenceEnd = ".?!"

var (
	AssociatedPress = New(Config{
		Name:               "ap",
		Exceptions:         apWords,
		MinLength:          4,
		Triggers:           ":" + sentenceEnd,
		Preserve:           KeepMixed,
		ForceLast:          true,
		ApostrophePrefixes: "o",
	})

	APA = New(Config{
		Name:               "apa",
		Exceptions:         apaWords,
		MinLength:          4,
		Triggers:           ":—" + sentenceEnd,
		Preserve:           KeepMixed,
		ForceLast:          true,
		ApostrophePrefixes: "o",
	})

	Bluebook = New(Config{
		Name:               "bluebook",
		Exceptions:         bluebookWords,
		MinLength:          5,
		Triggers:           ":" + sentenceEnd,
		Hyphens:            HyphenFirst,
		Preserve:           KeepMixed,
		ForceLast:          true,
		ApostrophePrefixes: "o",
	})

	ChicagoManualOfStyle = New(Config{
		Name:               "cmos",
		Exceptions:         chicagoWords,
		Triggers:           ":" + sentenceEnd,
		Preserve:           KeepMixed,
		ForceLast:          true,
		ApostrophePrefixes: "o",
	})

	// DaringFireball follows John Gruber's title case script.
	DaringFireball = New(Config{
		Name:           "gruber",
		Exceptions:     gruberWords,
		Triggers:       ":;" + sentenceEnd,
		Preserve:       KeepInterior,
		PreserveDotted: true,
		ForceLast:      true,
	})

	Wikipedia = New(Config{
		Name:               "wikipedia",
		Exceptions:         wikipediaWords,
		MinLength:          5,
		Triggers:           ":" + sentenceEnd,
		Preserve:           KeepMixed,
		ForceLast:          true,
		ApostrophePrefixes: "o",
	})

	TurkishLanguageInstitute = New(Config{
		Name:       "tdk",
		Exceptions: tdkWords,
		Triggers:   ":" + sentenceEnd,
		Preserve:   KeepMixed,
	})

	RealAcademiaEspanola = New(Config{
		Name:       "rae",
		Exceptions: raeWords,
		Triggers:   ":" + sentenceEnd,
		Preserve:   KeepMixed,
	})

	FundeuRealAcademiaEspanola = New(Config{
		Name:       "fundeu",
		Exceptions: fundeuWords,
		Triggers:   ":" + sentenceEnd,
		Preserve:   KeepMixed,
	})

	French = New(Config{
		Name:       "french",
		Exceptions: frenchWords,
		Triggers:   ":" + sentenceEnd,
		Preserve:   KeepMixed,
		ForceLast:  true,
	})
)

// All lists the built-in rule sets.
var All = []*RuleSet{
	AssociatedPress,
	APA,
	Bluebook,
	ChicagoManualOfStyle,
	DaringFireball,
	Wikipedia,
	TurkishLanguageInstitute,
	RealAcademiaEspanola,
	FundeuRealAcademiaEspanola,
	French,
}

// Lookup returns the built-in rule set with the given name.
func Lookup(name string) (*RuleSet, bool) {
	for _, rs := range All {
		if rs.name == name {
			return rs, true
		}
	}
	return nil, false
}
