package rules

import "strings"

// Exception word lists. Words are stored in their locale lower case form.

var englishArticles = []string{"a", "an", "the"}

var apWords = concat(englishArticles, []string{
	"and", "as", "at", "but", "by", "for", "in", "nor", "of", "off", "on",
	"or", "out", "per", "so", "to", "up", "via", "yet",
})

var apaWords = concat(englishArticles, []string{
	"and", "as", "at", "but", "by", "for", "if", "in", "nor", "of", "off",
	"on", "or", "per", "so", "to", "up", "via", "yet",
})

var bluebookWords = concat(englishArticles, []string{
	"and", "as", "at", "but", "by", "for", "from", "in", "into", "like",
	"near", "nor", "of", "off", "on", "onto", "or", "out", "over", "past",
	"per", "so", "to", "up", "upon", "via", "with", "yet",
})

var chicagoWords = concat(englishArticles, []string{
	// conjunctions
	"and", "but", "for", "nor", "or", "yet", "so", "both", "either",
	"neither", "whether", "after", "although", "as", "because", "before",
	"if", "lest", "once", "only", "since", "supposing", "that", "than",
	"though", "till", "unless", "until", "when", "whenever", "where",
	"whereas", "wherever", "while",
	// prepositions
	"about", "above", "across", "against", "along", "among", "around", "at",
	"behind", "between", "beyond", "by", "concerning", "despite", "down",
	"during", "except", "following", "from", "in", "including", "into",
	"like", "near", "of", "off", "on", "onto", "out", "over", "past",
	"plus", "throughout", "to", "towards", "under", "up", "upon", "with",
	"within", "without",
})

var gruberWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "en", "for", "if", "in",
	"of", "on", "or", "the", "to", "v", "v.", "via", "vs", "vs.",
}

var wikipediaWords = concat(englishArticles, []string{
	"and", "but", "for", "nor", "or", "so", "yet",
	"as", "at", "by", "from", "in", "into", "like", "near", "of", "off",
	"on", "onto", "out", "over", "past", "per", "to", "up", "upon", "via",
	"with",
})

var raeWords = []string{
	"a", "al", "ante", "bajo", "con", "contra", "de", "del", "desde",
	"durante", "e", "el", "en", "entre", "hacia", "hasta", "la", "las",
	"los", "mas", "mediante", "ni", "o", "para", "pero", "por", "que",
	"según", "si", "sin", "so", "sino", "sobre", "tras", "u", "un", "una",
	"unas", "unos", "y",
}

var fundeuWords = concat(raeWords, []string{
	"mi", "mis", "nuestro", "nuestra", "nuestros", "nuestras", "tu", "tus",
	"vuestro", "vuestra", "vuestros", "vuestras", "su", "sus",
})

var frenchWords = []string{
	// articles
	"le", "la", "les", "un", "une", "des", "du", "de", "au", "aux",
	// demonstrative and exclamative adjectives
	"ce", "cet", "cette", "ces", "quel", "quels", "quelle", "quelles",
	// possessive adjectives
	"mon", "ton", "son", "notre", "votre", "leur", "ma", "ta", "sa", "mes",
	"tes", "ses", "nos", "vos", "leurs",
	// conjunctions
	"mais", "ou", "et", "donc", "or", "ni", "car", "voire", "que", "qu",
	"quand", "comme", "si", "lorsque", "lorsqu", "puisque", "puisqu",
	"quoique", "quoiqu",
	// prepositions
	"à", "chez", "dans", "entre", "jusque", "jusqu", "hors", "par", "pour",
	"sans", "vers", "sur", "pas", "parmi", "avec", "sous", "en",
	// pronouns
	"je", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles", "me",
	"te", "se", "y", "qui", "quoi", "dont", "où", "ne",
}

// Turkish conjunctions (bağlaçlar).
var tdkConjunctions = []string{"da", "de", "ile", "ki", "ve", "ya", "yahut"}

var tdkWords = concat(tdkConjunctions, questionParticles())

// questionParticles expands the Turkish question particle mı and its personal
// and plural suffixes over the four high and low vowel variants: mı, mi, mu,
// mü, mıdır, misiniz, mulardır, ...
func questionParticles() []string {
	high := []string{"ı", "i", "u", "ü"}
	low := []string{"a", "e"}
	suffixes := []string{""}
	for _, v := range high {
		suffixes = append(suffixes, "s"+v+"n", "y"+v+"z")
		for _, v2 := range high {
			suffixes = append(suffixes, "s"+v+"n"+v2+"z")
		}
		for _, a := range low {
			suffixes = append(suffixes, "d"+v+"r"+"l"+a+"r")
		}
		suffixes = append(suffixes, "d"+v+"r")
	}
	for _, a := range low {
		suffixes = append(suffixes, "l"+a+"r")
	}
	var words []string
	for _, v := range high {
		for _, s := range suffixes {
			words = append(words, "m"+v+s)
		}
	}
	return words
}

func concat(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return all
}

func wordSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" || strings.TrimSpace(w) != w {
			panic("rules: invalid exception word: " + w)
		}
		m[w] = struct{}{}
	}
	return m
}
