package decasify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charlievieth/decasify/internal/casemap"
	"github.com/charlievieth/decasify/internal/rules"
	"github.com/charlievieth/decasify/internal/segment"
	"github.com/charlievieth/decasify/internal/tables"
)

// engine title cases a single input.
type engine struct {
	ex         *tables.Exceptions
	rs         *rules.RuleSet
	overrides  map[string]string // locale lower case => override
	upperInput bool
}

func newEngine(l Locale, s StyleGuide, o *options) *engine {
	e := &engine{
		ex: l.exceptions(),
		rs: s.rules(l),
	}
	if len(o.overrides) > 0 {
		e.overrides = make(map[string]string, len(o.overrides))
		for _, w := range o.overrides {
			if w != "" {
				e.overrides[casemap.Lower(w, e.ex)] = w
			}
		}
	}
	return e
}

// lastWords returns the index of the last word of each line.
func lastWords(segs []segment.Segment) map[int]bool {
	last := make(map[int]bool)
	n := -1
	for i, seg := range segs {
		switch {
		case seg.Kind == segment.Word:
			n = i
		case seg.HasNewline():
			if n >= 0 {
				last[n] = true
			}
			n = -1
		}
	}
	if n >= 0 {
		last[n] = true
	}
	return last
}

// trigger reports whether punctuation punct that follows the word prev forces
// capitalization of the next word. The period of an abbreviated exception
// word ("vs.") or of an initialism ("U.S.") is not a trigger.
func (e *engine) trigger(punct, prev string) bool {
	if prev != "" && strings.HasPrefix(punct, ".") &&
		(e.rs.IsException(prev+".") || isInitialism(prev)) {
		punct = punct[1:]
	}
	return e.rs.HasTrigger(punct)
}

// isInitialism reports whether word is single letters joined by periods
// ("u.s", "e.g").
func isInitialism(word string) bool {
	if !strings.Contains(word, ".") {
		return false
	}
	for _, part := range strings.Split(word, ".") {
		if utf8.RuneCountInString(part) != 1 || !unicode.IsLetter([]rune(part)[0]) {
			return false
		}
	}
	return true
}

func (e *engine) title(text string) string {
	segs := segment.Split(text)
	last := lastWords(segs)
	e.upperInput = rules.IsUpperInput(text)

	var b strings.Builder
	b.Grow(len(text))
	first := true
	after := false
	prev := ""
	for i, seg := range segs {
		switch seg.Kind {
		case segment.Word:
			lower := casemap.Lower(seg.Text, e.ex)
			pos := rules.Position{First: first, Last: last[i], AfterTrigger: after}
			b.WriteString(e.word(seg.Text, lower, pos))
			first, after, prev = false, false, lower
		case segment.Space:
			b.WriteString(seg.Text)
			if seg.HasNewline() {
				first, after = true, false
			}
			prev = ""
		case segment.Punct:
			b.WriteString(seg.Text)
			if e.trigger(seg.Text, prev) {
				after = true
			}
			prev = ""
		}
	}
	return b.String()
}

func (e *engine) word(text, lower string, pos rules.Position) string {
	if w, ok := e.overrides[lower]; ok {
		return w
	}
	d := e.rs.Classify(rules.Word{Text: text, Lower: lower, UpperInput: e.upperInput}, pos)
	if d == rules.Preserve {
		return text
	}
	parts := segment.SplitParts(text)
	if len(parts) == 1 {
		return e.apply(d, text, lower)
	}

	// Parts alternate between words and hyphens.
	var b strings.Builder
	b.Grow(len(text))
	n := (len(parts) + 1) / 2
	for i := 0; i < len(parts); i += 2 {
		k := i / 2
		part := parts[i]
		plower := casemap.Lower(part, e.ex)
		var pd rules.Decision
		if k > 0 && e.rs.Hyphens() == rules.HyphenFirst {
			pd = rules.Lowercase
		} else {
			pd = e.rs.Classify(rules.Word{Text: part, Lower: plower, UpperInput: e.upperInput},
				rules.Position{
					First:        pos.First && k == 0,
					Last:         pos.Last && k == n-1,
					AfterTrigger: pos.AfterTrigger && k == 0,
				})
		}
		b.WriteString(e.apply(pd, part, plower))
		if i+1 < len(parts) {
			b.WriteString(parts[i+1])
		}
	}
	return b.String()
}

func (e *engine) apply(d rules.Decision, text, lower string) string {
	switch d {
	case rules.Preserve:
		return text
	case rules.Lowercase:
		return lower
	}
	if n := e.rs.ApostrophePrefix(text); n > 0 {
		return casemap.Capitalize(text[:n], e.ex) + casemap.Capitalize(text[n:], e.ex)
	}
	return casemap.Capitalize(text, e.ex)
}

func (e *engine) sentence(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	first := true
	t := segment.New(text)
	for {
		seg, ok := t.Next()
		if !ok {
			break
		}
		if seg.Kind != segment.Word {
			b.WriteString(seg.Text)
			if seg.HasNewline() {
				first = true
			}
			continue
		}
		lower := casemap.Lower(seg.Text, e.ex)
		switch w, ok := e.overrides[lower]; {
		case ok:
			b.WriteString(w)
		case first:
			b.WriteString(casemap.Capitalize(seg.Text, e.ex))
		default:
			b.WriteString(lower)
		}
		first = false
	}
	return b.String()
}
