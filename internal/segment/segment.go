// Package segment splits text into word, space and punctuation segments.
//
// Segments never split a grapheme cluster and concatenating the segments of
// a string in order always reproduces the string exactly.
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Kind classifies a Segment.
type Kind uint8

const (
	Word Kind = iota
	Space
	Punct
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Space:
		return "Space"
	case Punct:
		return "Punct"
	}
	return "Kind(?)"
}

// A Segment is a classified span of the input. Start and End are byte
// offsets into the tokenized string.
type Segment struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// Joiners are word-internal when they occur between two word characters:
// "don't", "o’reilly", "well-known", "Q&A", "example.com", "snake_case",
// "and/or".
const joiners = "'’ʼ-‐‑&._/"

// Hyphens separate the parts of a compound word.
const Hyphens = "-‐‑"

// Apostrophes that may join a word.
const Apostrophes = "'’ʼ"

// A Tokenizer lazily splits a string into segments. A Tokenizer is not safe
// for concurrent use.
type Tokenizer struct {
	s     string
	pos   int
	state int
	// lookahead cluster
	next      string
	nextKind  Kind
	nextState int
	hasNext   bool
}

// New returns a Tokenizer over s.
func New(s string) *Tokenizer {
	return &Tokenizer{s: s, state: -1}
}

// Reset restarts the Tokenizer over s.
func (t *Tokenizer) Reset(s string) {
	*t = Tokenizer{s: s, state: -1}
}

func classify(cluster string) Kind {
	var r rune
	if cluster[0] < utf8.RuneSelf {
		r = rune(cluster[0])
	} else {
		r, _ = utf8.DecodeRuneInString(cluster)
	}
	switch {
	case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r):
		return Word
	case unicode.IsSpace(r):
		return Space
	}
	return Punct
}

func isJoiner(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	return size == len(cluster) && strings.ContainsRune(joiners, r)
}

// cluster returns the grapheme cluster at the current position.
func (t *Tokenizer) cluster() (string, Kind) {
	if t.hasNext {
		t.hasNext = false
		t.state = t.nextState
		return t.next, t.nextKind
	}
	c, _, _, state := uniseg.FirstGraphemeClusterInString(t.s[t.pos:], t.state)
	t.state = state
	return c, classify(c)
}

// peek returns the grapheme cluster following the current position without
// consuming it.
func (t *Tokenizer) peek() (string, Kind, bool) {
	if t.hasNext {
		return t.next, t.nextKind, true
	}
	if t.pos >= len(t.s) {
		return "", Punct, false
	}
	c, _, _, state := uniseg.FirstGraphemeClusterInString(t.s[t.pos:], t.state)
	t.next, t.nextKind, t.nextState, t.hasNext = c, classify(c), state, true
	return c, t.nextKind, true
}

// Next returns the next segment and true, or false when the input has been
// consumed.
func (t *Tokenizer) Next() (Segment, bool) {
	if t.pos >= len(t.s) {
		return Segment{}, false
	}
	start := t.pos
	c, kind := t.cluster()
	t.pos += len(c)
	for t.pos < len(t.s) {
		c, k, _ := t.peek()
		if k != kind {
			// A single joiner between two word clusters is part of the
			// word. This needs one cluster of lookahead past the joiner.
			if kind != Word || !isJoiner(c) {
				break
			}
			save := *t
			t.cluster()
			t.pos += len(c)
			if _, k2, ok := t.peek(); !ok || k2 != Word {
				*t = save
				break
			}
			continue
		}
		t.cluster()
		t.pos += len(c)
	}
	return Segment{Kind: kind, Text: t.s[start:t.pos], Start: start, End: t.pos}, true
}

// Split returns all segments of s.
func Split(s string) []Segment {
	var segs []Segment
	t := New(s)
	for {
		seg, ok := t.Next()
		if !ok {
			break
		}
		segs = append(segs, seg)
	}
	return segs
}

// Join concatenates the text of segs.
func Join(segs []Segment) string {
	n := 0
	for _, s := range segs {
		n += len(s.Text)
	}
	var b strings.Builder
	b.Grow(n)
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Words returns the text of each word segment of s.
func Words(s string) []string {
	var words []string
	t := New(s)
	for {
		seg, ok := t.Next()
		if !ok {
			break
		}
		if seg.Kind == Word {
			words = append(words, seg.Text)
		}
	}
	return words
}

// HasNewline reports whether a space segment contains a line break.
func (s Segment) HasNewline() bool {
	return s.Kind == Space && strings.ContainsAny(s.Text, "\n\r\v\f\u0085\u2028\u2029")
}

// SplitParts splits word at each hyphen. The hyphens are returned as
// separate parts so that joining the parts reproduces word.
func SplitParts(word string) []string {
	if !strings.ContainsAny(word, Hyphens) {
		return []string{word}
	}
	var parts []string
	start := 0
	for i, r := range word {
		if strings.ContainsRune(Hyphens, r) {
			parts = append(parts, word[start:i], word[i:i+utf8.RuneLen(r)])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(parts, word[start:])
}
