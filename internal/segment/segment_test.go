package segment

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func kinds(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		switch s.Kind {
		case Word:
			b.WriteByte('w')
		case Space:
			b.WriteByte('s')
		case Punct:
			b.WriteByte('p')
		}
	}
	return b.String()
}

func texts(segs []Segment) []string {
	a := make([]string, len(segs))
	for i, s := range segs {
		a[i] = s.Text
	}
	return a
}

var splitTests = []struct {
	in    string
	texts []string
	kinds string
}{
	{"", nil, ""},
	{"a", []string{"a"}, "w"},
	{"  foo  bar  ", []string{"  ", "foo", "  ", "bar", "  "}, "swsws"},
	{"title with a twist: a colon", []string{
		"title", " ", "with", " ", "a", " ", "twist", ":", " ", "a", " ", "colon",
	}, "wswswswpswsw"},
	{"Q&A with Steve Jobs: 'That's what'", []string{
		"Q&A", " ", "with", " ", "Steve", " ", "Jobs", ":", " ", "'", "That's", " ", "what", "'",
	}, "wswswswpspwswp"},
	{"don't o’reilly well-known", []string{"don't", " ", "o’reilly", " ", "well-known"}, "wswsw"},
	{"example.com and/or snake_case", []string{"example.com", " ", "and/or", " ", "snake_case"}, "wswsw"},
	{"end. -start- 'quoted'", []string{"end", ".", " ", "-", "start", "-", " ", "'", "quoted", "'"}, "wpspwpspwp"},
	{"a--b", []string{"a", "--", "b"}, "wpw"},
	{"3.14 v2", []string{"3.14", " ", "v2"}, "wsw"},
	{"été", []string{"été"}, "w"},
	{"a \u0301b", []string{"a", " \u0301", "b"}, "wsw"},
	{"İLKİ ILIK ÖĞLEN", []string{"İLKİ", " ", "ILIK", " ", "ÖĞLEN"}, "wswsw"},
	{"free\n  space", []string{"free", "\n  ", "space"}, "wsw"},
	{"日本語 テキスト", []string{"日本語", " ", "テキスト"}, "wsw"},
	{"👍🏽 ok", []string{"👍🏽", " ", "ok"}, "psw"},
	{"x'", []string{"x", "'"}, "wp"},
	{"'x", []string{"'", "x"}, "pw"},
}

func TestSplit(t *testing.T) {
	for _, test := range splitTests {
		segs := Split(test.in)
		if got := texts(segs); !reflect.DeepEqual(got, test.texts) && len(got)+len(test.texts) > 0 {
			t.Errorf("Split(%q) = %q; want: %q", test.in, got, test.texts)
			continue
		}
		if got := kinds(segs); got != test.kinds {
			t.Errorf("Split(%q) kinds = %q; want: %q", test.in, got, test.kinds)
		}
		if got := Join(segs); got != test.in {
			t.Errorf("Join(Split(%q)) = %q", test.in, got)
		}
		end := 0
		for _, s := range segs {
			if s.Start != end || test.in[s.Start:s.End] != s.Text {
				t.Errorf("Split(%q): invalid offsets for segment %+v", test.in, s)
			}
			end = s.End
		}
	}
}

func TestTokenizerReset(t *testing.T) {
	tok := New("a b")
	for {
		if _, ok := tok.Next(); !ok {
			break
		}
	}
	tok.Reset("c")
	seg, ok := tok.Next()
	if !ok || seg.Text != "c" {
		t.Fatalf("Next() after Reset = %+v, %t; want: %q", seg, ok, "c")
	}
	if _, ok := tok.Next(); ok {
		t.Fatal("Next() = true after end of input")
	}
}

func TestWords(t *testing.T) {
	got := Words("Sen VE ben, ile o!")
	want := []string{"Sen", "VE", "ben", "ile", "o"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %q; want: %q", got, want)
	}
}

func TestSplitParts(t *testing.T) {
	tests := map[string][]string{
		"word":         {"word"},
		"well-known":   {"well", "-", "known"},
		"step-by-step": {"step", "-", "by", "-", "step"},
		"non‑breaking": {"non", "‑", "breaking"},
	}
	for in, want := range tests {
		got := SplitParts(in)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("SplitParts(%q) = %q; want: %q", in, got, want)
		}
		if strings.Join(got, "") != in {
			t.Errorf("SplitParts(%q) is not lossless", in)
		}
	}
}

func TestHasNewline(t *testing.T) {
	for s, want := range map[Segment]bool{
		{Kind: Space, Text: "  "}:           false,
		{Kind: Space, Text: " \n "}:         true,
		{Kind: Space, Text: "\r\n"}:         true,
		{Kind: Space, Text: "\u2028"}:       true,
		{Kind: Punct, Text: "\n"}:           false,
		{Kind: Word, Text: "word"}:          false,
		{Kind: Space, Text: "\u00a0\t"}:     false,
	} {
		if got := s.HasNewline(); got != want {
			t.Errorf("%+v.HasNewline() = %t; want: %t", s, got, want)
		}
	}
}

var randChars = []string{
	"a", "Z", "\u0130", "\u0131", "\u00df", "7", " ", "  ", "\n", "\t", "'", "\u2019",
	"-", "\u2010", "&", ".", "_", "/", ":", ";", "!", "?", "\u0301", "\u0307",
	"\U0001F600", "\U0001F44D\U0001F3FD", "\r\n", "\u00a0", "\u65e5", "\u2014",
	"\"", "(", ")",
}

func TestSplitRandom(t *testing.T) {
	seed := time.Now().UnixNano()
	rr := rand.New(rand.NewSource(seed))
	n := 5000
	if testing.Short() {
		n = 500
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.Reset()
		for j := rr.Intn(32); j >= 0; j-- {
			b.WriteString(randChars[rr.Intn(len(randChars))])
		}
		s := b.String()
		segs := Split(s)
		if got := Join(segs); got != s {
			t.Fatalf("seed %d: Join(Split(%q)) = %q", seed, s, got)
		}
		for i, seg := range segs {
			if seg.Text == "" {
				t.Fatalf("seed %d: Split(%q): empty segment at %d", seed, s, i)
			}
			if i > 0 && segs[i-1].Kind == seg.Kind && seg.Kind != Punct {
				t.Fatalf("seed %d: Split(%q): adjacent %s segments: %q %q",
					seed, s, seg.Kind, segs[i-1].Text, seg.Text)
			}
			if !utf8.ValidString(seg.Text) {
				t.Fatalf("seed %d: Split(%q): invalid UTF-8 segment %q", seed, s, seg.Text)
			}
		}
	}
}

func BenchmarkSplit(b *testing.B) {
	s := strings.Repeat("Q&A with Steve Jobs: 'That's what happens in technology' ", 8)
	b.SetBytes(int64(len(s)))
	t := New("")
	for i := 0; i < b.N; i++ {
		t.Reset(s)
		for {
			if _, ok := t.Next(); !ok {
				break
			}
		}
	}
}
