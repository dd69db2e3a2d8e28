package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode"

	"github.com/charlievieth/decasify/internal/segment"
	"github.com/charlievieth/decasify/internal/tables/assigned"
)

func init() {
	if len(assignedRunes) == 0 {
		panic("no assigned runes for Unicode version: " + unicode.Version)
	}
}

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// All assigned runes for the current Unicode version
var assignedRunes = assigned.AssignedRunes(unicode.Version)

// Runes with special case mappings: Turkish I forms, runes that expand when
// case mapped, and final sigma.
var specialRunes = []rune{
	'I', 'i', '\u0130', '\u0131', '\u0307', '\u00df', '\u1e9e', '\u0149',
	'\ufb01', '\u01c5', '\u01c6', '\u03a3', '\u03c2', '\u212a', '\u0345',
	'\u0390', '\u00d6', '\u011f', '\u015e', '\u00f1',
}

var smallWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "for", "in", "of", "on",
	"or", "the", "to", "vs", "with", "ve", "ile", "mı", "de", "la", "y",
}

var punctuation = []string{
	":", ".", "?", "!", ";", ",", "'", "\u2019", "-", "&", "/", "_", "\"", "(",
	")", "\u2014", "\u2026", ": ", ". ", "\n", "\r\n", "\t", "  ", " ", "\u00a0",
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func randRune(rr *rand.Rand) rune {
	switch n := rr.Intn(100); {
	case n < 20:
		return specialRunes[rr.Intn(len(specialRunes))]
	case n < 40:
		return assignedRunes[rr.Intn(len(assignedRunes))]
	case n < 70:
		return 'a' + rr.Int31n(26)
	default:
		return 'A' + rr.Int31n(26)
	}
}

// randText returns a random text of up to n tokens mixing words, small words,
// whitespace and punctuation.
func randText(rr *rand.Rand, b *strings.Builder, n int) string {
	b.Reset()
	for i := rr.Intn(n + 1); i > 0; i-- {
		switch rr.Intn(8) {
		case 0, 1:
			b.WriteString(smallWords[rr.Intn(len(smallWords))])
		case 2, 3, 4:
			for j := rr.Intn(8) + 1; j > 0; j-- {
				b.WriteRune(randRune(rr))
			}
		case 5:
			b.WriteString(punctuation[rr.Intn(len(punctuation))])
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

type fuzzTest struct {
	testing.TB
	rr  *rand.Rand
	buf strings.Builder
}

func (t *fuzzTest) Text() string { return randText(t.rr, &t.buf, 24) }

func runRandomTest(t *testing.T, fn func(t *fuzzTest)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	// Count is the total number of test iterations to run.
	count := 2_000
	if testing.Short() {
		count /= 4
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 1_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			tt := &fuzzTest{
				TB: &testWrapper{T: t},
				rr: rand.New(rand.NewSource(seed)),
			}
			for i := 0; i < count; i++ {
				fn(tt)
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

// IdempotentFuzz tests that fn(fn(s)) == fn(s) for random texts.
func IdempotentFuzz(t *testing.T, fn func(s string) string) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.Text()
		s1 := fn(s)
		if s2 := fn(s1); s2 != s1 {
			t.Errorf("f(f(%q)) = %q; want: %q", s, s2, s1)
		}
	})
}

// SegmentFuzz tests that fn only changes the case of words: the output has
// the same number of segments and identical whitespace and punctuation
// segments at the same positions.
func SegmentFuzz(t *testing.T, fn func(s string) string) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.Text()
		out := fn(s)
		in := segment.Split(s)
		got := segment.Split(out)
		if len(in) != len(got) {
			t.Errorf("f(%q) = %q: segment count %d; want: %d", s, out, len(got), len(in))
			return
		}
		for i := range in {
			if in[i].Kind != got[i].Kind {
				t.Errorf("f(%q) = %q: segment %d: kind %s; want: %s",
					s, out, i, got[i].Kind, in[i].Kind)
				return
			}
			if in[i].Kind != segment.Word && in[i].Text != got[i].Text {
				t.Errorf("f(%q) = %q: segment %d: %q; want: %q",
					s, out, i, got[i].Text, in[i].Text)
				return
			}
		}
	})
}

var _ testing.TB = (*testWrapper)(nil)

// A testWrapper wraps a testing.T and will immediately fail the test
// if more that N errors occur.
type testWrapper struct {
	*testing.T
	fails int32
}

func (c *testWrapper) check() {
	c.T.Helper()
	if n := atomic.AddInt32(&c.fails, 1); n >= 10 {
		// We run tests in parallel so only call Fatal on the
		// test that crossed the threshold.
		if n == 10 {
			c.T.Fatal("Too many errors:", n)
		} else {
			c.T.FailNow() // Abort subsequent tests
		}
		panic(fmt.Sprintf("aborting test: too many errors: %d", n)) // unreachable
	}
}

func (c *testWrapper) Error(args ...any) {
	c.T.Helper()
	c.T.Error(args...)
	c.check()
}

func (c *testWrapper) Errorf(format string, args ...any) {
	c.T.Helper()
	c.T.Errorf(format, args...)
	c.check()
}

func (c *testWrapper) Fatal(args ...any) {
	c.T.Helper()
	c.T.Fatal(args...)
	c.check()
}

func (c *testWrapper) Fatalf(format string, args ...any) {
	c.T.Helper()
	c.T.Fatalf(format, args...)
	c.check()
}
