// Package assigned provides the set of assigned Unicode code points for the
// Unicode version compiled into the running Go toolchain.
package assigned

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Surrogates (Cs) are excluded since they cannot appear in valid UTF-8.
var assigned = sync.OnceValue(func() *unicode.RangeTable {
	return rangetable.Merge(
		unicode.L,
		unicode.M,
		unicode.N,
		unicode.P,
		unicode.S,
		unicode.Z,
		unicode.Cc,
		unicode.Cf,
		unicode.Co,
	)
})

// Assigned returns a RangeTable with all assigned code points for a given
// Unicode version. This includes graphic, format, control, and private-use
// characters. It returns nil if version is not the Unicode version of the
// unicode package.
func Assigned(version string) *unicode.RangeTable {
	if version != unicode.Version {
		return nil
	}
	return assigned()
}

var runes sync.Map

// AssignedRunes returns a slice of runes with all assigned code points for a
// given Unicode version. An empty slice is returned if the data for the given
// version is not available.
func AssignedRunes(version string) []rune {
	if v, ok := runes.Load(version); ok {
		return v.(func() []rune)()
	}
	rt := Assigned(version)
	if rt == nil {
		return nil
	}
	var all []rune
	var once sync.Once
	fn := func() []rune {
		once.Do(func() {
			n := 0
			Visit(rt, func(_ rune) {
				n++
			})
			all = make([]rune, 0, n)
			Visit(rt, func(r rune) {
				all = append(all, r)
			})
		})
		return all
	}
	if v, loaded := runes.LoadOrStore(version, fn); loaded {
		return v.(func() []rune)()
	}
	return fn()
}

// Visit visits all runes in the given RangeTable in order, calling fn for each.
func Visit(rt *unicode.RangeTable, fn func(rune)) {
	for _, r16 := range rt.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			fn(r)
		}
	}
	for _, r32 := range rt.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			fn(r)
		}
	}
}
