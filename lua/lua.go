// Package lua exposes decasify as a gopher-lua module.
//
//	L := lua.NewState()
//	decasifylua.Preload(L)
//	L.DoString(`print(require("decasify").titlecase("ilk ve son", "tr"))`)
package lua

import (
	"unicode/utf8"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
	luar "layeh.com/gopher-luar"

	"github.com/charlievieth/decasify"
)

// ModuleName is the name passed to require.
const ModuleName = "decasify"

// Options are the conversion options accepted as a trailing Lua table:
//
//	decasify.titlecase("the nasa ios app", "en", "cmos", {overrides = {"NASA", "iOS"}})
type Options struct {
	Overrides []string
}

var exports = map[string]lua.LGFunction{
	"case":         luaCase,
	"titlecase":    luaTitlecase,
	"lowercase":    luaLowercase,
	"uppercase":    luaUppercase,
	"sentencecase": luaSentencecase,
}

// Preload registers the module with L so it can be loaded with require.
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

// Loader is the lua.LGFunction that creates the module table.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	mod.RawSetString("version", lua.LString(decasify.Version))
	mod.RawSetString("locales", luar.New(L, names(decasify.Locales)))
	mod.RawSetString("styleguides", luar.New(L, names(decasify.StyleGuides)))
	mod.RawSetString("cases", luar.New(L, names(decasify.CaseModes)))
	L.Push(mod)
	return 1
}

func names[T interface{ String() string }](values []T) []string {
	a := make([]string, len(values))
	for i, v := range values {
		a[i] = v.String()
	}
	return a
}

// checkInput returns argument n as a string. Values other than strings and
// numbers convert to the empty string.
func checkInput(L *lua.LState, n int) string {
	var s string
	switch v := L.Get(n).(type) {
	case lua.LString:
		s = string(v)
	case lua.LNumber:
		s = v.String()
	}
	if !utf8.ValidString(s) {
		L.ArgError(n, "invalid UTF-8")
	}
	return s
}

func checkLocale(L *lua.LState, n int) decasify.Locale {
	l, err := decasify.ParseLocale(L.OptString(n, ""))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return l
}

func checkStyle(L *lua.LState, n int) decasify.StyleGuide {
	s, err := decasify.ParseStyleGuide(L.OptString(n, ""))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return s
}

func checkCase(L *lua.LState, n int) decasify.CaseMode {
	m, err := decasify.ParseCase(L.OptString(n, ""))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return m
}

func checkOptions(L *lua.LState, n int) []decasify.Option {
	tbl := L.OptTable(n, nil)
	if tbl == nil {
		return nil
	}
	var opts Options
	if err := gluamapper.Map(tbl, &opts); err != nil {
		L.ArgError(n, err.Error())
	}
	return []decasify.Option{decasify.WithOverrides(opts.Overrides...)}
}

// case(input, [case], [locale], [style], [options])
func luaCase(L *lua.LState) int {
	s := checkInput(L, 1)
	m := checkCase(L, 2)
	l := checkLocale(L, 3)
	g := checkStyle(L, 4)
	opts := checkOptions(L, 5)
	L.Push(lua.LString(decasify.Case(s, m, l, g, opts...)))
	return 1
}

// titlecase(input, [locale], [style], [options])
func luaTitlecase(L *lua.LState) int {
	s := checkInput(L, 1)
	l := checkLocale(L, 2)
	g := checkStyle(L, 3)
	opts := checkOptions(L, 4)
	L.Push(lua.LString(decasify.Titlecase(s, l, g, opts...)))
	return 1
}

func luaLowercase(L *lua.LState) int {
	s := checkInput(L, 1)
	L.Push(lua.LString(decasify.Lowercase(s, checkLocale(L, 2))))
	return 1
}

func luaUppercase(L *lua.LState) int {
	s := checkInput(L, 1)
	L.Push(lua.LString(decasify.Uppercase(s, checkLocale(L, 2))))
	return 1
}

// sentencecase(input, [locale], [options])
func luaSentencecase(L *lua.LState) int {
	s := checkInput(L, 1)
	l := checkLocale(L, 2)
	opts := checkOptions(L, 3)
	L.Push(lua.LString(decasify.Sentencecase(s, l, opts...)))
	return 1
}
