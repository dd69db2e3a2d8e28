package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/charlievieth/decasify"
	decasifylua "github.com/charlievieth/decasify/lua"
	"github.com/charlievieth/decasify/internal/logger"
)

const luaTagName = "lua"

// configGlobal is the name of the table config.lua assigns settings to:
//
//	config.locale = "tr"
//	config.style = "gruber"
//	config.overrides = {"iOS", "NASA"}
//	config.log.level = "debug"
const configGlobal = "config"

// Config holds the defaults read from config.lua. Command line flags take
// precedence.
type Config struct {
	Locale    string        `lua:"locale"`
	Case      string        `lua:"case"`
	Style     string        `lua:"style"`
	Overrides []string      `lua:"overrides"`
	Log       logger.Config `lua:"log"`
}

func NewConfigDefaultValues() Config {
	return Config{
		Case: decasify.Title.String(),
		Log: logger.Config{
			Level:       "warn",
			Development: true,
			MaxSizeMB:   logger.DefaultConfig.MaxSizeMB,
			MaxBackups:  logger.DefaultConfig.MaxBackups,
			MaxAgeDays:  logger.DefaultConfig.MaxAgeDays,
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/decasify/config.lua or its
// platform equivalent.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "decasify", "config.lua"), nil
}

// luaTable converts struct v to a Lua table keyed by the lua field tags.
func luaTable(L *lua.LState, v reflect.Value) *lua.LTable {
	tbl := L.NewTable()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get(luaTagName)
		if name == "" {
			continue
		}
		f := v.Field(i)
		switch f.Kind() {
		case reflect.String:
			tbl.RawSetString(name, lua.LString(f.String()))
		case reflect.Bool:
			tbl.RawSetString(name, lua.LBool(f.Bool()))
		case reflect.Int:
			tbl.RawSetString(name, lua.LNumber(f.Int()))
		case reflect.Slice:
			list := L.NewTable()
			for j := 0; j < f.Len(); j++ {
				list.Append(lua.LString(f.Index(j).String()))
			}
			tbl.RawSetString(name, list)
		case reflect.Struct:
			tbl.RawSetString(name, luaTable(L, f))
		}
	}
	return tbl
}

// ReadConfig runs the Lua file path and returns the resulting configuration.
// The script may require("decasify") to use the case conversion functions.
func ReadConfig(path string) (*Config, error) {
	conf := NewConfigDefaultValues()

	L := lua.NewState()
	defer L.Close()
	decasifylua.Preload(L)

	initial := luaTable(L, reflect.ValueOf(conf))
	if dir, err := os.UserConfigDir(); err == nil {
		initial.RawSetString("config_path", lua.LString(filepath.Join(dir, "decasify")))
	}
	initial.RawSetString("version", lua.LString(decasify.Version))
	initial.RawSetString("runtime_os", lua.LString(runtime.GOOS))
	L.SetGlobal(configGlobal, initial)

	if err := L.DoFile(path); err != nil {
		return nil, err
	}

	// Go field names would shadow the snake_case names set above.
	var nameErr error
	mapper := gluamapper.NewMapper(gluamapper.Option{NameFunc: func(name string) string {
		newName := gluamapper.ToUpperCamelCase(name)
		if newName == name && nameErr == nil {
			nameErr = fmt.Errorf("%s: invalid config variable name: %s", path, name)
		}
		return newName
	}})

	global := L.GetGlobal(configGlobal)
	tbl, ok := global.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s: %q must be a table not a %s", path, configGlobal, global.Type())
	}
	if err := mapper.Map(tbl, &conf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if nameErr != nil {
		return nil, nameErr
	}
	return &conf, nil
}

// LoadConfig reads the config file at path. When path is empty the default
// config file is read if it exists.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return ReadConfig(path)
	}
	path, err := DefaultConfigPath()
	if err != nil {
		conf := NewConfigDefaultValues()
		return &conf, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			conf := NewConfigDefaultValues()
			return &conf, nil
		}
		return nil, err
	}
	return ReadConfig(path)
}
