// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the language specific case mapping tables used by
// decasify from the Unicode SpecialCasing.txt file. The tables must be
// regenerated if this code is changed (`go generate`).
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/charlievieth/decasify/internal/gen/util"
	"github.com/charlievieth/decasify/internal/ucd"
)

func init() {
	initLogs()
}

func initLogs() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout) // use stdout instead of stderr
}

const header = `// Code generated by running "go generate" in github.com/charlievieth/decasify. DO NOT EDIT.`

// Variable name prefixes of the generated tables by language.
var tableNames = map[string]string{
	"tr": "_Turkic",
	"az": "_Turkic",
}

func writeTables(w *bytes.Buffer, version, source string, langs []string, t *tables) {
	w.WriteString(header + "\n\npackage tables\n\n")
	w.WriteString("// UnicodeVersion is the Unicode version from which the tables in this package\n")
	w.WriteString("// are derived.\n")
	fmt.Fprintf(w, "const UnicodeVersion = %q\n\n", version)
	fmt.Fprintf(w, "// Source: %s\n", source)
	fmt.Fprintf(w, "// Languages: %s\n", strings.Join(langs, ", "))

	prefix := tableNames[langs[0]]
	for c, name := range [maxCase]string{lowerCase: "Lower", upperCase: "Upper", titleCase: "Title"} {
		fmt.Fprintf(w, "\nvar %s%s = []Mapping{\n", prefix, name)
		for _, m := range t[c] {
			fmt.Fprintf(w, "\t{From: %s, To: %s}, // %s\n", quote(m.From), quote(m.To), m.Comment)
		}
		w.WriteString("}\n")
	}
}

func asciiByte(c byte) string {
	switch {
	case c == '\'' || c == '\\':
		return `'\` + string(c) + `'`
	case ' ' <= c && c <= '~':
		return "'" + string(c) + "'"
	}
	return fmt.Sprint(c)
}

// writeASCII generates the ASCII case mapping tables of the casemap package.
func writeASCII(w *bytes.Buffer) {
	w.WriteString(header + "\n\npackage casemap\n")
	for _, t := range []struct {
		name string
		fn   func(rune) rune
	}{
		{"_lower", unicode.ToLower},
		{"_upper", unicode.ToUpper},
	} {
		fmt.Fprintf(w, "\nvar %s = [128]byte{\n", t.name)
		for i := 0; i < 128; i += 16 {
			w.WriteByte('\t')
			for j := i; j < i+16; j++ {
				if j > i {
					w.WriteByte(' ')
				}
				w.WriteString(asciiByte(byte(t.fn(rune(j)))) + ",")
			}
			w.WriteByte('\n')
		}
		w.WriteString("}\n")
	}
}

func gofmt(name string, b []byte) []byte {
	src, err := format.Source(b)
	if err != nil {
		writeTemp(name, b)
		log.Panicf("%s: %v", name, err)
	}
	return src
}

func runCommand(dir string, args ...string) {
	cmd := exec.Command("go", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Printf("Error:   %v", err)
		log.Printf("Command: %s", strings.Join(cmd.Args, " "))
		log.Printf("Output:  %s", bytes.TrimSpace(out))
		log.Panicf("Failed to build generated file: %v\n", err)
	}
}

// testBuild builds and tests the project with the generated files replaced
// using an overlay.
func testBuild(root string, files map[string][]byte, skipTests bool) {
	dir, err := os.MkdirTemp("", "decasify.*")
	if err != nil {
		log.Panic(err)
	}

	type overlayJSON struct {
		Replace map[string]string
	}
	overlay := overlayJSON{Replace: make(map[string]string)}
	for _, name := range maps.Keys(files) {
		tmp := filepath.Join(dir, filepath.Base(name))
		if err := os.WriteFile(tmp, files[name], 0644); err != nil {
			log.Panic(err)
		}
		overlay.Replace[name] = tmp
	}
	data, err := json.Marshal(overlay)
	if err != nil {
		log.Panic(err)
	}
	overlayFile := filepath.Join(dir, "overlay.json")
	if err := os.WriteFile(overlayFile, data, 0644); err != nil {
		log.Panic(err)
	}

	runCommand(root, "build", "-overlay="+overlayFile, "./...")
	if !skipTests {
		runCommand(root, "test", "-overlay="+overlayFile, "./internal/...", ".")
	}

	os.RemoveAll(dir) // Only remove temp dir if successful
}

func dataEqual(filename string, data []byte) bool {
	got, err := os.ReadFile(filename)
	return err == nil && bytes.Equal(got, data)
}

func writeFile(name string, data []byte) {
	if dataEqual(name, data) {
		return
	}

	f, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".tmp.*")
	if err != nil {
		log.Fatal(err)
	}
	tmp := f.Name()
	exit := func(err error) {
		os.Remove(tmp)
		log.Panic(err)
	}
	if err := f.Close(); err != nil {
		exit(err)
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		exit(err)
	}
	if err := os.Rename(tmp, name); err != nil {
		exit(err)
	}
}

func writeTemp(name string, b []byte) {
	dir, err := os.MkdirTemp("", "decasify-gen-*")
	if err != nil {
		log.Panic(err)
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, b, 0644); err != nil {
		log.Panic(err)
	}
	log.Println("TMPFILE:", path)
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "decasify-ucd")
	}
	return filepath.Join(dir, "decasify", "ucd")
}

func loadSpecialCasing(ctx context.Context, url, version, cacheDir string) []ucd.SpecialCasing {
	f, err := ucd.Open(ctx, url, version, "SpecialCasing.txt", cacheDir)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	entries, err := ucd.ParseSpecialCasing(f)
	if err != nil {
		log.Fatalf("%s: %v", f.Name(), err)
	}
	return entries
}

func realMain() int {
	initLogs() // Other packages configure logs on init so do it again here

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [OPTION]...\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	version := flag.String("unicode", unicode.Version, "Unicode version of the generated tables")
	url := flag.String("url", ucd.DefaultURL, "root URL of the Unicode data files")
	cacheDir := flag.String("cache", defaultCacheDir(), "download Unicode data files to this directory")
	langFlag := flag.String("langs", "az,tr", "comma separated languages of the Turkic tables")
	skipTests := flag.Bool("skip-tests", false, "skip running tests")
	skipBuild := flag.Bool("skip-build", false, "skip building the decasify package (testing only)")
	dryRun := flag.Bool("dry-run", false,
		"report if generate would change the generated files and exit non-zero")
	flag.Parse()

	log.SetPrefix("(" + *version + ") ")

	langs := strings.Split(*langFlag, ",")
	slices.Sort(langs)
	langs = slices.Compact(langs)
	for _, lang := range langs {
		if _, ok := tableNames[lang]; !ok {
			log.Fatalf("unsupported language %q: supported languages: %q",
				lang, maps.Keys(tableNames))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, err := util.ProjectRoot()
	if err != nil {
		log.Fatal(err)
	}
	tablesDir, err := util.TablesDir()
	if err != nil {
		log.Fatal(err)
	}

	entries := loadSpecialCasing(ctx, *url, *version, *cacheDir)
	t := buildTables(entries, langs)

	var w bytes.Buffer
	writeTables(&w, *version, ucd.FileURL(*url, *version, "SpecialCasing.txt"), langs, t)
	tablesFile := filepath.Join(tablesDir, "tables.go")
	files := map[string][]byte{
		tablesFile: gofmt(tablesFile, w.Bytes()),
	}
	w.Reset()
	writeASCII(&w)
	asciiFile := filepath.Join(root, "internal", "casemap", "ascii.go")
	files[asciiFile] = gofmt(asciiFile, w.Bytes())

	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	warn := "WARN:"
	if isTerm {
		warn = "\x1b[33;mWARN:\x1b[0;m"
	}

	var changed []string
	for name, data := range files {
		if !dataEqual(name, data) {
			rel, _ := filepath.Rel(root, name)
			changed = append(changed, rel)
		}
	}
	slices.Sort(changed)
	if len(changed) == 0 {
		log.Println("gen: exiting - no changes")
		return 0
	}
	if *dryRun {
		log.Printf("%s gen: would change %q "+
			"(remove -dry-run flag to update the generated files)\n", warn, changed)
		return 1
	}

	if *skipBuild {
		log.Println("gen: skipping go build")
	} else {
		if *version != unicode.Version {
			log.Printf("%s gen: generated Unicode version %q does not match the "+
				"Go Unicode version %q: tests will fail", warn, *version, unicode.Version)
		}
		testBuild(root, files, *skipTests)
	}

	for name, data := range files {
		writeFile(name, data)
	}
	log.Printf("Successfully generated tables: %q", changed)
	return 0
}

func main() {
	if code := realMain(); code != 0 {
		os.Exit(code)
	}
}
