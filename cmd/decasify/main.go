// Command decasify converts text to lower, upper, title or sentence case
// using locale and style guide aware rules.
//
// Usage:
//
//	decasify [options] [input...]
//	decasify serve [-f config.yaml]
//
// When no input arguments are given each line of stdin is converted.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/kivattt/getopt"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/charlievieth/decasify"
	"github.com/charlievieth/decasify/internal/logger"
	"github.com/charlievieth/decasify/internal/server"
)

const usageText = `Usage: decasify [options] [input...]
       decasify serve [-f config.yaml]

Convert input to the given case. Positional arguments are joined with spaces,
without arguments each line of stdin is converted.

Options:
`

func usage(w io.Writer, fs *getopt.FlagSet) {
	fmt.Fprint(w, usageText)
	out := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(out)
}

type options struct {
	locale    decasify.Locale
	mode      decasify.CaseMode
	style     decasify.StyleGuide
	overrides []string
}

func (o *options) convert(s string) string {
	return decasify.Case(s, o.mode, o.locale, o.style, decasify.WithOverrides(o.overrides...))
}

// resolveOptions merges the flags with conf. Flags take precedence.
func resolveOptions(conf *Config, locale, mode, style, overrides string) (*options, error) {
	pick := func(flagValue, confValue string) string {
		if flagValue != "" {
			return flagValue
		}
		return confValue
	}
	var o options
	var err error
	if o.locale, err = decasify.ParseLocale(pick(locale, conf.Locale)); err != nil {
		return nil, err
	}
	if o.mode, err = decasify.ParseCase(pick(mode, conf.Case)); err != nil {
		return nil, err
	}
	if o.style, err = decasify.ParseStyleGuide(pick(style, conf.Style)); err != nil {
		return nil, err
	}
	o.overrides = conf.Overrides
	if overrides != "" {
		o.overrides = nil
		for _, w := range strings.Split(overrides, ",") {
			if w = strings.TrimSpace(w); w != "" {
				o.overrides = append(o.overrides, w)
			}
		}
	}
	return &o, nil
}

// progressReader reports reads of stdin on stderr when stdin is a regular
// file and stderr is a terminal.
func progressReader(stdin io.Reader, stderr io.Writer) io.Reader {
	f, ok := stdin.(*os.File)
	if !ok {
		return stdin
	}
	errf, ok := stderr.(*os.File)
	if !ok || !term.IsTerminal(int(errf.Fd())) {
		return stdin
	}
	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return stdin
	}
	bar := progressbar.NewOptions64(fi.Size(),
		progressbar.OptionSetWriter(errf),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionClearOnFinish(),
	)
	return io.TeeReader(f, bar)
}

func convertLines(o *options, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	w := bufio.NewWriter(stdout)
	scan := bufio.NewScanner(stdin)
	scan.Buffer(make([]byte, 64*1024), 16*1024*1024)
	n := 0
	for scan.Scan() {
		n++
		line := scan.Text()
		if !utf8.ValidString(line) {
			w.Flush()
			return fmt.Errorf("line %d: invalid UTF-8", n)
		}
		w.WriteString(o.convert(line))
		w.WriteByte('\n')
	}
	if err := scan.Err(); err != nil {
		w.Flush()
		return err
	}
	log.Debug("converted input", zap.Int("lines", n))
	return w.Flush()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "serve" {
		return serve(args[1:], stderr)
	}

	fs := getopt.NewFlagSet("decasify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs.Output(), fs) }

	locale := fs.String("locale", "", "locale of the input, e.g. en, tr or es (default root)")
	mode := fs.String("case", "", "target case: lower, upper, title or sentence (default title)")
	style := fs.String("style", "", "title case style guide, e.g. ap, cmos or gruber (default locale dependent)")
	overrides := fs.String("overrides", "", "comma separated `words` whose spelling is kept, e.g. iOS,NASA")
	configFile := fs.String("config", "", "Lua config `file` (default $XDG_CONFIG_HOME/decasify/config.lua)")
	version := fs.Bool("version", false, "print version and exit")
	help := fs.Bool("help", false, "print help and exit")
	fs.Aliases(
		"l", "locale",
		"c", "case",
		"s", "style",
		"o", "overrides",
		"V", "version",
		"h", "help",
	)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stdout, fs)
		return 0
	}
	if *version {
		fmt.Fprintln(stdout, "decasify", decasify.Version)
		return 0
	}

	conf, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(stderr, "decasify:", err)
		return 1
	}
	log, closeLog, err := logger.New(conf.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "decasify:", err)
		return 1
	}
	defer closeLog()

	opts, err := resolveOptions(conf, *locale, *mode, *style, *overrides)
	if err != nil {
		fmt.Fprintln(stderr, "decasify:", err)
		return 2
	}
	log.Debug("options",
		zap.Stringer("locale", opts.locale),
		zap.Stringer("case", opts.mode),
		zap.Stringer("style", opts.style),
		zap.Strings("overrides", opts.overrides))

	if fs.NArg() > 0 {
		input := strings.Join(fs.Args(), " ")
		if !utf8.ValidString(input) {
			fmt.Fprintln(stderr, "decasify: input is not valid UTF-8")
			return 2
		}
		fmt.Fprintln(stdout, opts.convert(input))
		return 0
	}
	if err := convertLines(opts, progressReader(stdin, stderr), stdout, log); err != nil {
		log.Error("converting stdin", zap.Error(err))
		return 1
	}
	return 0
}

func serve(args []string, stderr io.Writer) int {
	fs := getopt.NewFlagSet("decasify serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("file", "", "YAML configuration `file`")
	fs.Alias("f", "file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "decasify serve: unexpected arguments:", fs.Args())
		return 2
	}

	conf, err := server.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(stderr, "decasify serve:", err)
		return 1
	}
	log, closeLog, err := logger.New(conf.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "decasify serve:", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := server.InitTracing(ctx, conf.Tracing)
	if err != nil {
		log.Error("initializing tracing", zap.Error(err))
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn("shutting down tracing", zap.Error(err))
		}
	}()

	if err := server.New(*conf, log).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", zap.Error(err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
