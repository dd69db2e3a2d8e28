package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parser reads the semicolon separated fields of a UCD data file.
type Parser struct {
	sc      *bufio.Scanner
	line    int
	fields  []string
	comment string
	err     error
}

// NewParser returns a Parser reading from r.
func NewParser(r io.Reader) *Parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Parser{sc: sc}
}

// Next advances to the next data line, skipping blank lines and comments.
func (p *Parser) Next() bool {
	for p.err == nil && p.sc.Scan() {
		p.line++
		line := p.sc.Text()
		p.comment = ""
		if i := strings.IndexByte(line, '#'); i >= 0 {
			p.comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.fields = strings.Split(line, ";")
		for i, f := range p.fields {
			p.fields[i] = strings.TrimSpace(f)
		}
		// Lines end with a ";" so drop the trailing empty field.
		if n := len(p.fields); n > 1 && p.fields[n-1] == "" {
			p.fields = p.fields[:n-1]
		}
		return true
	}
	if p.err == nil {
		p.err = p.sc.Err()
	}
	return false
}

// Err returns the first error encountered.
func (p *Parser) Err() error { return p.err }

// Line returns the current line number.
func (p *Parser) Line() int { return p.line }

// Comment returns the comment of the current line without the "#".
func (p *Parser) Comment() string { return p.comment }

// NumFields returns the number of fields of the current line.
func (p *Parser) NumFields() int { return len(p.fields) }

// String returns field i or "" if the line has fewer fields.
func (p *Parser) String(i int) string {
	if i < len(p.fields) {
		return p.fields[i]
	}
	return ""
}

func (p *Parser) setErr(err error) {
	if p.err == nil {
		p.err = fmt.Errorf("ucd: line %d: %w", p.line, err)
	}
}

// Rune returns field i parsed as a single hexadecimal code point.
func (p *Parser) Rune(i int) rune {
	r, err := parseRune(p.String(i))
	if err != nil {
		p.setErr(err)
	}
	return r
}

// Runes returns field i parsed as a space separated list of hexadecimal code
// points.
func (p *Parser) Runes(i int) []rune {
	var rs []rune
	for _, f := range strings.Fields(p.String(i)) {
		r, err := parseRune(f)
		if err != nil {
			p.setErr(err)
			return nil
		}
		rs = append(rs, r)
	}
	return rs
}

func parseRune(s string) (rune, error) {
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", s, err)
	}
	if n > 0x10FFFF {
		return 0, fmt.Errorf("invalid code point %q: out of range", s)
	}
	return rune(n), nil
}

// Parse calls fn for each data line read from r.
func Parse(r io.Reader, fn func(p *Parser)) error {
	p := NewParser(r)
	for p.Next() {
		fn(p)
	}
	return p.Err()
}
