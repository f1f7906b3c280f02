package token

import (
	"bufio"
	"io"
	"strings"

	"github.com/snep-format/go-snep/syntax"
)

// Scanner scans source text one line at a time, emitting an Event per
// text line and per directive.  Blank directives emit nothing.
type Scanner struct {
	r    *bufio.Reader
	src  string
	syn  *syntax.Syntax
	line int
	done bool
}

type ScanOption func(*Scanner)

// ScanSource sets the source label used in origins and errors.
func ScanSource(src string) ScanOption {
	return func(s *Scanner) { s.src = src }
}

// ScanSyntax sets the marker syntax.  The default is syntax.Default().
func ScanSyntax(syn *syntax.Syntax) ScanOption {
	return func(s *Scanner) { s.syn = syn }
}

func NewScanner(r io.Reader, opts ...ScanOption) *Scanner {
	s := &Scanner{
		r:   bufio.NewReader(r),
		syn: syntax.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Src returns the scanner's source label.
func (s *Scanner) Src() string {
	return s.src
}

// Line returns the number of the last consumed line, 0 before the
// first line is read.
func (s *Scanner) Line() int {
	return s.line
}

// Next returns the next event.  It returns io.EOF once the input is
// exhausted and a *ParseError on a malformed directive.
func (s *Scanner) Next() (*Event, error) {
	for {
		if s.done {
			return nil, io.EOF
		}
		line, err := s.r.ReadString('\n')
		if err == io.EOF {
			s.done = true
			if line == "" {
				return nil, io.EOF
			}
		} else if err != nil {
			return nil, err
		}
		s.line++
		ev, err := s.scanLine(line)
		if err != nil {
			return nil, err
		}
		if ev != nil {
			return ev, nil
		}
	}
}

func (s *Scanner) scanLine(line string) (*Event, error) {
	rest, ok := s.syn.Strip(line)
	if !ok {
		return &Event{Type: EventLine, Line: s.line, Value: line}, nil
	}
	if rest == "" {
		// blank directive, a separator
		return nil, nil
	}
	if rest[0] == ']' {
		return &Event{Type: EventEnd, Line: s.line, Value: rest[1:]}, nil
	}
	key, n := scanKey(rest)
	if n == 0 {
		return nil, NewParseError(s.src, s.line,
			"invalid directive: %s", strings.TrimRight(line, " \t\r\n"))
	}
	i := skipBlank(rest, n)
	if i == len(rest) {
		return nil, NewParseError(s.src, s.line,
			"invalid directive: %s", strings.TrimRight(line, " \t\r\n"))
	}
	sep := rest[i]
	val := rest[skipBlank(rest, i+1):]
	switch sep {
	case ':':
		return &Event{Type: EventAttr, Line: s.line, Name: key, Value: val}, nil
	case '[':
		if val != "" {
			return nil, NewParseError(s.src, s.line,
				"trailing garbage after '[': %s", strings.TrimRight(line, " \t\r\n"))
		}
		return &Event{Type: EventBegin, Line: s.line, Name: key}, nil
	default:
		return nil, NewParseError(s.src, s.line,
			"invalid directive: %s", strings.TrimRight(line, " \t\r\n"))
	}
}

// scanKey reads the longest prefix of chars valid in a key: anything
// but whitespace, '[' and ':'.
func scanKey(s string) (string, int) {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '[', ':':
			return s[:i], i
		}
		i++
	}
	return s, i
}

func skipBlank(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
