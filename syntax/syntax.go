// Package syntax defines the comment syntaxes in which snep
// directives may be embedded, and guesses candidate syntaxes for a
// file from its extension or shebang line.
package syntax

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrBadSyntax = errors.New("bad syntax")

// Syntax describes how directives are marked inside a host language.
//
// A line carries a directive when, after optional leading whitespace,
// it begins with Marker.  For block-comment syntaxes, Close matches
// the comment terminator, which is stripped from the directive text
// before interpretation and re-emitted as Suffix when rendering.
type Syntax struct {
	Name   string
	Marker string
	Close  *regexp.Regexp
	Suffix string
}

var registry = []*Syntax{
	{Name: "sh", Marker: "#@"},
	{Name: "c++", Marker: "//@"},
	{Name: "c", Marker: "/*@", Close: regexp.MustCompile(`\*/\s*$`), Suffix: " */"},
	{Name: "hs", Marker: "--@"},
	{Name: "hs-block", Marker: "{-@", Close: regexp.MustCompile(`-}\s*$`), Suffix: " -}"},
}

// Default returns the syntax assumed when none is specified: "sh",
// whose marker is "#@".
func Default() *Syntax {
	return registry[0]
}

func ParseSyntax(v string) (*Syntax, error) {
	for _, s := range registry {
		if s.Name == v {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrBadSyntax, v)
}

// All returns the registered syntaxes in preference order.
func All() []*Syntax {
	res := make([]*Syntax, len(registry))
	copy(res, registry)
	return res
}

func (s *Syntax) String() string {
	return s.Name
}

func (s *Syntax) MarshalText() ([]byte, error) {
	return []byte(s.Name), nil
}

func (s *Syntax) UnmarshalText(d []byte) error {
	ps, err := ParseSyntax(string(d))
	if err != nil {
		return err
	}
	*s = *ps
	return nil
}

// Strip returns the directive text of a line, with the line's newline,
// the marker and any comment terminator removed, and reports whether
// the line carries a directive at all.  The result keeps interior
// whitespace; trailing whitespace is removed.
func (s *Syntax) Strip(line string) (string, bool) {
	rest := strings.TrimSuffix(line, "\n")
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, s.Marker) {
		return "", false
	}
	rest = rest[len(s.Marker):]
	if s.Close != nil {
		if loc := s.Close.FindStringIndex(rest); loc != nil {
			rest = rest[:loc[0]]
		}
	}
	rest = strings.TrimLeft(rest, " \t")
	return strings.TrimRight(rest, " \t\r"), true
}
