package token

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel wrapped by every ParseError.
var ErrParse = errors.New("parse error")

// ParseError is a fatal, positioned scan or build failure.  No
// partial result accompanies it.
type ParseError struct {
	Src  string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	src := e.Src
	if src == "" {
		src = "<input>"
	}
	return fmt.Sprintf("%s:%d: %s", src, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func NewParseError(src string, line int, format string, args ...any) *ParseError {
	return &ParseError{Src: src, Line: line, Msg: fmt.Sprintf(format, args...)}
}
