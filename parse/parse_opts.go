package parse

import "github.com/snep-format/go-snep/syntax"

type parseOpts struct {
	src string
	syn *syntax.Syntax
}

type ParseOption func(*parseOpts)

// Source sets the source label carried by origins and errors.
func Source(src string) ParseOption {
	return func(o *parseOpts) { o.src = src }
}

// Syntax sets the marker syntax.  The default is syntax.Default().
func Syntax(s *syntax.Syntax) ParseOption {
	return func(o *parseOpts) { o.syn = s }
}
