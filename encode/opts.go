package encode

import "github.com/snep-format/go-snep/syntax"

type EncodeOption func(*EncState)

// EncodeSyntax sets the marker syntax used for directive lines.  The
// default is syntax.Default().
func EncodeSyntax(s *syntax.Syntax) EncodeOption {
	return func(es *EncState) { es.syn = s }
}

// EncodeColors enables colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
