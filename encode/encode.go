// Package encode renders snep document trees back to directive text.
//
// Rendering is canonical: parsing the rendered text yields a tree
// structurally equal to the one rendered, and re-rendering that tree
// reproduces the text byte for byte.
package encode

import (
	"io"
	"strings"

	"github.com/snep-format/go-snep/ir"
	"github.com/snep-format/go-snep/syntax"
)

type EncState struct {
	needNL bool
	syn    *syntax.Syntax

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the canonical rendering of node to w.  Text nodes
// are emitted verbatim; attributes and elements become directive
// lines.  A newline is inserted before a directive whenever the
// previously emitted text did not end in one, so directives always
// start a line.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{syn: syntax.Default()}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.TextType:
		return writeText(w, node.Value, es)
	case ir.AttrType:
		return writeDirective(w, es, piece{ir.AttrType, NameColor, node.Name},
			piece{ir.AttrType, SepColor, ": "},
			piece{ir.AttrType, ValueColor, node.Value})
	case ir.ElemType:
		if node.Named {
			err := writeDirective(w, es, piece{ir.ElemType, NameColor, node.Name},
				piece{ir.ElemType, SepColor, "["})
			if err != nil {
				return err
			}
		}
		for _, c := range node.Children {
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		if node.Named {
			return writeDirective(w, es, piece{ir.ElemType, SepColor, "]"},
				piece{ir.ElemType, CommentColor, node.Trailing})
		}
		return nil
	}
	return nil
}

func writeText(w io.Writer, s string, es *EncState) error {
	if s == "" {
		return nil
	}
	if err := writeString(w, s); err != nil {
		return err
	}
	es.needNL = !strings.HasSuffix(s, "\n")
	return nil
}

// piece is one colorable fragment of a directive line.
type piece struct {
	t ir.Type
	a ColorAttr
	s string
}

func writeDirective(w io.Writer, es *EncState, pieces ...piece) error {
	if es.needNL {
		// make sure the directive starts at column 0
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	if err := writeColored(w, es, piece{pieces[0].t, MarkerColor, es.syn.Marker}); err != nil {
		return err
	}
	for _, p := range pieces {
		if err := writeColored(w, es, p); err != nil {
			return err
		}
	}
	if es.syn.Suffix != "" {
		if err := writeColored(w, es, piece{pieces[0].t, MarkerColor, es.syn.Suffix}); err != nil {
			return err
		}
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	es.needNL = false
	return nil
}

func writeColored(w io.Writer, es *EncState, p piece) error {
	s := p.s
	if es.Color != nil && s != "" {
		s = es.Color(p.t, p.a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
