// Package parse builds snep document trees from directive text.
package parse

import (
	"bytes"
	"io"

	"github.com/snep-format/go-snep/debug"
	"github.com/snep-format/go-snep/ir"
	"github.com/snep-format/go-snep/syntax"
	"github.com/snep-format/go-snep/token"
)

// frame accumulates one element while its children are being built.
// slot is the placeholder index reserved in the parent's children.
type frame struct {
	name     string
	named    bool
	children []*ir.Node
	origin   *token.Origin
	slot     int
}

// Parse parses directive text into a document tree rooted at an
// unnamed element.  A malformed directive or unbalanced brackets
// yield a *token.ParseError and no tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// ParseReader is Parse reading from r in a single forward pass.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{syn: syntax.Default()}
	for _, f := range opts {
		f(pOpts)
	}
	sc := token.NewScanner(r,
		token.ScanSource(pOpts.src),
		token.ScanSyntax(pOpts.syn))

	cur := &frame{origin: &token.Origin{Src: pOpts.src, Line: 1}}
	var stack []*frame
	for {
		ev, err := sc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if debug.Scan() {
			debug.Logf("scan: %s\n", ev.Info())
		}
		org := &token.Origin{Src: pOpts.src, Line: ev.Line}
		switch ev.Type {
		case token.EventLine:
			cur.children = append(cur.children, ir.Text(ev.Value).WithOrigin(org))
		case token.EventAttr:
			cur.children = append(cur.children, ir.Attr(ev.Name, ev.Value).WithOrigin(org))
		case token.EventBegin:
			// reserve the parent slot now so siblings keep
			// their document order
			cur.children = append(cur.children, nil)
			stack = append(stack, cur)
			cur = &frame{
				name:   ev.Name,
				named:  true,
				origin: org,
				slot:   len(cur.children) - 1,
			}
		case token.EventEnd:
			if len(stack) == 0 {
				return nil, token.NewParseError(pOpts.src, ev.Line, "unmatched ']'")
			}
			done := cur
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cur.children[done.slot] = done.finish(ev.Value)
		}
	}
	if len(stack) != 0 {
		return nil, token.NewParseError(pOpts.src, sc.Line(), "unclosed '['")
	}
	return cur.finish(""), nil
}

// finish seals the frame into an immutable element.
func (f *frame) finish(trailing string) *ir.Node {
	var node *ir.Node
	if f.named {
		node = ir.Elem(f.name, f.children...)
	} else {
		node = ir.Root(f.children...)
	}
	return node.WithOrigin(f.origin).WithTrailing(trailing)
}
