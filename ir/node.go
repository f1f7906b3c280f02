package ir

import (
	"sync"

	"github.com/snep-format/go-snep/token"
)

// Node is a single node in a snep document.  Which fields are
// meaningful depends on Type:
//
//   - TextType: Value (the raw line)
//   - AttrType: Name, Value
//   - ElemType: Name, Named, Children, Trailing
//
// Named is false only on the synthetic root element.  Trailing is
// the comment following the closing ']' directive.  Origin, when
// present, records provenance and is excluded from identity.
//
// Children must not be modified after construction; use the Replace
// operators instead.
type Node struct {
	Type     Type
	Name     string
	Named    bool
	Value    string
	Children []*Node
	Trailing string
	Origin   *token.Origin

	viewsOnce sync.Once
	viewsVal  *views
}

// Text returns a new text node.
func Text(value string) *Node {
	return &Node{Type: TextType, Value: value}
}

// Attr returns a new attribute node.
func Attr(name, value string) *Node {
	return &Node{Type: AttrType, Name: name, Named: true, Value: value}
}

// Elem returns a new named element with the given children.
func Elem(name string, children ...*Node) *Node {
	return &Node{Type: ElemType, Name: name, Named: true, Children: children}
}

// Root returns a new unnamed root element with the given children.
func Root(children ...*Node) *Node {
	return &Node{Type: ElemType, Children: children}
}

// WithOrigin sets the node's origin and returns the node.  It is a
// construction-time helper and must not be applied to shared nodes.
func (n *Node) WithOrigin(o *token.Origin) *Node {
	n.Origin = o
	return n
}

// WithTrailing sets an element's trailing comment and returns the
// node.  It is a construction-time helper and must not be applied to
// shared nodes.
func (n *Node) WithTrailing(comment string) *Node {
	n.Trailing = comment
	return n
}

// Visit walks the subtree rooted at n in document order, calling f
// twice per node, before (isPost false) and after (isPost true) its
// children.  Returning false from the pre call skips the children;
// any error aborts the walk.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive && n.Type == ElemType {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
