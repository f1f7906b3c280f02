package ir

import "fmt"

// GetElement returns the unique child element with the given name.
// It fails with ErrNotFound if no child element has the name, and
// with ErrNonUnique if two or more do.
func (n *Node) GetElement(name string) (*Node, error) {
	v := n.views()
	if e, ok := v.unique[name]; ok {
		return e, nil
	}
	if _, ok := v.elems[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil, fmt.Errorf("%w: %s", ErrNonUnique, name)
}

// ReplaceName returns a new element with the same children as n but
// the given name.  The receiver is not altered.
func (n *Node) ReplaceName(name string) *Node {
	return &Node{
		Type:     ElemType,
		Name:     name,
		Named:    true,
		Children: n.Children,
		Trailing: n.Trailing,
	}
}

// ReplaceChildren returns a new element with the same name as n but
// the given children.  The receiver is not altered.
func (n *Node) ReplaceChildren(children []*Node) *Node {
	return &Node{
		Type:     ElemType,
		Name:     n.Name,
		Named:    n.Named,
		Children: children,
		Trailing: n.Trailing,
	}
}

// ReplaceElement returns a new element in which the unique child
// element with the given name is replaced, positionally, by el.  The
// receiver is not altered.  It fails exactly as GetElement does.
func (n *Node) ReplaceElement(name string, el *Node) (*Node, error) {
	if _, err := n.GetElement(name); err != nil {
		return nil, err
	}
	children := make([]*Node, len(n.Children))
	copy(children, n.Children)
	children[n.views().indices[name][0]] = el
	return n.ReplaceChildren(children), nil
}

// ReplaceElementChildren returns a new element in which the unique
// child element with the given name keeps its name but has its
// children replaced.  The receiver is not altered.  It fails exactly
// as GetElement does.
func (n *Node) ReplaceElementChildren(name string, children []*Node) (*Node, error) {
	el, err := n.GetElement(name)
	if err != nil {
		return nil, err
	}
	return n.ReplaceElement(name, el.ReplaceChildren(children))
}
