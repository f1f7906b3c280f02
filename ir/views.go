package ir

// views holds the derived projections of an element's children.
// They are computed at most once per node, on first use; since nodes
// are immutable they can never diverge from Children.
type views struct {
	attrs   map[string]string
	elems   map[string][]*Node
	unique  map[string]*Node
	indices map[string][]int
}

func (n *Node) views() *views {
	n.viewsOnce.Do(func() {
		v := &views{
			attrs:   map[string]string{},
			elems:   map[string][]*Node{},
			unique:  map[string]*Node{},
			indices: map[string][]int{},
		}
		for i, c := range n.Children {
			switch c.Type {
			case AttrType:
				if prev, ok := v.attrs[c.Name]; ok {
					v.attrs[c.Name] = prev + "\n" + c.Value
				} else {
					v.attrs[c.Name] = c.Value
				}
			case ElemType:
				v.elems[c.Name] = append(v.elems[c.Name], c)
				v.indices[c.Name] = append(v.indices[c.Name], i)
			}
		}
		for name, elems := range v.elems {
			if len(elems) == 1 {
				v.unique[name] = elems[0]
			}
		}
		n.viewsVal = v
	})
	return n.viewsVal
}

// Attributes returns the element's attribute view: for each
// attribute name, the values of all same-named attributes joined
// with "\n" in document order.  The raw attribute nodes remain
// distinct entries in Children.  The returned map must not be
// modified.
func (n *Node) Attributes() map[string]string {
	return n.views().attrs
}

// Elements returns all child elements keyed by name, in document
// order.  The returned map must not be modified.
func (n *Node) Elements() map[string][]*Node {
	return n.views().elems
}

// UniqueElements returns the child elements whose names occur
// exactly once among the element's children.  The returned map must
// not be modified.
func (n *Node) UniqueElements() map[string]*Node {
	return n.views().unique
}

// HasUniqueElements reports whether every child-element name is
// unique.
func (n *Node) HasUniqueElements() bool {
	v := n.views()
	return len(v.elems) == len(v.unique)
}

// ElementIndices returns, for each child-element name, the positions
// of its occurrences in Children.  The returned map must not be
// modified.
func (n *Node) ElementIndices() map[string][]int {
	return n.views().indices
}
