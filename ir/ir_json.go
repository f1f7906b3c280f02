package ir

import (
	"encoding/json"
	"fmt"
)

// ToJSON returns the canonical JSON projection of the tree:
//
//	node = text | attr | elem
//	text = "some_text\n"
//	attr = ["attr_name", "attr_value"]
//	elem = ["elem_name" | null, [node, ...]]
//
// The projection is lossless for structural content; origins and
// trailing comments are omitted.  The rendered directive text, not
// this projection, is the authoritative persistence format.
func (n *Node) ToJSON() any {
	switch n.Type {
	case TextType:
		return n.Value
	case AttrType:
		return []any{n.Name, n.Value}
	case ElemType:
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.ToJSON()
		}
		var name any
		if n.Named {
			name = n.Name
		}
		return []any{name, children}
	}
	return nil
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToJSON())
}

func (n *Node) UnmarshalJSON(d []byte) error {
	var raw json.RawMessage
	if err := json.Unmarshal(d, &raw); err != nil {
		return err
	}
	node, err := fromJSON(raw)
	if err != nil {
		return err
	}
	*n = *node
	return nil
}

func fromJSON(d json.RawMessage) (*Node, error) {
	if len(d) > 0 && d[0] == '"' {
		var s string
		if err := json.Unmarshal(d, &s); err != nil {
			return nil, err
		}
		return Text(s), nil
	}
	var pair []json.RawMessage
	if err := json.Unmarshal(d, &pair); err != nil {
		return nil, err
	}
	if len(pair) != 2 {
		return nil, fmt.Errorf("node must be a string or a 2-element array, got %d elements", len(pair))
	}
	var name *string
	if err := json.Unmarshal(pair[0], &name); err != nil {
		return nil, fmt.Errorf("bad node name: %w", err)
	}
	if len(pair[1]) > 0 && pair[1][0] == '"' {
		if name == nil {
			return nil, fmt.Errorf("attribute name must not be null")
		}
		var v string
		if err := json.Unmarshal(pair[1], &v); err != nil {
			return nil, err
		}
		return Attr(*name, v), nil
	}
	var rawChildren []json.RawMessage
	if err := json.Unmarshal(pair[1], &rawChildren); err != nil {
		return nil, err
	}
	children := make([]*Node, len(rawChildren))
	for i, rc := range rawChildren {
		c, err := fromJSON(rc)
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	if name == nil {
		return Root(children...), nil
	}
	return Elem(*name, children...), nil
}
