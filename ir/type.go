package ir

type Type int

const (
	TextType Type = iota
	AttrType
	ElemType
)

func (t Type) String() string {
	switch t {
	case TextType:
		return "text"
	case AttrType:
		return "attr"
	case ElemType:
		return "elem"
	}
	return "<invalid>"
}

// Types returns all node types in comparison rank order.
func Types() []Type {
	return []Type{TextType, AttrType, ElemType}
}
