package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes by structural
// identity.  The result is 0 if a == b, -1 if a < b, and +1 if
// a > b.  Origins and trailing comments are ignored.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case TextType:
		return strings.Compare(a.Value, b.Value)
	case AttrType:
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Value, b.Value)
	case ElemType:
		return compareElems(a, b)
	}
	return 0
}

// Equal reports whether two nodes are structurally identical.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Text < Attr < Elem
func rank(t Type) int {
	switch t {
	case TextType:
		return 0
	case AttrType:
		return 1
	case ElemType:
		return 2
	}
	return 100
}

func compareElems(a, b *Node) int {
	// the unnamed root orders before any named element
	if a.Named != b.Named {
		if !a.Named {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}

	lenA := len(a.Children)
	lenB := len(b.Children)
	minLen := min(lenA, lenB)
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
