package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// seed is shared so that equal nodes hash equally for the lifetime
// of the process.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node consistent with Equal:
// structurally identical nodes hash to the same value.  Origins and
// trailing comments are excluded.  It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)

	h.WriteByte(byte(n.Type))
	switch n.Type {
	case TextType:
		h.WriteString(n.Value)
	case AttrType:
		h.WriteString(n.Name)
		h.WriteByte(0)
		h.WriteString(n.Value)
	case ElemType:
		if n.Named {
			h.WriteByte(1)
			h.WriteString(n.Name)
		} else {
			h.WriteByte(0)
		}
		var b [8]byte
		for _, c := range n.Children {
			binary.LittleEndian.PutUint64(b[:], c.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
