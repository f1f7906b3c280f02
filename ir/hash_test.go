package ir

import (
	"testing"
)

func TestHashEqualNodes(t *testing.T) {
	pairs := []struct {
		name string
		a, b *Node
	}{
		{"text", Text("hello\n"), Text("hello\n")},
		{"attr", Attr("k", "v"), Attr("k", "v")},
		{"elem", Elem("e", Text("x\n"), Attr("k", "v")), Elem("e", Text("x\n"), Attr("k", "v"))},
		{"root", Root(Elem("a")), Root(Elem("a"))},
		{"trailing ignored", Elem("e").WithTrailing(" note"), Elem("e")},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if !Equal(tt.a, tt.b) {
				t.Fatal("nodes are not equal")
			}
			if tt.a.Hash() != tt.b.Hash() {
				t.Error("equal nodes hash differently")
			}
		})
	}
}

func TestHashDistinguishes(t *testing.T) {
	pairs := []struct {
		name string
		a, b *Node
	}{
		{"text value", Text("a"), Text("b")},
		{"type", Text("a"), Attr("a", "")},
		{"attr name vs value", Attr("ab", "c"), Attr("a", "bc")},
		{"elem vs root", Elem(""), Root()},
		{"child order", Elem("e", Text("a"), Text("b")), Elem("e", Text("b"), Text("a"))},
		{"nesting", Elem("e", Elem("f")), Elem("e", Elem("f", Text("")))},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a.Hash() == tt.b.Hash() {
				t.Errorf("distinct nodes share hash %v", tt.a.Hash())
			}
		})
	}
}

func TestHashStable(t *testing.T) {
	n := Root(Elem("a", Attr("k", "v"), Text("x\n")))
	h := n.Hash()
	for i := 0; i < 10; i++ {
		if n.Hash() != h {
			t.Fatal("hash is not stable across calls")
		}
	}
}
