package ir

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttributes(t *testing.T) {
	n := Elem("e",
		Attr("a", "1"),
		Text("x\n"),
		Attr("b", "2"),
		Attr("a", "3"),
		Attr("a", "4"),
	)
	want := map[string]string{
		"a": "1\n3\n4",
		"b": "2",
	}
	if d := cmp.Diff(want, n.Attributes()); d != "" {
		t.Errorf("Attributes() mismatch (-want +got):\n%s", d)
	}
	// the raw attribute nodes stay distinct children
	if len(n.Children) != 5 {
		t.Errorf("children collapsed: %d", len(n.Children))
	}
}

func TestElements(t *testing.T) {
	a1 := Elem("a", Text("1\n"))
	a2 := Elem("a", Text("2\n"))
	b := Elem("b")
	n := Root(a1, Text("t\n"), b, a2)

	elems := n.Elements()
	if len(elems) != 2 {
		t.Fatalf("Elements() has %d names, want 2", len(elems))
	}
	if len(elems["a"]) != 2 || elems["a"][0] != a1 || elems["a"][1] != a2 {
		t.Errorf("Elements()[a] = %v", elems["a"])
	}
	if len(elems["b"]) != 1 || elems["b"][0] != b {
		t.Errorf("Elements()[b] = %v", elems["b"])
	}

	if d := cmp.Diff(map[string][]int{"a": {0, 3}, "b": {2}}, n.ElementIndices()); d != "" {
		t.Errorf("ElementIndices() mismatch (-want +got):\n%s", d)
	}
}

func TestUniqueElements(t *testing.T) {
	n := Root(
		Elem("dup"),
		Elem("one"),
		Elem("dup"),
		Elem("tri"),
		Elem("tri"),
		Elem("tri"),
	)
	u := n.UniqueElements()
	if len(u) != 1 {
		t.Fatalf("UniqueElements() = %v, want only one entry", u)
	}
	if _, ok := u["one"]; !ok {
		t.Error("UniqueElements() misses the unique name")
	}
	if n.HasUniqueElements() {
		t.Error("HasUniqueElements() = true with duplicated names")
	}
	if !Root(Elem("a"), Elem("b")).HasUniqueElements() {
		t.Error("HasUniqueElements() = false with distinct names")
	}
}

func TestViewsEmpty(t *testing.T) {
	n := Root()
	if len(n.Attributes()) != 0 || len(n.Elements()) != 0 || len(n.UniqueElements()) != 0 {
		t.Error("empty element has non-empty views")
	}
	if !n.HasUniqueElements() {
		t.Error("HasUniqueElements() = false on empty element")
	}
}

func TestViewsConcurrent(t *testing.T) {
	n := Root(Elem("a"), Attr("k", "v"), Elem("a"))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n.Attributes()["k"] != "v" {
				t.Error("bad attribute view")
			}
			if len(n.Elements()["a"]) != 2 {
				t.Error("bad element view")
			}
		}()
	}
	wg.Wait()
}
