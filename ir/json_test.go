package ir

import (
	"encoding/json"
	"testing"
)

func TestToJSON(t *testing.T) {
	n := Root(
		Text("#!/bin/sh\n"),
		Elem("f",
			Attr("requires", "g"),
			Text("body\n"),
		),
	)
	d, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `[null,["#!/bin/sh\n",["f",[["requires","g"],"body\n"]]]]`
	if string(d) != want {
		t.Errorf("Marshal = %s, want %s", d, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	trees := []struct {
		name string
		n    *Node
	}{
		{"empty root", Root()},
		{"text only", Root(Text("a\n"), Text("b\n"))},
		{"attrs", Root(Attr("k", "v"), Attr("k", ""))},
		{"nested", Root(Elem("a", Elem("b", Elem("c", Text("deep\n")))))},
		{"empty attr value", Root(Attr("flag", ""))},
		{"empty elem", Root(Elem("e"))},
	}
	for _, tt := range trees {
		t.Run(tt.name, func(t *testing.T) {
			d, err := json.Marshal(tt.n)
			if err != nil {
				t.Fatal(err)
			}
			var got Node
			if err := json.Unmarshal(d, &got); err != nil {
				t.Fatal(err)
			}
			if !Equal(&got, tt.n) {
				t.Errorf("round trip changed the tree: %s", d)
			}
		})
	}
}

func TestJSONErrors(t *testing.T) {
	bad := []struct {
		name string
		in   string
	}{
		{"bare number", `22`},
		{"one element array", `["a"]`},
		{"three element array", `["a","b","c"]`},
		{"null attr name", `[null,"v"]`},
		{"number name", `[22,[]]`},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			var n Node
			if err := json.Unmarshal([]byte(tt.in), &n); err == nil {
				t.Errorf("Unmarshal(%s) succeeded, want error", tt.in)
			}
		})
	}
}
