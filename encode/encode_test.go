package encode

import (
	"strings"
	"testing"

	"github.com/snep-format/go-snep/ir"
	"github.com/snep-format/go-snep/syntax"
)

func render(t *testing.T, n *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := &strings.Builder{}
	if err := Encode(n, buf, opts...); err != nil {
		t.Fatalf("Encode(): %v", err)
	}
	return buf.String()
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		n    *ir.Node
		want string
	}{
		{
			name: "empty root",
			n:    ir.Root(),
			want: "",
		},
		{
			name: "text verbatim",
			n:    ir.Root(ir.Text("a\n"), ir.Text("b\n")),
			want: "a\nb\n",
		},
		{
			name: "attr",
			n:    ir.Root(ir.Attr("requires", "g h")),
			want: "#@requires: g h\n",
		},
		{
			name: "attr with empty value",
			n:    ir.Root(ir.Attr("flag", "")),
			want: "#@flag: \n",
		},
		{
			name: "element",
			n:    ir.Root(ir.Elem("f", ir.Text("body\n"))),
			want: "#@f[\nbody\n#@]\n",
		},
		{
			name: "trailing comment",
			n:    ir.Root(ir.Elem("f").WithTrailing(" end of f")),
			want: "#@f[\n#@] end of f\n",
		},
		{
			name: "nested",
			n:    ir.Root(ir.Elem("a", ir.Elem("b", ir.Text("x\n")))),
			want: "#@a[\n#@b[\nx\n#@]\n#@]\n",
		},
		{
			name: "newline guard before directive",
			n:    ir.Root(ir.Text("no newline"), ir.Attr("k", "v")),
			want: "no newline\n#@k: v\n",
		},
		{
			name: "empty text emits nothing",
			n:    ir.Root(ir.Text(""), ir.Attr("k", "v")),
			want: "#@k: v\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.n); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeSyntaxes(t *testing.T) {
	n := ir.Root(ir.Elem("f", ir.Attr("requires", "g")))
	tests := []struct {
		syn  string
		want string
	}{
		{"sh", "#@f[\n#@requires: g\n#@]\n"},
		{"c++", "//@f[\n//@requires: g\n//@]\n"},
		{"c", "/*@f[ */\n/*@requires: g */\n/*@] */\n"},
		{"hs", "--@f[\n--@requires: g\n--@]\n"},
		{"hs-block", "{-@f[ -}\n{-@requires: g -}\n{-@] -}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.syn, func(t *testing.T) {
			syn, err := syntax.ParseSyntax(tt.syn)
			if err != nil {
				t.Fatal(err)
			}
			if got := render(t, n, EncodeSyntax(syn)); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeColorsWrap(t *testing.T) {
	n := ir.Root(ir.Attr("k", "v"))
	plain := render(t, n)
	colored := render(t, n, EncodeColors(NewColors()))
	if colored == plain {
		t.Skip("terminal colors disabled in this environment")
	}
	if !strings.Contains(colored, "k") || !strings.Contains(colored, "v") {
		t.Errorf("colored output lost content: %q", colored)
	}
}

func TestMustString(t *testing.T) {
	n := ir.Root(ir.Elem("e", ir.Text("x\n")))
	if got, want := MustString(n), "#@e[\nx\n#@]\n"; got != want {
		t.Errorf("MustString() = %q, want %q", got, want)
	}
}
