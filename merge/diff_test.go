package merge

import (
	"errors"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		want        string
	}{
		{
			name:  "one line changed",
			left:  "a\nb\nc\n",
			right: "a\nB\nc\n",
			want:  "  f: left differs from right by -1 +1 line(s)",
		},
		{
			name:  "lines added",
			left:  "a\n",
			right: "a\nb\nc\n",
			want:  "  f: left differs from right by -0 +2 line(s)",
		},
		{
			name:  "identical",
			left:  "a\n",
			right: "a\n",
			want:  "  f: left differs from right by -0 +0 line(s)",
		},
		{
			name:  "no trailing newline counts",
			left:  "",
			right: "x",
			want:  "  f: left differs from right by -0 +1 line(s)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarize("f", tt.left, tt.right); got != tt.want {
				t.Errorf("summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConflictError(t *testing.T) {
	ce := &ConflictError{
		Files:     []string{"a", "b"},
		Summaries: []string{"  a: x", "  b: y"},
	}
	if !errors.Is(ce, ErrConflict) {
		t.Error("ConflictError does not wrap ErrConflict")
	}
	msg := ce.Error()
	if !strings.Contains(msg, "2 file(s)") || !strings.Contains(msg, "  a: x") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a\n", 1},
		{"a", 1},
		{"a\nb\n", 2},
		{"a\nb", 2},
	}
	for _, tt := range tests {
		if got := countLines(tt.in); got != tt.want {
			t.Errorf("countLines(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
