package merge

import (
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func conflictError(g *gitDir, left, right map[string]string) error {
	files, err := g.conflicted()
	if err != nil {
		return err
	}
	ce := &ConflictError{Files: files}
	for _, fn := range files {
		ce.Summaries = append(ce.Summaries, summarize(fn, left[fn], right[fn]))
	}
	return ce
}

// summarize describes how the two sides of a conflicted file differ,
// counted in lines.
func summarize(fn, left, right string) string {
	dmp := diffpatch.New()
	lc, rc, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffMain(lc, rc, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var added, removed int
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			added += countLines(d.Text)
		case diffpatch.DiffDelete:
			removed += countLines(d.Text)
		}
	}
	return fmt.Sprintf("  %s: left differs from right by -%d +%d line(s)", fn, removed, added)
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	if s[len(s)-1] != '\n' {
		n++
	}
	return n
}
