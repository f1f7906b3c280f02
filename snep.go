// Package snep assembles libraries of named, dependency-declaring
// snippets embedded as directives in ordinary source text.
//
// The subpackages hold the machinery: token scans directive events,
// parse builds document trees, ir is the document model, encode
// renders trees back to canonical text, graph orders dependencies
// deterministically, and snippet ties them together into snippet
// libraries.  This package provides the convenience entry points.
package snep

import (
	"path/filepath"
	"strings"

	"github.com/snep-format/go-snep/encode"
	"github.com/snep-format/go-snep/fileio"
	"github.com/snep-format/go-snep/ir"
	"github.com/snep-format/go-snep/parse"
	"github.com/snep-format/go-snep/syntax"
)

// ParseDoc parses directive text into a document tree.  src labels
// the text in origins and errors.
func ParseDoc(text, src string, opts ...parse.ParseOption) (*ir.Node, error) {
	opts = append([]parse.ParseOption{parse.Source(src)}, opts...)
	return parse.Parse([]byte(text), opts...)
}

// ParseFile parses the file as a document tree, guessing the marker
// syntax from the file name and shebang.
func ParseFile(fn string, opts ...parse.ParseOption) (*ir.Node, error) {
	text, err := fileio.Load(fn)
	if err != nil {
		return nil, err
	}
	opts = append([]parse.ParseOption{
		parse.Source(fn),
		parse.Syntax(GuessSyntax(fn, text)),
	}, opts...)
	return parse.Parse([]byte(text), opts...)
}

// Render returns the canonical rendering of a document tree.
func Render(node *ir.Node, opts ...encode.EncodeOption) string {
	buf := &strings.Builder{}
	if err := encode.Encode(node, buf, opts...); err != nil {
		// strings.Builder never fails to write
		panic(err)
	}
	return buf.String()
}

// GuessSyntax picks a marker syntax for a file from its extension
// and shebang line, falling back to the default syntax.
func GuessSyntax(fn, contents string) *syntax.Syntax {
	ext := strings.TrimPrefix(filepath.Ext(fn), ".")
	shebang, _, _ := strings.Cut(contents, "\n")
	if !strings.HasPrefix(shebang, "#!") {
		shebang = ""
	} else {
		shebang += "\n"
	}
	if candidates := syntax.Guess(ext, shebang); len(candidates) > 0 {
		return candidates[0]
	}
	return syntax.Default()
}
