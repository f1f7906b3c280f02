package syntax

import "regexp"

var (
	shExtRe     = regexp.MustCompile(`^(py|\w*sh)$`)
	shShebangRe = regexp.MustCompile(`[/ ]\w*sh\s`)
	pyShebangRe = regexp.MustCompile(`[/ ]i?python[.\d]*\s`)
)

var cExts = map[string]bool{
	"c": true, "cc": true, "cpp": true, "cxx": true, "c++": true, "C": true,
	"h": true, "hh": true, "hpp": true, "hxx": true, "h++": true, "H": true,
}

// Guess returns candidate syntaxes for a file given its extension
// (without the dot) and its shebang line, most likely first.  The
// result is empty when nothing matches.
func Guess(ext, shebang string) []*Syntax {
	if cExts[ext] {
		return mustLookup("c", "c++")
	}
	if ext == "hs" || ext == "hsc" {
		return mustLookup("hs", "hs-block")
	}
	if shExtRe.MatchString(ext) {
		return mustLookup("sh")
	}
	if shShebangRe.MatchString(shebang) || pyShebangRe.MatchString(shebang) {
		return mustLookup("sh")
	}
	return nil
}

func mustLookup(names ...string) []*Syntax {
	res := make([]*Syntax, len(names))
	for i, name := range names {
		s, err := ParseSyntax(name)
		if err != nil {
			panic(err)
		}
		res[i] = s
	}
	return res
}
