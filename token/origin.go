package token

import "fmt"

// Origin records where a node came from.  It is provenance only and
// is excluded from node identity.  Col is 1-based; 0 means unknown.
type Origin struct {
	Src  string
	Line int
	Col  int
}

func (o *Origin) String() string {
	src := o.Src
	if src == "" {
		src = "<input>"
	}
	if o.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", src, o.Line, o.Col)
	}
	return fmt.Sprintf("%s:%d", src, o.Line)
}
