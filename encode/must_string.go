package encode

import (
	"bytes"

	"github.com/snep-format/go-snep/ir"
)

// MustString renders node to a string with default options.  It
// panics on write errors, which a bytes.Buffer never produces.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
