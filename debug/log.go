package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/snep-format/go-snep/encode"
	"github.com/snep-format/go-snep/ir"
)

// Doc makes a document tree loggable in its rendered form.
type Doc struct{ *ir.Node }

func (d Doc) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(d.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", d.Node)
	}
	return buf.String()
}

// Logf writes a formatted message to stderr.  Maps, slices and other
// composite arguments are pretty-printed as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, map[string][]string, []any, []string:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
