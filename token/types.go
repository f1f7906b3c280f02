// Package token turns numbered source lines into snep directive
// events.  The scanner is a single forward pass over the input; it
// never backtracks and it never buffers more than one line.
package token

import "fmt"

type EventType int

const (
	// EventLine is a verbatim text line, newline included.
	EventLine EventType = iota
	// EventAttr attaches an attribute to the open element.
	EventAttr
	// EventBegin opens a named element.
	EventBegin
	// EventEnd closes the open element, keeping a trailing comment.
	EventEnd
)

func (t EventType) String() string {
	return map[EventType]string{
		EventLine:  "EventLine",
		EventAttr:  "EventAttr",
		EventBegin: "EventBegin",
		EventEnd:   "EventEnd",
	}[t]
}

// Event is one structural event produced by the scanner.
//
//   - EventLine: Value is the raw line.
//   - EventAttr: Name and Value are the attribute name and value.
//   - EventBegin: Name is the element name.
//   - EventEnd: Value is the trailing comment after ']'.
type Event struct {
	Type  EventType
	Line  int
	Name  string
	Value string
}

func (e *Event) Info() string {
	switch e.Type {
	case EventAttr:
		return fmt.Sprintf("%s %s: %q at line %d", e.Type, e.Name, e.Value, e.Line)
	case EventBegin:
		return fmt.Sprintf("%s %s at line %d", e.Type, e.Name, e.Line)
	case EventEnd:
		return fmt.Sprintf("%s %q at line %d", e.Type, e.Value, e.Line)
	default:
		return fmt.Sprintf("%s %q at line %d", e.Type, e.Value, e.Line)
	}
}
