// Package snippet indexes named snep snippets and resolves their
// declared dependencies so targets can be assembled in dependency
// order.
//
// Snippets live in elements named "snips": every immediate child
// element of a snips element defines one snippet.  A snippet
// declares what it needs with "requires" attributes whose values are
// whitespace-separated lists; entries prefixed "mod:" name external
// modules, all other entries name snippets.
package snippet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/snep-format/go-snep/ir"
)

const (
	snipsName    = "snips"
	requiresName = "requires"
	modPrefix    = "mod:"
)

// Snippet is one named, reusable content unit.
type Snippet struct {
	Name string
	// Node is the snippet's element, wrapper directive included.
	Node *ir.Node
	// Requires names the snippets this one depends on, in
	// declaration order, duplicates preserved.
	Requires []string
	// Modules names the external modules this snippet needs.
	Modules []string
}

// Library is an index of snippets collected from one or more
// documents.
type Library struct {
	snips map[string]*Snippet
}

func NewLibrary() *Library {
	return &Library{snips: map[string]*Snippet{}}
}

// Add collects every snippet of the document rooted at root.  A
// snippet whose name is already in the library is an error.
func (l *Library) Add(root *ir.Node) error {
	return root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.ElemType || n.Name != snipsName {
			return true, nil
		}
		for _, c := range n.Children {
			if c.Type != ir.ElemType {
				continue
			}
			if err := l.add(c); err != nil {
				return false, err
			}
		}
		// snippet bodies may hold nested elements, but those
		// are content, not definitions
		return false, nil
	})
}

func (l *Library) add(node *ir.Node) error {
	if _, ok := l.snips[node.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, node.Name)
	}
	s := &Snippet{Name: node.Name, Node: node}
	for _, entry := range strings.Fields(node.Attributes()[requiresName]) {
		if mod, ok := strings.CutPrefix(entry, modPrefix); ok {
			s.Modules = append(s.Modules, mod)
			continue
		}
		s.Requires = append(s.Requires, entry)
	}
	l.snips[node.Name] = s
	return nil
}

// Get returns the snippet with the given name.
func (l *Library) Get(name string) (*Snippet, error) {
	s, ok := l.snips[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return s, nil
}

// Len returns the number of snippets in the library.
func (l *Library) Len() int {
	return len(l.snips)
}

// Names returns all snippet names in natural order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.snips))
	for name := range l.snips {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Graph returns the snippet dependency graph: each snippet name
// mapped to the names it requires.
func (l *Library) Graph() map[string][]string {
	g := make(map[string][]string, len(l.snips))
	for name, s := range l.snips {
		g[name] = s.Requires
	}
	return g
}
