package snippet

import (
	"fmt"
	"slices"

	"github.com/snep-format/go-snep/debug"
	"github.com/snep-format/go-snep/graph"
	"github.com/snep-format/go-snep/ir"
)

// Order returns the requested snippets plus everything they require,
// ordered so each snippet's requirements precede it.  The order is
// deterministic: among the valid orders it is the lexicographically
// smallest by snippet name.  With no arguments the whole library is
// ordered.
func (l *Library) Order(names ...string) ([]string, error) {
	if len(names) == 0 {
		names = l.Names()
	}
	for _, name := range names {
		if _, ok := l.snips[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
		}
	}
	closure := graph.Reachable(names, func(v string) []string {
		s, ok := l.snips[v]
		if !ok {
			return nil
		}
		return s.Requires
	})
	g := make(map[string][]string, len(closure))
	for v := range closure {
		s, ok := l.snips[v]
		if !ok {
			// only reachable through some present snippet
			continue
		}
		for _, r := range s.Requires {
			if _, ok := l.snips[r]; !ok {
				return nil, fmt.Errorf("%w: %q required by %q", ErrUnknown, r, v)
			}
		}
		g[v] = s.Requires
	}
	order, err := graph.Toposort(g)
	if err != nil {
		return nil, err
	}
	if debug.Order() {
		debug.Logf("order: %v -> %v\n", names, order)
	}
	return order, nil
}

// Modules returns the external modules required by the requested
// snippets and everything they require, sorted and deduplicated.
// With no arguments it covers the whole library.
func (l *Library) Modules(names ...string) ([]string, error) {
	order, err := l.Order(names...)
	if err != nil {
		return nil, err
	}
	set := map[string]bool{}
	for _, name := range order {
		for _, mod := range l.snips[name].Modules {
			set[mod] = true
		}
	}
	mods := make([]string, 0, len(set))
	for mod := range set {
		mods = append(mods, mod)
	}
	slices.Sort(mods)
	return mods, nil
}

// Assemble returns a new document whose children are the requested
// snippets and everything they require, in Order() order.  Rendering
// it yields the generated target text.
func (l *Library) Assemble(names ...string) (*ir.Node, error) {
	order, err := l.Order(names...)
	if err != nil {
		return nil, err
	}
	children := make([]*ir.Node, len(order))
	for i, name := range order {
		children[i] = l.snips[name].Node
	}
	return ir.Root(children...), nil
}
