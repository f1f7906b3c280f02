// Package graph provides the deterministic dependency resolution
// used to order snippets: a cycle-checking topological sort with a
// total tie-break order, and a reachability closure.
package graph

import (
	"cmp"
	"container/heap"
	"errors"
)

// ErrCyclic reports that the graph has a cycle.  No partial order is
// ever returned alongside it.
var ErrCyclic = errors.New("graph is cyclic")

// Sorter configures a topological sort over a dependency graph.
//
// The zero value sorts a map from node to its dependencies into an
// order where every dependency precedes its dependents, breaking
// ties by the natural order of the keys.  The result is always the
// lexicographically smallest valid order under the tie-break, which
// makes it deterministic whenever the keys are distinct.
type Sorter[V cmp.Ordered] struct {
	// Compare overrides the tie-break order.  nil means
	// cmp.Compare.
	Compare func(a, b V) int
	// Reverse reverses the tie-break order.
	Reverse bool
	// Flip interprets the graph as node -> dependents instead of
	// node -> dependencies.  The reversed adjacency is
	// materialized once up front; the lexicographic-minimality
	// contract rules out reversing the output instead.
	Flip bool
}

// Toposort sorts with the zero Sorter.
func Toposort[V cmp.Ordered](g map[V][]V) ([]V, error) {
	return (&Sorter[V]{}).Sort(g)
}

// Sort returns a total order of all nodes of g honoring every edge.
// Duplicate edges between the same pair collapse to one; nodes named
// only on the right-hand side of an edge are included as if they had
// an empty entry; isolated nodes appear as singletons.  A cyclic
// graph yields ErrCyclic and no order.
func (s *Sorter[V]) Sort(g map[V][]V) ([]V, error) {
	compare := s.Compare
	if compare == nil {
		compare = cmp.Compare[V]
	}
	if s.Reverse {
		inner := compare
		compare = func(a, b V) int { return inner(b, a) }
	}

	// deps[v] is the deduplicated dependency set of v
	deps := make(map[V]map[V]struct{}, len(g))
	ensure := func(v V) map[V]struct{} {
		m, ok := deps[v]
		if !ok {
			m = map[V]struct{}{}
			deps[v] = m
		}
		return m
	}
	for v := range g {
		ensure(v)
	}
	for v, edges := range g {
		for _, w := range edges {
			if s.Flip {
				ensure(w)[v] = struct{}{}
			} else {
				ensure(w)
				deps[v][w] = struct{}{}
			}
		}
	}

	dependents := make(map[V][]V, len(deps))
	remaining := make(map[V]int, len(deps))
	ready := &vertexHeap[V]{compare: compare}
	for v, ds := range deps {
		remaining[v] = len(ds)
		if len(ds) == 0 {
			ready.vs = append(ready.vs, v)
		}
		for d := range ds {
			dependents[d] = append(dependents[d], v)
		}
	}
	heap.Init(ready)

	// Kahn's algorithm; the heap always yields the smallest
	// currently-ready node
	res := make([]V, 0, len(deps))
	for ready.Len() > 0 {
		v := heap.Pop(ready).(V)
		res = append(res, v)
		for _, w := range dependents[v] {
			remaining[w]--
			if remaining[w] == 0 {
				heap.Push(ready, w)
			}
		}
	}
	if len(res) != len(deps) {
		return nil, ErrCyclic
	}
	return res, nil
}

type vertexHeap[V cmp.Ordered] struct {
	vs      []V
	compare func(a, b V) int
}

func (h *vertexHeap[V]) Len() int           { return len(h.vs) }
func (h *vertexHeap[V]) Less(i, j int) bool { return h.compare(h.vs[i], h.vs[j]) < 0 }
func (h *vertexHeap[V]) Swap(i, j int)      { h.vs[i], h.vs[j] = h.vs[j], h.vs[i] }

func (h *vertexHeap[V]) Push(x any) {
	h.vs = append(h.vs, x.(V))
}

func (h *vertexHeap[V]) Pop() any {
	n := len(h.vs)
	v := h.vs[n-1]
	h.vs = h.vs[:n-1]
	return v
}
