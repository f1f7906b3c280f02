package graph

// Reachable returns the set of nodes reachable from the initial
// nodes, inclusive, following neighbors exhaustively.
func Reachable[V comparable](initial []V, neighbors func(V) []V) map[V]bool {
	reachable := make(map[V]bool, len(initial))
	queue := make([]V, 0, len(initial))
	for _, v := range initial {
		if !reachable[v] {
			reachable[v] = true
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, w := range neighbors(v) {
			if !reachable[w] {
				reachable[w] = true
				queue = append(queue, w)
			}
		}
	}
	return reachable
}
