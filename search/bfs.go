package search

// BFS returns every state reachable from start in breadth-first order. The
// first element is always start and the distance from start never decreases
// along the slice. No state appears twice.
//
// With WithMaxCost(d), only states within d steps are returned.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
func BFS[S comparable](start S, neighbours func(S) []S, opts ...Option) []S {
	var order []S
	newWalker(neighbours, opts).walk(start, func(s S, _ int) {
		order = append(order, s)
	})

	return order
}

// Layers groups the BFS order by distance: Layers(...)[d] holds every state
// exactly d steps from start, in discovery order. Flattening the layers
// yields BFS(...).
func Layers[S comparable](start S, neighbours func(S) []S, opts ...Option) [][]S {
	var layers [][]S
	newWalker(neighbours, opts).walk(start, func(s S, depth int) {
		// depth is either the current last layer or the next one.
		if depth == len(layers) {
			layers = append(layers, nil)
		}
		layers[depth] = append(layers[depth], s)
	})

	return layers
}

// Distances maps every reachable state to its step count from start.
func Distances[S comparable](start S, neighbours func(S) []S, opts ...Option) map[S]int {
	dist := make(map[S]int)
	newWalker(neighbours, opts).walk(start, func(s S, depth int) {
		dist[s] = depth
	})

	return dist
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	neighbours func(S) []S
	opts       Options
	queue      fifo[S]
	visited    visitedSet[S]
}

func newWalker[S comparable](neighbours func(S) []S, opts []Option) *walker[S] {
	return &walker[S]{
		neighbours: neighbours,
		opts:       buildOptions(opts),
		queue:      make(fifo[S], 0, 64),
		visited:    newVisitedSet[S](64),
	}
}

// walk calls visit for each dequeued state with its depth. States are marked
// visited when enqueued, not when dequeued.
func (w *walker[S]) walk(start S, visit func(s S, depth int)) {
	w.visited.admit(start)
	w.queue.push(start, 0)

	maxDepth := 0
	for w.queue.Len() > 0 {
		item := w.queue.pop()
		visit(item.state, item.cost)
		maxDepth = item.cost

		next := item.cost + 1
		if !w.opts.admits(next) {
			continue
		}
		for _, n := range w.neighbours(item.state) {
			if w.visited.admit(n) {
				w.queue.push(n, next)
			}
		}
	}

	w.opts.Logger.Debug("search: bfs finished",
		"visited", len(w.visited),
		"depth", maxDepth,
	)
}
