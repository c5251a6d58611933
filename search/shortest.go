package search

import "container/heap"

// ShortestPath returns the minimal number of unit steps from start to any
// state for which goal holds. ok is false when the reachable component
// (bounded by WithMaxCost, if set) contains no goal state.
//
// goal is invoked once per popped state and neighbours once per expansion;
// both must be pure and terminating. If goal(start) holds the result is
// (0, true) without a single expansion.
//
// Every state is admitted to the frontier at most once, at the cost of its
// first discovery. This is only correct because every step costs exactly 1:
// the engine must not be reused for weighted edges.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPath[S comparable](start S, goal func(S) bool, neighbours func(S) []S, opts ...Option) (int, bool) {
	r := &runner[S]{
		goal:       goal,
		neighbours: neighbours,
		opts:       buildOptions(opts),
		visited:    newVisitedSet[S](64),
		pq:         make(costQueue[S], 0, 64),
	}
	r.init(start)
	cost, ok := r.process()

	r.opts.Logger.Debug("search: shortest path finished",
		"found", ok,
		"cost", cost,
		"expanded", r.expanded,
		"admitted", len(r.visited),
	)
	return cost, ok
}

// runner holds the mutable state for a single ShortestPath execution.
type runner[S comparable] struct {
	goal       func(S) bool
	neighbours func(S) []S
	opts       Options
	visited    visitedSet[S]
	pq         costQueue[S]
	expanded   int
}

// init admits start at cost 0.
func (r *runner[S]) init(start S) {
	heap.Init(&r.pq)
	r.visited.admit(start)
	heap.Push(&r.pq, entry[S]{state: start, cost: 0})
}

// process pops the cheapest entry until a goal is found or the heap drains.
func (r *runner[S]) process() (int, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(entry[S])
		if r.goal(item.state) {
			return item.cost, true
		}

		next := item.cost + 1
		if !r.opts.admits(next) {
			continue
		}
		r.expanded++
		for _, n := range r.neighbours(item.state) {
			if r.visited.admit(n) {
				heap.Push(&r.pq, entry[S]{state: n, cost: next})
			}
		}
	}

	return 0, false
}
