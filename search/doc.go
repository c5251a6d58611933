// Package search provides two generic, single-threaded engines over a
// caller-defined state space: a unit-cost shortest-path search and a
// breadth-first traversal.
//
// What
//
//   - The state space is implicit. Callers supply a start state of any
//     comparable type S and a neighbour function func(S) []S; every step
//     costs exactly 1.
//   - ShortestPath pops states from a min-priority frontier and returns the
//     cost of the first state satisfying the goal predicate.
//   - BFS, Layers and Distances expand the whole reachable component through
//     a FIFO frontier, in non-decreasing distance from the start.
//   - Both engines admit each state to their frontier at most once.
//
// Why
//
//   - Grid mazes, inventory tuples, graph node IDs: the same search loop
//     serves any problem that can describe "where can I go from here".
//   - No graph has to be materialised up front; neighbours are generated on
//     demand, so huge or lazily defined spaces cost only what is explored.
//
// Complexity (V = states reached, E = neighbour entries generated)
//
//   - ShortestPath: O((V + E) log V) time, O(V) memory.
//   - BFS:          O(V + E) time,       O(V) memory.
//
// Usage
//
//	// fewest moves on a 3×3 board
//	cost, ok := search.ShortestPath(
//	    grid.Pos(0, 0),
//	    func(p grid.Position) bool { return p == grid.Pos(2, 2) },
//	    func(p grid.Position) []grid.Position { return inBoard(p.Neighbors4()) },
//	)
//
//	// everything reachable, closest first
//	order := search.BFS(start, neighbours, search.WithMaxCost(10))
//
// Options
//
//   - WithLogger(l):  emit a debug summary of each run to l.
//   - WithMaxCost(n): never admit states more than n steps away (0 = no limit).
//
// Caveats
//
//	The engines do not guard against contract violations: a neighbour
//	function that never stops producing new states over an infinite space
//	with no reachable goal never returns. Bound the space in the neighbour
//	function or with WithMaxCost.
//
//	Single admission is only correct for uniform step costs. Do not adapt
//	ShortestPath to weighted edges; use a relaxing Dijkstra instead.
package search
