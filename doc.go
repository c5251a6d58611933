// Package lvlsearch is a small toolkit for searching implicit state spaces:
// you describe where a state can go next, it finds the shortest way to a
// goal or everything that is reachable.
//
// What is in the box?
//
//	search/ — generic unit-cost ShortestPath, plus BFS, Layers and Distances
//	grid/   — 2-D Position with 4-/8-neighbors and Manhattan distance, sparse
//	          Map with Parse/Render, connected Components
//	input/  — line- and blank-line-chunk readers for puzzle-style text
//
//	cmd/gridsearch — run either engine over a character map, configured in HCL
//	examples/      — hill climbing, broadcast rounds, island distances
//
// Quick ASCII example:
//
//	S . #
//	# . #
//	. . E      ShortestPath(S → E) == 4
//
// States can be anything comparable: grid positions, inventory tuples,
// node names. Nothing is materialised up front.
package lvlsearch
