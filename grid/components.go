package grid

import "github.com/katalvlaran/lvlsearch/search"

// Components finds every contiguous region of cells for which land holds,
// according to conn. Regions are seeded in row-major order and each region
// lists its cells in breadth-first order from its seed, so the result is
// deterministic.
//
// Time:   O(N·d), where N = len(m) and d = 4 or 8.
// Memory: O(N).
func Components[V any](m Map[V], conn Connectivity, land func(V) bool) [][]Position {
	isLand := func(p Position) bool {
		v, ok := m[p]
		return ok && land(v)
	}
	neighbours := func(p Position) []Position {
		var out []Position
		for _, n := range p.Neighbors(conn) {
			if isLand(n) {
				out = append(out, n)
			}
		}
		return out
	}

	seen := make(map[Position]bool, len(m))
	var comps [][]Position
	for _, p := range m.Positions() {
		if seen[p] || !isLand(p) {
			continue
		}
		comp := search.BFS(p, neighbours)
		for _, c := range comp {
			seen[c] = true
		}
		comps = append(comps, comp)
	}
	return comps
}
