package search

// visitedSet records every state admitted to a frontier during one run.
// A state is admitted at most once; with uniform step cost the first
// admission always carries the optimal cost.
type visitedSet[S comparable] map[S]struct{}

func newVisitedSet[S comparable](capacity int) visitedSet[S] {
	return make(visitedSet[S], capacity)
}

// admit marks s visited and reports whether this was its first admission.
func (v visitedSet[S]) admit(s S) bool {
	if _, seen := v[s]; seen {
		return false
	}
	v[s] = struct{}{}
	return true
}

