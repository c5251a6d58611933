package search

// entry pairs a state with its cost (edge count) from the start.
type entry[S comparable] struct {
	state S
	cost  int
}

// costQueue is a min-heap of entries ordered by cost ascending.
// Ties are popped in unspecified order.
type costQueue[S comparable] []entry[S]

// Len returns the number of entries in the heap.
func (pq costQueue[S]) Len() int { return len(pq) }

// Less orders by cost: smaller cost → higher priority.
func (pq costQueue[S]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two entries in the heap.
func (pq costQueue[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an entry[S].
func (pq *costQueue[S]) Push(x any) { *pq = append(*pq, x.(entry[S])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *costQueue[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// fifo is the breadth-first frontier.
type fifo[S comparable] []entry[S]

func (q *fifo[S]) push(s S, cost int) {
	*q = append(*q, entry[S]{state: s, cost: cost})
}

// pop removes the oldest entry. The caller checks Len first.
func (q *fifo[S]) pop() entry[S] {
	item := (*q)[0]
	*q = (*q)[1:]
	return item
}

func (q fifo[S]) Len() int { return len(q) }
