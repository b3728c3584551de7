package astar

// item is one entry of the open set: a vertex key with its f = g + h score,
// its g score (for tie-breaking), and a monotonically increasing sequence
// number that breaks further ties in FIFO order, matching §4.5's tie-break
// rule: "ties broken by smaller g, then by insertion order (FIFO)".
type item struct {
	key string
	f   float64
	g   float64
	seq int
}

// openQueue is a min-heap of *item ordered by f asc, then g asc, then
// insertion order, mirroring the teacher dijkstra package's nodePQ
// lazy-decrease-key min-heap (push duplicates, let stale entries be
// skipped on pop rather than removed in place).
type openQueue []*item

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}

	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x interface{}) {
	*q = append(*q, x.(*item))
}

func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
