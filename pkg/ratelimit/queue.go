package ratelimit

// waiter is one queued admission request. admit is closed exactly once, by
// the servicer, when the waiter is granted quota.
type waiter struct {
	priority int
	seq      uint64
	admit    chan struct{}
	index    int // heap index, -1 once popped or removed
}

// waiterQueue is a priority queue over waiters: higher priority first, ties
// broken by arrival order (lower sequence number first). Implements
// container/heap.Interface.
type waiterQueue []*waiter

func (q waiterQueue) Len() int { return len(q) }

func (q waiterQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority > q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q waiterQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *waiterQueue) Push(x any) {
	w := x.(*waiter)
	w.index = len(*q)
	*q = append(*q, w)
}

func (q *waiterQueue) Pop() any {
	old := *q
	n := len(old)
	w := old[n-1]
	old[n-1] = nil
	w.index = -1
	*q = old[:n-1]
	return w
}
