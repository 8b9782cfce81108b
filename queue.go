package cssengine

// queue is a ring buffer implementation of a fixed size queue.
//
// This is an internal implementation aimed at queueing peeks into the token
// stream. Method intentionally panic when misused.
type queue[T any] struct {
	vals  []T
	start int
	n     int
}

// newQueue creates a queue with a max of size elements. Any attempt to push
// onto a full queue will panic.
func newQueue[T any](size int) *queue[T] {
	return &queue[T]{vals: make([]T, size)}
}

// get returns the element n positions into the queue. get panics if there
// aren't enough elements to satisfy the request.
func (q *queue[T]) get(n int) T {
	if n >= q.n {
		panic("queue: out of index lookup")
	}
	return q.vals[q.index(n)]
}

// index returns the slot of the given offset, performing the ring buffer
// logic.
//
//	[_, x, _, _] start = 1, len = 4
//	[_, x, y, _] n = 1, y = (1 + 1) % 4 = 2
//	[y, x, _, _] n = 3, y = (1 + 3) % 4 = 0
func (q *queue[T]) index(n int) int {
	return (q.start + n) % len(q.vals)
}

// push enqueues an element. It panics if the queue is full.
func (q *queue[T]) push(v T) {
	if q.n == len(q.vals) {
		panic("queue: too many elements added to queue")
	}
	q.vals[q.index(q.n)] = v
	q.n++
}

// pop dequeues an element. It panics if the queue is empty.
func (q *queue[T]) pop() T {
	if q.n == 0 {
		panic("queue: pop from an empty queue")
	}
	v := q.vals[q.start]
	q.start = q.index(1)
	q.n--
	return v
}

func (q *queue[T]) len() int {
	return q.n
}
