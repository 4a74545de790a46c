package pathfinder

// Queue is a FIFO backed by a growable ring buffer.
type Queue[T any] struct {
	items []T
	head  int
	size  int
}

// NewQueue creates a queue with room for capacity items before it has to grow.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{items: make([]T, capacity)}
}

func (q *Queue[T]) Len() int { return q.size }

// Push appends item to the back of the queue.
func (q *Queue[T]) Push(item T) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)%len(q.items)] = item
	q.size++
}

// Pop removes and returns the item at the front of the queue.
// The second result is false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return item, true
}

func (q *Queue[T]) grow() {
	grown := make([]T, 2*len(q.items))
	for i := 0; i < q.size; i++ {
		grown[i] = q.items[(q.head+i)%len(q.items)]
	}
	q.items = grown
	q.head = 0
}
