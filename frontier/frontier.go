package frontier

import (
	"container/heap"
	"errors"
)

// ErrEmpty is the panic value raised by Pop on an empty container.
var ErrEmpty = errors.New("frontier: pop from empty container")

// Frontier is the common open-list contract.
type Frontier[T any] interface {
	Push(item T)
	Pop() T
	Empty() bool
	Len() int
}

// Stack is a LIFO container: Pop returns the most recently pushed item.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

// Push adds item on top of the stack.
func (s *Stack[T]) Push(item T) { s.items = append(s.items, item) }

// Pop removes and returns the top item. Panics with ErrEmpty if the stack is empty.
func (s *Stack[T]) Pop() T {
	n := len(s.items)
	if n == 0 {
		panic(ErrEmpty)
	}
	item := s.items[n-1]
	var zero T
	s.items[n-1] = zero // drop the reference so popped nodes can be collected
	s.items = s.items[:n-1]

	return item
}

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Len returns the number of items.
func (s *Stack[T]) Len() int { return len(s.items) }

// Queue is a FIFO container: Pop returns the earliest pushed item still present.
//
// Items live in a slice with a moving head index; the consumed prefix is
// compacted away once it outgrows the live part, keeping Pop O(1) amortized.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// Push appends item to the back of the queue.
func (q *Queue[T]) Push(item T) { q.items = append(q.items, item) }

// Pop removes and returns the front item. Panics with ErrEmpty if the queue is empty.
func (q *Queue[T]) Pop() T {
	if q.head == len(q.items) {
		panic(ErrEmpty)
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.head == len(q.items) }

// Len returns the number of items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Priority is a min-priority container ordered by a caller-supplied key.
// Equal keys pop in insertion order.
type Priority[T any] struct {
	h   entryHeap[T]
	key func(T) float64
	seq uint64
}

// NewPriority returns an empty Priority queue ordered by key (smallest first).
func NewPriority[T any](key func(T) float64) *Priority[T] {
	return &Priority[T]{key: key}
}

// Push adds item with priority key(item). Complexity: O(log n).
func (p *Priority[T]) Push(item T) {
	heap.Push(&p.h, entry[T]{item: item, key: p.key(item), seq: p.seq})
	p.seq++
}

// Pop removes and returns the item with the smallest key; among equal keys the
// earliest pushed. Panics with ErrEmpty if the queue is empty. Complexity: O(log n).
func (p *Priority[T]) Pop() T {
	if len(p.h) == 0 {
		panic(ErrEmpty)
	}

	return heap.Pop(&p.h).(entry[T]).item
}

// Empty reports whether the queue holds no items.
func (p *Priority[T]) Empty() bool { return len(p.h) == 0 }

// Len returns the number of items.
func (p *Priority[T]) Len() int { return len(p.h) }

// entry is a heap slot: the item, its cached key and its push sequence number.
type entry[T any] struct {
	item T
	key  float64
	seq  uint64
}

// entryHeap implements heap.Interface ordered by (key, seq) ascending.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return item
}
