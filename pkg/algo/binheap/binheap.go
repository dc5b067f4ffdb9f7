// Package binheap implements array-backed binary heaps: a generic min/max
// heap over ordered element types and a priority queue pairing values with
// explicit priorities.
package binheap

import "golang.org/x/exp/constraints"

// Kind selects the heap order.
type Kind int

const (
	Min Kind = iota
	Max
)

type Heap[T constraints.Ordered] struct {
	items []T
	kind  Kind
}

func New[T constraints.Ordered](kind Kind) *Heap[T] {
	return &Heap[T]{kind: kind}
}

// FromSlice heapifies a copy of items in O(n).
func FromSlice[T constraints.Ordered](kind Kind, items []T) *Heap[T] {
	h := &Heap[T]{
		items: append([]T(nil), items...),
		kind:  kind,
	}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

func (h *Heap[T]) Len() int { return len(h.items) }

func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

func (h *Heap[T]) Clear() { h.items = h.items[:0] }

func (h *Heap[T]) Kind() Kind { return h.kind }

// before reports whether a should sit above b.
func (h *Heap[T]) before(a, b T) bool {
	if h.kind == Min {
		return a < b
	}
	return a > b
}

func (h *Heap[T]) Push(item T) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the root. False when empty.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return root, true
}

// Peek returns the root without removing it. False when empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		top := i
		if l := 2*i + 1; l < n && h.before(h.items[l], h.items[top]) {
			top = l
		}
		if r := 2*i + 2; r < n && h.before(h.items[r], h.items[top]) {
			top = r
		}
		if top == i {
			return
		}
		h.items[i], h.items[top] = h.items[top], h.items[i]
		i = top
	}
}

// Valid checks the heap property over the whole array. Meant for tests.
func (h *Heap[T]) Valid() bool {
	for i := 1; i < len(h.items); i++ {
		parent := (i - 1) / 2
		if h.before(h.items[i], h.items[parent]) {
			return false
		}
	}
	return true
}

// SortAsc returns a sorted ascending copy of items via a min-heap.
func SortAsc[T constraints.Ordered](items []T) []T {
	h := FromSlice(Min, items)
	out := make([]T, 0, len(items))
	for {
		v, ok := h.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// SortDesc returns a sorted descending copy of items via a max-heap.
func SortDesc[T constraints.Ordered](items []T) []T {
	h := FromSlice(Max, items)
	out := make([]T, 0, len(items))
	for {
		v, ok := h.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// PQItem is a queue element: an opaque value with an ordering priority.
type PQItem[V any, P constraints.Ordered] struct {
	Value    V
	Priority P
}

// PriorityQueue pops the lowest priority first. Ties break arbitrarily.
type PriorityQueue[V any, P constraints.Ordered] struct {
	items []PQItem[V, P]
}

func NewPriorityQueue[V any, P constraints.Ordered]() *PriorityQueue[V, P] {
	return &PriorityQueue[V, P]{}
}

func (q *PriorityQueue[V, P]) Len() int { return len(q.items) }

func (q *PriorityQueue[V, P]) IsEmpty() bool { return len(q.items) == 0 }

func (q *PriorityQueue[V, P]) Clear() { q.items = q.items[:0] }

func (q *PriorityQueue[V, P]) Push(value V, priority P) {
	q.items = append(q.items, PQItem[V, P]{Value: value, Priority: priority})
	i := len(q.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if q.items[i].Priority >= q.items[parent].Priority {
			return
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// Pop removes and returns the element with the smallest priority.
func (q *PriorityQueue[V, P]) Pop() (V, P, bool) {
	if len(q.items) == 0 {
		var zv V
		var zp P
		return zv, zp, false
	}
	root := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items = q.items[:last]

	i, n := 0, len(q.items)
	for {
		top := i
		if l := 2*i + 1; l < n && q.items[l].Priority < q.items[top].Priority {
			top = l
		}
		if r := 2*i + 2; r < n && q.items[r].Priority < q.items[top].Priority {
			top = r
		}
		if top == i {
			break
		}
		q.items[i], q.items[top] = q.items[top], q.items[i]
		i = top
	}
	return root.Value, root.Priority, true
}

// Peek returns the element with the smallest priority without removing it.
func (q *PriorityQueue[V, P]) Peek() (V, P, bool) {
	if len(q.items) == 0 {
		var zv V
		var zp P
		return zv, zp, false
	}
	return q.items[0].Value, q.items[0].Priority, true
}
