// Package fareheap holds an array-backed binary min-heap of flights keyed on fare.
package fareheap

import "github.com/Domenick1991/farecompare/internal/domain"

// MinHeap keeps heap[parent(i)].Fare <= heap[i].Fare for every non-root i.
// Order between equal fares is unspecified.
type MinHeap struct {
	items []domain.Flight
}

func New(capacity int) *MinHeap {
	if capacity < 0 {
		capacity = 0
	}
	return &MinHeap{items: make([]domain.Flight, 0, capacity)}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (h *MinHeap) Len() int      { return len(h.items) }
func (h *MinHeap) IsEmpty() bool { return len(h.items) == 0 }

func (h *MinHeap) Insert(f domain.Flight) {
	h.items = append(h.items, f)
	h.siftUp(len(h.items) - 1)
}

// ExtractMin removes the cheapest flight. ok is false when the heap is empty.
func (h *MinHeap) ExtractMin() (f domain.Flight, ok bool) {
	n := len(h.items)
	if n == 0 {
		return domain.Flight{}, false
	}

	top := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]
	h.items[last] = domain.Flight{}
	h.items = h.items[:last]
	if last > 1 {
		h.siftDown(0)
	}
	return top, true
}

// Drain empties the heap, returning flights in ascending fare order.
func (h *MinHeap) Drain() []domain.Flight {
	out := make([]domain.Flight, 0, len(h.items))
	for {
		f, ok := h.ExtractMin()
		if !ok {
			return out
		}
		out = append(out, f)
	}
}

func (h *MinHeap) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if h.items[p].Fare <= h.items[i].Fare {
			return
		}
		h.items[p], h.items[i] = h.items[i], h.items[p]
		i = p
	}
}

func (h *MinHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		if l := left(i); l < n && h.items[l].Fare < h.items[smallest].Fare {
			smallest = l
		}
		if r := right(i); r < n && h.items[r].Fare < h.items[smallest].Fare {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
