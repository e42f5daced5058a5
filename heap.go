// Package heap provides an array-backed binary heap that is generic
// over its element type and ordered by a caller-supplied comparator.
// The element at index 0 compares less than or equal to every other
// element, so draining the heap with Pop yields the elements in
// comparator order.  Descending order is obtained by reversing the
// comparator; see Ordered.
package heap

import "errors"

// ErrEmpty is returned by Peek and Pop when the heap has no elements.
var ErrEmpty = errors.New("heap is empty")

// CompareFn compares two values a and b and returns a negative number
// if a is less than b, zero if they are equal, and a positive number
// if a is greater than b.  A CompareFn must describe a total order;
// the heap breaks ties arbitrarily.
type CompareFn[T any] func(a, b T) int

// Heap is a binary min-heap with respect to its comparator.  The zero
// value is not usable; create a Heap with New or NewFromSlice.  A Heap
// owns its backing slice and is not safe for concurrent use.
type Heap[T any] struct {
	vals []T
	cmp  CompareFn[T]
}

// New creates an empty heap ordered by cmp.
func New[T any](cmp CompareFn[T]) *Heap[T] {
	return &Heap[T]{cmp: cmp}
}

// NewFromSlice creates a heap ordered by cmp from vals, taking
// ownership of the slice.  The caller must not use vals afterward.
// Construction is bottom-up and runs in O(n) time: sifting down from
// the last parent index means the many nodes near the leaves do
// little or no work while only the few near the root pay O(log n).
func NewFromSlice[T any](cmp CompareFn[T], vals []T) *Heap[T] {
	h := &Heap[T]{vals: vals, cmp: cmp}
	n := len(vals)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.vals) }

// Push adds v to the heap in O(log n) time.
func (h *Heap[T]) Push(v T) {
	h.vals = append(h.vals, v)
	h.up(len(h.vals) - 1)
}

// Peek returns the element at the top of the heap without removing
// it, or ErrEmpty if the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.vals) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.vals[0], nil
}

// Pop removes and returns the element at the top of the heap in
// O(log n) time, or returns ErrEmpty if the heap is empty.
func (h *Heap[T]) Pop() (T, error) {
	if len(h.vals) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	n := len(h.vals) - 1
	h.vals[0], h.vals[n] = h.vals[n], h.vals[0]
	h.down(0, n)
	v := h.vals[n]
	var zero T
	h.vals[n] = zero
	h.vals = h.vals[:n]
	return v, nil
}

// Valid reports whether the heap-order invariant holds at every
// index, i.e., no element compares less than its parent.  Unlike a
// drain-and-check, Valid does not mutate the heap and runs in O(n).
func (h *Heap[T]) Valid() bool {
	for i := 1; i < len(h.vals); i++ {
		if h.cmp(h.vals[(i-1)/2], h.vals[i]) > 0 {
			return false
		}
	}
	return true
}

func (h *Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || h.cmp(h.vals[j], h.vals[i]) >= 0 {
			break
		}
		h.vals[i], h.vals[j] = h.vals[j], h.vals[i]
		j = i
	}
}

func (h *Heap[T]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.cmp(h.vals[j2], h.vals[j1]) < 0 {
			j = j2 // = 2*i + 2  // right child
		}
		if h.cmp(h.vals[j], h.vals[i]) >= 0 {
			break
		}
		h.vals[i], h.vals[j] = h.vals[j], h.vals[i]
		i = j
	}
	return i > i0
}
