package heap

// Drain removes every element from the heap and returns them in
// comparator order.  The heap is empty afterward.
func (h *Heap[T]) Drain() []T {
	out := make([]T, 0, len(h.vals))
	for len(h.vals) > 0 {
		v, _ := h.Pop()
		out = append(out, v)
	}
	return out
}

// Sort heap-sorts vals according to cmp, taking ownership of the
// slice.  It runs in O(n log n) time: O(n) bottom-up construction
// followed by n extractions.
func Sort[T any](cmp CompareFn[T], vals []T) []T {
	return NewFromSlice(cmp, vals).Drain()
}
