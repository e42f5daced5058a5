// Package top provides a collector that retains only the N
// highest-priority values it is given, discarding the rest as soon as
// they are known not to qualify.
package top

import "github.com/heapdata/heap"

const DefaultLimit = 100

// Top accumulates values one at a time and keeps the limit largest
// according to its comparator.  The kept values live in a heap whose
// root is the weakest survivor, so each candidate is either discarded
// with a single comparison or admitted in O(log limit).
type Top[T any] struct {
	limit int
	cmp   heap.CompareFn[T]
	vals  *heap.Heap[T]
}

// New creates a Top that keeps the limit largest values per cmp.  A
// limit of zero means DefaultLimit.
func New[T any](cmp heap.CompareFn[T], limit int) *Top[T] {
	if limit == 0 {
		limit = DefaultLimit
	}
	return &Top[T]{
		limit: limit,
		cmp:   cmp,
		vals:  heap.New(cmp),
	}
}

// Len returns the number of values currently kept.
func (t *Top[T]) Len() int { return t.vals.Len() }

// Push offers v to the collector.
func (t *Top[T]) Push(v T) {
	if t.vals.Len() < t.limit {
		t.vals.Push(v)
		return
	}
	if weakest, _ := t.vals.Peek(); t.cmp(weakest, v) < 0 {
		t.vals.Push(v)
		t.vals.Pop()
	}
}

// Values returns the kept values largest first and resets the
// collector.
func (t *Top[T]) Values() []T {
	out := make([]T, t.vals.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = t.vals.Pop()
	}
	return out
}
