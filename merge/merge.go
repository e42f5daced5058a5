// Package merge interleaves multiple sorted streams into a single
// stream with the same order.
package merge

import "github.com/heapdata/heap"

// A Stream produces values one at a time.  Next returns false when
// the stream is exhausted.  Streams handed to New must already be
// ordered per the merge comparator or the merged order is undefined.
type Stream[T any] interface {
	Next() (T, bool)
}

// Slice returns a Stream that yields vals front to back.
func Slice[T any](vals []T) Stream[T] {
	return &sliceStream[T]{vals}
}

type sliceStream[T any] struct {
	vals []T
}

func (s *sliceStream[T]) Next() (T, bool) {
	if len(s.vals) == 0 {
		var zero T
		return zero, false
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v, true
}

type head[T any] struct {
	val    T
	stream Stream[T]
}

// Merger merges sorted streams by keeping each stream's current head
// in a heap and repeatedly emitting the smallest head.  Merging k
// streams of n total values costs O(n log k).  A Merger is
// single-threaded; it pulls from one stream at a time.
type Merger[T any] struct {
	heads *heap.Heap[*head[T]]
}

// New creates a Merger over streams ordered by cmp.  Empty streams
// are dropped up front.
func New[T any](cmp heap.CompareFn[T], streams ...Stream[T]) *Merger[T] {
	var heads []*head[T]
	for _, s := range streams {
		if v, ok := s.Next(); ok {
			heads = append(heads, &head[T]{v, s})
		}
	}
	byHead := func(a, b *head[T]) int { return cmp(a.val, b.val) }
	return &Merger[T]{heap.NewFromSlice(byHead, heads)}
}

// Next returns the next value in the merged order, or false when
// every stream is exhausted.
func (m *Merger[T]) Next() (T, bool) {
	h, err := m.heads.Pop()
	if err != nil {
		var zero T
		return zero, false
	}
	v := h.val
	if next, ok := h.stream.Next(); ok {
		h.val = next
		m.heads.Push(h)
	}
	return v, true
}
