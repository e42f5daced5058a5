package heap

import (
	"github.com/heapdata/heap/order"
	"golang.org/x/exp/constraints"
)

// Ordered returns a CompareFn for any naturally ordered type.  With
// order.Asc the heap's top is the smallest element; with order.Desc
// the comparator is reversed so the top is the largest.
func Ordered[T constraints.Ordered](o order.Which) CompareFn[T] {
	cmp := func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	if o == order.Desc {
		return func(a, b T) int { return cmp(b, a) }
	}
	return cmp
}

// Reverse returns a CompareFn with the opposite sense of cmp.
func Reverse[T any](cmp CompareFn[T]) CompareFn[T] {
	return func(a, b T) int { return cmp(b, a) }
}
