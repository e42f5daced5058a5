package top_test

import (
	"math/rand"
	"testing"

	"github.com/heapdata/heap"
	"github.com/heapdata/heap/order"
	"github.com/heapdata/heap/top"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTop(t *testing.T) {
	collector := top.New(heap.Ordered[int](order.Asc), 3)
	for _, v := range []int{4, 1, 3, 2, 16, 9, 10, 14, 8, 7} {
		collector.Push(v)
	}
	assert.Equal(t, []int{16, 14, 10}, collector.Values())
}

func TestFewerThanLimit(t *testing.T) {
	collector := top.New(heap.Ordered[int](order.Asc), 10)
	collector.Push(2)
	collector.Push(5)
	assert.Equal(t, []int{5, 2}, collector.Values())
}

func TestDefaultLimit(t *testing.T) {
	collector := top.New(heap.Ordered[int](order.Asc), 0)
	for i := 0; i < 1000; i++ {
		collector.Push(i)
	}
	assert.Equal(t, top.DefaultLimit, collector.Len())
	vals := collector.Values()
	require.Len(t, vals, top.DefaultLimit)
	assert.Equal(t, 999, vals[0])
	assert.Equal(t, 999-top.DefaultLimit+1, vals[len(vals)-1])
}

func TestValuesResets(t *testing.T) {
	collector := top.New(heap.Ordered[int](order.Asc), 2)
	collector.Push(1)
	collector.Push(2)
	assert.Equal(t, []int{2, 1}, collector.Values())
	assert.Equal(t, 0, collector.Len())
	collector.Push(3)
	assert.Equal(t, []int{3}, collector.Values())
}

func TestRandomAgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	const limit = 25
	collector := top.New(heap.Ordered[int](order.Asc), limit)
	vals := make([]int, 500)
	for i := range vals {
		vals[i] = r.Intn(1000)
		collector.Push(vals[i])
	}
	expected := heap.Sort(heap.Ordered[int](order.Desc), vals)[:limit]
	assert.Equal(t, expected, collector.Values())
}
