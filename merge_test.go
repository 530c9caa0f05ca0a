package rangeblaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pi[T Integer, V comparable](start, end T, v V, prio uint64) priorityItem[T, V] {
	return priorityItem[T, V]{rng: Range[T]{Start: start, End: end}, value: v, priority: prio}
}

func TestKMergeOrdersByStart(t *testing.T) {
	t.Parallel()
	a := newSlicePriorityIter([]priorityItem[int32, string]{
		pi[int32](1, 2, "a", 0),
		pi[int32](10, 12, "a", 1),
	})
	b := newSlicePriorityIter([]priorityItem[int32, string]{
		pi[int32](0, 0, "b", 2),
		pi[int32](5, 6, "b", 3),
		pi[int32](20, 21, "b", 4),
	})
	c := newSlicePriorityIter([]priorityItem[int32, string]{
		pi[int32](7, 8, "c", 5),
	})

	merged := drainPriorityIter[int32, string](NewKMerge(a, b, c))
	require.Len(t, merged, 6)
	starts := make([]int32, len(merged))
	for i, item := range merged {
		starts[i] = item.rng.Start
	}
	assert.Equal(t, []int32{0, 1, 5, 7, 10, 20}, starts)
}

func TestKMergeKeepsOverlaps(t *testing.T) {
	t.Parallel()
	// The merge only interleaves by start; resolving overlaps is the union
	// sweep's job.
	a := newSlicePriorityIter([]priorityItem[int32, string]{pi[int32](1, 10, "a", 0)})
	b := newSlicePriorityIter([]priorityItem[int32, string]{pi[int32](5, 6, "b", 1)})
	merged := drainPriorityIter[int32, string](Merge[int32, string](a, b))
	require.Len(t, merged, 2)
	assert.Equal(t, "a", merged[0].value)
	assert.Equal(t, "b", merged[1].value)
}

func TestKMergeEmptySources(t *testing.T) {
	t.Parallel()
	m := NewKMerge[int32, string](
		newSlicePriorityIter[int32, string](nil),
		newSlicePriorityIter[int32, string](nil),
	)
	_, ok := m.Next()
	assert.False(t, ok)
	_, ok = m.Next()
	assert.False(t, ok, "a drained merge stays drained")
}
