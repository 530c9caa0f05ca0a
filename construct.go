package rangeblaze

// fromRawPriorityWins runs the full bulk-construction pipeline: normalize
// raw, possibly-overlapping (range,value) pairs into priority-tagged
// sorted-starts, resolve overlaps by union, and materialize the result with
// left-to-right precedence. Priorities increase with scan order while
// UnionIterMap treats the larger tag as the winner, so earliest-wins is
// obtained by reversing the tags once the emission order is fixed.
func fromRawPriorityWins[T Integer, V comparable](raw []rawRangeValue[T, V]) *RangeMapBlaze[T, V] {
	items := unsortedToPriorityDisjointMap(raw)
	invertPriorities(items)
	it := NewUnionIterMap[T, V](newSlicePriorityIter(items))
	return IntoRangeMapBlaze[T, V](it)
}

// invertPriorities flips priority tags so that the earliest-scanned item
// carries the highest tag (and therefore wins ties in UnionIterMap, whose
// higherPriority picks the larger tag). unsortedToPriorityDisjointMap
// assigns tags in increasing scan order (0, 1, 2, ...); this reverses that
// assignment in place without needing a second pass over the raw input.
func invertPriorities[T Integer, V comparable](items []priorityItem[T, V]) {
	n := uint64(len(items))
	for i := range items {
		items[i].priority = n - 1 - items[i].priority
	}
}

// fromRawLastWins is the "added content wins" counterpart used by the
// Extend and Append family: increasing scan-order tags already make later
// input win in UnionIterMap, so no inversion is needed. This is
// just fromRawPriorityWins minus the invertPriorities step, kept as a
// separate named entry point so call sites read as documentation of which
// precedence rule they're invoking.
func fromRawLastWins[T Integer, V comparable](raw []rawRangeValue[T, V]) *RangeMapBlaze[T, V] {
	items := unsortedToPriorityDisjointMap(raw)
	it := NewUnionIterMap[T, V](newSlicePriorityIter(items))
	return IntoRangeMapBlaze[T, V](it)
}
