package rangeblaze

import "slices"

// touchesOrOverlaps reports whether a and b share a point or are adjacent
// with no gap between them, regardless of which one starts first.
func touchesOrOverlaps[T Integer](a, b Range[T]) bool {
	lo, hi := a, b
	if b.Start < a.Start {
		lo, hi = b, a
	}
	return !hasGap(lo.End, hi.Start)
}

// rawRangeValue is one (range, value) pair as supplied by a caller before any
// normalization: ranges may be empty, overlapping, unsorted; values may
// repeat freely.
type rawRangeValue[T Integer, V comparable] struct {
	rng   Range[T]
	value V
}

// unsortedToPriorityDisjointMap is a single left-to-right scan that drops
// empty ranges, coalesces each run of touching/overlapping equal-valued
// inputs into one emitted range, assigns a monotonically increasing
// priority tag to each emitted (range, value) in scan order, and finally
// stably sorts the result by range start. The output has non-decreasing
// starts but may still overlap across clumps; the union sweep resolves
// those by priority.
func unsortedToPriorityDisjointMap[T Integer, V comparable](input []rawRangeValue[T, V]) []priorityItem[T, V] {
	var emitted []priorityItem[T, V]
	var nextPriority uint64

	var curRng Range[T]
	var curVal V
	haveCur := false

	emit := func() {
		if !haveCur {
			return
		}
		emitted = append(emitted, priorityItem[T, V]{rng: curRng, value: curVal, priority: nextPriority})
		nextPriority++
	}

	maxEnd := subOne(MaxValue[T]())
	for _, rv := range input {
		if rv.rng.isEmpty() {
			continue
		}
		if rv.rng.End > maxEnd {
			fault("unsortedToPriorityDisjointMap: range end exceeds MaxValue-1")
		}
		if !haveCur {
			curRng, curVal, haveCur = rv.rng, rv.value, true
			continue
		}
		if rv.value == curVal && touchesOrOverlaps(curRng, rv.rng) {
			if rv.rng.Start < curRng.Start {
				curRng.Start = rv.rng.Start
			}
			if rv.rng.End > curRng.End {
				curRng.End = rv.rng.End
			}
			continue
		}
		emit()
		curRng, curVal = rv.rng, rv.value
	}
	emit()

	slices.SortStableFunc(emitted, func(a, b priorityItem[T, V]) int {
		switch {
		case a.rng.Start < b.rng.Start:
			return -1
		case a.rng.Start > b.rng.Start:
			return 1
		default:
			return 0
		}
	})
	return emitted
}
