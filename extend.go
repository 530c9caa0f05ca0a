package rangeblaze

import "math"

// streamOverhead is the measured cost ratio between one stream-merge step
// and one internalAdd replay step. Empirical; retune if the replay path or
// the tree fanout changes materially.
const streamOverhead = 10

// shouldReplay reports whether replaying `small`'s entries one at a time
// via internalAdd into a clone of the `big` side beats a full O(a+b) stream
// merge: small*(log2(big)+1) < overhead*big+small.
func shouldReplay(small, big int) bool {
	if small == 0 {
		return true
	}
	if big == 0 {
		return false
	}
	logBig := math.Log2(float64(big)) + 1
	return float64(small)*logBig < float64(streamOverhead*big+small)
}

// replayInto applies every entry of src to dst via internalAdd, in
// ascending order. Each replayed entry wins any conflict it touches, since
// internalAdd always gives the incoming (range,value) precedence; this is
// the mechanism this package uses uniformly for "added content wins".
func replayInto[T Integer, V comparable](dst *RangeMapBlaze[T, V], src *RangeMapBlaze[T, V]) {
	src.store.ascend(func(start T, ev endValue[T, V]) bool {
		internalAdd(dst.store, Range[T]{Start: start, End: ev.end}, ev.value)
		return true
	})
}

// streamOfEntries assigns sequential priority tags (base, base+1, ...) to
// m's stored entries in ascending-start order, for use as one operand of a
// KMerge+UnionIterMap stream-merge union.
func streamOfEntries[T Integer, V comparable](m *RangeMapBlaze[T, V], base int) []priorityItem[T, V] {
	items := make([]priorityItem[T, V], 0, m.store.rangesLen())
	tag := uint64(base)
	m.store.ascend(func(start T, ev endValue[T, V]) bool {
		items = append(items, priorityItem[T, V]{rng: Range[T]{Start: start, End: ev.end}, value: ev.value, priority: tag})
		tag++
		return true
	})
	return items
}

// unionGeneric unions a and b, selecting between a full stream merge and a
// small-side internalAdd replay. aWins controls which operand's value
// survives a conflict (true for Union's left-wins rule; false for the
// Append/Extend family's added-content-wins rule).
//
// The replay strategy only accelerates the case where the *winning* operand
// happens to be the smaller one, because replaying an operand via internalAdd
// always gives the replayed values precedence, so replaying the loser would
// silently flip the conflict-resolution rule. When the winner is the larger
// operand, this falls back to the stream merge regardless of size, which is
// always correct, just not always optimally fast.
func unionGeneric[T Integer, V comparable](a, b *RangeMapBlaze[T, V], aWins bool) *RangeMapBlaze[T, V] {
	aLen, bLen := a.store.rangesLen(), b.store.rangesLen()

	if aWins && shouldReplay(aLen, bLen) {
		result := b.Clone()
		replayInto(result, a)
		return result
	}
	if !aWins && shouldReplay(bLen, aLen) {
		result := a.Clone()
		replayInto(result, b)
		return result
	}

	var aItems, bItems []priorityItem[T, V]
	if aWins {
		bItems = streamOfEntries(b, 0)
		aItems = streamOfEntries(a, bLen)
	} else {
		aItems = streamOfEntries(a, 0)
		bItems = streamOfEntries(b, aLen)
	}
	merged := NewKMerge[T, V](newSlicePriorityIter(aItems), newSlicePriorityIter(bItems))
	return IntoRangeMapBlaze[T, V](NewUnionIterMap[T, V](merged))
}
