package rangeblaze

// IntoRangeSetBlaze sinks a sorted-disjoint range stream into a fresh
// RangeSetBlaze, materializing the BTree directly from already-disjoint
// ranges rather than replaying each one through internalAdd. Touching
// ranges from the stream are coalesced here so the stored layout never
// carries a mergeable pair.
func IntoRangeSetBlaze[T Integer](it RangeIter[T]) *RangeSetBlaze[T] {
	s := newStore[T, struct{}]()
	var pend Range[T]
	havePend := false
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		if havePend && !hasGap(pend.End, r.Start) {
			pend.End = r.End
			continue
		}
		if havePend {
			s.insertEntry(pend.Start, endValue[T, struct{}]{end: pend.End})
		}
		pend, havePend = r, true
	}
	if havePend {
		s.insertEntry(pend.Start, endValue[T, struct{}]{end: pend.End})
	}
	return &RangeSetBlaze[T]{m: &RangeMapBlaze[T, struct{}]{store: s}}
}

// IntoRangeMapBlaze sinks a sorted-disjoint map stream into a fresh
// RangeMapBlaze, coalescing touching equal-value ranges on the way in.
func IntoRangeMapBlaze[T Integer, V comparable](it RangeValueIter[T, V]) *RangeMapBlaze[T, V] {
	s := newStore[T, V]()
	var pendR Range[T]
	var pendV V
	havePend := false
	for {
		r, v, ok := it.Next()
		if !ok {
			break
		}
		if havePend && pendV == v && !hasGap(pendR.End, r.Start) {
			pendR.End = r.End
			continue
		}
		if havePend {
			s.insertEntry(pendR.Start, endValue[T, V]{end: pendR.End, value: pendV})
		}
		pendR, pendV, havePend = r, v, true
	}
	if havePend {
		s.insertEntry(pendR.Start, endValue[T, V]{end: pendR.End, value: pendV})
	}
	return &RangeMapBlaze[T, V]{store: s}
}
