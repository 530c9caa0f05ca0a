package rangeblaze

// CheckedSortedDisjoint wraps any RangeIter and asserts, at each step, that
// the sequence is sorted by start, disjoint, and non-touching. A violation
// panics at the step that detects it; once Next returns false, it keeps
// returning false.
type CheckedSortedDisjoint[T Integer] struct {
	inner RangeIter[T]
	last  Range[T]
	have  bool
	done  bool
}

// NewCheckedSortedDisjoint wraps inner with the sorted-disjoint-non-touching
// assertion.
func NewCheckedSortedDisjoint[T Integer](inner RangeIter[T]) *CheckedSortedDisjoint[T] {
	return &CheckedSortedDisjoint[T]{inner: inner}
}

func (c *CheckedSortedDisjoint[T]) Next() (Range[T], bool) {
	if c.done {
		var zero Range[T]
		return zero, false
	}
	r, ok := c.inner.Next()
	if !ok {
		c.done = true
		var zero Range[T]
		return zero, false
	}
	if r.isEmpty() {
		fault("CheckedSortedDisjoint: empty range in a supposedly sorted-disjoint stream")
	}
	if c.have {
		if r.Start <= c.last.End {
			fault("CheckedSortedDisjoint: ranges out of order or overlapping")
		}
		if !hasGap(c.last.End, r.Start) {
			fault("CheckedSortedDisjoint: touching ranges must be merged, never adjacent")
		}
	}
	c.last = r
	c.have = true
	return r, true
}

// CheckedSortedDisjointMap is CheckedSortedDisjoint's map-shaped counterpart:
// touching ranges are only a violation when they carry equal values (they
// should have been coalesced into one range).
type CheckedSortedDisjointMap[T Integer, V comparable] struct {
	inner    RangeValueIter[T, V]
	lastRng  Range[T]
	lastVal  V
	have     bool
	done     bool
}

func NewCheckedSortedDisjointMap[T Integer, V comparable](inner RangeValueIter[T, V]) *CheckedSortedDisjointMap[T, V] {
	return &CheckedSortedDisjointMap[T, V]{inner: inner}
}

func (c *CheckedSortedDisjointMap[T, V]) Next() (Range[T], V, bool) {
	if c.done {
		var zeroR Range[T]
		var zeroV V
		return zeroR, zeroV, false
	}
	r, v, ok := c.inner.Next()
	if !ok {
		c.done = true
		var zeroR Range[T]
		var zeroV V
		return zeroR, zeroV, false
	}
	if r.isEmpty() {
		fault("CheckedSortedDisjointMap: empty range in a supposedly sorted-disjoint stream")
	}
	if c.have {
		if r.Start <= c.lastRng.End {
			fault("CheckedSortedDisjointMap: ranges out of order or overlapping")
		}
		if !hasGap(c.lastRng.End, r.Start) && c.lastVal == v {
			fault("CheckedSortedDisjointMap: touching ranges with equal values must be coalesced")
		}
	}
	c.lastRng, c.lastVal, c.have = r, v, true
	return r, v, true
}
