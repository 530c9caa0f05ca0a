package rangeblaze

// internalAdd merges one (range, value) into store, preserving the sorted,
// disjoint, non-mergeable layout and the running length. The btree.Map
// backing gives floor/ceiling cursor access, so each geometric case is a
// handful of Get/Set/Delete calls on the entries inside [start, end+1].
func internalAdd[T Integer, V comparable](s *store[T, V], rng Range[T], value V) {
	if rng.isEmpty() {
		return
	}
	if rng.End > subOne(MaxValue[T]()) {
		fault("internalAdd: range end exceeds MaxValue-1")
	}

	beforeStart, before, haveBefore := s.floor(rng.Start)
	if !haveBefore || hasGap(before.end, rng.Start) {
		// No before, or a genuine gap before it.
		s.insertEntry(rng.Start, endValue[T, V]{end: rng.End, value: value})
		deleteExtra(s, rng.Start, value)
		return
	}

	if before.value == value {
		if before.end >= rng.End {
			return // before already fully covers new with the same value
		}
		// Extend before's end to reach the new range, then clean up.
		s.updateEnd(beforeStart, rng.End)
		deleteExtra(s, beforeStart, value)
		return
	}

	// Values differ. Dispatch on how [beforeStart,before.end] relates to
	// [rng.Start, rng.End].
	switch {
	case beforeStart == rng.Start:
		insertSameStartDifferentValue(s, beforeStart, before, rng, value)
	default: // beforeStart < rng.Start (floor guarantees beforeStart <= rng.Start)
		insertEarlierStartDifferentValue(s, beforeStart, before, rng, value)
	}
}

// insertSameStartDifferentValue handles the cases where before and the new
// range share a start but carry different values.
func insertSameStartDifferentValue[T Integer, V comparable](s *store[T, V], beforeStart T, before endValue[T, V], rng Range[T], value V) {
	// before-before: the entry, if any, immediately preceding beforeStart.
	// subOne saturates at MinValue, so guard explicitly rather than let
	// floor(MinValue) find beforeStart's own entry when beforeStart is
	// already the domain minimum.
	var bbStart T
	var bb endValue[T, V]
	haveBB := false
	if beforeStart > MinValue[T]() {
		bbStart, bb, haveBB = s.floor(subOne(beforeStart))
	}
	bbAbuts := haveBB && !hasGap(bb.end, beforeStart) && bb.value == value

	if before.end <= rng.End {
		// New range reaches at least as far as before; before's value has
		// no surviving territory.
		if bbAbuts {
			s.removeEntry(beforeStart)
			s.updateEnd(bbStart, rng.End)
			deleteExtra(s, bbStart, value)
		} else {
			s.setValue(beforeStart, value)
			s.updateEnd(beforeStart, rng.End)
			deleteExtra(s, beforeStart, value)
		}
		return
	}

	// before.end > rng.End, so before's value survives as a tail
	// [rng.End+1, before.end].
	tailStart := addOne(rng.End)
	if bbAbuts {
		s.removeEntry(beforeStart)
		s.updateEnd(bbStart, rng.End)
		s.insertEntry(tailStart, endValue[T, V]{end: before.end, value: before.value})
	} else {
		s.setValue(beforeStart, value)
		s.updateEnd(beforeStart, rng.End)
		s.insertEntry(tailStart, endValue[T, V]{end: before.end, value: before.value})
	}
	// No deleteExtra: the new end (rng.End) is unchanged from what it would
	// have been without this insert, so nothing beyond it can be disturbed.
}

// insertEarlierStartDifferentValue handles the cases where before starts
// strictly earlier than the new range and carries a different value.
func insertEarlierStartDifferentValue[T Integer, V comparable](s *store[T, V], beforeStart T, before endValue[T, V], rng Range[T], value V) {
	s.updateEnd(beforeStart, subOne(rng.Start))

	if before.end > rng.End {
		// Before strictly contains the new range: its tail survives past
		// the new range's end with the old value.
		s.insertEntry(rng.Start, endValue[T, V]{end: rng.End, value: value})
		s.insertEntry(addOne(rng.End), endValue[T, V]{end: before.end, value: before.value})
		return
	}

	// Before's tail is entirely consumed by the new range or by what
	// deleteExtra absorbs going forward.
	s.insertEntry(rng.Start, endValue[T, V]{end: rng.End, value: value})
	deleteExtra(s, rng.Start, value)
}

// deleteExtra restores disjointness forward from the entry anchored at
// anchorStart (whose value is value) by absorbing every entry that overlaps
// or touches-with-equal-value, splitting off the surviving tail of the last
// entry it partially absorbs.
func deleteExtra[T Integer, V comparable](s *store[T, V], anchorStart T, value V) {
	anchor, _ := s.get(anchorStart)
	end := anchor.end

	for {
		nextStart, next, ok := s.ceiling(addOne(anchorStart))
		if !ok || hasGap(end, nextStart) {
			break
		}

		switch {
		case nextStart <= end:
			// Genuine overlap/containment.
			if next.value == value || next.end <= end {
				s.removeEntry(nextStart)
				if next.end > end {
					end = next.end
				}
				continue
			}
			// next.value != value and next.end > end: its tail past end
			// keeps its own identity.
			s.removeEntry(nextStart)
			s.insertEntry(addOne(end), endValue[T, V]{end: next.end, value: next.value})
			goto done

		default: // nextStart == end+1: touching boundary, no overlap.
			if next.value != value {
				goto done
			}
			s.removeEntry(nextStart)
			if next.end > end {
				end = next.end
			}
		}
	}

done:
	s.updateEnd(anchorStart, end)
}
