package rangeblaze

// internalRemove deletes rng from store, trimming or splitting whichever
// entries it overlaps. Symmetric in spirit to internalAdd (insert.go) but
// simpler: removal never has to resolve a value conflict, only carve a hole
// out of existing coverage.
func internalRemove[T Integer, V comparable](s *store[T, V], rng Range[T]) {
	if rng.isEmpty() {
		return
	}

	if beforeStart, before, ok := s.floor(rng.Start); ok && before.end >= rng.Start {
		switch {
		case beforeStart == rng.Start && before.end == rng.End:
			s.removeEntry(beforeStart)
		case beforeStart == rng.Start && before.end > rng.End:
			s.moveStart(beforeStart, addOne(rng.End))
		case beforeStart == rng.Start:
			s.removeEntry(beforeStart)
		case before.end <= rng.End:
			s.updateEnd(beforeStart, subOne(rng.Start))
		default: // beforeStart < rng.Start && before.end > rng.End
			origEnd, origVal := before.end, before.value
			s.updateEnd(beforeStart, subOne(rng.Start))
			s.insertEntry(addOne(rng.End), endValue[T, V]{end: origEnd, value: origVal})
		}
	}

	for {
		nextStart, next, ok := s.ceiling(addOne(rng.Start))
		if !ok || nextStart > rng.End {
			break
		}
		if next.end <= rng.End {
			s.removeEntry(nextStart)
			continue
		}
		s.moveStart(nextStart, addOne(rng.End))
		break
	}
}
