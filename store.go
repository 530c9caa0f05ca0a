package rangeblaze

import "github.com/tidwall/btree"

// endValue is the payload stored per BTree entry: the range's inclusive end
// plus its value. The key half of the pair (the range's Start) is the
// BTree's own key.
type endValue[T Integer, V comparable] struct {
	end   T
	value V
}

// store is the BTree-backed mapping from range start to endValue, plus the
// precomputed running length. Every container (RangeMapBlaze directly,
// RangeSetBlaze by delegation) is a thin wrapper around one of these.
// btree.Map is used directly rather than through a generic sorted-map
// interface because the insertion engine (insert.go) needs
// Ascend/Descend-from-pivot cursor access.
type store[T Integer, V comparable] struct {
	tree *btree.Map[T, endValue[T, V]]
	len  SafeLen
}

func newStore[T Integer, V comparable]() *store[T, V] {
	return &store[T, V]{tree: btree.NewMap[T, endValue[T, V]](32)}
}

func (s *store[T, V]) clone() *store[T, V] {
	return &store[T, V]{tree: s.tree.Copy(), len: s.len}
}

func (s *store[T, V]) rangesLen() int { return s.tree.Len() }

// floor returns the entry with the greatest start <= key, if any.
func (s *store[T, V]) floor(key T) (start T, ev endValue[T, V], ok bool) {
	s.tree.Descend(key, func(k T, v endValue[T, V]) bool {
		start, ev, ok = k, v, true
		return false
	})
	return
}

// ceiling returns the entry with the smallest start >= key, if any.
func (s *store[T, V]) ceiling(key T) (start T, ev endValue[T, V], ok bool) {
	s.tree.Ascend(key, func(k T, v endValue[T, V]) bool {
		start, ev, ok = k, v, true
		return false
	})
	return
}

// insertEntry adds a brand-new entry and credits its length. Callers must
// not already hold an entry at start.
func (s *store[T, V]) insertEntry(start T, ev endValue[T, V]) {
	s.len = s.len.Add(SafeLenOfRange(start, ev.end))
	s.tree.Set(start, ev)
}

// removeEntry deletes the entry at start, if any, debiting its length.
func (s *store[T, V]) removeEntry(start T) (endValue[T, V], bool) {
	ev, ok := s.tree.Delete(start)
	if ok {
		s.len = s.len.Sub(SafeLenOfRange(start, ev.end))
	}
	return ev, ok
}

// updateEnd changes the end of the entry keyed at start, adjusting len by
// the resulting delta. The entry must already exist.
func (s *store[T, V]) updateEnd(start, newEnd T) {
	ev, _ := s.tree.Get(start)
	oldEnd := ev.end
	if newEnd == oldEnd {
		return
	}
	if newEnd > oldEnd {
		s.len = s.len.Add(SafeLenOfRange(addOne(oldEnd), newEnd))
	} else {
		s.len = s.len.Sub(SafeLenOfRange(addOne(newEnd), oldEnd))
	}
	ev.end = newEnd
	s.tree.Set(start, ev)
}

// moveStart re-keys an entry from oldStart to newStart (same end/value),
// adjusting len for the resulting shrink or growth at the head. The entry
// must already exist at oldStart and no entry may exist at newStart.
func (s *store[T, V]) moveStart(oldStart, newStart T) {
	ev, _ := s.tree.Delete(oldStart)
	switch {
	case newStart > oldStart:
		s.len = s.len.Sub(SafeLenOfRange(oldStart, subOne(newStart)))
	case newStart < oldStart:
		s.len = s.len.Add(SafeLenOfRange(newStart, subOne(oldStart)))
	}
	s.tree.Set(newStart, ev)
}

// setValue overwrites the value of the entry keyed at start without
// touching its range, hence without touching len.
func (s *store[T, V]) setValue(start T, value V) {
	ev, _ := s.tree.Get(start)
	ev.value = value
	s.tree.Set(start, ev)
}

func (s *store[T, V]) get(start T) (endValue[T, V], bool) {
	return s.tree.Get(start)
}

func (s *store[T, V]) clear() {
	s.tree = btree.NewMap[T, endValue[T, V]](32)
	s.len = SafeLen{}
}

// ascend visits entries in ascending start order, stopping early if action
// returns false.
func (s *store[T, V]) ascend(action func(start T, ev endValue[T, V]) bool) {
	s.tree.Scan(action)
}

// descend visits entries in descending start order.
func (s *store[T, V]) descend(action func(start T, ev endValue[T, V]) bool) {
	s.tree.Reverse(action)
}

func (s *store[T, V]) min() (start T, ev endValue[T, V], ok bool) {
	return s.tree.Min()
}

func (s *store[T, V]) max() (start T, ev endValue[T, V], ok bool) {
	return s.tree.Max()
}

func (s *store[T, V]) popMin() (start T, ev endValue[T, V], ok bool) {
	return s.tree.PopMin()
}

func (s *store[T, V]) popMax() (start T, ev endValue[T, V], ok bool) {
	return s.tree.PopMax()
}
