package rangeblaze

import (
	"fmt"
	"iter"
	"strings"
)

// RangeMapBlaze is an ordered mapping from integer keys to comparable
// values, stored as a minimal list of sorted, disjoint inclusive
// key-ranges; adjacent ranges carrying equal values are always coalesced
// into one. Not safe for concurrent mutation; concurrent readers are fine
// as long as nothing is mutating.
type RangeMapBlaze[T Integer, V comparable] struct {
	store *store[T, V]
}

// NewRangeMapBlaze returns an empty map.
func NewRangeMapBlaze[T Integer, V comparable]() *RangeMapBlaze[T, V] {
	return &RangeMapBlaze[T, V]{store: newStore[T, V]()}
}

// RangeValue is one (range, value) input pair as supplied to the bulk
// constructors and Extend family.
type RangeValue[T Integer, V comparable] struct {
	Range Range[T]
	Value V
}

// KeyValue is one (key, value) input pair, the point-insertion analogue of
// RangeValue.
type KeyValue[T Integer, V comparable] struct {
	Key   T
	Value V
}

func toRaw[T Integer, V comparable](pairs []RangeValue[T, V]) []rawRangeValue[T, V] {
	raw := make([]rawRangeValue[T, V], len(pairs))
	for i, p := range pairs {
		raw[i] = rawRangeValue[T, V]{rng: p.Range, value: p.Value}
	}
	return raw
}

func pointsToRaw[T Integer, V comparable](pairs []KeyValue[T, V]) []rawRangeValue[T, V] {
	raw := make([]rawRangeValue[T, V], len(pairs))
	for i, p := range pairs {
		raw[i] = rawRangeValue[T, V]{rng: Range[T]{Start: p.Key, End: p.Key}, value: p.Value}
	}
	return raw
}

// FromKeyValues builds a map from (key,value) pairs. Duplicates and
// out-of-order keys are fine; on conflicts the earliest pair wins.
func FromKeyValues[T Integer, V comparable](pairs ...KeyValue[T, V]) *RangeMapBlaze[T, V] {
	return fromRawPriorityWins(pointsToRaw(pairs))
}

// FromRangeValues builds a map from (range,value) pairs; ranges may be
// empty, overlapping, or unsorted. Earliest pair wins on conflict.
func FromRangeValues[T Integer, V comparable](pairs ...RangeValue[T, V]) *RangeMapBlaze[T, V] {
	return fromRawPriorityWins(toRaw(pairs))
}

// FromSortedDisjointMap materializes an already sorted-disjoint map stream
// directly, skipping the normalization pass.
func FromSortedDisjointMap[T Integer, V comparable](it RangeValueIter[T, V]) *RangeMapBlaze[T, V] {
	return IntoRangeMapBlaze[T, V](it)
}

// --- Queries ---

// Len returns the total number of keys mapped, as a SafeLen since it may
// exceed any fixed-width unsigned integer for a full-domain map.
func (m *RangeMapBlaze[T, V]) Len() SafeLen { return m.store.len }

// IsEmpty reports whether the map has no entries.
func (m *RangeMapBlaze[T, V]) IsEmpty() bool { return m.store.len.IsZero() }

// RangesLen returns the number of stored ranges (clumps), not keys.
func (m *RangeMapBlaze[T, V]) RangesLen() int { return m.store.rangesLen() }

// ContainsKey reports whether k is mapped.
func (m *RangeMapBlaze[T, V]) ContainsKey(k T) bool {
	_, ok := m.Get(k)
	return ok
}

// Get returns the value mapped to k, if any.
func (m *RangeMapBlaze[T, V]) Get(k T) (V, bool) {
	if _, ev, ok := m.store.floor(k); ok && ev.end >= k {
		return ev.value, true
	}
	var zero V
	return zero, false
}

// MustGet returns the value mapped to k, panicking if k is absent, for
// callers who treat a missing key as a programmer error instead of using
// the comma-ok form.
func (m *RangeMapBlaze[T, V]) MustGet(k T) V {
	v, ok := m.Get(k)
	if !ok {
		fault(fmt.Sprintf("MustGet: key %v not present", k))
	}
	return v
}

// GetKeyValue returns the covering range and value for k, if any.
func (m *RangeMapBlaze[T, V]) GetKeyValue(k T) (Range[T], V, bool) {
	start, ev, ok := m.store.floor(k)
	if !ok || ev.end < k {
		var zeroR Range[T]
		var zeroV V
		return zeroR, zeroV, false
	}
	return Range[T]{Start: start, End: ev.end}, ev.value, true
}

// FirstKeyValue returns the covering range and value of the smallest key.
func (m *RangeMapBlaze[T, V]) FirstKeyValue() (Range[T], V, bool) {
	start, ev, ok := m.store.min()
	if !ok {
		var zeroR Range[T]
		var zeroV V
		return zeroR, zeroV, false
	}
	return Range[T]{Start: start, End: ev.end}, ev.value, true
}

// LastKeyValue returns the covering range and value of the largest key.
func (m *RangeMapBlaze[T, V]) LastKeyValue() (Range[T], V, bool) {
	start, ev, ok := m.store.max()
	if !ok {
		var zeroR Range[T]
		var zeroV V
		return zeroR, zeroV, false
	}
	return Range[T]{Start: start, End: ev.end}, ev.value, true
}

// --- Iteration ---

// rangeCursor is the store-backed RangeValueIter used to feed this map's
// entries into the stream algebra.
type rangeCursor[T Integer, V comparable] struct {
	items []sliceRangeValueItem[T, V]
	pos   int
}

func (c *rangeCursor[T, V]) Next() (Range[T], V, bool) {
	if c.pos >= len(c.items) {
		var zeroR Range[T]
		var zeroV V
		return zeroR, zeroV, false
	}
	item := c.items[c.pos]
	c.pos++
	return item.rng, item.value, true
}

// Ranges returns a pull-style cursor over this map's stored (range,value)
// entries in ascending-start order, the SortedDisjointMap producer every
// algebra operator in this package consumes.
func (m *RangeMapBlaze[T, V]) Ranges() RangeValueIter[T, V] {
	var items []sliceRangeValueItem[T, V]
	m.store.ascend(func(start T, ev endValue[T, V]) bool {
		items = append(items, sliceRangeValueItem[T, V]{rng: Range[T]{Start: start, End: ev.end}, value: ev.value})
		return true
	})
	return &rangeCursor[T, V]{items: items}
}

// KeyRanges returns this map's key coverage as a plain SortedDisjoint range
// stream, coalescing any touching different-value entries, the set-shaped
// view used internally as a mask by Intersection/Difference/Complement.
func (m *RangeMapBlaze[T, V]) KeyRanges() RangeIter[T] {
	return NewUnionIter[T](&dropValueIter[T, V]{inner: m.Ranges()})
}

type dropValueIter[T Integer, V comparable] struct {
	inner RangeValueIter[T, V]
}

func (d *dropValueIter[T, V]) Next() (Range[T], bool) {
	r, _, ok := d.inner.Next()
	return r, ok
}

// RangeValuesSeq returns a lazy sequence of (range,value) pairs.
func (m *RangeMapBlaze[T, V]) RangeValuesSeq() iter.Seq2[Range[T], V] {
	return func(yield func(Range[T], V) bool) {
		m.store.ascend(func(start T, ev endValue[T, V]) bool {
			return yield(Range[T]{Start: start, End: ev.end}, ev.value)
		})
	}
}

// Seq returns a lazy sequence over every individual (key,value) pair,
// expanding each stored range. O(len) to fully drain.
func (m *RangeMapBlaze[T, V]) Seq() iter.Seq2[T, V] {
	return func(yield func(T, V) bool) {
		m.store.ascend(func(start T, ev endValue[T, V]) bool {
			for k := start; ; k++ {
				if !yield(k, ev.value) {
					return false
				}
				if k == ev.end {
					break
				}
			}
			return true
		})
	}
}

// ReversedSeq returns a lazy sequence over every individual (key,value)
// pair in descending key order.
func (m *RangeMapBlaze[T, V]) ReversedSeq() iter.Seq2[T, V] {
	return func(yield func(T, V) bool) {
		m.store.descend(func(start T, ev endValue[T, V]) bool {
			for k := ev.end; ; k-- {
				if !yield(k, ev.value) {
					return false
				}
				if k == start {
					break
				}
			}
			return true
		})
	}
}

// Keys materializes every individual key in ascending order.
func (m *RangeMapBlaze[T, V]) Keys() []T {
	var out []T
	for k := range m.Seq() {
		out = append(out, k)
	}
	return out
}

// Values materializes every individual value in key-ascending order.
func (m *RangeMapBlaze[T, V]) Values() []V {
	var out []V
	for _, v := range m.Seq() {
		out = append(out, v)
	}
	return out
}

// --- Mutation ---

// Insert maps k to v, overwriting any previous value.
func (m *RangeMapBlaze[T, V]) Insert(k T, v V) {
	internalAdd(m.store, Range[T]{Start: k, End: k}, v)
}

// RangesInsert merges (rng,v) into the map; the added content overwrites
// any keys it overlaps.
func (m *RangeMapBlaze[T, V]) RangesInsert(rng Range[T], v V) {
	internalAdd(m.store, rng, v)
}

// Remove deletes k, if present, returning its value.
func (m *RangeMapBlaze[T, V]) Remove(k T) (V, bool) {
	v, ok := m.Get(k)
	if !ok {
		var zero V
		return zero, false
	}
	internalRemove(m.store, Range[T]{Start: k, End: k})
	return v, true
}

// RangesRemove deletes every key in rng.
func (m *RangeMapBlaze[T, V]) RangesRemove(rng Range[T]) {
	internalRemove(m.store, rng)
}

// Clear removes every entry.
func (m *RangeMapBlaze[T, V]) Clear() { m.store.clear() }

// PopFirst removes and returns the smallest key and its value.
func (m *RangeMapBlaze[T, V]) PopFirst() (T, V, bool) {
	start, ev, ok := m.store.min()
	if !ok {
		var zeroT T
		var zeroV V
		return zeroT, zeroV, false
	}
	if start == ev.end {
		m.store.removeEntry(start)
	} else {
		m.store.moveStart(start, addOne(start))
	}
	return start, ev.value, true
}

// PopLast removes and returns the largest key and its value.
func (m *RangeMapBlaze[T, V]) PopLast() (T, V, bool) {
	start, ev, ok := m.store.max()
	if !ok {
		var zeroT T
		var zeroV V
		return zeroT, zeroV, false
	}
	if start == ev.end {
		m.store.removeEntry(start)
	} else {
		m.store.updateEnd(start, subOne(ev.end))
	}
	return ev.end, ev.value, true
}

// SplitOff removes every key >= at from m and returns them as a new map.
func (m *RangeMapBlaze[T, V]) SplitOff(at T) *RangeMapBlaze[T, V] {
	out := NewRangeMapBlaze[T, V]()
	var movedStarts []T
	m.store.ascend(func(start T, ev endValue[T, V]) bool {
		if ev.end >= at {
			movedStarts = append(movedStarts, start)
		}
		return true
	})
	for _, start := range movedStarts {
		ev, _ := m.store.get(start)
		if start < at {
			// This entry straddles the split point: keep [start,at-1] in m,
			// move [at,ev.end] to out.
			m.store.updateEnd(start, subOne(at))
			out.store.insertEntry(at, endValue[T, V]{end: ev.end, value: ev.value})
			continue
		}
		m.store.removeEntry(start)
		out.store.insertEntry(start, ev)
	}
	return out
}

// Retain keeps only entries whose (range,value) satisfies keep, rebuilding
// the map from the surviving entries.
func (m *RangeMapBlaze[T, V]) Retain(keep func(rng Range[T], v V) bool) {
	var survivors []rawRangeValue[T, V]
	m.store.ascend(func(start T, ev endValue[T, V]) bool {
		r := Range[T]{Start: start, End: ev.end}
		if keep(r, ev.value) {
			survivors = append(survivors, rawRangeValue[T, V]{rng: r, value: ev.value})
		}
		return true
	})
	*m = *fromRawLastWins(survivors)
}

// Append drains other into m, destructively emptying other. Added content
// (other's) wins on conflict, and the merge uses the small-side-replay
// heuristic when it applies.
func (m *RangeMapBlaze[T, V]) Append(other *RangeMapBlaze[T, V]) {
	merged := unionGeneric(m, other, false)
	*m = *merged
	other.Clear()
}

// Extend merges (range,value) pairs into m; added content wins on conflict.
func (m *RangeMapBlaze[T, V]) Extend(pairs ...RangeValue[T, V]) {
	addition := fromRawLastWins(toRaw(pairs))
	merged := unionGeneric(m, addition, false)
	*m = *merged
}

// ExtendSimple is Extend's point-insertion counterpart: (key,value) pairs
// instead of (range,value) pairs.
func (m *RangeMapBlaze[T, V]) ExtendSimple(pairs ...KeyValue[T, V]) {
	addition := fromRawLastWins(pointsToRaw(pairs))
	merged := unionGeneric(m, addition, false)
	*m = *merged
}

// ExtendFrom merges every entry of other into m, leaving other untouched
// (unlike Append, which drains it). Added content (other's) wins on
// conflict.
func (m *RangeMapBlaze[T, V]) ExtendFrom(other *RangeMapBlaze[T, V]) {
	merged := unionGeneric(m, other, false)
	*m = *merged
}

// ExtendWith is ExtendFrom by another name; both resolve to the same
// added-wins union.
func (m *RangeMapBlaze[T, V]) ExtendWith(other *RangeMapBlaze[T, V]) {
	m.ExtendFrom(other)
}

// --- Algebra ---

// Clone returns a deep-enough copy (the BTree is copy-on-write; V is copied
// by value per key).
func (m *RangeMapBlaze[T, V]) Clone() *RangeMapBlaze[T, V] {
	return &RangeMapBlaze[T, V]{store: m.store.clone()}
}

// Union merges m and other: on overlap, m's (left/earlier) value wins.
func (m *RangeMapBlaze[T, V]) Union(other *RangeMapBlaze[T, V]) *RangeMapBlaze[T, V] {
	return unionGeneric(m, other, true)
}

// Intersection restricts m to the keys other also maps, keeping m's values;
// other acts purely as a key mask.
func (m *RangeMapBlaze[T, V]) Intersection(other *RangeMapBlaze[T, V]) *RangeMapBlaze[T, V] {
	return IntoRangeMapBlaze[T, V](NewIntersectionIterMap[T, V](m.Ranges(), other.KeyRanges()))
}

// Difference returns m - other: m's entries restricted to keys absent from
// other.
func (m *RangeMapBlaze[T, V]) Difference(other *RangeMapBlaze[T, V]) *RangeMapBlaze[T, V] {
	return IntoRangeMapBlaze[T, V](NewIntersectionIterMap[T, V](m.Ranges(), NewNotIter[T](other.KeyRanges())))
}

// SymmetricDifference returns m ^ other: keys mapped by exactly one of the
// two, keeping that side's value. Keys present in both are excluded whether
// or not the values agree.
func (m *RangeMapBlaze[T, V]) SymmetricDifference(other *RangeMapBlaze[T, V]) *RangeMapBlaze[T, V] {
	return IntoRangeMapBlaze[T, V](NewSymDiffIterMap[T, V](m.Ranges(), other.Ranges()))
}

// Complement returns the set of keys not mapped by m.
func (m *RangeMapBlaze[T, V]) Complement() *RangeSetBlaze[T] {
	return IntoRangeSetBlaze[T](NewNotIter[T](m.KeyRanges()))
}

// ComplementWith returns a map covering every key m does not map, each
// assigned fill. A complement has no natural value of its own to carry
// forward, so the caller supplies one; Complement returns the bare key set.
func (m *RangeMapBlaze[T, V]) ComplementWith(fill V) *RangeMapBlaze[T, V] {
	var out []rawRangeValue[T, V]
	for _, r := range collectRangeIter(NewNotIter[T](m.KeyRanges())) {
		out = append(out, rawRangeValue[T, V]{rng: r, value: fill})
	}
	return fromRawLastWins(out)
}

// IntersectionWithSet restricts m to the keys of s, keeping m's values.
func (m *RangeMapBlaze[T, V]) IntersectionWithSet(s *RangeSetBlaze[T]) *RangeMapBlaze[T, V] {
	return IntoRangeMapBlaze[T, V](NewIntersectionIterMap[T, V](m.Ranges(), s.Ranges()))
}

// DifferenceWithSet removes the keys of s from m.
func (m *RangeMapBlaze[T, V]) DifferenceWithSet(s *RangeSetBlaze[T]) *RangeMapBlaze[T, V] {
	return IntoRangeMapBlaze[T, V](NewIntersectionIterMap[T, V](m.Ranges(), NewNotIter[T](s.Ranges())))
}

// UnionAllMaps unions maps left to right; the leftmost value wins every
// conflict, like Union.
func UnionAllMaps[T Integer, V comparable](maps ...*RangeMapBlaze[T, V]) *RangeMapBlaze[T, V] {
	out := NewRangeMapBlaze[T, V]()
	for i := len(maps) - 1; i >= 0; i-- {
		out = maps[i].Union(out)
	}
	return out
}

// IntersectionAllMaps intersects maps left to right, keeping the leftmost
// operand's values on the surviving keys.
func IntersectionAllMaps[T Integer, V comparable](maps ...*RangeMapBlaze[T, V]) *RangeMapBlaze[T, V] {
	if len(maps) == 0 {
		return NewRangeMapBlaze[T, V]()
	}
	out := maps[0].Clone()
	for _, m := range maps[1:] {
		out = out.Intersection(m)
	}
	return out
}

// SymmetricDifferenceAllMaps is the N-way pointwise symmetric difference of
// maps.
func SymmetricDifferenceAllMaps[T Integer, V comparable](maps ...*RangeMapBlaze[T, V]) *RangeMapBlaze[T, V] {
	streams := make([]RangeValueIter[T, V], len(maps))
	for i, m := range maps {
		streams[i] = m.Ranges()
	}
	return IntoRangeMapBlaze[T, V](NewSymDiffIterMap[T, V](streams...))
}

// RangesBetween returns the sub-map view of m restricted to [lo,hi],
// panicking on inverted bounds.
func (m *RangeMapBlaze[T, V]) RangesBetween(lo, hi T) *RangeMapBlaze[T, V] {
	if lo > hi {
		fault("RangesBetween: lo > hi")
	}
	mask := newSliceRangeIter([]Range[T]{{Start: lo, End: hi}})
	return IntoRangeMapBlaze[T, V](NewIntersectionIterMap[T, V](m.Ranges(), mask))
}

// Equal reports whether m and other contain exactly the same (range,value)
// entries.
func (m *RangeMapBlaze[T, V]) Equal(other *RangeMapBlaze[T, V]) bool {
	return m.Compare(other, func(a, b V) int {
		if a == b {
			return 0
		}
		return 1
	}) == 0
}

// Compare totally orders m against other, lexicographic over the individual
// (key, value) pairs the way a flat sorted map would order them, using
// valueCmp to order V (V is only constrained to comparable, not cmp.Ordered,
// so callers supply their own ordering, e.g. bit-pattern comparison for
// float-backed values). At equal starts the values are compared before the
// ends; when one range outlasts the other its remainder carries into the
// next round, so a stored range never has to be expanded key by key.
func (m *RangeMapBlaze[T, V]) Compare(other *RangeMapBlaze[T, V], valueCmp func(V, V) int) int {
	ai, bi := m.Ranges(), other.Ranges()
	ar, av, aok := ai.Next()
	br, bv, bok := bi.Next()
	for {
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		if ar.Start != br.Start {
			if ar.Start < br.Start {
				return -1
			}
			return 1
		}
		if c := valueCmp(av, bv); c != 0 {
			return c
		}
		switch {
		case ar.End < br.End:
			br = Range[T]{Start: addOne(ar.End), End: br.End}
			ar, av, aok = ai.Next()
		case ar.End > br.End:
			ar = Range[T]{Start: addOne(br.End), End: ar.End}
			br, bv, bok = bi.Next()
		default:
			ar, av, aok = ai.Next()
			br, bv, bok = bi.Next()
		}
	}
}

// String renders m as "(start..=end, value), ...".
func (m *RangeMapBlaze[T, V]) String() string {
	var b strings.Builder
	first := true
	m.store.ascend(func(start T, ev endValue[T, V]) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "(%v..=%v, %v)", start, ev.end, ev.value)
		return true
	})
	return b.String()
}
