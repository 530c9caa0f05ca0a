package rangeblaze

import "iter"

// RangeSetBlaze is an ordered collection of integers stored as a minimal
// list of sorted, disjoint, non-touching inclusive ranges. Implemented as a
// thin wrapper around RangeMapBlaze[T, struct{}]: the unit value makes
// every stored range carry "the same value", so the insertion engine's
// same-value cases always absorb any touching neighbor and the stored
// layout keeps a strict gap between consecutive ranges.
type RangeSetBlaze[T Integer] struct {
	m *RangeMapBlaze[T, struct{}]
}

// NewRangeSetBlaze returns an empty set.
func NewRangeSetBlaze[T Integer]() *RangeSetBlaze[T] {
	return &RangeSetBlaze[T]{m: NewRangeMapBlaze[T, struct{}]()}
}

// FromInts builds a set from individual integers, possibly unsorted or
// duplicated.
func FromInts[T Integer](values ...T) *RangeSetBlaze[T] {
	raw := make([]rawRangeValue[T, struct{}], len(values))
	for i, v := range values {
		raw[i] = rawRangeValue[T, struct{}]{rng: Range[T]{Start: v, End: v}}
	}
	return &RangeSetBlaze[T]{m: fromRawLastWins(raw)}
}

// FromRanges builds a set from inclusive ranges, possibly overlapping or
// unsorted.
func FromRanges[T Integer](ranges ...Range[T]) *RangeSetBlaze[T] {
	raw := make([]rawRangeValue[T, struct{}], len(ranges))
	for i, r := range ranges {
		raw[i] = rawRangeValue[T, struct{}]{rng: r}
	}
	return &RangeSetBlaze[T]{m: fromRawLastWins(raw)}
}

// FromSortedDisjoint materializes an already sorted-disjoint range stream
// directly.
func FromSortedDisjoint[T Integer](it RangeIter[T]) *RangeSetBlaze[T] {
	return IntoRangeSetBlaze[T](it)
}

// --- Queries ---

func (s *RangeSetBlaze[T]) Len() SafeLen   { return s.m.Len() }
func (s *RangeSetBlaze[T]) IsEmpty() bool  { return s.m.IsEmpty() }
func (s *RangeSetBlaze[T]) RangesLen() int { return s.m.RangesLen() }

// Contains reports whether v is a member.
func (s *RangeSetBlaze[T]) Contains(v T) bool { return s.m.ContainsKey(v) }

// Get returns v itself if it's a member, the set-shaped sibling of the
// map's comma-ok lookup.
func (s *RangeSetBlaze[T]) Get(v T) (T, bool) {
	if s.m.ContainsKey(v) {
		return v, true
	}
	var zero T
	return zero, false
}

// First returns the smallest member.
func (s *RangeSetBlaze[T]) First() (T, bool) {
	r, _, ok := s.m.FirstKeyValue()
	return r.Start, ok
}

// Last returns the largest member.
func (s *RangeSetBlaze[T]) Last() (T, bool) {
	r, _, ok := s.m.LastKeyValue()
	return r.End, ok
}

// IsSubset reports whether every member of s is also in other.
func (s *RangeSetBlaze[T]) IsSubset(other *RangeSetBlaze[T]) bool {
	return s.Difference(other).IsEmpty()
}

// IsSuperset reports whether s contains every member of other.
func (s *RangeSetBlaze[T]) IsSuperset(other *RangeSetBlaze[T]) bool {
	return other.IsSubset(s)
}

// IsDisjoint reports whether s and other share no members.
func (s *RangeSetBlaze[T]) IsDisjoint(other *RangeSetBlaze[T]) bool {
	return s.Intersection(other).IsEmpty()
}

// --- Iteration ---

// Ranges returns a pull-style cursor over s's stored ranges.
func (s *RangeSetBlaze[T]) Ranges() RangeIter[T] {
	return &dropValueIter[T, struct{}]{inner: s.m.Ranges()}
}

// RangesSeq returns a lazy sequence of stored ranges.
func (s *RangeSetBlaze[T]) RangesSeq() iter.Seq[Range[T]] {
	return func(yield func(Range[T]) bool) {
		for r := range s.m.RangeValuesSeq() {
			if !yield(r) {
				return
			}
		}
	}
}

// Seq returns a lazy sequence over every individual member, ascending.
func (s *RangeSetBlaze[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.m.Seq() {
			if !yield(k) {
				return
			}
		}
	}
}

// ReversedSeq returns a lazy sequence over every individual member,
// descending.
func (s *RangeSetBlaze[T]) ReversedSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.m.ReversedSeq() {
			if !yield(k) {
				return
			}
		}
	}
}

// Elements materializes every individual member in ascending order.
func (s *RangeSetBlaze[T]) Elements() []T { return s.m.Keys() }

// RangesBetween returns the sub-set view of s restricted to [lo,hi],
// panicking on inverted bounds.
func (s *RangeSetBlaze[T]) RangesBetween(lo, hi T) *RangeSetBlaze[T] {
	return &RangeSetBlaze[T]{m: s.m.RangesBetween(lo, hi)}
}

// --- Mutation ---

// Insert adds v, returning true if the set changed.
func (s *RangeSetBlaze[T]) Insert(v T) bool {
	changed := !s.Contains(v)
	s.m.Insert(v, struct{}{})
	return changed
}

// RangesInsert merges rng into the set.
func (s *RangeSetBlaze[T]) RangesInsert(rng Range[T]) {
	s.m.RangesInsert(rng, struct{}{})
}

// Remove deletes v, returning true if it was present.
func (s *RangeSetBlaze[T]) Remove(v T) bool {
	_, ok := s.m.Remove(v)
	return ok
}

// RangesRemove deletes every member of rng.
func (s *RangeSetBlaze[T]) RangesRemove(rng Range[T]) {
	s.m.RangesRemove(rng)
}

// Take removes and returns v if present: Remove that also hands back the
// stored element.
func (s *RangeSetBlaze[T]) Take(v T) (T, bool) {
	if s.Remove(v) {
		return v, true
	}
	var zero T
	return zero, false
}

// Replace inserts v, returning the previous member equal to it if any
// (always v itself, since T is its own key).
func (s *RangeSetBlaze[T]) Replace(v T) (T, bool) {
	existed := s.Contains(v)
	s.Insert(v)
	if existed {
		return v, true
	}
	var zero T
	return zero, false
}

// Clear removes every member.
func (s *RangeSetBlaze[T]) Clear() { s.m.Clear() }

// PopFirst removes and returns the smallest member.
func (s *RangeSetBlaze[T]) PopFirst() (T, bool) {
	k, _, ok := s.m.PopFirst()
	return k, ok
}

// PopLast removes and returns the largest member.
func (s *RangeSetBlaze[T]) PopLast() (T, bool) {
	k, _, ok := s.m.PopLast()
	return k, ok
}

// SplitOff removes every member >= at and returns them as a new set.
func (s *RangeSetBlaze[T]) SplitOff(at T) *RangeSetBlaze[T] {
	return &RangeSetBlaze[T]{m: s.m.SplitOff(at)}
}

// Append drains other into s, destructively emptying other.
func (s *RangeSetBlaze[T]) Append(other *RangeSetBlaze[T]) {
	s.m.Append(other.m)
}

// Retain keeps only ranges satisfying keep.
func (s *RangeSetBlaze[T]) Retain(keep func(rng Range[T]) bool) {
	s.m.Retain(func(r Range[T], _ struct{}) bool { return keep(r) })
}

// RangesRetain is Retain under its range-oriented name.
func (s *RangeSetBlaze[T]) RangesRetain(keep func(rng Range[T]) bool) { s.Retain(keep) }

// Extend adds every integer to s.
func (s *RangeSetBlaze[T]) Extend(values ...T) {
	pairs := make([]KeyValue[T, struct{}], len(values))
	for i, v := range values {
		pairs[i] = KeyValue[T, struct{}]{Key: v}
	}
	s.m.ExtendSimple(pairs...)
}

// ExtendRanges merges every range into s.
func (s *RangeSetBlaze[T]) ExtendRanges(ranges ...Range[T]) {
	pairs := make([]RangeValue[T, struct{}], len(ranges))
	for i, r := range ranges {
		pairs[i] = RangeValue[T, struct{}]{Range: r}
	}
	s.m.Extend(pairs...)
}

// --- Algebra ---

// Clone returns a copy of s.
func (s *RangeSetBlaze[T]) Clone() *RangeSetBlaze[T] { return &RangeSetBlaze[T]{m: s.m.Clone()} }

// Union returns s | other.
func (s *RangeSetBlaze[T]) Union(other *RangeSetBlaze[T]) *RangeSetBlaze[T] {
	return IntoRangeSetBlaze[T](NewUnionIter[T](mergeSortedRangeIters(s.Ranges(), other.Ranges())))
}

// mergeSortedRangeIters k-way merges already-sorted (but possibly
// overlapping) RangeIter[T] sources into a single SortedStarts stream, the
// set-shaped counterpart of KMerge for when no per-item value or priority
// tag is needed; just the range starts matter for ordering.
func mergeSortedRangeIters[T Integer](sources ...RangeIter[T]) RangeIter[T] {
	var out []Range[T]
	heads := make([]Range[T], len(sources))
	have := make([]bool, len(sources))
	for i, src := range sources {
		heads[i], have[i] = src.Next()
	}
	for {
		best := -1
		for i := range sources {
			if have[i] && (best == -1 || heads[i].Start < heads[best].Start) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		out = append(out, heads[best])
		heads[best], have[best] = sources[best].Next()
	}
	return newSliceRangeIter(out)
}

// Intersection returns s & other.
func (s *RangeSetBlaze[T]) Intersection(other *RangeSetBlaze[T]) *RangeSetBlaze[T] {
	masked := NewIntersectionIterMap[T, struct{}](s.m.Ranges(), other.Ranges())
	return IntoRangeSetBlaze[T](&dropValueIter[T, struct{}]{inner: masked})
}

// Difference returns s - other.
func (s *RangeSetBlaze[T]) Difference(other *RangeSetBlaze[T]) *RangeSetBlaze[T] {
	masked := NewIntersectionIterMap[T, struct{}](s.m.Ranges(), NewNotIter[T](other.Ranges()))
	return IntoRangeSetBlaze[T](&dropValueIter[T, struct{}]{inner: masked})
}

// SymmetricDifference returns s ^ other.
func (s *RangeSetBlaze[T]) SymmetricDifference(other *RangeSetBlaze[T]) *RangeSetBlaze[T] {
	return IntoRangeSetBlaze[T](NewSymDiffIter[T](s.Ranges(), other.Ranges()))
}

// Complement returns !s.
func (s *RangeSetBlaze[T]) Complement() *RangeSetBlaze[T] {
	return IntoRangeSetBlaze[T](NewNotIter[T](s.Ranges()))
}

// UnionAll is the multiway union of sets.
func UnionAll[T Integer](sets ...*RangeSetBlaze[T]) *RangeSetBlaze[T] {
	out := NewRangeSetBlaze[T]()
	for _, s := range sets {
		out = out.Union(s)
	}
	return out
}

// IntersectionAll is the multiway intersection of sets.
func IntersectionAll[T Integer](sets ...*RangeSetBlaze[T]) *RangeSetBlaze[T] {
	if len(sets) == 0 {
		return NewRangeSetBlaze[T]()
	}
	out := sets[0].Clone()
	for _, s := range sets[1:] {
		out = out.Intersection(s)
	}
	return out
}

// SymmetricDifferenceAll is the multiway symmetric difference of sets.
func SymmetricDifferenceAll[T Integer](sets ...*RangeSetBlaze[T]) *RangeSetBlaze[T] {
	streams := make([]RangeIter[T], len(sets))
	for i, s := range sets {
		streams[i] = s.Ranges()
	}
	return IntoRangeSetBlaze[T](NewSymDiffIter[T](streams...))
}

// Equal reports whether s and other contain exactly the same members.
func (s *RangeSetBlaze[T]) Equal(other *RangeSetBlaze[T]) bool {
	return s.Compare(other) == 0
}

// Compare totally orders s against other, lexicographic over the individual
// members (the ordering a flat sorted set of the same elements would have).
// It still runs range-at-a-time: when one range outlasts the other at the
// same start, the longer one's remainder carries into the next round.
func (s *RangeSetBlaze[T]) Compare(other *RangeSetBlaze[T]) int {
	ai, bi := s.Ranges(), other.Ranges()
	ar, aok := ai.Next()
	br, bok := bi.Next()
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
		switch {
		case ar.End < br.End:
			br = Range[T]{Start: addOne(ar.End), End: br.End}
			ar, aok = ai.Next()
		case ar.End > br.End:
			ar = Range[T]{Start: addOne(br.End), End: ar.End}
			br, bok = bi.Next()
		default:
			ar, aok = ai.Next()
			br, bok = bi.Next()
		}
	}
}

// String renders s as "start..=end, ...".
func (s *RangeSetBlaze[T]) String() string {
	out := ""
	first := true
	for r := range s.RangesSeq() {
		if !first {
			out += ", "
		}
		first = false
		out += r.String()
	}
	return out
}
