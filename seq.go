package rangeblaze

import "iter"

// seqRangeIter bridges a push-style iter.Seq of ranges into the pull-style
// RangeIter the stream algebra consumes, via iter.Pull.
type seqRangeIter[T Integer] struct {
	next func() (Range[T], bool)
	stop func()
	done bool
}

// RangeIterFromSeq adapts an iter.Seq of ranges into a RangeIter. The
// sequence must already be sorted-disjoint for the result to be fed into
// the algebra operators; wrap it in NewCheckedSortedDisjoint when unsure.
func RangeIterFromSeq[T Integer](seq iter.Seq[Range[T]]) RangeIter[T] {
	next, stop := iter.Pull(seq)
	return &seqRangeIter[T]{next: next, stop: stop}
}

func (s *seqRangeIter[T]) Next() (Range[T], bool) {
	if s.done {
		var zero Range[T]
		return zero, false
	}
	r, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		var zero Range[T]
		return zero, false
	}
	return r, true
}

// seqRangeValueIter is seqRangeIter's map-shaped counterpart.
type seqRangeValueIter[T Integer, V comparable] struct {
	next func() (Range[T], V, bool)
	stop func()
	done bool
}

// RangeValueIterFromSeq adapts an iter.Seq2 of (range,value) pairs into a
// RangeValueIter.
func RangeValueIterFromSeq[T Integer, V comparable](seq iter.Seq2[Range[T], V]) RangeValueIter[T, V] {
	next, stop := iter.Pull2(seq)
	return &seqRangeValueIter[T, V]{next: next, stop: stop}
}

func (s *seqRangeValueIter[T, V]) Next() (Range[T], V, bool) {
	if s.done {
		var zeroR Range[T]
		var zeroV V
		return zeroR, zeroV, false
	}
	r, v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		var zeroR Range[T]
		var zeroV V
		return zeroR, zeroV, false
	}
	return r, v, true
}
