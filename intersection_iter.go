package rangeblaze

// IntersectionIterMap walks a sorted-disjoint map stream and a
// sorted-disjoint set stream in lockstep, keeping only the portions of the
// map that fall inside the set. No priority is involved since the map's
// value is simply carried through.
type IntersectionIterMap[T Integer, V comparable] struct {
	mapIter RangeValueIter[T, V]
	setIter RangeIter[T]

	curMapRng Range[T]
	curMapVal V
	haveMap   bool

	curSetRng Range[T]
	haveSet   bool

	done bool
}

func NewIntersectionIterMap[T Integer, V comparable](mapIter RangeValueIter[T, V], setIter RangeIter[T]) *IntersectionIterMap[T, V] {
	return &IntersectionIterMap[T, V]{mapIter: mapIter, setIter: setIter}
}

func (x *IntersectionIterMap[T, V]) Next() (Range[T], V, bool) {
	if x.done {
		var zeroR Range[T]
		var zeroV V
		return zeroR, zeroV, false
	}
	for {
		if !x.haveMap {
			r, v, ok := x.mapIter.Next()
			if !ok {
				x.done = true
				var zeroR Range[T]
				var zeroV V
				return zeroR, zeroV, false
			}
			x.curMapRng, x.curMapVal, x.haveMap = r, v, true
		}
		if !x.haveSet {
			r, ok := x.setIter.Next()
			if !ok {
				x.done = true
				var zeroR Range[T]
				var zeroV V
				return zeroR, zeroV, false
			}
			x.curSetRng, x.haveSet = r, true
		}

		start := max(x.curMapRng.Start, x.curSetRng.Start)
		end := min(x.curMapRng.End, x.curSetRng.End)

		if start > end {
			if x.curMapRng.End < x.curSetRng.Start {
				x.haveMap = false
			} else {
				x.haveSet = false
			}
			continue
		}

		result := Range[T]{Start: start, End: end}
		val := x.curMapVal
		if x.curMapRng.End == end {
			x.haveMap = false
		}
		if x.curSetRng.End == end {
			x.haveSet = false
		}
		return result, val, true
	}
}
