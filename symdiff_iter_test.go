package rangeblaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymDiffIterTwoSets(t *testing.T) {
	t.Parallel()
	a := newSliceRangeIter([]Range[int32]{r[int32](1, 2), r[int32](5, 100)})
	b := newSliceRangeIter([]Range[int32]{r[int32](2, 6)})
	out := collectRangeIter[int32](NewSymDiffIter[int32](a, b))
	assert.Equal(t, []Range[int32]{r[int32](1, 1), r[int32](3, 4), r[int32](7, 100)}, out)
}

func TestSymDiffIterThreeWayParity(t *testing.T) {
	t.Parallel()
	// Coverage: 1..=2 only a (odd), 3..=4 all three (odd), 5..=6 b and c
	// (even), so the odd region is exactly 1..=4.
	a := newSliceRangeIter([]Range[int32]{r[int32](1, 4)})
	b := newSliceRangeIter([]Range[int32]{r[int32](3, 6)})
	c := newSliceRangeIter([]Range[int32]{r[int32](3, 6)})
	out := collectRangeIter[int32](NewSymDiffIter[int32](a, b, c))
	assert.Equal(t, []Range[int32]{r[int32](1, 4)}, out)
}

func TestSymDiffIterSelfCancels(t *testing.T) {
	t.Parallel()
	mk := func() RangeIter[int32] {
		return newSliceRangeIter([]Range[int32]{r[int32](1, 5), r[int32](10, 12)})
	}
	out := collectRangeIter[int32](NewSymDiffIter[int32](mk(), mk()))
	assert.Empty(t, out, "x ^ x is empty")
}

func TestSymDiffIterMapDisjointPassThrough(t *testing.T) {
	t.Parallel()
	a := newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{srv[int32](1, 2, "a")})
	b := newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{srv[int32](5, 6, "b")})
	out := collectRangeValueIter[int32, string](NewSymDiffIterMap[int32, string](a, b))
	require.Len(t, out, 2)
	assert.Equal(t, srv[int32](1, 2, "a"), out[0])
	assert.Equal(t, srv[int32](5, 6, "b"), out[1])
}

func TestSymDiffIterMapConflictExcluded(t *testing.T) {
	t.Parallel()
	// Keys covered by both sides are excluded whether or not the values
	// agree; only each side's private stretches survive.
	a := newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{
		srv[int32](1, 2, "one"),
		srv[int32](5, 100, "two"),
	})
	b := newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{srv[int32](2, 6, "three")})
	out := collectRangeValueIter[int32, string](NewSymDiffIterMap[int32, string](a, b))
	require.Len(t, out, 3)
	assert.Equal(t, srv[int32](1, 1, "one"), out[0])
	assert.Equal(t, srv[int32](3, 4, "three"), out[1])
	assert.Equal(t, srv[int32](7, 100, "two"), out[2])
}

func TestSymDiffIterMapEqualValuesCancel(t *testing.T) {
	t.Parallel()
	a := newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{srv[int32](1, 10, "x")})
	b := newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{srv[int32](4, 6, "x")})
	out := collectRangeValueIter[int32, string](NewSymDiffIterMap[int32, string](a, b))
	require.Len(t, out, 2)
	assert.Equal(t, srv[int32](1, 3, "x"), out[0])
	assert.Equal(t, srv[int32](7, 10, "x"), out[1])
}

func TestSymDiffIterMapCoalescesTouchingStretches(t *testing.T) {
	t.Parallel()
	// Nothing overlaps, so nothing cancels: the two stretches of "x" from
	// one side touch a stretch of "x" from the other side, and the output
	// coalesces them.
	a := newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{
		srv[int32](1, 2, "x"),
		srv[int32](5, 6, "x"),
	})
	b := newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{srv[int32](3, 4, "x")})
	out := collectRangeValueIter[int32, string](NewSymDiffIterMap[int32, string](a, b))
	require.Len(t, out, 1)
	assert.Equal(t, srv[int32](1, 6, "x"), out[0])
}

func TestSymDiffIterMapThreeWayOddSurvives(t *testing.T) {
	t.Parallel()
	mk := func() RangeValueIter[int32, string] {
		return newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{srv[int32](1, 4, "v")})
	}
	out := collectRangeValueIter[int32, string](NewSymDiffIterMap[int32, string](mk(), mk(), mk()))
	require.Len(t, out, 1, "an odd count of the same value survives")
	assert.Equal(t, srv[int32](1, 4, "v"), out[0])

	out = collectRangeValueIter[int32, string](NewSymDiffIterMap[int32, string](mk(), mk()))
	assert.Empty(t, out, "an even count cancels")
}
