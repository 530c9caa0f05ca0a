package rangeblaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedSortedDisjointAcceptsValid(t *testing.T) {
	t.Parallel()
	in := newSliceRangeIter([]Range[int32]{r[int32](1, 2), r[int32](4, 6), r[int32](100, 100)})
	out := collectRangeIter[int32](NewCheckedSortedDisjoint(in))
	assert.Len(t, out, 3)
}

func TestCheckedSortedDisjointRejects(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		ranges []Range[int32]
	}{
		{"out of order", []Range[int32]{r[int32](5, 6), r[int32](1, 2)}},
		{"overlapping", []Range[int32]{r[int32](1, 5), r[int32](3, 8)}},
		{"touching", []Range[int32]{r[int32](1, 2), r[int32](3, 4)}},
		{"empty range", []Range[int32]{r[int32](5, 4)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() {
				collectRangeIter[int32](NewCheckedSortedDisjoint(newSliceRangeIter(tc.ranges)))
			})
		})
	}
}

func TestCheckedSortedDisjointMapAllowsTouchingDifferentValues(t *testing.T) {
	t.Parallel()
	in := newSliceRangeValueIter([]sliceRangeValueItem[int32, string]{
		srv[int32](1, 2, "a"),
		srv[int32](3, 4, "b"),
	})
	out := collectRangeValueIter[int32, string](NewCheckedSortedDisjointMap[int32, string](in))
	assert.Len(t, out, 2)
}

func TestCheckedSortedDisjointMapRejects(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		items []sliceRangeValueItem[int32, string]
	}{
		{"touching equal values", []sliceRangeValueItem[int32, string]{
			srv[int32](1, 2, "a"), srv[int32](3, 4, "a"),
		}},
		{"overlapping", []sliceRangeValueItem[int32, string]{
			srv[int32](1, 5, "a"), srv[int32](5, 8, "b"),
		}},
		{"out of order", []sliceRangeValueItem[int32, string]{
			srv[int32](10, 12, "a"), srv[int32](1, 2, "b"),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() {
				collectRangeValueIter[int32, string](NewCheckedSortedDisjointMap[int32, string](newSliceRangeValueIter(tc.items)))
			})
		})
	}
}
