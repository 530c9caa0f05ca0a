package rangeblaze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkMapInvariants verifies the stored layout: well-formed ranges, ends
// below the top sentinel, strictly increasing disjoint starts, no touching
// equal-value neighbors, and a running length that matches a recomputation
// from scratch.
func checkMapInvariants[T Integer, V comparable](t *testing.T, m *RangeMapBlaze[T, V]) {
	t.Helper()
	maxEnd := subOne(MaxValue[T]())
	var prevEnd T
	var prevVal V
	have := false
	total := SafeLen{}
	m.store.ascend(func(start T, ev endValue[T, V]) bool {
		require.LessOrEqual(t, start, ev.end, "range must be well-formed")
		require.LessOrEqual(t, ev.end, maxEnd, "range end must stay below the domain maximum")
		if have {
			require.Greater(t, start, prevEnd, "ranges must be disjoint and sorted by start")
			if !hasGap(prevEnd, start) {
				require.NotEqual(t, prevVal, ev.value, "touching ranges must carry different values")
			}
		}
		total = total.Add(SafeLenOfRange(start, ev.end))
		prevEnd, prevVal, have = ev.end, ev.value, true
		return true
	})
	require.Equal(t, 0, m.store.len.Compare(total), "stored len must equal recomputed len")
}

func checkSetInvariants[T Integer](t *testing.T, s *RangeSetBlaze[T]) {
	t.Helper()
	checkMapInvariants(t, s.m)
	// The unit value means touching would always be mergeable, so the gap
	// must be strict everywhere.
	var prevEnd T
	have := false
	for r := range s.RangesSeq() {
		if have {
			require.True(t, hasGap(prevEnd, r.Start), "set ranges must not touch")
		}
		prevEnd, have = r.End, true
	}
}

// lenOf unwraps a SafeLen the tests know fits in a uint64.
func lenOf[T Integer](t *testing.T, s *RangeSetBlaze[T]) uint64 {
	t.Helper()
	n, ok := s.Len().AsUint64()
	require.True(t, ok, "length should fit in a uint64 for test-sized sets")
	return n
}
