package rangeblaze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldReplay(t *testing.T) {
	t.Parallel()
	assert.True(t, shouldReplay(0, 100), "an empty small side always replays")
	assert.False(t, shouldReplay(5, 0), "an empty big side has nothing to replay into")
	assert.True(t, shouldReplay(10, 100000), "a tiny side replays into a huge one")
	assert.False(t, shouldReplay(100000, 100000), "equal sizes stream-merge")
}

func TestUnionStrategiesAgree(t *testing.T) {
	t.Parallel()
	// The replay path and the stream-merge path must produce identical
	// containers whichever one the size heuristic picks, so force both by
	// varying the operand sizes around the same data.
	mkBig := func() *RangeMapBlaze[int32, string] {
		m := NewRangeMapBlaze[int32, string]()
		for i := int32(0); i < 200; i++ {
			m.RangesInsert(r[int32](i*10, i*10+4), fmt.Sprintf("v%d", i%3))
		}
		return m
	}
	small := FromRangeValues(rvp(42, 55, "x"), rvp(1000, 1001, "y"))

	big := mkBig()
	// The small left operand wins, so the heuristic replays it into a clone
	// of big.
	viaHeuristic := small.Union(big)
	checkMapInvariants(t, viaHeuristic)

	// Stream merge, forced: build the same left-wins union from streams,
	// with small's entries carrying the higher priorities.
	aItems := streamOfEntries(small, big.RangesLen())
	bItems := streamOfEntries(big, 0)
	merged := NewKMerge[int32, string](newSlicePriorityIter(aItems), newSlicePriorityIter(bItems))
	viaStream := IntoRangeMapBlaze[int32, string](NewUnionIterMap[int32, string](merged))
	checkMapInvariants(t, viaStream)

	assert.True(t, viaHeuristic.Equal(viaStream))
}

func TestUnionReplayPreservesPrecedence(t *testing.T) {
	t.Parallel()
	// A small left operand must still win its overlaps even when the
	// heuristic replays it into a clone of the right.
	big := NewRangeMapBlaze[int32, string]()
	for i := int32(0); i < 100; i++ {
		big.RangesInsert(r[int32](i*10, i*10+5), "big")
	}
	small := FromRangeValues(rvp(13, 27, "small"))

	out := small.Union(big)
	checkMapInvariants(t, out)
	v, ok := out.Get(20)
	assert.True(t, ok)
	assert.Equal(t, "small", v, "the left operand wins regardless of strategy")
	v, _ = out.Get(0)
	assert.Equal(t, "big", v)
}
