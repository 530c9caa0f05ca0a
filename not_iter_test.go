package rangeblaze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotIterEmptyInputCoversDomain(t *testing.T) {
	t.Parallel()
	out := collectRangeIter[int8](NewNotIter(newSliceRangeIter[int8](nil)))
	assert.Equal(t, []Range[int8]{r[int8](math.MinInt8, math.MaxInt8-1)}, out,
		"the complement of nothing is the whole usable domain")
}

func TestNotIterGaps(t *testing.T) {
	t.Parallel()
	in := newSliceRangeIter([]Range[int32]{r[int32](1, 2), r[int32](5, 100)})
	out := collectRangeIter[int32](NewNotIter(in))
	assert.Equal(t, []Range[int32]{
		r[int32](math.MinInt32, 0),
		r[int32](3, 4),
		r[int32](101, math.MaxInt32-1),
	}, out)
}

func TestNotIterInputAtDomainEdges(t *testing.T) {
	t.Parallel()
	in := newSliceRangeIter([]Range[uint8]{r[uint8](0, 10), r[uint8](250, 254)})
	out := collectRangeIter[uint8](NewNotIter(in))
	assert.Equal(t, []Range[uint8]{r[uint8](11, 249)}, out,
		"no leading gap below 0 and no trailing gap past the usable maximum")
}

func TestNotIterDoubleComplementIsIdentity(t *testing.T) {
	t.Parallel()
	ranges := []Range[int16]{r[int16](-100, -50), r[int16](0, 0), r[int16](7, 30)}
	twice := collectRangeIter[int16](NewNotIter[int16](NewNotIter(newSliceRangeIter(ranges))))
	assert.Equal(t, ranges, twice)
}

func TestNotIterFused(t *testing.T) {
	t.Parallel()
	n := NewNotIter(newSliceRangeIter([]Range[uint8]{r[uint8](0, 254)}))
	_, ok := n.Next()
	assert.False(t, ok, "an input covering the whole usable domain has an empty complement")
	_, ok = n.Next()
	assert.False(t, ok)
}
