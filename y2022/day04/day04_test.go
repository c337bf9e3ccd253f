package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikepurvis/advent-of-code/internal/input"
)

const sample = `
    2-4,6-8
    2-3,4-5
    5-7,7-9
    2-8,3-7
    6-6,4-6
    2-6,4-8`

func TestSample(t *testing.T) {
	pairs, err := Parse(input.FromString("sample", sample).Lines())
	require.NoError(t, err)
	require.Len(t, pairs, 6)
	assert.Equal(t, Pair{{2, 8}, {3, 7}}, pairs[3])
	assert.Equal(t, 2, Count(pairs, FullyContained))
	assert.Equal(t, 4, Count(pairs, AnyOverlap))
}

func TestRange(t *testing.T) {
	for _, tc := range []struct {
		a, b               Range
		contains, overlaps bool
	}{
		{Range{2, 4}, Range{6, 8}, false, false},
		{Range{5, 7}, Range{7, 9}, false, true},
		{Range{4, 6}, Range{6, 6}, true, true},
		{Range{3, 7}, Range{3, 7}, true, true},
		{Range{3, 7}, Range{2, 8}, false, true},
	} {
		t.Run(tc.a.String()+","+tc.b.String(), func(t *testing.T) {
			assert.Equal(t, tc.contains, tc.a.Contains(tc.b))
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

func TestParse_errors(t *testing.T) {
	_, err := Parse(input.FromString("bad", "2-4;6-8").Lines())
	assert.EqualError(t, err, `bad:1: invalid assignment pair "2-4;6-8"`)
	_, err = Parse(input.FromString("bad", "4-2,6-8").Lines())
	assert.EqualError(t, err, `bad:1: backwards range 4-2`)
}
