package day10

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamples(t *testing.T) {
	for _, tc := range []struct {
		name         string
		adapters     []int
		ones, threes int
		arrangements int
	}{
		{
			name:         "small",
			adapters:     []int{16, 10, 15, 5, 1, 11, 7, 19, 6, 12, 4},
			ones:         7,
			threes:       5,
			arrangements: 8,
		},
		{
			name: "large",
			adapters: []int{
				28, 33, 18, 42, 31, 14, 46, 20, 48, 47, 24, 23, 49, 45, 19, 38,
				39, 11, 1, 32, 25, 35, 8, 17, 7, 9, 4, 2, 34, 10, 3,
			},
			ones:         22,
			threes:       10,
			arrangements: 19208,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			chain := Chain(tc.adapters)
			assert.Equal(t, 0, chain[0])
			diffs := Differences(chain)
			assert.Equal(t, tc.ones, diffs[1])
			assert.Equal(t, tc.threes, diffs[3])
			assert.Equal(t, tc.arrangements, Arrangements(chain))
		})
	}
}
