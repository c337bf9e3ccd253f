package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = `1-3 a: abcde
1-3 b: cdefg
2-9 c: ccccccccc
`

func TestSample(t *testing.T) {
	entries := Parse(sample)
	assert.Equal(t, []Entry{
		{1, 3, 'a', "abcde"},
		{1, 3, 'b', "cdefg"},
		{2, 9, 'c', "ccccccccc"},
	}, entries)
	assert.Equal(t, 2, CountValid(entries, CountPolicy))
	assert.Equal(t, 1, CountValid(entries, PositionPolicy))
}

func TestPositionPolicy(t *testing.T) {
	for _, tc := range []struct {
		entry Entry
		want  bool
	}{
		{Entry{1, 3, 'a', "abcde"}, true},
		{Entry{1, 3, 'a', "abade"}, false},
		{Entry{2, 9, 'c', "cc"}, true},
		{Entry{1, 2, 'z', "ab"}, false},
	} {
		assert.Equal(t, tc.want, PositionPolicy(tc.entry), "%+v", tc.entry)
	}
}
