package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikepurvis/advent-of-code/internal/input"
)

const sample = `abc

a
b
c

ab
ac

a
a
a
a

b
`

func TestSample(t *testing.T) {
	groups := ParseGroups(input.FromString("sample", sample))
	assert.Len(t, groups, 5)
	assert.Equal(t, []int{3, 3, 3, 1, 1}, Sizes(groups, Group.Anyone))
	assert.Equal(t, []int{3, 0, 1, 1, 1}, Sizes(groups, Group.Everyone))
	assert.Equal(t, []string{"a"}, groups[2].Everyone().Elements())
}
