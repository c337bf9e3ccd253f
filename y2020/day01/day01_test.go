package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductOf(t *testing.T) {
	entries := []int{1721, 979, 366, 299, 675, 1456}

	product, err := ProductOf(entries, 2)
	require.NoError(t, err)
	assert.Equal(t, 514579, product)

	product, err = ProductOf(entries, 3)
	require.NoError(t, err)
	assert.Equal(t, 241861950, product)

	_, err = ProductOf([]int{1, 2}, 2)
	assert.EqualError(t, err, "no 2 entries sum to 2020")
}
