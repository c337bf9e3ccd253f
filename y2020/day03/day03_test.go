package day03

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

const sample = `
..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
`

func TestSample(t *testing.T) {
	trees, err := Parse(input.FromString("sample", sample).Lines())
	require.NoError(t, err)

	var counts []int
	product := 1
	for _, slope := range Slopes {
		n := Collisions(trees, slope)
		counts = append(counts, n)
		product *= n
	}
	assert.Equal(t, []int{2, 7, 3, 4, 2}, counts)
	assert.Equal(t, 336, product)
}

func TestSolve(t *testing.T) {
	run := puzzle.NewRun(context.Background(), input.FromString("sample", sample), nil)
	require.NoError(t, solve(run))
	assert.Equal(t, []puzzle.Answer{
		{Label: "Collisions for (1,1)", Value: 2},
		{Label: "Collisions for (3,1)", Value: 7},
		{Label: "Collisions for (5,1)", Value: 3},
		{Label: "Collisions for (7,1)", Value: 4},
		{Label: "Collisions for (1,2)", Value: 2},
		{Label: "Result", Value: 336},
	}, run.Answers())
}

func TestParse_errors(t *testing.T) {
	_, err := Parse(input.FromString("map", "..#\n.#\n").Lines())
	assert.EqualError(t, err, "map:2: row has width 2, expected 3")
	_, err = Parse(input.FromString("map", "..#\n.#o\n").Lines())
	assert.EqualError(t, err, `map:2: column 3: unexpected 'o'`)
}
