// Package day03 counts the trees hit while sledding down a repeating map.
package day03

import (
	"fmt"

	"github.com/mikepurvis/advent-of-code/internal/grid"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 3, Title: "Toboggan Trajectory", Solve: solve}

// Slopes are the trajectories checked for the final answer.
var Slopes = []grid.PtInt{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 7, Y: 1}, {X: 1, Y: 2}}

// Parse reads the map; true cells hold a tree.
func Parse(lines []input.Line) (grid.Grid[bool], error) {
	return grid.Parse(lines, func(b byte) (bool, bool) {
		return b == '#', b == '#' || b == '.'
	})
}

// Collisions counts the trees hit from the top-left corner along slope,
// wrapping around horizontally.
func Collisions(trees grid.Grid[bool], slope grid.PtInt) (n int) {
	width := trees.Size().X
	for pos := (grid.PtInt{}); pos.Y < len(trees); pos = pos.Add(slope) {
		pos.X %= width
		if trees.At(pos) {
			n++
		}
	}
	return n
}

func solve(run *puzzle.Run) error {
	trees, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	product := 1
	for _, slope := range Slopes {
		n := Collisions(trees, slope)
		run.Answer(fmt.Sprintf("Collisions for %v", slope), n)
		product *= n
	}
	run.Answer("Result", product)
	return nil
}
