// Package day01 totals the calories carried by each elf.
package day01

import (
	"slices"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2022, Day: 1, Title: "Calorie Counting", Solve: solve}

// Parse sums each blank line separated group of item calories.
func Parse(in input.Input) ([]int, error) {
	var totals []int
	for _, group := range in.Paragraphs() {
		items, err := input.Ints(group)
		if err != nil {
			return nil, err
		}
		sum := 0
		for _, n := range items {
			sum += n
		}
		totals = append(totals, sum)
	}
	return totals, nil
}

// Top returns the sum of the n largest totals.
func Top(totals []int, n int) (sum int) {
	sorted := slices.Clone(totals)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	for _, t := range sorted[:min(n, len(sorted))] {
		sum += t
	}
	return sum
}

func solve(run *puzzle.Run) error {
	totals, err := Parse(run.Input)
	if err != nil {
		return err
	}
	run.Logf("%d elves", len(totals))
	run.Answer("Most calories", Top(totals, 1))
	run.Answer("Top three", Top(totals, 3))
	return nil
}
