// Package day01 finds the expense report entries that sum to 2020.
package day01

import (
	"fmt"

	"github.com/mikepurvis/advent-of-code/internal/combin"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 1, Title: "Report Repair", Solve: solve}

const target = 2020

// ProductOf returns the product of the first n entries summing to target.
func ProductOf(entries []int, n int) (int, error) {
	vs, ok := combin.Find(entries, n, func(vs []int) bool {
		sum := 0
		for _, v := range vs {
			sum += v
		}
		return sum == target
	})
	if !ok {
		return 0, fmt.Errorf("no %d entries sum to %d", n, target)
	}
	product := 1
	for _, v := range vs {
		product *= v
	}
	return product, nil
}

func solve(run *puzzle.Run) error {
	entries, err := input.Ints(run.Input.Lines())
	if err != nil {
		return err
	}
	for n := 2; n <= 3; n++ {
		product, err := ProductOf(entries, n)
		if err != nil {
			return err
		}
		run.Answer(fmt.Sprintf("Product of %d", n), product)
	}
	return nil
}
