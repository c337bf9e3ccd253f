// Package day10 chains joltage adapters.
package day10

import (
	"slices"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 10, Title: "Adapter Array", Solve: solve}

// Chain sorts the adapters and adds the outlet (0) before them and the
// device (highest adapter + 3) after them.
func Chain(adapters []int) []int {
	chain := append([]int{0}, adapters...)
	slices.Sort(chain)
	return append(chain, chain[len(chain)-1]+3)
}

// Differences counts the gaps between neighbours of a sorted chain.
func Differences(chain []int) map[int]int {
	counts := make(map[int]int)
	for i := 1; i < len(chain); i++ {
		counts[chain[i]-chain[i-1]]++
	}
	return counts
}

// Arrangements counts the distinct ways to get from the first to the last
// element of a sorted chain, skipping adapters but never bridging a gap
// wider than 3.
func Arrangements(chain []int) int {
	ways := make([]int, len(chain))
	ways[0] = 1
	for j := 1; j < len(chain); j++ {
		for i := j - 1; i >= 0 && chain[j]-chain[i] <= 3; i-- {
			ways[j] += ways[i]
		}
	}
	return ways[len(ways)-1]
}

func solve(run *puzzle.Run) error {
	adapters, err := input.Ints(run.Input.Lines())
	if err != nil {
		return err
	}
	chain := Chain(adapters)
	diffs := Differences(chain)
	run.Logf("differences: %v", diffs)
	run.Answer("Multiple", diffs[1]*diffs[3])
	run.Answer("Permutations", Arrangements(chain))
	return nil
}
