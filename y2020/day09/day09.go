// Package day09 attacks the XMAS encryption's sum-of-two property.
package day09

import (
	"errors"

	"github.com/mikepurvis/advent-of-code/internal/combin"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 9, Title: "Encoding Error", Solve: solve}

// Preamble is the window length used by real inputs.
const Preamble = 25

// Finder scans a number stream, holding a sliding window of the most recent
// values.
type Finder struct {
	window []int
	rest   []int
}

// NewFinder starts a finder whose window is the first preamble numbers.
func NewFinder(preamble int, numbers []int) *Finder {
	preamble = min(preamble, len(numbers))
	return &Finder{
		window: append([]int(nil), numbers[:preamble]...),
		rest:   numbers[preamble:],
	}
}

func (f *Finder) push(n int) {
	copy(f.window, f.window[1:])
	f.window[len(f.window)-1] = n
}

// Next returns the next number that is not the sum of two distinct values in
// the window before it.
func (f *Finder) Next() (int, bool) {
	for len(f.rest) > 0 {
		n := f.rest[0]
		f.rest = f.rest[1:]
		valid := combin.AnyPair(f.window, func(a, b int) bool { return a+b == n })
		f.push(n)
		if !valid {
			return n, true
		}
	}
	return 0, false
}

// All drains the finder.
func (f *Finder) All() (found []int) {
	for n, ok := f.Next(); ok; n, ok = f.Next() {
		found = append(found, n)
	}
	return found
}

// Weakness finds a contiguous run of at least two numbers summing to target,
// and returns the sum of its smallest and largest.
func Weakness(numbers []int, target int) (int, error) {
	for i := range numbers {
		sum := numbers[i]
		for j := i + 1; j < len(numbers) && sum < target; j++ {
			sum += numbers[j]
			if sum == target {
				run := numbers[i : j+1]
				lo, hi := run[0], run[0]
				for _, n := range run {
					lo, hi = min(lo, n), max(hi, n)
				}
				return lo + hi, nil
			}
		}
	}
	return 0, errors.New("no contiguous range sums to target")
}

func solve(run *puzzle.Run) error {
	numbers, err := input.Ints(run.Input.Lines())
	if err != nil {
		return err
	}
	invalid, ok := NewFinder(Preamble, numbers).Next()
	if !ok {
		return errors.New("every number is a sum of its window")
	}
	run.Answer("Invalid number", invalid)
	weakness, err := Weakness(numbers, invalid)
	if err != nil {
		return err
	}
	run.Answer("Weakness", weakness)
	return nil
}
