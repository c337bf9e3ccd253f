// Package day04 compares the section assignments of pairs of elves.
package day04

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2022, Day: 4, Title: "Camp Cleanup", Solve: solve}

// Range is a closed interval of section ids.
type Range struct{ Lo, Hi int }

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Lo, r.Hi) }

// Contains reports whether o lies entirely within r; touching bounds count.
func (r Range) Contains(o Range) bool { return r.Lo <= o.Lo && o.Hi <= r.Hi }

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool { return r.Lo <= o.Hi && o.Lo <= r.Hi }

// Pair is the two assignments on one line.
type Pair [2]Range

var pairPattern = regexp.MustCompile(`^(\d+)-(\d+),(\d+)-(\d+)$`)

// Parse reads lines like "2-4,6-8".
func Parse(lines []input.Line) ([]Pair, error) {
	pairs := make([]Pair, 0, len(lines))
	for _, line := range lines {
		m := pairPattern.FindStringSubmatch(line.Text)
		if m == nil {
			return nil, line.Errorf("invalid assignment pair %q", line.Text)
		}
		var n [4]int
		for i := range n {
			n[i], _ = strconv.Atoi(m[i+1])
		}
		p := Pair{{n[0], n[1]}, {n[2], n[3]}}
		for _, r := range p {
			if r.Lo > r.Hi {
				return nil, line.Errorf("backwards range %v", r)
			}
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Count returns how many pairs satisfy pred.
func Count(pairs []Pair, pred func(Pair) bool) (n int) {
	for _, p := range pairs {
		if pred(p) {
			n++
		}
	}
	return n
}

// FullyContained reports whether either range contains the other.
func FullyContained(p Pair) bool { return p[0].Contains(p[1]) || p[1].Contains(p[0]) }

// AnyOverlap reports whether the ranges overlap at all.
func AnyOverlap(p Pair) bool { return p[0].Overlaps(p[1]) }

func solve(run *puzzle.Run) error {
	pairs, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	run.Answer("Fully contained", Count(pairs, FullyContained))
	run.Answer("Any overlap", Count(pairs, AnyOverlap))
	return nil
}
