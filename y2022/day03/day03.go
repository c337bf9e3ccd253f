// Package day03 finds misplaced items in rucksack compartments.
package day03

import (
	"fmt"

	"bitbucket.org/creachadair/stringset"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2022, Day: 3, Title: "Rucksack Reorganization", Solve: solve}

// Priority ranks items a-z as 1-26 and A-Z as 27-52, or 0 for anything else.
func Priority(item byte) int {
	switch {
	case 'a' <= item && item <= 'z':
		return int(item-'a') + 1
	case 'A' <= item && item <= 'Z':
		return int(item-'A') + 27
	}
	return 0
}

func items(s string) stringset.Set {
	set := stringset.New()
	for i := range len(s) {
		set.Add(s[i : i+1])
	}
	return set
}

// Common returns the single item present in every one of sets.
func Common(sets ...stringset.Set) (byte, error) {
	common := sets[0]
	for _, s := range sets[1:] {
		common = common.Intersect(s)
	}
	if common.Len() != 1 {
		return 0, fmt.Errorf("expected one common item, found %v", common)
	}
	return common.Elements()[0][0], nil
}

// Rucksack holds the items of one line split into its two compartments.
type Rucksack struct {
	Left, Right string
}

// All returns every item in the rucksack.
func (r Rucksack) All() stringset.Set { return items(r.Left + r.Right) }

// Parse splits each line in half.
func Parse(lines []input.Line) ([]Rucksack, error) {
	sacks := make([]Rucksack, 0, len(lines))
	for _, line := range lines {
		t := line.Text
		if len(t)%2 != 0 {
			return nil, line.Errorf("odd number of items")
		}
		sacks = append(sacks, Rucksack{t[:len(t)/2], t[len(t)/2:]})
	}
	return sacks, nil
}

// Misplaced sums the priorities of the item shared by both compartments of
// each rucksack.
func Misplaced(sacks []Rucksack) (sum int, err error) {
	for i, r := range sacks {
		item, err := Common(items(r.Left), items(r.Right))
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		sum += Priority(item)
	}
	return sum, nil
}

// Badges sums the priorities of the item common to each group of three.
func Badges(sacks []Rucksack) (sum int, err error) {
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("%d rucksacks do not form groups of three", len(sacks))
	}
	for i := 0; i < len(sacks); i += 3 {
		item, err := Common(sacks[i].All(), sacks[i+1].All(), sacks[i+2].All())
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i/3+1, err)
		}
		sum += Priority(item)
	}
	return sum, nil
}

func solve(run *puzzle.Run) error {
	sacks, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	sum, err := Misplaced(sacks)
	if err != nil {
		return err
	}
	run.Answer("Priority sum", sum)
	if sum, err = Badges(sacks); err != nil {
		return err
	}
	run.Answer("Badge sum", sum)
	return nil
}
