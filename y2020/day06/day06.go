// Package day06 tallies customs declaration answers per group.
package day06

import (
	"bitbucket.org/creachadair/stringset"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 6, Title: "Custom Customs", Solve: solve}

// Group holds the set of questions each person answered "yes" to.
type Group []stringset.Set

func answers(line string) stringset.Set {
	s := stringset.New()
	for _, r := range line {
		s.Add(string(r))
	}
	return s
}

// ParseGroups reads blank-line separated groups, one person per line.
func ParseGroups(in input.Input) []Group {
	var groups []Group
	for _, para := range in.Paragraphs() {
		g := make(Group, len(para))
		for i, line := range para {
			g[i] = answers(line.Text)
		}
		groups = append(groups, g)
	}
	return groups
}

// Anyone returns the questions at least one person answered.
func (g Group) Anyone() stringset.Set {
	all := stringset.New()
	for _, person := range g {
		all = all.Union(person)
	}
	return all
}

// Everyone returns the questions every person answered.
func (g Group) Everyone() stringset.Set {
	if len(g) == 0 {
		return stringset.New()
	}
	common := g[0]
	for _, person := range g[1:] {
		common = common.Intersect(person)
	}
	return common
}

// Sizes maps each group through count.
func Sizes(groups []Group, count func(Group) stringset.Set) []int {
	sizes := make([]int, len(groups))
	for i, g := range groups {
		sizes[i] = count(g).Len()
	}
	return sizes
}

func sum(ns []int) (total int) {
	for _, n := range ns {
		total += n
	}
	return total
}

func solve(run *puzzle.Run) error {
	groups := ParseGroups(run.Input)
	run.Answer("Union sum", sum(Sizes(groups, Group.Anyone)))
	run.Answer("Intersection sum", sum(Sizes(groups, Group.Everyone)))
	return nil
}
