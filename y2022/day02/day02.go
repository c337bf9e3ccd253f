// Package day02 scores a rock paper scissors strategy guide.
package day02

import (
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2022, Day: 2, Title: "Rock Paper Scissors", Solve: solve}

// Shape is rock (0), paper (1) or scissors (2); each beats the one before it.
type Shape int

// Score is the shape's contribution to a round's score.
func (s Shape) Score() int { return int(s) + 1 }

// Outcome scores a round played with mine against theirs.
func Outcome(mine, theirs Shape) int {
	switch (mine - theirs + 3) % 3 {
	case 0:
		return 3
	case 1:
		return 6
	}
	return 0
}

// Round is one line of the guide: the opponent's shape, A-C, and the
// second column, X-Z, whose meaning depends on the strategy.
type Round struct {
	Theirs Shape
	Column int
}

// Parse reads lines like "A Y".
func Parse(lines []input.Line) ([]Round, error) {
	rounds := make([]Round, 0, len(lines))
	for _, line := range lines {
		t := line.Text
		if len(t) != 3 || t[0] < 'A' || t[0] > 'C' || t[1] != ' ' || t[2] < 'X' || t[2] > 'Z' {
			return nil, line.Errorf("invalid round %q", t)
		}
		rounds = append(rounds, Round{Shape(t[0] - 'A'), int(t[2] - 'X')})
	}
	return rounds, nil
}

// Strategy decides which shape to play for a round.
type Strategy func(r Round) Shape

// Play reads the second column as the shape to play.
func Play(r Round) Shape { return Shape(r.Column) }

// Result reads the second column as the desired outcome: lose, draw or win.
func Result(r Round) Shape { return (r.Theirs + Shape(r.Column) + 2) % 3 }

// Total sums the score of every round under strategy.
func Total(rounds []Round, strategy Strategy) (total int) {
	for _, r := range rounds {
		mine := strategy(r)
		total += mine.Score() + Outcome(mine, r.Theirs)
	}
	return total
}

func solve(run *puzzle.Run) error {
	rounds, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	run.Answer("Total score", Total(rounds, Play))
	run.Answer("Total score by outcome", Total(rounds, Result))
	return nil
}
