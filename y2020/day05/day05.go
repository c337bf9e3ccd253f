// Package day05 decodes binary space partitioned boarding passes.
package day05

import (
	"fmt"
	"slices"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 5, Title: "Binary Boarding", Solve: solve}

// Seat is a row and column on the plane.
type Seat struct {
	Row    int
	Column int
}

// ID returns the seat's unique id.
func (s Seat) ID() int { return s.Row*8 + s.Column }

// ParseSeat decodes a ten character pass: seven F/B row bits then three L/R
// column bits, most significant first.
func ParseSeat(code string) (Seat, error) {
	if len(code) != 10 {
		return Seat{}, fmt.Errorf("invalid boarding pass %q", code)
	}
	var s Seat
	for i := 0; i < 10; i++ {
		var bit int
		switch c := code[i]; {
		case i < 7 && c == 'B', i >= 7 && c == 'R':
			bit = 1
		case i < 7 && c == 'F', i >= 7 && c == 'L':
		default:
			return Seat{}, fmt.Errorf("invalid boarding pass %q", code)
		}
		if i < 7 {
			s.Row = s.Row<<1 | bit
		} else {
			s.Column = s.Column<<1 | bit
		}
	}
	return s, nil
}

// FindGap returns the single missing id whose two neighbours are present.
func FindGap(ids []int) (int, bool) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] == 2 {
			return sorted[i-1] + 1, true
		}
	}
	return 0, false
}

func solve(run *puzzle.Run) error {
	var ids []int
	for _, line := range run.Input.Lines() {
		seat, err := ParseSeat(line.Text)
		if err != nil {
			return &input.Error{Location: line.Location, Err: err}
		}
		ids = append(ids, seat.ID())
	}
	if len(ids) == 0 {
		return fmt.Errorf("no boarding passes")
	}
	run.Answer("Highest ID", slices.Max(ids))
	if gap, ok := FindGap(ids); ok {
		run.Answer("Our seat", gap)
	}
	return nil
}
