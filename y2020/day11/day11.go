// Package day11 simulates people filling the ferry's waiting area.
package day11

import (
	"github.com/mikepurvis/advent-of-code/internal/grid"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 11, Title: "Seating System", Solve: solve}

// Cell is one position of the seat layout.
type Cell uint8

const (
	Floor Cell = iota
	Empty
	Occupied
)

func (c Cell) glyph() byte { return ".L#"[c] }

// Layout is a seat grid.
type Layout = grid.Grid[Cell]

// Parse reads a layout of '.', 'L' and '#'.
func Parse(lines []input.Line) (Layout, error) {
	return grid.Parse(lines, func(b byte) (Cell, bool) {
		switch b {
		case '.':
			return Floor, true
		case 'L':
			return Empty, true
		case '#':
			return Occupied, true
		}
		return Floor, false
	})
}

// Format renders a layout back into its textual form.
func Format(layout Layout) string { return layout.Format(Cell.glyph) }

// Rules parameterizes the automaton: how occupied neighbours are counted and
// how many of them make a person leave.
type Rules struct {
	Neighbors func(layout Layout, p grid.PtInt) int
	Tolerance int
}

var (
	// Adjacent considers the eight surrounding cells.
	Adjacent = Rules{Neighbors: adjacent, Tolerance: 4}

	// Visible considers the first seat seen in each of the eight directions.
	Visible = Rules{Neighbors: visible, Tolerance: 5}
)

func adjacent(layout Layout, p grid.PtInt) (n int) {
	for _, d := range grid.Neighbors8 {
		if q := p.Add(d); layout.In(q) && layout.At(q) == Occupied {
			n++
		}
	}
	return n
}

func visible(layout Layout, p grid.PtInt) (n int) {
	for _, d := range grid.Neighbors8 {
		q := p.Add(d)
		for layout.In(q) && layout.At(q) == Floor {
			q = q.Add(d)
		}
		if layout.In(q) && layout.At(q) == Occupied {
			n++
		}
	}
	return n
}

// Step computes the next generation into a new layout, reporting whether any
// seat changed.
func (r Rules) Step(layout Layout) (Layout, bool) {
	next := layout.Clone()
	changed := false
	size := layout.Size()
	for y := range size.Y {
		for x := range size.X {
			p := grid.PtInt{X: x, Y: y}
			switch layout.At(p) {
			case Empty:
				if r.Neighbors(layout, p) == 0 {
					next.Set(p, Occupied)
					changed = true
				}
			case Occupied:
				if r.Neighbors(layout, p) >= r.Tolerance {
					next.Set(p, Empty)
					changed = true
				}
			}
		}
	}
	return next, changed
}

// Stabilize steps layout until nothing changes, returning the final layout
// and the number of rounds taken. It stops early with the last layout when
// cancel returns non-nil.
func (r Rules) Stabilize(layout Layout, cancel func() error) (Layout, int, error) {
	for rounds := 0; ; rounds++ {
		if cancel != nil {
			if err := cancel(); err != nil {
				return layout, rounds, err
			}
		}
		next, changed := r.Step(layout)
		if !changed {
			return layout, rounds, nil
		}
		layout = next
	}
}

// CountOccupied counts occupied seats.
func CountOccupied(layout Layout) int {
	return layout.Count(func(c Cell) bool { return c == Occupied })
}

func solve(run *puzzle.Run) error {
	layout, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	for _, part := range []struct {
		label string
		rules Rules
	}{
		{"Occupied seats", Adjacent},
		{"Occupied seats (visible)", Visible},
	} {
		final, rounds, err := part.rules.Stabilize(layout, run.Err)
		if err != nil {
			return err
		}
		run.Logf("stable after %d rounds", rounds)
		run.Answer(part.label, CountOccupied(final))
	}
	return nil
}
