// Package day24 flips hexagonal lobby floor tiles.
package day24

import (
	"fmt"

	"github.com/mikepurvis/advent-of-code/internal/grid"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 24, Title: "Lobby Layout", Solve: solve}

// Dir is one of the six hex directions.
type Dir uint8

const (
	E Dir = iota
	SE
	SW
	W
	NW
	NE
)

var dirNames = [...]string{E: "e", SE: "se", SW: "sw", W: "w", NW: "nw", NE: "ne"}

// Offsets are the axial coordinate steps for each direction.
var Offsets = [...]grid.PtInt{
	E:  {X: 1, Y: 0},
	SE: {X: 1, Y: -1},
	SW: {X: 0, Y: -1},
	W:  {X: -1, Y: 0},
	NW: {X: -1, Y: 1},
	NE: {X: 0, Y: 1},
}

func (d Dir) String() string { return dirNames[d] }

// ParseDirs splits an undelimited run of directions such as "esenee".
func ParseDirs(s string) ([]Dir, error) {
	var dirs []Dir
	for i := 0; i < len(s); {
		var d Dir
		switch {
		case s[i] == 'e':
			d = E
		case s[i] == 'w':
			d = W
		case i+1 < len(s) && (s[i] == 'n' || s[i] == 's'):
			switch s[i : i+2] {
			case "ne":
				d = NE
			case "nw":
				d = NW
			case "se":
				d = SE
			case "sw":
				d = SW
			default:
				return nil, fmt.Errorf("invalid direction %q at %d", s[i:i+2], i+1)
			}
			i++
		default:
			return nil, fmt.Errorf("invalid direction %q at %d", s[i:], i+1)
		}
		dirs = append(dirs, d)
		i++
	}
	return dirs, nil
}

// Walk sums the steps from the reference tile.
func Walk(dirs []Dir) (p grid.PtInt) {
	for _, d := range dirs {
		p = p.Add(Offsets[d])
	}
	return p
}

// Floor holds the set of black tiles.
type Floor map[grid.PtInt]struct{}

// Flip toggles the tile at p.
func (f Floor) Flip(p grid.PtInt) {
	if _, black := f[p]; black {
		delete(f, p)
	} else {
		f[p] = struct{}{}
	}
}

// Parse flips the tile identified by each line, starting from all white.
func Parse(lines []input.Line) (Floor, error) {
	f := make(Floor)
	for _, line := range lines {
		dirs, err := ParseDirs(line.Text)
		if err != nil {
			return nil, &input.Error{Location: line.Location, Err: err}
		}
		f.Flip(Walk(dirs))
	}
	return f, nil
}

// Step returns the next day's floor: a black tile with zero or more than two
// black neighbours turns white, and a white tile with exactly two turns
// black.
func (f Floor) Step() Floor {
	counts := make(map[grid.PtInt]int, len(f)*6)
	for p := range f {
		for _, d := range Offsets {
			counts[p.Add(d)]++
		}
	}
	next := make(Floor, len(f))
	for p, n := range counts {
		_, black := f[p]
		if n == 2 || (black && n == 1) {
			next[p] = struct{}{}
		}
	}
	return next
}

// Days is how long the exhibit runs.
const Days = 100

func solve(run *puzzle.Run) error {
	floor, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	run.Answer("Flipped tiles", len(floor))
	for day := 1; day <= Days; day++ {
		if err := run.Err(); err != nil {
			return err
		}
		floor = floor.Step()
	}
	run.Answer(fmt.Sprintf("Black tiles after %d days", Days), len(floor))
	return nil
}
