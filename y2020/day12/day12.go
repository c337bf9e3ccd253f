// Package day12 steers the ferry through a list of navigation instructions.
package day12

import (
	"fmt"
	"strconv"

	"github.com/mikepurvis/advent-of-code/internal/grid"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 12, Title: "Rain Risk", Solve: solve}

// Instr is an action letter with its value.
type Instr struct {
	Action byte
	Value  int
}

func (in Instr) String() string { return fmt.Sprintf("%c%d", in.Action, in.Value) }

var compass = map[byte]grid.PtInt{
	'N': {X: 0, Y: 1},
	'S': {X: 0, Y: -1},
	'E': {X: 1, Y: 0},
	'W': {X: -1, Y: 0},
}

// Parse reads one instruction per line.
func Parse(lines []input.Line) ([]Instr, error) {
	instrs := make([]Instr, 0, len(lines))
	for _, line := range lines {
		if len(line.Text) < 2 {
			return nil, line.Errorf("instruction too short")
		}
		in := Instr{Action: line.Text[0]}
		v, err := strconv.Atoi(line.Text[1:])
		if err != nil {
			return nil, line.Errorf("invalid value %q", line.Text[1:])
		}
		in.Value = v
		if v < 0 {
			return nil, line.Errorf("negative value in %v", in)
		}
		switch in.Action {
		case 'N', 'S', 'E', 'W', 'F':
		case 'L', 'R':
			if v%90 != 0 {
				return nil, line.Errorf("unsupported turn %v", in)
			}
		default:
			return nil, line.Errorf("unknown action %q", in.Action)
		}
		instrs = append(instrs, in)
	}
	return instrs, nil
}

func rotate(v grid.PtInt, in Instr) grid.PtInt {
	for range in.Value / 90 {
		if in.Action == 'L' {
			v = v.RotateLeft()
		} else {
			v = v.RotateRight()
		}
	}
	return v
}

// Navigate moves the ship itself with compass actions, starting east.
func Navigate(instrs []Instr) (ship grid.PtInt) {
	heading := compass['E']
	for _, in := range instrs {
		switch in.Action {
		case 'L', 'R':
			heading = rotate(heading, in)
		case 'F':
			ship = ship.Add(heading.Scale(in.Value))
		default:
			ship = ship.Add(compass[in.Action].Scale(in.Value))
		}
	}
	return ship
}

// NavigateWaypoint moves a waypoint relative to the ship with compass
// actions; forward moves the ship toward it.
func NavigateWaypoint(instrs []Instr) (ship grid.PtInt) {
	waypoint := grid.PtInt{X: 10, Y: 1}
	for _, in := range instrs {
		switch in.Action {
		case 'L', 'R':
			waypoint = rotate(waypoint, in)
		case 'F':
			ship = ship.Add(waypoint.Scale(in.Value))
		default:
			waypoint = waypoint.Add(compass[in.Action].Scale(in.Value))
		}
	}
	return ship
}

func solve(run *puzzle.Run) error {
	instrs, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	var origin grid.PtInt
	ship := Navigate(instrs)
	run.Logf("ship ends at %v", ship)
	run.Answer("Distance", ship.MDist(origin))
	ship = NavigateWaypoint(instrs)
	run.Logf("ship ends at %v", ship)
	run.Answer("Waypoint distance", ship.MDist(origin))
	return nil
}
