// Package day13 works out shuttle bus departures.
package day13

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 13, Title: "Shuttle Search", Solve: solve}

// Schedule lists bus ids by position; out of service buses ("x") are 0.
type Schedule []int

// Notes are the puzzle input: the earliest departure time and the schedule.
type Notes struct {
	Earliest int
	Buses    Schedule
}

// Parse reads the two note lines.
func Parse(lines []input.Line) (Notes, error) {
	var notes Notes
	if len(lines) != 2 {
		return notes, fmt.Errorf("expected 2 lines, got %d", len(lines))
	}
	t, err := lines[0].Int()
	if err != nil {
		return notes, err
	}
	notes.Earliest = t
	notes.Buses, err = ParseSchedule(lines[1].Text)
	if err != nil {
		return notes, &input.Error{Location: lines[1].Location, Err: err}
	}
	return notes, nil
}

// ParseSchedule reads a comma separated list of bus ids and "x".
func ParseSchedule(s string) (Schedule, error) {
	fields := strings.Split(s, ",")
	buses := make(Schedule, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "x" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid bus id %q", field)
		}
		buses[i] = id
	}
	return buses, nil
}

// InService returns the ids of running buses.
func (s Schedule) InService() (ids []int) {
	for _, id := range s {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// Wait is how long after t the next departure of bus is.
func Wait(t, bus int) int { return (bus - t%bus) % bus }

// Earliest returns the first bus to leave at or after t, and the wait for it.
func (s Schedule) Earliest(t int) (bus, wait int, err error) {
	ids := s.InService()
	if len(ids) == 0 {
		return 0, 0, errors.New("no buses in service")
	}
	bus, wait = ids[0], Wait(t, ids[0])
	for _, id := range ids[1:] {
		if w := Wait(t, id); w < wait {
			bus, wait = id, w
		}
	}
	return bus, wait, nil
}

// Sequence finds the earliest time t at which each bus departs at t plus its
// schedule offset. Constraints are satisfied one at a time, stepping by the
// product of the ids already satisfied; ids are assumed pairwise coprime.
func (s Schedule) Sequence() int {
	t, step := 0, 1
	for offset, bus := range s {
		if bus == 0 {
			continue
		}
		for (t+offset)%bus != 0 {
			t += step
		}
		step *= bus
	}
	return t
}

func solve(run *puzzle.Run) error {
	notes, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	bus, wait, err := notes.Buses.Earliest(notes.Earliest)
	if err != nil {
		return err
	}
	run.Logf("bus %d leaves in %d minutes", bus, wait)
	run.Answer("Multiple", bus*wait)
	run.Answer("Sequence time", notes.Buses.Sequence())
	return nil
}
