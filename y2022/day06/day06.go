// Package day06 locks onto the communication device's signal.
package day06

import (
	"fmt"

	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2022, Day: 6, Title: "Tuning Trouble", Solve: solve}

// Marker lengths for the start of a packet and of a message.
const (
	PacketMarker  = 4
	MessageMarker = 14
)

// FindMarker returns how many bytes are read before the first run of n
// distinct bytes ends.
func FindMarker(signal string, n int) (int, error) {
	var last [256]int // 1 + index of each byte's latest occurrence
	start := 0
	for i := range len(signal) {
		c := signal[i]
		start = max(start, last[c])
		last[c] = i + 1
		if i+1-start == n {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no run of %d distinct characters", n)
}

func solve(run *puzzle.Run) error {
	signal := run.Input.Text()
	for _, part := range []struct {
		label string
		n     int
	}{
		{"Start of packet", PacketMarker},
		{"Start of message", MessageMarker},
	} {
		at, err := FindMarker(signal, part.n)
		if err != nil {
			return err
		}
		run.Answer(part.label, at)
	}
	return nil
}
