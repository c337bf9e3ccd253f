// Package y2022 lists the 2022 puzzle solutions.
package y2022

import (
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
	"github.com/mikepurvis/advent-of-code/y2022/day01"
	"github.com/mikepurvis/advent-of-code/y2022/day02"
	"github.com/mikepurvis/advent-of-code/y2022/day03"
	"github.com/mikepurvis/advent-of-code/y2022/day04"
	"github.com/mikepurvis/advent-of-code/y2022/day05"
	"github.com/mikepurvis/advent-of-code/y2022/day06"
)

// Days returns every solved day of 2022 in calendar order.
func Days() []puzzle.Day {
	return []puzzle.Day{
		day01.Day,
		day02.Day,
		day03.Day,
		day04.Day,
		day05.Day,
		day06.Day,
	}
}
