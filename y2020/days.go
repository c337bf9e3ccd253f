// Package y2020 lists the 2020 puzzle solutions.
package y2020

import (
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
	"github.com/mikepurvis/advent-of-code/y2020/day01"
	"github.com/mikepurvis/advent-of-code/y2020/day02"
	"github.com/mikepurvis/advent-of-code/y2020/day03"
	"github.com/mikepurvis/advent-of-code/y2020/day04"
	"github.com/mikepurvis/advent-of-code/y2020/day05"
	"github.com/mikepurvis/advent-of-code/y2020/day06"
	"github.com/mikepurvis/advent-of-code/y2020/day07"
	"github.com/mikepurvis/advent-of-code/y2020/day08"
	"github.com/mikepurvis/advent-of-code/y2020/day09"
	"github.com/mikepurvis/advent-of-code/y2020/day10"
	"github.com/mikepurvis/advent-of-code/y2020/day11"
	"github.com/mikepurvis/advent-of-code/y2020/day12"
	"github.com/mikepurvis/advent-of-code/y2020/day13"
	"github.com/mikepurvis/advent-of-code/y2020/day14"
	"github.com/mikepurvis/advent-of-code/y2020/day16"
	"github.com/mikepurvis/advent-of-code/y2020/day19"
	"github.com/mikepurvis/advent-of-code/y2020/day22"
	"github.com/mikepurvis/advent-of-code/y2020/day23"
	"github.com/mikepurvis/advent-of-code/y2020/day24"
)

// Days returns every solved day of 2020 in calendar order.
func Days() []puzzle.Day {
	return []puzzle.Day{
		day01.Day,
		day02.Day,
		day03.Day,
		day04.Day,
		day05.Day,
		day06.Day,
		day07.Day,
		day08.Day,
		day09.Day,
		day10.Day,
		day11.Day,
		day12.Day,
		day13.Day,
		day14.Day,
		day16.Day,
		day19.Day,
		day22.Day,
		day23.Day,
		day24.Day,
	}
}
