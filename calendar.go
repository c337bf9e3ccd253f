package main

import (
	"fmt"
	"slices"

	"github.com/mikepurvis/advent-of-code/internal/puzzle"
	"github.com/mikepurvis/advent-of-code/y2020"
	"github.com/mikepurvis/advent-of-code/y2022"
)

// Calendar is a list of days in (year, day) order.
type Calendar []puzzle.Day

// NewCalendar merges the given lists of days, panicking if any key repeats.
func NewCalendar(lists ...[]puzzle.Day) Calendar {
	var cal Calendar
	for _, days := range lists {
		cal = append(cal, days...)
	}
	slices.SortFunc(cal, func(a, b puzzle.Day) int { return compareKeys(a.Key(), b.Key()) })
	for i := 1; i < len(cal); i++ {
		if cal[i].Key() == cal[i-1].Key() {
			panic(fmt.Sprintf("duplicate calendar entry %v", cal[i].Key()))
		}
	}
	return cal
}

func compareKeys(a, b puzzle.Key) int {
	if a.Year != b.Year {
		return a.Year - b.Year
	}
	return a.Day - b.Day
}

var calendar = NewCalendar(y2020.Days(), y2022.Days())

// Lookup finds the day with the given key.
func (cal Calendar) Lookup(key puzzle.Key) (puzzle.Day, bool) {
	i, found := slices.BinarySearchFunc(cal, key, func(d puzzle.Day, k puzzle.Key) int {
		return compareKeys(d.Key(), k)
	})
	if !found {
		return puzzle.Day{}, false
	}
	return cal[i], true
}

// Year returns the days of one year.
func (cal Calendar) Year(year int) Calendar {
	var days Calendar
	for _, d := range cal {
		if d.Year == year {
			days = append(days, d)
		}
	}
	return days
}

// Years lists the distinct years present.
func (cal Calendar) Years() (years []int) {
	for _, d := range cal {
		if n := len(years); n == 0 || years[n-1] != d.Year {
			years = append(years, d.Year)
		}
	}
	return years
}
