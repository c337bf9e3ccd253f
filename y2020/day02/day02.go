// Package day02 checks passwords against two corporate policies.
package day02

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 2, Title: "Password Philosophy", Solve: solve}

// Entry is one line of the password database.
type Entry struct {
	Min, Max int
	Letter   byte
	Password string
}

var entryPattern = regexp.MustCompile(`(?m)^[ \t]*([0-9]+)-([0-9]+) ([a-z]): ([a-z]*)[ \t]*\r?$`)

// Parse extracts every well formed entry from text.
func Parse(text string) []Entry {
	var entries []Entry
	for _, m := range entryPattern.FindAllStringSubmatch(text, -1) {
		// the pattern only admits digits
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		entries = append(entries, Entry{lo, hi, m[3][0], m[4]})
	}
	return entries
}

// Policy decides whether an entry's password is valid.
type Policy func(e Entry) bool

// CountPolicy requires the letter to occur between Min and Max times.
func CountPolicy(e Entry) bool {
	n := strings.Count(e.Password, string(e.Letter))
	return n >= e.Min && n <= e.Max
}

// PositionPolicy requires the letter at exactly one of the 1-based positions
// Min and Max.
func PositionPolicy(e Entry) bool {
	at := func(i int) bool { return i >= 1 && i <= len(e.Password) && e.Password[i-1] == e.Letter }
	return at(e.Min) != at(e.Max)
}

// CountValid returns how many entries satisfy policy.
func CountValid(entries []Entry, policy Policy) (n int) {
	for _, e := range entries {
		if policy(e) {
			n++
		}
	}
	return n
}

func solve(run *puzzle.Run) error {
	entries := Parse(string(run.Input.Data))
	run.Logf("parsed %d entries", len(entries))
	run.Answer("Policy 1 valid", CountValid(entries, CountPolicy))
	run.Answer("Policy 2 valid", CountValid(entries, PositionPolicy))
	return nil
}
