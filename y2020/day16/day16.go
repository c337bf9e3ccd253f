// Package day16 decodes train ticket fields.
package day16

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"bitbucket.org/creachadair/stringset"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 16, Title: "Ticket Translation", Solve: solve}

// Range is a closed interval.
type Range struct{ Lo, Hi int }

// Contains reports whether lo <= v <= hi.
func (r Range) Contains(v int) bool { return r.Lo <= v && v <= r.Hi }

// Rule names a field and its valid ranges.
type Rule struct {
	Name   string
	Ranges []Range
}

// Check reports whether v falls in any of the rule's ranges.
func (r Rule) Check(v int) bool {
	for _, rng := range r.Ranges {
		if rng.Contains(v) {
			return true
		}
	}
	return false
}

// Ticket is a list of field values in position order.
type Ticket []int

// Notes are the parsed rules, your ticket and the nearby tickets.
type Notes struct {
	Rules  []Rule
	Yours  Ticket
	Nearby []Ticket
}

var rulePattern = regexp.MustCompile(`^([a-z ]+): ([0-9]+)-([0-9]+) or ([0-9]+)-([0-9]+)$`)

// ParseRule reads a "name: a-b or c-d" line.
func ParseRule(s string) (Rule, error) {
	m := rulePattern.FindStringSubmatch(s)
	if m == nil {
		return Rule{}, fmt.Errorf("invalid rule %q", s)
	}
	var n [4]int
	for i := range n {
		n[i], _ = strconv.Atoi(m[i+2])
	}
	return Rule{Name: m[1], Ranges: []Range{{n[0], n[1]}, {n[2], n[3]}}}, nil
}

// ParseTicket reads a comma separated list of values.
func ParseTicket(s string) (Ticket, error) {
	fields := strings.Split(s, ",")
	ticket := make(Ticket, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid ticket value %q", field)
		}
		ticket[i] = v
	}
	return ticket, nil
}

// Parse reads the three sections of the notes.
func Parse(in input.Input) (Notes, error) {
	var notes Notes
	sections := in.Paragraphs()
	if len(sections) != 3 {
		return notes, fmt.Errorf("%v: expected 3 sections, got %d", in.Name, len(sections))
	}
	for _, line := range sections[0] {
		rule, err := ParseRule(line.Text)
		if err != nil {
			return notes, &input.Error{Location: line.Location, Err: err}
		}
		notes.Rules = append(notes.Rules, rule)
	}
	tickets := func(section []input.Line, header string) ([]Ticket, error) {
		if section[0].Text != header {
			return nil, section[0].Errorf("expected %q", header)
		}
		var ts []Ticket
		for _, line := range section[1:] {
			t, err := ParseTicket(line.Text)
			if err != nil {
				return nil, &input.Error{Location: line.Location, Err: err}
			}
			if len(t) != len(notes.Rules) {
				return nil, line.Errorf("ticket has %d fields, expected %d", len(t), len(notes.Rules))
			}
			ts = append(ts, t)
		}
		return ts, nil
	}
	yours, err := tickets(sections[1], "your ticket:")
	if err != nil {
		return notes, err
	}
	if len(yours) != 1 {
		return notes, sections[1][0].Errorf("expected exactly one ticket")
	}
	notes.Yours = yours[0]
	notes.Nearby, err = tickets(sections[2], "nearby tickets:")
	return notes, err
}

// Invalid returns the values of t that satisfy no rule.
func (notes Notes) Invalid(t Ticket) (bad []int) {
	for _, v := range t {
		if !slices.ContainsFunc(notes.Rules, func(r Rule) bool { return r.Check(v) }) {
			bad = append(bad, v)
		}
	}
	return bad
}

// ErrorRate sums the invalid values over all nearby tickets.
func (notes Notes) ErrorRate() (sum int) {
	for _, t := range notes.Nearby {
		for _, v := range notes.Invalid(t) {
			sum += v
		}
	}
	return sum
}

// Valid returns the nearby tickets with no invalid values.
func (notes Notes) Valid() (valid []Ticket) {
	for _, t := range notes.Nearby {
		if len(notes.Invalid(t)) == 0 {
			valid = append(valid, t)
		}
	}
	return valid
}

// Fields resolves which rule applies to each ticket position: a position's
// candidates are the rules every valid ticket satisfies there, and positions
// with a single candidate are resolved and removed from the others until
// all are settled.
func (notes Notes) Fields() ([]string, error) {
	valid := append(notes.Valid(), notes.Yours)
	candidates := make([]stringset.Set, len(notes.Rules))
	for pos := range candidates {
		candidates[pos] = stringset.New()
		for _, rule := range notes.Rules {
			if !slices.ContainsFunc(valid, func(t Ticket) bool { return !rule.Check(t[pos]) }) {
				candidates[pos].Add(rule.Name)
			}
		}
	}

	fields := make([]string, len(candidates))
	for settled := 0; settled < len(fields); settled++ {
		pos := slices.IndexFunc(candidates, func(s stringset.Set) bool { return s.Len() == 1 })
		if pos < 0 {
			return nil, fmt.Errorf("ambiguous fields after resolving %d of %d", settled, len(fields))
		}
		name := candidates[pos].Elements()[0]
		fields[pos] = name
		for _, s := range candidates {
			s.Discard(name)
		}
	}
	return fields, nil
}

func solve(run *puzzle.Run) error {
	notes, err := Parse(run.Input)
	if err != nil {
		return err
	}
	run.Answer("Sum of invalid numbers", notes.ErrorRate())

	fields, err := notes.Fields()
	if err != nil {
		return err
	}
	run.Logf("fields: %v", fields)
	product := 1
	for pos, name := range fields {
		if strings.HasPrefix(name, "departure") {
			product *= notes.Yours[pos]
		}
	}
	run.Answer("Departure product", product)
	return nil
}
