// Package day19 validates messages against a set of numbered grammar rules,
// such as
//
//	0: 4 1 5
//	1: 2 3 | 3 2
//	4: "a"
//
// Rules may refer to themselves, so a rule can match a message prefix in
// more than one way. Matching therefore tracks the set of every possible
// remainder rather than a single greedy one.
package day19

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mikepurvis/advent-of-code/internal/grammar"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 19, Title: "Monster Messages", Solve: solve}

// Rule is either a literal, when Lit is non-empty, or a choice between
// alternative sequences of rule references.
type Rule struct {
	Lit  string
	Alts [][]int
}

func (r Rule) String() string {
	if r.Lit != "" {
		return fmt.Sprintf("%q", r.Lit)
	}
	alts := make([]string, len(r.Alts))
	for i, seq := range r.Alts {
		alts[i] = strings.Trim(fmt.Sprint(seq), "[]")
	}
	return strings.Join(alts, " | ")
}

// Grammar maps rule numbers to rules; messages are matched from rule 0.
type Grammar map[int]Rule

// Updates are the replacement rules that make the grammar self-referential.
var Updates = []string{
	"8: 42 | 42 8",
	"11: 42 31 | 42 11 31",
}

// ParseRule parses one `N: "c"` or `N: a b | c d` line.
func ParseRule(text string) (int, Rule, error) {
	l := grammar.NewLexer(text)
	id, rule, err := parseRule(l)
	if err == nil && !l.EOF() {
		err = l.Expected("end of rule")
	}
	return id, rule, err
}

// rule := number ":" ( quoted | seq { "|" seq } )
// seq  := number { number }
func parseRule(l *grammar.Lexer) (id int, rule Rule, err error) {
	if id, err = l.Int(); err != nil {
		return 0, rule, err
	}
	if err = l.Lit(":"); err != nil {
		return 0, rule, err
	}
	if l.Peek() == '"' {
		if rule.Lit, err = l.Quoted(); err != nil {
			return 0, rule, err
		}
		if rule.Lit == "" {
			return 0, rule, fmt.Errorf("rule %d: empty literal", id)
		}
		return id, rule, nil
	}
	for {
		var seq []int
		for {
			ref, err := l.Int()
			if err != nil {
				return 0, rule, err
			}
			seq = append(seq, ref)
			if c := l.Peek(); c < '0' || c > '9' {
				break
			}
		}
		rule.Alts = append(rule.Alts, seq)
		if !l.Accept("|") {
			return id, rule, nil
		}
	}
}

// Parse reads the rules section and returns the grammar along with the
// message lines that follow it.
func Parse(in input.Input) (Grammar, []input.Line, error) {
	sections := in.Paragraphs()
	if len(sections) != 2 {
		return nil, nil, fmt.Errorf("%v: expected rules and messages, got %d sections", in.Name, len(sections))
	}
	g := make(Grammar, len(sections[0]))
	for _, line := range sections[0] {
		id, rule, err := ParseRule(line.Text)
		if err != nil {
			return nil, nil, &input.Error{Location: line.Location, Err: err}
		}
		if _, dup := g[id]; dup {
			return nil, nil, line.Errorf("rule %d redefined", id)
		}
		g[id] = rule
	}
	if err := g.Check(); err != nil {
		return nil, nil, fmt.Errorf("%v: %w", in.Name, err)
	}
	return g, sections[1], nil
}

// Check verifies that rule 0 exists and that every reference resolves.
func (g Grammar) Check() error {
	if _, ok := g[0]; !ok {
		return fmt.Errorf("no rule 0")
	}
	ids := make([]int, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		for _, seq := range g[id].Alts {
			for _, ref := range seq {
				if _, ok := g[ref]; !ok {
					return fmt.Errorf("rule %d refers to undefined rule %d", id, ref)
				}
			}
		}
	}
	return nil
}

// Update returns a copy of g with each of the given rule lines replacing its
// numbered rule.
func (g Grammar) Update(lines ...string) (Grammar, error) {
	out := make(Grammar, len(g))
	for id, rule := range g {
		out[id] = rule
	}
	for _, line := range lines {
		id, rule, err := ParseRule(line)
		if err != nil {
			return nil, fmt.Errorf("update %q: %w", line, err)
		}
		out[id] = rule
	}
	return out, out.Check()
}

// Match reports whether rule 0 matches all of msg.
func (g Grammar) Match(msg string) bool {
	return slices.Contains(g.ends(0, msg), len(msg))
}

// Remainders returns the distinct suffixes of msg left over by every way
// rule id can match a prefix of it, longest first.
func (g Grammar) Remainders(id int, msg string) []string {
	ends := g.ends(id, msg)
	rest := make([]string, len(ends))
	for i, end := range ends {
		rest[i] = msg[end:]
	}
	return rest
}

// Count returns how many messages rule 0 fully matches.
func (g Grammar) Count(msgs []input.Line) (n int) {
	for _, msg := range msgs {
		if g.Match(msg.Text) {
			n++
		}
	}
	return n
}

func (g Grammar) ends(id int, msg string) []int {
	m := matcher{g: g, msg: msg, memo: make(map[span][]int)}
	for {
		m.state = make(map[span]visit)
		m.grew = false
		ends := m.match(id, 0)
		if !m.grew {
			return ends
		}
	}
}

type span struct{ id, pos int }

type visit uint8

const (
	visiting visit = iota + 1
	reentered
	finished
)

// matcher computes, for a rule and a starting offset, the sorted set of
// offsets at which the rule can finish. A left recursive reference reads the
// entry's current approximation; whenever such an entry then grows, another
// pass recomputes everything from the grown sets, until nothing grows. The
// memo only ever gains offsets, so this reaches the least fixpoint.
type matcher struct {
	g    Grammar
	msg  string
	memo map[span][]int

	state map[span]visit
	grew  bool
}

func (m *matcher) match(id, pos int) []int {
	key := span{id, pos}
	switch m.state[key] {
	case finished:
		return m.memo[key]
	case visiting, reentered:
		m.state[key] = reentered
		return m.memo[key]
	}
	m.state[key] = visiting

	rule := m.g[id]
	var ends []int
	if rule.Lit != "" {
		if strings.HasPrefix(m.msg[pos:], rule.Lit) {
			ends = []int{pos + len(rule.Lit)}
		}
	} else {
		for _, seq := range rule.Alts {
			ends = append(ends, m.sequence(seq, pos)...)
		}
	}
	prior := m.memo[key]
	ends = unique(append(ends, prior...))
	if m.state[key] == reentered && len(ends) != len(prior) {
		m.grew = true
	}
	m.memo[key] = ends
	m.state[key] = finished
	return ends
}

// sequence threads the working set of offsets through each rule in seq.
func (m *matcher) sequence(seq []int, pos int) []int {
	cur := []int{pos}
	for _, ref := range seq {
		var next []int
		for _, p := range cur {
			next = append(next, m.match(ref, p)...)
		}
		if cur = unique(next); len(cur) == 0 {
			break
		}
	}
	return cur
}

func unique(ns []int) []int {
	slices.Sort(ns)
	return slices.Compact(ns)
}

func solve(run *puzzle.Run) error {
	g, msgs, err := Parse(run.Input)
	if err != nil {
		return err
	}
	run.Answer("Matches by initial rules", g.Count(msgs))

	updated, err := g.Update(Updates...)
	if err != nil {
		return err
	}
	run.Answer("Matches by updated rules", updated.Count(msgs))
	return nil
}
