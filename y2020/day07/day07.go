// Package day07 answers questions about nested luggage rules, such as
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//	faded blue bags contain no other bags.
package day07

import (
	"sort"

	"bitbucket.org/creachadair/stringset"

	"github.com/mikepurvis/advent-of-code/internal/grammar"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 7, Title: "Handy Haversacks", Solve: solve}

// Target is the bag both answers are asked about.
const Target = "shiny gold"

// Content is a quantity of one bag type held directly by another.
type Content struct {
	Count int
	Bag   string
}

// Rules maps a bag type to the bags it must directly contain.
type Rules map[string][]Content

// Parse reads one rule per line.
func Parse(lines []input.Line) (Rules, error) {
	rules := make(Rules, len(lines))
	for _, line := range lines {
		bag, contents, err := parseRule(grammar.NewLexer(line.Text))
		if err != nil {
			return nil, &input.Error{Location: line.Location, Err: err}
		}
		rules[bag] = contents
	}
	return rules, nil
}

// rule := bag "contain" ( "no other bags" | content { "," content } ) "."
func parseRule(l *grammar.Lexer) (bag string, contents []Content, err error) {
	if bag, err = parseBag(l); err != nil {
		return "", nil, err
	}
	if err = l.Lit("contain"); err != nil {
		return "", nil, err
	}
	if !l.Accept("no other bags") {
		for {
			var c Content
			if c.Count, err = l.Int(); err != nil {
				return "", nil, err
			}
			if c.Bag, err = parseBag(l); err != nil {
				return "", nil, err
			}
			contents = append(contents, c)
			if !l.Accept(",") {
				break
			}
		}
	}
	if err = l.Lit("."); err != nil {
		return "", nil, err
	}
	if !l.EOF() {
		return "", nil, l.Expected("end of rule")
	}
	return bag, contents, nil
}

// bag := adjective color ( "bags" | "bag" )
func parseBag(l *grammar.Lexer) (string, error) {
	adj, err := l.Word()
	if err != nil {
		return "", err
	}
	color, err := l.Word()
	if err != nil {
		return "", err
	}
	if color == "bag" || color == "bags" {
		return "", l.Expected("bag color")
	}
	if !l.Accept("bags") {
		if err := l.Lit("bag"); err != nil {
			return "", err
		}
	}
	return adj + " " + color, nil
}

// Containers returns every bag type that can eventually hold bag.
func (rules Rules) Containers(bag string) []string {
	heldBy := make(map[string][]string)
	for outer, contents := range rules {
		for _, c := range contents {
			heldBy[c.Bag] = append(heldBy[c.Bag], outer)
		}
	}
	found := stringset.New()
	queue := []string{bag}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, outer := range heldBy[cur] {
			if !found.Contains(outer) {
				found.Add(outer)
				queue = append(queue, outer)
			}
		}
	}
	containers := found.Elements()
	sort.Strings(containers)
	return containers
}

// Inside counts the bags required within one bag.
func (rules Rules) Inside(bag string) int {
	memo := make(map[string]int)
	var inside func(string) int
	inside = func(bag string) int {
		if n, ok := memo[bag]; ok {
			return n
		}
		n := 0
		for _, c := range rules[bag] {
			n += c.Count * (1 + inside(c.Bag))
		}
		memo[bag] = n
		return n
	}
	return inside(bag)
}

func solve(run *puzzle.Run) error {
	rules, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	run.Logf("parsed %d rules", len(rules))
	run.Answer("Found bags", len(rules.Containers(Target)))
	run.Answer("Bags inside", rules.Inside(Target))
	return nil
}
