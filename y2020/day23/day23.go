// Package day23 plays the crab's cup shuffling game.
package day23

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{
	Year:    2020,
	Day:     23,
	Title:   "Crab Cups",
	Builtin: "925176834",
	Solve:   solve,
}

// Circle is a ring of cups labelled 1..N stored as a successor table: next[c]
// is the label of the cup clockwise of cup c. Index 0 is unused.
type Circle struct {
	next    []int32
	current int32
}

// NewCircle arranges the labels in order, followed by the cups
// len(labels)+1 through total when total exceeds the labels given.
func NewCircle(labels string, total int) (*Circle, error) {
	if labels == "" {
		return nil, errors.New("no cups")
	}
	total = max(total, len(labels))
	c := &Circle{next: make([]int32, total+1)}
	order := make([]int32, 0, total)
	seen := make([]bool, len(labels)+1)
	for _, r := range labels {
		n := int(r - '0')
		if n < 1 || n > len(labels) || seen[n] {
			return nil, fmt.Errorf("invalid cup labels %q", labels)
		}
		seen[n] = true
		order = append(order, int32(n))
	}
	for n := len(labels) + 1; n <= total; n++ {
		order = append(order, int32(n))
	}
	for i, cup := range order {
		c.next[cup] = order[(i+1)%len(order)]
	}
	c.current = order[0]
	return c, nil
}

// Move performs one round: the three cups after the current one are picked
// up and placed after the destination cup, the highest label below the
// current one that was not picked up, wrapping to the highest label overall.
func (c *Circle) Move() {
	cur := c.current
	a := c.next[cur]
	b := c.next[a]
	d := c.next[b]
	c.next[cur] = c.next[d]

	dest := cur
	for {
		if dest--; dest == 0 {
			dest = int32(len(c.next) - 1)
		}
		if dest != a && dest != b && dest != d {
			break
		}
	}
	c.next[d] = c.next[dest]
	c.next[dest] = a
	c.current = c.next[cur]
}

// After returns the first n labels clockwise after cup 1.
func (c *Circle) After(n int) []int {
	labels := make([]int, 0, n)
	for cup := c.next[1]; len(labels) < n && cup != 1; cup = c.next[cup] {
		labels = append(labels, int(cup))
	}
	return labels
}

// Labels renders every label after cup 1 as a string.
func (c *Circle) Labels() string {
	var sb strings.Builder
	for _, label := range c.After(len(c.next)) {
		fmt.Fprint(&sb, label)
	}
	return sb.String()
}

// Play runs moves rounds, checking cancel periodically.
func (c *Circle) Play(moves int, cancel func() error) error {
	for i := range moves {
		if cancel != nil && i%(1<<20) == 0 {
			if err := cancel(); err != nil {
				return err
			}
		}
		c.Move()
	}
	return nil
}

// Cups and Moves size the second game.
const (
	Cups  = 1_000_000
	Moves = 10_000_000
)

func solve(run *puzzle.Run) error {
	labels := run.Input.Text()

	small, err := NewCircle(labels, 0)
	if err != nil {
		return err
	}
	if err := small.Play(100, run.Err); err != nil {
		return err
	}
	run.Answer("Cups", small.Labels())

	big, err := NewCircle(labels, Cups)
	if err != nil {
		return err
	}
	if err := big.Play(Moves, run.Err); err != nil {
		return err
	}
	stars := big.After(2)
	run.Logf("stars under cups %v", stars)
	run.Answer("Star product", stars[0]*stars[1])
	return nil
}
