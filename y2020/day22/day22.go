// Package day22 plays the crab's card game.
package day22

import (
	"fmt"
	"strings"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 22, Title: "Crab Combat", Solve: solve}

// Deck is a pile of cards, top first.
type Deck []int

// Score weights each card by its position counted from the bottom.
func (d Deck) Score() (score int) {
	for i, card := range d {
		score += card * (len(d) - i)
	}
	return score
}

func (d Deck) key() string {
	var sb strings.Builder
	for _, card := range d {
		fmt.Fprintf(&sb, "%d,", card)
	}
	return sb.String()
}

// Parse reads both players' decks.
func Parse(in input.Input) ([2]Deck, error) {
	var decks [2]Deck
	sections := in.Paragraphs()
	if len(sections) != 2 {
		return decks, fmt.Errorf("%v: expected 2 decks, got %d", in.Name, len(sections))
	}
	for i, section := range sections {
		if want := fmt.Sprintf("Player %d:", i+1); section[0].Text != want {
			return decks, section[0].Errorf("expected %q", want)
		}
		cards, err := input.Ints(section[1:])
		if err != nil {
			return decks, err
		}
		decks[i] = cards
	}
	return decks, nil
}

// Game is the state of one game; games may spawn sub-games.
type Game struct {
	Decks     [2]Deck
	Recursive bool
	Rounds    int

	seen map[string]struct{}
}

// NewGame copies decks into a fresh game.
func NewGame(decks [2]Deck, recursive bool) *Game {
	g := &Game{Recursive: recursive}
	for i, d := range decks {
		g.Decks[i] = append(Deck(nil), d...)
	}
	if recursive {
		g.seen = make(map[string]struct{})
	}
	return g
}

// Play runs rounds until one player holds every card, returning the winning
// player index. In a recursive game, a repeated deck configuration ends the
// game in player 0's favour.
func (g *Game) Play() int {
	for len(g.Decks[0]) > 0 && len(g.Decks[1]) > 0 {
		if g.Recursive {
			key := g.Decks[0].key() + "|" + g.Decks[1].key()
			if _, dup := g.seen[key]; dup {
				return 0
			}
			g.seen[key] = struct{}{}
		}
		g.round()
	}
	if len(g.Decks[0]) == 0 {
		return 1
	}
	return 0
}

func (g *Game) round() {
	g.Rounds++
	a, b := g.Decks[0][0], g.Decks[1][0]
	g.Decks[0], g.Decks[1] = g.Decks[0][1:], g.Decks[1][1:]

	winner := 0
	if b > a {
		winner = 1
	}
	if g.Recursive && len(g.Decks[0]) >= a && len(g.Decks[1]) >= b {
		winner = NewGame([2]Deck{g.Decks[0][:a], g.Decks[1][:b]}, true).Play()
	}

	cards := [2]int{a, b}
	g.Decks[winner] = append(g.Decks[winner], cards[winner], cards[1-winner])
}

func solve(run *puzzle.Run) error {
	decks, err := Parse(run.Input)
	if err != nil {
		return err
	}
	for _, part := range []struct {
		label     string
		recursive bool
	}{
		{"Winning score", false},
		{"Recursive winning score", true},
	} {
		g := NewGame(decks, part.recursive)
		winner := g.Play()
		run.Logf("player %d wins after %d rounds", winner+1, g.Rounds)
		run.Answer(part.label, g.Decks[winner].Score())
	}
	return nil
}
