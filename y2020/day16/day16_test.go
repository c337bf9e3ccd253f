package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikepurvis/advent-of-code/internal/input"
)

func TestRule(t *testing.T) {
	rule, err := ParseRule("test: 1-3 or 5-7")
	require.NoError(t, err)
	assert.Equal(t, "test", rule.Name)
	assert.True(t, rule.Check(3))
	assert.False(t, rule.Check(4))
	assert.True(t, rule.Check(5))

	_, err = ParseRule("test: 1-3")
	assert.EqualError(t, err, `invalid rule "test: 1-3"`)
}

func TestErrorRate(t *testing.T) {
	notes, err := Parse(input.FromString("sample", `
    class: 1-3 or 5-7
    row: 6-11 or 33-44
    seat: 13-40 or 45-50

    your ticket:
    7,1,14

    nearby tickets:
    7,3,47
    40,4,50
    55,2,20
    38,6,12`))
	require.NoError(t, err)
	assert.Equal(t, Ticket{7, 1, 14}, notes.Yours)
	assert.Equal(t, []int{4}, notes.Invalid(notes.Nearby[1]))
	assert.Equal(t, 71, notes.ErrorRate())
	assert.Equal(t, []Ticket{{7, 3, 47}}, notes.Valid())
}

func TestFields(t *testing.T) {
	notes, err := Parse(input.FromString("sample", `
    class: 0-1 or 4-19
    row: 0-5 or 8-19
    seat: 0-13 or 16-19

    your ticket:
    11,12,13

    nearby tickets:
    3,9,18
    15,1,5
    5,14,9`))
	require.NoError(t, err)
	fields, err := notes.Fields()
	require.NoError(t, err)
	assert.Equal(t, []string{"row", "class", "seat"}, fields)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct{ name, text, err string }{
		{"sections", "a: 1-2 or 3-4\n", "bad: expected 3 sections, got 1"},
		{"header", "a: 1-2 or 3-4\n\nmine:\n1\n\nnearby tickets:\n1\n", `bad:3: expected "your ticket:"`},
		{"width", "a: 1-2 or 3-4\n\nyour ticket:\n1,2\n\nnearby tickets:\n1\n", "bad:4: ticket has 2 fields, expected 1"},
		{"value", "a: 1-2 or 3-4\n\nyour ticket:\n1\n\nnearby tickets:\nx\n", `bad:7: invalid ticket value "x"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(input.FromString("bad", tc.text))
			assert.EqualError(t, err, tc.err)
		})
	}
}
