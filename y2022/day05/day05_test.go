package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikepurvis/advent-of-code/internal/input"
)

const sample = "" +
	"    [D]    \n" +
	"[N] [C]\n" +
	"[Z] [M] [P]\n" +
	" 1   2   3 \n" +
	"\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2\n"

func TestSample(t *testing.T) {
	stacks, steps, err := Parse(input.FromString("sample", sample))
	require.NoError(t, err)
	assert.Equal(t, Stacks{Stack("ZN"), Stack("MCD"), Stack("P")}, stacks)
	assert.Equal(t, Step{Count: 3, From: 1, To: 3}, steps[1])

	for _, tc := range []struct {
		name  string
		crane Crane
		want  string
	}{
		{"9000", CrateMover9000, "CMZ"},
		{"9001", CrateMover9001, "MCD"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			final, err := Rearrange(stacks, steps, tc.crane)
			require.NoError(t, err)
			assert.Equal(t, tc.want, final.Tops())
		})
	}
	assert.Equal(t, "NDP", stacks.Tops(), "rearranging works on a copy")
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct{ name, text, err string }{
		{"no drawing", "\nmove 1 from 1 to 2\n", "bad: missing stack drawing"},
		{"labels", "[A]\n 1 2\n\n", `bad:2: invalid stack labels " 1 2"`},
		{"crate", "[a]\n 1 \n\n", `bad:1: column 2: invalid crate 'a'`},
		{"floating", "[A]\n   \n 1 \n\n", `bad:1: column 2: crate floating above stack 1`},
		{"floating no steps", "[A]\n\n 1 \n", `bad:1: column 2: crate floating above stack 1`},
		{"separator", "[A]\n 1 \nmove 1 from 1 to 1\n", `bad:3: expected blank line after stack numbers, found "move 1 from 1 to 1"`},
		{"step", "[A]\n 1 \n\nmove one from 1 to 1\n", `bad:4: invalid step "move one from 1 to 1"`},
		{"stack", "[A]\n 1 \n\nmove 1 from 1 to 2\n", `bad:4: no such stack in "move 1 from 1 to 2"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(input.FromString("bad", tc.text))
			assert.EqualError(t, err, tc.err)
		})
	}

	stacks, steps, err := Parse(input.FromString("gap", "    [B]\n        \n[A] [C]\n 1   2 \n\nmove 1 from 2 to 1\n"))
	require.Error(t, err, "an empty drawing row is not the separator")
	assert.EqualError(t, err, "gap:1: column 6: crate floating above stack 2")
	assert.Nil(t, stacks)
	assert.Nil(t, steps)

	stacks, steps, err = Parse(input.FromString("top", "        \n[A] [C]\n 1   2 \n\nmove 1 from 2 to 1\n"))
	require.NoError(t, err)
	assert.Equal(t, Stacks{Stack("A"), Stack("C")}, stacks)
	assert.Equal(t, []Step{{1, 2, 1}}, steps)

	stacks = Stacks{Stack("A"), nil}
	_, err = Rearrange(stacks, []Step{{2, 1, 2}}, CrateMover9001)
	assert.EqualError(t, err, "step 1: cannot move 2 crates from stack 1 holding 1")
}
