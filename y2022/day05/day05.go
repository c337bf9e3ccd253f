// Package day05 rearranges stacks of supply crates.
package day05

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2022, Day: 5, Title: "Supply Stacks", Solve: solve}

// Stack holds crates bottom first.
type Stack []byte

// Stacks are numbered from 1 in the input and indexed from 0 here.
type Stacks []Stack

// Clone deep copies the stacks.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, st := range s {
		out[i] = append(Stack(nil), st...)
	}
	return out
}

// Tops returns the top crate of each stack, or a space for an empty stack.
func (s Stacks) Tops() string {
	var sb strings.Builder
	for _, st := range s {
		if len(st) == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte(st[len(st)-1])
		}
	}
	return sb.String()
}

// Step moves Count crates from stack From to stack To, both 1-based.
type Step struct {
	Count, From, To int
}

var stepPattern = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// Parse reads the drawing and the rearrangement steps. The drawing is
// column sensitive: crate letters sit at columns 1, 5, 9, ... above a row of
// stack numbers, and lines may be cut short after the last crate. A blank
// line separates the stack numbers from the steps.
func Parse(in input.Input) (Stacks, []Step, error) {
	raw := in.RawLines()
	i := slices.IndexFunc(raw, isLabelRow)
	if i < 0 {
		return nil, nil, fmt.Errorf("%v: missing stack drawing", in.Name)
	}
	drawing, steps := raw[:i+1], raw[i+1:]
	if len(steps) > 0 {
		if sep := steps[0]; strings.TrimSpace(sep.Text) != "" {
			return nil, nil, sep.Errorf("expected blank line after stack numbers, found %q", sep.Text)
		}
		steps = steps[1:]
	}
	stacks, err := parseDrawing(drawing)
	if err != nil {
		return nil, nil, err
	}
	parsed, err := parseSteps(steps, len(stacks))
	return stacks, parsed, err
}

func isLabelRow(line input.Line) bool {
	fields := strings.Fields(line.Text)
	for _, field := range fields {
		if strings.Trim(field, "0123456789") != "" {
			return false
		}
	}
	return len(fields) > 0
}

func parseDrawing(lines []input.Line) (Stacks, error) {
	labels := lines[len(lines)-1]
	n := len(strings.Fields(labels.Text))
	if n == 0 || (len(strings.TrimRight(labels.Text, " "))+2)/4 != n {
		return nil, labels.Errorf("invalid stack labels %q", labels.Text)
	}
	stacks := make(Stacks, n)
	for i := len(lines) - 2; i >= 0; i-- {
		line := lines[i]
		for j := range n {
			col := 4*j + 1
			if col >= len(line.Text) || line.Text[col] == ' ' {
				continue
			}
			if c := line.Text[col]; c < 'A' || c > 'Z' {
				return nil, line.Errorf("column %d: invalid crate %q", col+1, c)
			}
			if len(stacks[j]) != len(lines)-2-i {
				return nil, line.Errorf("column %d: crate floating above stack %d", col+1, j+1)
			}
			stacks[j] = append(stacks[j], line.Text[col])
		}
	}
	return stacks, nil
}

func parseSteps(lines []input.Line, n int) ([]Step, error) {
	var steps []Step
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		m := stepPattern.FindStringSubmatch(text)
		if m == nil {
			return nil, line.Errorf("invalid step %q", text)
		}
		var s Step
		s.Count, _ = strconv.Atoi(m[1])
		s.From, _ = strconv.Atoi(m[2])
		s.To, _ = strconv.Atoi(m[3])
		if s.From < 1 || s.From > n || s.To < 1 || s.To > n {
			return nil, line.Errorf("no such stack in %q", text)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Crane applies one step to the stacks.
type Crane func(stacks Stacks, s Step) error

func take(stacks Stacks, s Step) (Stack, error) {
	from := stacks[s.From-1]
	if s.Count > len(from) {
		return nil, fmt.Errorf("cannot move %d crates from stack %d holding %d", s.Count, s.From, len(from))
	}
	stacks[s.From-1] = from[:len(from)-s.Count]
	return append(Stack(nil), from[len(from)-s.Count:]...), nil
}

// CrateMover9000 moves crates one at a time, reversing their order.
func CrateMover9000(stacks Stacks, s Step) error {
	moved, err := take(stacks, s)
	if err != nil {
		return err
	}
	for i := len(moved) - 1; i >= 0; i-- {
		stacks[s.To-1] = append(stacks[s.To-1], moved[i])
	}
	return nil
}

// CrateMover9001 moves crates as a block, keeping their order.
func CrateMover9001(stacks Stacks, s Step) error {
	moved, err := take(stacks, s)
	if err != nil {
		return err
	}
	stacks[s.To-1] = append(stacks[s.To-1], moved...)
	return nil
}

// Rearrange applies every step with crane to a copy of stacks.
func Rearrange(stacks Stacks, steps []Step, crane Crane) (Stacks, error) {
	stacks = stacks.Clone()
	for i, s := range steps {
		if err := crane(stacks, s); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return stacks, nil
}

func solve(run *puzzle.Run) error {
	stacks, steps, err := Parse(run.Input)
	if err != nil {
		return err
	}
	for _, part := range []struct {
		label string
		crane Crane
	}{
		{"CrateMover 9000", CrateMover9000},
		{"CrateMover 9001", CrateMover9001},
	} {
		final, err := Rearrange(stacks, steps, part.crane)
		if err != nil {
			return err
		}
		run.Answer(part.label, final.Tops())
	}
	return nil
}
