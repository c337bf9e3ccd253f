// Package puzzle defines the shape shared by every day's solution: a Day
// names the puzzle and solves it against a Run, which carries the loaded
// input and collects the answers.
package puzzle

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mikepurvis/advent-of-code/internal/input"
)

// Key identifies a day within the calendar.
type Key struct {
	Year int
	Day  int
}

func (k Key) String() string { return fmt.Sprintf("%d/%02d", k.Year, k.Day) }

// ParseKey parses keys like "2020/19", "2020-19", or the pair "2020", "19".
func ParseKey(parts ...string) (Key, error) {
	if len(parts) == 1 {
		parts = strings.FieldsFunc(parts[0], func(r rune) bool {
			return r == '/' || r == '-' || r == ' '
		})
	}
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("invalid day key %q, expected YEAR/DAY", strings.Join(parts, " "))
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Key{}, fmt.Errorf("invalid year %q", parts[0])
	}
	day, err := strconv.Atoi(strings.TrimPrefix(parts[1], "day"))
	if err != nil || day < 1 || day > 25 {
		return Key{}, fmt.Errorf("invalid day %q", parts[1])
	}
	return Key{year, day}, nil
}

// Day is one standalone puzzle solution.
type Day struct {
	Year  int
	Day   int
	Title string

	// Builtin, if set, is the puzzle input given inline by the puzzle text
	// rather than as a separate file.
	Builtin string

	Solve func(run *Run) error
}

// Key returns the day's calendar key.
func (d Day) Key() Key { return Key{d.Year, d.Day} }

func (d Day) String() string { return fmt.Sprintf("%v %s", d.Key(), d.Title) }

// Answer is one labeled result of a day.
type Answer struct {
	Label string
	Value interface{}
}

func (a Answer) String() string {
	if a.Label == "" {
		return fmt.Sprint(a.Value)
	}
	return fmt.Sprintf("%s: %v", a.Label, a.Value)
}

// Run holds the state of solving one Day.
type Run struct {
	Input input.Input

	ctx     context.Context
	logfn   func(mess string, args ...interface{})
	answers []Answer
}

// NewRun creates a run over in; logfn may be nil.
func NewRun(ctx context.Context, in input.Input, logfn func(mess string, args ...interface{})) *Run {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Run{Input: in, ctx: ctx, logfn: logfn}
}

// Context returns the context governing the run.
func (run *Run) Context() context.Context { return run.ctx }

// Err returns non-nil once the run has been canceled; long searches poll it.
func (run *Run) Err() error { return run.ctx.Err() }

// Logf emits a trace message, if the run has a log function.
func (run *Run) Logf(mess string, args ...interface{}) {
	if run.logfn != nil {
		run.logfn(mess, args...)
	}
}

// Answer records a labeled result.
func (run *Run) Answer(label string, value interface{}) {
	run.answers = append(run.answers, Answer{label, value})
}

// Answers returns all results recorded so far.
func (run *Run) Answers() []Answer { return run.answers }
