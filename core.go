package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mikepurvis/advent-of-code/internal/flushio"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

// DefaultInputPath is where a day's input is read from unless configured
// otherwise.
const DefaultInputPath = "input.txt"

// Runner solves days one at a time or concurrently; answer output from
// concurrent runs is serialized per day.
type Runner struct {
	logfn     func(mess string, args ...interface{})
	inputPath string
	format    Format
	out       *flushio.Serial
}

// Result is the outcome of running one day.
type Result struct {
	Key     puzzle.Key
	Title   string
	Answers []puzzle.Answer
	Elapsed time.Duration
	Err     error
}

// InputPath expands the {year} and {day} placeholders of the runner's input
// path template for key; {day} is zero padded to two digits.
func (r *Runner) InputPath(key puzzle.Key) string {
	return strings.NewReplacer(
		"{year}", fmt.Sprint(key.Year),
		"{day}", fmt.Sprintf("%02d", key.Day),
	).Replace(r.inputPath)
}

// Load returns the day's builtin input, or else reads its input file. A
// missing file yields an error matching fs.ErrNotExist.
func (r *Runner) Load(day puzzle.Day) (input.Input, error) {
	if day.Builtin != "" {
		return input.FromString(day.Key().String(), day.Builtin), nil
	}
	in, err := input.Load(r.InputPath(day.Key()))
	if err != nil {
		return input.Input{}, fmt.Errorf("%v input: %w", day.Key(), err)
	}
	return in, nil
}

func (r *Runner) logf(key puzzle.Key) func(mess string, args ...interface{}) {
	if r.logfn == nil {
		return nil
	}
	prefix := key.String() + " "
	return func(mess string, args ...interface{}) {
		r.logfn(prefix+mess, args...)
	}
}

func (r *Runner) solve(ctx context.Context, day puzzle.Day, in input.Input, res *Result) error {
	if day.Solve == nil {
		return fmt.Errorf("%v has no solution", day.Key())
	}
	run := puzzle.NewRun(ctx, in, r.logf(day.Key()))
	start := time.Now()
	err := day.Solve(run)
	res.Elapsed = time.Since(start)
	res.Answers = run.Answers()
	if err != nil {
		return err
	}
	if len(res.Answers) == 0 {
		return fmt.Errorf("%v produced no answers", day.Key())
	}
	return r.writeResult(*res)
}

func (r *Runner) writeResult(res Result) error {
	return r.out.Batch(func(w io.Writer) error {
		return writeAnswers(w, r.format, res)
	})
}
