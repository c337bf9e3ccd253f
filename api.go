package main

import (
	"context"
	"io"

	"github.com/mikepurvis/advent-of-code/internal/panicerr"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

// New creates a Runner; by default it discards answers and reads each day's
// input from DefaultInputPath.
func New(opts ...RunnerOption) *Runner {
	var r Runner
	r.apply(opts...)
	return &r
}

// Run solves day, writing its answers to the runner's output. Panics and
// runtime.Goexit calls within the day are returned as errors. The returned
// error is also recorded in the Result.
func (r *Runner) Run(ctx context.Context, day puzzle.Day) (Result, error) {
	res := Result{Key: day.Key(), Title: day.Title}
	in, err := r.Load(day)
	if err != nil {
		res.Err = err
		return res, err
	}
	res.Err = panicerr.Recover(day.Key().String(), func() error {
		return r.solve(ctx, day, in, &res)
	})
	return res, res.Err
}

func WithOutput(w io.Writer) RunnerOption    { return withOutput(w) }
func WithInputPath(tmpl string) RunnerOption { return withInputPath(tmpl) }
func WithFormat(f Format) RunnerOption       { return withFormat(f) }

func WithLogf(logfn func(mess string, args ...interface{})) RunnerOption { return withLogfn(logfn) }
