package main

import (
	"io"

	"github.com/mikepurvis/advent-of-code/internal/flushio"
)

// RunnerOption configures a Runner.
type RunnerOption interface{ apply(r *Runner) }

var defaults = []RunnerOption{
	withOutput(io.Discard),
	withInputPath(DefaultInputPath),
	withFormat(FormatPlain),
}

func (r *Runner) apply(opts ...RunnerOption) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(r)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(r)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(r *Runner) {
	r.logfn = logfn
}

type outputOption struct{ io.Writer }
type inputPathOption string
type formatOption Format

func withOutput(w io.Writer) outputOption       { return outputOption{w} }
func withInputPath(tmpl string) inputPathOption { return inputPathOption(tmpl) }
func withFormat(f Format) formatOption          { return formatOption(f) }

func (o outputOption) apply(r *Runner) {
	r.out = flushio.NewSerial(o.Writer)
}

func (tmpl inputPathOption) apply(r *Runner) {
	r.inputPath = string(tmpl)
}

func (f formatOption) apply(r *Runner) {
	r.format = Format(f)
}
