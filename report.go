package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Result statuses shown in reports.
const (
	statusOK      = "ok"
	statusSkipped = "skipped"
	statusFailed  = "FAILED"
)

// Status summarizes a result; a day whose input file is missing is skipped.
func (res Result) Status() string {
	switch {
	case res.Err == nil:
		return statusOK
	case errors.Is(res.Err, fs.ErrNotExist):
		return statusSkipped
	}
	return statusFailed
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	return t
}

func renderTo(w io.Writer, t table.Writer) error {
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}

// writeAnswers prints one day's answers: in plain format one "Label: value"
// line each, otherwise as a table.
func writeAnswers(w io.Writer, format Format, res Result) error {
	if format != FormatTable {
		for _, answer := range res.Answers {
			if _, err := fmt.Fprintln(w, answer); err != nil {
				return err
			}
		}
		return nil
	}
	t := newTable()
	t.SetTitle("%v %s", res.Key, res.Title)
	t.AppendHeader(table.Row{"Answer", "Value"})
	for _, answer := range res.Answers {
		t.AppendRow(table.Row{answer.Label, answer.Value})
	}
	return renderTo(w, t)
}

// writeResults prints a summary row per day followed by status totals.
func writeResults(w io.Writer, results []Result) error {
	t := newTable()
	t.AppendHeader(table.Row{"Day", "Title", "Answers", "Time", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Time", Align: text.AlignRight},
	})
	counts := make(map[string]int)
	for _, res := range results {
		status := res.Status()
		counts[status]++
		answers := make([]string, len(res.Answers))
		for i, answer := range res.Answers {
			answers[i] = fmt.Sprint(answer.Value)
		}
		elapsed := ""
		if status == statusOK {
			elapsed = res.Elapsed.Round(time.Microsecond).String()
		}
		t.AppendRow(table.Row{res.Key, res.Title, strings.Join(answers, "\n"), elapsed, status})
	}
	t.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d ok, %d skipped, %d failed",
		counts[statusOK], counts[statusSkipped], counts[statusFailed])})
	return renderTo(w, t)
}

// writeCalendar lists the days and where each reads its input from.
func writeCalendar(w io.Writer, cal Calendar, r *Runner) error {
	t := newTable()
	t.AppendHeader(table.Row{"Day", "Title", "Input"})
	for _, day := range cal {
		src := r.InputPath(day.Key())
		if day.Builtin != "" {
			src = fmt.Sprintf("builtin %q", day.Builtin)
		}
		t.AppendRow(table.Row{day.Key(), day.Title, src})
	}
	return renderTo(w, t)
}
