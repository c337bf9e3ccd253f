package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikepurvis/advent-of-code/internal/logio"
)

type cliResult struct {
	out  string
	logs string
	err  error
}

func execute(cal Calendar, args ...string) cliResult {
	var out, logs strings.Builder
	log := logio.NewLogger(&logs)
	root := newRootCmd(log, cal)
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return cliResult{out.String(), logs.String(), err}
}

func TestCLI_run(t *testing.T) {
	cal := testCalendar()
	dir := t.TempDir()
	path := filepath.Join(dir, "echo.txt")
	writeInput(t, path, "hello\n")

	res := execute(cal, "run", "2020", "1", "--input", path)
	require.NoError(t, res.err)
	assert.Equal(t, "Text: hello\nLines: 1\n", res.out)
	assert.Empty(t, res.logs)

	res = execute(cal, "run", "2020/1", "--input", path, "--trace")
	require.NoError(t, res.err)
	assert.Equal(t, "TRACE: 2020/01 read 5 bytes\n", res.logs)

	res = execute(cal, "run", "2020-02")
	require.NoError(t, res.err)
	assert.Equal(t, "Length: 3\n", res.out)

	res = execute(cal, "run", "2020", "2", "-o", "table")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "VALUE")
	assert.Contains(t, res.out, "Length")
}

func TestCLI_run_errors(t *testing.T) {
	cal := testCalendar()
	path := filepath.Join(t.TempDir(), "slow.txt")
	writeInput(t, path, "zzz\n")

	for _, tc := range []struct {
		name string
		args []string
		err  string
	}{
		{"unknown day", []string{"run", "2020", "3"}, "no solution for 2020/03"},
		{"bad key", []string{"run", "2020"}, `invalid day key "2020", expected YEAR/DAY`},
		{"bad format", []string{"run", "2020", "2", "-o", "xml"}, `invalid format "xml", expected plain or table`},
		{"bad jobs", []string{"run", "2020", "2", "--jobs=-1"}, "jobs -1 must be at least 1"},
		{"missing config", []string{"run", "2020", "2", "--config", filepath.Join(t.TempDir(), "aoc.yaml")}, "error reading config file"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := execute(cal, tc.args...)
			assert.ErrorContains(t, res.err, tc.err)
			assert.Empty(t, res.out)
		})
	}

	t.Run("timeout", func(t *testing.T) {
		res := execute(cal, "run", "2021", "2", "--input", path, "--timeout", "20ms")
		assert.True(t, errors.Is(res.err, context.DeadlineExceeded), "got %v", res.err)
	})
}

func TestCLI_all(t *testing.T) {
	cal := testCalendar()
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "{year}", "day{day}.txt")
	writeInput(t, filepath.Join(dir, "2020", "day01.txt"), "hello\n")
	writeInput(t, filepath.Join(dir, "2021", "day01.txt"), "nope\n")

	res := execute(cal, "all", "--input", tmpl, "-j", "2")
	require.NoError(t, res.err)
	for _, want := range []string{"2020/01", "Echo", "hello", "2020/02", "2021/01", "FAILED", "2021/02", "skipped"} {
		assert.Contains(t, res.out, want)
	}
	assert.Contains(t, res.out, "2 OK, 1 SKIPPED, 1 FAILED")
	assert.Equal(t, "ERROR: bad input \"nope\"\n", res.logs)

	res = execute(cal, "all", "--input", tmpl, "--year", "2020")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "2 OK, 0 SKIPPED, 0 FAILED")
	assert.NotContains(t, res.out, "2021/01")
	assert.Empty(t, res.logs)

	res = execute(cal, "all", "--input", tmpl, "--year", "2019")
	assert.EqualError(t, res.err, "no solutions for 2019")

	res = execute(cal, "all", "--input", "input.txt")
	assert.EqualError(t, res.err, `input template "input.txt" has no {day} placeholder`)
}

func TestCLI_list(t *testing.T) {
	cal := testCalendar()

	res := execute(cal, "list", "--input", "inputs/{year}/day{day}.txt")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "inputs/2020/day01.txt")
	assert.Contains(t, res.out, `builtin "abc"`)
	assert.Contains(t, res.out, "Broken")

	res = execute(cal, "list", "2020")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Echo")
	assert.NotContains(t, res.out, "Broken")

	res = execute(cal, "list", "twenty")
	assert.EqualError(t, res.err, `invalid year "twenty"`)
}
