package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

func TestResult_Status(t *testing.T) {
	assert.Equal(t, "ok", Result{}.Status())
	assert.Equal(t, "skipped", Result{Err: fmt.Errorf("2020/01 input: %w", fs.ErrNotExist)}.Status())
	assert.Equal(t, "FAILED", Result{Err: errors.New("no rule 0")}.Status())
}

func TestWriteResults(t *testing.T) {
	var out strings.Builder
	require.NoError(t, writeResults(&out, []Result{
		{
			Key: puzzle.Key{Year: 2020, Day: 19}, Title: "Monster Messages",
			Answers: []puzzle.Answer{{Label: "Matches", Value: 2}, {Label: "Looped", Value: 12}},
			Elapsed: 1500 * time.Microsecond,
		},
		{
			Key: puzzle.Key{Year: 2020, Day: 22}, Title: "Crab Combat",
			Err: fmt.Errorf("2020/22 input: %w", fs.ErrNotExist),
		},
	}))
	text := out.String()
	assert.Contains(t, text, "DAY")
	assert.Contains(t, text, "STATUS")
	assert.Contains(t, text, "Monster Messages")
	assert.Contains(t, text, "1.5ms")
	assert.Contains(t, text, "12")
	assert.Contains(t, text, "skipped")
	assert.Contains(t, text, "1 OK, 1 SKIPPED, 0 FAILED")
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestWriteAnswers_plain(t *testing.T) {
	var out strings.Builder
	require.NoError(t, writeAnswers(&out, FormatPlain, Result{
		Answers: []puzzle.Answer{{Label: "Part 1", Value: 306}, {Value: "unlabeled"}},
	}))
	assert.Equal(t, "Part 1: 306\nunlabeled\n", out.String())
}
