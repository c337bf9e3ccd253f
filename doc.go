/*
Aoc solves Advent of Code puzzles.

Each puzzle day lives in its own package under a year directory (y2020/day19,
y2022/day05, ...) and exports a puzzle.Day value: the day's title and a Solve
function that parses a puzzle.Run's input and records labeled answers. Days
share nothing beyond the small helper packages under internal/: input loading
and located errors, a byte lexer for recursive descent parsers, generic grid
points, and combination enumeration.

This command is the harness around those days. A Runner loads a day's input,
runs its solution in isolation (a panic or runtime.Goexit becomes an error
rather than crashing the process), and prints the answers:

	aoc run 2020 19
	aoc run 2022/5 --input day5.txt --format table

Inputs are read from a path template, input.txt by default, in which {year}
and {day} are expanded; days whose input is given inline by the puzzle text
need no file. With a template naming one file per day, every day can be
solved concurrently and summarized:

	aoc all --input 'inputs/{year}/day{day}.txt' --jobs 4

Settings may also come from an aoc.yaml file or AOC_* environment variables;
explicit flags win over the environment, which wins over the file.

	input: inputs/{year}/day{day}.txt
	timeout: 30s
	format: table
*/
package main
