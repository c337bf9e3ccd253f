package input

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with the text found there.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (ln Line) String() string      { return fmt.Sprintf("%v %q", ln.Location, ln.Text) }

// Errorf returns an error prefixed with the line's location.
func (loc Location) Errorf(mess string, args ...interface{}) error {
	return &Error{loc, fmt.Errorf(mess, args...)}
}

// Error is a parse error attributed to a Location.
type Error struct {
	Location
	Err error
}

func (err *Error) Error() string { return fmt.Sprintf("%v: %v", err.Location, err.Err) }
func (err *Error) Unwrap() error { return err.Err }

// Input holds the whole content of one puzzle input.
type Input struct {
	Name string
	Data []byte
}

// Load reads the named file in its entirety.
func Load(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, err
	}
	return Input{Name: path, Data: data}, nil
}

// FromString returns an Input around literal text, as used by sample fixtures.
func FromString(name, text string) Input {
	return Input{Name: name, Data: []byte(text)}
}

// Text returns the input with surrounding whitespace removed.
func (in Input) Text() string {
	return string(bytes.TrimSpace(in.Data))
}

// RawLines returns every line of input without any trimming, except for a
// trailing carriage return. A final newline does not start another line.
func (in Input) RawLines() []Line {
	text := strings.TrimSuffix(string(in.Data), "\n")
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, part := range parts {
		lines[i] = Line{Location{in.Name, i + 1}, strings.TrimSuffix(part, "\r")}
	}
	return lines
}

// Lines returns whitespace trimmed lines, dropping any leading and trailing
// blank lines while retaining interior blank ones.
func (in Input) Lines() []Line {
	lines := in.RawLines()
	for i := range lines {
		lines[i].Text = strings.TrimSpace(lines[i].Text)
	}
	for len(lines) > 0 && lines[0].Text == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1].Text == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Paragraphs groups trimmed lines into runs separated by blank lines.
func (in Input) Paragraphs() [][]Line {
	return Paragraphs(in.Lines())
}

// Paragraphs splits lines on blank ones, never returning an empty group.
func Paragraphs(lines []Line) (groups [][]Line) {
	var cur []Line
	for _, line := range lines {
		if line.Text == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// Int parses the line text as a base 10 integer.
func (ln Line) Int() (int, error) {
	n, err := strconv.Atoi(ln.Text)
	if err != nil {
		return 0, ln.Errorf("invalid number %q", ln.Text)
	}
	return n, nil
}

// Ints parses one integer per line.
func Ints(lines []Line) ([]int, error) {
	ns := make([]int, 0, len(lines))
	for _, line := range lines {
		n, err := line.Int()
		if err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	return ns, nil
}
