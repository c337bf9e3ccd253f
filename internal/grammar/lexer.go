// Package grammar provides a small byte lexer for writing recursive descent
// parsers over single-line puzzle grammars.
package grammar

import (
	"fmt"
	"strconv"
)

// Position locates a byte within the lexed text; Column is 1-based.
type Position struct {
	Offset int
	Column int
}

// SyntaxError reports what the parser expected and what it found instead.
type SyntaxError struct {
	Pos      Position
	Expected string
	Found    string
}

func (err *SyntaxError) Error() string {
	if err.Found == "" {
		return fmt.Sprintf("column %d: expected %s, found end of input", err.Pos.Column, err.Expected)
	}
	return fmt.Sprintf("column %d: expected %s, found %q", err.Pos.Column, err.Expected, err.Found)
}

// Lexer scans a string from left to right.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Pos returns the current position.
func (l *Lexer) Pos() Position { return Position{l.pos, l.pos + 1} }

// Rest returns the unconsumed input.
func (l *Lexer) Rest() string { return l.input[l.pos:] }

// EOF reports whether all input has been consumed, ignoring trailing spaces.
func (l *Lexer) EOF() bool {
	l.Skip()
	return l.pos >= len(l.input)
}

// Peek returns the next non-space byte, or 0 at end of input.
func (l *Lexer) Peek() byte {
	l.Skip()
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// Skip consumes spaces and tabs.
func (l *Lexer) Skip() {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
		l.pos++
	}
}

// Accept consumes lit if it is next, reporting whether it did.
func (l *Lexer) Accept(lit string) bool {
	l.Skip()
	if len(l.input)-l.pos >= len(lit) && l.input[l.pos:l.pos+len(lit)] == lit {
		l.pos += len(lit)
		return true
	}
	return false
}

// Lit consumes lit or fails.
func (l *Lexer) Lit(lit string) error {
	if !l.Accept(lit) {
		return l.Expected(strconv.Quote(lit))
	}
	return nil
}

// Int consumes an unsigned decimal integer.
func (l *Lexer) Int() (int, error) {
	l.Skip()
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if start == l.pos {
		return 0, l.Expected("number")
	}
	return strconv.Atoi(l.input[start:l.pos])
}

// Word consumes a run of lower case letters.
func (l *Lexer) Word() (string, error) {
	l.Skip()
	start := l.pos
	for l.pos < len(l.input) && isLower(l.input[l.pos]) {
		l.pos++
	}
	if start == l.pos {
		return "", l.Expected("word")
	}
	return l.input[start:l.pos], nil
}

// Quoted consumes a double quoted string without escapes, returning its body.
func (l *Lexer) Quoted() (string, error) {
	if err := l.Lit(`"`); err != nil {
		return "", err
	}
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		l.pos = start
		return "", l.Expected(`closing '"'`)
	}
	body := l.input[start:l.pos]
	l.pos++
	return body, nil
}

// Expected returns a SyntaxError at the current position.
func (l *Lexer) Expected(what string) error {
	l.Skip()
	found := ""
	if l.pos < len(l.input) {
		end := l.pos + 1
		for end < len(l.input) && l.input[end] != ' ' && end-l.pos < 12 {
			end++
		}
		found = l.input[l.pos:end]
	}
	return &SyntaxError{l.Pos(), what, found}
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
func isLower(b byte) bool { return 'a' <= b && b <= 'z' }
