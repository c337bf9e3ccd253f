// Package grid holds 2D point and grid helpers shared by the map puzzles.
package grid

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/mikepurvis/advent-of-code/internal/input"
)

// Pt is a 2D point or vector.
type Pt[T constraints.Signed] struct {
	X, Y T
}

// PtInt is the common integer point.
type PtInt = Pt[int]

// Add returns a+b.
func (a Pt[T]) Add(b Pt[T]) Pt[T] { return Pt[T]{a.X + b.X, a.Y + b.Y} }

// Scale returns a multiplied by n.
func (a Pt[T]) Scale(n T) Pt[T] { return Pt[T]{a.X * n, a.Y * n} }

// RotateLeft turns a by 90 degrees counter-clockwise, with Y pointing up.
func (a Pt[T]) RotateLeft() Pt[T] { return Pt[T]{-a.Y, a.X} }

// RotateRight turns a by 90 degrees clockwise, with Y pointing up.
func (a Pt[T]) RotateRight() Pt[T] { return Pt[T]{a.Y, -a.X} }

// MDist returns the manhattan distance between a and b.
func (a Pt[T]) MDist(b Pt[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

func (a Pt[T]) String() string { return fmt.Sprintf("(%v,%v)", a.X, a.Y) }

// AbsDiff returns |x-y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Neighbors8 are the offsets to the eight surrounding cells.
var Neighbors8 = []PtInt{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a rectangular array of cells, indexed [y][x].
type Grid[T any] [][]T

// Make returns a zeroed w by h grid.
func Make[T any](w, h int) Grid[T] {
	g := make(Grid[T], h)
	for y := range g {
		g[y] = make([]T, w)
	}
	return g
}

// Parse builds a grid from equal length lines, converting each byte with
// cell; cell returns false to reject a byte. Errors carry the offending
// line's location.
func Parse[T any](lines []input.Line, cell func(b byte) (T, bool)) (Grid[T], error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	width := len(lines[0].Text)
	g := make(Grid[T], len(lines))
	for y, line := range lines {
		if len(line.Text) != width {
			return nil, line.Errorf("row has width %d, expected %d", len(line.Text), width)
		}
		g[y] = make([]T, width)
		for x := range width {
			v, ok := cell(line.Text[x])
			if !ok {
				return nil, line.Errorf("column %d: unexpected %q", x+1, line.Text[x])
			}
			g[y][x] = v
		}
	}
	return g, nil
}

// Size returns the width and height as a point.
func (g Grid[T]) Size() PtInt {
	if len(g) == 0 {
		return PtInt{}
	}
	return PtInt{len(g[0]), len(g)}
}

// In reports whether p lies within the grid.
func (g Grid[T]) In(p PtInt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// At returns the cell at p.
func (g Grid[T]) At(p PtInt) T { return g[p.Y][p.X] }

// Set stores v at p.
func (g Grid[T]) Set(p PtInt, v T) { g[p.Y][p.X] = v }

// Clone returns a deep copy.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// Count returns the number of cells satisfying pred.
func (g Grid[T]) Count(pred func(T) bool) (n int) {
	for _, row := range g {
		for _, v := range row {
			if pred(v) {
				n++
			}
		}
	}
	return n
}

// Format renders the grid one row per line, using cell to draw each value.
func (g Grid[T]) Format(cell func(T) byte) string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			sb.WriteByte(cell(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
