package reastar

import (
	"github.com/katalvlaran/reastar/grid"
)

// Rect is an axis-aligned rectangle of cells with inclusive bounds:
// Left ≤ Right, Top ≤ Bottom.
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectOf returns the one-cell-thick rectangle covering an interval.
func RectOf(iv Interval) Rect {
	if iv.Axis() == grid.AxisX {
		return Rect{Left: iv.Fixed(), Top: iv.Lo(), Right: iv.Fixed(), Bottom: iv.Hi()}
	}

	return Rect{Left: iv.Lo(), Top: iv.Fixed(), Right: iv.Hi(), Bottom: iv.Fixed()}
}

// RectBetween returns the bounding rectangle of two intervals.
func RectBetween(a, b Interval) Rect {
	return RectOf(a).Merge(RectOf(b))
}

// ExpandPoint grows the maximal axis-aligned rectangle of traversable
// cells around p: first rightward, then leftward along p's row, then row
// by row downward and upward while every cell of the candidate row within
// the fixed horizontal span stays traversable. The greedy horizontal-first
// order fixes the tie-breaks among equally maximal rectangles.
// p must be in bounds and traversable.
// Complexity: O(area of the result).
func ExpandPoint(p grid.Point, g grid.View) Rect {
	l, t := p.X, p.Y
	r, b := l, t

	for r < g.Width() && g.Traversable(grid.Point{X: r, Y: t}) {
		r++
	}
	r--

	for l >= 0 && g.Traversable(grid.Point{X: l, Y: t}) {
		l--
	}
	l++

	for b < g.Height() && rowFree(g, l, r, b) {
		b++
	}
	b--

	for t >= 0 && rowFree(g, l, r, t) {
		t--
	}
	t++

	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// rowFree reports whether every cell (x,y) with l ≤ x ≤ r is traversable.
func rowFree(g grid.View, l, r, y int) bool {
	for x := l; x <= r; x++ {
		if !g.Traversable(grid.Point{X: x, Y: y}) {
			return false
		}
	}

	return true
}

// ExpandInterval slides a copy of iv outward along its cardinal while the
// advanced interval stays entirely traversable, and returns the bounding
// rectangle of iv and the farthest free position. If iv itself is not
// free the rectangle collapses to iv.
// Complexity: O(cells swept).
func ExpandInterval(iv Interval, g grid.View) Rect {
	expanded := iv
	for i := iv; i.IsFree(g); i = i.Step() {
		expanded = i
	}

	return RectBetween(iv, expanded)
}

// Merge returns the bounding rectangle of r and other.
func (r Rect) Merge(other Rect) Rect {
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// Contains reports whether p lies within the inclusive bounds of r.
func (r Rect) Contains(p grid.Point) bool {
	return r.Left <= p.X && p.X <= r.Right && r.Top <= p.Y && p.Y <= r.Bottom
}

// North returns the top edge as an interval directed outward (up).
func (r Rect) North() Interval {
	return NewInterval(grid.North, r.Top, r.Left, r.Right)
}

// South returns the bottom edge as an interval directed outward (down).
func (r Rect) South() Interval {
	return NewInterval(grid.South, r.Bottom, r.Left, r.Right)
}

// East returns the right edge as an interval directed outward (right).
func (r Rect) East() Interval {
	return NewInterval(grid.East, r.Right, r.Top, r.Bottom)
}

// West returns the left edge as an interval directed outward (left).
func (r Rect) West() Interval {
	return NewInterval(grid.West, r.Left, r.Top, r.Bottom)
}

// Boundaries returns every perimeter cell of r: the top and bottom rows
// first, then the two columns without their corner cells. For a
// one-row-high rectangle each cell appears twice; consumers treat the
// duplicate write as idempotent.
// Complexity: O(perimeter).
func (r Rect) Boundaries() []grid.Point {
	points := make([]grid.Point, 0, 2*((r.Right-r.Left)+(r.Bottom-r.Top)+2))

	for x := r.Left; x <= r.Right; x++ {
		points = append(points, grid.Point{X: x, Y: r.Top})
		points = append(points, grid.Point{X: x, Y: r.Bottom})
	}

	for y := r.Top + 1; y < r.Bottom; y++ {
		points = append(points, grid.Point{X: r.Left, Y: y})
		points = append(points, grid.Point{X: r.Right, Y: y})
	}

	return points
}

// Walls returns the three edges of r a search arriving from direction c
// still has to cross, in the fixed relaxation order: the two edges
// orthogonal to c first, then the edge opposite the arrival wall. The
// wall nearest c is omitted because arrival came from its direction.
func (r Rect) Walls(c grid.Cardinal) []Interval {
	switch c {
	case grid.North:
		return []Interval{r.East(), r.West(), r.South()}
	case grid.South:
		return []Interval{r.East(), r.West(), r.North()}
	case grid.East:
		return []Interval{r.North(), r.South(), r.West()}
	default: // grid.West
		return []Interval{r.North(), r.South(), r.East()}
	}
}

// ExtendNeighborInterval returns the interval one step outside the wall
// in direction c, widened by one cell at each end so diagonal successors
// across the rectangle's corners are reached. The result may protrude
// beyond the grid; it is clipped at consumption time.
func (r Rect) ExtendNeighborInterval(c grid.Cardinal) Interval {
	switch c {
	case grid.North:
		return NewInterval(c, r.Top-1, r.Left-1, r.Right+1)
	case grid.South:
		return NewInterval(c, r.Bottom+1, r.Left-1, r.Right+1)
	case grid.East:
		return NewInterval(c, r.Right+1, r.Top-1, r.Bottom+1)
	default: // grid.West
		return NewInterval(c, r.Left-1, r.Top-1, r.Bottom+1)
	}
}
