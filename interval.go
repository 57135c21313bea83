package reastar

import (
	"github.com/katalvlaran/reastar/grid"
)

// Interval is a directed one-cell-thick line segment on the grid. Its
// cardinal gives the outward direction of travel: North/South intervals
// are horizontal rows, East/West intervals are vertical columns. The
// fixed coordinate lies on the cardinal's axis; lo..hi are the inclusive
// bounds along the other axis.
//
// Interval is an immutable value type: Step and Parent return copies.
type Interval struct {
	card  grid.Cardinal
	fixed int
	lo    int
	hi    int
}

// NewInterval returns the interval with outward direction c, fixed
// coordinate fixed on c's axis, and inclusive bounds lo ≤ hi on the
// other axis.
func NewInterval(c grid.Cardinal, fixed, lo, hi int) Interval {
	return Interval{card: c, fixed: fixed, lo: lo, hi: hi}
}

// Cardinal returns the interval's outward direction.
func (iv Interval) Cardinal() grid.Cardinal { return iv.card }

// Axis returns the axis of the fixed coordinate (the cardinal's axis).
func (iv Interval) Axis() grid.Axis { return iv.card.Axis() }

// Fixed returns the coordinate on the cardinal's axis.
func (iv Interval) Fixed() int { return iv.fixed }

// Lo returns the inclusive lower bound along the varying axis.
func (iv Interval) Lo() int { return iv.lo }

// Hi returns the inclusive upper bound along the varying axis.
func (iv Interval) Hi() int { return iv.hi }

// Length returns the number of cells on the interval: hi − lo + 1.
func (iv Interval) Length() int { return iv.hi - iv.lo + 1 }

// At returns the i-th cell of the interval, 0-based along the varying
// axis. i must satisfy 0 ≤ i < Length().
func (iv Interval) At(i int) grid.Point {
	if iv.Axis() == grid.AxisX {
		return grid.Point{X: iv.fixed, Y: iv.lo + i}
	}

	return grid.Point{X: iv.lo + i, Y: iv.fixed}
}

// Subinterval returns the sub-segment covering indices start..end
// (inclusive, relative to this interval). Requires
// 0 ≤ start ≤ end < Length().
func (iv Interval) Subinterval(start, end int) Interval {
	return Interval{card: iv.card, fixed: iv.fixed, lo: iv.lo + start, hi: iv.lo + end}
}

// Contains reports whether p lies on the interval.
func (iv Interval) Contains(p grid.Point) bool {
	a := iv.Axis()
	fixed, broad := p.Coord(a), p.Coord(1-a)

	return fixed == iv.fixed && iv.lo <= broad && broad <= iv.hi
}

// Parent returns the interval one step backwards along the cardinal:
// same bounds, fixed − step.
func (iv Interval) Parent() Interval {
	return Interval{card: iv.card, fixed: iv.fixed - iv.card.Step(), lo: iv.lo, hi: iv.hi}
}

// Step returns the interval advanced one cell outward along the
// cardinal: same bounds, fixed + step.
func (iv Interval) Step() Interval {
	return Interval{card: iv.card, fixed: iv.fixed + iv.card.Step(), lo: iv.lo, hi: iv.hi}
}

// IsValid reports whether the fixed coordinate lies within the grid
// along the cardinal's axis. Bounds along the varying axis are not
// checked; see Clip.
func (iv Interval) IsValid(g grid.View) bool {
	if iv.fixed < 0 {
		return false
	}
	if iv.Axis() == grid.AxisX {
		return iv.fixed < g.Width()
	}

	return iv.fixed < g.Height()
}

// IsFree reports whether the interval is valid and every cell on it is
// in bounds and traversable.
func (iv Interval) IsFree(g grid.View) bool {
	if !iv.IsValid(g) {
		return false
	}
	for i := 0; i < iv.Length(); i++ {
		p := iv.At(i)
		if !grid.InBounds(g, p) || !g.Traversable(p) {
			return false
		}
	}

	return true
}

// Clip shrinks lo and hi into the valid coordinate range of the varying
// axis. The fixed coordinate is untouched.
func (iv Interval) Clip(g grid.View) Interval {
	limit := g.Width()
	if iv.Axis() == grid.AxisX {
		limit = g.Height()
	}
	lo, hi := iv.lo, iv.hi
	if lo < 0 {
		lo = 0
	}
	if hi > limit-1 {
		hi = limit - 1
	}

	return Interval{card: iv.card, fixed: iv.fixed, lo: lo, hi: hi}
}

// FreeSubintervals returns the maximal traversable runs of the clipped
// interval, in ascending order along the varying axis. The result
// partitions the traversable cells of Clip(g).
// Complexity: O(Length()).
func (iv Interval) FreeSubintervals(g grid.View) []Interval {
	clipped := iv.Clip(g)
	length := clipped.Length()

	subs := make([]Interval, 0, length/2)

	start := 0
	for start < length {
		for start < length && !g.Traversable(clipped.At(start)) {
			start++
		}
		if start >= length {
			break
		}

		end := start
		for end+1 < length && g.Traversable(clipped.At(end+1)) {
			end++
		}

		subs = append(subs, clipped.Subinterval(start, end))

		start = end + 1
	}

	return subs
}
