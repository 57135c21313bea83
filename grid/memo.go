package grid

import "github.com/kelindar/bitmap"

// Predicate reports whether a cell is traversable. It must be total and
// pure over the cells of one grid for the duration of a search.
type Predicate func(p Point) bool

// Memoized is a View that lazily caches the results of an expensive
// traversability predicate, such as one delegating across a language or
// process boundary. Two bitmaps of W×H bits each are kept: a presence
// mask recording which cells were already queried, and the cached value.
// The cache is transparent: results are identical to calling the
// predicate directly.
//
// Memoized is not safe for concurrent use (single-reader, matching the
// View contract).
type Memoized struct {
	width, height int
	pred          Predicate
	known         bitmap.Bitmap
	free          bitmap.Bitmap
}

// Memoize wraps pred in a lazily-filled cache over a width×height grid.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H/64) memory up-front, O(1) per warm lookup, exactly
// one predicate call per distinct cell.
func Memoize(width, height int, pred Predicate) (*Memoized, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	m := &Memoized{width: width, height: height, pred: pred}
	m.known.Grow(uint32(width*height - 1))
	m.free.Grow(uint32(width*height - 1))

	return m, nil
}

// Width returns the number of columns. Complexity: O(1).
func (m *Memoized) Width() int { return m.width }

// Height returns the number of rows. Complexity: O(1).
func (m *Memoized) Height() int { return m.height }

// Traversable returns the cached traversability of p, invoking the
// underlying predicate on first access.
func (m *Memoized) Traversable(p Point) bool {
	idx := uint32(p.Y*m.width + p.X)
	if m.known.Contains(idx) {
		return m.free.Contains(idx)
	}
	ok := m.pred(p)
	m.known.Set(idx)
	if ok {
		m.free.Set(idx)
	}

	return ok
}
