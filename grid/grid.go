// Package grid provides the read-only map views consumed by the solver.
// Dense stores traversability in a compact bitmap; FromRows and Parse
// build one from caller data.
package grid

import (
	"fmt"
	"strings"

	"github.com/kelindar/bitmap"
)

// View is a read-only rectangular traversability predicate with known
// dimensions. Valid coordinates satisfy 0 ≤ X < Width(), 0 ≤ Y < Height().
// A View must not change while a search runs over it.
type View interface {
	// Width returns the number of columns (> 0).
	Width() int
	// Height returns the number of rows (> 0).
	Height() int
	// Traversable reports whether the cell at p can be walked on.
	// p must be in bounds.
	Traversable(p Point) bool
}

// InBounds reports whether p lies within the boundaries of v.
// Complexity: O(1).
func InBounds(v View, p Point) bool {
	return p.X >= 0 && p.X < v.Width() && p.Y >= 0 && p.Y < v.Height()
}

// Dense is a W×H traversability grid backed by a bitmap: one bit per
// cell, set when the cell is free. Cells may be toggled between searches
// via Set; the grid must stay unchanged while a search runs.
type Dense struct {
	width, height int
	free          bitmap.Bitmap
}

// NewDense returns a width×height grid with every cell traversable.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H/64) memory.
func NewDense(width, height int) (*Dense, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	d := &Dense{width: width, height: height}
	d.free.Grow(uint32(width*height - 1))
	for i := 0; i < width*height; i++ {
		d.free.Set(uint32(i))
	}

	return d, nil
}

// FromRows constructs a Dense grid from a non-empty rectangular [][]bool,
// where true marks a traversable cell. rows[y][x] maps to cell (x,y).
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time, O(W×H/64) memory.
func FromRows(rows [][]bool) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	d := &Dense{width: w, height: h}
	d.free.Grow(uint32(w*h - 1))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, ok := range row {
			if ok {
				d.free.Set(uint32(y*w + x))
			}
		}
	}

	return d, nil
}

// Parse constructs a Dense grid from an ASCII map: '.' is free, '#' is
// blocked, one non-blank text line per grid row. Each line is trimmed of
// surrounding whitespace and blank lines are skipped wherever they
// appear; all remaining lines must have equal length.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadCell (wrapped with the
// offending coordinate) on malformed input.
// Complexity: O(W×H).
func Parse(s string) (*Dense, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	d := &Dense{width: w, height: h}
	d.free.Grow(uint32(w*h - 1))
	for y, line := range lines {
		if len(line) != w {
			return nil, ErrNonRectangular
		}
		for x := 0; x < w; x++ {
			switch line[x] {
			case '.':
				d.free.Set(uint32(y*w + x))
			case '#':
				// blocked: bit stays clear
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, line[x], x, y)
			}
		}
	}

	return d, nil
}

// Width returns the number of columns. Complexity: O(1).
func (d *Dense) Width() int { return d.width }

// Height returns the number of rows. Complexity: O(1).
func (d *Dense) Height() int { return d.height }

// Traversable reports whether cell p is free. Complexity: O(1).
func (d *Dense) Traversable(p Point) bool {
	return d.free.Contains(uint32(p.Y*d.width + p.X))
}

// Set marks cell p traversable (true) or blocked (false).
// Must not be called while a search runs over this grid.
// Complexity: O(1).
func (d *Dense) Set(p Point, traversable bool) {
	idx := uint32(p.Y*d.width + p.X)
	if traversable {
		d.free.Set(idx)
	} else {
		d.free.Remove(idx)
	}
}
