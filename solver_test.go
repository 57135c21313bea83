// File: solver_test.go
package reastar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reastar"
	"github.com/katalvlaran/reastar/grid"
)

// requireValidPath asserts the structural path contract: starts at the
// expected source, every consecutive pair is one king-move apart, and
// every cell is traversable.
func requireValidPath(t *testing.T, g grid.View, path []grid.Point, source grid.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, source, path[0])
	for i, p := range path {
		require.True(t, grid.InBounds(g, p), "cell %v out of bounds", p)
		require.True(t, g.Traversable(p), "cell %v is blocked", p)
		if i == 0 {
			continue
		}
		dx, dy := abs(p.X-path[i-1].X), abs(p.Y-path[i-1].Y)
		require.Equal(t, 1, max(dx, dy), "cells %v and %v are not adjacent", path[i-1], p)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TestFindPath_OpenDiagonal: 3×3 unobstructed grid, corner to corner.
// The seed rectangle engulfs the target; the result is the pure diagonal.
func TestFindPath_OpenDiagonal(t *testing.T) {
	g, err := grid.NewDense(3, 3)
	require.NoError(t, err)

	path, err := reastar.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2}, g)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, path)
	assert.InDelta(t, 2*1.414, reastar.Cost(path), 1e-9)
}

// TestFindPath_Corridor: 5×1 strip yields every cell in order, cost 4.
func TestFindPath_Corridor(t *testing.T) {
	g, err := grid.NewDense(5, 1)
	require.NoError(t, err)

	path, err := reastar.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 0}, g)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
	}, path)
	assert.InDelta(t, 4, reastar.Cost(path), 1e-9)
}

// TestFindPath_Detour: a wall across column x=2 open only at (2,4)
// forces the search around the bottom gap.
func TestFindPath_Detour(t *testing.T) {
	g, err := grid.Parse(`
		..#..
		..#..
		..#..
		..#..
		.....
	`)
	require.NoError(t, err)

	source, target := grid.Point{X: 0, Y: 2}, grid.Point{X: 4, Y: 2}
	path, err := reastar.FindPath(source, target, g)
	require.NoError(t, err)
	requireValidPath(t, g, path, source)
	assert.Equal(t, target, path[len(path)-1])
	assert.Contains(t, path, grid.Point{X: 2, Y: 4}, "the only gap must be on the path")
	// Entering and leaving the one-cell gap costs two straight moves on
	// each side plus one diagonal per side: successor relaxation only takes
	// predecessors within the gap's own one-cell span, so the gap is
	// entered and left by straight moves.
	assert.InDelta(t, 4+2*1.414, reastar.Cost(path), 1e-9)
}

// TestFindPath_CenterBlock: 3×3 with the center blocked has two optimal
// detours of equal cost; the tie-break rules must pick one
// deterministically.
func TestFindPath_CenterBlock(t *testing.T) {
	g, err := grid.Parse(`
		...
		.#.
		...
	`)
	require.NoError(t, err)

	source, target := grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2}
	path, err := reastar.FindPath(source, target, g)
	require.NoError(t, err)
	requireValidPath(t, g, path, source)
	assert.Equal(t, target, path[len(path)-1])
	// Both detours hug the blocked center with four straight moves; the
	// corner-hugging diagonals would cut across the block.
	assert.InDelta(t, 4, reastar.Cost(path), 1e-9)

	again, err := reastar.FindPath(source, target, g)
	require.NoError(t, err)
	assert.Equal(t, path, again, "equal-cost alternatives must resolve deterministically")
}

// TestFindPath_Symmetry: reversing the endpoints yields the same cost,
// though not necessarily the same cells.
func TestFindPath_Symmetry(t *testing.T) {
	g, err := grid.Parse(`
		..#..
		..#..
		..#..
		..#..
		.....
	`)
	require.NoError(t, err)

	a, b := grid.Point{X: 0, Y: 2}, grid.Point{X: 4, Y: 2}

	forth, err := reastar.FindPath(a, b, g)
	require.NoError(t, err)
	back, err := reastar.FindPath(b, a, g)
	require.NoError(t, err)

	assert.InDelta(t, reastar.Cost(forth), reastar.Cost(back), 1e-9)
}

// TestFindPath_SameCell: source == target costs nothing.
func TestFindPath_SameCell(t *testing.T) {
	g, err := grid.NewDense(4, 4)
	require.NoError(t, err)

	p := grid.Point{X: 1, Y: 2}
	path, err := reastar.FindPath(p, p, g)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{p}, path)
	assert.Zero(t, reastar.Cost(path))
}

// TestFindPath_OpenGridCost: on an unobstructed grid the path cost equals
// the octile distance between the endpoints.
func TestFindPath_OpenGridCost(t *testing.T) {
	g, err := grid.NewDense(8, 6)
	require.NoError(t, err)

	source, target := grid.Point{X: 1, Y: 1}, grid.Point{X: 6, Y: 4}
	path, err := reastar.FindPath(source, target, g)
	require.NoError(t, err)
	requireValidPath(t, g, path, source)
	assert.Equal(t, target, path[len(path)-1])
	assert.InDelta(t, reastar.Octile(source, target), reastar.Cost(path), 1e-9)
}

// TestFindPath_Unreachable: a sealing wall with no length bound reports
// ErrNoPath.
func TestFindPath_Unreachable(t *testing.T) {
	g, err := grid.Parse(`
		..#..
		..#..
		..#..
		..#..
		..#..
	`)
	require.NoError(t, err)

	path, err := reastar.FindPath(grid.Point{X: 0, Y: 2}, grid.Point{X: 4, Y: 2}, g)
	require.ErrorIs(t, err, reastar.ErrNoPath)
	assert.Nil(t, path)
}

// TestFindPath_MaxLength_TrivialPartial: under a finite bound the same
// sealed grid returns the best partial trajectory instead of an error.
// Here the seed rectangle already touches the wall and no relaxation ever
// fires, so the trajectory is just the source cell.
func TestFindPath_MaxLength_TrivialPartial(t *testing.T) {
	g, err := grid.Parse(`
		..#..
		..#..
		..#..
		..#..
		..#..
	`)
	require.NoError(t, err)

	source := grid.Point{X: 0, Y: 2}
	path, err := reastar.FindPath(source, grid.Point{X: 4, Y: 2}, g,
		reastar.WithMaxLength(100))
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{source}, path)
}

// TestFindPath_MaxLength_Partial: the target sits behind a sealing wall,
// but the reachable side has room to search. The partial trajectory ends
// at the touched cell with the smallest octile distance to the target.
// Grid (6×4, wall on column 4, pillar at (1,1)):
//
//	. . . . # .
//	. # . . # .
//	. . . . # .
//	. . . . # .
//
// From (0,0) toward (5,1) the closest reachable cell is (3,1).
func TestFindPath_MaxLength_Partial(t *testing.T) {
	g, err := grid.Parse(`
		....#.
		.#..#.
		....#.
		....#.
	`)
	require.NoError(t, err)

	source, target := grid.Point{X: 0, Y: 0}, grid.Point{X: 5, Y: 1}

	// Unbounded: unreachable.
	_, err = reastar.FindPath(source, target, g)
	require.ErrorIs(t, err, reastar.ErrNoPath)

	// Bounded: best partial trajectory.
	path, err := reastar.FindPath(source, target, g, reastar.WithMaxLength(100))
	require.NoError(t, err)
	requireValidPath(t, g, path, source)
	assert.Equal(t, grid.Point{X: 3, Y: 1}, path[len(path)-1])
}

// TestFindPath_MaxLength_CapsRelaxation: a bound below the cost of the
// only corridor keeps the search from ever entering it.
func TestFindPath_MaxLength_CapsRelaxation(t *testing.T) {
	g, err := grid.Parse(`
		..#..
		..#..
		..#..
		..#..
		.....
	`)
	require.NoError(t, err)

	source, target := grid.Point{X: 0, Y: 2}, grid.Point{X: 4, Y: 2}

	path, err := reastar.FindPath(source, target, g, reastar.WithMaxLength(2))
	require.NoError(t, err)
	requireValidPath(t, g, path, source)
	assert.NotEqual(t, target, path[len(path)-1],
		"a 2.0 bound cannot reach a 6.828-cost target")
}

// TestFindPath_Memoized: searching through a memoised predicate view
// yields the same path as the dense grid it mirrors, with at most one
// predicate call per cell.
func TestFindPath_Memoized(t *testing.T) {
	dense, err := grid.Parse(`
		..#..
		..#..
		..#..
		..#..
		.....
	`)
	require.NoError(t, err)

	calls := make(map[grid.Point]int)
	memo, err := grid.Memoize(dense.Width(), dense.Height(), func(p grid.Point) bool {
		calls[p]++
		return dense.Traversable(p)
	})
	require.NoError(t, err)

	source, target := grid.Point{X: 0, Y: 2}, grid.Point{X: 4, Y: 2}

	want, err := reastar.FindPath(source, target, dense)
	require.NoError(t, err)
	got, err := reastar.FindPath(source, target, memo)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	for p, n := range calls {
		assert.Equal(t, 1, n, "predicate for %v called %d times", p, n)
	}
}

// TestFindPath_Preconditions covers the sentinel validation errors.
func TestFindPath_Preconditions(t *testing.T) {
	g, err := grid.Parse(`
		.#
		..
	`)
	require.NoError(t, err)

	in := grid.Point{X: 0, Y: 0}

	_, err = reastar.FindPath(in, in, nil)
	require.ErrorIs(t, err, reastar.ErrNilGrid)

	_, err = reastar.FindPath(grid.Point{X: -1, Y: 0}, in, g)
	require.ErrorIs(t, err, reastar.ErrOutOfBounds)

	_, err = reastar.FindPath(in, grid.Point{X: 2, Y: 0}, g)
	require.ErrorIs(t, err, reastar.ErrOutOfBounds)

	_, err = reastar.FindPath(grid.Point{X: 1, Y: 0}, in, g)
	require.ErrorIs(t, err, reastar.ErrBlockedEndpoint)

	_, err = reastar.FindPath(in, grid.Point{X: 1, Y: 0}, g)
	require.ErrorIs(t, err, reastar.ErrBlockedEndpoint)
}

// TestWithMaxLength_Panics: non-positive bounds are a configuration bug.
func TestWithMaxLength_Panics(t *testing.T) {
	assert.Panics(t, func() { reastar.WithMaxLength(0) })
	assert.Panics(t, func() { reastar.WithMaxLength(-3.5) })
}
