// File: cost_test.go
package reastar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/reastar/grid"
)

// TestOctile pins the metric against hand-computed values, including the
// truncated diagonal constant 1.414.
func TestOctile(t *testing.T) {
	cases := []struct {
		name string
		a, b grid.Point
		want float64
	}{
		{"Same", grid.Point{X: 2, Y: 2}, grid.Point{X: 2, Y: 2}, 0},
		{"Straight", grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 0}, 4},
		{"Diagonal", grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 3}, 3 * 1.414},
		{"Mixed", grid.Point{X: 1, Y: 1}, grid.Point{X: 6, Y: 3}, 2*1.414 + 3},
		{"NegativeDeltas", grid.Point{X: 6, Y: 3}, grid.Point{X: 1, Y: 1}, 2*1.414 + 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Octile(tc.a, tc.b), 1e-9)
			assert.InDelta(t, Octile(tc.a, tc.b), Octile(tc.b, tc.a), 1e-9, "metric must be symmetric")
		})
	}
}

// TestCost sums octile distances over consecutive path cells.
func TestCost(t *testing.T) {
	assert.Zero(t, Cost(nil))
	assert.Zero(t, Cost([]grid.Point{{X: 1, Y: 1}}))

	path := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	assert.InDelta(t, 1.414+1, Cost(path), 1e-9)
}
