package reastar

import (
	"math"

	"github.com/katalvlaran/reastar/grid"
)

// sqrt2 is the diagonal step cost, √2 truncated to three decimals.
// Optimality statements hold against this constant, not against the
// exact irrational value.
const sqrt2 = 1.414

// Octile returns the octile distance between two cells:
// √2·min(|dx|,|dy|) + ||dx|−|dy||. It is the edge-cost metric of
// 8-connected movement and an admissible, consistent heuristic for it.
// Complexity: O(1).
func Octile(a, b grid.Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))

	return sqrt2*math.Min(dx, dy) + math.Abs(dx-dy)
}

// Cost returns the octile cost of a cell sequence: the sum of Octile over
// consecutive pairs. An empty or single-cell path costs 0.
// Complexity: O(len(path)).
func Cost(path []grid.Point) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Octile(path[i-1], path[i])
	}

	return total
}
