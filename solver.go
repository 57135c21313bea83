// Package reastar implements the Rectangle Expansion A* search loop:
// seed rectangle around the source, interval-successor relaxation, and
// rectangle expansion of popped boundary intervals.
package reastar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/reastar/grid"
)

// nodeType tags how a cell's g-value was established.
type nodeType uint8

const (
	// gPoint marks a cell seeded from a rectangle boundary.
	gPoint nodeType = iota
	// hPoint marks a cell reached through interval-successor relaxation.
	hPoint
)

// cellNode is the per-cell search record. hvalue is meaningful only for
// hPoint cells; for gPoint cells it stays zero and f-value scans read it
// as such, letting h-points dominate interval minima whenever present.
type cellNode struct {
	typ    nodeType
	gvalue float64
	hvalue float64
}

// searchNode is an open-queue entry: a boundary interval waiting to be
// expanded, the cell on it that achieved the minimum f-value at enqueue
// time, and that minimum.
type searchNode struct {
	interval Interval
	minPoint grid.Point
	minFVal  float64
	seq      uint64 // insertion order, breaks f-value ties first-in-first-out
}

// openPQ is a min-heap of *searchNode ordered by minFVal ascending.
// Equal keys pop in insertion order via the monotonic seq field, making
// tie-breaking deterministic (container/heap alone is not stable).
type openPQ []*searchNode

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by minimum f-value, then by insertion sequence.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].minFVal != pq[j].minFVal {
		return pq[i].minFVal < pq[j].minFVal
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be of type *searchNode.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*searchNode)) }

// Pop removes and returns the last element (heap minimum after sift).
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// FindPath computes an optimal octile-metric path from source to target
// over g using Rectangle Expansion A*. The returned path is a sequence of
// 8-connected traversable cells starting at source. It ends at target,
// or at the cell with the smallest heuristic-to-target touched by the
// search when a finite WithMaxLength bound kept the target out of reach.
//
// Returns:
//
//   - path: the cell sequence (length 1 when source == target).
//   - err:  ErrNilGrid, grid.ErrEmptyGrid, ErrOutOfBounds or
//     ErrBlockedEndpoint on precondition violations; ErrNoPath when the
//     target is unreachable and MaxLength is unbounded.
//
// The grid must not change during the call. A fresh solver state is
// allocated per call; nothing is shared between queries.
//
// Complexity: O(W×H log W×H) time worst case, O(W×H) memory.
func FindPath(source, target grid.Point, g grid.View, opts ...Option) ([]grid.Point, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid view.
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Width() <= 0 || g.Height() <= 0 {
		return nil, grid.ErrEmptyGrid
	}

	// 3) Validate endpoints.
	if !grid.InBounds(g, source) {
		return nil, fmt.Errorf("%w: source (%d,%d)", ErrOutOfBounds, source.X, source.Y)
	}
	if !grid.InBounds(g, target) {
		return nil, fmt.Errorf("%w: target (%d,%d)", ErrOutOfBounds, target.X, target.Y)
	}
	if !g.Traversable(source) {
		return nil, fmt.Errorf("%w: source (%d,%d)", ErrBlockedEndpoint, source.X, source.Y)
	}
	if !g.Traversable(target) {
		return nil, fmt.Errorf("%w: target (%d,%d)", ErrBlockedEndpoint, target.X, target.Y)
	}

	// 4) Allocate per-query state and run the search.
	return newSolver(source, target, g, cfg).findPath()
}

// solver owns the mutable state of a single FindPath execution: the
// W×H cell tables, the parent pointers, and the open queue.
type solver struct {
	source grid.Point
	target grid.Point
	g      grid.View
	width  int

	nodes   []cellNode   // per-cell type/g/h, row-major
	parents []grid.Point // per-cell best predecessor, row-major
	maxlen  float64

	best     grid.Point // lowest-heuristic cell touched so far
	bestHVal float64

	open openPQ
	seq  uint64
}

// newSolver allocates the search tables: every cell starts as a gPoint
// with gvalue = +Inf and its parent pointing at the source.
func newSolver(source, target grid.Point, g grid.View, cfg Options) *solver {
	w, h := g.Width(), g.Height()
	s := &solver{
		source:   source,
		target:   target,
		g:        g,
		width:    w,
		nodes:    make([]cellNode, w*h),
		parents:  make([]grid.Point, w*h),
		maxlen:   cfg.MaxLength,
		best:     source,
		bestHVal: Octile(source, target),
	}
	inf := math.Inf(1)
	for i := range s.nodes {
		s.nodes[i].gvalue = inf
		s.parents[i] = source
	}

	return s
}

// index maps a cell to its row-major table slot.
func (s *solver) index(p grid.Point) int {
	return p.Y*s.width + p.X
}

// findPath runs the main loop: seed, pop-expand until the queue drains,
// then either report unreachability or fall back to the best partial
// trajectory under a finite length bound.
func (s *solver) findPath() ([]grid.Point, error) {
	if path := s.insertStart(); path != nil {
		return path, nil
	}

	for s.open.Len() > 0 {
		next := heap.Pop(&s.open).(*searchNode)
		if path := s.expand(next); path != nil {
			return path, nil
		}
	}

	if math.IsInf(s.maxlen, 1) {
		return nil, ErrNoPath
	}

	// Bounded search exhausted: rebuild toward the lowest-heuristic cell.
	s.target = s.best
	return s.buildPath(), nil
}

// insertStart expands the seed rectangle around the source. If it already
// engulfs the target the two-point trajectory is returned directly.
// Otherwise every boundary cell is seeded as a gPoint with its octile
// distance to the source, and each of the four extended neighbour
// intervals is submitted as a successor in the fixed North, South, East,
// West order.
func (s *solver) insertStart() []grid.Point {
	rect := ExpandPoint(s.source, s.g)
	if rect.Contains(s.target) {
		return unitSteps([]grid.Point{s.source, s.target})
	}

	for _, p := range rect.Boundaries() {
		s.nodes[s.index(p)] = cellNode{typ: gPoint, gvalue: Octile(p, s.source)}
	}

	for _, c := range grid.Cardinals {
		iv := rect.ExtendNeighborInterval(c)
		if !iv.IsValid(s.g) {
			continue
		}
		if path := s.successor(iv); path != nil {
			return path
		}
	}

	return nil
}

// successor relaxes the cells of each free subinterval of iv against its
// parent interval one step back. Each cell i sees the three predecessor
// indices {i−1, i, i+1}: the straight and two diagonal octile moves onto
// a perpendicular boundary. Improved cells are promoted to hPoints, and
// each subinterval that improved at least one cell is enqueued keyed by
// its minimum f-value.
func (s *solver) successor(iv Interval) []grid.Point {
	for _, fsi := range iv.FreeSubintervals(s.g) {
		parent := fsi.Parent()
		updated := false

		for i := 0; i < fsi.Length(); i++ {
			p := fsi.At(i)
			gval := s.nodes[s.index(p)].gvalue

			for j := i - 1; j <= i+1; j++ {
				if j < 0 || j >= fsi.Length() {
					continue
				}

				pp := parent.At(j)
				pgval := s.nodes[s.index(pp)].gvalue + Octile(p, pp)

				if pgval < gval && pgval < s.maxlen {
					h := Octile(p, s.target)
					if h < s.bestHVal {
						s.best, s.bestHVal = p, h
					}

					gval = pgval
					s.parents[s.index(p)] = pp
					s.nodes[s.index(p)] = cellNode{typ: hPoint, gvalue: pgval, hvalue: h}

					updated = true
				}
			}
		}

		if fsi.Contains(s.target) {
			return s.buildPath()
		}

		if updated {
			s.push(s.makeSearchNode(fsi))
		}
	}

	return nil
}

// expand processes a popped search node: target tests on the interval and
// on its expanded rectangle, bulk wall relaxation against the entering
// interval, and successor generation one cell beyond each outgoing wall.
func (s *solver) expand(node *searchNode) []grid.Point {
	iv := node.interval
	if iv.Contains(s.target) {
		return s.buildPath()
	}

	rect := ExpandInterval(iv, s.g)
	if rect.Contains(s.target) {
		// Engulfment shortcut: attach the target to the cell that carried
		// the minimum f-value onto the rectangle.
		s.parents[s.index(s.target)] = node.minPoint
		return s.buildPath()
	}

	for _, wall := range rect.Walls(iv.Cardinal()) {
		// Relax every wall cell against every cell of the entering
		// interval. g-values and parents improve, but node types stay as
		// they are: g-points are not promoted by this bulk relaxation.
		for wi := 0; wi < wall.Length(); wi++ {
			p := wall.At(wi)

			for pi := 0; pi < iv.Length(); pi++ {
				pp := iv.At(pi)
				pgval := s.nodes[s.index(pp)].gvalue + Octile(p, pp)

				if pgval < s.nodes[s.index(p)].gvalue && pgval < s.maxlen {
					h := Octile(p, s.target)
					if h < s.bestHVal {
						s.best, s.bestHVal = p, h
					}

					s.parents[s.index(p)] = pp
					s.nodes[s.index(p)].gvalue = pgval
				}
			}
		}

		eni := rect.ExtendNeighborInterval(wall.Cardinal())
		if !eni.IsValid(s.g) {
			continue
		}

		if path := s.successor(eni); path != nil {
			return path
		}
	}

	return nil
}

// makeSearchNode scans iv for the cell minimizing gvalue + hvalue and
// wraps the interval in a queue entry. gPoint cells contribute with a
// zero hvalue; whenever the interval holds any hPoint the monotone
// f-ordering keeps an hPoint selected. Ties pick the first cell in
// interval order.
func (s *solver) makeSearchNode(iv Interval) *searchNode {
	var minPoint grid.Point
	minFVal := math.Inf(1)

	for i := 0; i < iv.Length(); i++ {
		n := s.nodes[s.index(iv.At(i))]
		if f := n.gvalue + n.hvalue; f < minFVal {
			minFVal = f
			minPoint = iv.At(i)
		}
	}

	return &searchNode{interval: iv, minPoint: minPoint, minFVal: minFVal}
}

// push stamps the node with the next insertion sequence number and
// enqueues it.
func (s *solver) push(node *searchNode) {
	node.seq = s.seq
	s.seq++
	heap.Push(&s.open, node)
}

// buildPath walks the parent chain from the target back to the source,
// reverses it, and interpolates the waypoint hops into unit steps.
func (s *solver) buildPath() []grid.Point {
	var waypoints []grid.Point

	current := s.target
	for current != s.source {
		waypoints = append(waypoints, current)
		current = s.parents[s.index(current)]
	}
	waypoints = append(waypoints, s.source)

	for i, j := 0, len(waypoints)-1; i < j; i, j = i+1, j-1 {
		waypoints[i], waypoints[j] = waypoints[j], waypoints[i]
	}

	return unitSteps(waypoints)
}

// unitSteps expands a waypoint chain into an 8-connected cell sequence:
// each hop is walked diagonally while both deltas are nonzero, then
// straight. The interpolation is cost-neutral under the octile metric
// and stays inside the free rectangle that produced the hop.
func unitSteps(waypoints []grid.Point) []grid.Point {
	path := make([]grid.Point, 0, len(waypoints)*2)
	path = append(path, waypoints[0])

	for k := 1; k < len(waypoints); k++ {
		current, next := waypoints[k-1], waypoints[k]
		for current != next {
			current.X += sign(next.X - current.X)
			current.Y += sign(next.Y - current.Y)
			path = append(path, current)
		}
	}

	return path
}

// sign returns -1, 0 or +1.
func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
