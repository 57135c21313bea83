// Package reastar implements Rectangle Expansion A* (REA*), an optimal
// shortest-path solver for uniform-cost 8-connected grid maps.
//
// Instead of expanding single cells, REA* flood-fills maximal free
// rectangles and propagates path costs across their boundaries in whole
// row/column intervals, which prunes the vast interior of open areas
// from the search. The method follows the rectangle expansion approach
// of Zhang et al. (REA*), with a fixed cost constant (√2 encoded as
// 1.414) and deterministic tie-break rules.
//
// What:
//
//   - Octile: the 8-connected cost metric and admissible heuristic.
//   - Interval: a directed one-cell-thick segment with free-subinterval
//     decomposition.
//   - Rect: axis-aligned free rectangles with wall accessors, grown from
//     a point (ExpandPoint) or an interval (ExpandInterval).
//   - FindPath: the solver entry point, returning an 8-connected cell
//     path from source to target.
//
// Why:
//
//   - Game maps and navigation grids are dominated by open rooms and
//     corridors; rectangle expansion visits each such region once.
//   - The returned path is optimal under the octile metric used for both
//     edge costs and the heuristic.
//
// Complexity:
//
//   - Time: O(W×H log W×H) worst case; far below cell-based A* on maps
//     with large free regions.
//   - Space: O(W×H) for the per-cell tables plus the open queue.
//
// Options:
//
//   - WithMaxLength(l): ignore relaxations whose g-value would reach l.
//     When the target is not reached under a finite bound, FindPath
//     returns the best partial path (toward the lowest-heuristic cell
//     seen) instead of ErrNoPath.
//
// Errors:
//
//   - ErrNilGrid: the provided grid view is nil.
//   - ErrOutOfBounds: source or target lies outside the grid.
//   - ErrBlockedEndpoint: source or target is not traversable.
//   - ErrNoPath: the target is unreachable and no length bound was set.
package reastar
