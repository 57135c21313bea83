// Package grid defines the read-only map model consumed by the reastar
// solver: integer points, cardinal directions, the View contract, and two
// concrete views (a dense bitmap-backed grid and a memoising wrapper over
// an arbitrary predicate).
//
// What:
//
//   - Point: integer (X,Y) cell coordinates, addressable by Axis.
//   - Cardinal: NORTH/SOUTH/EAST/WEST with O(1) Opposite, Step, Axis and
//     orthogonal rotations.
//   - View: Width/Height plus a binary Traversable predicate. Immutable
//     for the duration of one search.
//   - Dense: a W×H traversability grid stored in a kelindar/bitmap,
//     buildable from [][]bool rows or an ASCII map ('.' free, '#' blocked).
//   - Memoized: transparent lazy cache for an expensive predicate (e.g.
//     one that crosses a language or process boundary), backed by a
//     presence bitmap and a value bitmap.
//
// Why:
//
//   - Pathfinding cores should not care where the map comes from; View
//     decouples the solver from map storage.
//   - Game engines often expose traversability as a callback; Memoized
//     bounds the number of callback invocations to one per cell.
//
// Complexity:
//
//   - Dense.Traversable, Memoized.Traversable (warm): O(1).
//   - FromRows, Parse: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: ASCII map contains a rune other than '.' or '#'.
package grid
