// Package floorgrid models a building floor as an immutable rectangular
// grid of integer cell codes.
//
// What
//
//   - FloorGrid: deep-copied, never-mutated occupancy matrix.
//   - Cell codes: CellFree, CellWall, CellFireProduct, CellExit, CellStart.
//     Only CellWall is enforced as impassable; the other codes are semantics
//     the caller lays over passable cells.
//   - Neighbors: 8-connected adjacency excluding out-of-bounds and walls,
//     returned in a fixed order for reproducible traversals.
//   - FindCells: row-major lookup of every coordinate holding a given code.
//   - Distance: Euclidean step metric (1 orthogonal, √2 diagonal).
//   - Load / LoadCSV: decode whitespace- or CSV-formatted floor matrices.
//
// Why
//
//	Every other package in this module (hazard, planner, signage) reads the
//	floor through this one type. A FloorGrid is built once per request and
//	shared read-only, which makes concurrent requests safe without locking.
//
// Errors (sentinel)
//
//   - ErrEmptyGrid        input has no rows or no columns.
//   - ErrNonRectangular   rows of differing lengths.
//   - ErrBadCellCode      negative cell code.
//   - ErrParse            malformed matrix file (wraps the cause).
//
// Complexity
//
//   - Construction: O(H×W) time and memory.
//   - InBounds/At/Neighbors: O(1).
//   - FindCells: O(H×W).
package floorgrid
