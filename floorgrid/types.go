// Package floorgrid defines core types and sentinel errors for the
// floorgrid subpackage of github.com/katalvlaran/egress.
package floorgrid

import (
	"errors"
)

// Sentinel errors for floorgrid operations.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("floorgrid: input matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("floorgrid: all rows must have the same length")
	// ErrBadCellCode indicates a cell code outside CellFree..CellStart.
	ErrBadCellCode = errors.New("floorgrid: cell code outside the known range")
	// ErrParse indicates a malformed floor-matrix file.
	ErrParse = errors.New("floorgrid: malformed floor matrix")
)

// Cell codes stored in a floor matrix. Only CellWall is impassable;
// the remaining codes are caller-level semantics over a passable cell.
const (
	// CellFree marks an ordinary walkable cell.
	CellFree = 0
	// CellWall marks a static obstacle. Walls never appear in Neighbors output.
	CellWall = 1
	// CellFireProduct marks a cell holding combustible material.
	CellFireProduct = 2
	// CellExit marks an evacuation exit.
	CellExit = 3
	// CellStart marks an occupant starting position.
	CellStart = 4
)

// Coord is a 0-indexed (row, column) position on a FloorGrid.
// It is a plain value type, comparable and usable as a map key.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// FloorGrid is an immutable rectangular occupancy map of cell codes.
// Height and width are fixed for its lifetime; the backing matrix is
// deep-copied at construction and never mutated afterwards.
type FloorGrid struct {
	height, width int
	cells         [][]int
}

// neighborOffsets lists the 8-connected step offsets, orthogonals first.
var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}
