// Package floorgrid provides the static floor representation used by every
// other package in this module: a rectangular matrix of cell codes with
// 8-connected adjacency and Euclidean step distances.
package floorgrid

import (
	"math"
)

// New constructs a FloorGrid from a non-empty, rectangular 2D slice.
// The input is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadCellCode if any cell code is outside CellFree..CellStart.
// Complexity: O(H×W) time and memory.
func New(values [][]int) (*FloorGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			if v < CellFree || v > CellStart {
				return nil, ErrBadCellCode
			}
		}
	}
	// Deep copy to prevent external mutation.
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	return &FloorGrid{height: h, width: w, cells: cells}, nil
}

// Height returns the number of rows.
func (g *FloorGrid) Height() int { return g.height }

// Width returns the number of columns.
func (g *FloorGrid) Width() int { return g.width }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *FloorGrid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At returns the cell code stored at c. The caller must ensure c is in
// bounds; out-of-range coordinates are a precondition violation.
func (g *FloorGrid) At(c Coord) int {
	return g.cells[c.Row][c.Col]
}

// IsWall reports whether c is in bounds and holds CellWall.
func (g *FloorGrid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == CellWall
}

// IsWalkable reports whether c is in bounds and holds any non-wall code.
func (g *FloorGrid) IsWalkable(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != CellWall
}

// Neighbors returns the 8-connected neighbors of c, excluding cells that
// are out of bounds or walls. Orthogonal neighbors come first, then
// diagonals, in a fixed order, so traversals over Neighbors output are
// fully reproducible.
// Complexity: O(1) (at most 8 candidates).
func (g *FloorGrid) Neighbors(c Coord) []Coord {
	nbrs := make([]Coord, 0, 8)
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) && g.cells[n.Row][n.Col] != CellWall {
			nbrs = append(nbrs, n)
		}
	}

	return nbrs
}

// FindCells returns all coordinates whose cell code equals code,
// in row-major order.
// Complexity: O(H×W).
func (g *FloorGrid) FindCells(code int) []Coord {
	var locs []Coord
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == code {
				locs = append(locs, Coord{Row: r, Col: c})
			}
		}
	}

	return locs
}

// Distance returns the Euclidean distance between two coordinates:
// 1 for orthogonal steps, √2 for diagonal steps.
func Distance(a, b Coord) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}
