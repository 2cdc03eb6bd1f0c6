package signage

import (
	"fmt"

	"github.com/katalvlaran/egress/floorgrid"
)

// roomFillOffsets: flood fill is 4-connected on purpose. Rooms are
// enclosed-space regions, not traversal graphs, so diagonal adjacency
// (which the planner's movement model allows) does not merge two spaces
// that only touch at a corner.
var roomFillOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// DetectRooms discovers rooms as 4-connected regions of CellFree cells.
// Regions smaller than minSize cells are discarded as noise, not promoted
// to rooms (pass minSize <= 0 for DefaultMinRoomSize). Rooms are named
// ROOM_001, ROOM_002, ... in row-major discovery order.
// Complexity: O(H×W).
func DetectRooms(g *floorgrid.FloorGrid, minSize int) []Room {
	if minSize <= 0 {
		minSize = DefaultMinRoomSize
	}

	h, w := g.Height(), g.Width()
	visited := make([]bool, h*w)
	var rooms []Room

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			start := floorgrid.Coord{Row: r, Col: c}
			if visited[r*w+c] || g.At(start) != floorgrid.CellFree {
				continue
			}

			cells := fillFrom(g, start, visited)
			if len(cells) < minSize {
				continue
			}
			rooms = append(rooms, Room{
				Name:  fmt.Sprintf("ROOM_%03d", len(rooms)+1),
				Cells: cells,
			})
		}
	}

	return rooms
}

// fillFrom runs one stack-based 4-connected flood fill over CellFree cells
// starting at start, marking visited as it goes.
func fillFrom(g *floorgrid.FloorGrid, start floorgrid.Coord, visited []bool) []floorgrid.Coord {
	w := g.Width()
	var cells []floorgrid.Coord
	stack := []floorgrid.Coord{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := cur.Row*w + cur.Col
		if visited[idx] {
			continue
		}
		visited[idx] = true
		cells = append(cells, cur)

		for _, d := range roomFillOffsets {
			n := floorgrid.Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !g.InBounds(n) {
				continue
			}
			if !visited[n.Row*w+n.Col] && g.At(n) == floorgrid.CellFree {
				stack = append(stack, n)
			}
		}
	}

	return cells
}

// centroid returns the integer-truncated mean of the cells. For concave
// rooms the centroid may land outside the room itself; see DESIGN.md for
// the recorded limitation.
func centroid(cells []floorgrid.Coord) floorgrid.Coord {
	var sr, sc int
	for _, c := range cells {
		sr += c.Row
		sc += c.Col
	}

	return floorgrid.Coord{Row: sr / len(cells), Col: sc / len(cells)}
}
