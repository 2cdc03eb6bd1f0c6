// Package signage assigns an evacuation direction to every fixed
// signboard, every detected room, and sampled corridor points, reusing the
// planner's deterministic search for each point.
package signage

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/hazard"
	"github.com/katalvlaran/egress/planner"
)

// System computes per-point guidance over one grid/field/exit-set triple.
// Like every other component it is request-scoped: build, use, discard.
type System struct {
	grid  *floorgrid.FloorGrid
	field *hazard.Field
	exits []floorgrid.Coord
}

// NewSystem validates the triple and builds a System. Every exit must lie
// within the grid (ErrOutOfBounds): an invalid exit list is a caller error,
// distinct from the BLOCKED treatment of points that merely reach no exit.
func NewSystem(g *floorgrid.FloorGrid, f *hazard.Field, exits []floorgrid.Coord) (*System, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if f == nil {
		return nil, ErrNilField
	}
	if len(exits) == 0 {
		return nil, ErrNoExits
	}
	for _, e := range exits {
		if !g.InBounds(e) {
			return nil, ErrOutOfBounds
		}
	}

	return &System{grid: g, field: f, exits: append([]floorgrid.Coord(nil), exits...)}, nil
}

// Assignments computes the direction every signboard should display. Keys
// are SIGN_1, SIGN_2, ... in input order. A signboard standing on an exit
// gets SignalExit with distance 0; one with no reachable exit gets
// SignalBlocked with DistanceToExit == BlockedDistance.
func (s *System) Assignments(signboards []floorgrid.Coord) map[string]Assignment {
	out := make(map[string]Assignment, len(signboards))
	for i, pos := range signboards {
		key := fmt.Sprintf("SIGN_%d", i+1)
		out[key] = s.assign(pos)
	}

	return out
}

// assign runs the single-point direction treatment for pos. Exits are
// validated at construction, so the only search failure left is
// ErrNoRoute; that, and a signboard placed off the floor, read BLOCKED.
func (s *System) assign(pos floorgrid.Coord) Assignment {
	blocked := Assignment{
		Position:       pos,
		Signal:         SignalBlocked,
		Turn:           TurnLabelNone,
		DistanceToExit: BlockedDistance,
	}
	if !s.grid.InBounds(pos) {
		return blocked
	}

	res, err := planner.SearchFrom(s.grid, s.field, pos, s.exits)
	switch {
	case errors.Is(err, planner.ErrNoRoute):
		return blocked
	case len(res.Route) < 2:
		// Already standing on an exit.
		return Assignment{
			Position: pos,
			Signal:   SignalExit,
			Turn:     TurnLabelNone,
		}
	}

	next := res.Route[1]
	return Assignment{
		Position:       pos,
		Signal:         arrowFor(pos, next),
		Turn:           turnLabelFor(pos, next),
		Next:           &next,
		DistanceToExit: round2(res.Cost),
		PathLength:     len(res.Route),
		Safe:           !s.field.IsUnsafe(pos, 0),
	}
}

// GuideRooms computes the evacuation directive for each room, keyed by
// room name. The reference point is the centroid of the room's accessible
// (non-wall, currently safe) cells; a room with no accessible cell is
// RoomBlocked, one whose centroid reaches no exit is RoomNoPath.
func (s *System) GuideRooms(rooms []Room) map[string]RoomGuidance {
	out := make(map[string]RoomGuidance, len(rooms))
	for _, room := range rooms {
		out[room.Name] = s.guideRoom(room)
	}

	return out
}

func (s *System) guideRoom(room Room) RoomGuidance {
	var accessible []floorgrid.Coord
	for _, cell := range room.Cells {
		if s.grid.At(cell) != floorgrid.CellWall && !s.field.IsUnsafe(cell, 0) {
			accessible = append(accessible, cell)
		}
	}
	if len(accessible) == 0 {
		return RoomGuidance{
			Status:   RoomBlocked,
			Guidance: "Room is not safe - seek alternative route",
		}
	}

	center := centroid(accessible)
	res, err := planner.SearchFrom(s.grid, s.field, center, s.exits)
	if err != nil || len(res.Route) < 2 {
		return RoomGuidance{
			Status:   RoomNoPath,
			Guidance: "No safe path available - stay in room and await rescue",
		}
	}

	dir := arrowFor(center, res.Route[1])
	dist := round2(res.Cost)
	preview := res.Route
	if len(preview) > 5 {
		preview = preview[:5]
	}

	return RoomGuidance{
		Status:         RoomSafe,
		Direction:      dir,
		DistanceToExit: dist,
		Guidance:       fmt.Sprintf("Exit %s - %.2fm to safety", dir, dist),
		Preview:        preview,
	}
}

// CorridorGuidance places virtual signboards along corridor cells at the
// given stride (<= 0 for DefaultCorridorStride). Samples that are walls or
// reach no exit are silently skipped, as are samples already on an exit.
func (s *System) CorridorGuidance(cells []floorgrid.Coord, stride int) []CorridorPoint {
	if stride <= 0 {
		stride = DefaultCorridorStride
	}

	var out []CorridorPoint
	for i := 0; i < len(cells); i += stride {
		pos := cells[i]
		if s.grid.At(pos) == floorgrid.CellWall {
			continue
		}

		res, err := planner.SearchFrom(s.grid, s.field, pos, s.exits)
		if err != nil || len(res.Route) < 2 {
			continue
		}

		out = append(out, CorridorPoint{
			Position:       pos,
			Signal:         arrowFor(pos, res.Route[1]),
			Turn:           turnLabelFor(pos, res.Route[1]),
			DistanceToExit: round2(res.Cost),
			Safe:           !s.field.IsUnsafe(pos, 0),
		})
	}

	return out
}

// arrowFor maps the first hop from→to onto an 8-direction compass arrow.
// The arrows are expressed in plot axes (origin lower-left, so a growing
// row index points "up"); this matches the wire contract consumed by the
// external rendering layer.
func arrowFor(from, to floorgrid.Coord) string {
	dr := to.Row - from.Row
	dc := to.Col - from.Col

	switch {
	case dr == 0 && dc > 0:
		return "→"
	case dr == 0 && dc < 0:
		return "←"
	case dr > 0 && dc == 0:
		return "↑"
	case dr < 0 && dc == 0:
		return "↓"
	case dr > 0 && dc > 0:
		return "↗"
	case dr > 0 && dc < 0:
		return "↖"
	case dr < 0 && dc > 0:
		return "↘"
	case dr < 0 && dc < 0:
		return "↙"
	default:
		return "•"
	}
}

// turnLabelFor derives the coarse turn label from the sign and relative
// magnitude of the first hop's deltas. Unlike the route annotator this is
// not a cross-product rule: a dominant column delta reads LEFT/RIGHT, a
// dominant row delta reads STRAIGHT, and diagonal ties follow the column
// sign.
func turnLabelFor(from, to floorgrid.Coord) string {
	dr := to.Row - from.Row
	dc := to.Col - from.Col

	adr, adc := abs(dr), abs(dc)
	switch {
	case adc > adr:
		if dc > 0 {
			return TurnLabelRight
		}
		return TurnLabelLeft
	case adr > adc:
		return TurnLabelStraight
	default:
		if dc > 0 {
			return TurnLabelRight
		}
		return TurnLabelLeft
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// round2 rounds to 2 decimal places for the wire contract.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
