package signage

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/hazard"
)

// BuildPlan assembles the complete signage guidance plan for one floor:
// signboard assignments, room guidance, corridor guidance, and the summary
// counters. Passing rooms == nil auto-detects rooms with DetectRooms and
// DefaultMinRoomSize. Corridor cells are the CellFree cells not claimed by
// any room, sampled at DefaultCorridorStride.
func BuildPlan(g *floorgrid.FloorGrid, f *hazard.Field, exits, signboards []floorgrid.Coord, rooms []Room) (*Plan, error) {
	sys, err := NewSystem(g, f, exits)
	if err != nil {
		return nil, err
	}

	if rooms == nil {
		rooms = DetectRooms(g, DefaultMinRoomSize)
	}

	assignments := sys.Assignments(signboards)
	roomGuidance := sys.GuideRooms(rooms)

	claimed := mapset.New[floorgrid.Coord]()
	for _, room := range rooms {
		for _, cell := range room.Cells {
			claimed.Put(cell)
		}
	}

	var corridorCells []floorgrid.Coord
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			pos := floorgrid.Coord{Row: r, Col: c}
			if g.At(pos) == floorgrid.CellFree && !claimed.Has(pos) {
				corridorCells = append(corridorCells, pos)
			}
		}
	}
	corridors := sys.CorridorGuidance(corridorCells, DefaultCorridorStride)

	summary := Summary{
		TotalSignboards: len(assignments),
		CorridorPoints:  len(corridors),
	}
	for _, a := range assignments {
		switch a.Signal {
		case SignalBlocked:
			summary.BlockedSignboards++
		case SignalExit:
			// Neither active nor blocked.
		default:
			summary.ActiveSignboards++
		}
	}
	for _, rg := range roomGuidance {
		switch rg.Status {
		case RoomSafe:
			summary.SafeRooms++
		case RoomBlocked:
			summary.BlockedRooms++
		}
	}

	return &Plan{
		Signboards: assignments,
		Rooms:      roomGuidance,
		Corridors:  corridors,
		Summary:    summary,
	}, nil
}
