// Package signage defines the derived guidance artifacts: signboard
// assignments, room guidance, corridor points, and the assembled plan.
package signage

import (
	"errors"

	"github.com/katalvlaran/egress/floorgrid"
)

// Sentinel errors for signage operations.
var (
	// ErrNilGrid indicates a nil *floorgrid.FloorGrid was supplied.
	ErrNilGrid = errors.New("signage: floor grid is nil")
	// ErrNilField indicates a nil *hazard.Field was supplied.
	ErrNilField = errors.New("signage: hazard field is nil")
	// ErrNoExits indicates an empty exit list.
	ErrNoExits = errors.New("signage: at least one exit is required")
	// ErrOutOfBounds indicates an exit coordinate outside the floor grid.
	ErrOutOfBounds = errors.New("signage: exit outside the floor grid")
)

// Non-arrow signal values. Directional signals are the 8 compass arrows
// returned by the per-point search (→ ← ↑ ↓ ↗ ↖ ↘ ↙).
const (
	// SignalBlocked marks a point from which no exit is reachable.
	SignalBlocked = "BLOCKED"
	// SignalExit marks a point that is itself an exit.
	SignalExit = "EXIT"
)

// Coarse turn labels shown next to an arrow.
const (
	TurnLabelLeft     = "LEFT"
	TurnLabelRight    = "RIGHT"
	TurnLabelStraight = "STRAIGHT"
	TurnLabelNone     = "NONE"
)

// RoomStatus classifies the guidance outcome for a room.
type RoomStatus string

const (
	// RoomSafe: the room centroid reaches an exit.
	RoomSafe RoomStatus = "SAFE"
	// RoomBlocked: no accessible (non-wall, safe) cell remains in the room.
	RoomBlocked RoomStatus = "BLOCKED"
	// RoomNoPath: the room is accessible but its centroid reaches no exit.
	RoomNoPath RoomStatus = "NO_PATH"
)

// BlockedDistance is the distance reported for a point with no reachable
// exit. The wire contract is JSON, which cannot carry +Inf, so blocked
// points use this finite sentinel instead.
const BlockedDistance = -1.0

// DefaultMinRoomSize is the flood-fill region size below which a region is
// discarded as noise rather than promoted to a room.
const DefaultMinRoomSize = 10

// DefaultCorridorStride is the sampling interval for corridor guidance.
const DefaultCorridorStride = 5

// Room is a named set of connected free cells discovered by flood fill.
type Room struct {
	Name  string            `json:"name"`
	Cells []floorgrid.Coord `json:"cells"`
}

// Assignment pairs a fixed signboard with the direction it should display.
type Assignment struct {
	Position floorgrid.Coord `json:"position"`
	// Signal is a compass arrow, SignalBlocked, or SignalExit.
	Signal string `json:"signal"`
	// Turn is the coarse LEFT/RIGHT/STRAIGHT label (NONE when no arrow).
	Turn string `json:"turn_signal"`
	// Next is the first hop of the computed route (nil when no route).
	Next *floorgrid.Coord `json:"next_position"`
	// DistanceToExit is the route cost to the nearest exit
	// (BlockedDistance when no exit is reachable).
	DistanceToExit float64 `json:"distance_to_exit"`
	// PathLength counts the route cells (0 when no route).
	PathLength int `json:"path_length"`
	// Safe reports the signboard cell itself is not hazardous.
	Safe bool `json:"is_safe"`
}

// RoomGuidance is the evacuation directive for one detected room.
type RoomGuidance struct {
	Status RoomStatus `json:"status"`
	// Direction is the compass arrow out of the room ("" unless SAFE).
	Direction string `json:"exit_direction,omitempty"`
	// DistanceToExit is the route cost from the room centroid.
	DistanceToExit float64 `json:"distance_to_exit,omitempty"`
	// Guidance is the human-readable directive.
	Guidance string `json:"guidance"`
	// Preview holds at most the first five route cells.
	Preview []floorgrid.Coord `json:"path_preview,omitempty"`
}

// CorridorPoint is a sampled corridor cell with its direction treatment.
type CorridorPoint struct {
	Position       floorgrid.Coord `json:"position"`
	Signal         string          `json:"signal"`
	Turn           string          `json:"turn_signal"`
	DistanceToExit float64         `json:"distance_to_exit"`
	Safe           bool            `json:"is_safe"`
}

// Summary carries the plan-level counters.
type Summary struct {
	TotalSignboards   int `json:"total_signboards"`
	ActiveSignboards  int `json:"active_signboards"`
	BlockedSignboards int `json:"blocked_signboards"`
	SafeRooms         int `json:"safe_rooms"`
	BlockedRooms      int `json:"blocked_rooms"`
	CorridorPoints    int `json:"corridor_guidance_points"`
}

// Plan is the complete signage guidance output for one floor.
type Plan struct {
	Signboards map[string]Assignment   `json:"signboards"`
	Rooms      map[string]RoomGuidance `json:"rooms"`
	Corridors  []CorridorPoint         `json:"corridors"`
	Summary    Summary                 `json:"summary"`
}
