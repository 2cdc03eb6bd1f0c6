// Package navigate defines the derived route artifacts: turning points,
// textual instructions, and the route summary.
package navigate

import (
	"github.com/katalvlaran/egress/floorgrid"
)

// Turn labels the direction change at a turning point.
type Turn string

const (
	// TurnLeft: the outgoing step bends left of the incoming step.
	TurnLeft Turn = "left"
	// TurnRight: the outgoing step bends right of the incoming step.
	TurnRight Turn = "right"
	// TurnStraight covers the degenerate zero-cross-product case (a full
	// reversal); plain straight continuations are not turning points.
	TurnStraight Turn = "straight"
)

// TurningPoint marks a route cell where the incoming and outgoing movement
// directions differ.
type TurningPoint struct {
	// Position is the turning cell.
	Position floorgrid.Coord `json:"position"`
	// Index is the cell's position within the route.
	Index int `json:"step"`
	// Direction of the turn.
	Direction Turn `json:"direction"`
	// Distance walked from the route start to this cell.
	Distance float64 `json:"distance_from_start"`
}

// Instruction is one turn-by-turn directive covering a route segment.
type Instruction struct {
	// Text is the human-readable directive.
	Text string `json:"instruction"`
	// TurningPoints holds the 0 or 1 turning points this directive leads to.
	TurningPoints []TurningPoint `json:"turning_points,omitempty"`
	// Distance is the segment length in meters (0 for pure turns).
	Distance float64 `json:"distance"`
}

// RouteSummary aggregates every derived artifact of a single route.
type RouteSummary struct {
	TotalDistance float64        `json:"total_distance"`
	Steps         int            `json:"total_steps"`
	TurningPoints []TurningPoint `json:"turning_points"`
	Instructions  []Instruction  `json:"navigation_instructions"`
}
