// Package navigate derives turn-by-turn metadata from a raw route: turning
// points via the cross product of incoming and outgoing step vectors, and
// alternating straight/turn instructions between them.
package navigate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/egress/floorgrid"
)

// TurningPoints extracts every interior route cell whose outgoing step
// vector differs from its incoming one. Collinear continuations produce no
// turning point; left/right is decided by the sign of the 2D cross product
// of the step vectors (positive = left under row-down/col-right axes).
// Routes shorter than three cells have no interior and yield nil.
// Complexity: O(len(route)).
func TurningPoints(route []floorgrid.Coord) []TurningPoint {
	if len(route) < 3 {
		return nil
	}

	var points []TurningPoint
	walked := 0.0
	for i := 1; i < len(route)-1; i++ {
		walked += floorgrid.Distance(route[i-1], route[i])

		in := step(route[i-1], route[i])
		out := step(route[i], route[i+1])
		if in == out {
			continue
		}

		points = append(points, TurningPoint{
			Position:  route[i],
			Index:     i,
			Direction: turnOf(in, out),
			Distance:  walked,
		})
	}

	return points
}

// step returns the movement vector from a to b.
func step(a, b floorgrid.Coord) floorgrid.Coord {
	return floorgrid.Coord{Row: b.Row - a.Row, Col: b.Col - a.Col}
}

// turnOf classifies the bend between an incoming and outgoing step vector
// by their cross product: positive = left, negative = right, zero = a full
// reversal, labeled straight.
func turnOf(in, out floorgrid.Coord) Turn {
	cross := in.Row*out.Col - in.Col*out.Row
	switch {
	case cross > 0:
		return TurnLeft
	case cross < 0:
		return TurnRight
	default:
		return TurnStraight
	}
}

// Instructions synthesizes the directive sequence for a route: a leading
// straight segment to the first turning point, a turn directive between
// consecutive turning points, and a trailing straight segment to the exit.
// A route with no turning points collapses to a single straight-to-exit
// directive covering the whole distance. An empty route is no route at
// all and yields nil rather than a zero-length directive.
// Complexity: O(len(route)).
func Instructions(route []floorgrid.Coord) []Instruction {
	if len(route) == 0 {
		return nil
	}
	points := TurningPoints(route)

	if len(points) == 0 {
		total := routeDistance(route, 0, len(route)-1)
		return []Instruction{{
			Text:     fmt.Sprintf("Go straight %.2fm to exit", total),
			Distance: total,
		}}
	}

	var out []Instruction
	for i, tp := range points {
		from := 0
		if i > 0 {
			from = points[i-1].Index
		}
		seg := routeDistance(route, from, tp.Index)
		out = append(out, Instruction{
			Text:          fmt.Sprintf("Go straight %.2fm", seg),
			TurningPoints: []TurningPoint{tp},
			Distance:      seg,
		})

		if i < len(points)-1 {
			out = append(out, Instruction{
				Text:          fmt.Sprintf("Turn %s", upper(tp.Direction)),
				TurningPoints: []TurningPoint{tp},
				Distance:      0,
			})
		}
	}

	last := points[len(points)-1]
	if final := routeDistance(route, last.Index, len(route)-1); final > 0 {
		out = append(out, Instruction{
			Text:     fmt.Sprintf("Go straight %.2fm to exit", final),
			Distance: final,
		})
	}

	return out
}

// Summarize bundles the route's total distance, step count, turning points
// and instructions into one summary. Distances are rounded to 4 decimals
// for the wire contract.
func Summarize(route []floorgrid.Coord) RouteSummary {
	points := TurningPoints(route)
	for i := range points {
		points[i].Distance = round4(points[i].Distance)
	}

	return RouteSummary{
		TotalDistance: round4(routeDistance(route, 0, len(route)-1)),
		Steps:         len(route),
		TurningPoints: points,
		Instructions:  Instructions(route),
	}
}

// routeDistance sums the Euclidean step lengths of route[from..to].
func routeDistance(route []floorgrid.Coord, from, to int) float64 {
	total := 0.0
	for i := from; i < to; i++ {
		total += floorgrid.Distance(route[i], route[i+1])
	}

	return total
}

// upper maps a Turn onto its directive spelling.
func upper(t Turn) string {
	switch t {
	case TurnLeft:
		return "LEFT"
	case TurnRight:
		return "RIGHT"
	default:
		return "STRAIGHT"
	}
}

// round4 rounds to 4 decimal places.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
