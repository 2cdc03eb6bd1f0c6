package navigate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/navigate"
)

func c(r, col int) floorgrid.Coord { return floorgrid.Coord{Row: r, Col: col} }

//----------------------------------------------------------------------------//
// TurningPoints
//----------------------------------------------------------------------------//

func TestTurningPoints_StraightRouteHasNone(t *testing.T) {
	route := []floorgrid.Coord{c(0, 0), c(1, 0), c(2, 0), c(3, 0), c(4, 0)}
	assert.Nil(t, navigate.TurningPoints(route))
}

func TestTurningPoints_ShortRoutes(t *testing.T) {
	assert.Nil(t, navigate.TurningPoints(nil))
	assert.Nil(t, navigate.TurningPoints([]floorgrid.Coord{c(0, 0)}))
	assert.Nil(t, navigate.TurningPoints([]floorgrid.Coord{c(0, 0), c(0, 1)}))
}

func TestTurningPoints_SingleTurn(t *testing.T) {
	// Down two cells, then right two cells: one bend at (2,0).
	route := []floorgrid.Coord{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)}
	points := navigate.TurningPoints(route)

	require.Len(t, points, 1)
	assert.Equal(t, c(2, 0), points[0].Position)
	assert.Equal(t, 2, points[0].Index)
	assert.Equal(t, navigate.TurnLeft, points[0].Direction)
	assert.InDelta(t, 2.0, points[0].Distance, 1e-9)
}

// TestTurningPoints_Directions pins the cross-product orientation under
// row-down/col-right axes for all four elbow shapes.
func TestTurningPoints_Directions(t *testing.T) {
	cases := []struct {
		name  string
		route []floorgrid.Coord
		want  navigate.Turn
	}{
		{"down then col+", []floorgrid.Coord{c(0, 0), c(1, 0), c(1, 1)}, navigate.TurnLeft},
		{"down then col-", []floorgrid.Coord{c(0, 1), c(1, 1), c(1, 0)}, navigate.TurnRight},
		{"col+ then down", []floorgrid.Coord{c(0, 0), c(0, 1), c(1, 1)}, navigate.TurnRight},
		{"col+ then up", []floorgrid.Coord{c(1, 0), c(1, 1), c(0, 1)}, navigate.TurnLeft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			points := navigate.TurningPoints(tc.route)
			require.Len(t, points, 1)
			assert.Equal(t, tc.want, points[0].Direction)
		})
	}
}

// TestTurningPoints_LeftSpiral: a route that keeps bending the same way
// yields a uniform direction across every turning point.
func TestTurningPoints_LeftSpiral(t *testing.T) {
	route := []floorgrid.Coord{
		c(0, 0), c(1, 0), c(2, 0), // down
		c(2, 1), c(2, 2), // right
		c(1, 2), // up
		c(1, 1), // left
	}
	points := navigate.TurningPoints(route)

	require.Len(t, points, 3)
	for i, p := range points {
		assert.Equal(t, navigate.TurnLeft, p.Direction, "turning point %d", i)
	}
}

func TestTurningPoints_Reversal(t *testing.T) {
	// A 180° about-face has a zero cross product and is labeled straight,
	// yet it still is a turning point since the step vector changed.
	route := []floorgrid.Coord{c(0, 0), c(0, 1), c(0, 0)}
	points := navigate.TurningPoints(route)

	require.Len(t, points, 1)
	assert.Equal(t, navigate.TurnStraight, points[0].Direction)
}

func TestTurningPoints_CumulativeDistances(t *testing.T) {
	// Staircase: the walked distance at each bend accumulates all prior
	// steps, including diagonals.
	route := []floorgrid.Coord{c(0, 0), c(1, 1), c(2, 1), c(2, 2)}
	points := navigate.TurningPoints(route)

	require.Len(t, points, 2)
	assert.InDelta(t, 1.4142, points[0].Distance, 1e-4)
	assert.InDelta(t, 2.4142, points[1].Distance, 1e-4)
}

//----------------------------------------------------------------------------//
// Instructions
//----------------------------------------------------------------------------//

func TestInstructions_Straight(t *testing.T) {
	route := []floorgrid.Coord{c(0, 0), c(1, 0), c(2, 0), c(3, 0), c(4, 0)}
	ins := navigate.Instructions(route)

	require.Len(t, ins, 1)
	assert.Equal(t, "Go straight 4.00m to exit", ins[0].Text)
	assert.InDelta(t, 4.0, ins[0].Distance, 1e-9)
	assert.Empty(t, ins[0].TurningPoints)
}

func TestInstructions_SingleTurn(t *testing.T) {
	// One bend: straight segment to the bend, then straight to the exit.
	// The turn directive itself only appears between consecutive bends.
	route := []floorgrid.Coord{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)}
	ins := navigate.Instructions(route)

	require.Len(t, ins, 2)
	assert.Equal(t, "Go straight 2.00m", ins[0].Text)
	require.Len(t, ins[0].TurningPoints, 1)
	assert.Equal(t, c(2, 0), ins[0].TurningPoints[0].Position)
	assert.Equal(t, "Go straight 2.00m to exit", ins[1].Text)
}

func TestInstructions_TwoTurns(t *testing.T) {
	// Z-shape: the turn directive appears between the two bends.
	route := []floorgrid.Coord{c(0, 0), c(1, 0), c(1, 1), c(2, 1)}
	ins := navigate.Instructions(route)

	require.Len(t, ins, 4)
	assert.Equal(t, "Go straight 1.00m", ins[0].Text)
	assert.Equal(t, "Turn LEFT", ins[1].Text)
	assert.Equal(t, "Go straight 1.00m", ins[2].Text)
	assert.Equal(t, "Go straight 1.00m to exit", ins[3].Text)
}

//----------------------------------------------------------------------------//
// Summarize
//----------------------------------------------------------------------------//

func TestSummarize(t *testing.T) {
	route := []floorgrid.Coord{c(0, 0), c(1, 1), c(2, 1), c(2, 2)}
	s := navigate.Summarize(route)

	assert.Equal(t, 4, s.Steps)
	assert.InDelta(t, 3.4142, s.TotalDistance, 1e-4)
	require.Len(t, s.TurningPoints, 2)
	assert.Equal(t, 1.4142, s.TurningPoints[0].Distance, "distances are rounded to 4 decimals")
	assert.NotEmpty(t, s.Instructions)
}

func TestInstructions_EmptyRoute(t *testing.T) {
	assert.Nil(t, navigate.Instructions(nil))
	assert.Nil(t, navigate.Instructions([]floorgrid.Coord{}))
}

// TestSummarize_EmptyRoute: an empty route summarizes to zeroes with no
// directives, not to a zero-length walk to a nonexistent exit.
func TestSummarize_EmptyRoute(t *testing.T) {
	s := navigate.Summarize(nil)

	assert.Zero(t, s.TotalDistance)
	assert.Zero(t, s.Steps)
	assert.Nil(t, s.TurningPoints)
	assert.Nil(t, s.Instructions)
}
