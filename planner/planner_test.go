package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/hazard"
	"github.com/katalvlaran/egress/planner"
)

func mustGrid(t *testing.T, cells [][]int) *floorgrid.FloorGrid {
	t.Helper()
	g, err := floorgrid.New(cells)
	require.NoError(t, err)

	return g
}

// corridorGrid is a 5×5 floor whose only openings in the wall ring are the
// start above and the exit below a 3-wide hall; the cheapest route is the
// straight 4-step column.
func corridorGrid(t *testing.T) *floorgrid.FloorGrid {
	return mustGrid(t, [][]int{
		{1, 1, 0, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 0, 1, 1},
	})
}

// openGrid returns an n×n floor with no walls.
func openGrid(t *testing.T, n int) *floorgrid.FloorGrid {
	cells := make([][]int, n)
	for r := range cells {
		cells[r] = make([]int, n)
	}

	return mustGrid(t, cells)
}

//----------------------------------------------------------------------------//
// Construction Validation
//----------------------------------------------------------------------------//

func TestNew_Validation(t *testing.T) {
	g := corridorGrid(t)
	f := hazard.NewField(g)
	start := floorgrid.Coord{Row: 0, Col: 2}
	exits := []floorgrid.Coord{{Row: 4, Col: 2}}

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"nil grid", func() error {
			_, err := planner.New(nil, f, start, exits)
			return err
		}, planner.ErrNilGrid},
		{"nil field", func() error {
			_, err := planner.New(g, nil, start, exits)
			return err
		}, planner.ErrNilField},
		{"no exits", func() error {
			_, err := planner.New(g, f, start, nil)
			return err
		}, planner.ErrNoExits},
		{"start out of bounds", func() error {
			_, err := planner.New(g, f, floorgrid.Coord{Row: -1, Col: 2}, exits)
			return err
		}, planner.ErrOutOfBounds},
		{"exit out of bounds", func() error {
			_, err := planner.New(g, f, start, []floorgrid.Coord{{Row: 9, Col: 9}})
			return err
		}, planner.ErrOutOfBounds},
		{"zero ants", func() error {
			_, err := planner.New(g, f, start, exits, planner.Ants(0))
			return err
		}, planner.ErrBadOption},
		{"evaporation at 1", func() error {
			_, err := planner.New(g, f, start, exits, planner.Evaporation(1))
			return err
		}, planner.ErrBadOption},
		{"negative beta", func() error {
			_, err := planner.New(g, f, start, exits, planner.Beta(-1))
			return err
		}, planner.ErrBadOption},
		{"non-positive deposit", func() error {
			_, err := planner.New(g, f, start, exits, planner.Deposit(0))
			return err
		}, planner.ErrBadOption},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), tc.want)
		})
	}
}

//----------------------------------------------------------------------------//
// Plan
//----------------------------------------------------------------------------//

func TestPlan_StraightCorridor(t *testing.T) {
	g := corridorGrid(t)
	f := hazard.NewField(g)
	start := floorgrid.Coord{Row: 0, Col: 2}
	exit := floorgrid.Coord{Row: 4, Col: 2}

	c, err := planner.New(g, f, start, []floorgrid.Coord{exit})
	require.NoError(t, err)
	res, err := c.Plan()
	require.NoError(t, err)

	assert.InDelta(t, 4.0, res.Cost, 1e-9, "four unit steps, no hazard, no turns")
	require.Len(t, res.Route, 5)
	assert.Equal(t, start, res.Route[0])
	assert.Equal(t, exit, res.Route[len(res.Route)-1])

	// The deterministic fallback agrees on the optimum.
	fb, err := planner.SearchFrom(g, f, start, []floorgrid.Coord{exit})
	require.NoError(t, err)
	assert.InDelta(t, res.Cost, fb.Cost, 1e-9)
}

func TestPlan_StartOnExit(t *testing.T) {
	g := corridorGrid(t)
	f := hazard.NewField(g)
	start := floorgrid.Coord{Row: 0, Col: 2}

	c, err := planner.New(g, f, start, []floorgrid.Coord{start})
	require.NoError(t, err)
	res, err := c.Plan()
	require.NoError(t, err)

	assert.Equal(t, []floorgrid.Coord{start}, res.Route)
	assert.Zero(t, res.Cost)
}

func TestPlan_NoRoute(t *testing.T) {
	// The start cell is sealed in by walls on all eight sides.
	g := mustGrid(t, [][]int{
		{0, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	})
	f := hazard.NewField(g)
	start := floorgrid.Coord{Row: 2, Col: 2}
	exits := []floorgrid.Coord{{Row: 0, Col: 0}}

	c, err := planner.New(g, f, start, exits)
	require.NoError(t, err)
	_, err = c.Plan()
	assert.ErrorIs(t, err, planner.ErrNoRoute)

	_, err = planner.SearchFrom(g, f, start, exits)
	assert.ErrorIs(t, err, planner.ErrNoRoute)
}

// TestPlan_NoDiagonalCornerCut: a diagonal move may not squeeze between two
// orthogonal walls, so a 2×2 floor with a walled anti-diagonal has no route.
func TestPlan_NoDiagonalCornerCut(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1},
		{1, 0},
	})
	f := hazard.NewField(g)
	start := floorgrid.Coord{Row: 0, Col: 0}
	exits := []floorgrid.Coord{{Row: 1, Col: 1}}

	c, err := planner.New(g, f, start, exits)
	require.NoError(t, err)
	_, err = c.Plan()
	assert.ErrorIs(t, err, planner.ErrNoRoute)

	_, err = planner.SearchFrom(g, f, start, exits)
	assert.ErrorIs(t, err, planner.ErrNoRoute)
}

// TestPlan_AvoidsFire: a fire burning mid-floor at the spread stage forces a
// detour around the unsafe block even though the straight route is shorter.
func TestPlan_AvoidsFire(t *testing.T) {
	g := openGrid(t, 7)
	f := hazard.NewField(g)
	fire := floorgrid.Coord{Row: 3, Col: 3}
	f.Ignite(fire)
	f.Advance(hazard.StageSpread)

	start := floorgrid.Coord{Row: 0, Col: 3}
	exit := floorgrid.Coord{Row: 6, Col: 3}

	c, err := planner.New(g, f, start, []floorgrid.Coord{exit})
	require.NoError(t, err)
	res, err := c.Plan()
	require.NoError(t, err)

	assert.Greater(t, res.Cost, 6.0, "the 6-step straight column crosses the fire")
	assert.Equal(t, start, res.Route[0])
	assert.Equal(t, exit, res.Route[len(res.Route)-1])

	buffer := f.ActiveStage().Buffer()
	for _, cell := range res.Route[1:] {
		assert.False(t, f.IsUnsafe(cell, buffer), "route enters unsafe cell %v", cell)
		assert.NotEqual(t, fire, cell)
	}
}

func TestPlan_Deterministic(t *testing.T) {
	plan := func() planner.Result {
		g := openGrid(t, 7)
		f := hazard.NewField(g)
		f.Ignite(floorgrid.Coord{Row: 3, Col: 3})
		f.Advance(hazard.StageSpread)

		c, err := planner.New(g, f,
			floorgrid.Coord{Row: 0, Col: 3},
			[]floorgrid.Coord{{Row: 6, Col: 3}},
			planner.Seed(7))
		require.NoError(t, err)
		res, err := c.Plan()
		require.NoError(t, err)

		return res
	}

	first, second := plan(), plan()
	assert.Equal(t, first.Route, second.Route)
	assert.Equal(t, first.Cost, second.Cost)
}

// TestPlan_NeverWorseThanFallback: the finalize step guarantees the hybrid
// result never costs more than deterministic search alone.
func TestPlan_NeverWorseThanFallback(t *testing.T) {
	g := openGrid(t, 9)
	f := hazard.NewField(g)
	f.Ignite(floorgrid.Coord{Row: 4, Col: 4}, floorgrid.Coord{Row: 4, Col: 5})
	f.Advance(hazard.StageGrowth)

	start := floorgrid.Coord{Row: 0, Col: 0}
	exits := []floorgrid.Coord{{Row: 8, Col: 8}, {Row: 8, Col: 0}}

	c, err := planner.New(g, f, start, exits, planner.Seed(99))
	require.NoError(t, err)
	res, err := c.Plan()
	require.NoError(t, err)

	fb, err := planner.SearchFrom(g, f, start, exits)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Cost, fb.Cost+1e-9)
}

func TestPlan_OnIterationHook(t *testing.T) {
	g := corridorGrid(t)
	f := hazard.NewField(g)

	var iterations []int
	c, err := planner.New(g, f,
		floorgrid.Coord{Row: 0, Col: 2},
		[]floorgrid.Coord{{Row: 4, Col: 2}},
		planner.MaxIterations(5),
		planner.OnIteration(func(it int, _ float64) { iterations = append(iterations, it) }))
	require.NoError(t, err)
	_, err = c.Plan()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, iterations)
}

//----------------------------------------------------------------------------//
// SearchFrom
//----------------------------------------------------------------------------//

func TestSearchFrom_Validation(t *testing.T) {
	g := corridorGrid(t)
	f := hazard.NewField(g)
	start := floorgrid.Coord{Row: 0, Col: 2}

	_, err := planner.SearchFrom(nil, f, start, []floorgrid.Coord{{Row: 4, Col: 2}})
	assert.ErrorIs(t, err, planner.ErrNilGrid)

	_, err = planner.SearchFrom(g, nil, start, []floorgrid.Coord{{Row: 4, Col: 2}})
	assert.ErrorIs(t, err, planner.ErrNilField)

	_, err = planner.SearchFrom(g, f, start, nil)
	assert.ErrorIs(t, err, planner.ErrNoExits)

	_, err = planner.SearchFrom(g, f, start, []floorgrid.Coord{{Row: 5, Col: 5}})
	assert.ErrorIs(t, err, planner.ErrOutOfBounds)
}

func TestSearchFrom_StartOnExit(t *testing.T) {
	g := corridorGrid(t)
	f := hazard.NewField(g)
	start := floorgrid.Coord{Row: 0, Col: 2}

	res, err := planner.SearchFrom(g, f, start, []floorgrid.Coord{start})
	require.NoError(t, err)
	assert.Equal(t, []floorgrid.Coord{start}, res.Route)
	assert.Zero(t, res.Cost)
}

// TestSearchFrom_PicksNearestExit: with two reachable exits the fallback
// returns the cheaper route.
func TestSearchFrom_PicksNearestExit(t *testing.T) {
	g := openGrid(t, 5)
	f := hazard.NewField(g)
	start := floorgrid.Coord{Row: 2, Col: 0}
	near := floorgrid.Coord{Row: 2, Col: 2}
	far := floorgrid.Coord{Row: 2, Col: 4}

	res, err := planner.SearchFrom(g, f, start, []floorgrid.Coord{far, near})
	require.NoError(t, err)
	assert.Equal(t, near, res.Route[len(res.Route)-1])
	assert.InDelta(t, 2.0, res.Cost, 1e-9)
}
