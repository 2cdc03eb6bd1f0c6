package planner

import (
	"math"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/hazard"
)

// Pheromone field constants.
const (
	pheromoneInit = 0.1  // initial value on every cell
	pheromoneMin  = 0.01 // clamp floor after reinforcement
	pheromoneMax  = 10.0 // clamp ceiling after reinforcement
	bestBoost     = 3.0  // deposit multiplier for the best-so-far path
)

// Colony is a single-invocation hybrid planner: an ant-colony optimizer
// over the hazard cost model, finalized against a deterministic best-first
// fallback. A Colony owns its pheromone field and RNG exclusively; build
// one per request and discard it with the request.
type Colony struct {
	grid  *floorgrid.FloorGrid
	field *hazard.Field
	start floorgrid.Coord
	exits []floorgrid.Coord

	exitSet mapset.Set[floorgrid.Coord]
	opts    Options
	rng     *rand.Rand

	tau       []float64 // pheromone, row-major, parallel to the grid
	bestRoute []floorgrid.Coord
	bestCost  float64
}

// New validates the request geometry and builds a Colony.
//
// Preconditions (checked in order):
//  1. g non-nil (ErrNilGrid), f non-nil (ErrNilField).
//  2. At least one exit (ErrNoExits).
//  3. Start and every exit in bounds (ErrOutOfBounds).
//  4. Every option within range (ErrBadOption).
func New(g *floorgrid.FloorGrid, f *hazard.Field, start floorgrid.Coord, exits []floorgrid.Coord, opts ...Option) (*Colony, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if f == nil {
		return nil, ErrNilField
	}
	if len(exits) == 0 {
		return nil, ErrNoExits
	}
	if !g.InBounds(start) {
		return nil, ErrOutOfBounds
	}

	exitSet := mapset.New[floorgrid.Coord]()
	for _, e := range exits {
		if !g.InBounds(e) {
			return nil, ErrOutOfBounds
		}
		exitSet.Put(e)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tau := make([]float64, g.Height()*g.Width())
	for i := range tau {
		tau[i] = pheromoneInit
	}

	return &Colony{
		grid:     g,
		field:    f,
		start:    start,
		exits:    append([]floorgrid.Coord(nil), exits...),
		exitSet:  exitSet,
		opts:     cfg,
		rng:      rngFromSeed(cfg.Seed),
		tau:      tau,
		bestCost: math.Inf(1),
	}, nil
}

// Plan runs the full hybrid search:
//
//	Initialize → {Construct × Ants} × MaxIterations (interleaved with
//	Reinforce) → Finalize-with-fallback → Done.
//
// The fallback runs unconditionally at the end: its route is returned when
// the optimizer found none, or when it is strictly cheaper than the
// optimizer's best. The optimizer can therefore only improve on, never
// regress below, deterministic search. Returns ErrNoRoute when neither
// technique reaches any exit.
func (c *Colony) Plan() (Result, error) {
	// An occupant standing on an exit needs no search.
	if c.exitSet.Has(c.start) {
		return Result{Route: []floorgrid.Coord{c.start}, Cost: 0}, nil
	}

	for it := 0; it < c.opts.MaxIterations; it++ {
		var iterRoutes [][]floorgrid.Coord
		var iterCosts []float64

		for a := 0; a < c.opts.Ants; a++ {
			route, cost := c.construct()
			if route == nil {
				// Per-ant failures are absorbed; they only shrink the
				// iteration's sample.
				continue
			}
			iterRoutes = append(iterRoutes, route)
			iterCosts = append(iterCosts, cost)
			if cost < c.bestCost {
				c.bestCost = cost
				c.bestRoute = route
			}
		}

		if len(iterRoutes) > 0 {
			c.reinforce(iterRoutes, iterCosts)
		}
		if c.opts.OnIteration != nil {
			c.opts.OnIteration(it+1, c.bestCost)
		}
	}

	fb, fbErr := SearchFrom(c.grid, c.field, c.start, c.exits)

	if c.bestRoute == nil || math.IsInf(c.bestCost, 1) {
		if fbErr != nil {
			return Result{}, ErrNoRoute
		}
		return fb, nil
	}
	if fbErr == nil && fb.Cost < c.bestCost {
		return fb, nil
	}

	return Result{Route: c.bestRoute, Cost: c.bestCost}, nil
}

// reinforce applies one global pheromone update: evaporate everything by
// (1-ρ), deposit Q/length along every successful route (tripled for the
// best-so-far route), then clamp to [pheromoneMin, pheromoneMax].
func (c *Colony) reinforce(routes [][]floorgrid.Coord, costs []float64) {
	for i := range c.tau {
		c.tau[i] *= 1 - c.opts.Evaporation
	}

	for i, route := range routes {
		cost := costs[i]
		if cost <= 0 || math.IsInf(cost, 1) {
			continue
		}
		delta := c.opts.Deposit / cost
		if equalRoutes(route, c.bestRoute) {
			delta *= bestBoost
		}
		for _, cell := range route {
			c.tau[c.cellIndex(cell)] += delta
		}
	}

	for i, v := range c.tau {
		c.tau[i] = math.Min(pheromoneMax, math.Max(pheromoneMin, v))
	}
}

// heuristic scores a candidate cell: larger when closer to an exit and
// lower-hazard. η = (exp(-penalty·k) + 1e-6) / (minExitDist + 1), where k
// is the active stage's decay constant. Blocked cells score near zero.
func (c *Colony) heuristic(pos floorgrid.Coord) float64 {
	const floor = 1e-6

	pen := c.field.Penalty(pos)
	if math.IsInf(pen, 1) {
		return weightFloor
	}
	fireFactor := math.Exp(-pen * c.field.ActiveStage().Decay())

	return (fireFactor + floor) / (c.minExitDistance(pos) + 1)
}

// minExitDistance returns the smallest Euclidean distance from pos to any
// exit.
func (c *Colony) minExitDistance(pos floorgrid.Coord) float64 {
	best := math.Inf(1)
	for _, e := range c.exits {
		if d := floorgrid.Distance(pos, e); d < best {
			best = d
		}
	}

	return best
}

// cellIndex maps a coordinate to its row-major pheromone index.
func (c *Colony) cellIndex(p floorgrid.Coord) int {
	return p.Row*c.grid.Width() + p.Col
}

// equalRoutes reports whether two routes visit identical cells in order.
func equalRoutes(a, b []floorgrid.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// stepAllowed decides whether a single move curr→next is valid under the
// current hazard: next must be non-wall and safe within the stage buffer,
// and a diagonal move additionally requires both orthogonal "cut corner"
// cells to be non-wall and safe. The corner rule prevents diagonal routes
// from squeezing between two hazardous orthogonal cells.
func stepAllowed(g *floorgrid.FloorGrid, f *hazard.Field, curr, next floorgrid.Coord, buffer int) bool {
	if g.At(next) == floorgrid.CellWall {
		return false
	}
	if f.IsUnsafe(next, buffer) {
		return false
	}

	dr := next.Row - curr.Row
	dc := next.Col - curr.Col
	if dr != 0 && dc != 0 {
		ortho1 := floorgrid.Coord{Row: curr.Row, Col: curr.Col + dc}
		ortho2 := floorgrid.Coord{Row: curr.Row + dr, Col: curr.Col}
		if g.At(ortho1) == floorgrid.CellWall || g.At(ortho2) == floorgrid.CellWall {
			return false
		}
		if f.IsUnsafe(ortho1, buffer) || f.IsUnsafe(ortho2, buffer) {
			return false
		}
	}

	return true
}
