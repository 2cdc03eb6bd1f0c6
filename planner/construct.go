package planner

import (
	"math"

	"github.com/katalvlaran/egress/floorgrid"
)

// Construction constants.
const (
	// epsilonGreedy is the exploration probability: with probability
	// 1-epsilonGreedy the highest-weight neighbor is taken, otherwise the
	// next cell is sampled proportionally to normalized weights.
	epsilonGreedy = 0.15
	// turnPenalty is added to the accumulated cost whenever the movement
	// direction changes between consecutive steps.
	turnPenalty = 0.15
	// visitPenaltyBase^n scales the weight of a cell already visited n
	// times: revisits are strongly discouraged but not forbidden, which
	// lets an ant back out of a dead end.
	visitPenaltyBase = 0.05
	// weightFloor guards transition weights against underflow; an
	// iteration whose weights all collapse below it aborts the ant.
	weightFloor = 1e-12
	// lengthAbortFactor aborts an ant once its accumulated cost exceeds
	// this multiple of the best feasible cost found so far.
	lengthAbortFactor = 1.5
)

// construct builds one candidate route (one ant). It returns the route and
// its accumulated cost, or (nil, +Inf) when the ant aborts: dead end,
// weight underflow, blocked step, cost blow-up past lengthAbortFactor×best,
// or step budget (H×W) exhaustion.
func (c *Colony) construct() ([]floorgrid.Coord, float64) {
	current := c.start
	visited := map[floorgrid.Coord]int{current: 1}
	route := []floorgrid.Coord{current}
	length := 0.0
	maxSteps := c.grid.Height() * c.grid.Width()
	buffer := c.field.ActiveStage().Buffer()

	for steps := 0; steps < maxSteps; steps++ {
		if c.exitSet.Has(current) {
			return route, length
		}

		// Valid moves, split by whether the target was already visited:
		// fresh cells are always preferred; visited cells are kept as a
		// last resort to escape dead ends.
		var fresh, seen []floorgrid.Coord
		for _, n := range c.grid.Neighbors(current) {
			if !stepAllowed(c.grid, c.field, current, n, buffer) {
				continue
			}
			if visited[n] > 0 {
				seen = append(seen, n)
			} else {
				fresh = append(fresh, n)
			}
		}
		candidates := fresh
		if len(candidates) == 0 {
			candidates = seen
		}
		if len(candidates) == 0 {
			return nil, math.Inf(1)
		}

		// Transition weights: pheromone^α · heuristic^β · 0.05^visits.
		weights := make([]float64, len(candidates))
		total := 0.0
		for i, n := range candidates {
			tau := c.tau[c.cellIndex(n)]
			eta := c.heuristic(n)
			w := math.Pow(tau, c.opts.Alpha) * math.Pow(eta, c.opts.Beta)
			if visits := visited[n]; visits > 0 {
				w *= math.Pow(visitPenaltyBase, float64(visits))
			}
			w = math.Max(w, weightFloor)
			weights[i] = w
			total += w
		}
		if total < weightFloor {
			return nil, math.Inf(1)
		}

		chosen := c.selectNext(candidates, weights, total)

		pen := c.field.Penalty(chosen)
		if math.IsInf(pen, 1) {
			return nil, math.Inf(1)
		}

		stepCost := floorgrid.Distance(current, chosen)
		cost := stepCost * (1 + pen)
		if len(route) >= 2 {
			prev := route[len(route)-2]
			v1 := floorgrid.Coord{Row: current.Row - prev.Row, Col: current.Col - prev.Col}
			v2 := floorgrid.Coord{Row: chosen.Row - current.Row, Col: chosen.Col - current.Col}
			if v1 != v2 {
				cost += turnPenalty
			}
		}
		length += cost

		route = append(route, chosen)
		visited[chosen]++
		current = chosen

		if length > c.bestCost*lengthAbortFactor && !math.IsInf(c.bestCost, 1) {
			return nil, math.Inf(1)
		}
	}

	return nil, math.Inf(1)
}

// selectNext applies the ε-greedy rule over the weighted candidates:
// exploit the argmax with probability 1-ε, otherwise roulette-sample
// proportionally to the normalized weights.
func (c *Colony) selectNext(candidates []floorgrid.Coord, weights []float64, total float64) floorgrid.Coord {
	if c.rng.Float64() > epsilonGreedy {
		best := 0
		for i := 1; i < len(weights); i++ {
			if weights[i] > weights[best] {
				best = i
			}
		}
		return candidates[best]
	}

	r := c.rng.Float64()
	cum := 0.0
	chosen := candidates[len(candidates)-1]
	for i, w := range weights {
		cum += w / total
		if r <= cum {
			chosen = candidates[i]
			break
		}
	}

	return chosen
}
