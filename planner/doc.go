// Package planner computes a single best evacuation route from an occupant
// position to any of several exits over a hazard-weighted floor grid.
//
// What
//
//   - Colony: a per-request hybrid planner. The stochastic layer is an
//     ant-colony optimizer: every iteration, Ants independent walkers
//     construct candidate routes cell by cell, and successful routes
//     reinforce a private pheromone field that biases later iterations.
//     The deterministic layer is a best-first search (SearchFrom) with an
//     admissible min-Euclidean-to-exit heuristic over the same cost model.
//   - Plan: Initialize → {Construct×Ants}×MaxIterations (interleaved with
//     Reinforce) → Finalize-with-fallback. The fallback always runs and
//     wins whenever the optimizer found nothing or the fallback route is
//     strictly cheaper, so deterministic search is both the safety net
//     and the quality floor.
//   - SearchFrom: the exported fallback, reused by the signage layer for
//     per-point direction assignment.
//
// Cost model
//
//	step cost = Euclidean distance × (1 + hazard penalty), plus 0.15 per
//	direction change during stochastic construction. A step is invalid if
//	its target is a wall, is unsafe within the stage buffer, or (for a
//	diagonal step) either orthogonal cut-corner cell is a wall or unsafe.
//
// Transition rule (one ant)
//
//	weight = pheromone^α · heuristic^β · 0.05^(visit count), with
//	heuristic = (exp(-penalty·k) + 1e-6) / (minExitDist + 1). Selection is
//	ε-greedy (ε = 0.15): exploit the argmax, otherwise roulette-sample.
//	Unvisited neighbors are always preferred; visited neighbors remain
//	available as an escape from dead ends.
//
// Determinism
//
//	Each Colony owns a *rand.Rand seeded via the Seed option (0 ⇒ fixed
//	default seed), so a Colony over identical inputs reproduces identical
//	routes. SearchFrom is fully deterministic.
//
// Errors (sentinel)
//
//   - ErrNilGrid, ErrNilField, ErrNoExits, ErrOutOfBounds, ErrBadOption —
//     request validation at New/SearchFrom.
//   - ErrNoRoute — neither technique reached any exit; a business-level
//     result, never accompanied by a partial route.
//
// Complexity
//
//   - Plan: bounded by MaxIterations × Ants × H×W steps.
//   - SearchFrom: O(H×W log(H×W)).
//
// Usage
//
//	col, err := planner.New(grid, field, start, exits, planner.Seed(42))
//	if err != nil { ... }
//	res, err := col.Plan()
//	if errors.Is(err, planner.ErrNoRoute) {
//	    // no safe route exists; distinguish from "route exists but long"
//	}
package planner
