// Package egress computes safe evacuation routes and wayfinding signage on
// a building floor plan under an evolving fire hazard.
//
// 🚀 What is egress?
//
//	A computation-only core for evacuation planning that brings together:
//		• Floor model: immutable occupancy grid with 8-connected movement
//		• Hazard model: per-cell fire intensity with stage-driven diffusion
//		• Planner: ant-colony optimizer + deterministic best-first fallback
//		• Navigation: turning points and turn-by-turn instructions
//		• Signage: per-signboard, per-room and corridor direction assignment
//
// ✨ Why choose egress?
//
//   - Per-request ownership – every invocation builds its own grid, field
//     and planner; safe under concurrent requests without a single lock
//   - Deterministic when you need it – seedable optimizer, and a fully
//     deterministic fallback the optimizer can never regress below
//   - Pure computation – no I/O in the core; matrix loading and the HTTP
//     facade live at the edges
//
// Under the hood, everything is organized under five subpackages and two
// commands:
//
//	floorgrid/ — immutable floor matrix, adjacency, distances, loaders
//	hazard/    — fire stages, intensity field, safety predicates
//	planner/   — hybrid route planner (stochastic + deterministic)
//	navigate/  — turning points, instructions, route summaries
//	signage/   — room detection and signboard/corridor guidance
//	cmd/       — egressd (JSON HTTP facade), egress (terminal demo)
//
// Quick ASCII example (5×5 floor, S start, E exit, # wall):
//
//	# # S # #
//	# · · · #
//	# · · · #
//	# · · · #
//	# # E # #
//
// Plan a route, then describe it:
//
//	grid, _ := floorgrid.New(matrix)
//	field := hazard.NewField(grid)
//	field.Ignite(origins...)
//	field.Advance(hazard.StageGrowth)
//	col, _ := planner.New(grid, field, start, exits)
//	res, err := col.Plan() // planner.ErrNoRoute when nothing is safe
//	summary := navigate.Summarize(res.Route)
package egress
