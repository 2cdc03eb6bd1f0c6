// Package signage derives wayfinding guidance for fixed signboards,
// detected rooms, and corridor sample points over a hazard-weighted floor.
//
// What
//
//   - System: per-request guidance engine over one grid/field/exit triple.
//   - Assignments: per-signboard compass arrow + coarse turn label, from
//     the first hop of a deterministic search (planner.SearchFrom); EXIT
//     for signboards standing on an exit, BLOCKED when unreachable.
//   - DetectRooms: 4-connected flood fill over free cells; regions below a
//     minimum size are discarded as noise. Deliberately narrower than the
//     planner's 8-connected movement model: rooms are enclosed spaces, not
//     traversal graphs.
//   - GuideRooms: directive per room from its accessible-cell centroid.
//   - CorridorGuidance: strided samples of unclaimed free cells, each given
//     the single-point direction treatment; unusable samples are skipped
//     silently.
//   - BuildPlan: assembles all of the above plus summary counters.
//
// Direction encoding
//
//	Arrows are 8-direction compass runes in plot axes (origin lower-left),
//	matching the wire contract of the external rendering layer. The coarse
//	turn label comes from the sign and relative magnitude of the first
//	hop's row/column deltas, not from the route annotator's cross-product
//	rule.
//
// Failure semantics
//
//	A region below the minimum room size is silently excluded, not an
//	error. A point with no reachable exit is reported BLOCKED (or NO_PATH
//	for rooms); nothing in this package returns a partial route.
package signage
