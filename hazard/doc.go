// Package hazard models an evolving fire over a floorgrid.FloorGrid as a
// dense per-cell intensity field with stage-driven propagation.
//
// What
//
//   - Field: one float64 per cell; -1 is the permanent wall sentinel,
//     every other cell lives in [0,1].
//   - Ignite: seed listed cells at intensity 0.5 (no-op on walls).
//   - Advance: run the stage's diffusion kernel, amplify positive cells
//     (growth/spread), clamp to [0,1], re-pin walls, record the stage.
//   - IsUnsafe / IsUnsafeThreshold: square-buffer safety check around a
//     cell against the stage default (or an explicit) threshold.
//   - Penalty: +Inf on walls and block-threshold cells, otherwise a
//     continuous intensity×20 surcharge the planner adds to distance.
//
// Stages
//
//	Three fixed regimes, each binding diffusion rate, diffusion steps,
//	amplification, unsafe/block thresholds, heuristic decay, and buffer
//	radius:
//
//	  initial  rate=0.05  steps=2  amp=1.0  unsafe=0.35  block=0.60  k=0.6  buf=0
//	  growth   rate=0.12  steps=3  amp=1.3  unsafe=0.25  block=0.50  k=1.0  buf=1
//	  spread   rate=0.20  steps=4  amp=1.6  unsafe=0.20  block=0.40  k=1.2  buf=1
//
//	Diffusion biases fire to run along already-burning cells (×1.5) faster
//	than it ignites fresh ones (×0.8). Stage application recomputes the
//	field from its previous state, so transitions are one-shot: reapplying
//	a stage without re-ignition compounds the diffusion.
//
// Ownership
//
//	A Field belongs to exactly one request. It holds no locks; concurrent
//	requests each build their own Field over a shared read-only FloorGrid.
//
// Complexity
//
//   - Advance: O(steps × H×W).
//   - IsUnsafe: O(buffer²).
//   - Ignite/Penalty/IntensityAt: O(1) per cell.
package hazard
