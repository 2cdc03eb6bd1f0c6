// Package hazard maintains the per-cell fire intensity field over a floor
// grid, with stage-driven diffusion and amplification.
package hazard

import (
	"math"

	"github.com/katalvlaran/egress/floorgrid"
)

const (
	// wallIntensity is the permanent sentinel stored on wall cells.
	wallIntensity = -1.0
	// igniteIntensity is the intensity assigned by Ignite.
	igniteIntensity = 0.5
	// emitFloor: cells at or below this intensity do not emit during diffusion.
	emitFloor = 0.01
	// litWeight / unlitWeight bias diffusion toward already-burning cells.
	litWeight   = 1.5
	unlitWeight = 0.8
	// penaltyScale converts a clamped intensity into a route cost surcharge.
	penaltyScale = 20.0
)

// Field is a dense fire-intensity array parallel to a FloorGrid: one
// float64 per cell, -1 on walls (permanent), [0,1] elsewhere. A Field is
// owned by a single request; Ignite and Advance are its only mutators.
type Field struct {
	grid      *floorgrid.FloorGrid
	intensity []float64 // row-major, length Height×Width
	stage     Stage
}

// NewField builds a zero-intensity Field over g with walls pinned to -1.
// The active stage starts at StageInitial.
// Complexity: O(H×W).
func NewField(g *floorgrid.FloorGrid) *Field {
	f := &Field{
		grid:      g,
		intensity: make([]float64, g.Height()*g.Width()),
		stage:     StageInitial,
	}
	f.pinWalls()

	return f
}

// index maps a coordinate to its row-major position.
func (f *Field) index(c floorgrid.Coord) int {
	return c.Row*f.grid.Width() + c.Col
}

// pinWalls forces every wall cell back to the -1 sentinel.
func (f *Field) pinWalls() {
	for r := 0; r < f.grid.Height(); r++ {
		for c := 0; c < f.grid.Width(); c++ {
			pos := floorgrid.Coord{Row: r, Col: c}
			if f.grid.At(pos) == floorgrid.CellWall {
				f.intensity[f.index(pos)] = wallIntensity
			}
		}
	}
}

// ActiveStage returns the stage most recently applied via Advance
// (StageInitial before the first Advance).
func (f *Field) ActiveStage() Stage { return f.stage }

// IntensityAt returns the intensity at c: -1 on walls, [0,1] elsewhere.
// The caller must ensure c is in bounds.
func (f *Field) IntensityAt(c floorgrid.Coord) float64 {
	return f.intensity[f.index(c)]
}

// Ignite sets the intensity of every listed non-wall cell to 0.5.
// Out-of-bounds coordinates are skipped. A cell whose intensity is negative
// (a wall) is left untouched; any cell with a non-negative intensity is
// overwritten, so re-igniting a cell a previous Advance already heated
// above 0.5 pulls it back down. This mirrors the original ignition
// semantics; see DESIGN.md for the rationale.
func (f *Field) Ignite(coords ...floorgrid.Coord) {
	for _, c := range coords {
		if !f.grid.InBounds(c) {
			continue
		}
		i := f.index(c)
		if f.intensity[i] >= 0 {
			f.intensity[i] = igniteIntensity
		}
	}
}

// Advance applies stage's diffusion and amplification to the whole field,
// clamps every non-wall cell to [0,1], re-pins walls to -1, and records
// stage as active. Advance recomputes the field from its previous state;
// reapplying a stage without re-ignition compounds the diffusion, so stage
// transitions are one-shot by contract.
// Complexity: O(steps × H×W).
func (f *Field) Advance(stage Stage) {
	f.stage = stage
	p := stageParams[stage]

	f.diffuse(p.rate, p.steps)
	if p.amplify != 1.0 {
		f.amplifyPositive(p.amplify)
	}
	f.clamp()
	f.pinWalls()
}

// diffuse runs the spreading kernel steps times. Each step every emitting
// cell (intensity > emitFloor) spreads rate×intensity/len(neighbors) to
// each non-wall neighbor, weighted litWeight for neighbors already alight
// and unlitWeight for unlit ones. Source cells keep their own intensity;
// diffusion only adds.
func (f *Field) diffuse(rate float64, steps int) {
	h, w := f.grid.Height(), f.grid.Width()
	for s := 0; s < steps; s++ {
		next := make([]float64, len(f.intensity))
		copy(next, f.intensity)

		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				pos := floorgrid.Coord{Row: r, Col: c}
				cur := f.intensity[f.index(pos)]
				if cur < 0 || cur <= emitFloor {
					continue
				}

				nbrs := f.grid.Neighbors(pos)
				if len(nbrs) == 0 {
					continue
				}
				share := rate * cur / float64(len(nbrs))
				for _, n := range nbrs {
					ni := f.index(n)
					if f.intensity[ni] > 0 {
						next[ni] += share * litWeight
					} else {
						next[ni] += share * unlitWeight
					}
				}
			}
		}

		f.intensity = next
	}
}

// amplifyPositive multiplies every strictly positive intensity by factor.
func (f *Field) amplifyPositive(factor float64) {
	for i, v := range f.intensity {
		if v > 0 {
			f.intensity[i] = v * factor
		}
	}
}

// clamp restricts every non-wall intensity to [0,1].
func (f *Field) clamp() {
	for i, v := range f.intensity {
		if v < 0 {
			continue
		}
		f.intensity[i] = math.Min(1.0, math.Max(0.0, v))
	}
}

// IsUnsafe reports whether c is a wall or any cell within the clipped
// (2·buffer+1)² square around c has intensity at or above the active
// stage's default threshold. The buffer is what keeps routes a safety
// margin away from hazard rather than merely off burning cells.
func (f *Field) IsUnsafe(c floorgrid.Coord, buffer int) bool {
	return f.IsUnsafeThreshold(c, f.stage.UnsafeThreshold(), buffer)
}

// IsUnsafeThreshold is IsUnsafe with an explicit intensity threshold.
func (f *Field) IsUnsafeThreshold(c floorgrid.Coord, threshold float64, buffer int) bool {
	if f.intensity[f.index(c)] < 0 {
		return true
	}

	h, w := f.grid.Height(), f.grid.Width()
	r0 := max(0, c.Row-buffer)
	r1 := min(h-1, c.Row+buffer)
	c0 := max(0, c.Col-buffer)
	c1 := min(w-1, c.Col+buffer)
	for r := r0; r <= r1; r++ {
		for cc := c0; cc <= c1; cc++ {
			if f.intensity[r*w+cc] >= threshold {
				return true
			}
		}
	}

	return false
}

// Penalty returns the route-cost surcharge for entering c: +Inf on walls
// and on cells at or above the active stage's block threshold, otherwise
// intensity × penaltyScale. The planner adds this to geometric distance.
func (f *Field) Penalty(c floorgrid.Coord) float64 {
	v := f.intensity[f.index(c)]
	if v < 0 || v >= f.stage.BlockThreshold() {
		return math.Inf(1)
	}

	return v * penaltyScale
}
