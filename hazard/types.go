// Package hazard defines the fire-stage enumeration, its fixed parameter
// tuples, and sentinel errors for the hazard subpackage of
// github.com/katalvlaran/egress.
package hazard

import (
	"errors"
)

// Sentinel errors for hazard operations.
var (
	// ErrUnknownStage indicates a stage label outside initial|growth|spread.
	ErrUnknownStage = errors.New("hazard: unknown fire stage")
)

// Stage identifies one of the three fixed fire-intensity regimes.
// Exactly one stage is active on a Field at a time.
type Stage int

const (
	// StageInitial is a freshly started fire: slow diffusion, no amplification.
	StageInitial Stage = iota
	// StageGrowth is an establishing fire: faster diffusion plus amplification.
	StageGrowth
	// StageSpread is a fully developed fire: fastest diffusion, strongest
	// amplification, and the tightest safety thresholds.
	StageSpread
)

// params is the fixed tuple of per-stage constants.
type params struct {
	rate      float64 // diffusion rate per step
	steps     int     // diffusion steps per Advance
	amplify   float64 // post-diffusion multiplier on positive intensities (1 = none)
	unsafeAt  float64 // default intensity threshold for IsUnsafe
	blockAt   float64 // intensity threshold above which Penalty is +Inf
	decay     float64 // heuristic decay constant consumed by the planner
	buffer    int     // near-wall safety buffer radius, in cells
	wireLabel string  // external label per the request contract
}

var stageParams = [...]params{
	StageInitial: {rate: 0.05, steps: 2, amplify: 1.0, unsafeAt: 0.35, blockAt: 0.60, decay: 0.6, buffer: 0, wireLabel: "initial"},
	StageGrowth:  {rate: 0.12, steps: 3, amplify: 1.3, unsafeAt: 0.25, blockAt: 0.50, decay: 1.0, buffer: 1, wireLabel: "growth"},
	StageSpread:  {rate: 0.20, steps: 4, amplify: 1.6, unsafeAt: 0.20, blockAt: 0.40, decay: 1.2, buffer: 1, wireLabel: "spread"},
}

// ParseStage maps the external stage label (initial|growth|spread) onto a
// Stage. Returns ErrUnknownStage for any other input.
func ParseStage(label string) (Stage, error) {
	for s, p := range stageParams {
		if p.wireLabel == label {
			return Stage(s), nil
		}
	}

	return StageInitial, ErrUnknownStage
}

// String returns the external label of s.
func (s Stage) String() string {
	if s < StageInitial || s > StageSpread {
		return "unknown"
	}

	return stageParams[s].wireLabel
}

// UnsafeThreshold returns the stage's default intensity threshold used by
// Field.IsUnsafe when no explicit threshold is supplied.
func (s Stage) UnsafeThreshold() float64 { return stageParams[s].unsafeAt }

// BlockThreshold returns the intensity at and above which a cell is
// treated as impassable (Penalty == +Inf).
func (s Stage) BlockThreshold() float64 { return stageParams[s].blockAt }

// Decay returns the stage's heuristic decay constant k. The planner turns a
// fire penalty p into the factor exp(-p·k) when scoring candidate steps.
func (s Stage) Decay() float64 { return stageParams[s].decay }

// Buffer returns the stage's safety buffer radius in cells. Step validity
// checks reject cells whose surrounding (2·Buffer+1)² square contains any
// intensity at or above the unsafe threshold.
func (s Stage) Buffer() int { return stageParams[s].buffer }
