// Package planner defines core types, configuration options, and sentinel
// errors for the hybrid evacuation-route planner of
// github.com/katalvlaran/egress.
//
// The planner combines a stochastic construction-based optimizer with
// pheromone reinforcement and a deterministic best-first fallback over the
// same cost model. See doc.go for the full contract.
package planner

import (
	"errors"

	"github.com/katalvlaran/egress/floorgrid"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilGrid indicates a nil *floorgrid.FloorGrid was supplied.
	ErrNilGrid = errors.New("planner: floor grid is nil")

	// ErrNilField indicates a nil *hazard.Field was supplied.
	ErrNilField = errors.New("planner: hazard field is nil")

	// ErrNoExits indicates an empty exit list.
	ErrNoExits = errors.New("planner: at least one exit is required")

	// ErrOutOfBounds indicates a start or exit coordinate outside the grid.
	ErrOutOfBounds = errors.New("planner: coordinate outside the floor grid")

	// ErrBadOption indicates an option value outside its valid range.
	ErrBadOption = errors.New("planner: option value out of range")

	// ErrNoRoute indicates neither the optimizer nor the deterministic
	// fallback reached any exit under current hazard constraints. This is a
	// business-level result, not a crash: it must stay distinguishable from
	// "a route exists but is long".
	ErrNoRoute = errors.New("planner: no safe route to any exit")
)

// Result is a completed route from the start coordinate (inclusive) to one
// of the exits, plus its accumulated cost under the hazard cost model.
type Result struct {
	Route []floorgrid.Coord `json:"route"`
	Cost  float64           `json:"cost"`
}

// Options configures a Colony.
//
// Ants          – solutions constructed per iteration.
// Alpha         – pheromone exponent in the transition weight.
// Beta          – heuristic exponent in the transition weight.
// Evaporation   – per-iteration pheromone decay ρ; the field keeps (1-ρ).
// Deposit       – pheromone budget Q; each successful path deposits Q/length.
// MaxIterations – optimizer iterations before the fallback finalize.
// Seed          – RNG seed; 0 selects a fixed default seed (see rng.go).
// OnIteration   – optional hook invoked after each iteration with the
//                 iteration index (1-based) and the best cost so far.
type Options struct {
	Ants          int
	Alpha         float64
	Beta          float64
	Evaporation   float64
	Deposit       float64
	MaxIterations int
	Seed          int64
	OnIteration   func(iteration int, bestCost float64)
}

// Option is a functional option for configuring a Colony.
type Option func(*Options)

// DefaultOptions returns the planner defaults: 30 ants, α=1, β=5, ρ=0.5,
// Q=15, 50 iterations, deterministic default seed, no hook.
func DefaultOptions() Options {
	return Options{
		Ants:          30,
		Alpha:         1.0,
		Beta:          5.0,
		Evaporation:   0.5,
		Deposit:       15.0,
		MaxIterations: 50,
		Seed:          0,
	}
}

// Ants sets the number of solutions constructed per iteration (must be ≥ 1).
func Ants(n int) Option { return func(o *Options) { o.Ants = n } }

// Alpha sets the pheromone exponent (must be ≥ 0).
func Alpha(a float64) Option { return func(o *Options) { o.Alpha = a } }

// Beta sets the heuristic exponent (must be ≥ 0).
func Beta(b float64) Option { return func(o *Options) { o.Beta = b } }

// Evaporation sets the pheromone decay ρ (must lie in (0,1)).
func Evaporation(rho float64) Option { return func(o *Options) { o.Evaporation = rho } }

// Deposit sets the pheromone budget Q (must be > 0).
func Deposit(q float64) Option { return func(o *Options) { o.Deposit = q } }

// MaxIterations sets the optimizer iteration count (must be ≥ 1).
func MaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// Seed fixes the stochastic source. Zero selects the package default seed,
// so identical inputs and seeds reproduce identical routes.
func Seed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// OnIteration installs a progress hook, invoked after every optimizer
// iteration. The hook must not retain or mutate planner state.
func OnIteration(fn func(iteration int, bestCost float64)) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// validate rejects option values outside their documented ranges.
func (o Options) validate() error {
	switch {
	case o.Ants < 1:
		return ErrBadOption
	case o.Alpha < 0 || o.Beta < 0:
		return ErrBadOption
	case o.Evaporation <= 0 || o.Evaporation >= 1:
		return ErrBadOption
	case o.Deposit <= 0:
		return ErrBadOption
	case o.MaxIterations < 1:
		return ErrBadOption
	}

	return nil
}
