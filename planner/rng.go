// Package planner - RNG policy for the stochastic optimizer.
//
// Goals:
//   - Determinism: same seed ⇒ identical routes across platforms.
//   - Encapsulation: one private *rand.Rand per Colony; no global source.
//   - Safety: math/rand.Rand is not goroutine-safe, so a Colony must never
//     be shared across concurrent invocations (it never needs to be: each
//     request constructs its own).
package planner

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
