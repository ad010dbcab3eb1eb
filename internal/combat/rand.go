// Package combat provides encounter generation and turn-based battle
// resolution.
package combat

// Rand is the single source of randomness for encounters and battles.
// *math/rand.Rand satisfies it; tests inject seeded or scripted sources.
type Rand interface {
	Intn(n int) int
}

// between returns a uniform integer in [lo, hi].
func between(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// percent draws from [0,100) and reports whether the draw is below chance.
func percent(rng Rand, chance int) bool {
	return rng.Intn(100) < chance
}
