package maze

import "math/rand"

// defaultSeed replaces a zero seed so the zero Options value is still
// reproducible.
const defaultSeed int64 = 1

// Stream identifiers for derived generators.
const (
	streamLayout uint64 = iota + 1
	streamRepair
)

// rngFor returns the deterministic generator for one stream of seed.
// seed==0 ⇒ defaultSeed. Separate streams keep the repair walk stable
// even if a layout algorithm changes how many numbers it draws.
//
// Complexity: O(1).
func rngFor(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(mixSeed(seed, stream)))
}

// mixSeed is a SplitMix64 finaliser over (seed, stream).
func mixSeed(seed int64, stream uint64) int64 {
	x := uint64(seed) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// chance reports true with probability p.
func chance(rng *rand.Rand, p float64) bool { return rng.Float64() < p }
