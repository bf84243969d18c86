// Package terrain assigns per-cell entry costs ("weights") from seeded
// fractal noise, for use by the weighted searches.
//
// Pipeline
//
//	Perlin gradient noise → fBm over Octaves (normalised by amplitude sum)
//	→ min-max contrast stretch to [0,1] → power curve v^Intensity
//	→ weight = 1 + round(9·v), clamped to [1,10].
//
// Start and finish are always forced to weight 1. Generate emits one
// SetWeight edit per cell in radial order from the centre, so callers can
// animate the terrain growing outward; Flatten undoes it.
//
// Weights only matter to Dijkstra, A* and Bidirectional A*. The other
// searches ignore or reject them depending on search.WeightPolicy.
//
// Complexity: O(R·C·Octaves) to sample plus O(R·C·log(R·C)) for the
// radial ordering.
package terrain
