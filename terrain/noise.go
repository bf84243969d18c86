package terrain

import (
	"math"
	"math/rand"
)

// Noise is seeded 2D Perlin gradient noise. Values lie roughly in [-1,1]
// and are exactly 0 on integer lattice points.
type Noise struct {
	perm [512]uint8
}

// NewNoise builds the permutation table from seed (0 ⇒ 1).
func NewNoise(seed int64) *Noise {
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	n := &Noise{}
	p := rng.Perm(256)
	for i := 0; i < 512; i++ {
		n.perm[i] = uint8(p[i&255])
	}
	return n
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

// grad dots the lattice gradient picked by hash with (x,y).
func grad(hash uint8, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}

// At samples the noise at (x, y).
func (n *Noise) At(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xi, yi := int(fx)&255, int(fy)&255
	xf, yf := x-fx, y-fy
	u, v := fade(xf), fade(yf)

	p := &n.perm
	aa := p[int(p[xi])+yi]
	ab := p[int(p[xi])+yi+1]
	ba := p[int(p[xi+1])+yi]
	bb := p[int(p[xi+1])+yi+1]

	x1 := lerp(u, grad(aa, xf, yf), grad(ba, xf-1, yf))
	x2 := lerp(u, grad(ab, xf, yf-1), grad(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// FBM sums octaves of At. Each octave multiplies frequency by lacunarity
// and amplitude by persistence; the sum is divided by the total amplitude
// so the result keeps the range of a single octave.
func (n *Noise) FBM(x, y float64, octaves int, persistence, lacunarity float64) float64 {
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for o := 0; o < octaves; o++ {
		sum += amp * n.At(x*freq, y*freq)
		norm += amp
		amp *= persistence
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
