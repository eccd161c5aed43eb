package matrix

import (
	"math"
	"math/rand/v2"
)

// Populate returns a matrix of the given shape filled with standard-normal
// samples drawn through the Box-Muller transform.
//
// Values come only from rng, so a seeded generator yields the same matrix on
// every run. This is the single initialization policy for network weights.
func Populate(shape Shape, rng *rand.Rand) (*Matrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	out := newUnchecked(shape)
	data := out.data
	for i := 0; i < len(data); i += 2 {
		z0, z1 := boxMuller(rng)
		data[i] = z0
		if i+1 < len(data) {
			data[i+1] = z1
		}
	}
	return out, nil
}

// boxMuller turns two uniform samples into two independent N(0,1) samples.
// u1 is drawn from (0, 1] so the logarithm stays finite.
func boxMuller(rng *rand.Rand) (z0, z1 float64) {
	u1 := 1 - rng.Float64()
	u2 := rng.Float64()
	r := math.Sqrt(-2.0 * math.Log(u1))
	return r * math.Cos(2.0*math.Pi*u2), r * math.Sin(2.0*math.Pi*u2)
}
