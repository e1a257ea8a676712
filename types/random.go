package types

import "math/rand"

// Pick a uniformly distributed point inside the unit sphere by rejection
// sampling.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			2*rng.Float32() - 1,
			2*rng.Float32() - 1,
			2*rng.Float32() - 1,
		}
		if p.LenSqr() < 1 {
			return p
		}
	}
}

// Pick a uniformly distributed point inside the unit disk on the XY plane.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			2*rng.Float32() - 1,
			2*rng.Float32() - 1,
			0,
		}
		if p.LenSqr() < 1 {
			return p
		}
	}
}
