package scene

import (
	"math"
	"math/rand"

	"github.com/ritobanrc/firework/types"
)

// ConstantMedium fills the volume enclosed by a boundary object with a
// medium of uniform density. A ray entering the boundary scatters after an
// exponentially distributed free path; rays that make it through the far
// side pass unchanged. Pair it with an Isotropic material for smoke and
// fog.
type ConstantMedium struct {
	boundary Object
	density  float32
	material MaterialIndex
}

func NewConstantMedium(boundary Object, density float32, mat MaterialIndex) *ConstantMedium {
	return &ConstantMedium{boundary: boundary, density: density, material: mat}
}

func (cm *ConstantMedium) Hit(r types.Ray, tMin, tMax float32, rng *rand.Rand) (HitRecord, bool) {
	// Find the span the ray spends inside the boundary. The first probe
	// starts from negative infinity so rays originating inside still
	// find their entry point.
	rec1, ok := cm.boundary.Hit(r, -math.MaxFloat32, math.MaxFloat32, rng)
	if !ok {
		return HitRecord{}, false
	}
	rec2, ok := cm.boundary.Hit(r, rec1.T+0.0001, math.MaxFloat32, rng)
	if !ok {
		return HitRecord{}, false
	}

	t1, t2 := rec1.T, rec2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return HitRecord{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	dirLen := r.Dir.Len()
	distInside := (t2 - t1) * dirLen
	hitDist := -(1 / cm.density) * float32(math.Log(float64(rng.Float32())))
	if hitDist >= distInside {
		return HitRecord{}, false
	}

	t := t1 + hitDist/dirLen
	return HitRecord{
		T:     t,
		Point: r.PointAt(t),
		// Scattering direction is isotropic, so the normal is arbitrary.
		Normal:    types.XYZ(1, 0, 0),
		Material:  cm.material,
		FrontFace: true,
	}, true
}

func (cm *ConstantMedium) BoundingBox() (types.AABB, bool) {
	return cm.boundary.BoundingBox()
}
