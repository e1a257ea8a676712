package types

// Axis-aligned bounding box. Min must be <= Max on every axis.
type AABB struct {
	Min Vec3
	Max Vec3
}

// Calc the box enclosing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		Min: MinVec3(a.Min, b.Min),
		Max: MaxVec3(a.Max, b.Max),
	}
}

// Center point of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Slab test. Reports whether the ray's [tMin, tMax) interval overlaps the
// box. Axes where the ray direction is zero cannot be divided through; the
// ray is parallel to those slabs and either misses outright or is
// unconstrained by them.
func (b AABB) Hit(r Ray, tMin, tMax float32) bool {
	for a := 0; a < 3; a++ {
		if r.Dir[a] == 0 {
			if r.Origin[a] < b.Min[a] || r.Origin[a] > b.Max[a] {
				return false
			}
			continue
		}

		invD := 1.0 / r.Dir[a]
		t0 := (b.Min[a] - r.Origin[a]) * invD
		t1 := (b.Max[a] - r.Origin[a]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}
