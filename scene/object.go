package scene

import (
	"math/rand"

	"github.com/ritobanrc/firework/types"
)

// An Object is anything a ray can intersect: a primitive surface, a
// transformed wrapper, an aggregate list or a BVH node.
type Object interface {
	// Hit reports the nearest intersection with ray parameter in
	// [tMin, tMax), if one exists. The rng is threaded through for
	// objects whose intersection is probabilistic (participating media);
	// solid surfaces ignore it.
	Hit(r types.Ray, tMin, tMax float32, rng *rand.Rand) (HitRecord, bool)

	// BoundingBox reports the object's bounds. The second return value is
	// false for unbounded objects, which the BVH builder rejects.
	BoundingBox() (types.AABB, bool)
}

// A HitRecord describes a single ray-surface intersection. Records are
// produced transiently per intersection test and never stored.
type HitRecord struct {
	// Ray parameter of the intersection.
	T float32

	// Intersection point and the outward surface normal at it.
	Point  types.Vec3
	Normal types.Vec3

	// Surface parameterization, used for texture lookups.
	U, V float32

	// Handle of the surface material in the scene's library.
	Material MaterialIndex

	// True when the ray struck the side the normal points away from.
	FrontFace bool
}

// newHit fills in the fields common to every primitive, deriving the
// front-face flag from the ray direction and the outward normal.
func newHit(r types.Ray, t float32, point, outward types.Vec3, u, v float32, mat MaterialIndex) HitRecord {
	return HitRecord{
		T:         t,
		Point:     point,
		Normal:    outward,
		U:         u,
		V:         v,
		Material:  mat,
		FrontFace: r.Dir.Dot(outward) < 0,
	}
}

// ObjectList is the trivial aggregate: a linear scan over its children.
// Each successful hit tightens tMax so farther intersections are skipped.
type ObjectList []Object

func (l ObjectList) Hit(r types.Ray, tMin, tMax float32, rng *rand.Rand) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	for _, obj := range l {
		if rec, ok := obj.Hit(r, tMin, tMax, rng); ok {
			hitAnything = true
			tMax = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

func (l ObjectList) BoundingBox() (types.AABB, bool) {
	if len(l) == 0 {
		return types.AABB{}, false
	}

	box, ok := l[0].BoundingBox()
	if !ok {
		return types.AABB{}, false
	}
	for _, obj := range l[1:] {
		b, ok := obj.BoundingBox()
		if !ok {
			return types.AABB{}, false
		}
		box = types.Union(box, b)
	}
	return box, true
}
