package scene

import (
	"math/rand"

	"github.com/ritobanrc/firework/types"
)

// Box is an axis-aligned box with one corner at the origin and the
// opposite corner at size, built from six rectangles whose normals all
// point outwards.
type Box struct {
	size  types.Vec3
	faces ObjectList
}

func NewBox(size types.Vec3, mat MaterialIndex) *Box {
	return &Box{
		size: size,
		faces: ObjectList{
			NewXYRect(0, size[0], 0, size[1], size[2], mat),
			NewXYRect(0, size[0], 0, size[1], 0, mat).flip(),
			NewXZRect(0, size[0], 0, size[2], size[1], mat),
			NewXZRect(0, size[0], 0, size[2], 0, mat).flip(),
			NewYZRect(0, size[1], 0, size[2], size[0], mat),
			NewYZRect(0, size[1], 0, size[2], 0, mat).flip(),
		},
	}
}

func (b *Box) Hit(r types.Ray, tMin, tMax float32, rng *rand.Rand) (HitRecord, bool) {
	return b.faces.Hit(r, tMin, tMax, rng)
}

func (b *Box) BoundingBox() (types.AABB, bool) {
	return types.AABB{Max: b.size}, true
}
