package scene

import (
	"math/rand"

	"github.com/ritobanrc/firework/types"
)

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// unit returns the unit vector along the axis.
func (a Axis) unit() types.Vec3 {
	var v types.Vec3
	v[a] = 1
	return v
}

// otherAxis returns the axis not covered by a and b.
func otherAxis(a, b Axis) Axis {
	return 3 - a - b
}

// Rect is an axis-aligned rectangle spanning [min, max] on the a1 and a2
// axes at offset k along the remaining axis. Its normal points towards
// positive k unless flipped.
type Rect struct {
	a1, a2   Axis
	min, max types.Vec2
	k        float32
	flipped  bool
	Material MaterialIndex
}

// NewXYRect creates a rectangle in the z=k plane.
func NewXYRect(x0, x1, y0, y1, k float32, mat MaterialIndex) *Rect {
	return newRect(AxisX, AxisY, x0, x1, y0, y1, k, mat)
}

// NewXZRect creates a rectangle in the y=k plane.
func NewXZRect(x0, x1, z0, z1, k float32, mat MaterialIndex) *Rect {
	return newRect(AxisX, AxisZ, x0, x1, z0, z1, k, mat)
}

// NewYZRect creates a rectangle in the x=k plane.
func NewYZRect(y0, y1, z0, z1, k float32, mat MaterialIndex) *Rect {
	return newRect(AxisY, AxisZ, y0, y1, z0, z1, k, mat)
}

func newRect(a1, a2 Axis, min1, max1, min2, max2, k float32, mat MaterialIndex) *Rect {
	return &Rect{
		a1:       a1,
		a2:       a2,
		min:      types.XY(min1, min2),
		max:      types.XY(max1, max2),
		k:        k,
		Material: mat,
	}
}

// flip reverses the rectangle's normal. Box uses this for the three faces
// that look towards the origin.
func (rc *Rect) flip() *Rect {
	rc.flipped = !rc.flipped
	return rc
}

func (rc *Rect) Hit(r types.Ray, tMin, tMax float32, _ *rand.Rand) (HitRecord, bool) {
	norm := otherAxis(rc.a1, rc.a2)
	if r.Dir[norm] == 0 {
		// Parallel to the plane.
		return HitRecord{}, false
	}

	t := (rc.k - r.Origin[norm]) / r.Dir[norm]
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}

	point := r.PointAt(t)
	p1, p2 := point[rc.a1], point[rc.a2]
	if p1 < rc.min[0] || p1 > rc.max[0] || p2 < rc.min[1] || p2 > rc.max[1] {
		return HitRecord{}, false
	}

	outward := norm.unit()
	if rc.flipped {
		outward = outward.Neg()
	}
	u := (p1 - rc.min[0]) / (rc.max[0] - rc.min[0])
	v := (p2 - rc.min[1]) / (rc.max[1] - rc.min[1])
	return newHit(r, t, point, outward, u, v, rc.Material), true
}

func (rc *Rect) BoundingBox() (types.AABB, bool) {
	// Pad the flat axis so the box has volume.
	var min, max types.Vec3
	min[rc.a1], max[rc.a1] = rc.min[0], rc.max[0]
	min[rc.a2], max[rc.a2] = rc.min[1], rc.max[1]
	norm := otherAxis(rc.a1, rc.a2)
	min[norm], max[norm] = rc.k-0.001, rc.k+0.001
	return types.AABB{Min: min, Max: max}, true
}
