package scene

import (
	"math"
	"math/rand"

	"github.com/ritobanrc/firework/types"
)

// RenderObject places an Object in the world. It carries the object's
// translation, rotation and an optional normal flip so the geometry types
// themselves stay origin-centered. Rays are mapped into the object's local
// frame before delegating and hits are mapped back out.
//
// The setters return the receiver so placements chain:
//
//	scene.NewObject(scene.NewSphere(2, mat)).Position(0, 2, 0)
type RenderObject struct {
	obj         Object
	position    types.Vec3
	rotation    types.Quat
	invRotation types.Quat
	rotated     bool
	flipNormals bool
	box         types.AABB
	bounded     bool
}

func NewObject(obj Object) *RenderObject {
	ro := &RenderObject{
		obj:         obj,
		rotation:    types.QuatIdent(),
		invRotation: types.QuatIdent(),
	}
	ro.updateBounds()
	return ro
}

// Position places the object's local origin at (x, y, z).
func (o *RenderObject) Position(x, y, z float32) *RenderObject {
	return o.PositionVec(types.XYZ(x, y, z))
}

func (o *RenderObject) PositionVec(pos types.Vec3) *RenderObject {
	o.position = pos
	o.updateBounds()
	return o
}

// Rotate sets the object's rotation to degrees about axis. The rotation is
// applied about the local origin, before the translation.
func (o *RenderObject) Rotate(axis types.Vec3, degrees float32) *RenderObject {
	o.rotation = types.QuatFromAxisAngle(axis, degrees*math.Pi/180)
	o.invRotation = o.rotation.Conjugate()
	o.rotated = true
	o.updateBounds()
	return o
}

// FlipNormals toggles normal flipping. Useful for walls that should face
// the interior of a scene.
func (o *RenderObject) FlipNormals() *RenderObject {
	o.flipNormals = !o.flipNormals
	return o
}

func (o *RenderObject) Hit(r types.Ray, tMin, tMax float32, rng *rand.Rand) (HitRecord, bool) {
	local := r
	local.Origin = r.Origin.Sub(o.position)
	if o.rotated {
		local.Origin = o.invRotation.Rotate(local.Origin)
		local.Dir = o.invRotation.Rotate(r.Dir)
	}

	rec, ok := o.obj.Hit(local, tMin, tMax, rng)
	if !ok {
		return HitRecord{}, false
	}

	if o.rotated {
		rec.Point = o.rotation.Rotate(rec.Point)
		rec.Normal = o.rotation.Rotate(rec.Normal)
	}
	rec.Point = rec.Point.Add(o.position)
	if o.flipNormals {
		rec.Normal = rec.Normal.Neg()
		rec.FrontFace = !rec.FrontFace
	}
	rec.Normal = rec.Normal.Normalize()
	return rec, true
}

func (o *RenderObject) BoundingBox() (types.AABB, bool) {
	return o.box, o.bounded
}

// updateBounds caches the world-space box: the local box's corners are
// rotated and the whole box translated.
func (o *RenderObject) updateBounds() {
	box, ok := o.obj.BoundingBox()
	if !ok {
		o.bounded = false
		return
	}

	if o.rotated {
		min := types.XYZ(math.MaxFloat32, math.MaxFloat32, math.MaxFloat32)
		max := min.Neg()
		corners := [2]types.Vec3{box.Min, box.Max}
		for i := 0; i < 8; i++ {
			corner := types.XYZ(corners[i&1][0], corners[i>>1&1][1], corners[i>>2&1][2])
			p := o.rotation.Rotate(corner)
			min = types.MinVec3(min, p)
			max = types.MaxVec3(max, p)
		}
		box = types.AABB{Min: min, Max: max}
	}

	o.box = types.AABB{Min: box.Min.Add(o.position), Max: box.Max.Add(o.position)}
	o.bounded = true
}
