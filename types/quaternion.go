package types

import "math"

// Quat is a rotation quaternion. Every quaternion the package produces
// is unit length, so Conjugate doubles as the inverse rotation.
type Quat struct {
	V Vec3
	W float32
}

// QuatIdent returns the identity rotation.
func QuatIdent() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the rotation of angle radians about axis.
// The axis does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	half := float64(angle) / 2
	return Quat{
		V: axis.Normalize().Mul(float32(math.Sin(half))),
		W: float32(math.Cos(half)),
	}
}

// Conjugate negates the vector part, undoing the rotation.
func (q Quat) Conjugate() Quat {
	return Quat{V: q.V.Neg(), W: q.W}
}

// Rotate applies the rotation to v via the expanded sandwich product
// q v q*, which costs two cross products and no trigonometry.
func (q Quat) Rotate(v Vec3) Vec3 {
	t := q.V.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(q.V.Cross(t))
}
