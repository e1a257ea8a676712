package scene

import (
	"math"
	"math/rand"

	"github.com/ritobanrc/firework/types"
)

// Sphere is centered at the origin; place it in the world by wrapping it
// in a RenderObject with a position.
type Sphere struct {
	Radius   float32
	Material MaterialIndex
}

func NewSphere(radius float32, mat MaterialIndex) *Sphere {
	return &Sphere{Radius: radius, Material: mat}
}

func (s *Sphere) Hit(r types.Ray, tMin, tMax float32, _ *rand.Rand) (HitRecord, bool) {
	a := r.Dir.Dot(r.Dir)
	b := 2 * r.Origin.Dot(r.Dir)
	c := r.Origin.Dot(r.Origin) - s.Radius*s.Radius

	t, ok := nearestRoot(a, b, c, tMin, tMax)
	if !ok {
		return HitRecord{}, false
	}

	point := r.PointAt(t)
	unit := point.Mul(1 / s.Radius)
	u, v := sphereUV(unit)
	return newHit(r, t, point, unit, u, v, s.Material), true
}

func (s *Sphere) BoundingBox() (types.AABB, bool) {
	half := types.XYZ(s.Radius, s.Radius, s.Radius)
	return types.AABB{Min: half.Neg(), Max: half}, true
}

// sphereUV maps a point on the unit sphere to spherical (u, v) in [0,1]².
func sphereUV(p types.Vec3) (float32, float32) {
	phi := float32(math.Atan2(float64(p[2]), float64(p[0])))
	theta := float32(math.Asin(float64(p[1])))
	u := 1 - (phi+math.Pi)/(2*math.Pi)
	v := (theta + math.Pi/2) / math.Pi
	return u, v
}

// nearestRoot picks the smaller root of at²+bt+c inside [tMin, tMax),
// falling back to the larger one when the near root is out of range.
func nearestRoot(a, b, c, tMin, tMax float32) (float32, bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := float32(math.Sqrt(float64(disc)))

	if t := (-b - sq) / (2 * a); t < tMax && t > tMin {
		return t, true
	}
	if t := (-b + sq) / (2 * a); t < tMax && t > tMin {
		return t, true
	}
	return 0, false
}
