package types

// A ray cast through the scene, parameterized as Origin + t*Dir. Dir is not
// required to be unit length. Time is the shutter-time sample the ray was
// generated at; it is carried along so primitives that care about motion can
// evaluate themselves at the right instant.
type Ray struct {
	Origin Vec3
	Dir    Vec3
	Time   float32
}

// Create a ray with zero time.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// Get the point at parameter t along the ray.
func (r Ray) PointAt(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
