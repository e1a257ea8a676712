package scene

import (
	"math"
	"math/rand"

	"github.com/ritobanrc/firework/types"
)

// CameraSettings describes a camera declaratively. Zero values fall back
// to sensible defaults: up +Y, a 90 degree vertical field of view, focus
// at the look-at point and an instantaneous shutter. A camera that looks
// nowhere (LookFrom equal to LookAt, or Up parallel to the view
// direction) fails construction.
type CameraSettings struct {
	LookFrom types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vfov is the vertical field of view in degrees.
	Vfov float32

	// Aperture is the lens diameter; 0 disables depth of field.
	Aperture float32

	// FocusDist is the distance to the focal plane; 0 focuses on LookAt.
	FocusDist float32

	// Time0 and Time1 bound the shutter interval. Rays carry a time
	// drawn uniformly from it; equal values give an instantaneous
	// shutter.
	Time0, Time1 float32
}

func (s CameraSettings) withDefaults() CameraSettings {
	if s.Up == (types.Vec3{}) {
		s.Up = types.XYZ(0, 1, 0)
	}
	if s.Vfov == 0 {
		s.Vfov = 90
	}
	if s.LookFrom == s.LookAt && s.LookFrom == (types.Vec3{}) {
		s.LookAt = types.XYZ(0, 0, -1)
	}
	if s.FocusDist == 0 {
		s.FocusDist = s.LookAt.Sub(s.LookFrom).Len()
	}
	return s
}

// Camera maps normalized image-plane coordinates to world-space rays. The
// frustum is pre-scaled by the focus distance so lens offsets converge on
// the focal plane.
type Camera struct {
	position   types.Vec3
	lowerLeft  types.Vec3
	horizontal types.Vec3
	vertical   types.Vec3

	u, v types.Vec3

	lensRadius   float32
	time0, time1 float32
}

// NewCamera builds the camera basis for the given aspect ratio
// (width / height).
func NewCamera(settings CameraSettings, aspect float32) (*Camera, error) {
	s := settings.withDefaults()

	dir := s.LookFrom.Sub(s.LookAt)
	if dir.LenSqr() < 1e-12 {
		return nil, ErrDegenerateCamera
	}

	theta := float64(s.Vfov) * math.Pi / 180
	halfHeight := float32(math.Tan(theta / 2))
	halfWidth := aspect * halfHeight

	w := dir.Normalize()
	u := s.Up.Cross(w)
	if u.LenSqr() < 1e-12 {
		return nil, ErrDegenerateCamera
	}
	u = u.Normalize()
	v := w.Cross(u)

	focus := s.FocusDist
	return &Camera{
		position: s.LookFrom,
		lowerLeft: s.LookFrom.
			Sub(u.Mul(halfWidth * focus)).
			Sub(v.Mul(halfHeight * focus)).
			Sub(w.Mul(focus)),
		horizontal: u.Mul(2 * halfWidth * focus),
		vertical:   v.Mul(2 * halfHeight * focus),
		u:          u,
		v:          v,
		lensRadius: s.Aperture / 2,
		time0:      s.Time0,
		time1:      s.Time1,
	}, nil
}

// Ray returns the world-space ray through image-plane coordinates
// (s, t) ∈ [0,1]², jittering the lens position and shutter time from rng.
func (c *Camera) Ray(s, t float32, rng *rand.Rand) types.Ray {
	origin := c.position
	if c.lensRadius > 0 {
		rd := types.RandomInUnitDisk(rng).Mul(c.lensRadius)
		origin = origin.Add(c.u.Mul(rd[0])).Add(c.v.Mul(rd[1]))
	}

	time := c.time0
	if c.time1 > c.time0 {
		time = c.time0 + rng.Float32()*(c.time1-c.time0)
	}

	return types.Ray{
		Origin: origin,
		Dir: c.lowerLeft.
			Add(c.horizontal.Mul(s)).
			Add(c.vertical.Mul(t)).
			Sub(origin),
		Time: time,
	}
}
