package scene

import "github.com/ritobanrc/firework/types"

// An Environment supplies the background radiance for rays that escape the
// scene without hitting anything.
type Environment interface {
	Sample(dir types.Vec3) types.Vec3
}

// ColorEnvironment is a constant background. The zero value is black,
// which suits scenes lit entirely by emissive surfaces.
type ColorEnvironment struct {
	Color types.Vec3
}

func NewColorEnvironment(c types.Vec3) *ColorEnvironment {
	return &ColorEnvironment{Color: c}
}

func (e *ColorEnvironment) Sample(dir types.Vec3) types.Vec3 {
	return e.Color
}

// SkyEnvironment is a vertical gradient between a horizon color and a
// zenith color, the classic clear-sky background.
type SkyEnvironment struct {
	Zenith  types.Vec3
	Horizon types.Vec3
}

func NewSkyEnvironment(zenith, horizon types.Vec3) *SkyEnvironment {
	return &SkyEnvironment{Zenith: zenith, Horizon: horizon}
}

// DefaultSky is the familiar white-to-blue gradient.
func DefaultSky() *SkyEnvironment {
	return NewSkyEnvironment(types.XYZ(0.5, 0.7, 1.0), types.XYZ(1, 1, 1))
}

func (e *SkyEnvironment) Sample(dir types.Vec3) types.Vec3 {
	t := 0.5 * (dir.Normalize()[1] + 1)
	return e.Horizon.Lerp(e.Zenith, t)
}
