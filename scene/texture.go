package scene

import (
	"image"
	"math"

	"github.com/ritobanrc/firework/types"
)

// A Texture maps a surface parameterization and world-space point to a
// color. Materials sample textures for their albedo or emission.
type Texture interface {
	Sample(u, v float32, p types.Vec3) types.Vec3
}

// ConstantTexture is a flat color everywhere.
type ConstantTexture struct {
	Color types.Vec3
}

func NewConstantTexture(c types.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: c}
}

func (t *ConstantTexture) Sample(u, v float32, p types.Vec3) types.Vec3 {
	return t.Color
}

// CheckerTexture alternates two textures in a 3-D checkerboard driven by
// the sign of a product of sines of the hit point coordinates.
type CheckerTexture struct {
	Odd   Texture
	Even  Texture
	Scale float32
}

func NewCheckerTexture(odd, even Texture, scale float32) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Scale: scale}
}

func NewCheckerTextureColors(odd, even types.Vec3, scale float32) *CheckerTexture {
	return NewCheckerTexture(NewConstantTexture(odd), NewConstantTexture(even), scale)
}

func (t *CheckerTexture) Sample(u, v float32, p types.Vec3) types.Vec3 {
	sines := math.Sin(float64(t.Scale*p[0])) *
		math.Sin(float64(t.Scale*p[1])) *
		math.Sin(float64(t.Scale*p[2]))
	if sines >= 0 {
		return t.Even.Sample(u, v, p)
	}
	return t.Odd.Sample(u, v, p)
}

// NoiseTexture is greyscale Perlin gradient noise.
type NoiseTexture struct {
	Scale float32
}

func NewNoiseTexture(scale float32) *NoiseTexture {
	return &NoiseTexture{Scale: scale}
}

func (t *NoiseTexture) Sample(u, v float32, p types.Vec3) types.Vec3 {
	a := perlinNoise(p.Mul(t.Scale)) + 0.5
	if a > 1 {
		a = 1
	}
	if a < 0 {
		a = 0
	}
	return types.XYZ(a, a, a)
}

// TurbulenceTexture sums progressively smaller octaves of Perlin noise.
type TurbulenceTexture struct {
	Depth int
	Scale float32
}

func NewTurbulenceTexture(depth int, scale float32) *TurbulenceTexture {
	return &TurbulenceTexture{Depth: depth, Scale: scale}
}

func (t *TurbulenceTexture) Sample(u, v float32, p types.Vec3) types.Vec3 {
	a := perlinTurbulence(t.Depth, p.Mul(t.Scale))
	return types.XYZ(a, a, a)
}

// MarbleTexture modulates a sine along Z with turbulence for a veined,
// marble-like pattern.
type MarbleTexture struct {
	Depth int
	Scale float32
}

func NewMarbleTexture(depth int, scale float32) *MarbleTexture {
	return &MarbleTexture{Depth: depth, Scale: scale}
}

func (t *MarbleTexture) Sample(u, v float32, p types.Vec3) types.Vec3 {
	a := 0.5 * (1 + float32(math.Sin(float64(t.Scale*p[2]+10*perlinTurbulence(t.Depth, p)))))
	return types.XYZ(a, a, a)
}

// ImageTexture samples a decoded image by nearest texel. The v axis is
// flipped so v=0 is the bottom of the image, and lookups clamp to the
// image border.
type ImageTexture struct {
	Image image.Image
}

func NewImageTexture(img image.Image) *ImageTexture {
	return &ImageTexture{Image: img}
}

func (t *ImageTexture) Sample(u, v float32, p types.Vec3) types.Vec3 {
	bounds := t.Image.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	i := int(u * float32(w))
	j := int((1 - v) * float32(h))
	if i < 0 {
		i = 0
	}
	if i > w-1 {
		i = w - 1
	}
	if j < 0 {
		j = 0
	}
	if j > h-1 {
		j = h - 1
	}

	cr, cg, cb, _ := t.Image.At(bounds.Min.X+i, bounds.Min.Y+j).RGBA()
	return types.XYZ(
		float32(cr)/0xffff,
		float32(cg)/0xffff,
		float32(cb)/0xffff,
	)
}
