package scene

import (
	"fmt"
	"math/rand"

	"github.com/ritobanrc/firework/types"
)

// MaterialIndex is an opaque handle into a scene's material library.
// Objects store indices instead of material references so that any number
// of objects can share one material.
type MaterialIndex int32

// ScatterInfo describes a scattered ray and the color attenuation it
// carries back along the path.
type ScatterInfo struct {
	Attenuation types.Vec3
	Scattered   types.Ray
}

// A Material decides what happens to a ray that hits a surface: it either
// scatters with an attenuation, or terminates the path (possibly emitting).
type Material interface {
	// Scatter computes the continuation of an incoming ray. It reports
	// false when the ray is absorbed or the material only emits.
	Scatter(r types.Ray, hit *HitRecord, rng *rand.Rand) (ScatterInfo, bool)

	// Emitted is the radiance the material adds when viewed directly.
	// Non-emissive materials return black.
	Emitted(hit *HitRecord) types.Vec3
}

// Library owns every material used by a scene. It is append-only and
// becomes read-only once rendering starts.
type Library struct {
	materials []Material
}

// Add appends a material and returns its stable handle.
func (l *Library) Add(m Material) MaterialIndex {
	l.materials = append(l.materials, m)
	return MaterialIndex(len(l.materials) - 1)
}

// Get looks up a material by an index issued by Add. Any other index is a
// bug in the caller, so Get panics instead of guessing.
func (l *Library) Get(idx MaterialIndex) Material {
	if idx < 0 || int(idx) >= len(l.materials) {
		panic(fmt.Sprintf("scene: material index %d out of range [0, %d)", idx, len(l.materials)))
	}
	return l.materials[idx]
}

// Len reports the number of materials added so far.
func (l *Library) Len() int {
	return len(l.materials)
}

// Lambertian is an ideal diffuse surface: rays scatter about the normal
// with attenuation from the albedo texture.
type Lambertian struct {
	Albedo Texture
}

func NewLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func NewLambertianColor(c types.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewConstantTexture(c)}
}

func (m *Lambertian) Scatter(r types.Ray, hit *HitRecord, rng *rand.Rand) (ScatterInfo, bool) {
	target := hit.Point.Add(hit.Normal).Add(types.RandomInUnitSphere(rng))
	return ScatterInfo{
		Attenuation: m.Albedo.Sample(hit.U, hit.V, hit.Point),
		Scattered:   types.Ray{Origin: hit.Point, Dir: target.Sub(hit.Point), Time: r.Time},
	}, true
}

func (m *Lambertian) Emitted(*HitRecord) types.Vec3 {
	return types.Vec3{}
}

// Metal is a mirror reflector with an optional fuzz radius perturbing the
// reflected direction. Rays fuzzed into the surface are absorbed.
type Metal struct {
	Albedo types.Vec3
	Fuzz   float32
}

func NewMetal(albedo types.Vec3, fuzz float32) *Metal {
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(r types.Ray, hit *HitRecord, rng *rand.Rand) (ScatterInfo, bool) {
	reflected := types.Reflect(r.Dir.Normalize(), hit.Normal)
	dir := reflected.Add(types.RandomInUnitSphere(rng).Mul(m.Fuzz))
	if dir.Dot(hit.Normal) <= 0 {
		return ScatterInfo{}, false
	}
	return ScatterInfo{
		Attenuation: m.Albedo,
		Scattered:   types.Ray{Origin: hit.Point, Dir: dir, Time: r.Time},
	}, true
}

func (m *Metal) Emitted(*HitRecord) types.Vec3 {
	return types.Vec3{}
}

// Dielectric is a clear refractive material (glass, water). It reflects or
// refracts probabilistically using Schlick's reflectance and never absorbs.
type Dielectric struct {
	RefIdx float32
}

func NewDielectric(refIdx float32) *Dielectric {
	return &Dielectric{RefIdx: refIdx}
}

func (m *Dielectric) Scatter(r types.Ray, hit *HitRecord, rng *rand.Rand) (ScatterInfo, bool) {
	var outward types.Vec3
	var niOverNt, cosine float32

	dot := r.Dir.Dot(hit.Normal)
	if dot > 0 {
		// Leaving the medium.
		outward = hit.Normal.Neg()
		niOverNt = m.RefIdx
		cosine = m.RefIdx * dot / r.Dir.Len()
	} else {
		outward = hit.Normal
		niOverNt = 1.0 / m.RefIdx
		cosine = -dot / r.Dir.Len()
	}

	dir := types.Reflect(r.Dir, hit.Normal)
	if refracted, ok := types.Refract(r.Dir, outward, niOverNt); ok {
		if rng.Float32() >= types.Schlick(cosine, m.RefIdx) {
			dir = refracted
		}
	}

	return ScatterInfo{
		Attenuation: types.XYZ(1, 1, 1),
		Scattered:   types.Ray{Origin: hit.Point, Dir: dir, Time: r.Time},
	}, true
}

func (m *Dielectric) Emitted(*HitRecord) types.Vec3 {
	return types.Vec3{}
}

// DiffuseLight never scatters; it contributes its emission texture when a
// ray sees it directly.
type DiffuseLight struct {
	Emit Texture
}

func NewDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

func NewDiffuseLightColor(c types.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewConstantTexture(c)}
}

func (m *DiffuseLight) Scatter(types.Ray, *HitRecord, *rand.Rand) (ScatterInfo, bool) {
	return ScatterInfo{}, false
}

func (m *DiffuseLight) Emitted(hit *HitRecord) types.Vec3 {
	return m.Emit.Sample(hit.U, hit.V, hit.Point)
}

// Isotropic scatters uniformly in all directions. It is the phase function
// used by constant-density media.
type Isotropic struct {
	Albedo Texture
}

func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func NewIsotropicColor(c types.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewConstantTexture(c)}
}

func (m *Isotropic) Scatter(r types.Ray, hit *HitRecord, rng *rand.Rand) (ScatterInfo, bool) {
	return ScatterInfo{
		Attenuation: m.Albedo.Sample(hit.U, hit.V, hit.Point),
		Scattered:   types.Ray{Origin: hit.Point, Dir: types.RandomInUnitSphere(rng), Time: r.Time},
	}, true
}

func (m *Isotropic) Emitted(*HitRecord) types.Vec3 {
	return types.Vec3{}
}
