package preset

import (
	"fmt"
	"image"
	"math/rand"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ritobanrc/firework/scene"
	"github.com/ritobanrc/firework/types"
)

// Simple builds a glass, a matte and a metal sphere resting on a large
// matte ground plane under the default sky.
func Simple() (*scene.Scene, error) {
	sc := scene.NewScene()

	glass := sc.AddMaterial(scene.NewDielectric(1.5))
	diffuse := sc.AddMaterial(scene.NewLambertianColor(types.XYZ(0.8, 0.8, 0.8)))
	metal := sc.AddMaterial(scene.NewMetal(types.XYZ(0.7, 0.7, 0.7), 0))

	sc.AddObject(scene.NewObject(scene.NewSphere(1, glass)).Position(0, 1, 0))
	sc.AddObject(scene.NewObject(scene.NewSphere(1, diffuse)).Position(-4, 1, 0))
	sc.AddObject(scene.NewObject(scene.NewSphere(1, metal)).Position(4, 1, 0))
	sc.AddObject(scene.NewObject(scene.NewXZRect(-100, 100, -100, 100, 0, diffuse)))

	sc.SetEnvironment(scene.DefaultSky())
	sc.SetCamera(scene.CameraSettings{
		LookFrom: types.XYZ(0, 2, -10),
		Vfov:     60,
	})
	return sc, nil
}

// RandomSpheres builds the cover scene of "Ray Tracing in One Weekend": a
// grid of small randomized spheres around three large ones on a checkered
// ground sphere. The layout is deterministic.
func RandomSpheres() (*scene.Scene, error) {
	rng := rand.New(rand.NewSource(12345))
	sc := scene.NewScene()

	checker := sc.AddMaterial(scene.NewLambertian(scene.NewCheckerTextureColors(
		types.XYZ(0.2, 0.4, 0.1),
		types.XYZ(0.9, 0.9, 0.9),
		10,
	)))
	sc.AddObject(scene.NewObject(scene.NewSphere(1000, checker)).Position(0, -1000, -1))

	for x := -11; x < 11; x++ {
		for z := -11; z < 11; z++ {
			center := types.XYZ(
				float32(x)+0.9*rng.Float32(),
				0.2,
				float32(z)+0.9*rng.Float32(),
			)
			if center.Sub(types.XYZ(4, 0.2, 0.9)).Len() <= 0.9 {
				continue
			}

			var mat scene.MaterialIndex
			switch roll := rng.Float32(); {
			case roll < 0.8:
				mat = sc.AddMaterial(scene.NewLambertianColor(types.XYZ(
					rng.Float32()*rng.Float32(),
					rng.Float32()*rng.Float32(),
					rng.Float32()*rng.Float32(),
				)))
			case roll < 0.95:
				albedo := types.XYZ(
					0.5*(1+rng.Float32()),
					0.5*(1+rng.Float32()),
					0.5*(1+rng.Float32()),
				)
				mat = sc.AddMaterial(scene.NewMetal(albedo, 0.5*rng.Float32()))
			default:
				mat = sc.AddMaterial(scene.NewDielectric(1.5))
			}
			sc.AddObject(scene.NewObject(scene.NewSphere(0.2, mat)).PositionVec(center))
		}
	}

	glass := sc.AddMaterial(scene.NewDielectric(1.5))
	diffuse := sc.AddMaterial(scene.NewLambertianColor(types.XYZ(0.4, 0.2, 0.1)))
	metal := sc.AddMaterial(scene.NewMetal(types.XYZ(0.7, 0.6, 0.5), 0))

	sc.AddObject(scene.NewObject(scene.NewSphere(1, glass)).Position(0, 1, 0))
	sc.AddObject(scene.NewObject(scene.NewSphere(1, diffuse)).Position(-4, 1, 0))
	sc.AddObject(scene.NewObject(scene.NewSphere(1, metal)).Position(4, 1, 0))

	sc.SetEnvironment(scene.DefaultSky())
	sc.SetCamera(scene.CameraSettings{
		LookFrom:  types.XYZ(13, 2, 3),
		Vfov:      20,
		Aperture:  0.1,
		FocusDist: 10,
	})
	return sc, nil
}

// CornellBox builds the classic five-wall Cornell box with an area light
// and two rotated boxes. The environment stays black.
func CornellBox() (*scene.Scene, error) {
	sc := scene.NewScene()

	red := sc.AddMaterial(scene.NewLambertianColor(types.XYZ(0.65, 0.05, 0.05)))
	white := sc.AddMaterial(scene.NewLambertianColor(types.XYZ(0.73, 0.73, 0.73)))
	green := sc.AddMaterial(scene.NewLambertianColor(types.XYZ(0.12, 0.45, 0.15)))
	light := sc.AddMaterial(scene.NewDiffuseLightColor(types.XYZ(15, 15, 15)))

	sc.AddObject(scene.NewObject(scene.NewXZRect(213, 343, 227, 332, 554, light)))
	sc.AddObject(scene.NewObject(scene.NewYZRect(0, 555, 0, 555, 555, green)).FlipNormals())
	sc.AddObject(scene.NewObject(scene.NewYZRect(0, 555, 0, 555, 0, red)))
	sc.AddObject(scene.NewObject(scene.NewXZRect(0, 555, 0, 555, 0, white)))
	sc.AddObject(scene.NewObject(scene.NewXZRect(0, 555, 0, 555, 555, white)).FlipNormals())
	sc.AddObject(scene.NewObject(scene.NewXYRect(0, 555, 0, 555, 555, white)).FlipNormals())

	sc.AddObject(scene.NewObject(scene.NewBox(types.XYZ(165, 165, 165), white)).
		Rotate(types.XYZ(0, 1, 0), 18).
		Position(130, 0, 65))
	sc.AddObject(scene.NewObject(scene.NewBox(types.XYZ(165, 330, 165), white)).
		Rotate(types.XYZ(0, 1, 0), -15).
		Position(265, 0, 295))

	sc.SetCamera(scene.CameraSettings{
		LookFrom: types.XYZ(278, 278, -800),
		LookAt:   types.XYZ(278, 278, 0),
		Vfov:     40,
	})
	return sc, nil
}

// VolumeTest builds the Cornell box with the two boxes replaced by
// constant-density smoke and fog media.
func VolumeTest() (*scene.Scene, error) {
	sc := scene.NewScene()

	red := sc.AddMaterial(scene.NewLambertianColor(types.XYZ(0.65, 0.05, 0.05)))
	white := sc.AddMaterial(scene.NewLambertianColor(types.XYZ(0.73, 0.73, 0.73)))
	green := sc.AddMaterial(scene.NewLambertianColor(types.XYZ(0.12, 0.45, 0.15)))
	light := sc.AddMaterial(scene.NewDiffuseLightColor(types.XYZ(7, 7, 7)))

	sc.AddObject(scene.NewObject(scene.NewXZRect(113, 443, 127, 432, 554, light)))
	sc.AddObject(scene.NewObject(scene.NewYZRect(0, 555, 0, 555, 555, green)).FlipNormals())
	sc.AddObject(scene.NewObject(scene.NewYZRect(0, 555, 0, 555, 0, red)))
	sc.AddObject(scene.NewObject(scene.NewXZRect(0, 555, 0, 555, 0, white)))
	sc.AddObject(scene.NewObject(scene.NewXZRect(0, 555, 0, 555, 555, white)).FlipNormals())
	sc.AddObject(scene.NewObject(scene.NewXYRect(0, 555, 0, 555, 555, white)).FlipNormals())

	sc.AddVolume(
		scene.NewObject(scene.NewBox(types.XYZ(165, 165, 165), white)).
			Rotate(types.XYZ(0, 1, 0), 18).
			Position(130, 0, 65),
		0.01,
		scene.NewConstantTexture(types.XYZ(1, 1, 1)),
	)
	sc.AddVolume(
		scene.NewObject(scene.NewBox(types.XYZ(165, 330, 165), white)).
			Rotate(types.XYZ(0, 1, 0), -15).
			Position(265, 0, 295),
		0.01,
		scene.NewConstantTexture(types.XYZ(0, 0, 0)),
	)

	sc.SetCamera(scene.CameraSettings{
		LookFrom: types.XYZ(278, 278, -800),
		LookAt:   types.XYZ(278, 278, 0),
		Vfov:     40,
	})
	return sc, nil
}

// Earth builds a single sphere wrapped in the equirectangular texture
// loaded from texturePath.
func Earth(texturePath string) (*scene.Scene, error) {
	f, err := os.Open(texturePath)
	if err != nil {
		return nil, fmt.Errorf("preset: could not open texture '%s': %s", texturePath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("preset: could not decode texture '%s': %s", texturePath, err)
	}

	sc := scene.NewScene()
	earth := sc.AddMaterial(scene.NewLambertian(scene.NewImageTexture(img)))
	sc.AddObject(scene.NewObject(scene.NewSphere(2, earth)))

	sc.SetEnvironment(scene.DefaultSky())
	sc.SetCamera(scene.CameraSettings{
		LookFrom: types.XYZ(13, 2, 3),
		Vfov:     40,
	})
	return sc, nil
}

// PerlinSpheres builds two marble-textured spheres, one acting as the
// ground, under the default sky.
func PerlinSpheres() (*scene.Scene, error) {
	sc := scene.NewScene()

	marble := sc.AddMaterial(scene.NewLambertian(scene.NewMarbleTexture(7, 5)))
	sc.AddObject(scene.NewObject(scene.NewSphere(1000, marble)).Position(0, -1000, 0))
	sc.AddObject(scene.NewObject(scene.NewSphere(2, marble)).Position(0, 2, 0))

	sc.SetEnvironment(scene.DefaultSky())
	sc.SetCamera(scene.CameraSettings{
		LookFrom: types.XYZ(13, 2, 3),
		Vfov:     20,
	})
	return sc, nil
}
