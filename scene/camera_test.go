package scene

import (
	"testing"

	"github.com/ritobanrc/firework/types"
)

func TestCameraCenterRay(t *testing.T) {
	cam, err := NewCamera(CameraSettings{
		LookFrom: types.XYZ(0, 0, 2),
		LookAt:   types.XYZ(0, 0, 0),
		Vfov:     90,
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	ray := cam.Ray(0.5, 0.5, testRng())
	if !almostEqVec3(ray.Origin, types.XYZ(0, 0, 2)) {
		t.Fatalf("expected ray origin at the camera; got %v", ray.Origin)
	}
	if !almostEqVec3(ray.Dir.Normalize(), types.XYZ(0, 0, -1)) {
		t.Fatalf("expected center ray towards -z; got %v", ray.Dir)
	}
}

func TestCameraCornerRay(t *testing.T) {
	cam, err := NewCamera(CameraSettings{
		LookFrom: types.XYZ(0, 0, 2),
		LookAt:   types.XYZ(0, 0, 0),
		Vfov:     90,
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	// With a 90 degree fov and focus distance 2 the frustum half extents
	// are 2 on both axes.
	ray := cam.Ray(0, 0, testRng())
	if !almostEqVec3(ray.Dir, types.XYZ(-2, -2, -2)) {
		t.Fatalf("expected corner ray (-2, -2, -2); got %v", ray.Dir)
	}
}

func TestCameraDegenerate(t *testing.T) {
	type spec struct {
		settings CameraSettings
	}
	specs := []spec{
		// Looking at itself.
		{CameraSettings{LookFrom: types.XYZ(1, 1, 1), LookAt: types.XYZ(1, 1, 1)}},
		// Up parallel to the view direction.
		{CameraSettings{LookFrom: types.XYZ(0, 0, 2), LookAt: types.XYZ(0, 0, 0), Up: types.XYZ(0, 0, 1)}},
	}

	for index, s := range specs {
		if _, err := NewCamera(s.settings, 1); err != ErrDegenerateCamera {
			t.Fatalf("[spec %d] expected ErrDegenerateCamera; got %v", index, err)
		}
	}
}

func TestCameraDefaults(t *testing.T) {
	// The zero settings look down -z with a 90 degree fov.
	cam, err := NewCamera(CameraSettings{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	ray := cam.Ray(0.5, 0.5, testRng())
	if !almostEqVec3(ray.Dir.Normalize(), types.XYZ(0, 0, -1)) {
		t.Fatalf("expected default camera towards -z; got %v", ray.Dir)
	}
}

func TestCameraShutter(t *testing.T) {
	cam, err := NewCamera(CameraSettings{
		LookFrom: types.XYZ(0, 0, 2),
		Time0:    1,
		Time1:    3,
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	rng := testRng()
	seen := map[float32]bool{}
	for i := 0; i < 100; i++ {
		ray := cam.Ray(0.5, 0.5, rng)
		if ray.Time < 1 || ray.Time >= 3 {
			t.Fatalf("expected time in [1, 3); got %f", ray.Time)
		}
		seen[ray.Time] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected the shutter samples to vary")
	}

	// An instantaneous shutter always stamps Time0.
	cam, err = NewCamera(CameraSettings{LookFrom: types.XYZ(0, 0, 2), Time0: 5, Time1: 5}, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if ray := cam.Ray(0.5, 0.5, rng); ray.Time != 5 {
			t.Fatalf("expected time=5; got %f", ray.Time)
		}
	}
}

func TestCameraAperture(t *testing.T) {
	// No aperture: the origin never moves.
	cam, err := NewCamera(CameraSettings{LookFrom: types.XYZ(0, 0, 2)}, 1)
	if err != nil {
		t.Fatal(err)
	}
	rng := testRng()
	for i := 0; i < 10; i++ {
		if ray := cam.Ray(0.5, 0.5, rng); !almostEqVec3(ray.Origin, types.XYZ(0, 0, 2)) {
			t.Fatalf("expected a fixed origin; got %v", ray.Origin)
		}
	}

	// With an aperture the origin jitters inside the lens disk, which
	// lies in the camera's u/v plane.
	cam, err = NewCamera(CameraSettings{LookFrom: types.XYZ(0, 0, 2), Aperture: 2}, 1)
	if err != nil {
		t.Fatal(err)
	}
	moved := false
	for i := 0; i < 50; i++ {
		ray := cam.Ray(0.5, 0.5, rng)
		offset := ray.Origin.Sub(types.XYZ(0, 0, 2))
		if offset.Len() > 1.001 {
			t.Fatalf("expected lens offset within radius 1; got %v", offset)
		}
		if !almostEq(offset[2], 0) {
			t.Fatalf("expected lens offset in the view plane; got %v", offset)
		}
		if offset.Len() > 1e-6 {
			moved = true
		}
	}
	if !moved {
		t.Fatal("expected the lens samples to move the ray origin")
	}
}
