package scene

import (
	"math"
	"testing"

	"github.com/ritobanrc/firework/types"
)

func TestConstantMediumDenseScatter(t *testing.T) {
	// A very dense medium scatters almost immediately after entry.
	medium := NewConstantMedium(NewBox(types.XYZ(1, 1, 1), 0), 1e4, 3)
	ray := types.NewRay(types.XYZ(0.5, 0.5, -2), types.XYZ(0, 0, 1))

	rng := testRng()
	for i := 0; i < 20; i++ {
		rec, ok := medium.Hit(ray, 0.001, math.MaxFloat32, rng)
		if !ok {
			t.Fatal("expected dense medium to scatter")
		}
		if rec.T < 2 || rec.T > 2.05 {
			t.Fatalf("expected scatter just inside the boundary; got t=%f", rec.T)
		}
		if rec.Material != 3 {
			t.Fatalf("expected the medium material; got %d", rec.Material)
		}
	}
}

func TestConstantMediumRayInside(t *testing.T) {
	// Rays starting inside the boundary still find the medium.
	medium := NewConstantMedium(NewBox(types.XYZ(1, 1, 1), 0), 1e4, 0)
	ray := types.NewRay(types.XYZ(0.5, 0.5, 0.5), types.XYZ(0, 0, 1))

	rec, ok := medium.Hit(ray, 0.001, math.MaxFloat32, testRng())
	if !ok {
		t.Fatal("expected scatter")
	}
	if rec.T <= 0 || rec.T > 0.5 {
		t.Fatalf("expected scatter inside the remaining span; got t=%f", rec.T)
	}
}

func TestConstantMediumMiss(t *testing.T) {
	medium := NewConstantMedium(NewBox(types.XYZ(1, 1, 1), 0), 1e4, 0)
	ray := types.NewRay(types.XYZ(5, 5, -2), types.XYZ(0, 0, 1))

	if _, ok := medium.Hit(ray, 0.001, math.MaxFloat32, testRng()); ok {
		t.Fatal("expected ray outside the boundary to miss")
	}
}

func TestConstantMediumBoundingBox(t *testing.T) {
	medium := NewConstantMedium(NewBox(types.XYZ(2, 2, 2), 0), 0.1, 0)
	box, ok := medium.BoundingBox()
	if !ok {
		t.Fatal("expected box")
	}
	if !almostEqVec3(box.Max, types.XYZ(2, 2, 2)) {
		t.Fatalf("expected the boundary's box; got %v", box.Max)
	}
}
