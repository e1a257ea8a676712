package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ritobanrc/firework/types"
)

func TestNewBVHErrors(t *testing.T) {
	if _, err := NewBVH(nil); err != ErrEmptyScene {
		t.Fatalf("expected ErrEmptyScene; got %v", err)
	}

	if _, err := NewBVH([]Object{NewSphere(1, 0), unboundedObject{}}); err != ErrUnboundedObject {
		t.Fatalf("expected ErrUnboundedObject; got %v", err)
	}
}

func TestNewBVHSingleObject(t *testing.T) {
	sph := NewSphere(1, 0)
	root, err := NewBVH([]Object{sph})
	if err != nil {
		t.Fatal(err)
	}
	if root != Object(sph) {
		t.Fatal("expected a single object to become the root leaf")
	}
}

// The hierarchy must agree with a linear scan on every ray.
func TestBVHMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	objs := make([]Object, 64)
	for i := range objs {
		radius := 0.2 + rng.Float32()
		objs[i] = NewObject(NewSphere(radius, MaterialIndex(i))).Position(
			20*rng.Float32()-10,
			20*rng.Float32()-10,
			20*rng.Float32()-10,
		)
	}

	root, err := NewBVH(objs)
	if err != nil {
		t.Fatal(err)
	}
	list := ObjectList(objs)

	hits := 0
	for i := 0; i < 200; i++ {
		ray := types.NewRay(
			types.XYZ(30*rng.Float32()-15, 30*rng.Float32()-15, 30*rng.Float32()-15),
			types.XYZ(2*rng.Float32()-1, 2*rng.Float32()-1, 2*rng.Float32()-1),
		)
		if ray.Dir.LenSqr() < 1e-6 {
			continue
		}

		expRec, expOk := list.Hit(ray, 0.001, math.MaxFloat32, rng)
		gotRec, gotOk := root.Hit(ray, 0.001, math.MaxFloat32, rng)

		if expOk != gotOk {
			t.Fatalf("[ray %d] expected hit=%v; got %v", i, expOk, gotOk)
		}
		if !expOk {
			continue
		}
		hits++
		if !almostEq(expRec.T, gotRec.T) {
			t.Fatalf("[ray %d] expected t=%f; got %f", i, expRec.T, gotRec.T)
		}
		if expRec.Material != gotRec.Material {
			t.Fatalf("[ray %d] expected material %d; got %d", i, expRec.Material, gotRec.Material)
		}
	}

	if hits == 0 {
		t.Fatal("expected the random rays to produce at least one hit")
	}
}

func TestBVHBoundingBox(t *testing.T) {
	objs := []Object{
		NewObject(NewSphere(1, 0)).Position(-4, 0, 0),
		NewObject(NewSphere(1, 0)).Position(4, 0, 0),
		NewObject(NewSphere(1, 0)).Position(0, 4, 0),
	}
	root, err := NewBVH(objs)
	if err != nil {
		t.Fatal(err)
	}

	box, ok := root.BoundingBox()
	if !ok {
		t.Fatal("expected box")
	}
	if !almostEqVec3(box.Min, types.XYZ(-5, -1, -1)) || !almostEqVec3(box.Max, types.XYZ(5, 5, 1)) {
		t.Fatalf("unexpected box: %v %v", box.Min, box.Max)
	}
}
