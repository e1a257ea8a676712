package scene

import (
	"math"
	"testing"

	"github.com/ritobanrc/firework/types"
)

func TestSceneRegistration(t *testing.T) {
	sc := NewScene()

	mat := sc.AddMaterial(NewLambertianColor(types.XYZ(0.5, 0.5, 0.5)))
	if mat != 0 {
		t.Fatalf("expected first material handle 0; got %d", mat)
	}
	if sc.GetMaterial(mat) == nil {
		t.Fatal("expected material to resolve")
	}

	if idx := sc.AddObject(NewObject(NewSphere(1, mat))); idx != 0 {
		t.Fatalf("expected first object index 0; got %d", idx)
	}
	if idx := sc.AddObject(NewObject(NewSphere(2, mat))); idx != 1 {
		t.Fatalf("expected second object index 1; got %d", idx)
	}
}

func TestSceneEnvironmentDefault(t *testing.T) {
	sc := NewScene()
	if got := sc.Environment().Sample(types.XYZ(0, 1, 0)); got != (types.Vec3{}) {
		t.Fatalf("expected black default environment; got %v", got)
	}

	sc.SetEnvironment(DefaultSky())
	up := sc.Environment().Sample(types.XYZ(0, 1, 0))
	if !almostEqVec3(up, types.XYZ(0.5, 0.7, 1)) {
		t.Fatalf("expected zenith color straight up; got %v", up)
	}
	down := sc.Environment().Sample(types.XYZ(0, -1, 0))
	if !almostEqVec3(down, types.XYZ(1, 1, 1)) {
		t.Fatalf("expected horizon color straight down; got %v", down)
	}
}

func TestSceneAddVolume(t *testing.T) {
	sc := NewScene()
	obj := NewObject(NewBox(types.XYZ(1, 1, 1), 0)).Position(0, 0, -5)
	sc.AddVolume(obj, 1e4, NewConstantTexture(types.XYZ(1, 1, 1)))

	if len(sc.Objects) != 1 {
		t.Fatalf("expected 1 object; got %d", len(sc.Objects))
	}

	// The registered isotropic material must come back from a hit inside
	// the medium.
	rec, ok := sc.Objects[0].Hit(types.NewRay(types.XYZ(0.5, 0.5, 0), types.XYZ(0, 0, -1)), 0.001, math.MaxFloat32, testRng())
	if !ok {
		t.Fatal("expected the dense volume to scatter")
	}
	if _, isIso := sc.GetMaterial(rec.Material).(*Isotropic); !isIso {
		t.Fatalf("expected an isotropic medium material; got %T", sc.GetMaterial(rec.Material))
	}
}

func TestSceneRoot(t *testing.T) {
	sc := NewScene()
	mat := sc.AddMaterial(NewLambertianColor(types.XYZ(0.5, 0.5, 0.5)))
	sc.AddObject(NewObject(NewSphere(1, mat)).Position(0, 0, -5))
	sc.AddObject(NewObject(NewSphere(1, mat)).Position(0, 0, -10))

	ray := types.NewRay(types.Vec3{}, types.XYZ(0, 0, -1))

	flat, err := sc.Root(false)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := sc.Root(true)
	if err != nil {
		t.Fatal(err)
	}

	flatRec, ok := flat.Hit(ray, 0.001, math.MaxFloat32, testRng())
	if !ok {
		t.Fatal("expected hit through the flat list")
	}
	treeRec, ok := tree.Hit(ray, 0.001, math.MaxFloat32, testRng())
	if !ok {
		t.Fatal("expected hit through the hierarchy")
	}
	if !almostEq(flatRec.T, treeRec.T) {
		t.Fatalf("expected both aggregates to agree; got %f and %f", flatRec.T, treeRec.T)
	}
}

func TestSceneRootEmpty(t *testing.T) {
	if _, err := NewScene().Root(true); err != ErrEmptyScene {
		t.Fatalf("expected ErrEmptyScene; got %v", err)
	}

	// Without the hierarchy an empty scene is legal; every ray misses.
	root, err := NewScene().Root(false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := root.Hit(types.NewRay(types.Vec3{}, types.XYZ(0, 0, -1)), 0.001, math.MaxFloat32, testRng()); ok {
		t.Fatal("expected no hits in an empty scene")
	}
}
