package reader

import (
	"math"
	"testing"

	"github.com/ritobanrc/firework/scene"
	"github.com/ritobanrc/firework/types"
)

const triangleOBJ = `
# single right triangle in the z=0 plane
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
vn 0 0 1
vn 0 0 1
f 1/1/1 2/2/2 3/3/3
`

const bareTriangleOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

const twoGroupOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 -1
v 1 0 -1
v 0 1 -1
g near
f 1 2 3
g far
f 4 5 6
g empty
`

func TestLoadOBJ(t *testing.T) {
	res := mockResource(triangleOBJ)
	defer res.Close()

	meshes, err := LoadOBJ(res, scene.MaterialIndex(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh; got %d", len(meshes))
	}

	mesh := meshes[0]
	if mesh.NumVerts() != 3 || mesh.NumTriangles() != 1 {
		t.Fatalf("expected 3 vertices and 1 triangle; got %d and %d", mesh.NumVerts(), mesh.NumTriangles())
	}

	ray := types.NewRay(types.XYZ(0.25, 0.25, 1), types.XYZ(0, 0, -1))
	hit, ok := mesh.Hit(ray, 0.001, math.MaxFloat32, nil)
	if !ok {
		t.Fatal("expected ray to hit the loaded triangle")
	}
	if !almostEq(hit.T, 1) {
		t.Fatalf("expected hit at t=1; got %f", hit.T)
	}
	if !almostEqVec3(hit.Normal, types.XYZ(0, 0, 1)) {
		t.Fatalf("expected shading normal (0, 0, 1); got %v", hit.Normal)
	}
	if !almostEq(hit.U, 0.25) || !almostEq(hit.V, 0.25) {
		t.Fatalf("expected uv (0.25, 0.25); got (%f, %f)", hit.U, hit.V)
	}
	if hit.Material != 3 {
		t.Fatalf("expected material index 3; got %d", hit.Material)
	}
}

func TestLoadOBJGeometricNormals(t *testing.T) {
	res := mockResource(bareTriangleOBJ)
	defer res.Close()

	meshes, err := LoadOBJ(res, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh; got %d", len(meshes))
	}

	ray := types.NewRay(types.XYZ(0.25, 0.25, 1), types.XYZ(0, 0, -1))
	hit, ok := meshes[0].Hit(ray, 0.001, math.MaxFloat32, nil)
	if !ok {
		t.Fatal("expected ray to hit the loaded triangle")
	}
	if !almostEqVec3(hit.Normal, types.XYZ(0, 0, 1)) {
		t.Fatalf("expected geometric normal (0, 0, 1); got %v", hit.Normal)
	}
}

func TestLoadOBJGroups(t *testing.T) {
	res := mockResource(twoGroupOBJ)
	defer res.Close()

	meshes, err := LoadOBJ(res, 0)
	if err != nil {
		t.Fatal(err)
	}

	// The trailing empty group contributes no mesh.
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes; got %d", len(meshes))
	}
}

func TestLoadOBJNoGeometry(t *testing.T) {
	res := mockResource("# empty file\n")
	defer res.Close()

	if _, err := LoadOBJ(res, 0); err == nil {
		t.Fatal("expected an error for a geometry-free file")
	}
}

func TestWavefrontSceneRead(t *testing.T) {
	res := mockResource(triangleOBJ)
	defer res.Close()

	sc, err := newWavefrontReader().Read(res)
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Objects) != 1 {
		t.Fatalf("expected scene with 1 object; got %d", len(sc.Objects))
	}

	root, err := sc.Root(true)
	if err != nil {
		t.Fatal(err)
	}
	ray := types.NewRay(types.XYZ(0.25, 0.25, 1), types.XYZ(0, 0, -1))
	if _, ok := root.Hit(ray, 0.001, math.MaxFloat32, nil); !ok {
		t.Fatal("expected scene root to intersect the loaded triangle")
	}
}

func almostEq(a, b float32) bool {
	d := a - b
	return d > -1e-3 && d < 1e-3
}

func almostEqVec3(a, b types.Vec3) bool {
	return almostEq(a[0], b[0]) && almostEq(a[1], b[1]) && almostEq(a[2], b[2])
}
