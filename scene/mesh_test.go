package scene

import (
	"math"
	"testing"

	"github.com/ritobanrc/firework/types"
)

func singleTriangle(t *testing.T, normals []types.Vec3, uvs []types.Vec2) *TriangleMesh {
	t.Helper()
	verts := []types.Vec3{
		types.XYZ(0, 0, 0),
		types.XYZ(1, 0, 0),
		types.XYZ(0, 1, 0),
	}
	mesh, err := NewTriangleMesh(verts, []int{0, 1, 2}, normals, uvs, 0)
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}

func TestTriangleMeshValidation(t *testing.T) {
	verts := []types.Vec3{types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(0, 1, 0)}

	type spec struct {
		indices []int
		normals []types.Vec3
		uvs     []types.Vec2
	}
	specs := []spec{
		// No triangles.
		{nil, nil, nil},
		// Dangling index count.
		{[]int{0, 1}, nil, nil},
		// Normal count mismatch.
		{[]int{0, 1, 2}, []types.Vec3{types.XYZ(0, 0, 1)}, nil},
		// UV count mismatch.
		{[]int{0, 1, 2}, nil, []types.Vec2{types.XY(0, 0)}},
	}

	for index, s := range specs {
		if _, err := NewTriangleMesh(verts, s.indices, s.normals, s.uvs, 0); err != ErrMeshAttributes {
			t.Fatalf("[spec %d] expected ErrMeshAttributes; got %v", index, err)
		}
	}
}

func TestTriangleHit(t *testing.T) {
	mesh := singleTriangle(t, nil, nil)

	rec, ok := mesh.Hit(types.NewRay(types.XYZ(0.25, 0.25, 1), types.XYZ(0, 0, -1)), 0.001, math.MaxFloat32, testRng())
	if !ok {
		t.Fatal("expected hit")
	}
	if !almostEq(rec.T, 1) {
		t.Fatalf("expected t=1; got %f", rec.T)
	}
	if !almostEqVec3(rec.Point, types.XYZ(0.25, 0.25, 0)) {
		t.Fatalf("expected point (0.25, 0.25, 0); got %v", rec.Point)
	}
	if !almostEqVec3(rec.Normal, types.XYZ(0, 0, 1)) {
		t.Fatalf("expected unit normal (0, 0, 1); got %v", rec.Normal)
	}
	if !rec.FrontFace {
		t.Fatal("expected front face hit")
	}
	// Default UVs interpolate to the barycentric weights of the second
	// and third vertices.
	if !almostEq(rec.U, 0.25) || !almostEq(rec.V, 0.25) {
		t.Fatalf("expected uv=(0.25, 0.25); got (%f, %f)", rec.U, rec.V)
	}

	// Outside the triangle but inside its bounding box.
	if _, ok := mesh.Hit(types.NewRay(types.XYZ(0.8, 0.8, 1), types.XYZ(0, 0, -1)), 0.001, math.MaxFloat32, testRng()); ok {
		t.Fatal("expected miss outside the triangle")
	}
}

func TestTriangleVertexAttributes(t *testing.T) {
	normals := []types.Vec3{
		types.XYZ(0, 0, 1),
		types.XYZ(1, 0, 1),
		types.XYZ(0, 1, 1),
	}
	uvs := []types.Vec2{
		types.XY(0, 0),
		types.XY(1, 0),
		types.XY(0, 1),
	}
	mesh := singleTriangle(t, normals, uvs)

	// The hit at the first vertex corner uses (almost) only that
	// vertex's attributes.
	rec, ok := mesh.Hit(types.NewRay(types.XYZ(0.01, 0.01, 1), types.XYZ(0, 0, -1)), 0.001, math.MaxFloat32, testRng())
	if !ok {
		t.Fatal("expected hit")
	}
	if !almostEq(rec.U, 0.01) || !almostEq(rec.V, 0.01) {
		t.Fatalf("expected uv near (0.01, 0.01); got (%f, %f)", rec.U, rec.V)
	}
	if !almostEq(rec.Normal.Len(), 1) {
		t.Fatalf("expected interpolated normal to be normalized; got length %f", rec.Normal.Len())
	}
}

func TestTriangleMeshNearest(t *testing.T) {
	// Two parallel triangles; the hit must come from the nearer one.
	verts := []types.Vec3{
		types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(0, 1, 0),
		types.XYZ(0, 0, -1), types.XYZ(1, 0, -1), types.XYZ(0, 1, -1),
	}
	mesh, err := NewTriangleMesh(verts, []int{0, 1, 2, 3, 4, 5}, nil, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.NumTriangles() != 2 {
		t.Fatalf("expected 2 triangles; got %d", mesh.NumTriangles())
	}

	rec, ok := mesh.Hit(types.NewRay(types.XYZ(0.25, 0.25, 1), types.XYZ(0, 0, -1)), 0.001, math.MaxFloat32, testRng())
	if !ok {
		t.Fatal("expected hit")
	}
	if !almostEq(rec.T, 1) {
		t.Fatalf("expected nearest triangle at t=1; got %f", rec.T)
	}
}

func TestTriangleBoundingBoxPadding(t *testing.T) {
	mesh := singleTriangle(t, nil, nil)
	box, ok := mesh.BoundingBox()
	if !ok {
		t.Fatal("expected box")
	}
	// The triangle is flat in z; the box must still have volume there.
	if box.Max[2]-box.Min[2] <= 0 {
		t.Fatalf("expected padded z extent; got %f", box.Max[2]-box.Min[2])
	}
}
