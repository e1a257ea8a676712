package scene

import (
	"math/rand"

	"github.com/ritobanrc/firework/types"
)

// TriangleMesh is an indexed triangle mesh. Per-vertex normals and UV
// coordinates are optional: faces without normals use their geometric
// normal, faces without UVs use the (0,0) (1,0) (0,1) parametrization.
// The triangles are gathered into their own BVH at construction time so
// large meshes stay cheap to trace.
type TriangleMesh struct {
	verts    []types.Vec3
	indices  []int
	normals  []types.Vec3
	uvs      []types.Vec2
	material MaterialIndex
	root     Object
}

// NewTriangleMesh validates the vertex attributes and builds the triangle
// hierarchy. Normals and uvs may be nil; when present they must have one
// entry per vertex.
func NewTriangleMesh(verts []types.Vec3, indices []int, normals []types.Vec3, uvs []types.Vec2, mat MaterialIndex) (*TriangleMesh, error) {
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, ErrMeshAttributes
	}
	if normals != nil && len(normals) != len(verts) {
		return nil, ErrMeshAttributes
	}
	if uvs != nil && len(uvs) != len(verts) {
		return nil, ErrMeshAttributes
	}

	m := &TriangleMesh{
		verts:    verts,
		indices:  indices,
		normals:  normals,
		uvs:      uvs,
		material: mat,
	}

	tris := make([]Object, m.NumTriangles())
	for i := range tris {
		tris[i] = &Triangle{mesh: m, index: i}
	}
	root, err := NewBVH(tris)
	if err != nil {
		return nil, err
	}
	m.root = root
	return m, nil
}

func (m *TriangleMesh) NumVerts() int     { return len(m.verts) }
func (m *TriangleMesh) NumTriangles() int { return len(m.indices) / 3 }

func (m *TriangleMesh) Hit(r types.Ray, tMin, tMax float32, rng *rand.Rand) (HitRecord, bool) {
	return m.root.Hit(r, tMin, tMax, rng)
}

func (m *TriangleMesh) BoundingBox() (types.AABB, bool) {
	return m.root.BoundingBox()
}

func (m *TriangleMesh) triangleVerts(idx int) (types.Vec3, types.Vec3, types.Vec3) {
	base := 3 * idx
	return m.verts[m.indices[base]], m.verts[m.indices[base+1]], m.verts[m.indices[base+2]]
}

func (m *TriangleMesh) triangleNormals(idx int) (types.Vec3, types.Vec3, types.Vec3, bool) {
	if m.normals == nil {
		return types.Vec3{}, types.Vec3{}, types.Vec3{}, false
	}
	base := 3 * idx
	return m.normals[m.indices[base]], m.normals[m.indices[base+1]], m.normals[m.indices[base+2]], true
}

func (m *TriangleMesh) triangleUVs(idx int) (types.Vec2, types.Vec2, types.Vec2) {
	if m.uvs == nil {
		return types.XY(0, 0), types.XY(1, 0), types.XY(0, 1)
	}
	base := 3 * idx
	return m.uvs[m.indices[base]], m.uvs[m.indices[base+1]], m.uvs[m.indices[base+2]]
}

// Triangle references a single face of a TriangleMesh.
type Triangle struct {
	mesh  *TriangleMesh
	index int
}

// Hit implements the watertight ray-triangle test: translate the vertices
// to the ray origin, permute the axes so the dominant direction component
// lands on z, shear the ray onto +z and evaluate the 2D edge functions.
// Rays passing exactly through an edge report a hit on one triangle only.
func (tr *Triangle) Hit(r types.Ray, tMin, tMax float32, _ *rand.Rand) (HitRecord, bool) {
	p0, p1, p2 := tr.mesh.triangleVerts(tr.index)

	p0t := p0.Sub(r.Origin)
	p1t := p1.Sub(r.Origin)
	p2t := p2.Sub(r.Origin)

	kz := maxAbsAxis(r.Dir)
	kx := (kz + 1) % 3
	ky := (kx + 1) % 3

	d := types.XYZ(r.Dir[kx], r.Dir[ky], r.Dir[kz])
	p0t = types.XYZ(p0t[kx], p0t[ky], p0t[kz])
	p1t = types.XYZ(p1t[kx], p1t[ky], p1t[kz])
	p2t = types.XYZ(p2t[kx], p2t[ky], p2t[kz])

	sx := -d[0] / d[2]
	sy := -d[1] / d[2]
	sz := 1 / d[2]

	p0t[0] += sx * p0t[2]
	p0t[1] += sy * p0t[2]
	p1t[0] += sx * p1t[2]
	p1t[1] += sy * p1t[2]
	p2t[0] += sx * p2t[2]
	p2t[1] += sy * p2t[2]

	e0 := p1t[0]*p2t[1] - p1t[1]*p2t[0]
	e1 := p2t[0]*p0t[1] - p2t[1]*p0t[0]
	e2 := p0t[0]*p1t[1] - p0t[1]*p1t[0]

	if (e0 < 0 || e1 < 0 || e2 < 0) && (e0 > 0 || e1 > 0 || e2 > 0) {
		return HitRecord{}, false
	}
	det := e0 + e1 + e2
	if det == 0 {
		return HitRecord{}, false
	}

	p0t[2] *= sz
	p1t[2] *= sz
	p2t[2] *= sz

	tScaled := e0*p0t[2] + e1*p1t[2] + e2*p2t[2]
	if det < 0 && (tScaled >= tMin*det || tScaled < tMax*det) {
		return HitRecord{}, false
	}
	if det > 0 && (tScaled <= tMin*det || tScaled > tMax*det) {
		return HitRecord{}, false
	}

	invDet := 1 / det
	b0 := e0 * invDet
	b1 := e1 * invDet
	b2 := e2 * invDet
	t := tScaled * invDet

	point := p0.Mul(b0).Add(p1.Mul(b1)).Add(p2.Mul(b2))

	uv0, uv1, uv2 := tr.mesh.triangleUVs(tr.index)
	u := b0*uv0[0] + b1*uv1[0] + b2*uv2[0]
	v := b0*uv0[1] + b1*uv1[1] + b2*uv2[1]

	var normal types.Vec3
	if n0, n1, n2, ok := tr.mesh.triangleNormals(tr.index); ok {
		normal = n0.Mul(b0).Add(n1.Mul(b1)).Add(n2.Mul(b2)).Normalize()
	} else {
		normal = p0.Sub(p2).Cross(p1.Sub(p2)).Normalize()
	}

	return newHit(r, t, point, normal, u, v, tr.mesh.material), true
}

func (tr *Triangle) BoundingBox() (types.AABB, bool) {
	p0, p1, p2 := tr.mesh.triangleVerts(tr.index)
	box := types.AABB{
		Min: types.MinVec3(types.MinVec3(p0, p1), p2),
		Max: types.MaxVec3(types.MaxVec3(p0, p1), p2),
	}

	// Pad degenerate axes so the box has volume.
	for a := 0; a < 3; a++ {
		if box.Max[a]-box.Min[a] < 0.001 {
			box.Min[a] -= 0.001
			box.Max[a] += 0.001
		}
	}
	return box, true
}

// maxAbsAxis returns the axis with the largest absolute component.
func maxAbsAxis(v types.Vec3) int {
	axis := 0
	if abs32(v[1]) > abs32(v[axis]) {
		axis = 1
	}
	if abs32(v[2]) > abs32(v[axis]) {
		axis = 2
	}
	return axis
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
