package reader

import (
	"fmt"
	"io"
	"time"

	"github.com/mwindels/gwob"

	"github.com/ritobanrc/firework/log"
	"github.com/ritobanrc/firework/scene"
	"github.com/ritobanrc/firework/types"
)

type wavefrontReader struct {
	logger log.Logger
}

// Create a new wavefront OBJ scene reader.
func newWavefrontReader() *wavefrontReader {
	return &wavefrontReader{
		logger: log.New("reader"),
	}
}

// Read scene definition from an OBJ resource. The scene gets a neutral grey
// material, a sky environment and default camera settings; use a scene
// document when those need control.
func (r *wavefrontReader) Read(res *Resource) (*scene.Scene, error) {
	sc := scene.NewScene()
	sc.SetEnvironment(scene.DefaultSky())

	mat := sc.AddMaterial(scene.NewLambertianColor(types.XYZ(0.7, 0.7, 0.7)))
	meshes, err := LoadOBJ(res, mat)
	if err != nil {
		return nil, err
	}
	for _, mesh := range meshes {
		sc.AddObject(scene.NewObject(mesh))
	}
	return sc, nil
}

// LoadOBJ parses a wavefront OBJ resource into triangle meshes, one per
// object group, all sharing the supplied material. Vertex normals and
// texture coords pass through when the file defines them; otherwise hits
// fall back to geometric normals and default UVs.
func LoadOBJ(res *Resource, mat scene.MaterialIndex) ([]*scene.TriangleMesh, error) {
	logger := log.New("reader")
	start := time.Now()

	buf, err := io.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("wavefront: could not read '%s': %s", res.Path(), err)
	}

	opts := &gwob.ObjParserOptions{
		LogStats: true,
		Logger:   func(msg string) { logger.Debugf("%s", msg) },
	}
	obj, err := gwob.NewObjFromBuf(res.Path(), buf, opts)
	if err != nil {
		return nil, fmt.Errorf("wavefront: could not parse '%s': %s", res.Path(), err)
	}

	// gwob interleaves position, texture and normal data into fixed
	// stride records; split them back out into attribute tables.
	stride := obj.StrideSize / 4
	if stride == 0 {
		return nil, fmt.Errorf("wavefront: no geometry in '%s'", res.Path())
	}
	posOff := obj.StrideOffsetPosition / 4
	normOff := obj.StrideOffsetNormal / 4
	texOff := obj.StrideOffsetTexture / 4
	numRecords := len(obj.Coord) / stride

	verts := make([]types.Vec3, numRecords)
	var normals []types.Vec3
	var uvs []types.Vec2
	if obj.NormCoordFound {
		normals = make([]types.Vec3, numRecords)
	}
	if obj.TextCoordFound {
		uvs = make([]types.Vec2, numRecords)
	}

	for k := 0; k < numRecords; k++ {
		base := k * stride
		verts[k] = types.XYZ(obj.Coord[base+posOff], obj.Coord[base+posOff+1], obj.Coord[base+posOff+2])
		if normals != nil {
			normals[k] = types.XYZ(obj.Coord[base+normOff], obj.Coord[base+normOff+1], obj.Coord[base+normOff+2])
		}
		if uvs != nil {
			uvs[k] = types.Vec2{obj.Coord[base+texOff], obj.Coord[base+texOff+1]}
		}
	}

	var meshes []*scene.TriangleMesh
	for _, group := range obj.Groups {
		if group.IndexCount == 0 {
			continue
		}
		indices := obj.Indices[group.IndexBegin : group.IndexBegin+group.IndexCount]
		mesh, err := scene.NewTriangleMesh(verts, indices, normals, uvs, mat)
		if err != nil {
			return nil, fmt.Errorf("wavefront: group '%s' in '%s': %s", group.Name, res.Path(), err)
		}
		meshes = append(meshes, mesh)
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("wavefront: no triangles in '%s'", res.Path())
	}

	logger.Debugf("loaded %d meshes (%d vertices) from %s in %d ms",
		len(meshes), numRecords, res.Path(), time.Since(start).Nanoseconds()/1e6)
	return meshes, nil
}
