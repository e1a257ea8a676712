package reader

import (
	"encoding/json"
	"fmt"
	"image"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ritobanrc/firework/log"
	"github.com/ritobanrc/firework/scene"
	"github.com/ritobanrc/firework/types"
)

// A scene document is a JSON object with camera settings, an environment,
// named textures and materials, and a list of objects referencing the
// materials by name.
type sceneDoc struct {
	Camera      *cameraDoc             `json:"camera"`
	Environment *environmentDoc        `json:"environment"`
	Textures    map[string]textureDoc  `json:"textures"`
	Materials   map[string]materialDoc `json:"materials"`
	Objects     []objectDoc            `json:"objects"`
}

type cameraDoc struct {
	LookFrom  types.Vec3 `json:"look_from"`
	LookAt    types.Vec3 `json:"look_at"`
	Up        types.Vec3 `json:"up"`
	Vfov      float32    `json:"vfov"`
	Aperture  float32    `json:"aperture"`
	FocusDist float32    `json:"focus_dist"`
	Time0     float32    `json:"time0"`
	Time1     float32    `json:"time1"`
}

type environmentDoc struct {
	Type    string     `json:"type"`
	Color   types.Vec3 `json:"color"`
	Zenith  types.Vec3 `json:"zenith"`
	Horizon types.Vec3 `json:"horizon"`
}

type textureDoc struct {
	Type  string     `json:"type"`
	Color types.Vec3 `json:"color"`
	Odd   types.Vec3 `json:"odd"`
	Even  types.Vec3 `json:"even"`
	Scale float32    `json:"scale"`
	Depth int        `json:"depth"`
	Path  string     `json:"path"`
}

type materialDoc struct {
	Type    string     `json:"type"`
	Texture string     `json:"texture"`
	Color   types.Vec3 `json:"color"`
	Fuzz    float32    `json:"fuzz"`
	RefIdx  float32    `json:"ref_idx"`
}

type objectDoc struct {
	Type     string     `json:"type"`
	Material string     `json:"material"`
	Radius   float32    `json:"radius"`
	Axes     string     `json:"axes"`
	Min      types.Vec2 `json:"min"`
	Max      types.Vec2 `json:"max"`
	K        float32    `json:"k"`
	Size     types.Vec3 `json:"size"`
	Path     string     `json:"path"`

	// Constant medium parameters.
	Boundary *objectDoc `json:"boundary"`
	Density  float32    `json:"density"`
	Color    types.Vec3 `json:"color"`
	Texture  string     `json:"texture"`

	// Placement wrappers.
	Position    *types.Vec3 `json:"position"`
	Rotate      *rotateDoc  `json:"rotate"`
	FlipNormals bool        `json:"flip_normals"`
}

type rotateDoc struct {
	Axis    types.Vec3 `json:"axis"`
	Degrees float32    `json:"degrees"`
}

type jsonReader struct {
	logger log.Logger

	res *Resource
	sc  *scene.Scene

	// Resolved texture and material names.
	textures  map[string]scene.Texture
	materials map[string]scene.MaterialIndex
}

// Create a new JSON scene document reader.
func newJSONReader() *jsonReader {
	return &jsonReader{
		logger: log.New("reader"),
	}
}

// Read scene definition from a JSON document resource.
func (r *jsonReader) Read(res *Resource) (*scene.Scene, error) {
	start := time.Now()

	var doc sceneDoc
	if err := json.NewDecoder(res).Decode(&doc); err != nil {
		return nil, fmt.Errorf("reader: could not parse '%s': %s", res.Path(), err)
	}

	r.res = res
	r.sc = scene.NewScene()
	r.textures = make(map[string]scene.Texture)
	r.materials = make(map[string]scene.MaterialIndex)

	if doc.Camera != nil {
		r.sc.SetCamera(scene.CameraSettings{
			LookFrom:  doc.Camera.LookFrom,
			LookAt:    doc.Camera.LookAt,
			Up:        doc.Camera.Up,
			Vfov:      doc.Camera.Vfov,
			Aperture:  doc.Camera.Aperture,
			FocusDist: doc.Camera.FocusDist,
			Time0:     doc.Camera.Time0,
			Time1:     doc.Camera.Time1,
		})
	}

	if doc.Environment != nil {
		env, err := buildEnvironment(*doc.Environment)
		if err != nil {
			return nil, fmt.Errorf("reader: %s", err)
		}
		r.sc.SetEnvironment(env)
	}

	for name, texDoc := range doc.Textures {
		tex, err := r.buildTexture(texDoc)
		if err != nil {
			return nil, fmt.Errorf("reader: texture '%s': %s", name, err)
		}
		r.textures[name] = tex
	}

	for name, matDoc := range doc.Materials {
		mat, err := r.buildMaterial(matDoc)
		if err != nil {
			return nil, fmt.Errorf("reader: material '%s': %s", name, err)
		}
		r.materials[name] = r.sc.AddMaterial(mat)
	}

	for index, objDoc := range doc.Objects {
		if err := r.addObject(objDoc); err != nil {
			return nil, fmt.Errorf("reader: object %d: %s", index, err)
		}
	}

	r.logger.Debugf("parsed scene from %s in %d ms", res.Path(), time.Since(start).Nanoseconds()/1e6)
	return r.sc, nil
}

func buildEnvironment(doc environmentDoc) (scene.Environment, error) {
	switch doc.Type {
	case "color":
		return scene.NewColorEnvironment(doc.Color), nil
	case "sky":
		zero := types.Vec3{}
		if doc.Zenith == zero && doc.Horizon == zero {
			return scene.DefaultSky(), nil
		}
		return scene.NewSkyEnvironment(doc.Zenith, doc.Horizon), nil
	default:
		return nil, fmt.Errorf("unknown environment type '%s'", doc.Type)
	}
}

func (r *jsonReader) buildTexture(doc textureDoc) (scene.Texture, error) {
	switch doc.Type {
	case "constant":
		return scene.NewConstantTexture(doc.Color), nil
	case "checker":
		if doc.Scale == 0 {
			doc.Scale = 10
		}
		return scene.NewCheckerTextureColors(doc.Odd, doc.Even, doc.Scale), nil
	case "noise":
		if doc.Scale == 0 {
			doc.Scale = 1
		}
		return scene.NewNoiseTexture(doc.Scale), nil
	case "turbulence":
		return scene.NewTurbulenceTexture(textureDepth(doc), textureScale(doc)), nil
	case "marble":
		return scene.NewMarbleTexture(textureDepth(doc), textureScale(doc)), nil
	case "image":
		if doc.Path == "" {
			return nil, fmt.Errorf("image texture requires a path")
		}
		imgRes, err := NewResource(doc.Path, r.res)
		if err != nil {
			return nil, err
		}
		defer imgRes.Close()

		img, _, err := image.Decode(imgRes)
		if err != nil {
			return nil, fmt.Errorf("could not decode '%s': %s", imgRes.Path(), err)
		}
		return scene.NewImageTexture(img), nil
	default:
		return nil, fmt.Errorf("unknown texture type '%s'", doc.Type)
	}
}

func textureScale(doc textureDoc) float32 {
	if doc.Scale == 0 {
		return 1
	}
	return doc.Scale
}

func textureDepth(doc textureDoc) int {
	if doc.Depth == 0 {
		return 7
	}
	return doc.Depth
}

func (r *jsonReader) buildMaterial(doc materialDoc) (scene.Material, error) {
	switch doc.Type {
	case "lambertian":
		tex, err := r.namedTexture(doc.Texture, doc.Color)
		if err != nil {
			return nil, err
		}
		return scene.NewLambertian(tex), nil
	case "metal":
		return scene.NewMetal(doc.Color, doc.Fuzz), nil
	case "dielectric":
		return scene.NewDielectric(doc.RefIdx), nil
	case "diffuse_light":
		tex, err := r.namedTexture(doc.Texture, doc.Color)
		if err != nil {
			return nil, err
		}
		return scene.NewDiffuseLight(tex), nil
	case "isotropic":
		tex, err := r.namedTexture(doc.Texture, doc.Color)
		if err != nil {
			return nil, err
		}
		return scene.NewIsotropic(tex), nil
	default:
		return nil, fmt.Errorf("unknown material type '%s'", doc.Type)
	}
}

// namedTexture resolves a texture reference, falling back to a constant
// color texture when no name is given.
func (r *jsonReader) namedTexture(name string, color types.Vec3) (scene.Texture, error) {
	if name == "" {
		return scene.NewConstantTexture(color), nil
	}
	tex, exists := r.textures[name]
	if !exists {
		return nil, fmt.Errorf("undefined texture '%s'", name)
	}
	return tex, nil
}

func (r *jsonReader) namedMaterial(name string) (scene.MaterialIndex, error) {
	if name == "" {
		return 0, fmt.Errorf("missing material name")
	}
	mat, exists := r.materials[name]
	if !exists {
		return 0, fmt.Errorf("undefined material '%s'", name)
	}
	return mat, nil
}

func (r *jsonReader) addObject(doc objectDoc) error {
	if doc.Type == "medium" {
		if doc.Boundary == nil {
			return fmt.Errorf("medium requires a boundary object")
		}
		boundary, err := r.buildPrimitive(*doc.Boundary)
		if err != nil {
			return err
		}
		tex, err := r.namedTexture(doc.Texture, doc.Color)
		if err != nil {
			return err
		}
		r.sc.AddVolume(wrapObject(boundary, doc), doc.Density, tex)
		return nil
	}

	prim, err := r.buildPrimitive(doc)
	if err != nil {
		return err
	}
	r.sc.AddObject(wrapObject(prim, doc))
	return nil
}

// wrapObject applies the placement wrappers defined on an object document.
func wrapObject(prim scene.Object, doc objectDoc) *scene.RenderObject {
	obj := scene.NewObject(prim)
	if doc.Position != nil {
		obj.PositionVec(*doc.Position)
	}
	if doc.Rotate != nil {
		obj.Rotate(doc.Rotate.Axis, doc.Rotate.Degrees)
	}
	if doc.FlipNormals {
		obj.FlipNormals()
	}
	return obj
}

func (r *jsonReader) buildPrimitive(doc objectDoc) (scene.Object, error) {
	switch doc.Type {
	case "sphere":
		if doc.Radius <= 0 {
			return nil, fmt.Errorf("sphere requires a positive radius")
		}
		mat, err := r.namedMaterial(doc.Material)
		if err != nil {
			return nil, err
		}
		return scene.NewSphere(doc.Radius, mat), nil
	case "rect":
		mat, err := r.namedMaterial(doc.Material)
		if err != nil {
			return nil, err
		}
		switch doc.Axes {
		case "xy":
			return scene.NewXYRect(doc.Min[0], doc.Max[0], doc.Min[1], doc.Max[1], doc.K, mat), nil
		case "xz":
			return scene.NewXZRect(doc.Min[0], doc.Max[0], doc.Min[1], doc.Max[1], doc.K, mat), nil
		case "yz":
			return scene.NewYZRect(doc.Min[0], doc.Max[0], doc.Min[1], doc.Max[1], doc.K, mat), nil
		default:
			return nil, fmt.Errorf("unknown rect axes '%s'", doc.Axes)
		}
	case "box":
		mat, err := r.namedMaterial(doc.Material)
		if err != nil {
			return nil, err
		}
		return scene.NewBox(doc.Size, mat), nil
	case "mesh":
		if doc.Path == "" {
			return nil, fmt.Errorf("mesh requires a path")
		}
		mat, err := r.namedMaterial(doc.Material)
		if err != nil {
			return nil, err
		}
		meshRes, err := NewResource(doc.Path, r.res)
		if err != nil {
			return nil, err
		}
		defer meshRes.Close()

		meshes, err := LoadOBJ(meshRes, mat)
		if err != nil {
			return nil, err
		}
		if len(meshes) == 1 {
			return meshes[0], nil
		}
		group := make(scene.ObjectList, len(meshes))
		for i, mesh := range meshes {
			group[i] = mesh
		}
		return group, nil
	case "medium":
		return nil, fmt.Errorf("medium boundaries cannot nest another medium")
	default:
		return nil, fmt.Errorf("unknown object type '%s'", doc.Type)
	}
}
