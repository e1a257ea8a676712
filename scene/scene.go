package scene

// Scene gathers everything a render needs: the placed objects, the
// material library, the environment and the camera settings. Scenes are
// assembled up front and treated as read-only once rendering starts.
type Scene struct {
	Objects []*RenderObject
	Camera  CameraSettings

	materials Library
	env       Environment
}

func NewScene() *Scene {
	return &Scene{}
}

// AddObject appends a placed object and returns its index.
func (s *Scene) AddObject(obj *RenderObject) int {
	s.Objects = append(s.Objects, obj)
	return len(s.Objects) - 1
}

// AddMaterial registers a material and returns its handle. Handles stay
// valid for the scene's lifetime.
func (s *Scene) AddMaterial(m Material) MaterialIndex {
	return s.materials.Add(m)
}

// GetMaterial resolves a handle issued by AddMaterial.
func (s *Scene) GetMaterial(idx MaterialIndex) Material {
	return s.materials.Get(idx)
}

// AddVolume fills obj's geometry with a constant-density isotropic medium
// sampling tex and adds it to the scene. The object keeps its placement.
func (s *Scene) AddVolume(obj *RenderObject, density float32, tex Texture) int {
	mat := s.AddMaterial(NewIsotropic(tex))
	obj.obj = NewConstantMedium(obj.obj, density, mat)
	return s.AddObject(obj)
}

// SetEnvironment replaces the radiance source sampled by rays that leave
// the scene.
func (s *Scene) SetEnvironment(env Environment) {
	s.env = env
}

// Environment returns the scene's background; scenes without one are
// black.
func (s *Scene) Environment() Environment {
	if s.env == nil {
		return &ColorEnvironment{}
	}
	return s.env
}

// SetCamera stores the camera settings. The renderer builds the actual
// camera once it knows the frame's aspect ratio.
func (s *Scene) SetCamera(settings CameraSettings) {
	s.Camera = settings
}

// Root returns the aggregate rays are traced against: a hierarchy over
// the scene's objects when useBVH is set, otherwise the flat list.
func (s *Scene) Root(useBVH bool) (Object, error) {
	objs := make([]Object, len(s.Objects))
	for i, obj := range s.Objects {
		objs[i] = obj
	}
	if !useBVH {
		return ObjectList(objs), nil
	}
	return NewBVH(objs)
}
