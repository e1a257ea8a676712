package scene

import "errors"

var (
	ErrEmptyScene       = errors.New("scene: cannot build a BVH from an empty object list")
	ErrUnboundedObject  = errors.New("scene: unbounded objects cannot be placed in a BVH")
	ErrDegenerateCamera = errors.New("scene: camera look-from and look-at positions coincide")
	ErrMeshAttributes   = errors.New("scene: mesh normal and uv counts must match the vertex count")
)
