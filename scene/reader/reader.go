package reader

import (
	"fmt"
	"path/filepath"

	"github.com/ritobanrc/firework/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*Resource) (*scene.Scene, error)
}

// ReadScene loads a scene from a local path or http(s) URL. The file
// extension picks the format: .json for full scene documents, .obj for
// bare meshes wrapped in a default scene.
func ReadScene(filename string) (*scene.Scene, error) {
	var reader Reader
	switch filepath.Ext(filename) {
	case ".json":
		reader = newJSONReader()
	case ".obj":
		reader = newWavefrontReader()
	default:
		return nil, fmt.Errorf("readScene: unsupported file format")
	}

	res, err := NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()
	return reader.Read(res)
}
