// Package preset provides ready-made demo scenes addressed by name.
package preset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ritobanrc/firework/scene"
)

type entry struct {
	description string
	build       func() (*scene.Scene, error)
}

var presets = map[string]entry{
	"simple": {
		description: "glass, matte and metal spheres on a matte ground",
		build:       Simple,
	},
	"random-spheres": {
		description: "the Ray Tracing in One Weekend cover scene",
		build:       RandomSpheres,
	},
	"cornell-box": {
		description: "Cornell box with two rotated boxes",
		build:       CornellBox,
	},
	"volume-test": {
		description: "Cornell box filled with smoke and fog volumes",
		build:       VolumeTest,
	},
	"earth": {
		description: "earth-mapped sphere; reads earthmap.jpg from the working directory",
		build:       func() (*scene.Scene, error) { return Earth("earthmap.jpg") },
	},
	"perlin-spheres": {
		description: "marble noise spheres",
		build:       PerlinSpheres,
	},
}

// Names returns the sorted list of preset scene names.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a short description of the named preset or an empty
// string if no such preset exists.
func Describe(name string) string {
	return presets[name].description
}

// Build constructs the named preset scene.
func Build(name string) (*scene.Scene, error) {
	p, exists := presets[name]
	if !exists {
		return nil, fmt.Errorf("preset: unknown scene '%s'; valid names: %s", name, strings.Join(Names(), ", "))
	}
	return p.build()
}
