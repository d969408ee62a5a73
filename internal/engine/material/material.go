// Package material holds the scene's catalog of named lighting presets.
package material

import "github.com/bkendal2/OpenGLScene/pkg/math"

// Preset is a named set of Phong lighting parameters, pushed wholesale into
// the shader before a draw.
type Preset struct {
	Tag             string
	AmbientColor    math.Vec3
	AmbientStrength float32
	DiffuseColor    math.Vec3
	SpecularColor   math.Vec3
	Shininess       float32
}

// Registry is an ordered, append-only list of presets. Defined once at scene
// setup and read-only afterwards. Tags are unique by convention, not
// enforcement; lookups return the earliest match.
type Registry struct {
	presets []Preset
}

// NewRegistry creates an empty material registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Define appends a preset to the catalog.
func (r *Registry) Define(p Preset) {
	r.presets = append(r.presets, p)
}

// Find returns the first preset registered under tag.
func (r *Registry) Find(tag string) (Preset, bool) {
	for _, p := range r.presets {
		if p.Tag == tag {
			return p, true
		}
	}
	return Preset{}, false
}

// Len returns the number of defined presets.
func (r *Registry) Len() int {
	return len(r.presets)
}
