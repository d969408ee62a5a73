// Package lighting models the scene's fixed light sources and their upload
// into shader uniform state.
package lighting

import (
	"fmt"

	"github.com/bkendal2/OpenGLScene/internal/engine/shader"
	"github.com/bkendal2/OpenGLScene/pkg/math"
)

// MaxLights is the number of light sources the scene shader supports.
const MaxLights = 3

// Light is one light source. Written once into uniform state at scene setup
// and never read back.
type Light struct {
	Position          math.Vec3
	AmbientColor      math.Vec3
	DiffuseColor      math.Vec3
	SpecularColor     math.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// Apply writes the light's six uniforms at the given array index. Indices
// beyond MaxLights are ignored; the shader has nowhere to put them.
func Apply(w shader.UniformWriter, index int, l Light) {
	if index < 0 || index >= MaxLights {
		return
	}
	w.SetVec3(uniform(index, "position"), l.Position)
	w.SetVec3(uniform(index, "ambientColor"), l.AmbientColor)
	w.SetVec3(uniform(index, "diffuseColor"), l.DiffuseColor)
	w.SetVec3(uniform(index, "specularColor"), l.SpecularColor)
	w.SetFloat(uniform(index, "focalStrength"), l.FocalStrength)
	w.SetFloat(uniform(index, "specularIntensity"), l.SpecularIntensity)
}

func uniform(index int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", index, field)
}
