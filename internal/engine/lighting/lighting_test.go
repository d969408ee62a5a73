package lighting

import (
	"testing"

	"github.com/bkendal2/OpenGLScene/pkg/math"
)

// recorder captures uniform writes by name.
type recorder struct {
	vec3s   map[string]math.Vec3
	floats  map[string]float32
	ints    map[string]int32
	bools   map[string]bool
	vec2s   map[string]math.Vec2
	vec4s   map[string]math.Vec4
	mat4s   map[string]math.Mat4
	sampler map[string]int32
}

func newRecorder() *recorder {
	return &recorder{
		vec3s:   make(map[string]math.Vec3),
		floats:  make(map[string]float32),
		ints:    make(map[string]int32),
		bools:   make(map[string]bool),
		vec2s:   make(map[string]math.Vec2),
		vec4s:   make(map[string]math.Vec4),
		mat4s:   make(map[string]math.Mat4),
		sampler: make(map[string]int32),
	}
}

func (r *recorder) SetMat4(name string, m math.Mat4)     { r.mat4s[name] = m }
func (r *recorder) SetVec2(name string, v math.Vec2)     { r.vec2s[name] = v }
func (r *recorder) SetVec3(name string, v math.Vec3)     { r.vec3s[name] = v }
func (r *recorder) SetVec4(name string, v math.Vec4)     { r.vec4s[name] = v }
func (r *recorder) SetFloat(name string, v float32)      { r.floats[name] = v }
func (r *recorder) SetInt(name string, v int32)          { r.ints[name] = v }
func (r *recorder) SetBool(name string, v bool)          { r.bools[name] = v }
func (r *recorder) SetSampler(name string, slot int32)   { r.sampler[name] = slot }

func TestApplyWritesIndexedUniforms(t *testing.T) {
	rec := newRecorder()
	Apply(rec, 1, Light{
		Position:          math.Vec3{X: 4, Y: 6, Z: 8},
		AmbientColor:      math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		DiffuseColor:      math.Vec3{X: 0.8, Y: 0.8, Z: 0.9},
		SpecularColor:     math.Vec3{X: 0.5, Y: 0.5, Z: 0.6},
		FocalStrength:     20,
		SpecularIntensity: 0.4,
	})

	if got := rec.vec3s["lightSources[1].position"]; got != (math.Vec3{X: 4, Y: 6, Z: 8}) {
		t.Errorf("position: got %v", got)
	}
	if got := rec.floats["lightSources[1].focalStrength"]; got != 20 {
		t.Errorf("focalStrength: got %f, want 20", got)
	}
	if got := rec.floats["lightSources[1].specularIntensity"]; got != 0.4 {
		t.Errorf("specularIntensity: got %f, want 0.4", got)
	}
	if _, ok := rec.vec3s["lightSources[0].position"]; ok {
		t.Error("index 0 should be untouched")
	}
}

func TestApplyIgnoresOutOfRangeIndex(t *testing.T) {
	rec := newRecorder()
	Apply(rec, MaxLights, Light{Position: math.Vec3{X: 1, Y: 1, Z: 1}})
	Apply(rec, -1, Light{Position: math.Vec3{X: 1, Y: 1, Z: 1}})

	if len(rec.vec3s) != 0 || len(rec.floats) != 0 {
		t.Error("out-of-range indices should write nothing")
	}
}
