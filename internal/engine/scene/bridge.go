// Package scene builds and renders the still-life arrangement: a cheese
// wheel, a book, a wine glass and a wine bottle on a wooden table in front of
// a backdrop. The composition is fixed; only the camera moves.
package scene

import (
	"log/slog"

	"github.com/bkendal2/OpenGLScene/internal/engine/material"
	"github.com/bkendal2/OpenGLScene/internal/engine/shader"
	"github.com/bkendal2/OpenGLScene/internal/engine/texture"
	"github.com/bkendal2/OpenGLScene/pkg/math"
)

// Uniforms names the per-draw shader uniforms the bridge writes. Fixed for
// the lifetime of a Bridge.
type Uniforms struct {
	Model       string
	Color       string
	Texture     string
	UseTexture  string
	UseLighting string
	UVScale     string

	MaterialAmbientColor    string
	MaterialAmbientStrength string
	MaterialDiffuseColor    string
	MaterialSpecularColor   string
	MaterialShininess       string
}

// DefaultUniforms returns the names used by the scene shader program.
func DefaultUniforms() Uniforms {
	return Uniforms{
		Model:       "model",
		Color:       "objectColor",
		Texture:     "objectTexture",
		UseTexture:  "bUseTexture",
		UseLighting: "bUseLighting",
		UVScale:     "UVscale",

		MaterialAmbientColor:    "material.ambientColor",
		MaterialAmbientStrength: "material.ambientStrength",
		MaterialDiffuseColor:    "material.diffuseColor",
		MaterialSpecularColor:   "material.specularColor",
		MaterialShininess:       "material.shininess",
	}
}

// Bridge translates scene-level draw state (transform, color or texture tag,
// material tag) into uniform writes. It holds no draw state of its own; the
// shader program is the single source of truth between draws.
type Bridge struct {
	writer    shader.UniformWriter
	uniforms  Uniforms
	textures  *texture.Registry
	materials *material.Registry
}

// NewBridge wires a bridge over the given writer and registries.
func NewBridge(w shader.UniformWriter, u Uniforms, textures *texture.Registry, materials *material.Registry) *Bridge {
	return &Bridge{
		writer:    w,
		uniforms:  u,
		textures:  textures,
		materials: materials,
	}
}

// SetTransform composes and uploads the model matrix. Rotations are given in
// degrees and applied X, then Y, then Z, after scaling and before
// translation: model = T * Rx * Ry * Rz * S.
func (b *Bridge) SetTransform(scale math.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position math.Vec3) {
	model := math.Translate(position.X, position.Y, position.Z).
		Mul(math.RotateX(math.Radians(rotXDeg))).
		Mul(math.RotateY(math.Radians(rotYDeg))).
		Mul(math.RotateZ(math.Radians(rotZDeg))).
		Mul(math.Scale(scale.X, scale.Y, scale.Z))
	b.writer.SetMat4(b.uniforms.Model, model)
}

// SetColor switches the shader to solid-color mode and uploads the color.
func (b *Bridge) SetColor(c math.Vec4) {
	b.writer.SetBool(b.uniforms.UseTexture, false)
	b.writer.SetVec4(b.uniforms.Color, c)
}

// SetTexture switches the shader to textured mode and points the sampler at
// the slot registered under tag. An unknown tag selects slot -1, which GL
// treats as unit 0; the draw proceeds with whatever lives there.
func (b *Bridge) SetTexture(tag string) {
	b.writer.SetBool(b.uniforms.UseTexture, true)
	b.writer.SetSampler(b.uniforms.Texture, int32(b.textures.FindSlot(tag)))
}

// SetUVScale uploads the texture coordinate multiplier.
func (b *Bridge) SetUVScale(scale math.Vec2) {
	b.writer.SetVec2(b.uniforms.UVScale, scale)
}

// SetLighting toggles the shader's lighting path.
func (b *Bridge) SetLighting(on bool) {
	b.writer.SetBool(b.uniforms.UseLighting, on)
}

// SetMaterial uploads the preset registered under tag. With an empty catalog
// the call is a no-op, so an unlit scene never pays for material writes. A
// miss against a non-empty catalog is logged and leaves the previous
// material in place.
func (b *Bridge) SetMaterial(tag string) {
	if b.materials.Len() == 0 {
		return
	}
	p, ok := b.materials.Find(tag)
	if !ok {
		slog.Warn("material not defined", "tag", tag)
		return
	}
	b.writer.SetVec3(b.uniforms.MaterialAmbientColor, p.AmbientColor)
	b.writer.SetFloat(b.uniforms.MaterialAmbientStrength, p.AmbientStrength)
	b.writer.SetVec3(b.uniforms.MaterialDiffuseColor, p.DiffuseColor)
	b.writer.SetVec3(b.uniforms.MaterialSpecularColor, p.SpecularColor)
	b.writer.SetFloat(b.uniforms.MaterialShininess, p.Shininess)
}
