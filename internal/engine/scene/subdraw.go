package scene

import (
	"github.com/bkendal2/OpenGLScene/internal/engine/mesh"
	"github.com/bkendal2/OpenGLScene/pkg/math"
)

// SubDraw is one shape-level draw within an object: a primitive, its
// transform, and either a texture tag or a solid color, plus an optional
// material. Objects are ordered lists of these.
type SubDraw struct {
	Scale    math.Vec3
	RotX     float32
	RotY     float32
	RotZ     float32
	Position math.Vec3

	// Texture selects textured mode when non-empty; Color applies otherwise.
	Texture string
	UVScale math.Vec2
	Color   math.Vec4

	// Material is skipped when empty.
	Material string

	Kind  mesh.Primitive
	Parts mesh.Parts
}

// Object is a named group of sub-draws rendered in declaration order.
type Object struct {
	Name     string
	SubDraws []SubDraw
}

// execute pushes one sub-draw's state through the bridge and issues the draw.
func execute(b *Bridge, meshes mesh.Library, d SubDraw) {
	b.SetTransform(d.Scale, d.RotX, d.RotY, d.RotZ, d.Position)
	if d.Texture != "" {
		b.SetTexture(d.Texture)
		b.SetUVScale(d.UVScale)
	} else {
		b.SetColor(d.Color)
	}
	if d.Material != "" {
		b.SetMaterial(d.Material)
	}
	meshes.Draw(d.Kind, d.Parts)
}
