package scene

import (
	"github.com/bkendal2/OpenGLScene/internal/engine/lighting"
	"github.com/bkendal2/OpenGLScene/internal/engine/material"
	"github.com/bkendal2/OpenGLScene/internal/engine/mesh"
	"github.com/bkendal2/OpenGLScene/pkg/math"
)

// sceneTextures maps asset files to the tags the object tables reference.
// Load order fixes slot order, which in turn fixes sampler indices.
var sceneTextures = []struct {
	File string
	Tag  string
}{
	{"rusticwood.jpg", "table"},
	{"cheese_wheel.jpg", "cheese_wheel_side"},
	{"cheese_top.jpg", "cheese_wheel_top"},
	{"breadcrust.jpg", "breadcrust"},
	{"backdrop.jpg", "backdrop"},
	{"knife_handle.jpg", "knifehandle"},
	{"stainless.jpg", "stainless"},
	{"cheddar.jpg", "cheddar"},
	{"circular-brushed-gold-texture.jpg", "knifescrew"},
}

// sceneMaterials is the catalog of lighting presets the objects pull from.
var sceneMaterials = []material.Preset{
	{
		Tag:             "metal",
		AmbientColor:    math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		AmbientStrength: 0.3,
		DiffuseColor:    math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		SpecularColor:   math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Shininess:       22.0,
	},
	{
		Tag:             "wood",
		AmbientColor:    math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
		AmbientStrength: 0.2,
		DiffuseColor:    math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		SpecularColor:   math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
		Shininess:       0.3,
	},
	{
		Tag:             "glass",
		AmbientColor:    math.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
		AmbientStrength: 0.3,
		DiffuseColor:    math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		SpecularColor:   math.Vec3{X: 0.6, Y: 0.6, Z: 0.6},
		Shininess:       85.0,
	},
	{
		Tag:             "cheese",
		AmbientColor:    math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
		AmbientStrength: 0.2,
		DiffuseColor:    math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		SpecularColor:   math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
		Shininess:       0.3,
	},
	{
		Tag:             "backdrop",
		AmbientColor:    math.Vec3{X: 0.6, Y: 0.6, Z: 0.6},
		AmbientStrength: 3.0,
		DiffuseColor:    math.Vec3{X: 0.6, Y: 0.5, Z: 0.1},
		SpecularColor:   math.Vec3{},
		Shininess:       0.0,
	},
}

// sceneLights fills the shader's three light slots: a warm key light, a cool
// fill, and a bright wash from behind the camera.
var sceneLights = []lighting.Light{
	{
		Position:          math.Vec3{X: -2, Y: 8, Z: 6},
		AmbientColor:      math.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
		DiffuseColor:      math.Vec3{X: 1.2, Y: 1.2, Z: 1.0},
		SpecularColor:     math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
		FocalStrength:     16.0,
		SpecularIntensity: 0.6,
	},
	{
		Position:          math.Vec3{X: 4, Y: 6, Z: 8},
		AmbientColor:      math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		DiffuseColor:      math.Vec3{X: 0.8, Y: 0.8, Z: 0.9},
		SpecularColor:     math.Vec3{X: 0.5, Y: 0.5, Z: 0.6},
		FocalStrength:     20.0,
		SpecularIntensity: 0.4,
	},
	{
		Position:          math.Vec3{X: 0, Y: 10, Z: 15},
		AmbientColor:      math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
		DiffuseColor:      math.Vec3{X: 2.0, Y: 2.0, Z: 1.8},
		SpecularColor:     math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		FocalStrength:     8.0,
		SpecularIntensity: 0.3,
	},
}

// sceneObjects is the whole composition, in draw order. Positions are world
// coordinates; the table surface sits at y = 0.5.
var sceneObjects = []Object{
	{
		Name: "table",
		SubDraws: []SubDraw{
			{
				Scale:    math.Vec3{X: 20, Y: 0.6, Z: 8},
				Position: math.Vec3{X: 0, Y: 0.2, Z: -0.9},
				Texture:  "table",
				UVScale:  math.Vec2{X: 1, Y: 1},
				Material: "wood",
				Kind:     mesh.Box,
			},
		},
	},
	{
		Name: "backdrop",
		SubDraws: []SubDraw{
			{
				Scale:    math.Vec3{X: 20, Y: 1, Z: 20},
				RotX:     90,
				Position: math.Vec3{X: 0, Y: 15, Z: -10},
				Color:    math.Vec4{X: 0.75, Y: 0.75, Z: 0.75, W: 1},
				Kind:     mesh.Plane,
			},
		},
	},
	{
		Name: "cheese-wheel",
		SubDraws: []SubDraw{
			{
				Scale:    math.Vec3{X: 1.1, Y: 0.8, Z: 0.9},
				Position: math.Vec3{X: -1, Y: 1.4, Z: 0},
				Texture:  "cheese_wheel_side",
				UVScale:  math.Vec2{X: 5, Y: 1},
				Material: "cheese",
				Kind:     mesh.Cylinder,
				Parts:    mesh.Parts{Sides: true},
			},
			{
				Scale:    math.Vec3{X: 1.1, Y: 0.8, Z: 0.9},
				Position: math.Vec3{X: -1, Y: 1.4, Z: 0},
				Texture:  "cheese_wheel_top",
				UVScale:  math.Vec2{X: 1, Y: 1},
				Material: "cheese",
				Kind:     mesh.Cylinder,
				Parts:    mesh.Parts{Top: true},
			},
		},
	},
	{
		// Cover, spine, pages. All three boxes share the same yaw.
		Name: "book",
		SubDraws: []SubDraw{
			{
				Scale:    math.Vec3{X: 2.2, Y: 0.08, Z: 1.5},
				RotY:     -12,
				Position: math.Vec3{X: -1.2, Y: 0.59, Z: 0.3},
				Color:    math.Vec4{X: 1, Y: 0.5, Z: 0.1, W: 1},
				Material: "wood",
				Kind:     mesh.Box,
			},
			{
				Scale:    math.Vec3{X: 0.08, Y: 0.08, Z: 1.5},
				RotY:     -12,
				Position: math.Vec3{X: -2.3, Y: 0.59, Z: 0.3},
				Color:    math.Vec4{X: 0.9, Y: 0.4, Z: 0.05, W: 1},
				Material: "wood",
				Kind:     mesh.Box,
			},
			{
				Scale:    math.Vec3{X: 2.15, Y: 0.06, Z: 1.45},
				RotY:     -12,
				Position: math.Vec3{X: -1.2, Y: 0.57, Z: 0.3},
				Color:    math.Vec4{X: 0.95, Y: 0.95, Z: 0.9, W: 1},
				Material: "wood",
				Kind:     mesh.Box,
			},
		},
	},
	{
		// Bowl walls and base disc; translucent via alpha.
		Name: "wine-glass",
		SubDraws: []SubDraw{
			{
				Scale:    math.Vec3{X: 1, Y: 2, Z: 1},
				Position: math.Vec3{X: 6, Y: 1.5, Z: -1.5},
				Color:    math.Vec4{X: 0.7, Y: 0.7, Z: 0.8, W: 0.3},
				Material: "glass",
				Kind:     mesh.Cylinder,
				Parts:    mesh.Parts{Sides: true},
			},
			{
				Scale:    math.Vec3{X: 1, Y: 0.1, Z: 1},
				Position: math.Vec3{X: 6, Y: 0.55, Z: -1.5},
				Color:    math.Vec4{X: 0.7, Y: 0.7, Z: 0.8, W: 0.3},
				Material: "glass",
				Kind:     mesh.Cylinder,
				Parts:    mesh.Parts{Top: true},
			},
		},
	},
	{
		// Base dome (flipped), body, shoulder dome, neck, then two lip rings.
		Name: "wine-bottle",
		SubDraws: []SubDraw{
			{
				Scale:    math.Vec3{X: 0.9, Y: 0.3, Z: 0.9},
				RotZ:     180,
				Position: math.Vec3{X: 4, Y: 0.9, Z: -2.6},
				Color:    math.Vec4{X: 0.06, Y: 0.07, Z: 0.06, W: 1},
				Material: "glass",
				Kind:     mesh.HalfSphere,
			},
			{
				Scale:    math.Vec3{X: 0.9, Y: 4, Z: 0.9},
				Position: math.Vec3{X: 4, Y: 0.9, Z: -2.6},
				Color:    math.Vec4{X: 0.06, Y: 0.07, Z: 0.06, W: 1},
				Material: "glass",
				Kind:     mesh.Cylinder,
				Parts:    mesh.Parts{Sides: true},
			},
			{
				Scale:    math.Vec3{X: 0.905, Y: 0.9, Z: 0.905},
				RotY:     -6,
				Position: math.Vec3{X: 4, Y: 4.9, Z: -2.6},
				Color:    math.Vec4{X: 0.06, Y: 0.07, Z: 0.06, W: 1},
				Material: "glass",
				Kind:     mesh.HalfSphere,
			},
			{
				Scale:    math.Vec3{X: 0.3, Y: 2, Z: 0.3},
				Position: math.Vec3{X: 4, Y: 5.6, Z: -2.6},
				Color:    math.Vec4{X: 0.06, Y: 0.07, Z: 0.06, W: 1},
				Material: "glass",
				Kind:     mesh.Cylinder,
				Parts:    mesh.Parts{Sides: true},
			},
			{
				Scale:    math.Vec3{X: 0.32, Y: 0.32, Z: 1.5},
				RotX:     90,
				Position: math.Vec3{X: -1.8, Y: 7.4, Z: -2.6},
				Color:    math.Vec4{X: 0.06, Y: 0.07, Z: 0.06, W: 1},
				Material: "glass",
				Kind:     mesh.Torus,
			},
			{
				Scale:    math.Vec3{X: 0.28, Y: 0.28, Z: 0.4},
				RotX:     90,
				Position: math.Vec3{X: -1.8, Y: 7.6, Z: -2.6},
				Color:    math.Vec4{X: 0.06, Y: 0.07, Z: 0.06, W: 1},
				Material: "glass",
				Kind:     mesh.Torus,
			},
		},
	},
}
