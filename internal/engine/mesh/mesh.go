// Package mesh provides the primitive shape library the scene draws from:
// load-once tessellated unit primitives, drawn many times under different
// transforms.
package mesh

// Primitive enumerates the shape kinds the library can tessellate.
type Primitive int

const (
	Box Primitive = iota
	Plane
	Cylinder
	Cone
	Prism
	Pyramid4
	Sphere
	HalfSphere
	TaperedCylinder
	Torus
)

// String returns the primitive's name.
func (p Primitive) String() string {
	switch p {
	case Box:
		return "box"
	case Plane:
		return "plane"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Prism:
		return "prism"
	case Pyramid4:
		return "pyramid4"
	case Sphere:
		return "sphere"
	case HalfSphere:
		return "half-sphere"
	case TaperedCylinder:
		return "tapered-cylinder"
	case Torus:
		return "torus"
	default:
		return "unknown"
	}
}

// Kinds lists every primitive, in load order.
var Kinds = []Primitive{
	Box, Plane, Cylinder, Cone, Prism, Pyramid4,
	Sphere, HalfSphere, TaperedCylinder, Torus,
}

// Parts selects which pieces of a capped primitive to emit. Only Cylinder
// and TaperedCylinder honor it; every other kind always draws whole.
type Parts struct {
	Top    bool
	Bottom bool
	Sides  bool
}

// AllParts draws every piece of a capped primitive.
var AllParts = Parts{Top: true, Bottom: true, Sides: true}

// Library is the load-once/draw-many shape surface the scene renders
// against. The GL implementation lives in this package; tests substitute a
// recording fake.
type Library interface {
	// Load tessellates and uploads the primitive. Loading an already-loaded
	// kind is a no-op.
	Load(kind Primitive) error
	// Draw issues a draw call for the primitive under the current shader
	// state. parts applies to Cylinder and TaperedCylinder only.
	Draw(kind Primitive, parts Parts)
}
