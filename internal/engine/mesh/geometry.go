package mesh

import "github.com/chewxy/math32"

// Tessellation density for round primitives.
const (
	segments = 36
	stacks   = 18
)

// Range addresses a contiguous run of indices within a Geometry.
type Range struct {
	Start int32
	Count int32
}

// Geometry is tessellated vertex data ready for upload: interleaved
// position/normal/texcoord (8 floats per vertex) plus triangle indices.
// Capped primitives record ranges so caps and sides draw independently.
type Geometry struct {
	Vertices []float32
	Indices  []uint32

	Top    Range
	Bottom Range
	Sides  Range
}

// HasParts reports whether the geometry carries separate cap/side ranges.
func (g Geometry) HasParts() bool {
	return g.Sides.Count > 0
}

// VertexCount returns the number of vertices.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / 8
}

// Generate tessellates a unit primitive. Units: boxes are 1x1x1 centered at
// the origin; planes span X/Z ±1 at y=0; cylinders, cones and prisms have
// radius 1 with y in [0,1]; spheres have radius 1 centered at the origin;
// the half-sphere is the y>=0 dome, open at the equator; the torus lies in
// the XY plane with major radius 1 and tube radius 0.25.
func Generate(kind Primitive) Geometry {
	switch kind {
	case Box:
		return genBox()
	case Plane:
		return genPlane()
	case Cylinder:
		return genCapped(1.0)
	case TaperedCylinder:
		return genCapped(0.5)
	case Cone:
		return genCone()
	case Prism:
		return genPrism()
	case Pyramid4:
		return genPyramid4()
	case Sphere:
		return genSphere(false)
	case HalfSphere:
		return genSphere(true)
	case Torus:
		return genTorus(1.0, 0.25)
	default:
		return Geometry{}
	}
}

// builder accumulates interleaved vertices and indices.
type builder struct {
	verts []float32
	idx   []uint32
}

func (b *builder) vertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	b.verts = append(b.verts, px, py, pz, nx, ny, nz, u, v)
	return uint32(len(b.verts)/8 - 1)
}

func (b *builder) tri(i0, i1, i2 uint32) {
	b.idx = append(b.idx, i0, i1, i2)
}

func (b *builder) quad(i0, i1, i2, i3 uint32) {
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
}

func (b *builder) geometry() Geometry {
	return Geometry{Vertices: b.verts, Indices: b.idx}
}

func genBox() Geometry {
	b := &builder{}

	// One face per normal direction, CCW from outside.
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-.5, -.5, .5}, {.5, -.5, .5}, {.5, .5, .5}, {-.5, .5, .5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{.5, -.5, -.5}, {-.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{.5, -.5, .5}, {.5, -.5, -.5}, {.5, .5, -.5}, {.5, .5, .5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-.5, -.5, -.5}, {-.5, -.5, .5}, {-.5, .5, .5}, {-.5, .5, -.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-.5, .5, .5}, {.5, .5, .5}, {.5, .5, -.5}, {-.5, .5, -.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {-.5, -.5, .5}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		var ids [4]uint32
		for i, c := range f.corners {
			ids[i] = b.vertex(c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2], uvs[i][0], uvs[i][1])
		}
		b.quad(ids[0], ids[1], ids[2], ids[3])
	}
	return b.geometry()
}

func genPlane() Geometry {
	b := &builder{}
	i0 := b.vertex(-1, 0, 1, 0, 1, 0, 0, 0)
	i1 := b.vertex(1, 0, 1, 0, 1, 0, 1, 0)
	i2 := b.vertex(1, 0, -1, 0, 1, 0, 1, 1)
	i3 := b.vertex(-1, 0, -1, 0, 1, 0, 0, 1)
	b.quad(i0, i1, i2, i3)
	return b.geometry()
}

// genCapped tessellates a cylinder with the given top radius (1 for a
// straight cylinder, <1 for a tapered one), recording cap/side ranges.
func genCapped(topRadius float32) Geometry {
	b := &builder{}
	g := Geometry{}

	// Sides: segments+1 columns so the texture seam gets its own verts.
	sideStart := len(b.idx)
	var cols [segments + 1][2]uint32
	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / segments
		cosA, sinA := math32.Cos(angle), math32.Sin(angle)
		// Slant normal: tilts up as the cylinder narrows toward the top.
		n := normalize3(cosA, 1-topRadius, sinA)
		u := float32(i) / segments
		cols[i][0] = b.vertex(cosA, 0, sinA, n[0], n[1], n[2], u, 0)
		cols[i][1] = b.vertex(topRadius*cosA, 1, topRadius*sinA, n[0], n[1], n[2], u, 1)
	}
	for i := 0; i < segments; i++ {
		b.quad(cols[i][0], cols[i+1][0], cols[i+1][1], cols[i][1])
	}
	g.Sides = Range{Start: int32(sideStart), Count: int32(len(b.idx) - sideStart)}

	// Top cap.
	topStart := len(b.idx)
	center := b.vertex(0, 1, 0, 0, 1, 0, 0.5, 0.5)
	var ring [segments + 1]uint32
	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / segments
		cosA, sinA := math32.Cos(angle), math32.Sin(angle)
		ring[i] = b.vertex(topRadius*cosA, 1, topRadius*sinA, 0, 1, 0, 0.5+0.5*cosA, 0.5-0.5*sinA)
	}
	for i := 0; i < segments; i++ {
		b.tri(center, ring[i+1], ring[i])
	}
	g.Top = Range{Start: int32(topStart), Count: int32(len(b.idx) - topStart)}

	// Bottom cap.
	bottomStart := len(b.idx)
	center = b.vertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / segments
		cosA, sinA := math32.Cos(angle), math32.Sin(angle)
		ring[i] = b.vertex(cosA, 0, sinA, 0, -1, 0, 0.5+0.5*cosA, 0.5+0.5*sinA)
	}
	for i := 0; i < segments; i++ {
		b.tri(center, ring[i], ring[i+1])
	}
	g.Bottom = Range{Start: int32(bottomStart), Count: int32(len(b.idx) - bottomStart)}

	g.Vertices = b.verts
	g.Indices = b.idx
	return g
}

func genCone() Geometry {
	b := &builder{}

	// Sides: apex vertex duplicated per segment for distinct normals.
	for i := 0; i < segments; i++ {
		a0 := 2 * math32.Pi * float32(i) / segments
		a1 := 2 * math32.Pi * float32(i+1) / segments
		am := (a0 + a1) / 2

		n0 := normalize3(math32.Cos(a0), 1, math32.Sin(a0))
		n1 := normalize3(math32.Cos(a1), 1, math32.Sin(a1))
		nm := normalize3(math32.Cos(am), 1, math32.Sin(am))

		v0 := b.vertex(math32.Cos(a0), 0, math32.Sin(a0), n0[0], n0[1], n0[2], float32(i)/segments, 0)
		v1 := b.vertex(math32.Cos(a1), 0, math32.Sin(a1), n1[0], n1[1], n1[2], float32(i+1)/segments, 0)
		apex := b.vertex(0, 1, 0, nm[0], nm[1], nm[2], (float32(i)+0.5)/segments, 1)
		b.tri(v0, v1, apex)
	}

	// Base cap.
	center := b.vertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	var ring [segments + 1]uint32
	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / segments
		cosA, sinA := math32.Cos(angle), math32.Sin(angle)
		ring[i] = b.vertex(cosA, 0, sinA, 0, -1, 0, 0.5+0.5*cosA, 0.5+0.5*sinA)
	}
	for i := 0; i < segments; i++ {
		b.tri(center, ring[i], ring[i+1])
	}
	return b.geometry()
}

func genPrism() Geometry {
	b := &builder{}

	// Equilateral triangle cross-section, radius 1, height 1.
	angles := [4]float32{}
	for i := 0; i < 4; i++ {
		angles[i] = math32.Pi/2 + 2*math32.Pi*float32(i%3)/3
	}

	// Rectangular side faces with flat normals.
	for i := 0; i < 3; i++ {
		x0, z0 := math32.Cos(angles[i]), math32.Sin(angles[i])
		x1, z1 := math32.Cos(angles[i+1]), math32.Sin(angles[i+1])
		// Outward face normal: perpendicular to the edge in the XZ plane.
		n := normalize3((x0+x1)/2, 0, (z0+z1)/2)

		v0 := b.vertex(x0, 0, z0, n[0], n[1], n[2], 0, 0)
		v1 := b.vertex(x1, 0, z1, n[0], n[1], n[2], 1, 0)
		v2 := b.vertex(x1, 1, z1, n[0], n[1], n[2], 1, 1)
		v3 := b.vertex(x0, 1, z0, n[0], n[1], n[2], 0, 1)
		b.quad(v0, v1, v2, v3)
	}

	// Top and bottom triangles.
	var top, bottom [3]uint32
	for i := 0; i < 3; i++ {
		x, z := math32.Cos(angles[i]), math32.Sin(angles[i])
		top[i] = b.vertex(x, 1, z, 0, 1, 0, 0.5+0.5*x, 0.5-0.5*z)
		bottom[i] = b.vertex(x, 0, z, 0, -1, 0, 0.5+0.5*x, 0.5+0.5*z)
	}
	b.tri(top[0], top[2], top[1])
	b.tri(bottom[0], bottom[1], bottom[2])

	return b.geometry()
}

func genPyramid4() Geometry {
	b := &builder{}

	corners := [4][2]float32{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}

	// Four triangular side faces with flat normals.
	for i := 0; i < 4; i++ {
		c0 := corners[i]
		c1 := corners[(i+1)%4]
		// Face normal from the cross product of two edges.
		e1 := [3]float32{c1[0] - c0[0], 0, c1[1] - c0[1]}
		e2 := [3]float32{-c0[0], 1, -c0[1]}
		n := normalize3(
			e1[1]*e2[2]-e1[2]*e2[1],
			e1[2]*e2[0]-e1[0]*e2[2],
			e1[0]*e2[1]-e1[1]*e2[0],
		)

		v0 := b.vertex(c0[0], 0, c0[1], n[0], n[1], n[2], 0, 0)
		v1 := b.vertex(c1[0], 0, c1[1], n[0], n[1], n[2], 1, 0)
		apex := b.vertex(0, 1, 0, n[0], n[1], n[2], 0.5, 1)
		b.tri(v0, apex, v1)
	}

	// Base.
	var base [4]uint32
	for i, c := range corners {
		base[i] = b.vertex(c[0], 0, c[1], 0, -1, 0, (c[0]+1)/2, (c[1]+1)/2)
	}
	b.quad(base[0], base[1], base[2], base[3])

	return b.geometry()
}

// genSphere tessellates a UV sphere of radius 1. When half is true only the
// y>=0 dome is emitted, open at the equator.
func genSphere(half bool) Geometry {
	b := &builder{}

	rows := stacks
	phiStart := -math32.Pi / 2
	if half {
		rows = stacks / 2
		phiStart = 0
	}

	grid := make([][]uint32, rows+1)
	for r := 0; r <= rows; r++ {
		phi := phiStart + math32.Pi/2*float32(r)/float32(rows)
		if !half {
			phi = phiStart + math32.Pi*float32(r)/float32(rows)
		}
		y := math32.Sin(phi)
		ringRadius := math32.Cos(phi)

		grid[r] = make([]uint32, segments+1)
		for s := 0; s <= segments; s++ {
			theta := 2 * math32.Pi * float32(s) / segments
			x := ringRadius * math32.Cos(theta)
			z := ringRadius * math32.Sin(theta)
			grid[r][s] = b.vertex(x, y, z, x, y, z, float32(s)/segments, float32(r)/float32(rows))
		}
	}

	for r := 0; r < rows; r++ {
		for s := 0; s < segments; s++ {
			b.quad(grid[r][s], grid[r][s+1], grid[r+1][s+1], grid[r+1][s])
		}
	}
	return b.geometry()
}

// genTorus tessellates a torus lying in the XY plane (hole along Z).
func genTorus(major, minor float32) Geometry {
	b := &builder{}

	rings := segments
	sides := stacks

	grid := make([][]uint32, rings+1)
	for i := 0; i <= rings; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(rings)
		cosT, sinT := math32.Cos(theta), math32.Sin(theta)

		grid[i] = make([]uint32, sides+1)
		for j := 0; j <= sides; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(sides)
			cosP, sinP := math32.Cos(phi), math32.Sin(phi)

			x := (major + minor*cosP) * cosT
			y := (major + minor*cosP) * sinT
			z := minor * sinP
			grid[i][j] = b.vertex(x, y, z,
				cosP*cosT, cosP*sinT, sinP,
				float32(i)/float32(rings), float32(j)/float32(sides))
		}
	}

	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			b.quad(grid[i][j], grid[i+1][j], grid[i+1][j+1], grid[i][j+1])
		}
	}
	return b.geometry()
}

func normalize3(x, y, z float32) [3]float32 {
	length := math32.Sqrt(x*x + y*y + z*z)
	if length < 1e-6 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{x / length, y / length, z / length}
}
