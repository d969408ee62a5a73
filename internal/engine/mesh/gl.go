package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// vertexSize is the interleaved stride: position(3) + normal(3) + texcoord(2).
const vertexSize = 8 * 4

// GLLibrary uploads tessellated primitives into VAOs and draws them.
// Requires a current GL context.
type GLLibrary struct {
	meshes map[Primitive]*glMesh
}

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	hasParts bool
	top      Range
	bottom   Range
	sides    Range
}

// NewGLLibrary creates an empty library.
func NewGLLibrary() *GLLibrary {
	return &GLLibrary{meshes: make(map[Primitive]*glMesh)}
}

// Load tessellates and uploads the primitive. Repeated loads are no-ops.
func (l *GLLibrary) Load(kind Primitive) error {
	if _, ok := l.meshes[kind]; ok {
		return nil
	}

	geo := Generate(kind)
	if len(geo.Indices) == 0 {
		return fmt.Errorf("no tessellation for primitive %s", kind)
	}

	m := &glMesh{
		indexCount: int32(len(geo.Indices)),
		hasParts:   geo.HasParts(),
		top:        geo.Top,
		bottom:     geo.Bottom,
		sides:      geo.Sides,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*4, unsafe.Pointer(&geo.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexSize, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexSize, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, unsafe.Pointer(&geo.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	l.meshes[kind] = m
	return nil
}

// Draw issues the draw call(s) for the primitive. For capped primitives only
// the selected parts are emitted; other kinds draw whole.
func (l *GLLibrary) Draw(kind Primitive, parts Parts) {
	m, ok := l.meshes[kind]
	if !ok {
		return
	}

	gl.BindVertexArray(m.vao)
	if !m.hasParts {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	} else {
		if parts.Sides {
			drawRange(m.sides)
		}
		if parts.Top {
			drawRange(m.top)
		}
		if parts.Bottom {
			drawRange(m.bottom)
		}
	}
	gl.BindVertexArray(0)
}

func drawRange(r Range) {
	if r.Count == 0 {
		return
	}
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.Count, gl.UNSIGNED_INT, uintptr(r.Start)*4)
}

// Destroy releases every uploaded mesh.
func (l *GLLibrary) Destroy() {
	for kind, m := range l.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
		delete(l.meshes, kind)
	}
}
