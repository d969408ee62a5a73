// Package shader provides OpenGL shader compilation and a typed uniform
// writer over a linked program.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/bkendal2/OpenGLScene/pkg/math"
)

// UniformWriter is the uniform surface the scene writes through. It is
// satisfied by *Program and by in-memory fakes in tests.
type UniformWriter interface {
	SetMat4(name string, m math.Mat4)
	SetVec2(name string, v math.Vec2)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, v math.Vec4)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetSampler(name string, slot int32)
}

// Program wraps a linked GL program with a uniform location cache.
type Program struct {
	id   uint32
	locs map[string]int32
}

// New compiles vertex and fragment sources and links them into a program.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:   id,
		locs: make(map[string]int32),
	}, nil
}

// ID returns the GL program object.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes this program the active one.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Destroy deletes the GL program object.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// loc returns the cached uniform location for name. Unknown or inactive
// uniforms resolve to -1, which GL silently ignores on write.
func (p *Program) loc(name string) int32 {
	if l, ok := p.locs[name]; ok {
		return l
	}
	l := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locs[name] = l
	return l
}

// SetMat4 writes a 4x4 matrix uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	p.Use()
	gl.UniformMatrix4fv(p.loc(name), 1, false, m.Ptr())
}

// SetVec2 writes a vec2 uniform.
func (p *Program) SetVec2(name string, v math.Vec2) {
	p.Use()
	gl.Uniform2f(p.loc(name), v.X, v.Y)
}

// SetVec3 writes a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	p.Use()
	gl.Uniform3f(p.loc(name), v.X, v.Y, v.Z)
}

// SetVec4 writes a vec4 uniform.
func (p *Program) SetVec4(name string, v math.Vec4) {
	p.Use()
	gl.Uniform4f(p.loc(name), v.X, v.Y, v.Z, v.W)
}

// SetFloat writes a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	p.Use()
	gl.Uniform1f(p.loc(name), v)
}

// SetInt writes an int uniform.
func (p *Program) SetInt(name string, v int32) {
	p.Use()
	gl.Uniform1i(p.loc(name), v)
}

// SetBool writes a bool uniform as 0/1.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

// SetSampler selects the texture unit a sampler uniform reads from.
func (p *Program) SetSampler(name string, slot int32) {
	p.SetInt(name, slot)
}

// compileProgram compiles both shader stages and links them.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}
