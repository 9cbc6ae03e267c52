package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshforge/pkg/math"
)

// Program is a linked shader program with cached uniform and attribute
// locations. Names the program does not use resolve to -1 and are
// silently skipped by the setters.
type Program struct {
	ID   uint32
	Name string

	uniforms map[string]int32
	attribs  map[string]int32
}

// NewProgram compiles and links a named program.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		ID:       id,
		Name:     name,
		uniforms: make(map[string]int32),
		attribs:  make(map[string]int32),
	}, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Uniform returns the cached location of a uniform.
func (p *Program) Uniform(name string) int32 {
	loc, ok := p.uniforms[name]
	if !ok {
		loc = GetUniform(p.ID, name)
		p.uniforms[name] = loc
	}
	return loc
}

// Attrib returns the cached location of a vertex attribute.
func (p *Program) Attrib(name string) int32 {
	loc, ok := p.attribs[name]
	if !ok {
		loc = GetAttrib(p.ID, name)
		p.attribs[name] = loc
	}
	return loc
}

// SetMat4 uploads a 4x4 matrix.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// SetMat3 uploads a 3x3 matrix.
func (p *Program) SetMat3(name string, m math.Mat3) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, m.Ptr())
	}
}

// SetVec4 uploads a vec4.
func (p *Program) SetVec4(name string, v [4]float32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform4fv(loc, 1, &v[0])
	}
}

// SetFloat uploads a float.
func (p *Program) SetFloat(name string, f float32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform1f(loc, f)
	}
}

// SetInt uploads an int or sampler unit.
func (p *Program) SetInt(name string, i int32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform1i(loc, i)
	}
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
