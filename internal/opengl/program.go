package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program with a uniform location cache.
// Setters on unknown uniforms are no-ops, as in GL itself.
type Program struct {
	ID        uint32
	Name      string
	locations map[string]int32
}

// NewProgram compiles and links a vertex/fragment pair. name only labels
// errors.
func NewProgram(name, vertSrc, fragSrc string) (*Program, error) {
	id, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	return &Program{ID: id, Name: name, locations: map[string]int32{}}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	if p != nil && p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// The setters below write to the program, which must be in use.

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.location(name), i)
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v[0], v[1], v[2])
}

func (p *Program) SetVec3f(name string, x, y, z float32) {
	gl.Uniform3f(p.location(name), x, y, z)
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.location(name), v[0], v[1], v[2], v[3])
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(frag)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
