//go:build cgo

package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/gltriangle/internal/shader"
)

// glDriver implements shader.Driver against the OpenGL context current on
// the calling thread.
type glDriver struct{}

func NewGLDriver() shader.Driver {
	return glDriver{}
}

func (glDriver) CreateShader(kind shader.StageKind) uint32 {
	switch kind {
	case shader.Vertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shader.Fragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (glDriver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (glDriver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (glDriver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (glDriver) ShaderInfoLog(shader uint32, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	var length int32
	log := make([]uint8, maxLen)
	gl.GetShaderInfoLog(shader, int32(maxLen), &length, &log[0])
	return string(log[:length])
}

func (glDriver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (glDriver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (glDriver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (glDriver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (glDriver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (glDriver) ProgramInfoLog(program uint32, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	var length int32
	log := make([]uint8, maxLen)
	gl.GetProgramInfoLog(program, int32(maxLen), &length, &log[0])
	return string(log[:length])
}

func (glDriver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}
