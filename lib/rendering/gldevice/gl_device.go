// Package gldevice implements shaders.Device on top of the current OpenGL
// context.
package gldevice

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/fosdem/dashgl/lib/rendering/shaders"
)

type Device struct{}

var _ shaders.Device = Device{}

func New() Device {
	return Device{}
}

func (Device) CreateShader(stage shaders.Stage) uint32 {
	switch stage {
	case shaders.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shaders.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (Device) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return false, ""
	}
	buf := make([]uint8, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &buf[0])
	return false, gl.GoStr(&buf[0])
}

func (Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Device) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (Device) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return false, ""
	}
	buf := make([]uint8, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &buf[0])
	return false, gl.GoStr(&buf[0])
}

func (Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
