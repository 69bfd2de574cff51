// Package shaderstest provides a stand-in for a graphics context so code that
// builds shader programs can be tested without a GPU.
package shaderstest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fosdem/dashgl/lib/rendering/shaders"
)

var (
	attributeDecl = regexp.MustCompile(`(?m)^\s*(?:attribute|in)\s+\w+\s+(\w+)\s*;`)
	uniformDecl   = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
	varyingDecl   = regexp.MustCompile(`(?m)^\s*varying\s+\w+\s+(\w+)\s*;`)
)

type fakeShader struct {
	stage    shaders.Stage
	source   string
	compiled bool
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	attribs  map[string]int32
	uniforms map[string]int32
}

// Device is a small stand-in for a GL context. Its "compiler" accepts any
// source with a main function and balanced braces, and its "linker" checks
// that every varying the fragment stage reads is written by the vertex stage.
type Device struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	compiled map[shaders.Stage]string
	created  int

	ProgramsCreated int
	LinkCalls       int
	Used            uint32
}

// NewDevice returns an empty fake context.
func NewDevice() *Device {
	return &Device{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		compiled: make(map[shaders.Stage]string),
	}
}

func (d *Device) CreateShader(stage shaders.Stage) uint32 {
	d.next++
	d.created++
	d.shaders[d.next] = &fakeShader{stage: stage}
	return d.next
}

func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	s := d.shaders[shader]
	s.source = source
	d.compiled[s.stage] = source
	if !strings.Contains(source, "void main(") {
		return false, "0:1(1): error: function `main' not defined\n\x00"
	}
	if strings.Count(source, "{") != strings.Count(source, "}") {
		return false, "0:1(1): error: syntax error, unexpected end of file\n\x00"
	}
	s.compiled = true
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) {
	delete(d.shaders, shader)
}

func (d *Device) CreateProgram() uint32 {
	d.next++
	d.ProgramsCreated++
	d.programs[d.next] = &fakeProgram{}
	return d.next
}

func (d *Device) AttachShader(program, shader uint32) {
	p := d.programs[program]
	p.attached = append(p.attached, shader)
}

func (d *Device) DetachShader(program, shader uint32) {
	p := d.programs[program]
	for i, s := range p.attached {
		if s == shader {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			return
		}
	}
}

func (d *Device) LinkProgram(program uint32) (bool, string) {
	d.LinkCalls++
	p := d.programs[program]

	var vertex, fragment *fakeShader
	for _, id := range p.attached {
		s := d.shaders[id]
		if s == nil || !s.compiled {
			return false, "error: attached shader is not compiled\x00"
		}
		if s.stage == shaders.StageVertex {
			vertex = s
		} else {
			fragment = s
		}
	}
	if vertex == nil || fragment == nil {
		return false, "error: program lacks a vertex or fragment stage\x00"
	}

	written := map[string]bool{}
	for _, m := range varyingDecl.FindAllStringSubmatch(vertex.source, -1) {
		written[m[1]] = true
	}
	for _, m := range varyingDecl.FindAllStringSubmatch(fragment.source, -1) {
		if !written[m[1]] {
			return false, fmt.Sprintf("error: fragment shader input `%s' has no matching vertex output\x00", m[1])
		}
	}

	p.attribs = map[string]int32{}
	for i, m := range attributeDecl.FindAllStringSubmatch(vertex.source, -1) {
		p.attribs[m[1]] = int32(i)
	}
	p.uniforms = map[string]int32{}
	for _, src := range []string{vertex.source, fragment.source} {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, ok := p.uniforms[m[1]]; !ok {
				p.uniforms[m[1]] = int32(len(p.uniforms))
			}
		}
	}
	p.linked = true
	return true, ""
}

func (d *Device) DeleteProgram(program uint32) {
	delete(d.programs, program)
}

func (d *Device) UseProgram(program uint32) {
	d.Used = program
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	p := d.programs[program]
	if p == nil || !p.linked {
		return -1
	}
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	p := d.programs[program]
	if p == nil || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

// LiveShaders counts shader objects that were created and not deleted.
func (d *Device) LiveShaders() int {
	return len(d.shaders)
}

func (d *Device) LivePrograms() int {
	return len(d.programs)
}

// LastSource is the most recent source compiled for stage.
func (d *Device) LastSource(stage shaders.Stage) string {
	return d.compiled[stage]
}

// ShadersCreated counts every shader object ever created, deleted or not.
func (d *Device) ShadersCreated() int {
	return d.created
}
