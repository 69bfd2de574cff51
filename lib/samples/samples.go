// Package samples describes the tutorial scenes: which shaders they use, what
// they bind, their vertex data and how their uniforms move over time. Nothing
// in here talks to the GPU; lib/runner turns a Sample into draw calls.
package samples

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"github.com/fosdem/dashgl/lib/linalg"
	"github.com/fosdem/dashgl/lib/rendering/shaders"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFiles embed.FS

// Shaders returns the embedded shader templates.
func Shaders() fs.FS {
	sub, err := fs.Sub(shaderFiles, "shaders")
	if err != nil {
		panic(err)
	}
	return sub
}

// Attrib is a float attribute interleaved in the vertex data, Offset and Size
// counted in floats.
type Attrib struct {
	Name   string
	Size   int32
	Offset int
}

type Frame struct {
	// Seconds since the sample started
	Time   float32
	Aspect float32
}

type Uniforms struct {
	Floats   map[string]float32
	Matrices map[string]linalg.Mat4
}

type Sample struct {
	Name  string
	Title string

	VertexShader   string
	FragmentShader string
	ShaderVars     map[string]any

	Attribs  []Attrib
	Uniforms []string

	FloatsPerVertex int
	Vertices        []float32
	Indices         []uint16

	DepthTest bool

	// Fills are cleared in order before anything is drawn.
	Fills []Fill

	// Update computes the uniforms for one frame. It is nil for samples
	// without uniforms.
	Update func(f Frame) (Uniforms, error)
}

// HasProgram reports whether the sample draws geometry through a shader
// program, as opposed to only filling rectangles.
func (s *Sample) HasProgram() bool {
	return s.VertexShader != "" && s.FragmentShader != ""
}

// Bindings is the table of names the sample expects its program to expose.
func (s *Sample) Bindings() []shaders.Binding {
	bindings := make([]shaders.Binding, 0, len(s.Attribs)+len(s.Uniforms))
	for _, a := range s.Attribs {
		bindings = append(bindings, shaders.Attribute(a.Name))
	}
	for _, u := range s.Uniforms {
		bindings = append(bindings, shaders.Uniform(u))
	}
	return bindings
}

func (s *Sample) ShaderData(dialect shaders.Dialect) *shaders.ShaderData {
	return &shaders.ShaderData{
		Dialect: dialect,
		Vars:    s.ShaderVars,
	}
}

func (s *Sample) Frame(f Frame) (Uniforms, error) {
	if s.Update == nil {
		return Uniforms{}, nil
	}
	u, err := s.Update(f)
	if err != nil {
		return Uniforms{}, fmt.Errorf("sample %s: %w", s.Name, err)
	}
	return u, nil
}

var registry = map[string]func() *Sample{
	"clear":     Clear,
	"triangle":  Triangle,
	"colors":    Colors,
	"fade":      Fade,
	"transform": Transform,
	"cube":      Cube,
	"cube-mvp":  CubeMVP,
}

// Lookup returns a fresh copy of the named sample.
func Lookup(name string) (*Sample, error) {
	newSample, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q (have %v)", name, Names())
	}
	return newSample(), nil
}

func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}
