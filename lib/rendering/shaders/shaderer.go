package shaders

import (
	"bytes"
	"fmt"
	"io/fs"
	"text/template"
)

// Shaderer renders shader sources from *.vert and *.frag templates.
type Shaderer struct {
	templates *template.Template
}

// NewShaderer parses every *.vert and *.frag file at the root of fsys. The
// samples pass their embedded shaders; a directory on disk works through
// os.DirFS.
func NewShaderer(fsys fs.FS) (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(fsys, "*.frag", "*.vert")
	if err != nil {
		return nil, fmt.Errorf("could not parse shader templates: %w", err)
	}

	return s, nil
}

// ShaderData is what gets passed to the shader templates.
type ShaderData struct {
	Dialect Dialect
	Vars    map[string]any
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template %s: %w", name, err)
	}

	return b.String(), nil
}

// ProgramSources renders both templates and prefixes each with the preamble of
// the requested dialect, ready for Builder.BuildProgram.
func (s *Shaderer) ProgramSources(vertName, fragName string, data *ShaderData) (vertex, fragment []string, err error) {
	if data == nil {
		data = &ShaderData{}
	}

	vs, err := s.GetShaderSource(vertName, data)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get vertex shader: %w", err)
	}

	frag, err := s.GetShaderSource(fragName, data)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get fragment shader: %w", err)
	}

	vertex = []string{data.Dialect.Preamble(StageVertex), vs}
	fragment = []string{data.Dialect.Preamble(StageFragment), frag}
	return vertex, fragment, nil
}

func (s *Shaderer) HasTemplate(name string) bool {
	return s.templates.Lookup(name) != nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// BuildFromTemplates renders the named templates and builds a program out of
// them.
func (b *Builder) BuildFromTemplates(s *Shaderer, vertName, fragName string, data *ShaderData) (*Program, error) {
	vertex, fragment, err := s.ProgramSources(vertName, fragName, data)
	if err != nil {
		return nil, err
	}

	program, err := b.BuildProgram(vertex, fragment)
	if err != nil {
		return nil, fmt.Errorf("could not build %s + %s: %w", vertName, fragName, err)
	}
	return program, nil
}
