package shaders

import (
	"errors"
	"fmt"
)

// Program is a linked vertex+fragment pipeline. The caller owns it and must
// call Release exactly once.
type Program struct {
	dev Device
	id  uint32
}

// Location is a non-negative attribute or uniform slot. A failed lookup is
// reported as a NotFoundError, never as a sentinel location.
type Location int32

type Kind int

const (
	KindAttribute Kind = iota
	KindUniform
)

func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindUniform:
		return "uniform"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) Use() {
	p.dev.UseProgram(p.id)
}

func (p *Program) Release() {
	p.dev.DeleteProgram(p.id)
	p.id = 0
}

func (p *Program) AttribLocation(name string) (Location, error) {
	return p.Location(KindAttribute, name)
}

func (p *Program) UniformLocation(name string) (Location, error) {
	return p.Location(KindUniform, name)
}

func (p *Program) Location(kind Kind, name string) (Location, error) {
	var loc int32
	switch kind {
	case KindAttribute:
		loc = p.dev.AttribLocation(p.id, name)
	case KindUniform:
		loc = p.dev.UniformLocation(p.id, name)
	default:
		return 0, fmt.Errorf("cannot look up %q: unknown kind %s", name, kind)
	}
	if loc < 0 {
		return 0, &NotFoundError{Name: name, Kind: kind}
	}
	return Location(loc), nil
}

// Binding names an attribute or uniform a sample expects the program to expose.
type Binding struct {
	Name string
	Kind Kind
}

func Attribute(name string) Binding {
	return Binding{Name: name, Kind: KindAttribute}
}

func Uniform(name string) Binding {
	return Binding{Name: name, Kind: KindUniform}
}

// Locations holds the result of resolving a binding table against a program.
type Locations struct {
	attribs  map[string]Location
	uniforms map[string]Location
}

// Resolve looks up every binding and reports all missing names at once.
func (p *Program) Resolve(bindings ...Binding) (*Locations, error) {
	l := &Locations{
		attribs:  make(map[string]Location),
		uniforms: make(map[string]Location),
	}

	var errs []error
	for _, b := range bindings {
		loc, err := p.Location(b.Kind, b.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if b.Kind == KindAttribute {
			l.attribs[b.Name] = loc
		} else {
			l.uniforms[b.Name] = loc
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("could not resolve program bindings: %w", errors.Join(errs...))
	}
	return l, nil
}

// Attrib returns a resolved attribute location. Asking for a name that was not
// part of the resolved table is a programming error and panics.
func (l *Locations) Attrib(name string) uint32 {
	loc, ok := l.attribs[name]
	if !ok {
		panic(fmt.Sprintf("attribute %q was not part of the resolved bindings", name))
	}
	return uint32(loc)
}

func (l *Locations) Uniform(name string) int32 {
	loc, ok := l.uniforms[name]
	if !ok {
		panic(fmt.Sprintf("uniform %q was not part of the resolved bindings", name))
	}
	return int32(loc)
}

func (l *Locations) Lookup(b Binding) (Location, bool) {
	var loc Location
	var ok bool
	if b.Kind == KindAttribute {
		loc, ok = l.attribs[b.Name]
	} else {
		loc, ok = l.uniforms[b.Name]
	}
	return loc, ok
}
