package shaders

import (
	"errors"
	"fmt"
)

// ErrBuild is wrapped by every CompileError and LinkError.
var ErrBuild = errors.New("shader program build failed")

type CompileError struct {
	Stage      Stage
	Diagnostic string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Diagnostic)
}

func (e *CompileError) Unwrap() error {
	return ErrBuild
}

type LinkError struct {
	Diagnostic string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Diagnostic)
}

func (e *LinkError) Unwrap() error {
	return ErrBuild
}

// NotFoundError is returned for attributes or uniforms the linked program does
// not expose, either because they were never declared or because the compiler
// optimised them out.
type NotFoundError struct {
	Name string
	Kind Kind
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in program", e.Kind, e.Name)
}
