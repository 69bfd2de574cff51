package shaders

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/dashgl/lib/metrics"
)

type Builder struct {
	dev      Device
	debugDir string
}

type BuilderOption func(*Builder)

// WithDebugDir makes the builder dump the final source of every stage it
// compiles into dir, which helps when a templated shader fails to compile.
func WithDebugDir(dir string) BuilderOption {
	return func(b *Builder) {
		b.debugDir = dir
	}
}

func NewBuilder(dev Device, opts ...BuilderOption) *Builder {
	b := &Builder{dev: dev}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildProgram concatenates the fragments of each stage, compiles both stages
// and links them. Either a fully linked program or an error is returned; the
// intermediate shader objects are always released.
func (b *Builder) BuildProgram(vertex, fragment []string) (*Program, error) {
	program, err := b.build(strings.Join(vertex, ""), strings.Join(fragment, ""))
	metrics.ShaderBuilds.WithLabelValues(buildResult(err)).Inc()
	return program, err
}

func (b *Builder) BuildProgramFromSources(vertexSource, fragmentSource string) (*Program, error) {
	return b.BuildProgram([]string{vertexSource}, []string{fragmentSource})
}

func (b *Builder) build(vertexSource, fragmentSource string) (*Program, error) {
	b.writeFileDebug("shader.vert", vertexSource)
	b.writeFileDebug("shader.frag", fragmentSource)

	vertexShader, err := b.compileShader(StageVertex, vertexSource)
	if err != nil {
		return nil, err
	}
	defer b.dev.DeleteShader(vertexShader)

	fragmentShader, err := b.compileShader(StageFragment, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer b.dev.DeleteShader(fragmentShader)

	program := b.dev.CreateProgram()
	if program == 0 {
		return nil, &LinkError{Diagnostic: "could not create program object"}
	}

	b.dev.AttachShader(program, vertexShader)
	b.dev.AttachShader(program, fragmentShader)
	ok, infoLog := b.dev.LinkProgram(program)
	b.dev.DetachShader(program, vertexShader)
	b.dev.DetachShader(program, fragmentShader)

	if !ok {
		b.dev.DeleteProgram(program)
		return nil, &LinkError{Diagnostic: cleanLog(infoLog)}
	}

	slog.Debug(fmt.Sprintf("linked program %d", program), slog.String("module", "shaders"))
	return &Program{dev: b.dev, id: program}, nil
}

func (b *Builder) compileShader(stage Stage, source string) (uint32, error) {
	if strings.TrimSpace(source) == "" {
		return 0, &CompileError{Stage: stage, Diagnostic: "empty source"}
	}

	shader := b.dev.CreateShader(stage)
	if shader == 0 {
		return 0, &CompileError{Stage: stage, Diagnostic: "could not create shader object"}
	}

	ok, infoLog := b.dev.CompileShader(shader, source)
	if !ok {
		b.dev.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Diagnostic: cleanLog(infoLog)}
	}

	return shader, nil
}

func (b *Builder) writeFileDebug(name string, content string) {
	if b.debugDir == "" {
		return
	}
	filename := filepath.Join(b.debugDir, name)
	err := os.WriteFile(filename, []byte(content), 0o644)
	if err != nil {
		slog.Warn(fmt.Sprintf("could not write debug file %s: %s", filename, err), slog.String("module", "shaders"))
	}
}

func cleanLog(infoLog string) string {
	infoLog = strings.TrimRight(infoLog, "\x00 \t\r\n")
	if infoLog == "" {
		return "no diagnostic from driver"
	}
	return infoLog
}

func buildResult(err error) string {
	switch err.(type) {
	case nil:
		return "ok"
	case *CompileError:
		return "compile_error"
	default:
		return "link_error"
	}
}
