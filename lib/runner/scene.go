package runner

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/fosdem/dashgl/lib/metrics"
	"github.com/fosdem/dashgl/lib/rendering"
	"github.com/fosdem/dashgl/lib/rendering/shaders"
	"github.com/fosdem/dashgl/lib/samples"
)

// Scene is a linked program for a sample together with every location the
// sample binds.
type Scene struct {
	Program *shaders.Program
	Locs    *shaders.Locations
}

func (s *Scene) Release() {
	s.Program.Release()
}

// Attribs maps the sample's vertex layout onto the program's locations.
func (s *Scene) Attribs(sample *samples.Sample) []rendering.Attrib {
	attribs := make([]rendering.Attrib, 0, len(sample.Attribs))
	for _, a := range sample.Attribs {
		attribs = append(attribs, rendering.Attrib{
			Location: s.Locs.Attrib(a.Name),
			Size:     a.Size,
			Offset:   a.Offset,
		})
	}
	return attribs
}

// SceneLoader builds the program of one sample from a tree of shader
// templates. The tree is re-read on every load so edits on disk are seen.
type SceneLoader struct {
	builder *shaders.Builder
	fsys    fs.FS
	sample  *samples.Sample
	dialect shaders.Dialect
}

func NewSceneLoader(builder *shaders.Builder, fsys fs.FS, sample *samples.Sample, dialect shaders.Dialect) *SceneLoader {
	return &SceneLoader{
		builder: builder,
		fsys:    fsys,
		sample:  sample,
		dialect: dialect,
	}
}

func (l *SceneLoader) Load() (*Scene, error) {
	shaderer, err := shaders.NewShaderer(l.fsys)
	if err != nil {
		return nil, fmt.Errorf("could not load shader templates: %w", err)
	}

	program, err := l.builder.BuildFromTemplates(
		shaderer,
		l.sample.VertexShader,
		l.sample.FragmentShader,
		l.sample.ShaderData(l.dialect),
	)
	if err != nil {
		return nil, fmt.Errorf("could not build program for %s: %w", l.sample.Name, err)
	}

	locs, err := program.Resolve(l.sample.Bindings()...)
	if err != nil {
		program.Release()
		return nil, fmt.Errorf("program for %s does not fit the sample: %w", l.sample.Name, err)
	}
	return &Scene{Program: program, Locs: locs}, nil
}

// Reload rebuilds the scene. On success the current scene is released and the
// new one returned; on failure current is returned untouched together with the
// error, so the caller can keep drawing.
func (l *SceneLoader) Reload(current *Scene) (*Scene, error) {
	next, err := l.Load()
	if err != nil {
		metrics.ShaderReloads.WithLabelValues("error").Inc()
		slog.Warn(fmt.Sprintf("shader reload failed, keeping the previous program: %s", err), slog.String("module", "runner"))
		return current, err
	}

	metrics.ShaderReloads.WithLabelValues("ok").Inc()
	slog.Info("shaders reloaded", slog.String("module", "runner"), slog.String("sample", l.sample.Name))
	if current != nil {
		current.Release()
	}
	return next, nil
}
