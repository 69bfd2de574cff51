package runner

import (
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosdem/dashgl/lib/metrics"
	"github.com/fosdem/dashgl/lib/rendering"
	"github.com/fosdem/dashgl/lib/rendering/shaders"
	"github.com/fosdem/dashgl/lib/rendering/shaders/shaderstest"
	"github.com/fosdem/dashgl/lib/samples"
)

const editableVertex = `attribute vec2 coord2d;
attribute vec3 v_color;
varying vec3 f_color;
uniform float fade;

void main(void) {
	gl_Position = vec4(coord2d, 0.0, 1.0);
	f_color = v_color;
}
`

const editableFragment = `varying vec3 f_color;
uniform float fade;

void main(void) {
	frag_color = vec4(f_color, fade);
}
`

func editableTree() fstest.MapFS {
	return fstest.MapFS{
		"colors.vert": {Data: []byte(editableVertex)},
		"fade.frag":   {Data: []byte(editableFragment)},
	}
}

func TestLoadEverySample(t *testing.T) {
	for _, name := range samples.Names() {
		t.Run(name, func(t *testing.T) {
			sample, err := samples.Lookup(name)
			require.NoError(t, err)
			if !sample.HasProgram() {
				t.Skip("sample draws without a program")
			}

			dev := shaderstest.NewDevice()
			loader := NewSceneLoader(shaders.NewBuilder(dev), samples.Shaders(), sample, shaders.DialectCore)

			scene, err := loader.Load()
			require.NoError(t, err)
			require.NotNil(t, scene)

			for _, u := range sample.Uniforms {
				assert.GreaterOrEqual(t, scene.Locs.Uniform(u), int32(0))
			}
			assert.Len(t, scene.Attribs(sample), len(sample.Attribs))

			scene.Release()
			assert.Zero(t, dev.LivePrograms())
			assert.Zero(t, dev.LiveShaders())
		})
	}
}

func TestSceneAttribsKeepLayout(t *testing.T) {
	sample, err := samples.Lookup("colors")
	require.NoError(t, err)

	loader := NewSceneLoader(shaders.NewBuilder(shaderstest.NewDevice()), samples.Shaders(), sample, shaders.DialectLegacy)
	scene, err := loader.Load()
	require.NoError(t, err)
	defer scene.Release()

	assert.Equal(t, []rendering.Attrib{
		{Location: scene.Locs.Attrib("coord2d"), Size: 2, Offset: 0},
		{Location: scene.Locs.Attrib("v_color"), Size: 3, Offset: 2},
	}, scene.Attribs(sample))
}

func TestLoadRejectsProgramMissingBindings(t *testing.T) {
	sample, err := samples.Lookup("fade")
	require.NoError(t, err)

	tree := editableTree()
	tree["fade.frag"] = &fstest.MapFile{Data: []byte("varying vec3 f_color;\nvoid main(void) { frag_color = vec4(f_color, 1.0); }\n")}
	tree["colors.vert"] = &fstest.MapFile{Data: []byte("attribute vec2 coord2d;\nattribute vec3 v_color;\nvarying vec3 f_color;\nvoid main(void) { f_color = v_color; }\n")}

	dev := shaderstest.NewDevice()
	_, err = NewSceneLoader(shaders.NewBuilder(dev), tree, sample, shaders.DialectCore).Load()
	require.Error(t, err)

	var nf *shaders.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "fade", nf.Name)
	assert.Zero(t, dev.LivePrograms(), "a program that does not fit the sample must be released")
}

func TestLoadUnknownTemplate(t *testing.T) {
	sample, err := samples.Lookup("cube")
	require.NoError(t, err)

	_, err = NewSceneLoader(shaders.NewBuilder(shaderstest.NewDevice()), editableTree(), sample, shaders.DialectCore).Load()
	assert.Error(t, err)
}

func TestReloadSwapsProgram(t *testing.T) {
	sample, err := samples.Lookup("fade")
	require.NoError(t, err)

	tree := editableTree()
	dev := shaderstest.NewDevice()
	loader := NewSceneLoader(shaders.NewBuilder(dev), tree, sample, shaders.DialectCore)

	scene, err := loader.Load()
	require.NoError(t, err)
	oldID := scene.Program.ID()

	okBefore := testutil.ToFloat64(metrics.ShaderReloads.WithLabelValues("ok"))

	tree["fade.frag"] = &fstest.MapFile{Data: []byte(editableFragment + "\n// edited\n")}
	next, err := loader.Reload(scene)
	require.NoError(t, err)
	defer next.Release()

	assert.NotEqual(t, oldID, next.Program.ID())
	assert.Zero(t, scene.Program.ID(), "the replaced program must be released")
	assert.Equal(t, 1, dev.LivePrograms())
	assert.Contains(t, dev.LastSource(shaders.StageFragment), "// edited")
	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.ShaderReloads.WithLabelValues("ok")))
}

func TestReloadKeepsProgramOnError(t *testing.T) {
	sample, err := samples.Lookup("fade")
	require.NoError(t, err)

	tree := editableTree()
	dev := shaderstest.NewDevice()
	loader := NewSceneLoader(shaders.NewBuilder(dev), tree, sample, shaders.DialectCore)

	scene, err := loader.Load()
	require.NoError(t, err)
	defer scene.Release()
	oldID := scene.Program.ID()

	errBefore := testutil.ToFloat64(metrics.ShaderReloads.WithLabelValues("error"))

	tree["fade.frag"] = &fstest.MapFile{Data: []byte("void main(void) { frag_color = vec4(1.0);\n")}
	kept, err := loader.Reload(scene)

	var ce *shaders.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, shaders.StageFragment, ce.Stage)
	assert.Same(t, scene, kept)
	assert.Equal(t, oldID, kept.Program.ID())
	assert.Equal(t, 1, dev.LivePrograms())
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.ShaderReloads.WithLabelValues("error")))
}
