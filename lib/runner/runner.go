// Package runner hosts one sample in a window: it builds the program, uploads
// the geometry and drives the poll/render loop until the user or the
// configured duration ends it.
package runner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/fosdem/dashgl/lib/config"
	"github.com/fosdem/dashgl/lib/kbdctl"
	"github.com/fosdem/dashgl/lib/metrics"
	"github.com/fosdem/dashgl/lib/rendering"
	"github.com/fosdem/dashgl/lib/rendering/gldevice"
	"github.com/fosdem/dashgl/lib/rendering/shaders"
	"github.com/fosdem/dashgl/lib/rendering/shaderwatch"
	"github.com/fosdem/dashgl/lib/samples"
	"github.com/fosdem/dashgl/lib/stats"
	"github.com/fosdem/dashgl/lib/window"
)

type Runner struct {
	cfg      *config.Config
	sample   *samples.Sample
	duration time.Duration

	quitReason string
}

func New(cfg *config.Config) (*Runner, error) {
	sample, err := samples.Lookup(cfg.Sample)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:      cfg,
		sample:   sample,
		duration: cfg.Duration(),
	}, nil
}

// RequestQuit makes the loop stop after the current frame. The first reason
// given wins.
func (r *Runner) RequestQuit(reason string) {
	if r.quitReason == "" {
		r.quitReason = reason
	}
}

func (r *Runner) shouldQuit(uptime time.Duration) bool {
	if r.duration > 0 && uptime >= r.duration {
		r.RequestQuit("duration elapsed")
	}
	return r.quitReason != ""
}

// shaderSource is the template tree to build from, and the directory to watch
// for edits if hot reloading is on.
func (r *Runner) shaderSource() (fsys fs.FS, watchDir string) {
	sc := r.cfg.Shaders
	if sc == nil || sc.Dir == "" {
		return samples.Shaders(), ""
	}
	if sc.HotReload {
		watchDir = string(sc.Dir)
	}
	return os.DirFS(string(sc.Dir)), watchDir
}

// windowTitle is the configured title, or the sample's own one.
func (r *Runner) windowTitle() string {
	if r.cfg.Window.Title != "" {
		return r.cfg.Window.Title
	}
	return r.sample.Title
}

func (r *Runner) builderOptions() []shaders.BuilderOption {
	var opts []shaders.BuilderOption
	if r.cfg.Shaders != nil && r.cfg.Shaders.DebugDir != "" {
		opts = append(opts, shaders.WithDebugDir(string(r.cfg.Shaders.DebugDir)))
	}
	return opts
}

// Run opens the window and renders until asked to quit. It has to be called
// from the main thread, which must be locked to its OS thread.
func (r *Runner) Run() error {
	wc := r.cfg.Window
	win, err := window.New(r.windowTitle(), wc.Width, wc.Height, wc.ShaderDialect())
	if err != nil {
		return err
	}
	defer win.Destroy()

	err = rendering.Init()
	if err != nil {
		return fmt.Errorf("could not initialise renderer: %w", err)
	}
	rendering.SetupBlending(r.sample.DepthTest)
	bg := r.cfg.ClearColourValue()
	rendering.ClearColor(bg.R, bg.G, bg.B, bg.A)
	rendering.Viewport(win.FramebufferSize())

	kbdctl.SetupShortcutKeys(win.Window, r)

	var (
		loader  *SceneLoader
		scene   *Scene
		mesh    *rendering.Mesh
		watcher *shaderwatch.Watcher
	)
	if r.sample.HasProgram() {
		fsys, watchDir := r.shaderSource()
		builder := shaders.NewBuilder(gldevice.New(), r.builderOptions()...)
		loader = NewSceneLoader(builder, fsys, r.sample, wc.ShaderDialect())

		scene, err = loader.Load()
		if err != nil {
			return err
		}
		defer func() { scene.Release() }()

		if watchDir != "" {
			watcher, err = shaderwatch.New(watchDir)
			if err != nil {
				return err
			}
			defer watcher.Close()
			slog.Info(fmt.Sprintf("watching %s for shader edits", watchDir), slog.String("module", "runner"))
		}

		mesh = rendering.NewMesh(r.sample.Vertices, r.sample.FloatsPerVertex, r.sample.Indices)
		defer mesh.Release()
		mesh.Bind(scene.Attribs(r.sample)...)
	}

	sampleMetrics := metrics.NewSampleMetrics(r.sample.Name)
	frameStats := stats.New()

	var uniforms samples.Uniforms
	frameFailing := false

	slog.Info(fmt.Sprintf("running sample %s", r.sample.Name), slog.String("module", "runner"))
	for !r.shouldQuit(frameStats.Uptime) {
		if watcher != nil && watcher.Pending() {
			next, err := loader.Reload(scene)
			if err == nil {
				scene = next
				mesh.Bind(scene.Attribs(r.sample)...)
			}
		}

		if win.TakeResize() {
			rendering.Viewport(win.FramebufferSize())
		}

		// a minimised window has no aspect ratio; keep the last uniforms
		if aspect := win.Aspect(); aspect > 0 {
			u, err := r.sample.Frame(samples.Frame{Time: frameStats.Elapsed(), Aspect: aspect})
			if err != nil {
				if !frameFailing {
					slog.Warn(fmt.Sprintf("could not update uniforms: %s", err), slog.String("module", "runner"))
				}
				frameFailing = true
			} else {
				uniforms = u
				frameFailing = false
			}
		}

		rendering.Clear(r.sample.DepthTest)
		for _, f := range r.sample.Fills {
			if x, y, w, h, ok := f.Rect(win.FramebufferSize()); ok {
				rendering.FillRect(x, y, w, h, f.Colour.R, f.Colour.G, f.Colour.B, f.Colour.A)
			}
		}
		if scene != nil {
			scene.Program.Use()
			uploadUniforms(scene.Locs, uniforms)
			mesh.Draw()
		}
		win.SwapBuffers()

		dt, fpsUpdated := frameStats.Update()
		sampleMetrics.FramesRendered.Inc()
		if dt > 0 {
			sampleMetrics.FrameSeconds.Observe(dt.Seconds())
		}
		if fpsUpdated {
			slog.Debug(fmt.Sprintf("%d fps", frameStats.FPS), slog.String("module", "runner"))
		}

		window.Poll()
		if win.ShouldClose() {
			r.RequestQuit("window closed")
		}
	}

	slog.Info(fmt.Sprintf("quitting after %d frames: %s", frameStats.Frames, r.quitReason), slog.String("module", "runner"))
	return nil
}

// The scene's program must be in use.
func uploadUniforms(locs *shaders.Locations, u samples.Uniforms) {
	for name, v := range u.Floats {
		rendering.SetFloat(locs.Uniform(name), v)
	}
	for name, m := range u.Matrices {
		rendering.SetMat4(locs.Uniform(name), m)
	}
}
