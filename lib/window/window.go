package window

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fosdem/dashgl/lib/rendering/shaders"
)

// Window is a glfw window whose OpenGL context is current on the thread that
// created it. Every call has to happen on that thread.
type Window struct {
	*glfw.Window

	resized       bool
	width, height int
}

// New creates the window and makes its context current. Core gets a forward
// compatible 4.1 core profile context; legacy a 3.0 context, which still
// accepts GLSL 1.20 but has vertex array objects. The renderer loads the 4.1
// entry points either way, so legacy only works where the driver hands back a
// 4.x compatibility context (Mesa, NVIDIA, AMD); macOS refuses it.
func New(title string, width, height int, dialect shaders.Dialect) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	switch dialect {
	case shaders.DialectCore:
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	case shaders.DialectLegacy:
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 0)
	default:
		glfw.Terminate()
		return nil, fmt.Errorf("no desktop context for the %s dialect", dialect)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &Window{Window: window}
	w.width, w.height = window.GetFramebufferSize()
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		w.resized = true
	})

	slog.Debug(fmt.Sprintf("created %dx%d window %q", width, height, title), slog.String("module", "window"))
	return w, nil
}

func (w *Window) FramebufferSize() (int, int) {
	return w.width, w.height
}

// TakeResize reports whether the framebuffer changed size since the last call.
func (w *Window) TakeResize() bool {
	resized := w.resized
	w.resized = false
	return resized
}

// Aspect is width/height, or 0 while the window is minimised.
func (w *Window) Aspect() float32 {
	if w.width <= 0 || w.height <= 0 {
		return 0
	}
	return float32(w.width) / float32(w.height)
}

func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}

func Poll() {
	glfw.PollEvents()
}
