package rendering

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the OpenGL entry points for the context that is current on this
// thread.
func Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	slog.Info(fmt.Sprintf("OpenGL version %s / %s / %s", vendor, renderer, version), slog.String("module", "rendering"))

	return nil
}

// SetupBlending enables the alpha blending and depth testing state the
// samples expect.
func SetupBlending(depthTest bool) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func Clear(depth bool) {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

func ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// FillRect clears one rectangle of the framebuffer to a solid colour, leaving
// the clear colour as it was.
func FillRect(x, y, width, height int, r, g, b, a float32) {
	var prev [4]float32
	gl.GetFloatv(gl.COLOR_CLEAR_VALUE, &prev[0])

	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)

	gl.ClearColor(prev[0], prev[1], prev[2], prev[3])
}
