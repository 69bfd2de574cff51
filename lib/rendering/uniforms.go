package rendering

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/fosdem/dashgl/lib/linalg"
)

// The program the uniform belongs to must be in use.

func SetMat4(location int32, m linalg.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func SetFloat(location int32, v float32) {
	gl.Uniform1f(location, v)
}
