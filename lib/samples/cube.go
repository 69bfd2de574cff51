package samples

import (
	"github.com/fosdem/dashgl/lib/linalg"
)

var (
	cubeEye    = linalg.Vec3{0, 2, 0}
	cubeTarget = linalg.Vec3{0, 0, -4}
	cubeUp     = linalg.Vec3{0, 1, 0}
)

const (
	cubeFovY = 45
	cubeNear = 0.1
	cubeFar  = 10
)

func cubeVertices() []float32 {
	return []float32{
		// front
		-1.0, -1.0, 1.0, 1.0, 0.0, 0.0,
		1.0, -1.0, 1.0, 0.0, 1.0, 0.0,
		1.0, 1.0, 1.0, 0.0, 0.0, 1.0,
		-1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
		// back
		-1.0, -1.0, -1.0, 1.0, 0.0, 0.0,
		1.0, -1.0, -1.0, 0.0, 1.0, 0.0,
		1.0, 1.0, -1.0, 0.0, 0.0, 1.0,
		-1.0, 1.0, -1.0, 1.0, 1.0, 1.0,
	}
}

func cubeIndices() []uint16 {
	return []uint16{
		// front
		0, 1, 2,
		2, 3, 0,
		// top
		1, 5, 6,
		6, 2, 1,
		// back
		7, 6, 5,
		5, 4, 7,
		// bottom
		4, 0, 3,
		3, 7, 4,
		// left
		4, 5, 1,
		1, 0, 4,
		// right
		3, 2, 6,
		6, 7, 3,
	}
}

func cubeAttribs() []Attrib {
	return []Attrib{
		{Name: "coord3d", Size: 3},
		{Name: "v_color", Size: 3, Offset: 3},
	}
}

type cubeCamera struct {
	projection linalg.Mat4
	view       linalg.Mat4
}

func cameraFor(aspect float32) (cubeCamera, error) {
	projection, err := linalg.Perspective(cubeFovY, aspect, cubeNear, cubeFar)
	if err != nil {
		return cubeCamera{}, err
	}
	view, err := linalg.LookAt(cubeEye, cubeTarget, cubeUp)
	if err != nil {
		return cubeCamera{}, err
	}
	return cubeCamera{projection: projection, view: view}, nil
}

// Cube uploads projection, view and model separately and lets the vertex
// shader chain them.
func Cube() *Sample {
	return &Sample{
		Name:           "cube",
		Title:          "My Rotating Cube",
		VertexShader:   "cube.vert",
		FragmentShader: "colors.frag",

		Attribs:  cubeAttribs(),
		Uniforms: []string{"projection", "view", "model"},

		FloatsPerVertex: 6,
		Vertices:        cubeVertices(),
		Indices:         cubeIndices(),
		DepthTest:       true,

		Update: func(f Frame) (Uniforms, error) {
			cam, err := cameraFor(f.Aspect)
			if err != nil {
				return Uniforms{}, err
			}
			return Uniforms{Matrices: map[string]linalg.Mat4{
				"projection": cam.projection,
				"view":       cam.view,
				"model":      cubeModelY(f.Time),
			}}, nil
		},
	}
}

// CubeMVP composes the whole chain on the CPU and tumbles the cube around all
// three axes.
func CubeMVP() *Sample {
	s := Cube()
	s.Name = "cube-mvp"
	s.Title = "My Tumbling Cube"
	s.VertexShader = "cube_mvp.vert"
	s.Uniforms = []string{"mvp"}
	s.Update = func(f Frame) (Uniforms, error) {
		cam, err := cameraFor(f.Aspect)
		if err != nil {
			return Uniforms{}, err
		}
		mvp := linalg.Multiply(cam.projection, linalg.Multiply(cam.view, cubeModelTumble(f.Time)))
		return Uniforms{Matrices: map[string]linalg.Mat4{"mvp": mvp}}, nil
	}
	return s
}

func cubeModelY(angle float32) linalg.Mat4 {
	return linalg.Multiply(linalg.Translate(cubeTarget), linalg.RotateY(angle))
}

func cubeModelTumble(angle float32) linalg.Mat4 {
	rot := linalg.Rotate(linalg.Vec3{angle / 2, angle, angle * 3 / 4})
	return linalg.Multiply(linalg.Translate(cubeTarget), rot)
}
