package samples

import (
	"math"
	"slices"

	"github.com/fosdem/dashgl/lib/linalg"
)

func Triangle() *Sample {
	return &Sample{
		Name:           "triangle",
		Title:          "My First Triangle",
		VertexShader:   "triangle.vert",
		FragmentShader: "triangle.frag",
		ShaderVars:     map[string]any{"colour": "0.0, 0.0, 1.0, 1.0"},

		Attribs: []Attrib{{Name: "coord2d", Size: 2}},

		FloatsPerVertex: 2,
		Vertices: []float32{
			0.0, 0.8,
			-0.8, -0.8,
			0.8, -0.8,
		},
	}
}

// colouredTriangle is x, y followed by r, g, b for each corner.
func colouredTriangle() []float32 {
	return []float32{
		0.0, 0.8, 1.0, 1.0, 0.0,
		-0.8, -0.8, 0.0, 0.0, 1.0,
		0.8, -0.8, 1.0, 0.0, 0.0,
	}
}

var colouredAttribs = []Attrib{
	{Name: "coord2d", Size: 2},
	{Name: "v_color", Size: 3, Offset: 2},
}

func Colors() *Sample {
	return &Sample{
		Name:           "colors",
		Title:          "My Coloured Triangle",
		VertexShader:   "colors.vert",
		FragmentShader: "colors.frag",

		Attribs: slices.Clone(colouredAttribs),

		FloatsPerVertex: 5,
		Vertices:        colouredTriangle(),
	}
}

func Fade() *Sample {
	return &Sample{
		Name:           "fade",
		Title:          "My Triangular Fade",
		VertexShader:   "colors.vert",
		FragmentShader: "fade.frag",

		Attribs:  slices.Clone(colouredAttribs),
		Uniforms: []string{"fade"},

		FloatsPerVertex: 5,
		Vertices:        colouredTriangle(),

		Update: func(f Frame) (Uniforms, error) {
			return Uniforms{Floats: map[string]float32{"fade": fadeAt(f.Time)}}, nil
		},
	}
}

// fadeAt oscillates between 0 and 1 with a period of five seconds.
func fadeAt(t float32) float32 {
	return float32(math.Sin(float64(t)*(2*math.Pi)/5)/2 + 0.5)
}

func Transform() *Sample {
	return &Sample{
		Name:           "transform",
		Title:          "My Moving Triangle",
		VertexShader:   "transform.vert",
		FragmentShader: "colors.frag",

		Attribs:  slices.Clone(colouredAttribs),
		Uniforms: []string{"m_transform"},

		FloatsPerVertex: 5,
		Vertices:        colouredTriangle(),

		Update: func(f Frame) (Uniforms, error) {
			return Uniforms{Matrices: map[string]linalg.Mat4{"m_transform": transformAt(f.Time)}}, nil
		},
	}
}

// transformAt spins the triangle around Z at one radian per second while
// sliding it left and right; the rotation is applied before the translation.
func transformAt(t float32) linalg.Mat4 {
	move := float32(math.Sin(float64(t) * (2 * math.Pi) / 5))
	pos := linalg.Translate(linalg.Vec3{move, 0, 0})
	rot := linalg.Rotate(linalg.Vec3{0, 0, t})
	return linalg.Multiply(pos, rot)
}
