// Package linalg holds the small amount of vector and matrix maths the samples
// need to drive their per-frame uniforms.
//
// Matrices are column-major (m[col*4+row]) and act on column vectors, so a
// point is transformed as p' = M·p. Multiply(a, b) therefore applies b first
// and a second, and a full chain is composed as
//
//	mvp := Multiply(projection, Multiply(view, model))
//
// Every function takes its inputs by value and returns a new value; there is
// no current-matrix stack.
package linalg

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Vec3 = mgl32.Vec3
type Mat4 = mgl32.Mat4

func Identity() Mat4 {
	return mgl32.Ident4()
}

func Translate(v Vec3) Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}

func Scale(v Vec3) Mat4 {
	return mgl32.Scale3D(v[0], v[1], v[2])
}

// RotateX rotates by angle radians around the X axis, counter-clockwise when
// looking from +X towards the origin.
func RotateX(angle float32) Mat4 {
	return mgl32.HomogRotate3DX(angle)
}

func RotateY(angle float32) Mat4 {
	return mgl32.HomogRotate3DY(angle)
}

func RotateZ(angle float32) Mat4 {
	return mgl32.HomogRotate3DZ(angle)
}

// Rotate applies the X rotation first, then Y, then Z:
// Rotate(e) == RotateZ(e.Z) × RotateY(e.Y) × RotateX(e.X).
func Rotate(euler Vec3) Mat4 {
	return Multiply(RotateZ(euler[2]), Multiply(RotateY(euler[1]), RotateX(euler[0])))
}

// Multiply returns a × b.
func Multiply(a, b Mat4) Mat4 {
	return a.Mul4(b)
}

// Perspective builds a symmetric OpenGL projection. Eye-space depth -near maps
// to NDC z = -1 and -far to NDC z = +1.
func Perspective(fovYDegrees, aspect, near, far float32) (Mat4, error) {
	switch {
	case !finite(fovYDegrees, aspect, near, far):
		return Mat4{}, &PreconditionError{Op: "perspective", Reason: "arguments must be finite"}
	case fovYDegrees <= 0 || fovYDegrees >= 180:
		return Mat4{}, &PreconditionError{Op: "perspective", Reason: "field of view must be within (0, 180) degrees"}
	case aspect <= 0:
		return Mat4{}, &PreconditionError{Op: "perspective", Reason: "aspect ratio must be positive"}
	case near <= 0:
		return Mat4{}, &PreconditionError{Op: "perspective", Reason: "near plane must be positive"}
	case far <= near:
		return Mat4{}, &PreconditionError{Op: "perspective", Reason: "far plane must lie beyond the near plane"}
	}
	return mgl32.Perspective(DegToRad(fovYDegrees), aspect, near, far), nil
}

// LookAt builds a view matrix that moves eye to the origin and puts target on
// the negative Z axis.
func LookAt(eye, target, up Vec3) (Mat4, error) {
	if !finite(eye[0], eye[1], eye[2], target[0], target[1], target[2], up[0], up[1], up[2]) {
		return Mat4{}, &PreconditionError{Op: "look-at", Reason: "arguments must be finite"}
	}
	dir := target.Sub(eye)
	if dir.Len() < epsilon {
		return Mat4{}, &PreconditionError{Op: "look-at", Reason: "eye and target coincide"}
	}
	if up.Len() < epsilon {
		return Mat4{}, &PreconditionError{Op: "look-at", Reason: "up axis is zero"}
	}
	if dir.Normalize().Cross(up.Normalize()).Len() < epsilon {
		return Mat4{}, &PreconditionError{Op: "look-at", Reason: "up axis is parallel to the viewing direction"}
	}
	return mgl32.LookAtV(eye, target, up), nil
}

// TransformPoint applies m to p as a homogeneous point and divides by w.
func TransformPoint(m Mat4, p Vec3) Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v[3])
}

// ApproxEqual compares element-wise with an absolute tolerance, so entries
// that should be zero compare equal to float rounding noise.
func ApproxEqual(a, b Mat4, eps float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func DegToRad(deg float32) float32 {
	return mgl32.DegToRad(deg)
}

const epsilon = 1e-6

func finite(vals ...float32) bool {
	for _, v := range vals {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
