package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func sampleMatrix() Mat4 {
	return Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
}

func assertMatEqual(t *testing.T, want, got Mat4) {
	t.Helper()
	assert.Truef(t, ApproxEqual(want, got, tolerance), "want %v\ngot  %v", want, got)
}

func assertVecEqual(t *testing.T, want, got Vec3) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], tolerance, "component %d of %v", i, got)
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	m := Multiply(Translate(Vec3{1, -2, 3}), Rotate(Vec3{0.3, 0.2, 0.1}))
	for _, tc := range []Mat4{sampleMatrix(), m} {
		assertMatEqual(t, tc, Multiply(Identity(), tc))
		assertMatEqual(t, tc, Multiply(tc, Identity()))
	}
}

func TestTranslateInverse(t *testing.T) {
	v := Vec3{1.5, -4, 0.25}
	assertMatEqual(t, Identity(), Multiply(Translate(v), Translate(v.Mul(-1))))
}

func TestTranslateMovesPoint(t *testing.T) {
	got := TransformPoint(Translate(Vec3{1, 2, 3}), Vec3{1, 1, 1})
	assertVecEqual(t, Vec3{2, 3, 4}, got)
}

func TestTranslateIsColumnMajor(t *testing.T) {
	m := Translate(Vec3{7, 8, 9})
	assert.Equal(t, float32(7), m[12])
	assert.Equal(t, float32(8), m[13])
	assert.Equal(t, float32(9), m[14])
}

func TestRotateYFullTurn(t *testing.T) {
	assertMatEqual(t, Identity(), RotateY(0))
	assertMatEqual(t, Identity(), RotateY(2*math.Pi))
}

func TestRotateZeroIsIdentity(t *testing.T) {
	assertMatEqual(t, Identity(), Rotate(Vec3{0, 0, 0}))
}

func TestAxisRotationsAreRightHanded(t *testing.T) {
	quarter := float32(math.Pi / 2)
	assertVecEqual(t, Vec3{0, 0, 1}, TransformPoint(RotateX(quarter), Vec3{0, 1, 0}))
	assertVecEqual(t, Vec3{1, 0, 0}, TransformPoint(RotateY(quarter), Vec3{0, 0, 1}))
	assertVecEqual(t, Vec3{0, 1, 0}, TransformPoint(RotateZ(quarter), Vec3{1, 0, 0}))
}

func TestRotateAppliesXThenYThenZ(t *testing.T) {
	e := Vec3{0.4, -1.1, 2.3}
	want := Multiply(RotateZ(e[2]), Multiply(RotateY(e[1]), RotateX(e[0])))
	assertMatEqual(t, want, Rotate(e))

	quarter := float32(math.Pi / 2)
	// +Y -> +Z under X, then +Z -> +X under Y
	got := TransformPoint(Rotate(Vec3{quarter, quarter, 0}), Vec3{0, 1, 0})
	assertVecEqual(t, Vec3{1, 0, 0}, got)
}

func TestMultiplyAppliesRightOperandFirst(t *testing.T) {
	quarter := float32(math.Pi / 2)
	m := Multiply(Translate(Vec3{1, 0, 0}), RotateZ(quarter))
	assertVecEqual(t, Vec3{1, 1, 0}, TransformPoint(m, Vec3{1, 0, 0}))

	swapped := Multiply(RotateZ(quarter), Translate(Vec3{1, 0, 0}))
	assertVecEqual(t, Vec3{0, 2, 0}, TransformPoint(swapped, Vec3{1, 0, 0}))
}

func TestMultiplyIsAssociative(t *testing.T) {
	a := Translate(Vec3{1, 2, 3})
	b := RotateX(0.7)
	c := Scale(Vec3{2, 3, 4})
	assertMatEqual(t, Multiply(Multiply(a, b), c), Multiply(a, Multiply(b, c)))
}

func TestLookAtPlacesTargetOnNegativeZ(t *testing.T) {
	eye := Vec3{0, 2, 0}
	target := Vec3{0, 0, -4}
	view, err := LookAt(eye, target, Vec3{0, 1, 0})
	require.NoError(t, err)

	dist := target.Sub(eye).Len()
	assertVecEqual(t, Vec3{0, 0, -dist}, TransformPoint(view, target))
	assertVecEqual(t, Vec3{0, 0, 0}, TransformPoint(view, eye))
}

func TestLookAtRejectsDegenerateInput(t *testing.T) {
	cases := []struct {
		name            string
		eye, target, up Vec3
	}{
		{"same point", Vec3{1, 1, 1}, Vec3{1, 1, 1}, Vec3{0, 1, 0}},
		{"parallel up", Vec3{0, 0, 0}, Vec3{0, 5, 0}, Vec3{0, 1, 0}},
		{"opposite up", Vec3{0, 0, 0}, Vec3{0, -5, 0}, Vec3{0, 1, 0}},
		{"zero up", Vec3{0, 0, 0}, Vec3{0, 0, -1}, Vec3{0, 0, 0}},
		{"not finite", Vec3{float32(math.NaN()), 0, 0}, Vec3{0, 0, -1}, Vec3{0, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LookAt(tc.eye, tc.target, tc.up)
			var perr *PreconditionError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "look-at", perr.Op)
		})
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj, err := Perspective(90, 1.0, 0.1, 100.0)
	require.NoError(t, err)

	near := TransformPoint(proj, Vec3{0, 0, -0.1})
	assert.InDelta(t, -1.0, near[2], 1e-4)

	far := TransformPoint(proj, Vec3{0, 0, -100})
	assert.InDelta(t, 1.0, far[2], 1e-4)

	// 90 degrees: the frustum edge at depth 1 lands on x = 1
	edge := TransformPoint(proj, Vec3{1, 0, -1})
	assert.InDelta(t, 1.0, edge[0], 1e-4)
}

func TestPerspectiveRejectsBadFrustum(t *testing.T) {
	cases := []struct {
		name                   string
		fov, aspect, near, far float32
	}{
		{"zero near", 45, 1, 0, 10},
		{"negative near", 45, 1, -1, 10},
		{"far before near", 45, 1, 1, 0.5},
		{"far equals near", 45, 1, 1, 1},
		{"zero aspect", 45, 0, 0.1, 10},
		{"zero fov", 0, 1, 0.1, 10},
		{"flat fov", 180, 1, 0.1, 10},
		{"infinite far", 45, 1, 0.1, float32(math.Inf(1))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Perspective(tc.fov, tc.aspect, tc.near, tc.far)
			var perr *PreconditionError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, Mat4{}, m)
		})
	}
}
