package math

import (
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslateMulVec4(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.MulVec4(Vec4{1, 2, 3, 1})
	want := Vec4{11, 22, 33, 1}
	if got != want {
		t.Errorf("MulVec4: got %v, want %v", got, want)
	}
}

func TestScaleThenTranslate(t *testing.T) {
	// Pre-multiplication applies the scale first.
	m := Translate(1, 0, 0).Mul(Scale(2, 2, 2))
	got := m.MulVec4(Vec4{1, 1, 1, 1})
	want := Vec4{3, 2, 2, 1}
	if got != want {
		t.Errorf("T*S: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(Radians(90))
	got := m.MulVec4(Vec4{1, 0, 0, 1})

	// (1,0,0) rotates onto (0,0,-1)
	if abs(got[0]) > 0.001 || abs(got[1]) > 0.001 || abs(got[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(90, 1, 1, 100)

	// tan(45deg) == 1
	if abs(m[0]-1) > 0.0001 || abs(m[5]-1) > 0.0001 {
		t.Errorf("Perspective focal terms: got (%f, %f), want (1, 1)", m[0], m[5])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{3, 4, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	got := m.MulVec4(Point(eye))
	for i := 0; i < 3; i++ {
		if abs(got[i]) > 0.0001 {
			t.Fatalf("eye should map to origin, got %v", got)
		}
	}

	// The look-at target lies on the -Z axis in view space.
	target := m.MulVec4(Vec4{0, 0, 0, 1})
	if abs(target[0]) > 0.0001 || abs(target[1]) > 0.0001 || target[2] >= 0 {
		t.Errorf("target should be on -Z, got %v", target)
	}
}

func TestNormalMatrixRotation(t *testing.T) {
	// For a pure rotation the normal matrix equals the rotation block.
	m := RotateZ(Radians(30))
	n := m.NormalMatrix()
	want := Mat3{m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10]}

	for i := range n {
		if abs(n[i]-want[i]) > 0.0001 {
			t.Fatalf("NormalMatrix()[%d] = %f, want %f", i, n[i], want[i])
		}
	}
}

func TestNormalMatrixScale(t *testing.T) {
	n := Scale(2, 4, 8).NormalMatrix()
	want := Mat3{0.5, 0, 0, 0, 0.25, 0, 0, 0, 0.125}
	if n != want {
		t.Errorf("NormalMatrix() = %v, want %v", n, want)
	}
}

func TestNormalMatrixSingular(t *testing.T) {
	n := Scale(0, 1, 1).NormalMatrix()
	if n != (Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}) {
		t.Errorf("singular NormalMatrix() = %v, want identity", n)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
