package boundary_test

import (
	"testing"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
)

var letters = [4]boundary.Letter{boundary.R, boundary.U, boundary.L, boundary.D}

// TestRotate_Quarter checks the full rotation table: one 90° step maps
// r→u→l→d→r.
func TestRotate_Quarter(t *testing.T) {
	want := map[boundary.Letter]boundary.Letter{
		boundary.R: boundary.U,
		boundary.U: boundary.L,
		boundary.L: boundary.D,
		boundary.D: boundary.R,
	}
	for l, exp := range want {
		if got := boundary.Rotate(l, 90); got != exp {
			t.Errorf("Rotate(%c, 90) = %c; want %c", l, got, exp)
		}
	}
}

// TestRotate_Inverse verifies Rotate(Rotate(l, θ), −θ) == l for every
// letter and every multiple of 90°, including a full turn.
func TestRotate_Inverse(t *testing.T) {
	for _, l := range letters {
		for _, deg := range []int{0, 90, 180, 270, 360, -90, -180} {
			if got := boundary.Rotate(boundary.Rotate(l, deg), -deg); got != l {
				t.Errorf("Rotate(Rotate(%c, %d), %d) = %c; want %c", l, deg, -deg, got, l)
			}
		}
		if got := boundary.Rotate(l, 360); got != l {
			t.Errorf("Rotate(%c, 360) = %c; want %c", l, got, l)
		}
	}
}

// TestComplement_SelfInverse covers the 180° pairing r↔l, u↔d.
func TestComplement_SelfInverse(t *testing.T) {
	if boundary.Complement(boundary.R) != boundary.L || boundary.Complement(boundary.U) != boundary.D {
		t.Fatal("Complement pairing broken")
	}
	for _, l := range letters {
		if got := boundary.Complement(boundary.Complement(l)); got != l {
			t.Errorf("Complement(Complement(%c)) = %c", l, got)
		}
	}
}

// TestReflect_Involution verifies Reflect(Reflect(l, a), a) == l for
// every letter and axis.
func TestReflect_Involution(t *testing.T) {
	for _, l := range letters {
		for _, a := range boundary.ReflectionAngles {
			if got := boundary.Reflect(boundary.Reflect(l, a), a); got != l {
				t.Errorf("Reflect(Reflect(%c, %d), %d) = %c; want %c", l, a, a, got, l)
			}
		}
	}
}

// TestReflect_Axes spot-checks each axis against the geometric picture.
func TestReflect_Axes(t *testing.T) {
	cases := []struct {
		l    boundary.Letter
		a    boundary.Angle
		want boundary.Letter
	}{
		{boundary.R, boundary.AngleHorizontal, boundary.R},
		{boundary.U, boundary.AngleHorizontal, boundary.D},
		{boundary.R, boundary.AngleVertical, boundary.L},
		{boundary.U, boundary.AngleVertical, boundary.U},
		{boundary.R, boundary.AngleRisingDiagonal, boundary.U},
		{boundary.D, boundary.AngleRisingDiagonal, boundary.L},
		{boundary.R, boundary.AngleFallingDiagonal, boundary.D},
		{boundary.U, boundary.AngleFallingDiagonal, boundary.L},
	}
	for _, c := range cases {
		if got := boundary.Reflect(c.l, c.a); got != c.want {
			t.Errorf("Reflect(%c, %d) = %c; want %c", c.l, c.a, got, c.want)
		}
	}
}

// TestVec pins the screen-down convention: U decreases Y.
func TestVec(t *testing.T) {
	if boundary.U.Vec() != (boundary.Point{0, -1}) || boundary.D.Vec() != (boundary.Point{0, 1}) {
		t.Fatal("vertical unit vectors do not follow the screen-down convention")
	}
	if boundary.R.Vec() != (boundary.Point{1, 0}) || boundary.L.Vec() != (boundary.Point{-1, 0}) {
		t.Fatal("horizontal unit vectors broken")
	}
}
