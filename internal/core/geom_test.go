package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPlanarDistanceIgnoresHeight(t *testing.T) {
	tests := []struct {
		name     string
		a, b     mgl64.Vec3
		expected float64
	}{
		{"same point", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, 0},
		{"vertical only", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 10, 0}, 0},
		{"3-4-5", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, -7, 4}, 5},
		{"negative coords", mgl64.Vec3{-1, 0, -1}, mgl64.Vec3{-4, 0, -5}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PlanarDistance(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("PlanarDistance() = %v, expected %v", got, tc.expected)
			}
			if back := PlanarDistance(tc.b, tc.a); math.Abs(back-got) > 1e-12 {
				t.Errorf("PlanarDistance() not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestEulerSingleAxis(t *testing.T) {
	// 90 degrees about X turns +Y into +Z.
	v := Euler(90, 0, 0).Rotate(Up)
	if v.Sub(Forward).Len() > 1e-9 {
		t.Errorf("Euler(90,0,0) * Up = %v, expected %v", v, Forward)
	}

	// 90 degrees about Y turns +Z into +X.
	v = Euler(0, 90, 0).Rotate(Forward)
	if v.Sub(Right).Len() > 1e-9 {
		t.Errorf("Euler(0,90,0) * Forward = %v, expected %v", v, Right)
	}
}

func TestEulerOrderZXY(t *testing.T) {
	got := Euler(30, 45, 60)
	want := AngleAxis(45, Up).Mul(AngleAxis(30, Right)).Mul(AngleAxis(60, Forward))
	if !got.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("Euler() = %v, expected %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(1.5) != 1 || Clamp01(-0.5) != 0 || Clamp01(0.25) != 0.25 {
		t.Error("Clamp01 returned unexpected values")
	}
}

func TestLerpAndSmoothStep(t *testing.T) {
	if got := Lerp(80, 60, 0.5); got != 70 {
		t.Errorf("Lerp(80, 60, 0.5) = %v, expected 70", got)
	}
	if got := Lerp(80, 60, 2); got != 60 {
		t.Errorf("Lerp should clamp t, got %v", got)
	}
	if got := SmoothStep(0, 1, 0); got != 0 {
		t.Errorf("SmoothStep(0) = %v, expected 0", got)
	}
	if got := SmoothStep(0, 1, 1); got != 1 {
		t.Errorf("SmoothStep(1) = %v, expected 1", got)
	}
	if got := SmoothStep(0, 1, 0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("SmoothStep(0.5) = %v, expected 0.5", got)
	}
}
