package placement

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

func TestPlanarRadius(t *testing.T) {
	unit := mgl64.Vec3{1, 1, 1}
	tests := []struct {
		name  string
		shape Shape
		scale mgl64.Vec3
		want  float64
	}{
		{"sphere", Sphere{Radius: 0.5}, unit, 0.5},
		{"sphere scales with x", Sphere{Radius: 0.5}, mgl64.Vec3{2, 7, 7}, 1},
		{"unit box half diagonal", Box{Size: unit}, unit, math.Sqrt(3) / 2},
		{"scaled box", Box{Size: mgl64.Vec3{1, 0, 1}}, mgl64.Vec3{3, 1, 4}, 2.5},
		{"bounding extents", BoundingBox{Extents: mgl64.Vec3{3, 0, 4}}, unit, 5},
		{"nil shape", nil, unit, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShapeRadius(tc.shape, tc.scale); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("ShapeRadius() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHalfHeightFollowsRotation(t *testing.T) {
	quad := Box{Size: mgl64.Vec3{1, 2, 0.1}}
	unit := mgl64.Vec3{1, 1, 1}

	if got := quad.HalfHeight(unit, mgl64.QuatIdent()); math.Abs(got-1) > 1e-9 {
		t.Errorf("upright HalfHeight = %v, expected 1", got)
	}
	if got := quad.HalfHeight(unit, FlatRotation); math.Abs(got-0.05) > 1e-9 {
		t.Errorf("flat HalfHeight = %v, expected 0.05", got)
	}

	s := Sphere{Radius: 0.3}
	if got := s.HalfHeight(unit, core.Euler(45, 10, 0)); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("sphere HalfHeight = %v, expected 0.3", got)
	}
}

func TestTemplateDefaults(t *testing.T) {
	tmpl := Template{Shape: Sphere{Radius: 0.4}}
	if got := tmpl.PlanarRadius(); got != 0.4 {
		t.Errorf("zero scale should act as unit, radius = %v", got)
	}
	if tmpl.rotation() != mgl64.QuatIdent() {
		t.Errorf("zero rotation should act as identity")
	}
	if (Template{}).HalfHeight(mgl64.QuatIdent()) != 0 {
		t.Errorf("shapeless template should have no half height")
	}
}

func TestInsetBounds(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{-5, -0.1, -5}, Max: mgl64.Vec3{5, 0.1, 5}}
	b := InsetBounds(box, 0.6)
	if math.Abs(b.MinX+4.4) > 1e-12 || math.Abs(b.MaxX-4.4) > 1e-12 ||
		math.Abs(b.MinZ+4.4) > 1e-12 || math.Abs(b.MaxZ-4.4) > 1e-12 {
		t.Errorf("InsetBounds() = %+v, expected +-4.4", b)
	}

	narrow := AABB{Min: mgl64.Vec3{0, 0, -5}, Max: mgl64.Vec3{1, 0, 5}}
	b = InsetBounds(narrow, 0.6)
	if b.MinX != 0.5 || b.MaxX != 0.5 {
		t.Errorf("narrow side should collapse to its center, got [%v, %v]", b.MinX, b.MaxX)
	}
}

func TestRequiredSpacing(t *testing.T) {
	cfg := DefaultConfig()
	if got := RequiredSpacing(Collectible, cfg); got != 0.3 {
		t.Errorf("collectible spacing = %v, expected 0.3", got)
	}
	if got := RequiredSpacing(Hole, cfg); math.Abs(got-0.45) > 1e-12 {
		t.Errorf("hole spacing = %v, expected 0.45", got)
	}
}
