package placement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// defaultRadius is used for shapeless templates and actors.
const defaultRadius = 0.5

// Shape is a collision shape. The set is closed: Sphere, Box and BoundingBox.
type Shape interface {
	// PlanarRadius approximates the ground-plane footprint at the given scale.
	PlanarRadius(scale mgl64.Vec3) float64
	// HalfHeight is the vertical half-extent at the given scale and rotation.
	HalfHeight(scale mgl64.Vec3, rot mgl64.Quat) float64

	shape()
}

// Sphere is a sphere collider. Its radius scales with the X scale.
type Sphere struct {
	Radius float64
}

// Box is a box collider given by its full local size.
type Box struct {
	Size mgl64.Vec3
}

// BoundingBox stands in for any other collider through its half extents.
type BoundingBox struct {
	Extents mgl64.Vec3
}

func (Sphere) shape()      {}
func (Box) shape()         {}
func (BoundingBox) shape() {}

func (s Sphere) PlanarRadius(scale mgl64.Vec3) float64 {
	return s.Radius * scale.X()
}

func (s Sphere) HalfHeight(scale mgl64.Vec3, _ mgl64.Quat) float64 {
	m := math.Max(math.Abs(scale.X()), math.Max(math.Abs(scale.Y()), math.Abs(scale.Z())))
	return s.Radius * m
}

// PlanarRadius of a box is half its scaled diagonal.
func (b Box) PlanarRadius(scale mgl64.Vec3) float64 {
	return scaled(b.Size, scale).Len() * 0.5
}

func (b Box) HalfHeight(scale mgl64.Vec3, rot mgl64.Quat) float64 {
	return verticalExtent(scaled(b.Size, scale).Mul(0.5), rot)
}

func (b BoundingBox) PlanarRadius(scale mgl64.Vec3) float64 {
	return scaled(b.Extents, scale).Len()
}

func (b BoundingBox) HalfHeight(scale mgl64.Vec3, rot mgl64.Quat) float64 {
	return verticalExtent(scaled(b.Extents, scale), rot)
}

// ShapeRadius returns s.PlanarRadius(scale), or the default radius for a nil shape.
func ShapeRadius(s Shape, scale mgl64.Vec3) float64 {
	if s == nil {
		return defaultRadius
	}
	return s.PlanarRadius(scale)
}

func scaled(v, scale mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X() * scale.X(), v.Y() * scale.Y(), v.Z() * scale.Z()}
}

// verticalExtent projects an oriented box with half extents e onto the Y axis.
func verticalExtent(e mgl64.Vec3, rot mgl64.Quat) float64 {
	axes := [3]mgl64.Vec3{core.Right, core.Up, core.Forward}
	var h float64
	for i, a := range axes {
		h += math.Abs(rot.Rotate(a).Y()) * math.Abs(e[i])
	}
	return h
}
