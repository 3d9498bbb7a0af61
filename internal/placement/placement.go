// Package placement scatters collectibles, hazards and holes over a bounded
// rectangular surface. Candidates are rejection-sampled against everything
// already placed in the session and against a protected actor; an item whose
// attempts run out is placed anyway (see Sampler.PlaceAll).
package placement

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Category selects the spacing and orientation policy of a placed item.
type Category int

const (
	Collectible Category = iota
	Hazard
	Hole
)

// Categories lists every category in placement order.
var Categories = []Category{Collectible, Hazard, Hole}

func (c Category) String() string {
	switch c {
	case Collectible:
		return "collectible"
	case Hazard:
		return "hazard"
	case Hole:
		return "hole"
	default:
		return "unknown"
	}
}

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min, Max mgl64.Vec3
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Bounds is the planar rectangle candidates are drawn from.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// InsetBounds shrinks the XZ footprint of box by inset on every side. A side
// shorter than twice the inset collapses onto its center line.
func InsetBounds(box AABB, inset float64) Bounds {
	b := Bounds{
		MinX: box.Min.X() + inset,
		MaxX: box.Max.X() - inset,
		MinZ: box.Min.Z() + inset,
		MaxZ: box.Max.Z() - inset,
	}
	if b.MinX > b.MaxX {
		c := (box.Min.X() + box.Max.X()) / 2
		b.MinX, b.MaxX = c, c
	}
	if b.MinZ > b.MaxZ {
		c := (box.Min.Z() + box.Max.Z()) / 2
		b.MinZ, b.MaxZ = c, c
	}
	return b
}

// Contains reports whether the planar position of p lies inside b, edges included.
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.MinX && p.X() <= b.MaxX && p.Z() >= b.MinZ && p.Z() <= b.MaxZ
}

// Template is a reusable item definition.
type Template struct {
	Name     string
	Shape    Shape
	Scale    mgl64.Vec3 // zero means unit scale
	Rotation mgl64.Quat // zero means identity
}

func (t Template) scale() mgl64.Vec3 {
	if t.Scale == (mgl64.Vec3{}) {
		return mgl64.Vec3{1, 1, 1}
	}
	return t.Scale
}

func (t Template) rotation() mgl64.Quat {
	if t.Rotation == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}
	return t.Rotation
}

// PlanarRadius approximates the template's footprint on the ground plane.
func (t Template) PlanarRadius() float64 {
	return ShapeRadius(t.Shape, t.scale())
}

// HalfHeight is the vertical half-extent of the template's shape under rot.
func (t Template) HalfHeight(rot mgl64.Quat) float64 {
	if t.Shape == nil {
		return 0
	}
	return t.Shape.HalfHeight(t.scale(), rot)
}

// Request asks for Count items of one category drawn from Templates.
type Request struct {
	Category  Category
	Count     int
	Templates []Template
}

// PlacedItem is one accepted placement.
type PlacedItem struct {
	Template Template
	Category Category
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Radius   float64
	// Fallback marks items placed after every attempt was rejected. Their
	// spacing is not guaranteed.
	Fallback bool
}

// Config holds the sampler tunables.
type Config struct {
	WallInset              float64 // keep this far from the surface edges
	YOffset                float64 // lift above the surface after resting the collider on it
	MinSpacing             float64 // extra gap between any two items
	MaxAttemptsPerItem     int
	ActorPadding           float64 // extra gap between an item and the protected actor
	HoleForceUp            bool    // lay holes flat against the surface
	HoleRandomYaw          bool
	HoleExtraSpacing       float64
	InheritSurfaceRotation bool
	ProbeHeight            float64 // how far above the surface top the probe starts
	ProbeDistance          float64
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		WallInset:              0.6,
		YOffset:                0.01,
		MinSpacing:             0.3,
		MaxAttemptsPerItem:     40,
		ActorPadding:           0.35,
		HoleForceUp:            true,
		HoleRandomYaw:          true,
		HoleExtraSpacing:       0.15,
		InheritSurfaceRotation: true,
		ProbeHeight:            2,
		ProbeDistance:          5,
	}
}

// RequiredSpacing is the gap an item of category c keeps from its neighbours.
func RequiredSpacing(c Category, cfg Config) float64 {
	if c == Hole {
		return cfg.MinSpacing + cfg.HoleExtraSpacing
	}
	return cfg.MinSpacing
}
