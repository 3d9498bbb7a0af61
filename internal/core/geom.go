// Package core provides fundamental types and utilities for the arcade platform.
// It contains no Bubble Tea dependencies to keep game logic pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. Y is vertical; the ground plane is XZ.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Right   = mgl64.Vec3{1, 0, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// Euler builds a rotation from angles in degrees. The rotation applies Z
// first, then X, then Y, matching the usual game-engine convention.
func Euler(x, y, z float64) mgl64.Quat {
	qx := AngleAxis(x, Right)
	qy := AngleAxis(y, Up)
	qz := AngleAxis(z, Forward)
	return qy.Mul(qx).Mul(qz)
}

// AngleAxis returns a rotation of deg degrees about axis.
func AngleAxis(deg float64, axis mgl64.Vec3) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), axis.Normalize())
}

// PlanarDistance is the distance between a and b ignoring the vertical axis.
func PlanarDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}

// Rect represents an axis-aligned screen rectangle in cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Lerp interpolates from a to b by t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// SmoothStep eases t in [0, 1] between from and to with zero slope at both ends.
func SmoothStep(from, to, t float64) float64 {
	t = Clamp01(t)
	t = -2*t*t*t + 3*t*t
	return to*t + from*(1-t)
}
