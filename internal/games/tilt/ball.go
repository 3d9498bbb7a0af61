package tilt

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// Ball is the player. It slides across the plate under the component of
// gravity along the tilted top face and drops once it leaves the plate.
type Ball struct {
	Pos     mgl64.Vec3
	Vel     mgl64.Vec3
	Radius  float64
	Falling bool
}

// NewBall places a ball at rest on the plate's center.
func NewBall(radius float64) *Ball {
	return &Ball{Pos: mgl64.Vec3{0, radius, 0}, Radius: radius}
}

// Position implements placement.Actor.
func (b *Ball) Position() mgl64.Vec3 { return b.Pos }

// PlanarRadius implements placement.Actor.
func (b *Ball) PlanarRadius() float64 { return b.Radius }

// Step advances the ball by dt seconds.
func (b *Ball) Step(dt float64, plate *Plate, cfg config.BallConfig) {
	if b.Falling {
		b.Vel[1] -= cfg.Gravity * dt
		b.Pos = b.Pos.Add(b.Vel.Mul(dt))
		return
	}

	if _, on := plate.TopAt(b.Pos.X(), b.Pos.Z()); !on {
		b.Falling = true
		b.Step(dt, plate, cfg)
		return
	}

	// Gravity along the plate
	n := plate.Normal()
	g := mgl64.Vec3{0, -cfg.Gravity, 0}
	a := g.Sub(n.Mul(g.Dot(n)))
	b.Vel[0] += a.X() * dt
	b.Vel[2] += a.Z() * dt
	b.Vel[1] = 0

	damp := math.Max(0, 1-cfg.Drag*dt)
	b.Vel = b.Vel.Mul(damp)
	if cfg.MaxSpeed > 0 {
		if speed := b.Vel.Len(); speed > cfg.MaxSpeed {
			b.Vel = b.Vel.Mul(cfg.MaxSpeed / speed)
		}
	}

	b.Pos[0] += b.Vel.X() * dt
	b.Pos[2] += b.Vel.Z() * dt

	y, on := plate.TopAt(b.Pos.X(), b.Pos.Z())
	if !on {
		b.Falling = true
		return
	}
	b.Pos[1] = y + b.Radius
}

// Bounce pushes the ball out of an obstacle at center so their planar
// distance is at least minDist, and reflects the velocity heading into it.
func (b *Ball) Bounce(center mgl64.Vec3, minDist, restitution float64) {
	d := mgl64.Vec3{b.Pos.X() - center.X(), 0, b.Pos.Z() - center.Z()}
	dist := d.Len()
	if dist < 1e-9 {
		d = mgl64.Vec3{1, 0, 0}
	} else {
		d = d.Mul(1 / dist)
	}

	if dist < minDist {
		b.Pos[0] = center.X() + d.X()*minDist
		b.Pos[2] = center.Z() + d.Z()*minDist
	}

	if into := b.Vel.Dot(d); into < 0 {
		b.Vel = b.Vel.Sub(d.Mul((1 + core.Clamp01(restitution)) * into))
	}
}
