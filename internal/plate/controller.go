// Package plate turns directional input into a smoothed plate orientation.
package plate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// Config holds the plate tuning.
type Config struct {
	MaxTilt             float64 // degrees at full input
	SmoothTime          float64 // seconds for the plate to follow its target
	PlateRadius         float64 // distance at which edge attenuation is strongest
	MinEdgeStrength     float64 // input strength with the ball at the rim
	AttenuationExponent float64 // >1 keeps full strength longer near the center
	ShiftScale          float64 // input strength while precision is held
	ScaleBlendTime      float64 // seconds to blend into and out of precision
	Deadzone            float64
}

// DefaultConfig returns the shipped plate tuning.
func DefaultConfig() Config {
	return Config{
		MaxTilt:             15,
		SmoothTime:          0.06,
		PlateRadius:         5,
		MinEdgeStrength:     0.4,
		AttenuationExponent: 2,
		ShiftScale:          0.4,
		ScaleBlendTime:      0.18,
		Deadzone:            0.01,
	}
}

// Input is one frame of tilt input. Axes are in [-1, 1].
type Input struct {
	H, V      float64
	Precision bool
}

// FromFrame reads the tilt axes and precision modifier from a frame.
func FromFrame(f core.InputFrame) Input {
	h, v := f.Axes()
	return Input{H: h, V: v, Precision: f.Has(core.ActionPrecision)}
}

// Controller tracks the plate's target and current euler angles.
type Controller struct {
	cfg    Config
	center mgl64.Vec3

	target  mgl64.Vec3
	current mgl64.Vec3
	vel     mgl64.Vec3

	scale    float64
	scaleVel float64
}

// New creates a level controller for a plate centered at center.
func New(cfg Config, center mgl64.Vec3) *Controller {
	return &Controller{cfg: cfg, center: center, scale: 1}
}

// Reset levels the plate and drops any blending state.
func (c *Controller) Reset() {
	c.target = mgl64.Vec3{}
	c.current = mgl64.Vec3{}
	c.vel = mgl64.Vec3{}
	c.scale = 1
	c.scaleVel = 0
}

// Update computes the target tilt for this frame. ball is the position used
// for edge attenuation.
func (c *Controller) Update(in Input, ball mgl64.Vec3, dt float64) {
	h, v := in.H, in.V
	if math.Abs(h) < c.cfg.Deadzone {
		h = 0
	}
	if math.Abs(v) < c.cfg.Deadzone {
		v = 0
	}

	targetScale := 1.0
	if in.Precision {
		targetScale = core.Clamp01(c.cfg.ShiftScale)
	}
	c.scale = SmoothDamp(c.scale, targetScale, &c.scaleVel, c.cfg.ScaleBlendTime, dt)

	final := c.scale * c.EdgeScale(ball)
	h *= final
	v *= final

	c.target = mgl64.Vec3{v * c.cfg.MaxTilt, 0, -h * c.cfg.MaxTilt}
}

// FixedUpdate moves the current angles towards the target.
func (c *Controller) FixedUpdate(dt float64) {
	c.current[0] = SmoothDampAngle(c.current[0], c.target[0], &c.vel[0], c.cfg.SmoothTime, dt)
	c.current[2] = SmoothDampAngle(c.current[2], c.target[2], &c.vel[2], c.cfg.SmoothTime, dt)
}

// EdgeScale is the input strength for a ball at pos: 1 at the center falling
// to MinEdgeStrength at PlateRadius.
func (c *Controller) EdgeScale(pos mgl64.Vec3) float64 {
	if c.cfg.PlateRadius <= 0.0001 {
		return 1
	}
	t := core.Clamp01(core.PlanarDistance(c.center, pos) / c.cfg.PlateRadius)
	curve := math.Pow(t, math.Max(0.001, c.cfg.AttenuationExponent))
	return core.Lerp(1, core.Clamp01(c.cfg.MinEdgeStrength), curve)
}

// Euler returns the current angles in degrees (x, y, z).
func (c *Controller) Euler() mgl64.Vec3 { return c.current }

// Target returns the angles the plate is moving towards.
func (c *Controller) Target() mgl64.Vec3 { return c.target }

// InputScale is the blended precision scale.
func (c *Controller) InputScale() float64 { return c.scale }

// Rotation returns the current plate orientation.
func (c *Controller) Rotation() mgl64.Quat {
	return core.Euler(c.current[0], c.current[1], c.current[2])
}
