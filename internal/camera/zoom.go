package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// ZoomConfig describes the opening zoom in degrees of vertical field of view.
type ZoomConfig struct {
	StartFOV  float64
	TargetFOV float64
	Duration  float64
}

// DefaultZoomConfig zooms from a wide 80 degrees to 60 over 1.5 seconds.
func DefaultZoomConfig() ZoomConfig {
	return ZoomConfig{StartFOV: 80, TargetFOV: 60, Duration: 1.5}
}

// Zoom eases the field of view from StartFOV to TargetFOV once the player
// first gives input.
type Zoom struct {
	cfg     ZoomConfig
	t       float64
	started bool
	zooming bool
	fov     float64
}

func NewZoom(cfg ZoomConfig) *Zoom {
	return &Zoom{cfg: cfg, fov: cfg.StartFOV}
}

// Update advances the zoom. anyInput starts it on the first call where it is true.
func (z *Zoom) Update(dt float64, anyInput bool) {
	if !z.started && anyInput {
		z.started = true
		z.zooming = true
	}
	if !z.zooming {
		return
	}

	z.t += dt / math.Max(0.01, z.cfg.Duration)
	s := core.SmoothStep(0, 1, core.Clamp01(z.t))
	z.fov = core.Lerp(z.cfg.StartFOV, z.cfg.TargetFOV, s)
	if z.t >= 1 {
		z.zooming = false
	}
}

// FOV returns the current field of view in degrees.
func (z *Zoom) FOV() float64 { return z.fov }

// Started reports whether the zoom has been triggered.
func (z *Zoom) Started() bool { return z.started }

// Done reports whether the zoom has reached its target.
func (z *Zoom) Done() bool { return z.started && !z.zooming }

// Scale is the on-screen magnification relative to the target field of view.
// It is below 1 while the view is still wide.
func (z *Zoom) Scale() float64 {
	half := func(fov float64) float64 {
		return math.Tan(mgl64.DegToRad(fov) / 2)
	}
	cur := half(z.fov)
	if cur <= 0 {
		return 1
	}
	return half(z.cfg.TargetFOV) / cur
}
