// Package camera holds the view effects of the tilt game: a decaying shake
// triggered by hazards and a one-time zoom that starts on the first input.
package camera

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Default shake parameters.
const (
	DefaultShakeDuration = 0.2
	DefaultShakeStrength = 0.2
	DefaultShakeDamping  = 2.0
)

// Shake produces a random offset for the camera while its timer runs.
type Shake struct {
	rng       *rand.Rand
	remaining float64
	magnitude float64
	damping   float64
	offset    mgl64.Vec3
}

// NewShake creates an idle shake with its own random source.
func NewShake(seed int64) *Shake {
	return &Shake{
		rng:       rand.New(rand.NewSource(seed)),
		magnitude: DefaultShakeStrength,
		damping:   DefaultShakeDamping,
	}
}

// TriggerShake restarts the shake. The timer drains at damping per second.
func (s *Shake) TriggerShake(duration, strength, damping float64) {
	s.remaining = duration
	s.magnitude = strength
	s.damping = math.Max(0.0001, damping)
}

// TriggerDefault starts a shake with the default parameters.
func (s *Shake) TriggerDefault() {
	s.TriggerShake(DefaultShakeDuration, DefaultShakeStrength, DefaultShakeDamping)
}

// Update advances the shake by dt and returns this frame's offset.
func (s *Shake) Update(dt float64) mgl64.Vec3 {
	if s.remaining > 0 {
		s.offset = s.insideUnitSphere().Mul(s.magnitude)
		s.remaining -= dt * s.damping
		return s.offset
	}
	s.remaining = 0
	s.offset = mgl64.Vec3{}
	return s.offset
}

// Offset returns the offset from the last Update.
func (s *Shake) Offset() mgl64.Vec3 { return s.offset }

// Active reports whether the shake is still running.
func (s *Shake) Active() bool { return s.remaining > 0 }

func (s *Shake) insideUnitSphere() mgl64.Vec3 {
	for {
		v := mgl64.Vec3{
			s.rng.Float64()*2 - 1,
			s.rng.Float64()*2 - 1,
			s.rng.Float64()*2 - 1,
		}
		if v.LenSqr() <= 1 {
			return v
		}
	}
}
