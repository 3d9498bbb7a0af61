package plate

import "math"

// SmoothDamp moves current towards target with a critically damped spring
// that settles in roughly smoothTime seconds. vel carries the spring state
// between calls.
func SmoothDamp(current, target float64, vel *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*vel + omega*change) * dt
	*vel = (*vel - omega*temp) * decay
	out := target + (change+temp)*decay

	// no overshoot
	if (target-current > 0) == (out > target) {
		out = target
		*vel = 0
	}
	return out
}

// SmoothDampAngle is SmoothDamp for angles in degrees. It takes the short way
// around the circle.
func SmoothDampAngle(current, target float64, vel *float64, smoothTime, dt float64) float64 {
	return SmoothDamp(current, current+DeltaAngle(current, target), vel, smoothTime, dt)
}

// DeltaAngle returns the shortest signed difference from current to target
// in degrees, in (-180, 180].
func DeltaAngle(current, target float64) float64 {
	d := math.Mod(target-current, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return d
}
