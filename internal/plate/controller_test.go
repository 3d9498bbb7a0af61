package plate

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

const dt = 1.0 / 60

func TestDeltaAngle(t *testing.T) {
	tests := []struct {
		current, target, want float64
	}{
		{0, 10, 10},
		{10, 0, -10},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{0, 540, 180},
	}
	for _, tc := range tests {
		if got := DeltaAngle(tc.current, tc.target); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("DeltaAngle(%v, %v) = %v, expected %v", tc.current, tc.target, got, tc.want)
		}
	}
}

func TestSmoothDampConverges(t *testing.T) {
	var vel float64
	x := 0.0
	for i := 0; i < 120; i++ {
		next := SmoothDamp(x, 1, &vel, 0.1, dt)
		if next < x || next > 1 {
			t.Fatalf("step %d: %v -> %v is not monotone towards 1", i, x, next)
		}
		x = next
	}
	if math.Abs(x-1) > 1e-3 {
		t.Errorf("after two seconds x = %v, expected ~1", x)
	}
}

func TestSmoothDampAngleWraps(t *testing.T) {
	var vel float64
	a := 350.0
	a = SmoothDampAngle(a, 10, &vel, 0.06, dt)
	if a <= 350 {
		t.Errorf("should move up through 360, got %v", a)
	}
}

func TestSmoothDampZeroDt(t *testing.T) {
	var vel float64
	if got := SmoothDamp(3, 5, &vel, 0.1, 0); got != 3 {
		t.Errorf("zero dt moved value to %v", got)
	}
}

func TestEdgeScale(t *testing.T) {
	c := New(DefaultConfig(), mgl64.Vec3{})
	tests := []struct {
		name string
		pos  mgl64.Vec3
		want float64
	}{
		{"center", mgl64.Vec3{0, 3, 0}, 1},
		{"halfway", mgl64.Vec3{2.5, 0, 0}, 1 + (0.4-1)*0.25},
		{"rim", mgl64.Vec3{0, 0, 5}, 0.4},
		{"beyond rim", mgl64.Vec3{0, 0, 9}, 0.4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.EdgeScale(tc.pos); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("EdgeScale() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestTargetFromInput(t *testing.T) {
	c := New(DefaultConfig(), mgl64.Vec3{})
	c.Update(Input{H: 1, V: 1}, mgl64.Vec3{}, dt)
	if got := c.Target(); got != (mgl64.Vec3{15, 0, -15}) {
		t.Errorf("Target() = %v, expected (15, 0, -15)", got)
	}

	c.Update(Input{H: 0.005, V: -0.005}, mgl64.Vec3{}, dt)
	if got := c.Target(); got[0] != 0 || got[2] != 0 {
		t.Errorf("deadzone input should level the target, got %v", got)
	}
}

func TestPrecisionBlendsGradually(t *testing.T) {
	c := New(DefaultConfig(), mgl64.Vec3{})
	c.Update(Input{H: 1, Precision: true}, mgl64.Vec3{}, dt)
	first := c.InputScale()
	if first >= 1 || first <= 0.4 {
		t.Fatalf("scale should start blending, got %v", first)
	}
	for i := 0; i < 120; i++ {
		c.Update(Input{H: 1, Precision: true}, mgl64.Vec3{}, dt)
	}
	if math.Abs(c.InputScale()-0.4) > 1e-3 {
		t.Errorf("scale = %v, expected ~0.4", c.InputScale())
	}
	if math.Abs(c.Target()[2]+15*c.InputScale()) > 1e-9 {
		t.Errorf("target z = %v does not follow the scale", c.Target()[2])
	}
}

func TestFixedUpdateFollowsTarget(t *testing.T) {
	c := New(DefaultConfig(), mgl64.Vec3{})
	for i := 0; i < 60; i++ {
		c.Update(Input{V: 1}, mgl64.Vec3{}, dt)
		c.FixedUpdate(dt)
	}
	e := c.Euler()
	if math.Abs(e[0]-15) > 0.01 || e[2] != 0 {
		t.Errorf("Euler() = %v, expected ~(15, 0, 0)", e)
	}
	if !c.Rotation().ApproxEqualThreshold(core.Euler(e[0], 0, 0), 1e-12) {
		t.Errorf("Rotation() does not match the current angles")
	}

	c.Reset()
	if c.Euler() != (mgl64.Vec3{}) || c.InputScale() != 1 {
		t.Errorf("Reset() should level the plate")
	}
}

func TestFromFrame(t *testing.T) {
	f := core.NewInputFrame()
	f.Set(core.ActionLeft)
	f.Set(core.ActionUp)
	f.Set(core.ActionPrecision)
	in := FromFrame(f)
	if in.H != -1 || in.V != 1 || !in.Precision {
		t.Errorf("FromFrame() = %+v", in)
	}
}
