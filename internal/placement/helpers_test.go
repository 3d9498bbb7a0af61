package placement

import (
	"github.com/go-gl/mathgl/mgl64"
)

// plate is a flat square surface of the given half size whose top sits at top.
type plate struct {
	half float64
	top  float64
	rot  mgl64.Quat
}

func newPlate(half, top float64) *plate {
	return &plate{half: half, top: top, rot: mgl64.QuatIdent()}
}

func (p *plate) Bounds() AABB {
	return AABB{
		Min: mgl64.Vec3{-p.half, p.top - 0.2, -p.half},
		Max: mgl64.Vec3{p.half, p.top, p.half},
	}
}

func (p *plate) Rotation() mgl64.Quat { return p.rot }

func (p *plate) CastDown(origin mgl64.Vec3, maxDistance float64) (Hit, bool) {
	if origin.X() < -p.half || origin.X() > p.half || origin.Z() < -p.half || origin.Z() > p.half {
		return Hit{}, false
	}
	if origin.Y()-p.top > maxDistance {
		return Hit{}, false
	}
	return Hit{Point: mgl64.Vec3{origin.X(), p.top, origin.Z()}, Normal: mgl64.Vec3{0, 1, 0}}, true
}

type missProbe struct{ casts int }

func (m *missProbe) CastDown(mgl64.Vec3, float64) (Hit, bool) {
	m.casts++
	return Hit{}, false
}

type recordingSink struct {
	next      int
	live      map[int]PlacedItem
	spawned   int
	destroyed int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{live: make(map[int]PlacedItem)}
}

func (r *recordingSink) Spawn(item PlacedItem) Handle {
	r.next++
	r.spawned++
	r.live[r.next] = item
	return r.next
}

func (r *recordingSink) Destroy(h Handle) {
	id := h.(int)
	if _, ok := r.live[id]; ok {
		delete(r.live, id)
		r.destroyed++
	}
}

type countingRegistrar struct {
	calls []int
}

func (c *countingRegistrar) RegisterTotalPickups(n int) {
	c.calls = append(c.calls, n)
}

type fixedActor struct {
	pos    mgl64.Vec3
	radius float64
}

func (a fixedActor) Position() mgl64.Vec3  { return a.pos }
func (a fixedActor) PlanarRadius() float64 { return a.radius }

// scriptedRandom replays fractions for Range and fixed values for Index and Angle.
type scriptedRandom struct {
	fractions []float64
	indices   []int
	angles    []float64
}

func (s *scriptedRandom) Range(min, max float64) float64 {
	f := 0.5
	if len(s.fractions) > 0 {
		f, s.fractions = s.fractions[0], s.fractions[1:]
	}
	return min + f*(max-min)
}

func (s *scriptedRandom) Index(int) int {
	i := 0
	if len(s.indices) > 0 {
		i, s.indices = s.indices[0], s.indices[1:]
	}
	return i
}

func (s *scriptedRandom) Angle() float64 {
	a := 0.0
	if len(s.angles) > 0 {
		a, s.angles = s.angles[0], s.angles[1:]
	}
	return a
}

func sphere(name string, r float64) Template {
	return Template{Name: name, Shape: Sphere{Radius: r}}
}

func gameRequests(pickups, hazards, holes int) []Request {
	return []Request{
		{Category: Collectible, Count: pickups, Templates: []Template{sphere("coin", 0.25), sphere("gem", 0.3)}},
		{Category: Hazard, Count: hazards, Templates: []Template{{Name: "block", Shape: Box{Size: mgl64.Vec3{0.6, 0.6, 0.6}}}}},
		{Category: Hole, Count: holes, Templates: []Template{{Name: "hole", Shape: Box{Size: mgl64.Vec3{0.8, 0.8, 0.02}}}}},
	}
}
