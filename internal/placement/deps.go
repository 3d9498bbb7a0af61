package placement

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface is the playable area items are placed on.
type Surface interface {
	// Bounds returns the world-space bounding box of the surface collider.
	Bounds() AABB
	// Rotation is the surface's own orientation.
	Rotation() mgl64.Quat
}

// Hit is the result of a successful downward probe.
type Hit struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// Probe casts straight down onto the surface geometry.
type Probe interface {
	// CastDown reports the first surface point below origin within maxDistance.
	CastDown(origin mgl64.Vec3, maxDistance float64) (Hit, bool)
}

// Random is the source of every random decision the sampler makes.
type Random interface {
	// Range returns a uniform value in [min, max). It returns min when max <= min.
	Range(min, max float64) float64
	// Index returns a uniform index in [0, n).
	Index(n int) int
	// Angle returns a uniform angle in degrees in [0, 360).
	Angle() float64
}

// Handle identifies a live item created by a Sink. Handles must be comparable.
type Handle any

// Sink creates and destroys live items.
type Sink interface {
	Spawn(item PlacedItem) Handle
	Destroy(h Handle)
}

// Actor is the protected object placements keep clear of.
type Actor interface {
	Position() mgl64.Vec3
	PlanarRadius() float64
}

// PickupRegistrar receives the number of collectibles placed in a session.
type PickupRegistrar interface {
	RegisterTotalPickups(count int)
}

// RandSource implements Random on top of math/rand.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a Random seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandSource) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.rng.Float64()*(max-min)
}

func (r *RandSource) Index(n int) int {
	if n <= 1 {
		return 0
	}
	return r.rng.Intn(n)
}

func (r *RandSource) Angle() float64 {
	return r.rng.Float64() * 360
}
