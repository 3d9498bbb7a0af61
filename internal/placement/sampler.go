package placement

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// Precondition errors. PlaceAll and ClearAndRespawn return them without
// touching the current session.
var (
	ErrNoSurface = errors.New("placement: surface is missing")
	ErrNoProbe   = errors.New("placement: surface probe is missing")
	ErrNoSink    = errors.New("placement: item sink is missing")
)

// FlatRotation lays a template authored facing the viewer flat on the surface.
var FlatRotation = core.Euler(90, 0, 0)

// Deps are the collaborators a Sampler works against. Actor and Registrar
// are optional; Random defaults to a time-seeded RandSource.
type Deps struct {
	Surface   Surface
	Probe     Probe
	Random    Random
	Sink      Sink
	Actor     Actor
	Registrar PickupRegistrar
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Sampler) {
		if l != nil {
			s.logger = l
		}
	}
}

// Stats summarizes the last placement session.
type Stats struct {
	Requested map[Category]int
	Placed    map[Category]int
	Fallbacks map[Category]int
	Attempts  int
}

func newStats() Stats {
	return Stats{
		Requested: make(map[Category]int),
		Placed:    make(map[Category]int),
		Fallbacks: make(map[Category]int),
	}
}

// Total sums a per-category counter.
func Total(m map[Category]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

type entry struct {
	item   PlacedItem
	handle Handle
}

// Sampler owns one placement session at a time. It is not safe for
// concurrent use.
type Sampler struct {
	cfg      Config
	deps     Deps
	logger   *log.Logger
	requests []Request
	session  []entry
	stats    Stats
}

// New creates a sampler.
func New(cfg Config, deps Deps, opts ...Option) *Sampler {
	if deps.Random == nil {
		deps.Random = NewRandSource(time.Now().UnixNano())
	}
	if cfg.MaxAttemptsPerItem < 0 {
		cfg.MaxAttemptsPerItem = 0
	}
	s := &Sampler{
		cfg:    cfg,
		deps:   deps,
		logger: log.Default().WithPrefix("placement"),
		stats:  newStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the sampler configuration.
func (s *Sampler) Config() Config {
	return s.cfg
}

// SetActor replaces the protected actor used by later sessions.
func (s *Sampler) SetActor(a Actor) {
	s.deps.Actor = a
}

// SetRegistrar replaces the pickup registrar used by later sessions.
func (s *Sampler) SetRegistrar(r PickupRegistrar) {
	s.deps.Registrar = r
}

// Bounds returns the inset planar bounds candidates are drawn from.
func (s *Sampler) Bounds() Bounds {
	if s.deps.Surface == nil {
		return Bounds{}
	}
	return InsetBounds(s.deps.Surface.Bounds(), s.cfg.WallInset)
}

// Items returns a copy of the items in the current session.
func (s *Sampler) Items() []PlacedItem {
	items := make([]PlacedItem, len(s.session))
	for i, e := range s.session {
		items[i] = e.item
	}
	return items
}

// Stats returns a copy of the last session's counters.
func (s *Sampler) Stats() Stats {
	out := newStats()
	for k, v := range s.stats.Requested {
		out.Requested[k] = v
	}
	for k, v := range s.stats.Placed {
		out.Placed[k] = v
	}
	for k, v := range s.stats.Fallbacks {
		out.Fallbacks[k] = v
	}
	out.Attempts = s.stats.Attempts
	return out
}

// PlaceAll starts a new session with requests. Items from the previous
// session are destroyed first. Categories are placed in the order
// Collectible, Hazard, Hole regardless of the order of requests.
//
// Each item gets up to MaxAttemptsPerItem trials: pick a template, draw a
// planar point inside Bounds, probe down to the surface, reject on overlap
// with any earlier item or the actor. When every trial fails the item is
// placed at a random point at the surface's vertical center without an
// overlap check, so the requested count is always met and dense layouts may
// break the spacing guarantee for those items. Such items have Fallback set.
//
// The number of placed collectibles is reported to the registrar. If a
// required collaborator is missing nothing is placed or destroyed.
func (s *Sampler) PlaceAll(requests []Request) ([]PlacedItem, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.requests = cloneRequests(requests)
	s.clear()
	return s.place(), nil
}

// ClearAndRespawn destroys every item of the current session and places a
// fresh set from the requests given to the last PlaceAll.
func (s *Sampler) ClearAndRespawn() ([]PlacedItem, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.clear()
	return s.place(), nil
}

// Release drops the item identified by h from the session without destroying
// it. It returns false if h is not part of the session.
func (s *Sampler) Release(h Handle) bool {
	for i, e := range s.session {
		if e.handle == h {
			s.session = append(s.session[:i], s.session[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Sampler) validate() error {
	var err error
	switch {
	case s.deps.Surface == nil:
		err = ErrNoSurface
	case s.deps.Probe == nil:
		err = ErrNoProbe
	case s.deps.Sink == nil:
		err = ErrNoSink
	}
	if err != nil {
		s.logger.Warn("placement skipped", "error", err)
	}
	return err
}

func (s *Sampler) clear() {
	for i := len(s.session) - 1; i >= 0; i-- {
		s.deps.Sink.Destroy(s.session[i].handle)
	}
	s.session = s.session[:0]
}

func (s *Sampler) place() []PlacedItem {
	s.stats = newStats()
	box := s.deps.Surface.Bounds()
	bounds := InsetBounds(box, s.cfg.WallInset)

	for _, req := range s.requests {
		s.stats.Requested[req.Category] += max(0, req.Count)
		s.placeBatch(req, box, bounds)
	}

	if s.deps.Registrar != nil {
		s.deps.Registrar.RegisterTotalPickups(s.stats.Placed[Collectible])
	}

	s.logger.Debug("placement session done",
		"requested", Total(s.stats.Requested),
		"placed", Total(s.stats.Placed),
		"fallbacks", Total(s.stats.Fallbacks),
		"attempts", s.stats.Attempts,
	)
	return s.Items()
}

func (s *Sampler) placeBatch(req Request, box AABB, bounds Bounds) {
	if len(req.Templates) == 0 || req.Count <= 0 {
		return
	}
	for i := 0; i < req.Count; i++ {
		item, ok := s.sample(req, box, bounds)
		if !ok {
			item = s.fallback(req, box, bounds)
			s.stats.Fallbacks[req.Category]++
			s.logger.Debug("fallback placement",
				"category", req.Category,
				"template", item.Template.Name,
				"x", fmt.Sprintf("%.2f", item.Position.X()),
				"z", fmt.Sprintf("%.2f", item.Position.Z()),
			)
		}
		s.commit(item)
	}
}

func (s *Sampler) sample(req Request, box AABB, bounds Bounds) (PlacedItem, bool) {
	rng := s.deps.Random
	top := box.Max.Y() + s.cfg.ProbeHeight

	for attempt := 0; attempt < s.cfg.MaxAttemptsPerItem; attempt++ {
		s.stats.Attempts++
		tmpl := req.Templates[rng.Index(len(req.Templates))]
		origin := mgl64.Vec3{
			rng.Range(bounds.MinX, bounds.MaxX),
			top,
			rng.Range(bounds.MinZ, bounds.MaxZ),
		}

		hit, ok := s.deps.Probe.CastDown(origin, s.cfg.ProbeDistance)
		if !ok {
			continue
		}

		radius := tmpl.PlanarRadius()
		if s.overlaps(hit.Point, radius, req.Category) {
			continue
		}
		return s.build(tmpl, req.Category, hit.Point, radius, false), true
	}
	return PlacedItem{}, false
}

func (s *Sampler) fallback(req Request, box AABB, bounds Bounds) PlacedItem {
	rng := s.deps.Random
	tmpl := req.Templates[rng.Index(len(req.Templates))]
	surface := mgl64.Vec3{
		rng.Range(bounds.MinX, bounds.MaxX),
		box.Center().Y(),
		rng.Range(bounds.MinZ, bounds.MaxZ),
	}
	return s.build(tmpl, req.Category, surface, tmpl.PlanarRadius(), true)
}

// build orients the item and rests its collider on the surface point.
func (s *Sampler) build(tmpl Template, c Category, surface mgl64.Vec3, radius float64, fallback bool) PlacedItem {
	var yaw float64
	if c == Hole && s.cfg.HoleRandomYaw {
		yaw = s.deps.Random.Angle()
	}
	rot := Orientation(s.cfg, s.surfaceRotation(), tmpl.rotation(), c, yaw)
	lift := tmpl.HalfHeight(rot) + s.cfg.YOffset

	return PlacedItem{
		Template: tmpl,
		Category: c,
		Position: surface.Add(core.Up.Mul(lift)),
		Rotation: rot,
		Radius:   radius,
		Fallback: fallback,
	}
}

func (s *Sampler) commit(item PlacedItem) {
	h := s.deps.Sink.Spawn(item)
	s.session = append(s.session, entry{item: item, handle: h})
	s.stats.Placed[item.Category]++
}

func (s *Sampler) surfaceRotation() mgl64.Quat {
	if !s.cfg.InheritSurfaceRotation {
		return mgl64.QuatIdent()
	}
	return s.deps.Surface.Rotation()
}

// overlaps checks a candidate against the session and the actor. Between two
// items the larger of their category spacings applies. The actor keeps at
// least ActorPadding clear.
func (s *Sampler) overlaps(p mgl64.Vec3, radius float64, c Category) bool {
	spacing := RequiredSpacing(c, s.cfg)
	for _, e := range s.session {
		gap := max(spacing, RequiredSpacing(e.item.Category, s.cfg))
		if Overlaps(p, radius, e.item.Position, e.item.Radius, gap) {
			return true
		}
	}
	if a := s.deps.Actor; a != nil {
		if Overlaps(p, radius, a.Position(), a.PlanarRadius(), max(spacing, s.cfg.ActorPadding)) {
			return true
		}
	}
	return false
}

// Overlaps reports whether two footprints are closer on the ground plane than
// the sum of their radii plus spacing.
func Overlaps(a mgl64.Vec3, ra float64, b mgl64.Vec3, rb float64, spacing float64) bool {
	return core.PlanarDistance(a, b) < ra+rb+spacing
}

// Violations counts item pairs closer than their required spacing. strict
// counts only pairs where neither item is a fallback placement, which the
// sampler guarantees to be zero.
func Violations(items []PlacedItem, cfg Config) (total, strict int) {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			gap := max(RequiredSpacing(a.Category, cfg), RequiredSpacing(b.Category, cfg))
			if Overlaps(a.Position, a.Radius, b.Position, b.Radius, gap) {
				total++
				if !a.Fallback && !b.Fallback {
					strict++
				}
			}
		}
	}
	return total, strict
}

// Orientation composes the rotation of a new item. Holes start from
// FlatRotation when HoleForceUp is set and get yawDeg about the vertical axis
// when HoleRandomYaw is set; the result is surface * base * template. Other
// categories are surface * template.
func Orientation(cfg Config, surface, template mgl64.Quat, c Category, yawDeg float64) mgl64.Quat {
	if c != Hole {
		return surface.Mul(template)
	}
	base := mgl64.QuatIdent()
	if cfg.HoleForceUp {
		base = FlatRotation
	}
	if cfg.HoleRandomYaw {
		base = core.AngleAxis(yawDeg, core.Up).Mul(base)
	}
	return surface.Mul(base).Mul(template)
}

func cloneRequests(requests []Request) []Request {
	out := make([]Request, len(requests))
	for i, r := range requests {
		r.Templates = append([]Template(nil), r.Templates...)
		out[i] = r
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}
