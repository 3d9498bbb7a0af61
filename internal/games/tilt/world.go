package tilt

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/placement"
)

// Plate is the square board the ball rolls on. It is both the placement
// surface and the probe that finds points on it.
type Plate struct {
	Center    mgl64.Vec3
	HalfSize  float64
	Thickness float64
	rot       mgl64.Quat
}

// NewPlate creates a level plate whose top face sits at y = 0.
func NewPlate(halfSize, thickness float64) *Plate {
	return &Plate{
		Center:    mgl64.Vec3{0, -thickness / 2, 0},
		HalfSize:  halfSize,
		Thickness: thickness,
		rot:       mgl64.QuatIdent(),
	}
}

// SetRotation sets the plate orientation around its center.
func (p *Plate) SetRotation(q mgl64.Quat) { p.rot = q }

// Rotation implements placement.Surface.
func (p *Plate) Rotation() mgl64.Quat { return p.rot }

// Normal is the direction the top face points.
func (p *Plate) Normal() mgl64.Vec3 {
	return p.rot.Rotate(core.Up)
}

// Bounds returns the world box enclosing the rotated plate.
func (p *Plate) Bounds() placement.AABB {
	ext := mgl64.Vec3{p.HalfSize, p.Thickness / 2, p.HalfSize}
	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				c := p.rot.Rotate(mgl64.Vec3{sx * ext[0], sy * ext[1], sz * ext[2]}).Add(p.Center)
				for i := 0; i < 3; i++ {
					lo[i] = math.Min(lo[i], c[i])
					hi[i] = math.Max(hi[i], c[i])
				}
			}
		}
	}
	return placement.AABB{Min: lo, Max: hi}
}

// ToLocal converts a world point to plate coordinates.
func (p *Plate) ToLocal(w mgl64.Vec3) mgl64.Vec3 {
	return p.rot.Conjugate().Rotate(w.Sub(p.Center))
}

// ToWorld converts a plate-local point to world coordinates.
func (p *Plate) ToWorld(l mgl64.Vec3) mgl64.Vec3 {
	return p.rot.Rotate(l).Add(p.Center)
}

// TopAt returns the height of the top face above (x, z) and whether that
// point lies on the plate.
func (p *Plate) TopAt(x, z float64) (float64, bool) {
	n := p.Normal()
	if math.Abs(n.Y()) < 1e-9 {
		return 0, false
	}
	top := p.Center.Add(n.Mul(p.Thickness / 2))
	y := (n.Dot(top) - n.X()*x - n.Z()*z) / n.Y()

	l := p.ToLocal(mgl64.Vec3{x, y, z})
	if math.Abs(l.X()) > p.HalfSize || math.Abs(l.Z()) > p.HalfSize {
		return y, false
	}
	return y, true
}

// CastDown implements placement.Probe against the top face.
func (p *Plate) CastDown(origin mgl64.Vec3, maxDistance float64) (placement.Hit, bool) {
	y, ok := p.TopAt(origin.X(), origin.Z())
	if !ok || y > origin.Y() || origin.Y()-y > maxDistance {
		return placement.Hit{}, false
	}
	return placement.Hit{Point: mgl64.Vec3{origin.X(), y, origin.Z()}, Normal: p.Normal()}, true
}

// itemKey identifies the gameplay values of a template.
type itemKey struct {
	category placement.Category
	name     string
}

type itemMeta struct {
	points  int
	penalty int
}

// Entity is a live item on the board.
type Entity struct {
	ID       int
	Item     placement.PlacedItem
	Local    mgl64.Vec3 // position in plate space when parented
	Parented bool
	Points   int
	Penalty  int
	touching bool
}

// Entities is the item sink: it owns every live item the sampler spawns.
type Entities struct {
	plate  *Plate
	parent bool
	meta   map[itemKey]itemMeta
	next   int
	byID   map[int]*Entity
	order  []int
}

// NewEntities creates an empty sink. With parent set items are stored in
// plate space and follow its rotation.
func NewEntities(plate *Plate, parent bool, meta map[itemKey]itemMeta) *Entities {
	return &Entities{
		plate:  plate,
		parent: parent,
		meta:   meta,
		byID:   make(map[int]*Entity),
	}
}

// Spawn implements placement.Sink.
func (e *Entities) Spawn(item placement.PlacedItem) placement.Handle {
	e.next++
	m := e.meta[itemKey{item.Category, item.Template.Name}]
	ent := &Entity{
		ID:       e.next,
		Item:     item,
		Parented: e.parent,
		Points:   m.points,
		Penalty:  m.penalty,
	}
	if e.parent {
		ent.Local = e.plate.ToLocal(item.Position)
	}
	e.byID[ent.ID] = ent
	e.order = append(e.order, ent.ID)
	return ent.ID
}

// Destroy implements placement.Sink. Unknown handles are ignored.
func (e *Entities) Destroy(h placement.Handle) {
	id, ok := h.(int)
	if !ok {
		return
	}
	if _, ok := e.byID[id]; !ok {
		return
	}
	delete(e.byID, id)
	for i, v := range e.order {
		if v == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// All returns the live entities in spawn order.
func (e *Entities) All() []*Entity {
	out := make([]*Entity, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.byID[id])
	}
	return out
}

// Len returns the number of live entities.
func (e *Entities) Len() int { return len(e.order) }

// Count returns the number of live entities of category c.
func (e *Entities) Count(c placement.Category) int {
	n := 0
	for _, id := range e.order {
		if e.byID[id].Item.Category == c {
			n++
		}
	}
	return n
}

// WorldPos returns where ent currently is.
func (e *Entities) WorldPos(ent *Entity) mgl64.Vec3 {
	if ent.Parented {
		return e.plate.ToWorld(ent.Local)
	}
	return ent.Item.Position
}
