// Package creatures simulates the wandering herd that populates the terrain.
package creatures

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"newera/internal/core"
	"newera/internal/terrain"
)

// Herd owns every creature in the world. Entities are only ever marked dead,
// never removed, so Len is constant between resets.
type Herd struct {
	cfg      Config
	entities []Entity
	rng      *core.RNG
}

// New returns a herd using the default configuration.
func New() *Herd {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a herd configured from the provided options. Call
// Reset to spawn the creatures.
func NewWithConfig(cfg Config) *Herd {
	return &Herd{cfg: cfg, rng: core.NewRNG(cfg.Seed)}
}

// Name returns the simulation identifier.
func (h *Herd) Name() string { return "creatures" }

// Entities exposes the collection in spawn order.
func (h *Herd) Entities() []Entity { return h.entities }

// Len is the total number of entities, dead or alive.
func (h *Herd) Len() int { return len(h.entities) }

// Live counts entities that are still alive.
func (h *Herd) Live() int {
	n := 0
	for i := range h.entities {
		if h.entities[i].Alive {
			n++
		}
	}
	return n
}

// Reset respawns the herd. A zero seed reuses the configured seed.
func (h *Herd) Reset(seed int64) {
	if seed == 0 {
		seed = h.cfg.Seed
	}
	h.rng = core.NewRNG(seed)
	p := h.cfg.Params
	lo, hi := p.SpawnMargin, terrain.WorldSize-p.SpawnMargin
	h.entities = make([]Entity, 0, max(p.Count, 0))
	for i := 0; i < p.Count; i++ {
		x := float64(h.rng.IntRange(lo, hi))
		z := float64(h.rng.IntRange(lo, hi))
		kind := Kind(h.rng.IntRange(0, KindCount-1))
		id, err := uuid.NewRandomFromReader(h.rng)
		if err != nil {
			id = uuid.Nil
		}
		pos := mgl64.Vec3{x, terrain.GroundHeight(x, z) + p.GroundOffset, z}
		h.entities = append(h.entities, newEntity(id, kind, pos, p.StartHealth))
	}
}

// Step runs one frame of sensing, steering and movement for every live entity.
func (h *Herd) Step(eye mgl64.Vec3) {
	for i := range h.entities {
		e := &h.entities[i]
		if !e.Alive {
			continue
		}
		h.steer(e, eye)
		h.move(e)
	}
}

func (h *Herd) steer(e *Entity, eye mgl64.Vec3) {
	toEye := eye.Sub(e.Position)
	dist := toEye.Len()
	if dist < e.DetectionRange {
		if dist > 0 {
			e.Velocity = toEye.Mul(e.Speed / dist)
		}
		return
	}
	if h.rng.Chance(h.cfg.Params.WanderChance) {
		heading := float64(h.rng.IntRange(0, 359)) * math.Pi / 180
		e.Velocity = mgl64.Vec3{math.Cos(heading), 0, math.Sin(heading)}.Mul(e.Speed)
	}
}

// move integrates one frame and reflects off the world edge. The reflection
// only flips the velocity, so an entity can sit outside the world for a frame.
func (h *Herd) move(e *Entity) {
	e.Position = e.Position.Add(e.Velocity)
	e.Position[1] = terrain.GroundHeight(e.Position.X(), e.Position.Z()) + h.cfg.Params.GroundOffset
	if !terrain.InBounds(e.Position.X(), e.Position.Z()) {
		e.Velocity = e.Velocity.Mul(-1)
	}
}

// Attack strikes the first live entity, in collection order, that is closer
// to eye than the attack range. At most one entity is hit. It returns the
// index of the entity that was hit, or -1.
func (h *Herd) Attack(eye mgl64.Vec3) int {
	p := h.cfg.Params
	for i := range h.entities {
		e := &h.entities[i]
		if !e.Alive {
			continue
		}
		if eye.Sub(e.Position).Len() >= p.AttackRange {
			continue
		}
		e.Health -= p.AttackDamage
		if e.Health <= 0 {
			e.Alive = false
		}
		return i
	}
	return -1
}
