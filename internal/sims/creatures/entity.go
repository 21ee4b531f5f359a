package creatures

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Kind enumerates the creature types.
type Kind uint8

const (
	Boar Kind = iota
	Wolf
	Soldier
	Ally
	Bird
	Fish
)

// KindCount is the number of creature kinds.
const KindCount = int(Fish) + 1

type kindProfile struct {
	name      string
	speed     float64
	detection float64
	color     color.RGBA
}

// Speeds are in units per frame at 60 frames per second.
var kinds = [KindCount]kindProfile{
	Boar:    {name: "boar", speed: 0.2, detection: 30, color: color.RGBA{R: 127, G: 106, B: 79, A: 255}},
	Wolf:    {name: "wolf", speed: 0.35, detection: 50, color: color.RGBA{R: 80, G: 80, B: 80, A: 255}},
	Soldier: {name: "soldier", speed: 0.25, detection: 40, color: color.RGBA{R: 190, G: 33, B: 55, A: 255}},
	Ally:    {name: "ally", speed: 0.25, detection: 20, color: color.RGBA{R: 0, G: 121, B: 241, A: 255}},
	Bird:    {name: "bird", speed: 0.5, detection: 25, color: color.RGBA{R: 253, G: 249, B: 0, A: 255}},
	Fish:    {name: "fish", speed: 0.15, detection: 10, color: color.RGBA{R: 102, G: 191, B: 255, A: 255}},
}

// String returns the creature name.
func (k Kind) String() string {
	if int(k) >= KindCount {
		return "unknown"
	}
	return kinds[k].name
}

// Entity is one creature in the herd.
type Entity struct {
	ID             uuid.UUID
	Kind           Kind
	Position       mgl64.Vec3
	Velocity       mgl64.Vec3
	Speed          float64
	Health         float64
	Alive          bool
	DetectionRange float64
	Color          color.RGBA
}

func newEntity(id uuid.UUID, kind Kind, pos mgl64.Vec3, health float64) Entity {
	p := kinds[kind%Kind(KindCount)]
	return Entity{
		ID:             id,
		Kind:           kind,
		Position:       pos,
		Speed:          p.speed,
		Health:         health,
		Alive:          true,
		DetectionRange: p.detection,
		Color:          p.color,
	}
}

// Size returns the box footprint width, height and depth for the entity's kind.
func (e *Entity) Size() (w, h, d float64) {
	w, h, d = 2, 2.5, 2
	switch e.Kind {
	case Bird, Fish:
		w, d = 1, 1
	case Soldier, Ally:
		h = 4
	}
	return w, h, d
}
