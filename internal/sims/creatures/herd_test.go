package creatures

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"newera/internal/terrain"
)

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Params.WanderChance = 0
	return cfg
}

func herdWith(cfg Config, es ...Entity) *Herd {
	h := NewWithConfig(cfg)
	h.entities = es
	return h
}

func placed(kind Kind, x, z float64) Entity {
	return newEntity(uuid.Nil, kind, mgl64.Vec3{x, terrain.GroundHeight(x, z) + 1, z}, 100)
}

var farEye = mgl64.Vec3{100, 100, 100}

func TestResetSpawnsHerd(t *testing.T) {
	h := New()
	h.Reset(0)

	if h.Len() != 50 || h.Live() != 50 {
		t.Fatalf("expected 50 live entities, got len=%d live=%d", h.Len(), h.Live())
	}
	ids := map[uuid.UUID]bool{}
	for i, e := range h.Entities() {
		x, z := e.Position.X(), e.Position.Z()
		if x < 100 || x > terrain.WorldSize-100 || z < 100 || z > terrain.WorldSize-100 {
			t.Fatalf("entity %d spawned outside margin at (%v,%v)", i, x, z)
		}
		if x != math.Trunc(x) || z != math.Trunc(z) {
			t.Fatalf("entity %d spawn coordinates not integral: (%v,%v)", i, x, z)
		}
		if want := terrain.GroundHeight(x, z) + 1; e.Position.Y() != want {
			t.Fatalf("entity %d y=%f, want %f", i, e.Position.Y(), want)
		}
		if int(e.Kind) >= KindCount {
			t.Fatalf("entity %d has kind %d", i, e.Kind)
		}
		if e.Health != 100 || !e.Alive {
			t.Fatalf("entity %d starts with health=%f alive=%v", i, e.Health, e.Alive)
		}
		if e.Velocity != (mgl64.Vec3{}) {
			t.Fatalf("entity %d starts moving: %v", i, e.Velocity)
		}
		ids[e.ID] = true
	}
	if len(ids) != 50 {
		t.Fatalf("expected 50 distinct ids, got %d", len(ids))
	}
}

func TestResetDeterministic(t *testing.T) {
	a, b := New(), New()
	a.Reset(99)
	b.Reset(99)
	for i := range a.Entities() {
		if a.Entities()[i] != b.Entities()[i] {
			t.Fatalf("entity %d differs between equal seeds", i)
		}
	}
	for i := 0; i < 300; i++ {
		a.Step(farEye)
		b.Step(farEye)
	}
	for i := range a.Entities() {
		if a.Entities()[i].Position != b.Entities()[i].Position {
			t.Fatalf("entity %d diverged after stepping", i)
		}
	}

	b.Reset(100)
	if a.Entities()[0].Position == b.Entities()[0].Position && a.Entities()[1].Position == b.Entities()[1].Position {
		t.Fatal("different seeds should spawn different herds")
	}
}

func TestChaseVelocityPointsAtEye(t *testing.T) {
	h := herdWith(quietConfig(), placed(Wolf, 3000, 3000))
	e := &h.entities[0]
	eye := e.Position.Add(mgl64.Vec3{20, 3, -10})
	start := e.Position

	h.Step(eye)

	if got := e.Velocity.Len(); math.Abs(got-e.Speed) > 1e-9 {
		t.Fatalf("chase speed=%f, want %f", got, e.Speed)
	}
	dir := eye.Sub(start).Normalize()
	if dot := e.Velocity.Normalize().Dot(dir); math.Abs(dot-1) > 1e-9 {
		t.Fatalf("velocity %v does not point at eye (dot=%f)", e.Velocity, dot)
	}
	if e.Position.X() != start.X()+e.Velocity.X() || e.Position.Z() != start.Z()+e.Velocity.Z() {
		t.Fatalf("position %v not integrated from %v", e.Position, start)
	}
	if want := terrain.GroundHeight(e.Position.X(), e.Position.Z()) + 1; e.Position.Y() != want {
		t.Fatalf("y=%f not snapped to ground %f", e.Position.Y(), want)
	}
}

func TestChaseIgnoredOutsideDetectionRange(t *testing.T) {
	h := herdWith(quietConfig(), placed(Fish, 3000, 3000))
	e := &h.entities[0]
	eye := e.Position.Add(mgl64.Vec3{e.DetectionRange + 1, 0, 0})
	h.Step(eye)
	if e.Velocity != (mgl64.Vec3{}) {
		t.Fatalf("fish outside range started moving: %v", e.Velocity)
	}
}

func TestReflectAfterLeavingWorld(t *testing.T) {
	cases := []struct {
		name string
		x, z float64
		vel  mgl64.Vec3
	}{
		{"east", terrain.WorldSize - 0.1, 8000, mgl64.Vec3{0.5, 0, 0.1}},
		{"west", 0.1, 8000, mgl64.Vec3{-0.5, 0, 0.1}},
		{"north", 12000, terrain.WorldSize - 0.1, mgl64.Vec3{0.2, 0, 0.5}},
		{"south", 12000, 0.1, mgl64.Vec3{0.2, 0, -0.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := placed(Boar, tc.x, tc.z)
			e.Velocity = tc.vel
			h := herdWith(quietConfig(), e)

			h.Step(farEye)
			got := h.entities[0]
			if terrain.InBounds(got.Position.X(), got.Position.Z()) {
				t.Fatalf("expected one-frame overshoot, position %v is inside", got.Position)
			}
			if got.Velocity != tc.vel.Mul(-1) {
				t.Fatalf("velocity %v not reflected from %v", got.Velocity, tc.vel)
			}

			h.Step(farEye)
			got = h.entities[0]
			if !terrain.InBounds(got.Position.X(), got.Position.Z()) {
				t.Fatalf("entity did not return inside: %v", got.Position)
			}
			if got.Velocity != tc.vel.Mul(-1) {
				t.Fatalf("velocity flipped again inside the world: %v", got.Velocity)
			}
		})
	}
}

func TestAttackTwoHitsKill(t *testing.T) {
	e := placed(Boar, 4000, 4000)
	h := herdWith(quietConfig(), e)
	eye := e.Position.Add(mgl64.Vec3{3, 0, 0})

	if hit := h.Attack(eye); hit != 0 {
		t.Fatalf("first attack hit %d, want 0", hit)
	}
	if got := h.entities[0]; got.Health != 50 || !got.Alive {
		t.Fatalf("after one hit health=%f alive=%v", got.Health, got.Alive)
	}
	if hit := h.Attack(eye); hit != 0 {
		t.Fatalf("second attack hit %d, want 0", hit)
	}
	if got := h.entities[0]; got.Health != 0 || got.Alive {
		t.Fatalf("after two hits health=%f alive=%v", got.Health, got.Alive)
	}
	if hit := h.Attack(eye); hit != -1 {
		t.Fatalf("dead entity was hit again (%d)", hit)
	}
	if h.Len() != 1 || h.Live() != 0 {
		t.Fatalf("collection changed size: len=%d live=%d", h.Len(), h.Live())
	}

	before := h.entities[0]
	h.Step(eye)
	if h.entities[0] != before {
		t.Fatal("dead entity was updated")
	}
}

func TestAttackHitsFirstInRangeOnly(t *testing.T) {
	near := placed(Wolf, 4000, 4000)
	nearer := placed(Bird, 4000, 4000)
	far := placed(Soldier, 4100, 4000)
	eye := near.Position.Add(mgl64.Vec3{4, 0, 0})
	nearer.Position = eye.Add(mgl64.Vec3{0.5, 0, 0})

	h := herdWith(quietConfig(), far, near, nearer)
	if hit := h.Attack(eye); hit != 1 {
		t.Fatalf("attack hit %d, want first in-range entity 1", hit)
	}
	if h.entities[0].Health != 100 || h.entities[2].Health != 100 {
		t.Fatal("attack damaged more than one entity")
	}
	if h.entities[1].Health != 50 {
		t.Fatalf("hit entity health=%f, want 50", h.entities[1].Health)
	}
}

func TestAttackRangeIsStrict(t *testing.T) {
	e := placed(Ally, 4000, 4000)
	h := herdWith(quietConfig(), e)
	if hit := h.Attack(e.Position.Add(mgl64.Vec3{0, 0, 5})); hit != -1 {
		t.Fatal("entity exactly at attack range must not be hit")
	}
}

func TestWanderRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 4
	h := herdWith(cfg, placed(Boar, 5000, 9000))
	e := &h.entities[0]

	const frames = 20000
	changes := 0
	moved := false
	prevVel := e.Velocity
	prevPos := e.Position
	for i := 0; i < frames; i++ {
		h.Step(farEye)
		if e.Velocity != prevVel {
			changes++
			if math.Abs(e.Velocity.Len()-e.Speed) > 1e-9 || e.Velocity.Y() != 0 {
				t.Fatalf("wander velocity %v has wrong shape", e.Velocity)
			}
		}
		if changes == 0 && e.Position != prevPos {
			t.Fatal("entity moved before any wander roll succeeded")
		}
		if e.Position != prevPos {
			moved = true
		}
		prevVel, prevPos = e.Velocity, e.Position
	}
	rate := float64(changes) / frames
	if rate < 0.012 || rate > 0.028 {
		t.Fatalf("wander rate %.4f, want about 0.02", rate)
	}
	if !moved {
		t.Fatal("entity never moved")
	}
}

func TestEntitySize(t *testing.T) {
	cases := []struct {
		kind    Kind
		w, h, d float64
	}{
		{Boar, 2, 2.5, 2},
		{Wolf, 2, 2.5, 2},
		{Soldier, 2, 4, 2},
		{Ally, 2, 4, 2},
		{Bird, 1, 2.5, 1},
		{Fish, 1, 2.5, 1},
	}
	for _, tc := range cases {
		e := placed(tc.kind, 1000, 1000)
		w, h, d := e.Size()
		if w != tc.w || h != tc.h || d != tc.d {
			t.Errorf("%v size=(%v,%v,%v), want (%v,%v,%v)", tc.kind, w, h, d, tc.w, tc.h, tc.d)
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"count":         "7",
		"seed":          "11",
		"wander_chance": "250",
		"attack_range":  "9.5",
		"attack_damage": "nope",
		"ground_offset": "0.5",
		"start_health":  "-10",
	})
	if cfg.Params.Count != 7 || cfg.Seed != 11 {
		t.Fatalf("count/seed not applied: %+v", cfg)
	}
	if cfg.Params.WanderChance != 2 {
		t.Fatalf("out of range wander chance should be ignored, got %d", cfg.Params.WanderChance)
	}
	if cfg.Params.AttackRange != 9.5 || cfg.Params.AttackDamage != 50 || cfg.Params.StartHealth != 100 {
		t.Fatalf("combat overrides wrong: %+v", cfg.Params)
	}
	if cfg.Params.GroundOffset != 0.5 {
		t.Fatalf("ground_offset not applied: %v", cfg.Params.GroundOffset)
	}

	h := NewWithConfig(cfg)
	h.Reset(0)
	if h.Len() != 7 {
		t.Fatalf("herd size %d, want 7", h.Len())
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultConfig().Params.Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	cases := []struct {
		name string
		mut  func(*Params)
	}{
		{"negative count", func(p *Params) { p.Count = -3 }},
		{"margin past centre", func(p *Params) { p.SpawnMargin = terrain.WorldSize }},
		{"wander over 100", func(p *Params) { p.WanderChance = 101 }},
		{"negative range", func(p *Params) { p.AttackRange = -1 }},
		{"negative damage", func(p *Params) { p.AttackDamage = -1 }},
		{"zero health", func(p *Params) { p.StartHealth = 0 }},
		{"nan health", func(p *Params) { p.StartHealth = math.NaN() }},
		{"infinite offset", func(p *Params) { p.GroundOffset = math.Inf(1) }},
	}
	for _, tc := range cases {
		p := DefaultConfig().Params
		tc.mut(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestResetNegativeCountSpawnsNothing(t *testing.T) {
	cfg := quietConfig()
	cfg.Params.Count = -3
	h := NewWithConfig(cfg)
	h.Reset(0)
	if h.Len() != 0 {
		t.Fatalf("herd size %d, want 0", h.Len())
	}
}

func TestParametersReportAlive(t *testing.T) {
	h := herdWith(quietConfig(), placed(Boar, 1000, 1000), placed(Boar, 2000, 1000), placed(Fish, 3000, 1000))
	h.entities[1].Alive = false

	snap := h.Parameters()
	var alive map[string]string
	for _, g := range snap.Groups {
		if g.Name != "Alive" {
			continue
		}
		alive = map[string]string{}
		for _, p := range g.Params {
			alive[p.Label] = p.Value
		}
	}
	if alive["boar"] != "1" || alive["fish"] != "1" || alive["wolf"] != "0" {
		t.Fatalf("unexpected alive counts %v", alive)
	}
}
