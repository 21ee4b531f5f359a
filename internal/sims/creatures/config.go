package creatures

import (
	"fmt"
	"math"
	"strconv"

	"newera/internal/terrain"
)

// Params holds the tunable thresholds of the herd.
type Params struct {
	Count        int     `yaml:"count"`
	SpawnMargin  int     `yaml:"spawn_margin"`
	WanderChance int     `yaml:"wander_chance_percent"`
	AttackRange  float64 `yaml:"attack_range"`
	AttackDamage float64 `yaml:"attack_damage"`
	StartHealth  float64 `yaml:"start_health"`
	GroundOffset float64 `yaml:"ground_offset"`
}

// Config controls the herd simulation.
type Config struct {
	Seed   int64  `yaml:"seed"`
	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed: 1337,
		Params: Params{
			Count:        50,
			SpawnMargin:  100,
			WanderChance: 2,
			AttackRange:  5,
			AttackDamage: 50,
			StartHealth:  100,
			GroundOffset: 1,
		},
	}
}

// Validate reports the first parameter outside the range the herd can run with.
func (p Params) Validate() error {
	switch {
	case p.Count < 0:
		return fmt.Errorf("count %d is negative", p.Count)
	case p.SpawnMargin < 0 || p.SpawnMargin > terrain.WorldSize/2:
		return fmt.Errorf("spawn_margin %d outside [0, %d]", p.SpawnMargin, terrain.WorldSize/2)
	case p.WanderChance < 0 || p.WanderChance > 100:
		return fmt.Errorf("wander_chance_percent %d outside [0, 100]", p.WanderChance)
	case !(p.AttackRange >= 0):
		return fmt.Errorf("attack_range %v is negative", p.AttackRange)
	case !(p.AttackDamage >= 0):
		return fmt.Errorf("attack_damage %v is negative", p.AttackDamage)
	case !(p.StartHealth > 0):
		return fmt.Errorf("start_health %v must be positive", p.StartHealth)
	case math.IsNaN(p.GroundOffset) || math.IsInf(p.GroundOffset, 0):
		return fmt.Errorf("ground_offset %v is not finite", p.GroundOffset)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields of c from a string map. Unparseable values and values
// Validate rejects are ignored.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	ints := []struct {
		key string
		dst func(*Params) *int
	}{
		{"count", func(p *Params) *int { return &p.Count }},
		{"spawn_margin", func(p *Params) *int { return &p.SpawnMargin }},
		{"wander_chance", func(p *Params) *int { return &p.WanderChance }},
	}
	for _, f := range ints {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				c.tryParams(func(p *Params) { *f.dst(p) = parsed })
			}
		}
	}
	floats := []struct {
		key string
		dst func(*Params) *float64
	}{
		{"attack_range", func(p *Params) *float64 { return &p.AttackRange }},
		{"attack_damage", func(p *Params) *float64 { return &p.AttackDamage }},
		{"start_health", func(p *Params) *float64 { return &p.StartHealth }},
		{"ground_offset", func(p *Params) *float64 { return &p.GroundOffset }},
	}
	for _, f := range floats {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				c.tryParams(func(p *Params) { *f.dst(p) = parsed })
			}
		}
	}
}

// tryParams keeps the change made by set only if the result still validates.
func (c *Config) tryParams(set func(*Params)) {
	next := c.Params
	set(&next)
	if next.Validate() == nil {
		c.Params = next
	}
}
