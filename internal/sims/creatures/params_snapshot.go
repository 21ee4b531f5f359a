package creatures

import (
	"strconv"

	"newera/internal/core"
)

// Parameters describes the herd's tunables and live counters for the HUD.
func (h *Herd) Parameters() core.ParameterSnapshot {
	p := h.cfg.Params
	kindCounts := make([]int, KindCount)
	for i := range h.entities {
		if h.entities[i].Alive {
			kindCounts[h.entities[i].Kind]++
		}
	}
	alive := make([]core.Parameter, 0, KindCount)
	for k := 0; k < KindCount; k++ {
		name := Kind(k).String()
		alive = append(alive, intParam("alive_"+name, name, kindCounts[k]))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Herd",
			Params: []core.Parameter{
				int64Param("seed", "Seed", h.cfg.Seed),
				intParam("count", "Count", p.Count),
				intParam("wander_chance", "Wander chance %", p.WanderChance),
			},
		},
		{
			Name: "Combat",
			Params: []core.Parameter{
				floatParam("attack_range", "Attack range", p.AttackRange),
				floatParam("attack_damage", "Attack damage", p.AttackDamage),
				floatParam("start_health", "Start health", p.StartHealth),
			},
		},
		{Name: "Alive", Params: alive},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}
