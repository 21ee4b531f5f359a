package ui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"newera/internal/core"
	"newera/internal/scene"
	"newera/internal/sims/creatures"
	"newera/internal/terrain"
)

// StatusLines formats the HUD text block. lastHit is the index of the entity
// hit by the most recent click, or -1.
func StatusLines(eye mgl64.Vec3, herd *creatures.Herd, mesh *scene.Mesh, lastHit int) []string {
	lines := []string{
		fmt.Sprintf("X: %.1f, Z: %.1f", eye.X(), eye.Z()),
		fmt.Sprintf("Biome: %s", terrain.Classify(eye.X(), eye.Z())),
		fmt.Sprintf("Creatures: %d/%d", herd.Live(), herd.Len()),
	}
	if lastHit >= 0 && lastHit < herd.Len() {
		e := herd.Entities()[lastHit]
		state := "wounded"
		if !e.Alive {
			state = "killed"
		}
		lines = append(lines, fmt.Sprintf("Hit %s %s (%.0f hp)", e.Kind, state, e.Health))
	}
	if mesh != nil {
		lines = append(lines, fmt.Sprintf("Cells %d  Props %d  Tris %d", mesh.Cells, mesh.Props, len(mesh.Triangles)))
	}
	return lines
}

// PanelLines lists the tunables of sim under a title line. Sims that do not
// expose parameters only get the title.
func PanelLines(sim core.Sim) []string {
	lines := []string{"Sim: " + sim.Name()}
	if p, ok := sim.(core.ParameterProvider); ok {
		lines = append(lines, p.Parameters().Lines()...)
	}
	return lines
}

// HelpLine lists the key bindings.
const HelpLine = "WASD move  Shift sprint  Click attack  M map  P params  R respawn  Esc quit"
