//go:build !ebiten

package ui

import "newera/internal/sims/creatures"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*creatures.Herd) *HUD { return nil }

// RecordAttack is a no-op in the headless build.
func (h *HUD) RecordAttack(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, any, any) {}
