package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config holds the tunables of a simulation run. The world carries a Config
// instead of reading package-level constants so tests can build deterministic
// setups (e.g. zero gravity) without touching globals.
type Config struct {
	// Gravity is the constant acceleration applied to every active body,
	// in simulation units per second squared.
	Gravity rl.Vector2
	// Damping scales the reflected velocity component of a wall or plane
	// bounce. 1 is a perfectly elastic bounce; smaller values bleed energy.
	Damping float32
	// FreezeThreshold is the speed below which a frame counts against a
	// body's wake budget.
	FreezeThreshold float32
	// WakeBudget is how many slow frames a body tolerates before falling
	// asleep, and the budget restored when it is struck awake.
	WakeBudget int
	// Arena is the containment rectangle every body is clamped into.
	Arena Rect
}

// DefaultConfig returns the reference scene tunables: strong downward
// gravity, perfectly elastic walls, and a 640x480 arena.
func DefaultConfig() Config {
	return Config{
		Gravity:         rl.NewVector2(0, -980),
		Damping:         1.0,
		FreezeThreshold: 1e-4,
		WakeBudget:      DefaultWakeBudget,
		Arena:           Rect{Left: 0, Bottom: 0, Right: 640, Top: 480},
	}
}
