package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the body population and advances it one frame at a time.
// A single goroutine drives the world; nothing here is safe for concurrent
// use, and nothing needs to be.
type World struct {
	Config Config
	Bodies []*Body
	Planes []Plane
}

// NewWorld returns an empty world with the given tunables.
func NewWorld(cfg Config) *World {
	return &World{Config: cfg}
}

// AddBody appends a body. Index order is update order, which also decides
// how simultaneous contacts resolve.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// AddPlane adds a static plane every body collides against.
func (w *World) AddPlane(p Plane) {
	w.Planes = append(w.Planes, p)
}

// Step advances the simulation by dt seconds. Bodies update in index order;
// each update runs gravity, integration, collision against every other body,
// plane contacts, arena containment, then the sleep countdown. A body reads
// the current, possibly already-updated-this-frame, state of its neighbours,
// so stacked simultaneous contacts are order-dependent. That is an accepted
// approximation, not a simultaneous solve.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		w.updateBody(b, dt)
	}
}

// updateBody runs one body's frame. Asleep bodies skip the whole update and
// act as static obstacles until a collision wakes them.
func (w *World) updateBody(b *Body, dt float32) {
	if b.Sleep.Asleep() {
		return
	}

	b.Velocity = rl.Vector2Add(b.Velocity, rl.Vector2Scale(w.Config.Gravity, dt))
	b.Position = rl.Vector2Add(b.Position, rl.Vector2Scale(b.Velocity, dt))

	for _, other := range w.Bodies {
		if other.ID == b.ID {
			continue
		}
		if pen, hit := Detect(b.Circle(), other.Circle()); hit {
			Resolve(b, other, pen, w.Config)
		}
	}

	for _, p := range w.Planes {
		if pen, hit := Detect(b.Circle(), p); hit {
			ResolvePlane(b, pen, w.Config.Damping)
		}
	}

	Contain(b, w.Config.Arena, w.Config.Damping)

	b.Sleep.Tick(b.Speed(), w.Config.FreezeThreshold)
}

// AsleepCount returns how many bodies are currently asleep.
func (w *World) AsleepCount() int {
	n := 0
	for _, b := range w.Bodies {
		if b.Sleep.Asleep() {
			n++
		}
	}
	return n
}
