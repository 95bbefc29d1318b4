package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is a simulated circular mass. Position and velocity are in simulation
// space (Y up). Mass is an independent positive scalar even though the
// default scene seeds it equal to the radius. Color is carried for the
// renderer and never read by the physics code.
type Body struct {
	// ID is the body's stable index in the world, used to skip
	// self-interaction in the pair loop.
	ID       int
	Position rl.Vector2
	Velocity rl.Vector2
	Radius   float32
	Mass     float32
	Color    rl.Color
	Sleep    SleepState
}

// NewBody returns a body at rest with a full wake budget.
// radius and mass must be positive; that precondition belongs to the caller.
func NewBody(id int, position rl.Vector2, radius, mass float32, color rl.Color) *Body {
	return &Body{
		ID:       id,
		Position: position,
		Radius:   radius,
		Mass:     mass,
		Color:    color,
		Sleep:    NewSleepState(DefaultWakeBudget),
	}
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float32 {
	return rl.Vector2Length(b.Velocity)
}

// Circle returns the body's collision shape at its current position.
func (b *Body) Circle() Circle {
	return Circle{Center: b.Position, Radius: b.Radius}
}
