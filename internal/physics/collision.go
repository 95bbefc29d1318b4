package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Resolve separates two overlapping bodies and exchanges velocity along the
// contact normal. pen is the penetration vector for a as returned by Detect,
// pointing from b toward a. Both bodies are mutated as one unit: the
// positional correction is split evenly between them, the normal velocity
// components follow the two-body elastic collision formula, and tangential
// components pass through untouched. A sleeping struck body that leaves the
// contact faster than cfg.FreezeThreshold is woken with a full budget.
func Resolve(a, b *Body, pen rl.Vector2, cfg Config) {
	half := rl.Vector2Scale(pen, 0.5)
	a.Position = rl.Vector2Add(a.Position, half)
	b.Position = rl.Vector2Subtract(b.Position, half)

	normal := safeNormalize(pen)
	tangent := rl.NewVector2(-normal.Y, normal.X)

	tanA := rl.Vector2DotProduct(a.Velocity, tangent)
	tanB := rl.Vector2DotProduct(b.Velocity, tangent)
	normA := rl.Vector2DotProduct(a.Velocity, normal)
	normB := rl.Vector2DotProduct(b.Velocity, normal)

	totalMass := a.Mass + b.Mass
	momentumA := (normA*(a.Mass-b.Mass) + 2*b.Mass*normB) / totalMass
	momentumB := (normB*(b.Mass-a.Mass) + 2*a.Mass*normA) / totalMass

	a.Velocity = rl.Vector2Add(rl.Vector2Scale(tangent, tanA), rl.Vector2Scale(normal, momentumA))
	b.Velocity = rl.Vector2Add(rl.Vector2Scale(tangent, tanB), rl.Vector2Scale(normal, momentumB))

	if b.Sleep.Asleep() && b.Speed() > cfg.FreezeThreshold {
		b.Sleep.Wake(cfg.WakeBudget)
	}
}

// ResolvePlane pushes a body out of a static plane by the full penetration
// depth and reflects the normal component of its velocity, scaled by the
// bounce damping. pen points from the plane toward the body. The component
// is only reflected while the body moves into the plane, so a body already
// bouncing away is not flipped back.
func ResolvePlane(b *Body, pen rl.Vector2, damping float32) {
	b.Position = rl.Vector2Add(b.Position, pen)

	normal := safeNormalize(pen)
	normalSpeed := rl.Vector2DotProduct(b.Velocity, normal)
	if normalSpeed < 0 {
		b.Velocity = rl.Vector2Subtract(b.Velocity, rl.Vector2Scale(normal, (1+damping)*normalSpeed))
	}
}
