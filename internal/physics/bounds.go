package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rect is an axis-aligned rectangle in simulation space (Y up).
// Left < Right and Bottom < Top; a degenerate rectangle is a setup bug.
type Rect struct {
	Left, Bottom, Right, Top float32
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() rl.Vector2 {
	return rl.NewVector2((r.Right+r.Left)/2, (r.Top+r.Bottom)/2)
}

// HalfSize returns half the rectangle's width and height.
func (r Rect) HalfSize() rl.Vector2 {
	return rl.NewVector2((r.Right-r.Left)/2, (r.Top-r.Bottom)/2)
}

// Contain clamps a body inside the rectangle and reflects the velocity
// component of any axis it crossed, scaled by damping. The free region is
// shrunk by the body's radius so the surface, not the center, respects the
// wall. Axes are handled independently; the comparison is strict, so a body
// sitting exactly on a wall is left alone and repeated calls with no motion
// in between are idempotent.
func Contain(b *Body, r Rect, damping float32) {
	mid := r.Center()
	half := r.HalfSize()
	half.X -= b.Radius
	half.Y -= b.Radius

	pos := rl.Vector2Subtract(b.Position, mid)

	if math32.Abs(pos.X) > half.X {
		b.Position.X = math32.Copysign(half.X, pos.X) + mid.X
		b.Velocity.X *= -damping
	}
	if math32.Abs(pos.Y) > half.Y {
		b.Position.Y = math32.Copysign(half.Y, pos.Y) + mid.Y
		b.Velocity.Y *= -damping
	}
}
