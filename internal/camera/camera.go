// Package camera maps simulation-space coordinates (Y up) to screen-space
// pixels through a translation, a uniform scale, and optional per-axis
// flips. It is purely a presentation mapping; the physics never reads it.
package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera composes a screen offset, a uniform scale, and a ±1 sign per axis.
// The signs survive scale changes, so flipping an axis and later adjusting
// zoom keeps the orientation.
type Camera struct {
	position rl.Vector2
	scale    float32
	sign     rl.Vector2
}

// New returns a camera with the given screen offset and uniform scale,
// both axes unflipped.
func New(position rl.Vector2, scale float32) *Camera {
	return &Camera{position: position, scale: scale, sign: rl.NewVector2(1, 1)}
}

// SetPosition replaces the screen offset.
func (c *Camera) SetPosition(position rl.Vector2) {
	c.position = position
}

// SetScale replaces the uniform scale, preserving any axis flips.
func (c *Camera) SetScale(scale float32) {
	c.scale = scale
}

// InvertV flips the vertical axis and returns the camera for chaining.
// Flipping twice restores the original orientation.
func (c *Camera) InvertV() *Camera {
	c.sign.Y *= -1
	return c
}

// InvertH flips the horizontal axis and returns the camera for chaining.
func (c *Camera) InvertH() *Camera {
	c.sign.X *= -1
	return c
}

// Project maps a simulation-space point to screen space.
func (c *Camera) Project(v rl.Vector2) rl.Vector2 {
	return rl.NewVector2(
		v.X*c.scale*c.sign.X+c.position.X,
		v.Y*c.scale*c.sign.Y+c.position.Y,
	)
}

// Unproject maps a screen-space point back to simulation space.
// Undefined for a zero scale.
func (c *Camera) Unproject(v rl.Vector2) rl.Vector2 {
	return rl.NewVector2(
		(v.X-c.position.X)/(c.scale*c.sign.X),
		(v.Y-c.position.Y)/(c.scale*c.sign.Y),
	)
}

// Scale maps a simulation-space length (e.g. a radius) to screen space.
// Lengths are unsigned, so axis flips do not apply.
func (c *Camera) Scale(s float32) float32 {
	return s * c.scale
}
