// Package scene seeds the ball population and draws it through the camera.
package scene

import (
	"math/rand"

	"ballsim/internal/camera"
	"ballsim/internal/physics"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options controls scene seeding.
type Options struct {
	Population int
	RadiusMin  float32
	RadiusMax  float32
}

// DefaultOptions returns the reference scene: five balls with radii
// between 20 and 70.
func DefaultOptions() Options {
	return Options{Population: 5, RadiusMin: 20, RadiusMax: 70}
}

// Seed fills the world with Population random bodies: radius uniform in
// [RadiusMin, RadiusMax], position uniform inside the arena shrunk by the
// radius so every ball starts fully inside, a random opaque color, and
// mass equal to radius.
func Seed(w *physics.World, opts Options, rng *rand.Rand) {
	arena := w.Config.Arena
	for i := 0; i < opts.Population; i++ {
		radius := randBetween(rng, opts.RadiusMin, opts.RadiusMax)
		position := rl.NewVector2(
			randBetween(rng, arena.Left+radius, arena.Right-radius),
			randBetween(rng, arena.Bottom+radius, arena.Top-radius),
		)
		color := rl.NewColor(randByte(rng), randByte(rng), randByte(rng), 255)
		w.AddBody(physics.NewBody(len(w.Bodies), position, radius, radius, color))
	}
}

// Draw renders every body as a filled circle in screen space.
func Draw(w *physics.World, cam *camera.Camera) {
	for _, b := range w.Bodies {
		rl.DrawCircleV(cam.Project(b.Position), cam.Scale(b.Radius), b.Color)
	}
}

func randBetween(rng *rand.Rand, min, max float32) float32 {
	return min + (max-min)*rng.Float32()
}

func randByte(rng *rand.Rand) uint8 {
	return uint8(rng.Intn(256))
}
