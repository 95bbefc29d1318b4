package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietConfig returns tunables with gravity off and a huge arena so tests
// observe only the behavior under test.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Gravity = rl.NewVector2(0, 0)
	cfg.Arena = Rect{Left: -1e4, Bottom: -1e4, Right: 1e4, Top: 1e4}
	return cfg
}

func TestWorldStep_IntegratesGravityThenPosition(t *testing.T) {
	cfg := quietConfig()
	cfg.Gravity = rl.NewVector2(0, -10)

	w := NewWorld(cfg)
	w.AddBody(testBody(0, 0, 0, 1, 1))

	w.Step(1)

	b := w.Bodies[0]
	assert.InDelta(t, -10, b.Velocity.Y, 1e-4)
	assert.InDelta(t, -10, b.Position.Y, 1e-4)
	assert.InDelta(t, 0, b.Position.X, 1e-4)
}

func TestWorldStep_RestingBodyFallsAsleepAfterTenFrames(t *testing.T) {
	w := NewWorld(quietConfig())
	w.AddBody(testBody(0, 0, 0, 1, 1))
	b := w.Bodies[0]

	for i := 0; i < 9; i++ {
		w.Step(0.016)
	}
	require.False(t, b.Sleep.Asleep(), "still one qualifying frame short")

	w.Step(0.016)
	require.True(t, b.Sleep.Asleep())

	pos := b.Position
	for i := 0; i < 5; i++ {
		w.Step(0.016)
	}
	assert.Equal(t, pos, b.Position, "asleep body must not move")
	assert.Equal(t, 1, w.AsleepCount())
}

func TestWorldStep_AsleepBodySkipsGravity(t *testing.T) {
	cfg := quietConfig()
	cfg.Gravity = rl.NewVector2(0, -100)

	w := NewWorld(cfg)
	sleeper := asleepBody(0, 0, 50, 1, 1)
	w.AddBody(sleeper)

	w.Step(0.1)

	assert.Equal(t, float32(50), sleeper.Position.Y)
	assert.Equal(t, float32(0), sleeper.Velocity.Y)
}

func TestWorldStep_MoverWakesSleeperOnImpact(t *testing.T) {
	w := NewWorld(quietConfig())

	mover := testBody(0, 5, 0, 2, 5)
	mover.Velocity = rl.NewVector2(20, 0)
	sleeper := asleepBody(1, 10, 0, 2, 5)

	w.AddBody(mover)
	w.AddBody(sleeper)

	// One step carries the mover into the sleeper; with equal masses the
	// elastic exchange hands over the whole normal velocity.
	w.Step(0.1)

	require.False(t, sleeper.Sleep.Asleep(), "sleeper should wake on the same frame")
	assert.InDelta(t, 20, sleeper.Velocity.X, 1e-3)
	assert.GreaterOrEqual(t, rl.Vector2Distance(mover.Position, sleeper.Position),
		mover.Radius+sleeper.Radius-1e-3)
}

func TestWorldStep_BouncesOffPlane(t *testing.T) {
	w := NewWorld(quietConfig())
	w.AddPlane(Plane{Position: rl.NewVector2(0, 0), Rotation: math32.Pi / 2})

	b := testBody(0, 0, 3, 4, 4)
	b.Velocity = rl.NewVector2(0, -10)
	w.AddBody(b)

	w.Step(0.01)

	assert.InDelta(t, 4, b.Position.Y, 1e-3, "pushed out to rest on the plane")
	assert.InDelta(t, 10, b.Velocity.Y, 1e-3, "normal component reflected")
}

func TestWorldStep_ContainsBodiesInArena(t *testing.T) {
	cfg := quietConfig()
	cfg.Arena = Rect{Left: 0, Bottom: 0, Right: 100, Top: 100}

	w := NewWorld(cfg)
	b := testBody(0, 50, 8, 5, 5)
	b.Velocity = rl.NewVector2(0, -40)
	w.AddBody(b)

	w.Step(0.1)

	assert.InDelta(t, 5, b.Position.Y, 1e-4)
	assert.InDelta(t, 40, b.Velocity.Y, 1e-4)
}
