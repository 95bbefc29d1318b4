package main

import (
	"math/rand"
	"time"

	"ballsim/internal/camera"
	"ballsim/internal/clock"
	"ballsim/internal/debug"
	"ballsim/internal/graphics"
	"ballsim/internal/logger"
	"ballsim/internal/physics"
	"ballsim/internal/scene"
	"ballsim/internal/simconfig"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const windowTitle = "Balls"

func main() {
	log := logger.New()

	cfg, _ := simconfig.Load()
	log.Logf("config: population=%d arena=%v fps_cap=%.0f planes=%d",
		cfg.Population, cfg.Arena, cfg.FPSCap, len(cfg.Planes))

	world := physics.NewWorld(cfg.Physics())
	for _, p := range cfg.PhysicsPlanes() {
		world.AddPlane(p)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	scene.Seed(world, scene.Options{
		Population: cfg.Population,
		RadiusMin:  cfg.RadiusMin,
		RadiusMax:  cfg.RadiusMax,
	}, rng)
	log.Logf("seeded %d bodies", len(world.Bodies))

	width := int32(cfg.Arena[2] - cfg.Arena[0])
	height := int32(cfg.Arena[3] - cfg.Arena[1])

	// Simulation space is Y-up, the screen is Y-down: offset by the window
	// height and flip the vertical axis.
	cam := camera.New(rl.NewVector2(0, float32(height)), 1).InvertV()

	clk := clock.New(clock.PeriodFor(cfg.FPSCap))

	dbg := debug.New()
	dbg.ShowFPS = cfg.ShowFPS
	dbg.ShowBodies = cfg.ShowBodies

	var dt float32
	update := func() {
		dt = clk.Tick()
		world.Step(dt)
	}
	draw := func() {
		scene.Draw(world, cam)
		dbg.Draw(dt, len(world.Bodies), world.AsleepCount())
	}

	graphics.Run(width, height, windowTitle, update, draw)
	log.Log("window closed, shutting down")
}
