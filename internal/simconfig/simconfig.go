// Package simconfig loads and saves the on-disk simulation configuration.
// A missing or unreadable file is not an error: Load falls back to the
// reference defaults so the sim always starts.
package simconfig

import (
	"os"
	"path/filepath"

	"ballsim/internal/physics"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the configuration file path, relative to the process
// working directory.
const ConfigPath = "config/sim.yaml"

// PlaneDef describes a static plane: a point on the line and the direction
// of its normal in degrees (90 = a floor with the normal pointing up).
type PlaneDef struct {
	Position [2]float32 `yaml:"position"`
	Rotation float32    `yaml:"rotation_deg"`
}

// Config is the full on-disk configuration: scene seeding, physics
// tunables, frame pacing, and debug overlay toggles.
type Config struct {
	Population int     `yaml:"population"`
	RadiusMin  float32 `yaml:"radius_min"`
	RadiusMax  float32 `yaml:"radius_max"`

	// Arena is left, bottom, right, top; it also sets the window size.
	Arena   [4]float32 `yaml:"arena"`
	Gravity [2]float32 `yaml:"gravity"`
	// Damping is the wall restitution: 1 keeps all bounce energy.
	Damping         float32    `yaml:"damping"`
	FreezeThreshold float32    `yaml:"freeze_threshold"`
	WakeBudget      int        `yaml:"wake_budget"`
	Planes          []PlaneDef `yaml:"planes,omitempty"`

	// FPSCap is the target frame rate; 0 or negative runs uncapped.
	FPSCap float32 `yaml:"fps_cap"`

	ShowFPS    bool `yaml:"show_fps"`
	ShowBodies bool `yaml:"show_bodies"`
}

// Default returns the reference scene configuration: five balls in a
// 640x480 arena, gravity (0, -980), elastic walls, 120 FPS cap.
func Default() Config {
	return Config{
		Population:      5,
		RadiusMin:       20,
		RadiusMax:       70,
		Arena:           [4]float32{0, 0, 640, 480},
		Gravity:         [2]float32{0, -980},
		Damping:         1.0,
		FreezeThreshold: 1e-4,
		WakeBudget:      physics.DefaultWakeBudget,
		FPSCap:          120,
		ShowFPS:         true,
		ShowBodies:      false,
	}
}

// Load reads the configuration from ConfigPath. A missing or invalid file
// yields Default() and no error; a partial file keeps defaults for any
// omitted keys.
func Load() (Config, error) {
	return LoadFrom(ConfigPath)
}

// LoadFrom is Load against an explicit path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Save writes the configuration to ConfigPath, creating the config
// directory if needed.
func Save(cfg Config) error {
	return SaveTo(ConfigPath, cfg)
}

// SaveTo is Save against an explicit path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Physics converts the on-disk values into the physics tunables.
func (c Config) Physics() physics.Config {
	return physics.Config{
		Gravity:         rl.NewVector2(c.Gravity[0], c.Gravity[1]),
		Damping:         c.Damping,
		FreezeThreshold: c.FreezeThreshold,
		WakeBudget:      c.WakeBudget,
		Arena: physics.Rect{
			Left:   c.Arena[0],
			Bottom: c.Arena[1],
			Right:  c.Arena[2],
			Top:    c.Arena[3],
		},
	}
}

// PhysicsPlanes converts the plane definitions, degrees to radians.
func (c Config) PhysicsPlanes() []physics.Plane {
	planes := make([]physics.Plane, 0, len(c.Planes))
	for _, def := range c.Planes {
		planes = append(planes, physics.Plane{
			Position: rl.NewVector2(def.Position[0], def.Position[1]),
			Rotation: def.Rotation * math32.Pi / 180,
		})
	}
	return planes
}
