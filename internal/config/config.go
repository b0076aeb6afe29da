// Package config holds the physics and simulation settings read from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the driver looks for its config, relative to the working directory.
const DefaultPath = "assets/config/physics.yaml"

// ErrInvalid reports a setting outside its accepted range.
var ErrInvalid = errors.New("invalid config")

type Physics struct {
	Gravity     float32 `yaml:"gravity"`
	SolverSteps int     `yaml:"solver_steps"`
	FixedDelta  float32 `yaml:"fixed_delta"` // seconds between physics ticks
	Verbose     bool    `yaml:"verbose"`
}

type Simulation struct {
	Frames     int     `yaml:"frames"`
	FrameDelta float32 `yaml:"frame_delta"` // host frame length in seconds
}

type Config struct {
	Physics    Physics    `yaml:"physics"`
	Simulation Simulation `yaml:"simulation"`
}

func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:     9.87,
			SolverSteps: 4,
			FixedDelta:  1.0 / 60.0,
		},
		Simulation: Simulation{
			Frames:     240,
			FrameDelta: 1.0 / 60.0,
		},
	}
}

// Load reads the config at path over the defaults, so omitted keys keep their default
// value. A missing file returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) Validate() error {
	p := c.Physics
	if math32.IsNaN(p.Gravity) || math32.IsInf(p.Gravity, 0) {
		return fmt.Errorf("%w: gravity %v", ErrInvalid, p.Gravity)
	}
	if p.SolverSteps < 1 {
		return fmt.Errorf("%w: solver_steps %d, need at least 1", ErrInvalid, p.SolverSteps)
	}
	if !(p.FixedDelta >= 0) {
		return fmt.Errorf("%w: fixed_delta %v", ErrInvalid, p.FixedDelta)
	}
	s := c.Simulation
	if s.Frames < 0 {
		return fmt.Errorf("%w: frames %d", ErrInvalid, s.Frames)
	}
	if !(s.FrameDelta > 0) {
		return fmt.Errorf("%w: frame_delta %v", ErrInvalid, s.FrameDelta)
	}
	return nil
}
