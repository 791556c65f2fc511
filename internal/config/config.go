// Package config reads and writes beam definitions as YAML files and
// builds analyzable beams from them.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nateranda/beampy/internal/asce"
	"github.com/nateranda/beampy/internal/beam"
)

const (
	DefaultLength = 10.0
	DefaultEI     = 1e6
)

type Config struct {
	Beam  BeamConfig   `yaml:"beam"`
	Loads []LoadConfig `yaml:"loads"`
}

type BeamConfig struct {
	Length       float64 `yaml:"length"`
	LeftSupport  float64 `yaml:"left_support"`
	RightSupport float64 `yaml:"right_support"` // 0 means the beam end
	Cantilever   bool    `yaml:"cantilever"`
	EI           float64 `yaml:"ei"`
	Method       string  `yaml:"method"`
	Sections     int     `yaml:"sections"`
	RotStep      float64 `yaml:"rot_step,omitempty"`
	Solver       string  `yaml:"solver,omitempty"`
}

type LoadConfig struct {
	Kind      string  `yaml:"kind"` // point, moment or dist
	Position  float64 `yaml:"position,omitempty"`
	Magnitude float64 `yaml:"magnitude,omitempty"`

	// Distributed loads only
	Start          float64 `yaml:"start,omitempty"`
	End            float64 `yaml:"end,omitempty"`
	StartMagnitude float64 `yaml:"start_magnitude,omitempty"`
	EndMagnitude   float64 `yaml:"end_magnitude,omitempty"`

	// Combination category: D, L, Lr, W, E or R. Empty loads are
	// skipped by envelope evaluation.
	Type string `yaml:"type,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Beam: BeamConfig{
			Length:   DefaultLength,
			EI:       DefaultEI,
			Method:   string(asce.LRFD),
			Sections: beam.DefaultSections,
		},
		Loads: []LoadConfig{
			{Kind: "point", Position: DefaultLength / 2, Magnitude: -1000, Type: "D"},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build turns the definition into an analyzable beam. Zero-valued
// fields fall back to the package defaults, and a zero right support
// means the beam end.
func (c *Config) Build() (*beam.Beam, error) {
	method := asce.LRFD
	if c.Beam.Method != "" {
		var err error
		method, err = asce.ParseMethod(c.Beam.Method)
		if err != nil {
			return nil, err
		}
	}
	solver, err := beam.ParseSolver(c.Beam.Solver)
	if err != nil {
		return nil, err
	}

	sections := c.Beam.Sections
	if sections == 0 {
		sections = beam.DefaultSections
	}
	rotStep := c.Beam.RotStep
	if rotStep == 0 {
		rotStep = beam.DefaultRotStep
	}
	right := c.Beam.RightSupport
	if right == 0 && !c.Beam.Cantilever {
		right = c.Beam.Length
	}

	b, err := beam.NewBeam(c.Beam.Length, c.Beam.LeftSupport, right,
		c.Beam.Cantilever, c.Beam.EI, method, sections, rotStep)
	if err != nil {
		return nil, err
	}
	b.Solver = solver

	for i, lc := range c.Loads {
		l, err := lc.load()
		if err != nil {
			return nil, fmt.Errorf("load %d: %w", i+1, err)
		}
		if err := b.AddLoad(l); err != nil {
			return nil, fmt.Errorf("load %d: %w", i+1, err)
		}
	}
	return b, nil
}

func (lc LoadConfig) load() (beam.Load, error) {
	t, err := asce.ParseLoadType(lc.Type)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(lc.Kind)) {
	case "", "point":
		return beam.NewPointLoad(lc.Position, lc.Magnitude, t), nil
	case "moment":
		return beam.NewPointMoment(lc.Position, lc.Magnitude, t), nil
	case "dist", "distributed", "udl":
		return beam.NewDistLoad(lc.Start, lc.End, lc.StartMagnitude, lc.EndMagnitude, t), nil
	}
	return nil, fmt.Errorf("unknown load kind %q (want point, moment or dist)", lc.Kind)
}
