package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"voxel-mesher/internal/world"

	"gopkg.in/yaml.v3"
)

// Config holds world generation and meshing settings.
type Config struct {
	ChunkSize int      `yaml:"chunk_size"`
	World     WorldGen `yaml:"world"`
	Mesh      Mesh     `yaml:"mesh"`
}

// Mesh controls the parallel mesh builder.
type Mesh struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// Default returns the settings of the reference world: 16^3 chunks in a
// 16x8x16 grid, seed 420.
func Default() Config {
	return Config{
		ChunkSize: 16,
		World:     defaultWorldGen(),
		Mesh: Mesh{
			Workers:   max(runtime.NumCPU(), 1),
			QueueSize: 256,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file
// keep their default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid config")

// Validate checks ranges the generator and mesher rely on.
func (c Config) Validate() error {
	if err := world.ValidateChunkSize(c.ChunkSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.World.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Mesh.Workers <= 0 {
		return fmt.Errorf("%w: mesh.workers must be positive, got %d", ErrInvalid, c.Mesh.Workers)
	}
	if c.Mesh.QueueSize < 0 {
		return fmt.Errorf("%w: mesh.queue_size must not be negative, got %d", ErrInvalid, c.Mesh.QueueSize)
	}
	return nil
}
